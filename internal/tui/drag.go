package tui

import (
	"github.com/google/uuid"

	"github.com/rangepick/rangepick/internal/slider"
	"github.com/rangepick/rangepick/internal/utils"
)

// DragState represents the current state of a drag operation
type DragState int

const (
	DragStateIdle DragState = iota
	DragStateDragging
)

// dragSession tracks which handle the pointer has engaged. The slider core
// only ever sees the handle and pointer X of each move.
type dragSession struct {
	state    DragState
	handle   slider.Handle
	id       string
	moves    int
	accepted int
}

func (d *dragSession) begin(h slider.Handle) {
	d.state = DragStateDragging
	d.handle = h
	d.id = uuid.New().String()
	d.moves = 0
	d.accepted = 0
	utils.Debug("drag %s: engaged %s handle", d.id, h)
}

func (d *dragSession) record(accepted bool) {
	d.moves++
	if accepted {
		d.accepted++
	}
}

func (d *dragSession) end() {
	if d.state != DragStateDragging {
		return
	}
	utils.Debug("drag %s: released %s handle after %d move(s), %d accepted", d.id, d.handle, d.moves, d.accepted)
	d.state = DragStateIdle
	d.id = ""
}

func (d *dragSession) dragging() bool {
	return d.state == DragStateDragging
}
