package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rangepick/rangepick/internal/slider"
)

// printRange writes r as "start end", or as JSON.
func printRange(w io.Writer, r slider.Range, asJSON bool) error {
	if asJSON {
		return json.NewEncoder(w).Encode(r)
	}
	_, err := fmt.Fprintf(w, "%d %d\n", r.Start, r.End)
	return err
}
