package components

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// gradient returns n colors interpolated from start to end.
func gradient(n int, start, end string) []lipgloss.Color {
	if n <= 0 {
		return nil
	}
	startRGB, err := hexToRGB(start)
	if err != nil {
		return uniform(n, start)
	}
	endRGB, err := hexToRGB(end)
	if err != nil {
		return uniform(n, start)
	}

	out := make([]lipgloss.Color, n)
	for i := range out {
		// If there is only one cell, t stays 0 (start color)
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		r := uint8(math.Round(lerp(float64(startRGB.r), float64(endRGB.r), t)))
		g := uint8(math.Round(lerp(float64(startRGB.g), float64(endRGB.g), t)))
		b := uint8(math.Round(lerp(float64(startRGB.b), float64(endRGB.b), t)))
		out[i] = lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r, g, b))
	}
	return out
}

func uniform(n int, c string) []lipgloss.Color {
	out := make([]lipgloss.Color, n)
	for i := range out {
		out[i] = lipgloss.Color(c)
	}
	return out
}

type rgb struct {
	r, g, b uint8
}

func hexToRGB(hex string) (rgb, error) {
	hex = strings.TrimPrefix(hex, "#")

	// Handle short hex (e.g., "FFF")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return rgb{}, fmt.Errorf("invalid hex color: %s", hex)
	}

	val, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return rgb{}, err
	}
	return rgb{
		r: uint8(val >> 16),
		g: uint8((val >> 8) & 0xFF),
		b: uint8(val & 0xFF),
	}, nil
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
