// Package palette assigns stable terminal colours to identifiers such as
// sector and agent ids, so the same id is drawn the same way on every run.
package palette

import (
	"hash/fnv"

	"github.com/fatih/color"
)

var keyColors = []*color.Color{
	color.New(color.FgHiRed),
	color.New(color.FgHiGreen),
	color.New(color.FgHiYellow),
	color.New(color.FgHiBlue),
	color.New(color.FgHiMagenta),
	color.New(color.FgHiCyan),
	color.New(color.FgRed),
	color.New(color.FgGreen),
	color.New(color.FgYellow),
	color.New(color.FgBlue),
	color.New(color.FgMagenta),
	color.New(color.FgCyan),
}

// Index returns the palette slot for key.
func Index(key string) int {
	h := fnv.New32a()
	h.Write([]byte(key))
	return int(h.Sum32() % uint32(len(keyColors)))
}

// For returns the colour assigned to key.
func For(key string) *color.Color {
	return keyColors[Index(key)]
}

// Sprint renders key in its own colour. Output is plain when colour is
// disabled (NO_COLOR, non-terminal stdout).
func Sprint(key string) string {
	return For(key).Sprint(key)
}
