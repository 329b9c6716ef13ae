package model

import (
	"fmt"
	"io"
	"os"
	"os/exec"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	clearCmd = "clear"
)

// TerminalRenderer draws the grid as two-character glyphs per cell, one line
// per grid row, to the configured writer
type TerminalRenderer struct {
	Out io.Writer
}

// NewTerminalRenderer returns a renderer writing to out, defaulting to stdout
func NewTerminalRenderer(out io.Writer) *TerminalRenderer {
	if out == nil {
		out = os.Stdout
	}
	return &TerminalRenderer{Out: out}
}

// Display renders the grid via its row-major cell enumeration
func (r *TerminalRenderer) Display(g *Grid) {
	lastX := g.Width() - 1
	g.ForEachCell(func(x, y int, alive bool) {
		if alive {
			fmt.Fprint(r.Out, gridPosBlock)
		} else {
			fmt.Fprint(r.Out, gridPosEmpty)
		}
		if x == lastX {
			fmt.Fprintln(r.Out)
		}
	})
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = os.Stdout
	if err := cmd.Run(); err != nil {
		fmt.Println("Error clearing terminal:", err)
	}
}
