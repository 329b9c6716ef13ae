package model

import (
	"bytes"
	"testing"
)

func TestDisplayGlyphs(t *testing.T) {
	g := mustGrid(t, 2, 2)
	setCells(t, g, [2]int{0, 0}, [2]int{1, 1})

	var buf bytes.Buffer
	r := NewTerminalRenderer(&buf)
	r.Display(g)

	expected := gridPosBlock + gridPosEmpty + "\n" + gridPosEmpty + gridPosBlock + "\n"
	if buf.String() != expected {
		t.Fatalf("rendered output %q, expected %q", buf.String(), expected)
	}
}

func TestDisplayIsRepeatable(t *testing.T) {
	g := mustGrid(t, 3, 1)
	setCells(t, g, [2]int{1, 0})

	r := NewTerminalRenderer(&bytes.Buffer{})
	first := &bytes.Buffer{}
	second := &bytes.Buffer{}

	r.Out = first
	r.Display(g)
	r.Out = second
	r.Display(g)

	if first.String() != second.String() {
		t.Fatalf("repeated renders differ: %q vs %q", first.String(), second.String())
	}
}
