package model

import "github.com/sheikhrachel/go-life/utils"

// AddGlider adds a glider pattern at the specified position. Cells of the
// pattern that fall outside the grid are skipped.
func (g *Grid) AddGlider(startX, startY int) {
	pattern := [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}

	for y, row := range pattern {
		for x, alive := range row {
			if alive && g.inBounds(startX+x, startY+y) {
				g.cells[g.index(startX+x, startY+y)] = true
			}
		}
	}
}

// AddBlinker adds a horizontal three-cell blinker oscillator at the
// specified position, skipping cells outside the grid
func (g *Grid) AddBlinker(startX, startY int) {
	for i := 0; i < 3; i++ {
		if g.inBounds(startX+i, startY) {
			g.cells[g.index(startX+i, startY)] = true
		}
	}
}

// SeedInteresting clears the grid, adds random life at the configured
// density, then stamps a few known patterns on top so every run has some
// visible activity
func (g *Grid) SeedInteresting(config utils.Config, src RandSource) {
	g.Clear()
	g.Randomize(config.RandomDensity, src)

	if g.width >= 10 && g.height >= 10 {
		// Add some gliders
		g.AddGlider(5, 5)
		if g.width >= 20 && g.height >= 15 {
			g.AddGlider(g.width-8, 5)
		}

		// Add oscillators
		g.AddBlinker(g.width/4, g.height/4)
		if g.width >= 30 {
			g.AddBlinker(3*g.width/4, 3*g.height/4)
		}
	}
}
