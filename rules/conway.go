package rules

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell:

  - a live cell with 2 or 3 live neighbors stays alive, any other count kills it
  - a dead cell with exactly 3 live neighbors becomes alive, any other count leaves it dead

which collapses to: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}
