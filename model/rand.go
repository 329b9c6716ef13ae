package model

/*
RandSource supplies uniform floats in [0, 1) for seeding the grid.

*math/rand.Rand satisfies it directly; tests inject deterministic sources.
*/
type RandSource interface {
	Float64() float64
}
