package rules

import "testing"

func TestApplyConwayRules(t *testing.T) {
	testCases := []struct {
		name      string
		neighbors int
		alive     bool
		expected  bool
	}{
		{name: "live cell with no neighbors dies", neighbors: 0, alive: true, expected: false},
		{name: "live cell with one neighbor dies", neighbors: 1, alive: true, expected: false},
		{name: "live cell with two neighbors survives", neighbors: 2, alive: true, expected: true},
		{name: "live cell with three neighbors survives", neighbors: 3, alive: true, expected: true},
		{name: "live cell with four neighbors dies", neighbors: 4, alive: true, expected: false},
		{name: "live cell with eight neighbors dies", neighbors: 8, alive: true, expected: false},
		{name: "dead cell with two neighbors stays dead", neighbors: 2, alive: false, expected: false},
		{name: "dead cell with three neighbors is born", neighbors: 3, alive: false, expected: true},
		{name: "dead cell with four neighbors stays dead", neighbors: 4, alive: false, expected: false},
		{name: "dead cell with no neighbors stays dead", neighbors: 0, alive: false, expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ApplyConwayRules(tc.neighbors, tc.alive); got != tc.expected {
				t.Fatalf("ApplyConwayRules(%d, %v) = %v, expected %v",
					tc.neighbors, tc.alive, got, tc.expected)
			}
		})
	}
}
