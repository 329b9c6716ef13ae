package main

import (
	"fmt"
	"time"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// initializeGame sets up the initial game state
func initializeGame(config utils.Config, src model.RandSource) (
	*model.Grid,
	*model.GridPool,
	*model.TerminalRenderer,
	*utils.Stats,
	error,
) {
	var pool *model.GridPool
	if config.UseMemoryPool {
		pool = model.NewGridPool()
	}

	grid, err := model.New(config.Width, config.Height)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	grid.SeedInteresting(config, src)

	renderer := model.NewTerminalRenderer(nil)
	stats := utils.NewStats()

	return grid, pool, renderer, stats, nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, grid *model.Grid) {
	fmt.Printf("Grid: %dx%d | Initial living cells: %d | Memory Pool: %v\n",
		grid.Width(), grid.Height(), grid.CountLivingCells(), config.UseMemoryPool)
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
	time.Sleep(2 * time.Second)
}

// updateGameState updates the game state and returns status information
func updateGameState(
	grid *model.Grid,
	generation int,
	lastFrameTime time.Time,
	stats *utils.Stats,
) (int, float64, string, bool) {
	livingCells := grid.CountLivingCells()
	density := float64(livingCells) / float64(grid.Width()*grid.Height()) * 100

	// Update performance stats
	frameDuration := time.Since(lastFrameTime)
	stats.Update(generation, livingCells, frameDuration)

	// Check for stagnation against prior generations, then record this one
	isStagnant := grid.IsStagnant()
	grid.UpdateHistory()

	// Display status
	status := "Active"
	if isStagnant {
		status = fmt.Sprintf("Stagnant (%d)", generation)
	}
	if livingCells == 0 {
		status = "Extinct"
	}

	return livingCells, density, status, isStagnant
}

// displayGameStatus shows the current game status
func displayGameStatus(
	generation, livingCells int,
	density float64,
	status string,
	stats *utils.Stats,
	lastRestartGen int,
) {
	fmt.Printf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		generation, livingCells, density, status)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, time.Since(stats.StartTime).Seconds())

	// Show time since last restart
	if generation > lastRestartGen {
		fmt.Printf("Generations since restart: %d\n", generation-lastRestartGen)
	}
	fmt.Println()
}

// displayFinalStats shows the closing summary on shutdown
func displayFinalStats(generation int, stats *utils.Stats) {
	fmt.Println("\n🛑 Shutting down gracefully...")
	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		generation, time.Since(stats.StartTime).Seconds())
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
		stats.GenerationsPerSecond, stats.AveragePopulation)
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(
	livingCells, stagnantCount, generation int,
	config utils.Config,
) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	if generation > 0 && generation%200 == 0 {
		return true, "periodic refresh"
	}
	return false, ""
}

// restartGame retires the current grid and seeds a fresh one, recycling the
// old grid's buffers through the pool when one is configured
func restartGame(config utils.Config, old *model.Grid, pool *model.GridPool, src model.RandSource) *model.Grid {
	fmt.Printf("\n🔄 Restarting...\n")

	var grid *model.Grid
	if pool != nil {
		pool.Put(old)
		grid = pool.Get(config.Width, config.Height)
	} else {
		fresh, err := model.New(config.Width, config.Height)
		if err != nil {
			// Dimensions were validated at startup, so keep the old grid
			// rather than dying mid-run
			grid = old
		} else {
			grid = fresh
		}
	}
	grid.SeedInteresting(config, src)

	fmt.Printf("✨ New patterns loaded! Living cells: %d\n", grid.CountLivingCells())
	return grid
}
