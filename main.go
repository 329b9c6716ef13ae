package main

import (
	"bufio"
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig("config.json")
	if err != nil {
		fmt.Println("Using default configuration (config.json not found)")
		config = utils.DefaultConfig()
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, config); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, config utils.Config) error {
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	src := rand.New(rand.NewSource(seed))

	grid, pool, renderer, stats, err := initializeGame(config, src)
	if err != nil {
		return err
	}
	displayGameInfo(config, grid)

	commands := make(chan rune, 16)
	if config.Interactive {
		go watchInput(ctx, commands)
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return gameLoop(ctx, config, grid, pool, renderer, stats, src, commands)
	})
	return eg.Wait()
}

// gameLoop runs the render/step cycle until the context is cancelled, the
// generation limit is reached, or the user quits
func gameLoop(
	ctx context.Context,
	config utils.Config,
	grid *model.Grid,
	pool *model.GridPool,
	renderer *model.TerminalRenderer,
	stats *utils.Stats,
	src model.RandSource,
	commands <-chan rune,
) error {
	var (
		generation     = 0
		stagnantCount  = 0
		lastRestartGen = 0
		lastFrameTime  = time.Now()
		paused         = false
	)

	for {
		select {
		case <-ctx.Done():
			displayFinalStats(generation, stats)
			return nil
		case key := <-commands:
			switch key {
			case 'q':
				displayFinalStats(generation, stats)
				return nil
			case 'p':
				paused = !paused
			}
		default:
			// Continue with game loop
		}

		if paused {
			select {
			case <-ctx.Done():
			case <-time.After(config.FrameRate):
			}
			continue
		}

		frameStart := time.Now()
		renderer.Clear()

		// Update game state
		livingCells, density, status, isStagnant := updateGameState(grid, generation, lastFrameTime, stats)
		lastFrameTime = frameStart

		// Update stagnation counter
		if isStagnant {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		// Display current status
		displayGameStatus(generation, livingCells, density, status, stats, lastRestartGen)
		renderer.Display(grid)

		// Check for max generations limit
		if config.MaxGenerations > 0 && generation >= config.MaxGenerations {
			fmt.Printf("\n🏁 Reached maximum generations limit (%d)\n", config.MaxGenerations)
			return nil
		}

		// Check restart conditions
		shouldRestart, restartReason := checkRestartConditions(livingCells, stagnantCount, generation, config)

		if shouldRestart && config.AutoRestart {
			fmt.Printf("🔄 Restarting due to %s...\n", restartReason)
			grid = restartGame(config, grid, pool, src)
			lastRestartGen = generation
			stagnantCount = 0
		} else if stagnantCount >= 2 && stagnantCount < config.StagnationThreshold {
			// Inject some life to try to break the stagnation
			grid.InjectRandomLife(config.InjectionCount, src)
		}

		// Advance to the next generation
		grid.Step()
		generation++

		// Wait before next frame
		select {
		case <-ctx.Done():
		case <-time.After(config.FrameRate):
		}
	}
}

// watchInput forwards single-character commands from stdin to the game loop
func watchInput(ctx context.Context, commands chan<- rune) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		select {
		case commands <- rune(line[0]):
		case <-ctx.Done():
			return
		}
		if line[0] == 'q' {
			return
		}
	}
}
