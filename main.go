package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/beka-birhanu/vinom-dungeon/config"
	"github.com/beka-birhanu/vinom-dungeon/infrastruture/logger"
	"github.com/beka-birhanu/vinom-dungeon/service"
	"github.com/beka-birhanu/vinom-dungeon/service/i"
)

// Global variables for dependencies
var (
	appLogger      i.Logger
	levelGenerator i.LevelGenerator
)

func initLevelGenerator() {
	generatorLogger, err := logger.New("LEVEL-GEN", config.ColorCyan, os.Stderr)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating level generator logger: %v", err))
		os.Exit(1)
	}

	levelGenerator, err = service.NewLevelService(generatorLogger, &service.Options{
		Width:          config.Envs.LevelWidth,
		Height:         config.Envs.LevelHeight,
		NumRooms:       config.Envs.LevelRooms,
		Randomness:     config.Envs.MazeRandomness,
		Sparseness:     config.Envs.MazeSparseness,
		DeadEndRemoval: config.Envs.DeadEndRemoval,
		RoomMinWidth:   config.Envs.RoomMinWidth,
		RoomMaxWidth:   config.Envs.RoomMaxWidth,
		RoomMinHeight:  config.Envs.RoomMinHeight,
		RoomMaxHeight:  config.Envs.RoomMaxHeight,
		Seed:           config.Envs.Seed,
		Debug:          config.Envs.Debug,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating level generator: %v", err))
		os.Exit(1)
	}

	appLogger.Info("Level generator initialized")
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	ctx, cancelTimeout := context.WithTimeout(ctx, 30*time.Second)
	defer cancelTimeout()

	// Logs go to stderr so the level on stdout can be piped.
	appLog, err := logger.New("APP", config.ColorGreen, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Creating app logger: %v\n", err)
		os.Exit(1)
	}
	appLogger = appLog

	initLevelGenerator()

	generated, err := levelGenerator.Generate(ctx)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Generating level: %v", err))
		os.Exit(1)
	}

	appLogger.Info(fmt.Sprintf("Generated level %s (seed %d)", generated.ID, generated.Seed))
	fmt.Print(generated.Level)
}
