package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	LevelWidth     int   // Width of the maze in cells
	LevelHeight    int   // Height of the maze in cells
	LevelRooms     int   // Number of rooms placed into the maze
	MazeRandomness int   // Chance, in percent, that a corridor turns
	MazeSparseness int   // Percentage of cells sealed back into rock
	DeadEndRemoval int   // Chance, in percent, that a dead end is looped back; 0 disables
	RoomMinWidth   int   // Smallest room width in cells
	RoomMaxWidth   int   // Largest room width in cells
	RoomMinHeight  int   // Smallest room height in cells
	RoomMaxHeight  int   // Largest room height in cells
	Seed           int64 // Seed of the random source; 0 seeds from the clock
	Debug          bool  // Print the cell grid after every stage
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		LevelWidth:     getEnvAsIntWithDefault("LEVEL_WIDTH", 15),
		LevelHeight:    getEnvAsIntWithDefault("LEVEL_HEIGHT", 15),
		LevelRooms:     getEnvAsIntWithDefault("LEVEL_ROOMS", 5),
		MazeRandomness: getEnvAsIntWithDefault("MAZE_RANDOMNESS", 30),
		MazeSparseness: getEnvAsIntWithDefault("MAZE_SPARSENESS", 70),
		DeadEndRemoval: getEnvAsIntWithDefault("DEAD_END_REMOVAL", 0),
		RoomMinWidth:   getEnvAsIntWithDefault("ROOM_MIN_WIDTH", 2),
		RoomMaxWidth:   getEnvAsIntWithDefault("ROOM_MAX_WIDTH", 3),
		RoomMinHeight:  getEnvAsIntWithDefault("ROOM_MIN_HEIGHT", 2),
		RoomMaxHeight:  getEnvAsIntWithDefault("ROOM_MAX_HEIGHT", 3),
		Seed:           getEnvAsInt64WithDefault("LEVEL_SEED", 0),
		Debug:          getEnvAsBoolWithDefault("LEVEL_DEBUG", false),
	}
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault retrieves an environment variable as an integer, logging a fatal error if it cannot be parsed.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr := getEnvWithDefault(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

func getEnvAsInt64WithDefault(key string, defaultValue int64) int64 {
	valueStr := getEnvWithDefault(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

func getEnvAsBoolWithDefault(key string, defaultValue bool) bool {
	valueStr := getEnvWithDefault(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be a boolean: %v", key, err)
	}
	return value
}
