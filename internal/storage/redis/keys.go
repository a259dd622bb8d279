package redis

import "fmt"

// Key prefix for all game-related data
const keyPrefix = "amoba"

// boardKey returns the Redis key for the saved board
func boardKey() string {
	return fmt.Sprintf("%s:board", keyPrefix)
}

// scoresKey returns the Redis key for the score log LIST
func scoresKey() string {
	return fmt.Sprintf("%s:scores", keyPrefix)
}
