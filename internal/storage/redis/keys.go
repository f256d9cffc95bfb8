package redis

import (
	"fmt"

	"github.com/mcoot/dicegame-go/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "dicegame"

// playerKey returns the Redis key for a Player
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}

// registeredPlayerKey returns the Redis key for a RegisteredPlayer
func registeredPlayerKey(playerID model.PlayerID) string {
	return fmt.Sprintf("%s:registered_player:%s", keyPrefix, playerID)
}

// usernameIndexKey returns the Redis key for the username -> player_id index
func usernameIndexKey(username string) string {
	return fmt.Sprintf("%s:idx:username:%s", keyPrefix, username)
}

// matchKey returns the Redis key for a Match
func matchKey(id model.MatchID) string {
	return fmt.Sprintf("%s:match:%s", keyPrefix, id)
}

// matchesForPlayerIndexKey returns the Redis key for the SET of match keys owned by a player
func matchesForPlayerIndexKey(playerID model.PlayerID) string {
	return fmt.Sprintf("%s:idx:matches_for_player:%s", keyPrefix, playerID)
}

// recordKey returns the Redis key for a player's Record
func recordKey(playerID model.PlayerID) string {
	return fmt.Sprintf("%s:record:%s", keyPrefix, playerID)
}

// sessionKey returns the Redis key for a Session
func sessionKey(token string) string {
	return fmt.Sprintf("%s:session:%s", keyPrefix, token)
}

// sessionExpiryIndexKey returns the Redis key for the ZSET of session keys scored by expiry
func sessionExpiryIndexKey() string {
	return keyPrefix + ":idx:session_expiry"
}
