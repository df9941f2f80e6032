package redis

import "fmt"

// Key prefix for all league data
const keyPrefix = "leaguekeeper"

// collectionKey returns the Redis key holding a collection's JSON array
func collectionKey(name string) string {
	return fmt.Sprintf("%s:collection:%s", keyPrefix, name)
}
