package services

import (
	"context"
	"strconv"

	"github.com/Darpan-10/HUMAN-API/internal/cache"
)

const suggestionCacheMaxLimit = 10

func suggestionCacheKey(userID string, limit int) string {
	return "suggestions:" + userID + ":" + strconv.Itoa(limit)
}

// invalidateSuggestions drops every cached suggestion list for a user.
// Keys are enumerated per possible limit because Redis has no cheap
// prefix delete. Best effort: failures are ignored.
func invalidateSuggestions(ctx context.Context, c cache.Cache, userID string) {
	if c == nil {
		return
	}
	keys := make([]string, 0, suggestionCacheMaxLimit)
	for limit := 1; limit <= suggestionCacheMaxLimit; limit++ {
		keys = append(keys, suggestionCacheKey(userID, limit))
	}
	_ = c.Del(ctx, keys...)
}
