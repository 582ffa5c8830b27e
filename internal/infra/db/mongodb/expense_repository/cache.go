package expense_repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ledgerly/finance-tracker-backend/internal/domain/models"
	"github.com/ledgerly/finance-tracker-backend/internal/infra/db/mongodb/helpers"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const cacheTTL = 60 * time.Second

func cacheKey(userId primitive.ObjectID) string {
	return "expenses:" + userId.Hex()
}

func readCache(cache *redis.Client, userId primitive.ObjectID) ([]models.Expense, bool) {
	if cache == nil {
		return nil, false
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.RedisTimeout)
	defer cancel()

	payload, err := cache.Get(ctx, cacheKey(userId)).Result()
	if err != nil {
		if err != redis.Nil {
			log.Errorf("error reading expense cache: %v", err)
		}
		return nil, false
	}

	var expenses []models.Expense
	if err := json.Unmarshal([]byte(payload), &expenses); err != nil {
		return nil, false
	}

	return expenses, true
}

func writeCache(cache *redis.Client, userId primitive.ObjectID, expenses []models.Expense) {
	if cache == nil {
		return
	}

	payload, err := json.Marshal(expenses)
	if err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.RedisTimeout)
	defer cancel()

	if err := cache.Set(ctx, cacheKey(userId), payload, cacheTTL).Err(); err != nil {
		log.Errorf("error writing expense cache: %v", err)
	}
}

// invalidateCache drops the cached list after any expense mutation. Cache
// failures only cost freshness, so they are logged and not surfaced.
func invalidateCache(cache *redis.Client, userId primitive.ObjectID) {
	if cache == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.RedisTimeout)
	defer cancel()

	if err := cache.Del(ctx, cacheKey(userId)).Err(); err != nil {
		log.Errorf("error invalidating expense cache: %v", err)
	}
}
