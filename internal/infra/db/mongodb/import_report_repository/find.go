package import_report_repository

import (
	"context"
	"encoding/json"

	"github.com/ledgerly/finance-tracker-backend/internal/domain/models"
	"github.com/ledgerly/finance-tracker-backend/internal/infra/db/mongodb/helpers"
	"github.com/redis/go-redis/v9"
)

// FindReport returns the staged report for a run, or nil when it expired
// or never existed.
func FindReport(cache *redis.Client, runId string) (*models.ImportRun, error) {
	if cache == nil {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.RedisTimeout)
	defer cancel()

	payload, err := cache.Get(ctx, reportKey(runId)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var run models.ImportRun
	if err := json.Unmarshal([]byte(payload), &run); err != nil {
		return nil, err
	}

	return &run, nil
}
