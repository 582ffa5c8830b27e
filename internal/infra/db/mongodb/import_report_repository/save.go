package import_report_repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ledgerly/finance-tracker-backend/internal/domain/models"
	"github.com/ledgerly/finance-tracker-backend/internal/infra/db/mongodb/helpers"
	"github.com/redis/go-redis/v9"
)

const reportTTL = 24 * time.Hour

func reportKey(runId string) string {
	return "import:" + runId
}

// SaveReport stages the outcome of an import run so the client can fetch
// the row-level errors later. Reports expire; they are a convenience, not
// a system of record.
func SaveReport(cache *redis.Client, run *models.ImportRun) error {
	if cache == nil {
		return nil
	}

	payload, err := json.Marshal(run)
	if err != nil {
		return fmt.Errorf("error serializing import report: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.RedisTimeout)
	defer cancel()

	if err := cache.Set(ctx, reportKey(run.Id), payload, reportTTL).Err(); err != nil {
		return fmt.Errorf("error saving import report: %w", err)
	}

	return nil
}
