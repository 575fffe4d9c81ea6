package plans

import (
	"errors"
	"fmt"
	"net/http"

	"mlmsite-api/internal/domain/plans"
	"mlmsite-api/internal/infra/logging"
	"mlmsite-api/internal/infra/metrics"

	"github.com/gin-gonic/gin"
)

// POST /admin/seed-plans
func (h *Handler) SeedPlans(c *gin.Context) {
	seeder := plans.NewSeeder(h.store, h.opts...)

	res, err := seeder.Seed(c.Request.Context(), h.catalog, plans.SeedLocale)
	if err != nil {
		metrics.RecordSeedFailure()
		logging.LogError("plan_seed", err, map[string]interface{}{
			"user_id": c.GetUint("user_id"),
			"locale":  plans.SeedLocale,
		})

		msg := err.Error()
		if msg == "" {
			msg = "Failed to seed plans"
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
		return
	}

	for _, ie := range res.Errors {
		logging.LogError("plan_seed_item", errors.New(ie.Detail), map[string]interface{}{
			"title": ie.Title,
			"kind":  string(ie.Kind),
		})
	}
	metrics.RecordSeed(len(res.Created), len(res.Updated), len(res.Errors))

	c.JSON(http.StatusOK, SeedResponse{
		Success: true,
		Message: fmt.Sprintf("Seeded %d plans", res.Total),
		Results: SeedResults{
			Created:  res.Created,
			Updated:  res.Updated,
			Errors:   res.Messages(),
			Failures: res.Errors,
		},
	})
}
