package admin

import (
	"net/http"

	"mlmsite-api/database"
	"mlmsite-api/internal/domain/plans"

	"github.com/gin-gonic/gin"
)

type LocaleStats struct {
	Locale   string `json:"locale"`
	Plans    int    `json:"plans"`
	HomePage int    `json:"home_page"`
}

type PlanStats struct {
	TotalPlans  int           `json:"total_plans"`
	TotalGroups int           `json:"total_groups"`
	Locales     []LocaleStats `json:"locales"`
	// Catalog titles with no "en" record yet.
	MissingFromCatalog []string `json:"missing_from_catalog"`
}

// GET /admin/plans/stats
func GetPlanStats(c *gin.Context) {
	db := database.DB.WithContext(c.Request.Context())

	var totalPlans, totalGroups int64
	if err := db.Model(&plans.Plan{}).Count(&totalPlans).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stats"})
		return
	}
	if err := db.Model(&plans.Plan{}).Distinct("group_id").Count(&totalGroups).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stats"})
		return
	}

	type localeCount struct {
		Locale   string
		Total    int
		HomePage int
	}
	var counts []localeCount
	if err := db.Model(&plans.Plan{}).
		Select("locale, COUNT(*) AS total, SUM(CASE WHEN show_on_home_page THEN 1 ELSE 0 END) AS home_page").
		Group("locale").
		Order("locale ASC").
		Scan(&counts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stats"})
		return
	}

	var seeded []string
	if err := db.Model(&plans.Plan{}).
		Where("locale = ?", plans.SeedLocale).
		Pluck("title", &seeded).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stats"})
		return
	}
	have := make(map[string]bool, len(seeded))
	for _, t := range seeded {
		have[t] = true
	}

	stats := PlanStats{
		TotalPlans:         int(totalPlans),
		TotalGroups:        int(totalGroups),
		Locales:            make([]LocaleStats, 0, len(counts)),
		MissingFromCatalog: []string{},
	}
	for _, lc := range counts {
		stats.Locales = append(stats.Locales, LocaleStats{Locale: lc.Locale, Plans: lc.Total, HomePage: lc.HomePage})
	}
	for _, title := range plans.DefaultCatalog().Titles() {
		if !have[title] {
			stats.MissingFromCatalog = append(stats.MissingFromCatalog, title)
		}
	}

	c.JSON(http.StatusOK, stats)
}
