package plans

import (
	"net/http"
	"strconv"

	"mlmsite-api/internal/domain/plans"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// GET /plans?locale=pt-BR&home=true
func (h *Handler) ListPlans(c *gin.Context) {
	locale := plans.ResolveLocale(c.Query("locale"))
	homeOnly, _ := strconv.ParseBool(c.DefaultQuery("home", "false"))

	list, err := h.queries.List(c.Request.Context(), locale, homeOnly)
	if err != nil {
		logrus.WithError(err).WithField("locale", locale).Error("list plans failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load plans"})
		return
	}

	out := ListPlansResponse{Locale: locale, Plans: make([]PlanDTO, 0, len(list))}
	for _, p := range list {
		out.Plans = append(out.Plans, toPlanDTO(p))
	}
	c.JSON(http.StatusOK, out)
}

// PUT /admin/plans/:id/home
func (h *Handler) SetHomePage(c *gin.Context) {
	var input struct {
		ShowOnHomePage *bool `json:"showOnHomePage" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "showOnHomePage is required"})
		return
	}

	// Plan ids are uuid columns; anything else cannot name a plan.
	parsed, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
		return
	}

	id := parsed.String()
	found, err := h.queries.SetShowOnHomePage(c.Request.Context(), id, *input.ShowOnHomePage)
	if err != nil {
		logrus.WithError(err).WithField("plan_id", id).Error("update home page flag failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update plan"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id, "showOnHomePage": *input.ShowOnHomePage})
}
