package plans

import (
	"time"

	"mlmsite-api/internal/domain/plans"
)

type SeedResults struct {
	Created  []string          `json:"created"`
	Updated  []string          `json:"updated"`
	Errors   []string          `json:"errors"`
	Failures []plans.ItemError `json:"failures"`
}

type SeedResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Results SeedResults `json:"results"`
}

type PlanDTO struct {
	ID             string    `json:"id"`
	GroupID        string    `json:"groupId"`
	Title          string    `json:"title"`
	Slug           string    `json:"slug"`
	Subtitle       string    `json:"subtitle"`
	Description    string    `json:"description"`
	Icon           string    `json:"icon"`
	Features       []string  `json:"features"`
	Locale         string    `json:"locale"`
	ShowOnHomePage bool      `json:"showOnHomePage"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type ListPlansResponse struct {
	Locale string    `json:"locale"`
	Plans  []PlanDTO `json:"plans"`
}

func toPlanDTO(p plans.Plan) PlanDTO {
	features := p.Features
	if features == nil {
		features = []string{}
	}
	return PlanDTO{
		ID:             p.ID,
		GroupID:        p.GroupID,
		Title:          p.Title,
		Slug:           plans.Slug(p.Title),
		Subtitle:       p.Subtitle,
		Description:    p.Description,
		Icon:           p.Icon,
		Features:       features,
		Locale:         p.Locale,
		ShowOnHomePage: p.ShowOnHomePage,
		UpdatedAt:      p.UpdatedAt,
	}
}
