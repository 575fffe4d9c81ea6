package plans

import "time"

// Descriptor is one entry of a compiled-in plan catalog.
type Descriptor struct {
	Title       string   `json:"title" validate:"required"`
	Subtitle    string   `json:"subtitle" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Icon        string   `json:"icon" validate:"required"`
	Features    []string `json:"features" validate:"dive,required"`
}

// Plan is the persisted, localized plan record.
// ID, GroupID and Locale are fixed at creation; ShowOnHomePage is managed
// outside of seeding.
type Plan struct {
	ID             string   `gorm:"type:uuid;primaryKey" json:"id"`
	GroupID        string   `gorm:"type:uuid;not null;index" json:"groupId"`
	Title          string   `gorm:"not null;index:idx_plans_title_locale,priority:1" json:"title"`
	Subtitle       string   `json:"subtitle"`
	Description    string   `gorm:"type:text" json:"description"`
	Icon           string   `json:"icon"`
	Features       []string `gorm:"serializer:json" json:"features"`
	Locale         string   `gorm:"type:varchar(16);not null;index:idx_plans_title_locale,priority:2" json:"locale"`
	ShowOnHomePage bool     `gorm:"column:show_on_home_page;not null;default:false" json:"showOnHomePage"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false" json:"updatedAt"`
}
