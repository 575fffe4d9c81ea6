package plans

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Store is the persistence the seeder needs.
// FindByTitle returns (nil, nil) when no plan matches.
type Store interface {
	Ping(ctx context.Context) error
	FindByTitle(ctx context.Context, title, locale string) (*Plan, error)
	Create(ctx context.Context, p *Plan) error
	UpdateContent(ctx context.Context, p *Plan) error
}

// contentColumns are the only columns an update may write.
var contentColumns = []string{"subtitle", "description", "icon", "features", "updated_at"}

type GormStore struct {
	db *gorm.DB
}

// NewGormStore wraps db. Pass db in rather than importing the database
// package so tests can hand in their own connection.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Ping(ctx context.Context) error {
	if s.db == nil {
		return errors.New("database not initialized")
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("get sql handle: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	return nil
}

func (s *GormStore) FindByTitle(ctx context.Context, title, locale string) (*Plan, error) {
	var p Plan
	err := localePlansQuery(s.db.WithContext(ctx), locale).
		Where("title = ?", title).
		Order("created_at ASC").
		First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (s *GormStore) Create(ctx context.Context, p *Plan) error {
	return s.db.WithContext(ctx).Create(p).Error
}

// UpdateContent writes the descriptor fields and updated_at of p, by ID.
// id, group_id, locale and show_on_home_page are never written.
func (s *GormStore) UpdateContent(ctx context.Context, p *Plan) error {
	if p.ID == "" {
		return errors.New("plan id missing")
	}
	res := s.db.WithContext(ctx).
		Model(p).
		Select(contentColumns).
		Updates(p)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("plan %s no longer exists", p.ID)
	}
	return nil
}

// List returns the plans of a locale ordered by title, optionally only
// those flagged for the home page.
func (s *GormStore) List(ctx context.Context, locale string, homeOnly bool) ([]Plan, error) {
	q := localePlansQuery(s.db.WithContext(ctx), locale)
	if homeOnly {
		q = q.Where("show_on_home_page = ?", true)
	}

	var out []Plan
	if err := q.Order("title ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// SetShowOnHomePage flips the home page flag of one plan. It reports false
// when no plan has that id.
func (s *GormStore) SetShowOnHomePage(ctx context.Context, id string, show bool) (bool, error) {
	res := s.db.WithContext(ctx).
		Model(&Plan{}).
		Where("id = ?", id).
		Update("show_on_home_page", show)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func localePlansQuery(db *gorm.DB, locale string) *gorm.DB {
	return db.Model(&Plan{}).Where("locale = ?", locale)
}
