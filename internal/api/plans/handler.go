package plans

import (
	"context"

	"mlmsite-api/internal/domain/plans"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Queries are the read and flag operations behind the listing endpoints.
type Queries interface {
	List(ctx context.Context, locale string, homeOnly bool) ([]plans.Plan, error)
	SetShowOnHomePage(ctx context.Context, id string, show bool) (bool, error)
}

type Handler struct {
	store   plans.Store
	queries Queries
	catalog plans.Catalog
	opts    []plans.SeederOption
}

func NewHandler(store plans.Store, queries Queries, catalog plans.Catalog, opts ...plans.SeederOption) *Handler {
	return &Handler{store: store, queries: queries, catalog: catalog, opts: opts}
}

// NewGormHandler serves the compiled-in catalog from db.
func NewGormHandler(db *gorm.DB) *Handler {
	store := plans.NewGormStore(db)
	return NewHandler(store, store, plans.DefaultCatalog(), plans.WithLogger(logrus.StandardLogger()))
}
