package plans

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type ErrorKind string

const (
	ErrorKindInvalid ErrorKind = "invalid"
	ErrorKindLookup  ErrorKind = "lookup"
	ErrorKindCreate  ErrorKind = "create"
	ErrorKindUpdate  ErrorKind = "update"
)

// ItemError is a failure isolated to one catalog entry.
type ItemError struct {
	Title  string    `json:"title"`
	Kind   ErrorKind `json:"kind"`
	Detail string    `json:"detail"`
}

func (e ItemError) String() string {
	return e.Title + ": " + e.Detail
}

type Result struct {
	Total   int
	Created []string
	Updated []string
	Errors  []ItemError
}

// Messages flattens Errors to "<title>: <detail>".
func (r Result) Messages() []string {
	out := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		out = append(out, e.String())
	}
	return out
}

type Seeder struct {
	store Store
	now   func() time.Time
	newID func() string
	log   logrus.FieldLogger
}

type SeederOption func(*Seeder)

func WithClock(now func() time.Time) SeederOption {
	return func(s *Seeder) { s.now = now }
}

func WithIDGenerator(newID func() string) SeederOption {
	return func(s *Seeder) { s.newID = newID }
}

func WithLogger(log logrus.FieldLogger) SeederOption {
	return func(s *Seeder) { s.log = log }
}

func NewSeeder(store Store, opts ...SeederOption) *Seeder {
	s := &Seeder{
		store: store,
		now:   time.Now,
		newID: uuid.NewString,
		log:   logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Seed upserts every descriptor of catalog under locale, keyed by title.
// A returned error means nothing was attempted; per-entry failures are
// reported in Result.Errors and never stop the run.
func (s *Seeder) Seed(ctx context.Context, catalog Catalog, locale string) (Result, error) {
	res := Result{
		Total:   len(catalog),
		Created: []string{},
		Updated: []string{},
		Errors:  []ItemError{},
	}

	if s.store == nil {
		return res, errors.New("plan store not configured")
	}
	if locale == "" {
		return res, errors.New("locale is required")
	}
	if err := s.store.Ping(ctx); err != nil {
		return res, fmt.Errorf("plan store unavailable: %w", err)
	}

	for _, d := range catalog {
		created, ierr := s.upsert(ctx, d, locale)
		entry := s.log.WithFields(logrus.Fields{"title": d.Title, "locale": locale})

		switch {
		case ierr != nil:
			entry.WithField("kind", ierr.Kind).Warnf("plan seed failed: %s", ierr.Detail)
			res.Errors = append(res.Errors, *ierr)
		case created:
			entry.Debug("plan created")
			res.Created = append(res.Created, d.Title)
		default:
			entry.Debug("plan updated")
			res.Updated = append(res.Updated, d.Title)
		}
	}

	s.log.WithFields(logrus.Fields{
		"locale":  locale,
		"total":   res.Total,
		"created": len(res.Created),
		"updated": len(res.Updated),
		"errors":  len(res.Errors),
	}).Info("plan seed finished")

	return res, nil
}

func (s *Seeder) upsert(ctx context.Context, d Descriptor, locale string) (bool, *ItemError) {
	fail := func(kind ErrorKind, err error) (bool, *ItemError) {
		return false, &ItemError{Title: d.Title, Kind: kind, Detail: err.Error()}
	}

	if err := d.Validate(); err != nil {
		return fail(ErrorKindInvalid, err)
	}

	existing, err := s.store.FindByTitle(ctx, d.Title, locale)
	if err != nil {
		return fail(ErrorKindLookup, err)
	}

	now := s.now()
	features := append([]string(nil), d.Features...)

	if existing != nil {
		existing.Subtitle = d.Subtitle
		existing.Description = d.Description
		existing.Icon = d.Icon
		existing.Features = features
		existing.UpdatedAt = now
		if err := s.store.UpdateContent(ctx, existing); err != nil {
			return fail(ErrorKindUpdate, err)
		}
		return false, nil
	}

	id := s.newID()
	p := &Plan{
		ID:             id,
		GroupID:        id,
		Title:          d.Title,
		Subtitle:       d.Subtitle,
		Description:    d.Description,
		Icon:           d.Icon,
		Features:       features,
		Locale:         locale,
		ShowOnHomePage: false,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.store.Create(ctx, p); err != nil {
		return fail(ErrorKindCreate, err)
	}
	return true, nil
}
