package plans

import (
	"context"
	"errors"
	"testing"
	"time"

	"mlmsite-api/internal/testutil"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixedClock struct{ t time.Time }

func (c *fixedClock) Now() time.Time { return c.t }

func newTestSeeder(t *testing.T, store Store, clock *fixedClock) *Seeder {
	t.Helper()
	logger, _ := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return NewSeeder(store, WithClock(clock.Now), WithLogger(logger))
}

func newGormStore(t *testing.T) (*GormStore, *gorm.DB) {
	t.Helper()
	db := testutil.NewDB(t, &Plan{})
	return NewGormStore(db), db
}

// flakyStore fails writes or lookups for selected titles.
type flakyStore struct {
	Store
	failCreate map[string]bool
	failLookup map[string]bool
	pingErr    error
}

func (f *flakyStore) Ping(ctx context.Context) error {
	if f.pingErr != nil {
		return f.pingErr
	}
	return f.Store.Ping(ctx)
}

func (f *flakyStore) FindByTitle(ctx context.Context, title, locale string) (*Plan, error) {
	if f.failLookup[title] {
		return nil, errors.New("connection reset by peer")
	}
	return f.Store.FindByTitle(ctx, title, locale)
}

func (f *flakyStore) Create(ctx context.Context, p *Plan) error {
	if f.failCreate[p.Title] {
		return errors.New("simulated insert failure")
	}
	return f.Store.Create(ctx, p)
}

func TestSeed_FirstRunCreatesWholeCatalog(t *testing.T) {
	store, db := newGormStore(t)
	clock := &fixedClock{t: time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)}
	catalog := DefaultCatalog()

	res, err := newTestSeeder(t, store, clock).Seed(context.Background(), catalog, SeedLocale)
	require.NoError(t, err)

	assert.Equal(t, 20, res.Total)
	assert.Equal(t, catalog.Titles(), res.Created)
	assert.Empty(t, res.Updated)
	assert.Empty(t, res.Errors)

	var stored []Plan
	require.NoError(t, db.Find(&stored).Error)
	require.Len(t, stored, 20)
	for _, p := range stored {
		assert.NotEmpty(t, p.ID)
		assert.Equal(t, p.ID, p.GroupID, p.Title)
		assert.Equal(t, "en", p.Locale)
		assert.False(t, p.ShowOnHomePage)
		assert.WithinDuration(t, clock.t, p.UpdatedAt, time.Second)
	}
}

func TestSeed_SecondRunOnlyUpdates(t *testing.T) {
	store, db := newGormStore(t)
	clock := &fixedClock{t: time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)}
	seeder := newTestSeeder(t, store, clock)
	catalog := DefaultCatalog()

	_, err := seeder.Seed(context.Background(), catalog, SeedLocale)
	require.NoError(t, err)

	var before []Plan
	require.NoError(t, db.Order("title").Find(&before).Error)

	clock.t = clock.t.Add(time.Hour)
	res, err := seeder.Seed(context.Background(), catalog, SeedLocale)
	require.NoError(t, err)

	assert.Empty(t, res.Created)
	assert.Equal(t, catalog.Titles(), res.Updated)
	assert.Empty(t, res.Errors)

	var after []Plan
	require.NoError(t, db.Order("title").Find(&after).Error)
	require.Len(t, after, len(before))
	for i := range before {
		b, a := before[i], after[i]
		assert.Equal(t, b.ID, a.ID)
		assert.Equal(t, b.GroupID, a.GroupID)
		assert.Equal(t, b.Title, a.Title)
		assert.Equal(t, b.Subtitle, a.Subtitle)
		assert.Equal(t, b.Description, a.Description)
		assert.Equal(t, b.Icon, a.Icon)
		assert.Equal(t, b.Features, a.Features)
		assert.WithinDuration(t, clock.t, a.UpdatedAt, time.Second)
	}
}

func TestSeed_UpdateKeepsIdentity(t *testing.T) {
	store, db := newGormStore(t)
	clock := &fixedClock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	seeder := newTestSeeder(t, store, clock)

	catalog := Catalog{{
		Title:       "MLM Binary Plan",
		Subtitle:    "Two legs",
		Description: "first version",
		Icon:        "git-branch",
		Features:    []string{"a", "b"},
	}}
	res, err := seeder.Seed(context.Background(), catalog, SeedLocale)
	require.NoError(t, err)
	require.Equal(t, []string{"MLM Binary Plan"}, res.Created)

	var first Plan
	require.NoError(t, db.First(&first, "title = ?", "MLM Binary Plan").Error)
	assert.Equal(t, first.ID, first.GroupID)

	catalog[0].Description = "second version"
	catalog[0].Features = []string{"b", "a", "c"}
	clock.t = clock.t.Add(48 * time.Hour)

	res, err = seeder.Seed(context.Background(), catalog, SeedLocale)
	require.NoError(t, err)
	assert.Equal(t, []string{"MLM Binary Plan"}, res.Updated)

	var second Plan
	require.NoError(t, db.First(&second, "title = ?", "MLM Binary Plan").Error)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.GroupID, second.GroupID)
	assert.Equal(t, first.Locale, second.Locale)
	assert.Equal(t, "second version", second.Description)
	assert.Equal(t, []string{"b", "a", "c"}, second.Features)
	assert.WithinDuration(t, clock.t, second.UpdatedAt, time.Second)
	assert.WithinDuration(t, first.CreatedAt, second.CreatedAt, time.Second)
}

func TestSeed_ShowOnHomePageSurvivesUpdate(t *testing.T) {
	store, db := newGormStore(t)
	seeder := newTestSeeder(t, store, &fixedClock{t: time.Now().UTC()})

	_, err := seeder.Seed(context.Background(), DefaultCatalog(), SeedLocale)
	require.NoError(t, err)

	require.NoError(t, db.Model(&Plan{}).
		Where("title = ?", "MLM Matrix Plan").
		Update("show_on_home_page", true).Error)

	res, err := seeder.Seed(context.Background(), DefaultCatalog(), SeedLocale)
	require.NoError(t, err)
	assert.Contains(t, res.Updated, "MLM Matrix Plan")

	var p Plan
	require.NoError(t, db.First(&p, "title = ?", "MLM Matrix Plan").Error)
	assert.True(t, p.ShowOnHomePage)
}

func TestSeed_ItemFailureDoesNotStopBatch(t *testing.T) {
	gs, db := newGormStore(t)
	store := &flakyStore{Store: gs, failCreate: map[string]bool{"MLM Matrix Plan": true}}
	catalog := DefaultCatalog()

	res, err := newTestSeeder(t, store, &fixedClock{t: time.Now().UTC()}).Seed(context.Background(), catalog, SeedLocale)
	require.NoError(t, err)

	assert.Len(t, res.Created, 19)
	assert.NotContains(t, res.Created, "MLM Matrix Plan")
	assert.NotContains(t, res.Updated, "MLM Matrix Plan")
	require.Len(t, res.Errors, 1)
	assert.Equal(t, ItemError{
		Title:  "MLM Matrix Plan",
		Kind:   ErrorKindCreate,
		Detail: "simulated insert failure",
	}, res.Errors[0])
	assert.Equal(t, []string{"MLM Matrix Plan: simulated insert failure"}, res.Messages())

	var count int64
	require.NoError(t, db.Model(&Plan{}).Count(&count).Error)
	assert.EqualValues(t, 19, count)
}

func TestSeed_LookupFailureIsItemLevel(t *testing.T) {
	gs, _ := newGormStore(t)
	store := &flakyStore{Store: gs, failLookup: map[string]bool{"MLM Hybrid Plan": true}}

	res, err := newTestSeeder(t, store, &fixedClock{t: time.Now().UTC()}).Seed(context.Background(), DefaultCatalog(), SeedLocale)
	require.NoError(t, err)

	assert.Len(t, res.Created, 19)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, ErrorKindLookup, res.Errors[0].Kind)
	assert.Equal(t, "MLM Hybrid Plan", res.Errors[0].Title)
}

func TestSeed_UpdateOfVanishedRecordIsItemLevel(t *testing.T) {
	gs, db := newGormStore(t)
	clock := &fixedClock{t: time.Now().UTC()}
	catalog := DefaultCatalog()[:2]

	_, err := newTestSeeder(t, gs, clock).Seed(context.Background(), catalog, SeedLocale)
	require.NoError(t, err)

	// Removing the row between lookup and update is simulated by a store
	// whose lookup returns a stale record.
	stale, err := gs.FindByTitle(context.Background(), catalog[0].Title, SeedLocale)
	require.NoError(t, err)
	require.NoError(t, db.Delete(&Plan{}, "id = ?", stale.ID).Error)

	store := &staleStore{GormStore: gs, stale: stale}
	res, err := newTestSeeder(t, store, clock).Seed(context.Background(), catalog, SeedLocale)
	require.NoError(t, err)

	require.Len(t, res.Errors, 1)
	assert.Equal(t, ErrorKindUpdate, res.Errors[0].Kind)
	assert.Equal(t, []string{catalog[1].Title}, res.Updated)
}

func TestSeed_InvalidDescriptorIsItemLevel(t *testing.T) {
	gs, db := newGormStore(t)
	catalog := DefaultCatalog()
	catalog[5].Icon = ""

	res, err := newTestSeeder(t, gs, &fixedClock{t: time.Now().UTC()}).Seed(context.Background(), catalog, SeedLocale)
	require.NoError(t, err)

	assert.Len(t, res.Created, 19)
	assert.NotContains(t, res.Created, catalog[5].Title)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, ItemError{
		Title:  "MLM Generation Plan",
		Kind:   ErrorKindInvalid,
		Detail: "icon is required",
	}, res.Errors[0])

	var count int64
	require.NoError(t, db.Model(&Plan{}).Count(&count).Error)
	assert.EqualValues(t, 19, count)
}

// cancellingStore cancels the run once `after` lookups have been served.
type cancellingStore struct {
	Store
	cancel  context.CancelFunc
	after   int
	lookups int
}

func (c *cancellingStore) FindByTitle(ctx context.Context, title, locale string) (*Plan, error) {
	if c.lookups == c.after {
		c.cancel()
	}
	c.lookups++
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return c.Store.FindByTitle(ctx, title, locale)
}

func TestSeed_CancelledMidRunReportsRemainingItems(t *testing.T) {
	gs, db := newGormStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := &cancellingStore{Store: gs, cancel: cancel, after: 3}
	catalog := DefaultCatalog()

	res, err := newTestSeeder(t, store, &fixedClock{t: time.Now().UTC()}).Seed(ctx, catalog, SeedLocale)
	require.NoError(t, err)

	assert.Equal(t, catalog.Titles()[:3], res.Created)
	require.Len(t, res.Errors, len(catalog)-3)
	for i, e := range res.Errors {
		assert.Equal(t, catalog[i+3].Title, e.Title)
		assert.Equal(t, ErrorKindLookup, e.Kind)
		assert.Equal(t, context.Canceled.Error(), e.Detail)
	}
	assert.Equal(t, 20, store.lookups, "every item is attempted")

	var count int64
	require.NoError(t, db.Model(&Plan{}).Count(&count).Error)
	assert.EqualValues(t, 3, count)
}

type staleStore struct {
	*GormStore
	stale *Plan
}

func (s *staleStore) FindByTitle(ctx context.Context, title, locale string) (*Plan, error) {
	if title == s.stale.Title {
		cp := *s.stale
		return &cp, nil
	}
	return s.GormStore.FindByTitle(ctx, title, locale)
}

func TestSeed_SystemicFailures(t *testing.T) {
	t.Run("store unavailable", func(t *testing.T) {
		gs, db := newGormStore(t)
		store := &flakyStore{Store: gs, pingErr: errors.New("dial tcp: connection refused")}

		_, err := newTestSeeder(t, store, &fixedClock{t: time.Now()}).Seed(context.Background(), DefaultCatalog(), SeedLocale)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "plan store unavailable")

		var count int64
		require.NoError(t, db.Model(&Plan{}).Count(&count).Error)
		assert.Zero(t, count)
	})

	t.Run("missing locale", func(t *testing.T) {
		gs, _ := newGormStore(t)
		_, err := newTestSeeder(t, gs, &fixedClock{t: time.Now()}).Seed(context.Background(), DefaultCatalog(), "")
		require.Error(t, err)
	})

	t.Run("nil store", func(t *testing.T) {
		_, err := NewSeeder(nil).Seed(context.Background(), DefaultCatalog(), SeedLocale)
		require.Error(t, err)
	})
}

func TestSeed_DuplicateTitlesUpdateOldestOnly(t *testing.T) {
	gs, db := newGormStore(t)
	older := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := older.Add(24 * time.Hour)

	for _, p := range []Plan{
		{ID: "11111111-1111-1111-1111-111111111111", GroupID: "11111111-1111-1111-1111-111111111111", Title: "MLM Binary Plan", Description: "old", Locale: "en", CreatedAt: older, UpdatedAt: older},
		{ID: "22222222-2222-2222-2222-222222222222", GroupID: "22222222-2222-2222-2222-222222222222", Title: "MLM Binary Plan", Description: "dup", Locale: "en", CreatedAt: newer, UpdatedAt: newer},
	} {
		require.NoError(t, db.Create(&p).Error)
	}

	catalog := DefaultCatalog()[:1]
	res, err := newTestSeeder(t, gs, &fixedClock{t: time.Now().UTC()}).Seed(context.Background(), catalog, SeedLocale)
	require.NoError(t, err)
	assert.Equal(t, []string{"MLM Binary Plan"}, res.Updated)

	var first, second Plan
	require.NoError(t, db.First(&first, "id = ?", "11111111-1111-1111-1111-111111111111").Error)
	require.NoError(t, db.First(&second, "id = ?", "22222222-2222-2222-2222-222222222222").Error)
	assert.Equal(t, catalog[0].Description, first.Description)
	assert.Equal(t, "dup", second.Description)
}

func TestSeed_OtherLocalesUntouched(t *testing.T) {
	gs, db := newGormStore(t)
	es := Plan{
		ID:          "33333333-3333-3333-3333-333333333333",
		GroupID:     "33333333-3333-3333-3333-333333333333",
		Title:       "MLM Binary Plan",
		Description: "Plan binario",
		Locale:      "es",
	}
	require.NoError(t, db.Create(&es).Error)

	res, err := newTestSeeder(t, gs, &fixedClock{t: time.Now().UTC()}).Seed(context.Background(), DefaultCatalog()[:1], SeedLocale)
	require.NoError(t, err)
	assert.Equal(t, []string{"MLM Binary Plan"}, res.Created)

	var got Plan
	require.NoError(t, db.First(&got, "id = ?", es.ID).Error)
	assert.Equal(t, "Plan binario", got.Description)
}

func TestSeed_UsesInjectedIDs(t *testing.T) {
	gs, db := newGormStore(t)
	logger, _ := test.NewNullLogger()
	seeder := NewSeeder(gs,
		WithIDGenerator(func() string { return "44444444-4444-4444-4444-444444444444" }),
		WithLogger(logger),
	)

	_, err := seeder.Seed(context.Background(), DefaultCatalog()[:1], SeedLocale)
	require.NoError(t, err)

	var p Plan
	require.NoError(t, db.First(&p).Error)
	assert.Equal(t, "44444444-4444-4444-4444-444444444444", p.ID)
	assert.Equal(t, p.ID, p.GroupID)
}
