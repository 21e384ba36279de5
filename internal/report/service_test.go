package report

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pcbstore/ops-console/internal/apperr"
	"github.com/pcbstore/ops-console/internal/models"
)

type memStore struct {
	reports map[uuid.UUID]models.Report
}

func newMemStore() *memStore {
	return &memStore{reports: make(map[uuid.UUID]models.Report)}
}

func (s *memStore) Create(_ context.Context, _ uuid.UUID, r *models.Report) error {
	s.reports[r.ID] = *r
	return nil
}

func (s *memStore) List(_ context.Context, _ uuid.UUID, f Filter) ([]models.Report, error) {
	var out []models.Report
	for _, r := range s.reports {
		if f.Date != "" && r.Date != f.Date {
			continue
		}
		if f.StartDate != "" && r.Date < f.StartDate {
			continue
		}
		if f.EndDate != "" && r.Date > f.EndDate {
			continue
		}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out, nil
}

func (s *memStore) Get(_ context.Context, _ uuid.UUID, id uuid.UUID) (*models.Report, error) {
	r, ok := s.reports[id]
	if !ok {
		return nil, apperr.NotFoundf("Report not found.")
	}
	return &r, nil
}

func (s *memStore) Update(_ context.Context, _ uuid.UUID, r *models.Report) error {
	if _, ok := s.reports[r.ID]; !ok {
		return apperr.NotFoundf("Report not found.")
	}
	s.reports[r.ID] = *r
	return nil
}

func (s *memStore) Delete(_ context.Context, _ uuid.UUID, id uuid.UUID) error {
	if _, ok := s.reports[id]; !ok {
		return apperr.NotFoundf("Report not found.")
	}
	delete(s.reports, id)
	return nil
}

type memCache struct {
	data    map[string][]byte
	deleted []string
}

func newMemCache() *memCache {
	return &memCache{data: make(map[string][]byte)}
}

func (c *memCache) Get(_ context.Context, key string, dest interface{}) error {
	b, ok := c.data[key]
	if !ok {
		return errors.New("cache miss")
	}
	return json.Unmarshal(b, dest)
}

func (c *memCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = b
	return nil
}

func (c *memCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.data, k)
		c.deleted = append(c.deleted, k)
	}
	return nil
}

func newTestService(store Store, cache Cache) *Service {
	s := NewService(store, cache, 10*time.Minute)
	s.now = func() time.Time {
		return time.Date(2025, 1, 10, 14, 5, 0, 0, time.Local)
	}
	return s
}

func strPtr(s string) *string { return &s }

func TestServiceCreateDefaultsDateAndTime(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store, nil)

	created, err := svc.Create(context.Background(), uuid.New(), CreateRequest{Data: &models.ReportData{}})
	require.NoError(t, err)

	assert.Equal(t, "2025-01-10", created.Date)
	assert.Equal(t, "14:00", created.Time)
	assert.Equal(t, time.Date(2025, 1, 10, 14, 0, 0, 0, time.Local), created.Timestamp)
	assert.Equal(t, models.ReportTypeHourly, created.Type)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Len(t, store.reports, 1)
}

func TestServiceCreateRequiresData(t *testing.T) {
	svc := newTestService(newMemStore(), nil)

	_, err := svc.Create(context.Background(), uuid.New(), CreateRequest{})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrValidation)
	assert.Equal(t, "Report data is required.", err.Error())
}

func TestServiceCreateRejectsBadDate(t *testing.T) {
	svc := newTestService(newMemStore(), nil)

	_, err := svc.Create(context.Background(), uuid.New(), CreateRequest{
		Date: "10/01/2025",
		Data: &models.ReportData{},
	})

	assert.ErrorIs(t, err, apperr.ErrValidation)
	assert.Equal(t, "Invalid date format.", err.Error())
}

func TestServiceCreateNormalizesCounters(t *testing.T) {
	svc := newTestService(newMemStore(), nil)

	data := models.ReportData{}
	data.Description.Generated = -3
	data.ImageRenamed.Generated = 5 // imageRenamed only carries "fixed"
	data.ImageRenamed.Fixed = 2

	created, err := svc.Create(context.Background(), uuid.New(), CreateRequest{Data: &data})
	require.NoError(t, err)

	assert.Equal(t, 0, created.Data.Description.Generated)
	assert.Equal(t, 0, created.Data.ImageRenamed.Generated)
	assert.Equal(t, 2, created.Data.ImageRenamed.Fixed)
}

func TestServiceDailyNotFoundWithoutReports(t *testing.T) {
	svc := newTestService(newMemStore(), nil)

	_, err := svc.Daily(context.Background(), uuid.New(), "2025-01-10")

	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.Equal(t, "No reports found.", err.Error())
}

func TestServiceDailyRejectsBadDate(t *testing.T) {
	svc := newTestService(newMemStore(), nil)

	_, err := svc.Daily(context.Background(), uuid.New(), "not-a-date")

	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestServiceDailyAggregatesHourlyReports(t *testing.T) {
	svc := newTestService(newMemStore(), nil)
	userID := uuid.New()
	ctx := context.Background()

	first := models.ReportData{}
	first.Description.Generated = 2
	first.FAQ.Added = 1
	_, err := svc.Create(ctx, userID, CreateRequest{Date: "2025-01-10", Time: "09:00", Data: &first})
	require.NoError(t, err)

	second := models.ReportData{}
	second.Description.Generated = 3
	second.Brand.Added = 1
	_, err = svc.Create(ctx, userID, CreateRequest{Date: "2025-01-10", Time: "10:00", Data: &second})
	require.NoError(t, err)

	daily, err := svc.Daily(ctx, userID, "2025-01-10")
	require.NoError(t, err)

	assert.Equal(t, "daily", daily.Type)
	assert.Equal(t, 2, daily.HourlyReportsCount)
	assert.Equal(t, 5, daily.Data.Description.Generated)
	assert.Equal(t, 1, daily.Data.FAQ.Added)
	assert.Contains(t, daily.FormattedText, "Today's work done (2025-01-10):")
	assert.Contains(t, daily.FormattedText, "- description generated 5")
}

func TestServiceDailyServesCachedSummary(t *testing.T) {
	store := newMemStore()
	cache := newMemCache()
	svc := newTestService(store, cache)
	userID := uuid.New()
	ctx := context.Background()

	data := models.ReportData{}
	data.Brand.Added = 1
	created, err := svc.Create(ctx, userID, CreateRequest{Date: "2025-01-10", Time: "09:00", Data: &data})
	require.NoError(t, err)

	first, err := svc.Daily(ctx, userID, "2025-01-10")
	require.NoError(t, err)

	// Once cached, the summary survives the underlying records going away.
	delete(store.reports, created.ID)

	second, err := svc.Daily(ctx, userID, "2025-01-10")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestServiceCreateInvalidatesDailyCache(t *testing.T) {
	cache := newMemCache()
	svc := newTestService(newMemStore(), cache)
	userID := uuid.New()
	ctx := context.Background()

	data := models.ReportData{}
	data.Brand.Added = 1
	_, err := svc.Create(ctx, userID, CreateRequest{Date: "2025-01-10", Time: "09:00", Data: &data})
	require.NoError(t, err)

	daily, err := svc.Daily(ctx, userID, "2025-01-10")
	require.NoError(t, err)
	require.Equal(t, 1, daily.HourlyReportsCount)

	_, err = svc.Create(ctx, userID, CreateRequest{Date: "2025-01-10", Time: "10:00", Data: &data})
	require.NoError(t, err)

	daily, err = svc.Daily(ctx, userID, "2025-01-10")
	require.NoError(t, err)
	assert.Equal(t, 2, daily.HourlyReportsCount)
	assert.Equal(t, 2, daily.Data.Brand.Added)
}

func TestServiceUpdateInvalidatesBothDates(t *testing.T) {
	cache := newMemCache()
	svc := newTestService(newMemStore(), cache)
	userID := uuid.New()
	ctx := context.Background()

	data := models.ReportData{}
	data.Brand.Added = 1
	created, err := svc.Create(ctx, userID, CreateRequest{Date: "2025-01-10", Time: "09:00", Data: &data})
	require.NoError(t, err)

	_, err = svc.Daily(ctx, userID, "2025-01-10")
	require.NoError(t, err)

	_, err = svc.Update(ctx, userID, created.ID, Patch{Date: strPtr("2025-01-11")})
	require.NoError(t, err)

	assert.Contains(t, cache.deleted, dailyCacheKey(userID, "2025-01-10"))
	assert.Contains(t, cache.deleted, dailyCacheKey(userID, "2025-01-11"))

	_, err = svc.Daily(ctx, userID, "2025-01-10")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestServiceUpdatePatchSemantics(t *testing.T) {
	svc := newTestService(newMemStore(), nil)
	userID := uuid.New()
	ctx := context.Background()

	data := models.ReportData{}
	data.Brand.Added = 1
	created, err := svc.Create(ctx, userID, CreateRequest{Date: "2025-01-10", Time: "09:00", Data: &data})
	require.NoError(t, err)

	newData := models.ReportData{}
	newData.Price.Added = 2
	updated, err := svc.Update(ctx, userID, created.ID, Patch{Data: &newData})
	require.NoError(t, err)

	// Data-only patch keeps the identity and the recorded moment.
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "2025-01-10", updated.Date)
	assert.Equal(t, "09:00", updated.Time)
	assert.Equal(t, created.Timestamp, updated.Timestamp)
	assert.Equal(t, 2, updated.Data.Price.Added)
	assert.Equal(t, 0, updated.Data.Brand.Added)

	updated, err = svc.Update(ctx, userID, created.ID, Patch{Time: strPtr("11:00")})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 10, 11, 0, 0, 0, time.Local), updated.Timestamp)

	_, err = svc.Update(ctx, userID, created.ID, Patch{Time: strPtr("25:99")})
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestServiceUpdateMissingReport(t *testing.T) {
	svc := newTestService(newMemStore(), nil)

	_, err := svc.Update(context.Background(), uuid.New(), uuid.New(), Patch{})

	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestServiceDeleteMissingReportLeavesStoreIntact(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store, nil)
	userID := uuid.New()
	ctx := context.Background()

	_, err := svc.Create(ctx, userID, CreateRequest{Date: "2025-01-10", Time: "09:00", Data: &models.ReportData{}})
	require.NoError(t, err)

	err = svc.Delete(ctx, userID, uuid.New())

	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.Len(t, store.reports, 1)
}

func TestServiceDailyRangeGroupsPerDateNewestFirst(t *testing.T) {
	svc := newTestService(newMemStore(), nil)
	userID := uuid.New()
	ctx := context.Background()

	data := models.ReportData{}
	data.Brand.Added = 1
	for _, slot := range []struct{ date, hour string }{
		{"2025-01-10", "09:00"},
		{"2025-01-10", "10:00"},
		{"2025-01-12", "09:00"},
	} {
		_, err := svc.Create(ctx, userID, CreateRequest{Date: slot.date, Time: slot.hour, Data: &data})
		require.NoError(t, err)
	}

	reports, err := svc.DailyRange(ctx, userID, "2025-01-01", "2025-01-31")
	require.NoError(t, err)
	require.Len(t, reports, 2)

	assert.Equal(t, "2025-01-12", reports[0].Date)
	assert.Equal(t, 1, reports[0].HourlyReportsCount)
	assert.Equal(t, "2025-01-10", reports[1].Date)
	assert.Equal(t, 2, reports[1].HourlyReportsCount)
	assert.Equal(t, 2, reports[1].Data.Brand.Added)
}

func TestServiceDailyRangeEmptyIsNotAnError(t *testing.T) {
	svc := newTestService(newMemStore(), nil)

	reports, err := svc.DailyRange(context.Background(), uuid.New(), "2025-01-01", "2025-01-31")

	require.NoError(t, err)
	assert.Empty(t, reports)
}
