package report

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/pcbstore/ops-console/internal/apperr"
	"github.com/pcbstore/ops-console/internal/models"
)

// Cache holds rendered daily summaries. Failures here are never fatal: a
// cache error reads as a miss and writes are best-effort.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

type Service struct {
	store Store
	cache Cache
	ttl   time.Duration
	now   func() time.Time
}

func NewService(store Store, cache Cache, ttl time.Duration) *Service {
	return &Service{store: store, cache: cache, ttl: ttl, now: time.Now}
}

type CreateRequest struct {
	Date string             `json:"date"`
	Time string             `json:"time"`
	Data *models.ReportData `json:"data"`
}

// Patch carries the fields a PUT may replace. Absent fields keep their stored
// value; the record id and derived timestamp are never client-settable.
type Patch struct {
	Date *string            `json:"date"`
	Time *string            `json:"time"`
	Data *models.ReportData `json:"data"`
}

// DailyReport is one date's aggregation of hourly reports.
type DailyReport struct {
	Date               string            `json:"date"`
	Type               string            `json:"type"`
	HourlyReportsCount int               `json:"hourlyReportsCount"`
	Data               models.ReportData `json:"data"`
	FormattedText      string            `json:"formattedText"`
}

// Create stores one hourly report. Date defaults to today and time to the
// current hour ("HH:00") in server local time.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, req CreateRequest) (*models.Report, error) {
	if req.Data == nil {
		return nil, apperr.Validationf("Report data is required.")
	}

	now := s.now()
	date := req.Date
	if date == "" {
		date = now.Format(dateLayout)
	}
	hour := req.Time
	if hour == "" {
		hour = fmt.Sprintf("%02d:00", now.Hour())
	}

	ts, err := combineInstant(date, hour)
	if err != nil {
		return nil, err
	}

	data := *req.Data
	data.Normalize()

	r := &models.Report{
		ID:        uuid.New(),
		Date:      date,
		Time:      hour,
		Timestamp: ts,
		Type:      models.ReportTypeHourly,
		Data:      data,
	}

	if err := s.store.Create(ctx, userID, r); err != nil {
		return nil, err
	}
	s.invalidateDaily(ctx, userID, date)
	return r, nil
}

func (s *Service) List(ctx context.Context, userID uuid.UUID, f Filter) ([]models.Report, error) {
	return s.store.List(ctx, userID, f)
}

// Update applies the patch over the stored record: present fields replace,
// the id is re-pinned, and the timestamp is recomputed whenever date or time
// change.
func (s *Service) Update(ctx context.Context, userID, id uuid.UUID, patch Patch) (*models.Report, error) {
	existing, err := s.store.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	oldDate := existing.Date

	if patch.Date != nil {
		existing.Date = *patch.Date
	}
	if patch.Time != nil {
		existing.Time = *patch.Time
	}
	if patch.Date != nil || patch.Time != nil {
		ts, err := combineInstant(existing.Date, existing.Time)
		if err != nil {
			return nil, err
		}
		existing.Timestamp = ts
	}
	if patch.Data != nil {
		data := *patch.Data
		data.Normalize()
		existing.Data = data
	}

	if err := s.store.Update(ctx, userID, existing); err != nil {
		return nil, err
	}
	s.invalidateDaily(ctx, userID, oldDate, existing.Date)
	return existing, nil
}

func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	existing, err := s.store.Get(ctx, userID, id)
	if err != nil {
		return err
	}
	if err := s.store.Delete(ctx, userID, id); err != nil {
		return err
	}
	s.invalidateDaily(ctx, userID, existing.Date)
	return nil
}

// Daily aggregates every hourly report recorded on date. No records is a
// NotFound, not an empty aggregation.
func (s *Service) Daily(ctx context.Context, userID uuid.UUID, date string) (*DailyReport, error) {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, apperr.Validationf("Invalid date format.")
	}

	key := dailyCacheKey(userID, date)
	if s.cache != nil {
		var cached DailyReport
		if err := s.cache.Get(ctx, key, &cached); err == nil {
			return &cached, nil
		}
	}

	hourly, err := s.store.List(ctx, userID, Filter{Date: date})
	if err != nil {
		return nil, err
	}
	if len(hourly) == 0 {
		return nil, apperr.NotFoundf("No reports found.")
	}

	daily := buildDaily(date, hourly)

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, daily, s.ttl); err != nil {
			slog.Warn("daily report cache write failed", "error", err)
		}
	}
	return daily, nil
}

// DailyRange aggregates per distinct date within the inclusive range (either
// bound optional), newest date first. One aggregation per date, never one
// pooled aggregation across the range.
func (s *Service) DailyRange(ctx context.Context, userID uuid.UUID, startDate, endDate string) ([]DailyReport, error) {
	hourly, err := s.store.List(ctx, userID, Filter{StartDate: startDate, EndDate: endDate})
	if err != nil {
		return nil, err
	}

	byDate := make(map[string][]models.Report)
	for _, r := range hourly {
		byDate[r.Date] = append(byDate[r.Date], r)
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	reports := make([]DailyReport, 0, len(dates))
	for _, date := range dates {
		reports = append(reports, *buildDaily(date, byDate[date]))
	}
	return reports, nil
}

// FormatHourly renders one record's counters as the hourly share text.
func (s *Service) FormatHourly(r *models.Report) string {
	return Format(r.Data, KindHourly, "")
}

func buildDaily(date string, hourly []models.Report) *DailyReport {
	data := Aggregate(hourly)
	return &DailyReport{
		Date:               date,
		Type:               "daily",
		HourlyReportsCount: len(hourly),
		Data:               data,
		FormattedText:      Format(data, KindDaily, date),
	}
}

func (s *Service) invalidateDaily(ctx context.Context, userID uuid.UUID, dates ...string) {
	if s.cache == nil {
		return
	}
	keys := make([]string, 0, len(dates))
	seen := make(map[string]bool, len(dates))
	for _, d := range dates {
		if !seen[d] {
			seen[d] = true
			keys = append(keys, dailyCacheKey(userID, d))
		}
	}
	if err := s.cache.Delete(ctx, keys...); err != nil {
		slog.Warn("daily report cache invalidation failed", "error", err)
	}
}

func dailyCacheKey(userID uuid.UUID, date string) string {
	return fmt.Sprintf("daily:%s:%s", userID, date)
}

func combineInstant(date, hour string) (time.Time, error) {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return time.Time{}, apperr.Validationf("Invalid date format.")
	}
	ts, err := time.ParseInLocation(dateLayout+" "+timeLayout, date+" "+hour, time.Local)
	if err != nil {
		return time.Time{}, apperr.Validationf("Invalid time format.")
	}
	return ts, nil
}
