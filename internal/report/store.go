package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pcbstore/ops-console/internal/apperr"
	"github.com/pcbstore/ops-console/internal/models"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// Filter narrows List to an exact date or an inclusive range; either range
// bound may stand alone. Zero value lists everything.
type Filter struct {
	Date      string
	StartDate string
	EndDate   string
}

// Store is the per-user report persistence boundary. Every operation is
// scoped to a single user's records; cross-user access is impossible by
// construction.
type Store interface {
	Create(ctx context.Context, userID uuid.UUID, r *models.Report) error
	List(ctx context.Context, userID uuid.UUID, f Filter) ([]models.Report, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*models.Report, error)
	Update(ctx context.Context, userID uuid.UUID, r *models.Report) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type PgStore struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPgStore(db *pgxpool.Pool, timeout time.Duration) *PgStore {
	return &PgStore{db: db, timeout: timeout}
}

func (s *PgStore) Create(ctx context.Context, userID uuid.UUID, r *models.Report) error {
	data, err := json.Marshal(r.Data)
	if err != nil {
		return fmt.Errorf("marshal report data: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	_, err = s.db.Exec(ctx,
		`INSERT INTO reports (id, user_id, report_date, report_time, ts, report_type, data)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		r.ID, userID, r.Date, r.Time, r.Timestamp, r.Type, data,
	)
	if err != nil {
		return storeErr("insert report", err)
	}
	return nil
}

func (s *PgStore) List(ctx context.Context, userID uuid.UUID, f Filter) ([]models.Report, error) {
	query := `SELECT id, report_date, report_time, ts, report_type, data
			  FROM reports WHERE user_id = $1`
	args := []interface{}{userID}
	argIdx := 2

	if f.Date != "" {
		query += fmt.Sprintf(" AND report_date = $%d", argIdx)
		args = append(args, f.Date)
		argIdx++
	}
	if f.StartDate != "" {
		query += fmt.Sprintf(" AND report_date >= $%d", argIdx)
		args = append(args, f.StartDate)
		argIdx++
	}
	if f.EndDate != "" {
		query += fmt.Sprintf(" AND report_date <= $%d", argIdx)
		args = append(args, f.EndDate)
		argIdx++
	}

	query += " ORDER BY ts DESC"

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, storeErr("list reports", err)
	}
	defer rows.Close()

	var reports []models.Report
	for rows.Next() {
		r, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("scan report: %w", err)
		}
		reports = append(reports, *r)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list reports", err)
	}
	return reports, nil
}

func (s *PgStore) Get(ctx context.Context, userID, id uuid.UUID) (*models.Report, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	row := s.db.QueryRow(ctx,
		`SELECT id, report_date, report_time, ts, report_type, data
		 FROM reports WHERE user_id = $1 AND id = $2`,
		userID, id,
	)
	r, err := scanReport(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFoundf("Report not found.")
	}
	if err != nil {
		return nil, storeErr("get report", err)
	}
	return r, nil
}

func (s *PgStore) Update(ctx context.Context, userID uuid.UUID, r *models.Report) error {
	data, err := json.Marshal(r.Data)
	if err != nil {
		return fmt.Errorf("marshal report data: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	tag, err := s.db.Exec(ctx,
		`UPDATE reports
		 SET report_date = $3, report_time = $4, ts = $5, data = $6, updated_at = now()
		 WHERE user_id = $1 AND id = $2`,
		userID, r.ID, r.Date, r.Time, r.Timestamp, data,
	)
	if err != nil {
		return storeErr("update report", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFoundf("Report not found.")
	}
	return nil
}

func (s *PgStore) Delete(ctx context.Context, userID, id uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	tag, err := s.db.Exec(ctx, "DELETE FROM reports WHERE user_id = $1 AND id = $2", userID, id)
	if err != nil {
		return storeErr("delete report", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFoundf("Report not found.")
	}
	return nil
}

func scanReport(row pgx.Row) (*models.Report, error) {
	var r models.Report
	var date time.Time
	var data []byte
	if err := row.Scan(&r.ID, &date, &r.Time, &r.Timestamp, &r.Type, &data); err != nil {
		return nil, err
	}
	r.Date = date.Format(dateLayout)
	if err := json.Unmarshal(data, &r.Data); err != nil {
		return nil, fmt.Errorf("unmarshal report data: %w", err)
	}
	return &r, nil
}

func storeErr(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, apperr.ErrTimeout)
	}
	return fmt.Errorf("%s: %w", op, err)
}
