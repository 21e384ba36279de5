package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pcbstore/ops-console/internal/apperr"
	"github.com/pcbstore/ops-console/internal/models"
)

type Family string

const (
	FamilyProduct  Family = "product"
	FamilyCategory Family = "category"
)

const (
	SlotStaticPrompt       = "staticPrompt"
	SlotMainPromptTemplate = "mainPromptTemplate"
	SlotCategoryPrompt1    = "categoryPrompt1"
	SlotCategoryPrompt2    = "categoryPrompt2"
)

// Store persists per-user template overrides. A missing row or a slot that is
// blank after trimming reads back as the compiled-in default.
type Store struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewStore(db *pgxpool.Pool, timeout time.Duration) *Store {
	return &Store{db: db, timeout: timeout}
}

func (s *Store) GetProduct(ctx context.Context, userID uuid.UUID) (models.ProductPrompts, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var sp, mp string
	err := s.db.QueryRow(ctx,
		"SELECT static_prompt, main_prompt_template FROM user_prompts WHERE user_id = $1", userID,
	).Scan(&sp, &mp)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return models.ProductPrompts{}, storeErr("get product prompts", err)
	}

	return models.ProductPrompts{
		StaticPrompt:       orDefault(sp, DefaultStaticPrompt),
		MainPromptTemplate: orDefault(mp, DefaultMainPromptTemplate),
	}, nil
}

func (s *Store) SaveProduct(ctx context.Context, userID uuid.UUID, p models.ProductPrompts) error {
	if p.StaticPrompt == "" || p.MainPromptTemplate == "" {
		return apperr.Validationf("Prompts data is incomplete.")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	_, err := s.db.Exec(ctx,
		`INSERT INTO user_prompts (user_id, static_prompt, main_prompt_template, updated_at)
		 VALUES ($1, $2, $3, now())
		 ON CONFLICT (user_id) DO UPDATE
		 SET static_prompt = EXCLUDED.static_prompt,
		     main_prompt_template = EXCLUDED.main_prompt_template,
		     updated_at = now()`,
		userID, p.StaticPrompt, p.MainPromptTemplate,
	)
	if err != nil {
		return storeErr("save product prompts", err)
	}
	return nil
}

func (s *Store) GetCategory(ctx context.Context, userID uuid.UUID) (models.CategoryPrompts, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var p1, p2 string
	err := s.db.QueryRow(ctx,
		"SELECT category_prompt1, category_prompt2 FROM user_category_prompts WHERE user_id = $1", userID,
	).Scan(&p1, &p2)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return models.CategoryPrompts{}, storeErr("get category prompts", err)
	}

	return models.CategoryPrompts{
		CategoryPrompt1: orDefault(p1, DefaultCategoryPrompt1),
		CategoryPrompt2: orDefault(p2, DefaultCategoryPrompt2),
	}, nil
}

// SaveCategory stores both slots trimmed; both must be non-blank or nothing
// is written.
func (s *Store) SaveCategory(ctx context.Context, userID uuid.UUID, p models.CategoryPrompts) error {
	p1 := strings.TrimSpace(p.CategoryPrompt1)
	p2 := strings.TrimSpace(p.CategoryPrompt2)
	if p1 == "" || p2 == "" {
		return apperr.Validationf("Category prompts data is incomplete. Both prompts are required.")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	_, err := s.db.Exec(ctx,
		`INSERT INTO user_category_prompts (user_id, category_prompt1, category_prompt2, updated_at)
		 VALUES ($1, $2, $3, now())
		 ON CONFLICT (user_id) DO UPDATE
		 SET category_prompt1 = EXCLUDED.category_prompt1,
		     category_prompt2 = EXCLUDED.category_prompt2,
		     updated_at = now()`,
		userID, p1, p2,
	)
	if err != nil {
		return storeErr("save category prompts", err)
	}
	return nil
}

// ResetAll replaces both of a family's slots with the defaults.
func (s *Store) ResetAll(ctx context.Context, userID uuid.UUID, family Family) error {
	switch family {
	case FamilyProduct:
		return s.SaveProduct(ctx, userID, models.ProductPrompts{
			StaticPrompt:       DefaultStaticPrompt,
			MainPromptTemplate: DefaultMainPromptTemplate,
		})
	case FamilyCategory:
		return s.SaveCategory(ctx, userID, models.CategoryPrompts{
			CategoryPrompt1: DefaultCategoryPrompt1,
			CategoryPrompt2: DefaultCategoryPrompt2,
		})
	}
	return apperr.Validationf("unknown template family %q", family)
}

// ResetOne reverts exactly one slot to its default, leaving the family's
// other slot untouched. A user with no stored row yet gets both defaults.
// The upsert inserts defaults for both columns but only overwrites the reset
// column on conflict, which gives both behaviors in one statement.
func (s *Store) ResetOne(ctx context.Context, userID uuid.UUID, family Family, slot string) error {
	var query string
	var args []interface{}

	switch {
	case family == FamilyProduct && slot == SlotStaticPrompt:
		query = `INSERT INTO user_prompts (user_id, static_prompt, main_prompt_template, updated_at)
			 VALUES ($1, $2, $3, now())
			 ON CONFLICT (user_id) DO UPDATE SET static_prompt = EXCLUDED.static_prompt, updated_at = now()`
		args = []interface{}{userID, DefaultStaticPrompt, DefaultMainPromptTemplate}
	case family == FamilyProduct && slot == SlotMainPromptTemplate:
		query = `INSERT INTO user_prompts (user_id, static_prompt, main_prompt_template, updated_at)
			 VALUES ($1, $2, $3, now())
			 ON CONFLICT (user_id) DO UPDATE SET main_prompt_template = EXCLUDED.main_prompt_template, updated_at = now()`
		args = []interface{}{userID, DefaultStaticPrompt, DefaultMainPromptTemplate}
	case family == FamilyCategory && slot == SlotCategoryPrompt1:
		query = `INSERT INTO user_category_prompts (user_id, category_prompt1, category_prompt2, updated_at)
			 VALUES ($1, $2, $3, now())
			 ON CONFLICT (user_id) DO UPDATE SET category_prompt1 = EXCLUDED.category_prompt1, updated_at = now()`
		args = []interface{}{userID, DefaultCategoryPrompt1, DefaultCategoryPrompt2}
	case family == FamilyCategory && slot == SlotCategoryPrompt2:
		query = `INSERT INTO user_category_prompts (user_id, category_prompt1, category_prompt2, updated_at)
			 VALUES ($1, $2, $3, now())
			 ON CONFLICT (user_id) DO UPDATE SET category_prompt2 = EXCLUDED.category_prompt2, updated_at = now()`
		args = []interface{}{userID, DefaultCategoryPrompt1, DefaultCategoryPrompt2}
	default:
		return apperr.Validationf("unknown slot %q in family %q", slot, family)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if _, err := s.db.Exec(ctx, query, args...); err != nil {
		return storeErr("reset prompt slot", err)
	}
	return nil
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

func storeErr(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, apperr.ErrTimeout)
	}
	return fmt.Errorf("%s: %w", op, err)
}
