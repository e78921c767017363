package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/aradsms/pgphone/internal/phonenumber_service/domain"
	"github.com/aradsms/pgphone/internal/platform/database"
)

const uniqueViolation = "23505"

// Parameters are bound as text and cast by the server so pgx never needs to
// know the phone_number domain OID.
const selectColumns = `SELECT id, number::text, label, created_at FROM phone_numbers`

type PgPhoneNumberRepository struct {
	db     database.DBPool
	logger *slog.Logger
}

func NewPgPhoneNumberRepository(db database.DBPool, logger *slog.Logger) *PgPhoneNumberRepository {
	return &PgPhoneNumberRepository{db: db, logger: logger.With("component", "phone_number_repository_pg")}
}

// Migrate applies Schema. Every statement is idempotent.
func (r *PgPhoneNumberRepository) Migrate(ctx context.Context) error {
	for i, stmt := range Schema {
		if _, err := r.db.Exec(ctx, stmt); err != nil {
			r.logger.ErrorContext(ctx, "Schema statement failed", "statement_index", i, "error", err)
			return fmt.Errorf("applying schema statement %d: %w", i, err)
		}
	}
	r.logger.InfoContext(ctx, "Schema applied", "statements", len(Schema))
	return nil
}

func (r *PgPhoneNumberRepository) Create(ctx context.Context, reg *domain.Registration) error {
	query := `INSERT INTO phone_numbers (id, number, label, created_at) VALUES ($1, $2::text, $3, $4)`
	_, err := r.db.Exec(ctx, query, reg.ID, reg.Number, reg.Label, reg.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			r.logger.WarnContext(ctx, "Duplicate phone number", "number", reg.Number)
			return domain.ErrDuplicateEntry
		}
		r.logger.ErrorContext(ctx, "Error creating phone number", "error", err, "number", reg.Number)
		return fmt.Errorf("inserting phone number: %w", err)
	}
	r.logger.InfoContext(ctx, "Phone number registered", "id", reg.ID, "number", reg.Number)
	return nil
}

func (r *PgPhoneNumberRepository) GetByNumber(ctx context.Context, number domain.PhoneNumber) (*domain.Registration, error) {
	query := selectColumns + ` WHERE number = $1::text`
	reg := &domain.Registration{}
	err := r.db.QueryRow(ctx, query, number).Scan(&reg.ID, &reg.Number, &reg.Label, &reg.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.DebugContext(ctx, "Phone number not found", "number", number)
			return nil, domain.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Error getting phone number", "error", err, "number", number)
		return nil, fmt.Errorf("querying phone number: %w", err)
	}
	return reg, nil
}

func (r *PgPhoneNumberRepository) ListAfter(ctx context.Context, after *domain.PhoneNumber, limit int) ([]*domain.Registration, error) {
	if after == nil {
		return r.list(ctx, selectColumns+` ORDER BY number ASC LIMIT $1`, limit)
	}
	return r.list(ctx, selectColumns+` WHERE number > $1::text ORDER BY number ASC LIMIT $2`, *after, limit)
}

func (r *PgPhoneNumberRepository) ListRange(ctx context.Context, from, to domain.PhoneNumber, after *domain.PhoneNumber, limit int) ([]*domain.Registration, error) {
	if after == nil {
		query := selectColumns + ` WHERE number BETWEEN $1::text AND $2::text ORDER BY number ASC LIMIT $3`
		return r.list(ctx, query, from, to, limit)
	}
	query := selectColumns + ` WHERE number BETWEEN $1::text AND $2::text AND number > $3::text ORDER BY number ASC LIMIT $4`
	return r.list(ctx, query, from, to, *after, limit)
}

func (r *PgPhoneNumberRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Registration, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.logger.ErrorContext(ctx, "Error listing phone numbers", "error", err)
		return nil, fmt.Errorf("listing phone numbers: %w", err)
	}
	defer rows.Close()

	regs := make([]*domain.Registration, 0)
	for rows.Next() {
		reg := &domain.Registration{}
		if err := rows.Scan(&reg.ID, &reg.Number, &reg.Label, &reg.CreatedAt); err != nil {
			r.logger.ErrorContext(ctx, "Error scanning phone number row", "error", err)
			return nil, fmt.Errorf("scanning phone number row: %w", err)
		}
		regs = append(regs, reg)
	}
	if err := rows.Err(); err != nil {
		r.logger.ErrorContext(ctx, "Error iterating phone number rows", "error", err)
		return nil, fmt.Errorf("iterating phone number rows: %w", err)
	}
	return regs, nil
}

func (r *PgPhoneNumberRepository) Delete(ctx context.Context, number domain.PhoneNumber) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM phone_numbers WHERE number = $1::text`, number)
	if err != nil {
		r.logger.ErrorContext(ctx, "Error deleting phone number", "error", err, "number", number)
		return fmt.Errorf("deleting phone number: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	r.logger.InfoContext(ctx, "Phone number deleted", "number", number)
	return nil
}

func (r *PgPhoneNumberRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM phone_numbers`).Scan(&n); err != nil {
		r.logger.ErrorContext(ctx, "Error counting phone numbers", "error", err)
		return 0, fmt.Errorf("counting phone numbers: %w", err)
	}
	return n, nil
}

var _ domain.PhoneNumberRepository = (*PgPhoneNumberRepository)(nil)
