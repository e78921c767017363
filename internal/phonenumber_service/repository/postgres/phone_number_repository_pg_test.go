package postgres

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aradsms/pgphone/internal/phonenumber_service/domain"
)

var registrationColumns = []string{"id", "number", "label", "created_at"}

func newTestRepo(t *testing.T) (*PgPhoneNumberRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockPool.Close)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewPgPhoneNumberRepository(mockPool, logger), mockPool
}

func TestPgPhoneNumberRepository_Migrate(t *testing.T) {
	repo, mockPool := newTestRepo(t)

	mockPool.ExpectExec(`CREATE DOMAIN phone_number AS text COLLATE "C"`).WillReturnResult(pgxmock.NewResult("DO", 0))
	mockPool.ExpectExec(`CREATE TABLE IF NOT EXISTS phone_numbers`).WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))
	mockPool.ExpectExec(`USING btree \(number\)`).WillReturnResult(pgxmock.NewResult("CREATE INDEX", 0))
	mockPool.ExpectExec(`USING hash \(number\)`).WillReturnResult(pgxmock.NewResult("CREATE INDEX", 0))

	require.NoError(t, repo.Migrate(context.Background()))
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestPgPhoneNumberRepository_Migrate_Error(t *testing.T) {
	repo, mockPool := newTestRepo(t)
	dbErr := errors.New("permission denied")
	mockPool.ExpectExec(`CREATE DOMAIN`).WillReturnError(dbErr)

	err := repo.Migrate(context.Background())
	assert.ErrorIs(t, err, dbErr)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestPgPhoneNumberRepository_Create(t *testing.T) {
	number := domain.MustParse("800-555-1212")
	reg := domain.NewRegistration(uuid.New(), number, "support line")

	t.Run("Success", func(t *testing.T) {
		repo, mockPool := newTestRepo(t)
		mockPool.ExpectExec(`INSERT INTO phone_numbers \(id, number, label, created_at\) VALUES \(\$1, \$2::text, \$3, \$4\)`).
			WithArgs(reg.ID, number, reg.Label, reg.CreatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		require.NoError(t, repo.Create(context.Background(), reg))
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("Duplicate", func(t *testing.T) {
		repo, mockPool := newTestRepo(t)
		mockPool.ExpectExec(`INSERT INTO phone_numbers`).
			WithArgs(reg.ID, number, reg.Label, reg.CreatedAt).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_phone_numbers_number_btree"})

		err := repo.Create(context.Background(), reg)
		assert.ErrorIs(t, err, domain.ErrDuplicateEntry)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("CheckViolationIsNotDuplicate", func(t *testing.T) {
		repo, mockPool := newTestRepo(t)
		mockPool.ExpectExec(`INSERT INTO phone_numbers`).
			WithArgs(reg.ID, number, reg.Label, reg.CreatedAt).
			WillReturnError(&pgconn.PgError{Code: "23514"})

		err := repo.Create(context.Background(), reg)
		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrDuplicateEntry)
	})
}

func TestPgPhoneNumberRepository_GetByNumber(t *testing.T) {
	number := domain.MustParse("007-055-1212")
	id := uuid.New()
	createdAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Found", func(t *testing.T) {
		repo, mockPool := newTestRepo(t)
		rows := mockPool.NewRows(registrationColumns).AddRow(id, "007-055-1212", "home", createdAt)
		mockPool.ExpectQuery(`SELECT id, number::text, label, created_at FROM phone_numbers WHERE number = \$1::text`).
			WithArgs(number).
			WillReturnRows(rows)

		reg, err := repo.GetByNumber(context.Background(), number)
		require.NoError(t, err)
		assert.Equal(t, id, reg.ID)
		assert.Equal(t, number, reg.Number)
		assert.Equal(t, "home", reg.Label)
		assert.Equal(t, createdAt, reg.CreatedAt)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("NotFound", func(t *testing.T) {
		repo, mockPool := newTestRepo(t)
		mockPool.ExpectQuery(`FROM phone_numbers WHERE number = \$1::text`).
			WithArgs(number).
			WillReturnError(pgx.ErrNoRows)

		reg, err := repo.GetByNumber(context.Background(), number)
		assert.Nil(t, reg)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("MalformedStoredValue", func(t *testing.T) {
		repo, mockPool := newTestRepo(t)
		rows := mockPool.NewRows(registrationColumns).AddRow(id, "007-55-1212", "", createdAt)
		mockPool.ExpectQuery(`FROM phone_numbers WHERE number = \$1::text`).
			WithArgs(number).
			WillReturnRows(rows)

		_, err := repo.GetByNumber(context.Background(), number)
		assert.Error(t, err)
	})
}

func TestPgPhoneNumberRepository_ListAfter(t *testing.T) {
	first, second := uuid.New(), uuid.New()
	createdAt := time.Now().UTC()

	t.Run("FromStart", func(t *testing.T) {
		repo, mockPool := newTestRepo(t)
		rows := mockPool.NewRows(registrationColumns).
			AddRow(first, "201-555-0100", "", createdAt).
			AddRow(second, "212-555-0100", "", createdAt)
		mockPool.ExpectQuery(`FROM phone_numbers ORDER BY number ASC LIMIT \$1`).
			WithArgs(2).
			WillReturnRows(rows)

		regs, err := repo.ListAfter(context.Background(), nil, 2)
		require.NoError(t, err)
		require.Len(t, regs, 2)
		assert.Equal(t, domain.MustParse("201-555-0100"), regs[0].Number)
		assert.True(t, regs[0].Number.Less(regs[1].Number))
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("AfterCursor", func(t *testing.T) {
		repo, mockPool := newTestRepo(t)
		cursor := domain.MustParse("201-555-0100")
		rows := mockPool.NewRows(registrationColumns).AddRow(second, "212-555-0100", "", createdAt)
		mockPool.ExpectQuery(`WHERE number > \$1::text ORDER BY number ASC LIMIT \$2`).
			WithArgs(cursor, 10).
			WillReturnRows(rows)

		regs, err := repo.ListAfter(context.Background(), &cursor, 10)
		require.NoError(t, err)
		require.Len(t, regs, 1)
		assert.Equal(t, second, regs[0].ID)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("Empty", func(t *testing.T) {
		repo, mockPool := newTestRepo(t)
		mockPool.ExpectQuery(`ORDER BY number ASC LIMIT \$1`).
			WithArgs(5).
			WillReturnRows(mockPool.NewRows(registrationColumns))

		regs, err := repo.ListAfter(context.Background(), nil, 5)
		require.NoError(t, err)
		assert.NotNil(t, regs)
		assert.Empty(t, regs)
	})

	t.Run("QueryError", func(t *testing.T) {
		repo, mockPool := newTestRepo(t)
		mockPool.ExpectQuery(`ORDER BY number ASC LIMIT \$1`).
			WithArgs(5).
			WillReturnError(errors.New("connection reset"))

		_, err := repo.ListAfter(context.Background(), nil, 5)
		assert.Error(t, err)
	})
}

func TestPgPhoneNumberRepository_ListRange(t *testing.T) {
	repo, mockPool := newTestRepo(t)
	from, to := domain.MustParse("800-000-0000"), domain.MustParse("800-999-9999")
	rows := mockPool.NewRows(registrationColumns).AddRow(uuid.New(), "800-555-1212", "", time.Now().UTC())
	mockPool.ExpectQuery(`WHERE number BETWEEN \$1::text AND \$2::text ORDER BY number ASC LIMIT \$3`).
		WithArgs(from, to, 100).
		WillReturnRows(rows)

	regs, err := repo.ListRange(context.Background(), from, to, nil, 100)
	require.NoError(t, err)
	require.Len(t, regs, 1)
	assert.Equal(t, uint16(800), regs[0].Number.AreaCode())
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestPgPhoneNumberRepository_ListRange_After(t *testing.T) {
	repo, mockPool := newTestRepo(t)
	from, to := domain.MustParse("800-000-0000"), domain.MustParse("800-999-9999")
	after := domain.MustParse("800-555-1212")
	rows := mockPool.NewRows(registrationColumns).AddRow(uuid.New(), "800-555-1213", "", time.Now().UTC())
	mockPool.ExpectQuery(`WHERE number BETWEEN \$1::text AND \$2::text AND number > \$3::text ORDER BY number ASC LIMIT \$4`).
		WithArgs(from, to, after, 10).
		WillReturnRows(rows)

	regs, err := repo.ListRange(context.Background(), from, to, &after, 10)
	require.NoError(t, err)
	require.Len(t, regs, 1)
	assert.True(t, after.Less(regs[0].Number))
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestPgPhoneNumberRepository_Delete(t *testing.T) {
	number := domain.MustParse("800-555-1212")

	t.Run("Deleted", func(t *testing.T) {
		repo, mockPool := newTestRepo(t)
		mockPool.ExpectExec(`DELETE FROM phone_numbers WHERE number = \$1::text`).
			WithArgs(number).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		require.NoError(t, repo.Delete(context.Background(), number))
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("NotFound", func(t *testing.T) {
		repo, mockPool := newTestRepo(t)
		mockPool.ExpectExec(`DELETE FROM phone_numbers`).
			WithArgs(number).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		assert.ErrorIs(t, repo.Delete(context.Background(), number), domain.ErrNotFound)
	})
}

func TestPgPhoneNumberRepository_Count(t *testing.T) {
	repo, mockPool := newTestRepo(t)
	mockPool.ExpectQuery(`SELECT COUNT\(\*\) FROM phone_numbers`).
		WillReturnRows(mockPool.NewRows([]string{"count"}).AddRow(int64(3)))

	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}
