package app

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/aradsms/pgphone/internal/phonenumber_service/domain"
)

// Comparison is the outcome of comparing two phone numbers.
type Comparison struct {
	Left    domain.PhoneNumber
	Right   domain.PhoneNumber
	Order   int
	Equal   bool
	HashLHS uint64
	HashRHS uint64
}

// Application provides parsing, comparison and storage of phone numbers.
type Application struct {
	repo   domain.PhoneNumberRepository
	logger *slog.Logger
}

// NewApplication creates a new Application instance.
func NewApplication(repo domain.PhoneNumberRepository, logger *slog.Logger) *Application {
	return &Application{
		repo:   repo,
		logger: logger.With("component", "phone_number_app"),
	}
}

// Parse parses text and records the outcome.
func (a *Application) Parse(ctx context.Context, text string) (domain.PhoneNumber, error) {
	p, err := domain.Parse(text)
	if err != nil {
		var perr *domain.ParseError
		kind := "invalid_format"
		if errors.As(err, &perr) {
			kind = perr.Kind()
		}
		parseResultsCounter.WithLabelValues(kind).Inc()
		a.logger.DebugContext(ctx, "Rejected phone number", "input", text, "kind", kind)
		return domain.PhoneNumber{}, err
	}
	parseResultsCounter.WithLabelValues("ok").Inc()
	return p, nil
}

// Random returns a random phone number.
func (a *Application) Random() domain.PhoneNumber {
	return domain.Random()
}

// Compare parses both inputs and reports their order, equality and hashes.
func (a *Application) Compare(ctx context.Context, left, right string) (*Comparison, error) {
	l, err := a.Parse(ctx, left)
	if err != nil {
		return nil, err
	}
	r, err := a.Parse(ctx, right)
	if err != nil {
		return nil, err
	}
	return &Comparison{
		Left:    l,
		Right:   r,
		Order:   l.Compare(r),
		Equal:   l.Equal(r),
		HashLHS: l.Hash(),
		HashRHS: r.Hash(),
	}, nil
}

// Register parses text and stores it with an optional label.
func (a *Application) Register(ctx context.Context, text string, label string) (*domain.Registration, error) {
	p, err := a.Parse(ctx, text)
	if err != nil {
		registrationsCounter.WithLabelValues("rejected").Inc()
		return nil, err
	}

	reg := domain.NewRegistration(uuid.New(), p, label)
	start := time.Now()
	err = a.repo.Create(ctx, reg)
	repositoryDurationHist.WithLabelValues("create").Observe(time.Since(start).Seconds())
	switch {
	case errors.Is(err, domain.ErrDuplicateEntry):
		registrationsCounter.WithLabelValues("duplicate").Inc()
		return nil, err
	case err != nil:
		registrationsCounter.WithLabelValues("error").Inc()
		a.logger.ErrorContext(ctx, "Failed to register phone number", "error", err, "number", p)
		return nil, err
	}
	registrationsCounter.WithLabelValues("created").Inc()
	return reg, nil
}

// Lookup finds a registration by number.
func (a *Application) Lookup(ctx context.Context, text string) (*domain.Registration, error) {
	p, err := a.Parse(ctx, text)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	defer func() {
		repositoryDurationHist.WithLabelValues("get").Observe(time.Since(start).Seconds())
	}()
	return a.repo.GetByNumber(ctx, p)
}

// List returns registrations in ascending number order after the optional cursor.
// An empty after starts from the lowest number.
func (a *Application) List(ctx context.Context, after string, limit int) ([]*domain.Registration, error) {
	var cursor *domain.PhoneNumber
	if after != "" {
		p, err := a.Parse(ctx, after)
		if err != nil {
			return nil, err
		}
		cursor = &p
	}
	start := time.Now()
	defer func() {
		repositoryDurationHist.WithLabelValues("list").Observe(time.Since(start).Seconds())
	}()
	return a.repo.ListAfter(ctx, cursor, limit)
}

// ListRange returns registrations between from and to inclusive. Bounds given
// in reverse order are swapped. A non-empty after continues a previous page.
func (a *Application) ListRange(ctx context.Context, from, to, after string, limit int) ([]*domain.Registration, error) {
	lo, err := a.Parse(ctx, from)
	if err != nil {
		return nil, err
	}
	hi, err := a.Parse(ctx, to)
	if err != nil {
		return nil, err
	}
	if hi.Less(lo) {
		lo, hi = hi, lo
	}
	var cursor *domain.PhoneNumber
	if after != "" {
		p, err := a.Parse(ctx, after)
		if err != nil {
			return nil, err
		}
		cursor = &p
	}
	start := time.Now()
	defer func() {
		repositoryDurationHist.WithLabelValues("list_range").Observe(time.Since(start).Seconds())
	}()
	return a.repo.ListRange(ctx, lo, hi, cursor, limit)
}

// Remove deletes a registration by number.
func (a *Application) Remove(ctx context.Context, text string) error {
	p, err := a.Parse(ctx, text)
	if err != nil {
		return err
	}
	start := time.Now()
	defer func() {
		repositoryDurationHist.WithLabelValues("delete").Observe(time.Since(start).Seconds())
	}()
	return a.repo.Delete(ctx, p)
}

// Count returns the number of stored registrations.
func (a *Application) Count(ctx context.Context) (int64, error) {
	start := time.Now()
	defer func() {
		repositoryDurationHist.WithLabelValues("count").Observe(time.Since(start).Seconds())
	}()
	return a.repo.Count(ctx)
}
