package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/aradsms/pgphone/internal/phonenumber_service/app"
	"github.com/aradsms/pgphone/internal/phonenumber_service/domain"
)

// PhoneNumberService is the application surface used by the handler.
type PhoneNumberService interface {
	Parse(ctx context.Context, text string) (domain.PhoneNumber, error)
	Random() domain.PhoneNumber
	Compare(ctx context.Context, left, right string) (*app.Comparison, error)
	Register(ctx context.Context, text string, label string) (*domain.Registration, error)
	Lookup(ctx context.Context, text string) (*domain.Registration, error)
	List(ctx context.Context, after string, limit int) ([]*domain.Registration, error)
	ListRange(ctx context.Context, from, to, after string, limit int) ([]*domain.Registration, error)
	Remove(ctx context.Context, text string) error
	Count(ctx context.Context) (int64, error)
}

// PhoneNumberHandler handles HTTP requests for parsing, comparing and storing phone numbers.
type PhoneNumberHandler struct {
	svc          PhoneNumberService
	logger       *slog.Logger
	validate     *validator.Validate
	defaultLimit int
	maxLimit     int
}

// NewPhoneNumberHandler creates a new PhoneNumberHandler.
func NewPhoneNumberHandler(svc PhoneNumberService, logger *slog.Logger, validate *validator.Validate, defaultLimit, maxLimit int) *PhoneNumberHandler {
	return &PhoneNumberHandler{
		svc:          svc,
		logger:       logger.With("component", "phone_number_handler"),
		validate:     validate,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
	}
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			slog.Default().Error("Failed to write JSON response", "error", err)
		}
	}
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponseDTO{Error: message})
}

// respondWithDomainError maps parse and repository errors to HTTP statuses.
func (h *PhoneNumberHandler) respondWithDomainError(w http.ResponseWriter, r *http.Request, err error) {
	var perr *domain.ParseError
	switch {
	case errors.As(err, &perr):
		recordRejection(r, perr.Kind())
		respondWithJSON(w, http.StatusUnprocessableEntity, ErrorResponseDTO{Error: perr.Error(), Kind: perr.Kind()})
	case errors.Is(err, domain.ErrNotFound):
		respondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrDuplicateEntry):
		respondWithError(w, http.StatusConflict, err.Error())
	default:
		h.logger.ErrorContext(r.Context(), "Request failed", "error", err, "path", r.URL.Path)
		respondWithError(w, http.StatusInternalServerError, "internal server error")
	}
}

// RegisterRoutes mounts the phone number routes on r.
func (h *PhoneNumberHandler) RegisterRoutes(r chi.Router) {
	r.Route("/v1/phone-numbers", func(r chi.Router) {
		r.Post("/parse", h.ParsePhoneNumber)
		r.Post("/compare", h.ComparePhoneNumbers)
		r.Get("/random", h.RandomPhoneNumber)
		r.Get("/range", h.ListRange)
		r.Get("/count", h.CountPhoneNumbers)
		r.Post("/", h.RegisterPhoneNumber)
		r.Get("/", h.ListPhoneNumbers)
		r.Get("/{number}", h.GetPhoneNumber)
		r.Delete("/{number}", h.DeletePhoneNumber)
	})
}

func (h *PhoneNumberHandler) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		respondWithError(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return false
	}
	return true
}

// limitFromQuery returns the page size from ?limit=, clamped to maxLimit.
func (h *PhoneNumberHandler) limitFromQuery(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return h.defaultLimit, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return 0, errors.New("limit must be a positive integer")
	}
	if limit > h.maxLimit {
		limit = h.maxLimit
	}
	return limit, nil
}

func (h *PhoneNumberHandler) ParsePhoneNumber(w http.ResponseWriter, r *http.Request) {
	var req ParseRequestDTO
	if !h.decodeAndValidate(w, r, &req) {
		return
	}
	p, err := h.svc.Parse(r.Context(), req.Number)
	if err != nil {
		h.respondWithDomainError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, toPhoneNumberDTO(p))
}

func (h *PhoneNumberHandler) ComparePhoneNumbers(w http.ResponseWriter, r *http.Request) {
	var req CompareRequestDTO
	if !h.decodeAndValidate(w, r, &req) {
		return
	}
	c, err := h.svc.Compare(r.Context(), req.Left, req.Right)
	if err != nil {
		h.respondWithDomainError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, toCompareDTO(c))
}

func (h *PhoneNumberHandler) RandomPhoneNumber(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, toPhoneNumberDTO(h.svc.Random()))
}

func (h *PhoneNumberHandler) RegisterPhoneNumber(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequestDTO
	if !h.decodeAndValidate(w, r, &req) {
		return
	}
	reg, err := h.svc.Register(r.Context(), req.Number, req.Label)
	if err != nil {
		h.respondWithDomainError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, toRegistrationDTO(reg))
}

func (h *PhoneNumberHandler) GetPhoneNumber(w http.ResponseWriter, r *http.Request) {
	reg, err := h.svc.Lookup(r.Context(), chi.URLParam(r, "number"))
	if err != nil {
		h.respondWithDomainError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, toRegistrationDTO(reg))
}

func (h *PhoneNumberHandler) DeletePhoneNumber(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Remove(r.Context(), chi.URLParam(r, "number")); err != nil {
		h.respondWithDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *PhoneNumberHandler) ListPhoneNumbers(w http.ResponseWriter, r *http.Request) {
	limit, err := h.limitFromQuery(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	regs, err := h.svc.List(r.Context(), r.URL.Query().Get("after"), limit)
	if err != nil {
		h.respondWithDomainError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, toListDTO(regs, limit))
}

func (h *PhoneNumberHandler) ListRange(w http.ResponseWriter, r *http.Request) {
	limit, err := h.limitFromQuery(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	q := r.URL.Query()
	if q.Get("from") == "" || q.Get("to") == "" {
		respondWithError(w, http.StatusBadRequest, "from and to are required")
		return
	}
	regs, err := h.svc.ListRange(r.Context(), q.Get("from"), q.Get("to"), q.Get("after"), limit)
	if err != nil {
		h.respondWithDomainError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, toListDTO(regs, limit))
}

func (h *PhoneNumberHandler) CountPhoneNumbers(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.Count(r.Context())
	if err != nil {
		h.respondWithDomainError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, CountResponseDTO{Count: n})
}
