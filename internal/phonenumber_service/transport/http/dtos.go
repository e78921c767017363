package http

import (
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/aradsms/pgphone/internal/phonenumber_service/app"
	"github.com/aradsms/pgphone/internal/phonenumber_service/domain"
)

// ParseRequestDTO carries a single phone number in text form. Empty numbers
// are left to the parser so they are reported with a parse error kind.
type ParseRequestDTO struct {
	Number string `json:"number" validate:"max=64"`
}

type CompareRequestDTO struct {
	Left  string `json:"left" validate:"max=64"`
	Right string `json:"right" validate:"max=64"`
}

type RegisterRequestDTO struct {
	Number string `json:"number" validate:"max=64"`
	Label  string `json:"label,omitempty" validate:"max=200"`
}

// PhoneNumberResponseDTO is the decomposed form of a phone number. Hash is a
// hex string since a uint64 does not survive a JSON round trip through most clients.
type PhoneNumberResponseDTO struct {
	Canonical string `json:"canonical"`
	AreaCode  uint16 `json:"area_code"`
	Exchange  uint16 `json:"exchange"`
	Number    uint16 `json:"number"`
	Hash      string `json:"hash"`
}

type CompareResponseDTO struct {
	Left  PhoneNumberResponseDTO `json:"left"`
	Right PhoneNumberResponseDTO `json:"right"`
	Order int                    `json:"order"`
	Equal bool                   `json:"equal"`
}

type RegistrationResponseDTO struct {
	ID        uuid.UUID `json:"id"`
	Number    string    `json:"number"`
	Label     string    `json:"label,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type ListRegistrationsResponseDTO struct {
	Items     []RegistrationResponseDTO `json:"items"`
	NextAfter string                    `json:"next_after,omitempty"`
}

type CountResponseDTO struct {
	Count int64 `json:"count"`
}

type ErrorResponseDTO struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

func toPhoneNumberDTO(p domain.PhoneNumber) PhoneNumberResponseDTO {
	return PhoneNumberResponseDTO{
		Canonical: p.String(),
		AreaCode:  p.AreaCode(),
		Exchange:  p.Exchange(),
		Number:    p.Number(),
		Hash:      strconv.FormatUint(p.Hash(), 16),
	}
}

func toCompareDTO(c *app.Comparison) CompareResponseDTO {
	return CompareResponseDTO{
		Left:  toPhoneNumberDTO(c.Left),
		Right: toPhoneNumberDTO(c.Right),
		Order: c.Order,
		Equal: c.Equal,
	}
}

func toRegistrationDTO(reg *domain.Registration) RegistrationResponseDTO {
	return RegistrationResponseDTO{
		ID:        reg.ID,
		Number:    reg.Number.String(),
		Label:     reg.Label,
		CreatedAt: reg.CreatedAt,
	}
}

// toListDTO sets NextAfter only when the page is full, meaning more rows may follow.
func toListDTO(regs []*domain.Registration, limit int) ListRegistrationsResponseDTO {
	resp := ListRegistrationsResponseDTO{Items: make([]RegistrationResponseDTO, 0, len(regs))}
	for _, reg := range regs {
		resp.Items = append(resp.Items, toRegistrationDTO(reg))
	}
	if len(regs) > 0 && len(regs) == limit {
		resp.NextAfter = regs[len(regs)-1].Number.String()
	}
	return resp
}
