package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFormat indicates the input does not have exactly three dash-separated groups.
	ErrInvalidFormat = errors.New("invalid phone number format")
	// ErrInvalidAreaCode indicates the first group is not a 3-digit number.
	ErrInvalidAreaCode = errors.New("invalid area code")
	// ErrInvalidExchange indicates the second group is not a 3-digit number.
	ErrInvalidExchange = errors.New("invalid exchange")
	// ErrInvalidNumber indicates the third group is not a 4-digit number.
	ErrInvalidNumber = errors.New("invalid number")

	// ErrInvalidBinaryLength indicates a binary encoding of the wrong size.
	ErrInvalidBinaryLength = errors.New("invalid binary phone number length")
	// ErrNullValue indicates a NULL was scanned into a non-nullable PhoneNumber.
	ErrNullValue = errors.New("cannot scan NULL into PhoneNumber")

	// ErrNotFound indicates that a requested phone number was not found.
	ErrNotFound = errors.New("phone number not found")
	// ErrDuplicateEntry indicates the phone number is already registered.
	ErrDuplicateEntry = errors.New("phone number already registered")
)

// Group identifies which part of the textual form a parse failure refers to.
type Group int

const (
	GroupNone Group = iota
	GroupAreaCode
	GroupExchange
	GroupNumber
)

func (g Group) String() string {
	switch g {
	case GroupAreaCode:
		return "area_code"
	case GroupExchange:
		return "exchange"
	case GroupNumber:
		return "number"
	default:
		return "format"
	}
}

// ParseError describes why a string could not be parsed as a PhoneNumber.
// Err is always one of ErrInvalidFormat, ErrInvalidAreaCode, ErrInvalidExchange
// or ErrInvalidNumber.
type ParseError struct {
	Input string
	Group Group
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing phone number %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Kind returns a stable, machine readable name for the failure.
func (e *ParseError) Kind() string {
	switch e.Err {
	case ErrInvalidAreaCode:
		return "invalid_area_code"
	case ErrInvalidExchange:
		return "invalid_exchange"
	case ErrInvalidNumber:
		return "invalid_number"
	default:
		return "invalid_format"
	}
}
