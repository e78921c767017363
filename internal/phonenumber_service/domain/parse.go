package domain

import (
	"strconv"
	"strings"
)

// Parse reads a phone number in the AAA-EEE-NNNN form.
//
// Groups are checked in order and the first failing group determines the
// error. Each group must have exactly the expected width before it is read as
// a number, so "1-555-1212" and " 80-555-1212" are both rejected as bad area
// codes. The width includes an optional leading '+', which makes "+80-555-1212"
// the same value as "080-555-1212". The returned error is a *ParseError
// wrapping one of the ErrInvalid* sentinels.
func Parse(s string) (PhoneNumber, error) {
	parts := strings.Split(s, "-")

	areaCode, err := parseGroup(s, parts, 0, 3, GroupAreaCode, ErrInvalidAreaCode)
	if err != nil {
		return PhoneNumber{}, err
	}
	exchange, err := parseGroup(s, parts, 1, 3, GroupExchange, ErrInvalidExchange)
	if err != nil {
		return PhoneNumber{}, err
	}
	number, err := parseGroup(s, parts, 2, 4, GroupNumber, ErrInvalidNumber)
	if err != nil {
		return PhoneNumber{}, err
	}
	if len(parts) > 3 {
		return PhoneNumber{}, &ParseError{Input: s, Group: GroupNone, Err: ErrInvalidFormat}
	}

	return PhoneNumber{areaCode: areaCode, exchange: exchange, number: number}, nil
}

func parseGroup(input string, parts []string, idx, width int, group Group, groupErr error) (uint16, error) {
	if idx >= len(parts) {
		return 0, &ParseError{Input: input, Group: GroupNone, Err: ErrInvalidFormat}
	}
	part := parts[idx]
	if len(part) != width {
		return 0, &ParseError{Input: input, Group: group, Err: groupErr}
	}
	// ParseUint rejects signs, so only a single '+' is tolerated.
	v, err := strconv.ParseUint(strings.TrimPrefix(part, "+"), 10, 16)
	if err != nil {
		return 0, &ParseError{Input: input, Group: group, Err: groupErr}
	}
	return uint16(v), nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// package level constants.
func MustParse(s string) PhoneNumber {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}
