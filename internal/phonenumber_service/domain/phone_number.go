package domain

import (
	"cmp"
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

const (
	MaxAreaCode = 999
	MaxExchange = 999
	MaxNumber   = 9999
)

// PhoneNumber is a North-American style phone number in the fixed
// AAA-EEE-NNNN layout. The zero value is the valid number 000-000-0000.
//
// A PhoneNumber is immutable and safe to share between goroutines. Equality,
// ordering and hashing all derive from the same (area code, exchange, number)
// projection, so a == b, a.Equal(b), a.Compare(b) == 0 and
// a.Hash() == b.Hash() always agree.
type PhoneNumber struct {
	areaCode uint16
	exchange uint16
	number   uint16
}

// New builds a PhoneNumber from its numeric groups, rejecting out-of-range values.
func New(areaCode, exchange, number uint16) (PhoneNumber, error) {
	if areaCode > MaxAreaCode {
		return PhoneNumber{}, fmt.Errorf("%w: %d exceeds %d", ErrInvalidAreaCode, areaCode, MaxAreaCode)
	}
	if exchange > MaxExchange {
		return PhoneNumber{}, fmt.Errorf("%w: %d exceeds %d", ErrInvalidExchange, exchange, MaxExchange)
	}
	if number > MaxNumber {
		return PhoneNumber{}, fmt.Errorf("%w: %d exceeds %d", ErrInvalidNumber, number, MaxNumber)
	}
	return PhoneNumber{areaCode: areaCode, exchange: exchange, number: number}, nil
}

func (p PhoneNumber) AreaCode() uint16 { return p.areaCode }
func (p PhoneNumber) Exchange() uint16 { return p.exchange }
func (p PhoneNumber) Number() uint16   { return p.number }

// key packs the three groups into one integer whose natural order is the
// lexicographic order of (areaCode, exchange, number).
func (p PhoneNumber) key() uint64 {
	return uint64(p.areaCode)*10_000_000 + uint64(p.exchange)*10_000 + uint64(p.number)
}

// String returns the canonical AAA-EEE-NNNN form.
func (p PhoneNumber) String() string {
	return string(p.appendText(make([]byte, 0, 12)))
}

func (p PhoneNumber) appendText(b []byte) []byte {
	b = appendPadded(b, p.areaCode, 3)
	b = append(b, '-')
	b = appendPadded(b, p.exchange, 3)
	b = append(b, '-')
	return appendPadded(b, p.number, 4)
}

// appendPadded writes v in decimal, left padded with zeros to width digits.
// v must fit in width digits.
func appendPadded(b []byte, v uint16, width int) []byte {
	start := len(b)
	for i := 0; i < width; i++ {
		b = append(b, '0')
	}
	for i := len(b) - 1; i >= start && v > 0; i-- {
		b[i] = byte('0' + v%10)
		v /= 10
	}
	return b
}

// Format is the package level form of String.
func Format(p PhoneNumber) string {
	return p.String()
}

func (p PhoneNumber) Equal(o PhoneNumber) bool {
	return p.key() == o.key()
}

// Compare returns -1, 0 or +1 ordering by area code, then exchange, then number.
func (p PhoneNumber) Compare(o PhoneNumber) int {
	return cmp.Compare(p.key(), o.key())
}

func (p PhoneNumber) Less(o PhoneNumber) bool {
	return p.Compare(o) < 0
}

// Compare orders a and b; usable with slices.SortFunc.
func Compare(a, b PhoneNumber) int {
	return a.Compare(b)
}

// Hash returns a 64-bit hash suitable for hash indexes and hash joins.
func (p PhoneNumber) Hash() uint64 {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], p.key())
	return xxhash.Sum64(buf[:])
}

// Hash32 folds Hash into 32 bits for engines whose hash support functions return int4.
func (p PhoneNumber) Hash32() int32 {
	h := p.Hash()
	return int32(uint32(h) ^ uint32(h>>32))
}
