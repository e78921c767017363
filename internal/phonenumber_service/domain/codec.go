package domain

import (
	"database/sql/driver"
	"encoding/binary"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
)

// BinaryLen is the size of the binary encoding: three big-endian uint16
// values in the order area code, exchange, number.
const BinaryLen = 6

// MarshalText implements encoding.TextMarshaler using the canonical form.
func (p PhoneNumber) MarshalText() ([]byte, error) {
	return p.appendText(make([]byte, 0, 12)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *PhoneNumber) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (p PhoneNumber) MarshalBinary() ([]byte, error) {
	return p.AppendBinary(make([]byte, 0, BinaryLen))
}

// AppendBinary appends the binary encoding of p to b.
func (p PhoneNumber) AppendBinary(b []byte) ([]byte, error) {
	b = binary.BigEndian.AppendUint16(b, p.areaCode)
	b = binary.BigEndian.AppendUint16(b, p.exchange)
	b = binary.BigEndian.AppendUint16(b, p.number)
	return b, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. Group values outside
// their valid range are rejected.
func (p *PhoneNumber) UnmarshalBinary(data []byte) error {
	if len(data) != BinaryLen {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidBinaryLength, len(data), BinaryLen)
	}
	v, err := New(
		binary.BigEndian.Uint16(data[0:2]),
		binary.BigEndian.Uint16(data[2:4]),
		binary.BigEndian.Uint16(data[4:6]),
	)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Value implements driver.Valuer. Phone numbers are stored in their canonical text form.
func (p PhoneNumber) Value() (driver.Value, error) {
	return p.String(), nil
}

// Scan implements sql.Scanner.
func (p *PhoneNumber) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		return ErrNullValue
	case PhoneNumber:
		*p = v
		return nil
	case string:
		return p.UnmarshalText([]byte(v))
	case []byte:
		return p.UnmarshalText(v)
	default:
		return fmt.Errorf("cannot scan %T into PhoneNumber", src)
	}
}

// TextValue implements pgtype.TextValuer so pgx can encode the type directly.
func (p PhoneNumber) TextValue() (pgtype.Text, error) {
	return pgtype.Text{String: p.String(), Valid: true}, nil
}

// ScanText implements pgtype.TextScanner.
func (p *PhoneNumber) ScanText(v pgtype.Text) error {
	if !v.Valid {
		return ErrNullValue
	}
	return p.UnmarshalText([]byte(v.String))
}

// NullPhoneNumber represents a PhoneNumber that may be NULL, in the manner of sql.NullString.
type NullPhoneNumber struct {
	PhoneNumber PhoneNumber
	Valid       bool
}

func (n NullPhoneNumber) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.PhoneNumber.Value()
}

func (n *NullPhoneNumber) Scan(src any) error {
	if src == nil {
		*n = NullPhoneNumber{}
		return nil
	}
	if err := n.PhoneNumber.Scan(src); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

func (n NullPhoneNumber) TextValue() (pgtype.Text, error) {
	if !n.Valid {
		return pgtype.Text{}, nil
	}
	return n.PhoneNumber.TextValue()
}

func (n *NullPhoneNumber) ScanText(v pgtype.Text) error {
	if !v.Valid {
		*n = NullPhoneNumber{}
		return nil
	}
	if err := n.PhoneNumber.ScanText(v); err != nil {
		return err
	}
	n.Valid = true
	return nil
}
