package kernel

import (
	"fmt"
	"strconv"

	"farmadelivery/internal/pkg/errs"
)

// ErrIDIsNotConstructed indicates a zero-value ID.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError("ID must be created via NewID or IDFromString")

// ID is the numeric identifier used by the relational store and by the panel
// URLs (/farmacia/pedido/{id}/). Valid IDs are strictly positive.
type ID struct {
	value int64
}

// NewID validates that value is positive.
func NewID(value int64) (ID, error) {
	if value <= 0 {
		return ID{}, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not greater than 0", value))
	}
	return ID{value: value}, nil
}

// MustNewID panics on invalid input. Only for fixtures and tests.
func MustNewID(value int64) ID {
	id, err := NewID(value)
	if err != nil {
		panic(err)
	}
	return id
}

// IDFromString parses a decimal path segment.
func IDFromString(s string) (ID, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return ID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return NewID(v)
}

func (i ID) Int64() int64 {
	return i.value
}

func (i ID) String() string {
	return strconv.FormatInt(i.value, 10)
}

func (i ID) IsEqual(other ID) bool {
	return i.value == other.value
}

func (i ID) Validate() error {
	if i.value <= 0 {
		return ErrIDIsNotConstructed
	}
	return nil
}
