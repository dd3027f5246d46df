package models_base

import "fmt"

// ErrTruncated indicates a declared length runs past the available input
type ErrTruncated struct {
	IE   string
	Need int
	Have int
}

func (e ErrTruncated) Error() string {
	return fmt.Sprintf("%s: truncated input, need %d bytes, have %d", e.IE, e.Need, e.Have)
}

// ErrInvalidLength indicates a length that is present but inconsistent with
// the discriminator or type it belongs to
type ErrInvalidLength struct {
	IE     string
	Length int
	Reason string
}

func (e ErrInvalidLength) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: invalid length %d: %s", e.IE, e.Length, e.Reason)
	}
	return fmt.Sprintf("%s: invalid length %d", e.IE, e.Length)
}

// ErrInvalidDiscriminator indicates an unknown enumerant in a tagged field
type ErrInvalidDiscriminator struct {
	IE    string
	Value uint8
}

func (e ErrInvalidDiscriminator) Error() string {
	return fmt.Sprintf("%s: invalid discriminator 0x%02x", e.IE, e.Value)
}

// ErrCapacityExceeded indicates a bounded list would overflow
type ErrCapacityExceeded struct {
	What string
	Max  int
	Have int
}

func (e ErrCapacityExceeded) Error() string {
	return fmt.Sprintf("%s: capacity exceeded (%d > max %d)", e.What, e.Have, e.Max)
}

// ErrIncompatibleMerge indicates a cell identifier list add with a
// discriminator the destination cannot take
type ErrIncompatibleMerge struct {
	Dst CellIdentDiscr
	Src CellIdentDiscr
}

func (e ErrIncompatibleMerge) Error() string {
	if e.Dst == CellIdentBSS {
		return fmt.Sprintf("cannot add %s entries to a %s cell identifier list", e.Src, e.Dst)
	}
	return fmt.Sprintf("incompatible cell identifier discriminators: list is %s, adding %s", e.Dst, e.Src)
}

// ErrInvalidValue reports a caller-side value that has no wire representation
type ErrInvalidValue struct {
	IE     string
	Reason string
}

func (e ErrInvalidValue) Error() string {
	return fmt.Sprintf("%s: invalid value: %s", e.IE, e.Reason)
}

// ErrMissingIE indicates a mandatory IE was absent from a decoded message
type ErrMissingIE struct {
	Message string
	IE      string
}

func (e ErrMissingIE) Error() string {
	return fmt.Sprintf("%s: missing mandatory IE %s", e.Message, e.IE)
}
