package models_base

import (
	"fmt"
	"strings"
)

// mobile identity type of 3GPP TS 24.008 10.5.1.4
const (
	mobileIdentityIMSI = 0x1
	mobileIdentityOdd  = 0x08
	imsiMaxDigits      = 15
	tmsiLen            = 4
)

// IMSI is an International Mobile Subscriber Identity as a digit string
type IMSI string

// Validate checks that the IMSI consists of 1 to 15 decimal digits
func (i IMSI) Validate() error {
	if len(i) == 0 || len(i) > imsiMaxDigits {
		return ErrInvalidValue{IE: "IMSI", Reason: fmt.Sprintf("%d digits, want 1..%d", len(i), imsiMaxDigits)}
	}
	for _, c := range i {
		if c < '0' || c > '9' {
			return ErrInvalidValue{IE: "IMSI", Reason: fmt.Sprintf("non-digit %q", c)}
		}
	}
	return nil
}

func (i IMSI) Tag() uint8 { return IEIMSI }

func (i IMSI) Len() int { return len(i)/2 + 1 }

// AppendValue appends the BCD coded mobile identity
func (i IMSI) AppendValue(b []byte) ([]byte, error) {
	if err := i.Validate(); err != nil {
		return b, err
	}
	first := (i[0]-'0')<<4 | mobileIdentityIMSI
	if len(i)%2 == 1 {
		first |= mobileIdentityOdd
	}
	b = append(b, first)
	for n := 1; n < len(i); n += 2 {
		lo := i[n] - '0'
		hi := uint8(0x0f)
		if n+1 < len(i) {
			hi = i[n+1] - '0'
		}
		b = append(b, hi<<4|lo)
	}
	return b, nil
}

func (i IMSI) String() string { return string(i) }

// DecodeIMSI decodes the value part of an IMSI IE
func DecodeIMSI(b []byte) (IMSI, int, error) {
	if len(b) < 1 {
		return "", 0, ErrTruncated{IE: "IMSI", Need: 1, Have: 0}
	}
	if b[0]&0x07 != mobileIdentityIMSI {
		return "", 0, ErrInvalidDiscriminator{IE: "IMSI", Value: b[0] & 0x07}
	}
	if len(b) > imsiMaxDigits/2+1 {
		return "", 0, ErrInvalidLength{IE: "IMSI", Length: len(b), Reason: "more than 15 digits"}
	}
	var sb strings.Builder
	digit := func(d uint8) error {
		if d > 9 {
			return ErrInvalidValue{IE: "IMSI", Reason: fmt.Sprintf("BCD nibble 0x%x", d)}
		}
		sb.WriteByte('0' + d)
		return nil
	}
	if err := digit(b[0] >> 4); err != nil {
		return "", 0, err
	}
	odd := b[0]&mobileIdentityOdd != 0
	for n, o := range b[1:] {
		if err := digit(o & 0x0f); err != nil {
			return "", 0, err
		}
		last := n == len(b)-2
		if last && !odd {
			if o>>4 != 0x0f {
				return "", 0, ErrInvalidValue{IE: "IMSI", Reason: "even digit count without filler"}
			}
			break
		}
		if err := digit(o >> 4); err != nil {
			return "", 0, err
		}
	}
	return IMSI(sb.String()), len(b), nil
}

// TMSI is a Temporary Mobile Subscriber Identity
type TMSI uint32

func (t TMSI) Tag() uint8 { return IETMSI }

func (t TMSI) Len() int { return tmsiLen }

func (t TMSI) AppendValue(b []byte) ([]byte, error) {
	return append(b, uint8(t>>24), uint8(t>>16), uint8(t>>8), uint8(t)), nil
}

func (t TMSI) String() string { return fmt.Sprintf("0x%08x", uint32(t)) }

// DecodeTMSI decodes the value part of a TMSI IE
func DecodeTMSI(b []byte) (TMSI, int, error) {
	if len(b) != tmsiLen {
		return 0, 0, ErrInvalidLength{IE: "TMSI", Length: len(b), Reason: "want 4 octets"}
	}
	return TMSI(uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])), tmsiLen, nil
}
