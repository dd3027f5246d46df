package models_base

import (
	"fmt"
	"strings"
)

// EncryptionAlgorithm is an A5 algorithm identifier as coded in Chosen
// Encryption Algorithm, 3GPP TS 48.008 3.2.2.44. A5/0 (no encryption) is 1.
type EncryptionAlgorithm uint8

const (
	AlgA5_0 EncryptionAlgorithm = iota + 1
	AlgA5_1
	AlgA5_2
	AlgA5_3
	AlgA5_4
	AlgA5_5
	AlgA5_6
	AlgA5_7
)

func (a EncryptionAlgorithm) String() string {
	if a >= AlgA5_0 && a <= AlgA5_7 {
		return fmt.Sprintf("A5/%d", uint8(a)-1)
	}
	return fmt.Sprintf("alg-0x%02x", uint8(a))
}

// EncryptionKeyMaxLen bounds the key of an Encryption Information IE
const EncryptionKeyMaxLen = 16

// EncryptionInformation is the Encryption Information IE, 3GPP TS 48.008
// 3.2.2.10
type EncryptionInformation struct {
	Permitted []EncryptionAlgorithm
	Key       []byte
}

func (e EncryptionInformation) Tag() uint8 { return IEEncryptionInformation }

func (e EncryptionInformation) Len() int { return 1 + len(e.Key) }

// PermittedMask returns the permitted algorithms bit mask
func (e EncryptionInformation) PermittedMask() (uint8, error) {
	var mask uint8
	for _, a := range e.Permitted {
		if a < AlgA5_0 || a > AlgA5_7 {
			return 0, ErrInvalidValue{IE: "Encryption Information", Reason: fmt.Sprintf("unknown algorithm %s", a)}
		}
		mask |= 1 << (uint8(a) - 1)
	}
	return mask, nil
}

func (e EncryptionInformation) AppendValue(b []byte) ([]byte, error) {
	if len(e.Key) > EncryptionKeyMaxLen {
		return b, ErrInvalidValue{IE: "Encryption Information", Reason: fmt.Sprintf("key of %d octets exceeds %d", len(e.Key), EncryptionKeyMaxLen)}
	}
	mask, err := e.PermittedMask()
	if err != nil {
		return b, err
	}
	b = append(b, mask)
	return append(b, e.Key...), nil
}

func (e EncryptionInformation) String() string {
	algs := make([]string, len(e.Permitted))
	for i, a := range e.Permitted {
		algs[i] = a.String()
	}
	return fmt.Sprintf("EncryptionInformation{permitted=[%s] key=%d octets}", strings.Join(algs, ","), len(e.Key))
}

// DecodeEncryptionInformation decodes the value part of an Encryption
// Information IE. The key is everything after the mask and is copied.
func DecodeEncryptionInformation(b []byte) (EncryptionInformation, int, error) {
	if len(b) < 1 {
		return EncryptionInformation{}, 0, ErrTruncated{IE: "Encryption Information", Need: 1, Have: 0}
	}
	if len(b)-1 > EncryptionKeyMaxLen {
		return EncryptionInformation{}, 0, ErrInvalidLength{IE: "Encryption Information", Length: len(b),
			Reason: fmt.Sprintf("key longer than %d octets", EncryptionKeyMaxLen)}
	}
	var e EncryptionInformation
	for bit := uint8(0); bit < 8; bit++ {
		if b[0]&(1<<bit) != 0 {
			e.Permitted = append(e.Permitted, EncryptionAlgorithm(bit+1))
		}
	}
	e.Key = append([]byte(nil), b[1:]...)
	return e, len(b), nil
}
