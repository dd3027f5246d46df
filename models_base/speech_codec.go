package models_base

import (
	"fmt"
	"strings"
)

// SpeechCodecType is the codec type of a Speech Codec Element, 3GPP TS 48.008
// 3.2.2.103
type SpeechCodecType uint8

const (
	SpeechCodecFR1 SpeechCodecType = 0x0
	SpeechCodecFR2 SpeechCodecType = 0x1
	SpeechCodecFR3 SpeechCodecType = 0x2
	SpeechCodecFR4 SpeechCodecType = 0x3
	SpeechCodecFR5 SpeechCodecType = 0x4
	SpeechCodecHR1 SpeechCodecType = 0x5
	SpeechCodecHR3 SpeechCodecType = 0x6
	SpeechCodecHR4 SpeechCodecType = 0x7
	SpeechCodecHR6 SpeechCodecType = 0x8
	SpeechCodecCSD SpeechCodecType = 0xfd
)

// speechCodecExtension is the low nibble announcing an extended codec type
const speechCodecExtension = 0x0f

var speechCodecNames = map[SpeechCodecType]string{
	SpeechCodecFR1: "FR1",
	SpeechCodecFR2: "FR2",
	SpeechCodecFR3: "FR3",
	SpeechCodecFR4: "FR4",
	SpeechCodecFR5: "FR5",
	SpeechCodecHR1: "HR1",
	SpeechCodecHR3: "HR3",
	SpeechCodecHR4: "HR4",
	SpeechCodecHR6: "HR6",
	SpeechCodecCSD: "CSD",
}

func (t SpeechCodecType) String() string {
	if name, ok := speechCodecNames[t]; ok {
		return name
	}
	return fmt.Sprintf("SCT-0x%02x", uint8(t))
}

// extended reports whether t needs the extension octet
func (t SpeechCodecType) extended() bool {
	return t >= speechCodecExtension
}

// cfgLen returns the number of configuration octets carried for t
func (t SpeechCodecType) cfgLen() (int, bool) {
	switch t {
	case SpeechCodecFR1, SpeechCodecFR2, SpeechCodecHR1:
		return 0, true
	case SpeechCodecFR3, SpeechCodecHR3, SpeechCodecHR6:
		return 2, true
	case SpeechCodecFR4, SpeechCodecFR5, SpeechCodecHR4, SpeechCodecCSD:
		return 1, true
	}
	return 0, false
}

// Flag bits of the first speech codec octet
const (
	speechCodecFI = 0x80
	speechCodecPI = 0x40
	speechCodecPT = 0x20
	speechCodecTF = 0x10
)

// SpeechCodec is one Speech Codec Element. Cfg is ignored and decodes as zero
// for types that carry no configuration.
type SpeechCodec struct {
	FI   bool
	PI   bool
	PT   bool
	TF   bool
	Type SpeechCodecType
	Cfg  uint16
}

// encodedLen returns the wire size of the element
func (s SpeechCodec) encodedLen() int {
	n := 1
	if s.Type.extended() {
		n++
	}
	c, _ := s.Type.cfgLen()
	return n + c
}

// appendTo appends the element without tag or length
func (s SpeechCodec) appendTo(b []byte) ([]byte, error) {
	cfgLen, ok := s.Type.cfgLen()
	if !ok {
		return b, ErrInvalidValue{IE: "Speech Codec", Reason: fmt.Sprintf("unsupported codec type %s", s.Type)}
	}

	var header uint8
	if s.FI {
		header |= speechCodecFI
	}
	if s.PI {
		header |= speechCodecPI
	}
	if s.PT {
		header |= speechCodecPT
	}
	if s.TF {
		header |= speechCodecTF
	}
	if s.Type.extended() {
		b = append(b, header|speechCodecExtension, uint8(s.Type))
	} else {
		b = append(b, header|uint8(s.Type))
	}

	switch cfgLen {
	case 1:
		b = append(b, uint8(s.Cfg))
	case 2:
		// low octet first
		b = append(b, uint8(s.Cfg), uint8(s.Cfg>>8))
	}
	return b, nil
}

func (s SpeechCodec) Tag() uint8 { return IESpeechCodec }

func (s SpeechCodec) Len() int { return s.encodedLen() }

func (s SpeechCodec) AppendValue(b []byte) ([]byte, error) { return s.appendTo(b) }

func (s SpeechCodec) String() string {
	var flags []string
	for _, f := range []struct {
		set  bool
		name string
	}{{s.FI, "FI"}, {s.PI, "PI"}, {s.PT, "PT"}, {s.TF, "TF"}} {
		if f.set {
			flags = append(flags, f.name)
		}
	}
	out := s.Type.String()
	if len(flags) > 0 {
		out += "[" + strings.Join(flags, ",") + "]"
	}
	if n, _ := s.Type.cfgLen(); n > 0 {
		out += fmt.Sprintf("cfg=0x%04x", s.Cfg)
	}
	return out
}

// decodeSpeechCodec decodes one element from the front of b and returns the
// number of octets used
func decodeSpeechCodec(b []byte) (SpeechCodec, int, error) {
	if len(b) < 1 {
		return SpeechCodec{}, 0, ErrTruncated{IE: "Speech Codec", Need: 1, Have: 0}
	}
	header := b[0]
	s := SpeechCodec{
		FI: header&speechCodecFI != 0,
		PI: header&speechCodecPI != 0,
		PT: header&speechCodecPT != 0,
		TF: header&speechCodecTF != 0,
	}
	n := 1
	if header&0x0f == speechCodecExtension {
		if len(b) < 2 {
			return SpeechCodec{}, 0, ErrTruncated{IE: "Speech Codec", Need: 2, Have: len(b)}
		}
		// types below the extension value have only the short form
		if b[1] < speechCodecExtension {
			return SpeechCodec{}, 0, ErrInvalidDiscriminator{IE: "Speech Codec", Value: b[1]}
		}
		s.Type = SpeechCodecType(b[1])
		n++
	} else {
		s.Type = SpeechCodecType(header & 0x0f)
	}

	cfgLen, ok := s.Type.cfgLen()
	if !ok {
		return SpeechCodec{}, 0, ErrInvalidDiscriminator{IE: "Speech Codec", Value: uint8(s.Type)}
	}
	if len(b) < n+cfgLen {
		return SpeechCodec{}, 0, ErrTruncated{IE: "Speech Codec", Need: n + cfgLen, Have: len(b)}
	}
	switch cfgLen {
	case 1:
		s.Cfg = uint16(b[n])
	case 2:
		s.Cfg = uint16(b[n]) | uint16(b[n+1])<<8
	}
	return s, n + cfgLen, nil
}

// DecodeSpeechCodec decodes the value part of a Speech Codec IE, which must
// hold exactly one element
func DecodeSpeechCodec(b []byte) (SpeechCodec, int, error) {
	s, n, err := decodeSpeechCodec(b)
	if err != nil {
		return SpeechCodec{}, 0, err
	}
	if n != len(b) {
		return SpeechCodec{}, 0, ErrInvalidLength{IE: "Speech Codec", Length: len(b),
			Reason: fmt.Sprintf("%s uses %d octets", s.Type, n)}
	}
	return s, n, nil
}

// SpeechCodecListMaxLen bounds the number of codecs in a list
const SpeechCodecListMaxLen = 255

// SpeechCodecList is the Speech Codec List IE. Order expresses preference.
type SpeechCodecList []SpeechCodec

func (l SpeechCodecList) Tag() uint8 { return IESpeechCodecList }

func (l SpeechCodecList) Len() int {
	n := 0
	for _, s := range l {
		n += s.encodedLen()
	}
	return n
}

func (l SpeechCodecList) AppendValue(b []byte) ([]byte, error) {
	if len(l) > SpeechCodecListMaxLen {
		return b, ErrCapacityExceeded{What: "Speech Codec List", Max: SpeechCodecListMaxLen, Have: len(l)}
	}
	start := len(b)
	var err error
	for _, s := range l {
		if b, err = s.appendTo(b); err != nil {
			return b[:start], err
		}
	}
	return b, nil
}

func (l SpeechCodecList) String() string {
	parts := make([]string, len(l))
	for i, s := range l {
		parts[i] = s.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// DecodeSpeechCodecList decodes the value part of a Speech Codec List IE. An
// empty value is an empty list.
func DecodeSpeechCodecList(b []byte) (SpeechCodecList, int, error) {
	l := SpeechCodecList{}
	pos := 0
	for pos < len(b) {
		if len(l) == SpeechCodecListMaxLen {
			return nil, 0, ErrCapacityExceeded{What: "Speech Codec List", Max: SpeechCodecListMaxLen, Have: len(l) + 1}
		}
		s, n, err := decodeSpeechCodec(b[pos:])
		if err != nil {
			return nil, 0, err
		}
		l = append(l, s)
		pos += n
	}
	return l, pos, nil
}
