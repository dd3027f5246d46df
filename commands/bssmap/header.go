package bssmap

import (
	"fmt"

	"github.com/hsdfat8/bssap/models_base"
)

// Discriminator is the first octet of every BSSAP message, 3GPP TS 48.006
// 9.3
type Discriminator uint8

const (
	DiscrBSSMAP Discriminator = 0x00
	DiscrDTAP   Discriminator = 0x01
)

func (d Discriminator) String() string {
	switch d {
	case DiscrBSSMAP:
		return "BSSMAP"
	case DiscrDTAP:
		return "DTAP"
	}
	return fmt.Sprintf("BSSAP-0x%02x", uint8(d))
}

const (
	bssmapHeaderLen = 2
	dtapHeaderLen   = 3
	maxPayloadLen   = 0xff
)

// Header is a parsed BSSAP header. DLCI is only meaningful for DTAP.
type Header struct {
	Discriminator Discriminator
	DLCI          uint8
	Length        uint8
}

// Len returns the size of the header on the wire
func (h Header) Len() int {
	if h.Discriminator == DiscrDTAP {
		return dtapHeaderLen
	}
	return bssmapHeaderLen
}

// ParseHeader parses the BSSAP header at the start of data and returns it
// together with the payload it announces
func ParseHeader(data []byte) (Header, []byte, error) {
	if len(data) < 1 {
		return Header{}, nil, models_base.ErrTruncated{IE: "BSSAP header", Need: 1, Have: 0}
	}
	h := Header{Discriminator: Discriminator(data[0])}
	switch h.Discriminator {
	case DiscrBSSMAP:
		if len(data) < bssmapHeaderLen {
			return Header{}, nil, models_base.ErrTruncated{IE: "BSSAP header", Need: bssmapHeaderLen, Have: len(data)}
		}
		h.Length = data[1]
	case DiscrDTAP:
		if len(data) < dtapHeaderLen {
			return Header{}, nil, models_base.ErrTruncated{IE: "BSSAP header", Need: dtapHeaderLen, Have: len(data)}
		}
		h.DLCI = data[1]
		h.Length = data[2]
	default:
		return Header{}, nil, models_base.ErrInvalidDiscriminator{IE: "BSSAP discriminator", Value: data[0]}
	}

	rest := data[h.Len():]
	if int(h.Length) > len(rest) {
		return Header{}, nil, models_base.ErrTruncated{IE: h.Discriminator.String() + " payload", Need: int(h.Length), Have: len(rest)}
	}
	return h, rest[:h.Length:h.Length], nil
}

// ieWriter appends IEs and keeps the first error
type ieWriter struct {
	b   []byte
	err error
}

func (w *ieWriter) ie(t models_base.Type) {
	if w.err != nil {
		return
	}
	w.b, w.err = models_base.AppendIE(w.b, t)
}

func (w *ieWriter) tlv(tag uint8, value []byte) {
	if w.err != nil {
		return
	}
	w.b, w.err = models_base.AppendTLV(w.b, tag, value)
}

func (w *ieWriter) tv(tag uint8, value ...byte) {
	if w.err != nil {
		return
	}
	w.b = models_base.AppendTV(w.b, tag, value...)
}

func (w *ieWriter) t(tag uint8) {
	if w.err != nil {
		return
	}
	w.b = models_base.AppendT(w.b, tag)
}

func (w *ieWriter) raw(v ...byte) {
	if w.err != nil {
		return
	}
	w.b = append(w.b, v...)
}

func (w *ieWriter) lcls(l *models_base.LCLS) {
	if w.err != nil || l == nil {
		return
	}
	w.b, w.err = l.AppendTo(w.b)
}

// marshalBSSMAP writes the BSSMAP header and message type, lets body append
// the IEs and then fills in the length octet
func marshalBSSMAP(t MessageType, sizeHint int, body func(w *ieWriter)) ([]byte, error) {
	w := &ieWriter{b: make([]byte, 0, bssmapHeaderLen+1+sizeHint)}
	w.b = append(w.b, uint8(DiscrBSSMAP), 0, uint8(t))
	if body != nil {
		body(w)
	}
	if w.err != nil {
		return nil, fmt.Errorf("marshal %s: %w", t, w.err)
	}
	n := len(w.b) - bssmapHeaderLen
	if n > maxPayloadLen {
		return nil, models_base.ErrCapacityExceeded{What: t.String() + " payload", Max: maxPayloadLen, Have: n}
	}
	w.b[1] = uint8(n)
	return w.b, nil
}

// bssmapBody checks header and message type of data and returns the octets
// following the message type
func bssmapBody(data []byte, want MessageType) ([]byte, error) {
	h, payload, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}
	if h.Discriminator != DiscrBSSMAP {
		return nil, models_base.ErrInvalidDiscriminator{IE: "BSSAP discriminator", Value: uint8(h.Discriminator)}
	}
	if h.Len()+len(payload) != len(data) {
		return nil, models_base.ErrInvalidLength{IE: want.String(), Length: int(h.Length),
			Reason: fmt.Sprintf("%d trailing octets", len(data)-h.Len()-len(payload))}
	}
	if len(payload) < 1 {
		return nil, models_base.ErrTruncated{IE: "message type", Need: 1, Have: 0}
	}
	if MessageType(payload[0]) != want {
		return nil, models_base.ErrInvalidDiscriminator{IE: want.String() + " message type", Value: payload[0]}
	}
	return payload[1:], nil
}

// parseBSSMAP checks the header of data and parses its IEs
func parseBSSMAP(data []byte, want MessageType) (*models_base.TLVParsed, error) {
	body, err := bssmapBody(data, want)
	if err != nil {
		return nil, err
	}
	tp, err := models_base.ParseTLV(body, models_base.BSSMAPDefinitions)
	if err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", want, err)
	}
	return tp, nil
}

// mandatory returns the value of a mandatory IE
func mandatory(tp *models_base.TLVParsed, t MessageType, tag uint8) ([]byte, error) {
	v, ok := tp.Get(tag)
	if !ok {
		return nil, models_base.ErrMissingIE{Message: t.String(), IE: models_base.TagName(tag)}
	}
	return v, nil
}

// optionalFixed returns the value of an optional IE that must be n octets
// long
func optionalFixed(tp *models_base.TLVParsed, t MessageType, tag uint8, n int) ([]byte, bool, error) {
	v, ok, err := tp.GetFixed(tag, n)
	if err != nil {
		return nil, true, fmt.Errorf("unmarshal %s: %w", t, err)
	}
	return v, ok, nil
}

// mandatoryFixed is mandatory for an IE of exactly n octets
func mandatoryFixed(tp *models_base.TLVParsed, t MessageType, tag uint8, n int) ([]byte, error) {
	v, ok, err := optionalFixed(tp, t, tag, n)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, models_base.ErrMissingIE{Message: t.String(), IE: models_base.TagName(tag)}
	}
	return v, nil
}

// decodeIE runs an IE decoder over the value of tag and wraps its error
func decodeIE[T any](t MessageType, tag uint8, v []byte, dec func([]byte) (T, int, error)) (T, error) {
	x, _, err := dec(v)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("unmarshal %s %s: %w", t, models_base.TagName(tag), err)
	}
	return x, nil
}

func validationFailed(t MessageType, err error) error {
	return fmt.Errorf("%s validation failed: %w", t, err)
}
