package bssmap

import (
	"fmt"

	"github.com/hsdfat8/bssap/models_base"
)

// CompleteLayer3 is the COMPLETE LAYER 3 INFORMATION message, 3GPP TS 48.008
// 3.2.1.32. Layer3 carries the initial MS message untouched.
type CompleteLayer3 struct {
	Cell   models_base.CellIdentifier
	Layer3 []byte
	// SpeechCodecs is the BSS supported codec list, sent on AoIP
	SpeechCodecs models_base.SpeechCodecList
}

func NewCompleteLayer3() *CompleteLayer3 {
	return &CompleteLayer3{}
}

func (m *CompleteLayer3) Discriminator() Discriminator { return DiscrBSSMAP }
func (m *CompleteLayer3) MessageType() MessageType     { return MsgCompleteLayer3 }

func (m *CompleteLayer3) Validate() error {
	if _, err := m.Cell.AppendValue(nil); err != nil {
		return validationFailed(MsgCompleteLayer3, err)
	}
	if len(m.Layer3) == 0 {
		return validationFailed(MsgCompleteLayer3, models_base.ErrInvalidValue{IE: "Layer 3 Information", Reason: "empty"})
	}
	if m.SpeechCodecs != nil {
		if _, err := m.SpeechCodecs.AppendValue(nil); err != nil {
			return validationFailed(MsgCompleteLayer3, err)
		}
	}
	return nil
}

func (m *CompleteLayer3) Marshal() ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return marshalBSSMAP(MsgCompleteLayer3, 2+m.Cell.Len()+2+len(m.Layer3)+2+m.SpeechCodecs.Len(), func(w *ieWriter) {
		w.ie(m.Cell)
		w.tlv(models_base.IELayer3Information, m.Layer3)
		if m.SpeechCodecs != nil {
			w.ie(m.SpeechCodecs)
		}
	})
}

func (m *CompleteLayer3) Unmarshal(data []byte) error {
	const t = MsgCompleteLayer3
	tp, err := parseBSSMAP(data, t)
	if err != nil {
		return err
	}
	*m = CompleteLayer3{}

	v, err := mandatory(tp, t, models_base.IECellIdentifier)
	if err != nil {
		return err
	}
	if m.Cell, err = decodeIE(t, models_base.IECellIdentifier, v, models_base.DecodeCellIdentifier); err != nil {
		return err
	}
	if v, err = mandatory(tp, t, models_base.IELayer3Information); err != nil {
		return err
	}
	m.Layer3 = append([]byte(nil), v...)
	if v, ok := tp.Get(models_base.IESpeechCodecList); ok {
		if m.SpeechCodecs, err = decodeIE(t, models_base.IESpeechCodecList, v, models_base.DecodeSpeechCodecList); err != nil {
			return err
		}
	}
	return nil
}

func (m *CompleteLayer3) String() string {
	return fmt.Sprintf("%s{cell=%s layer3=%x codecs=%s}", MsgCompleteLayer3, m.Cell, m.Layer3, m.SpeechCodecs)
}

// DTAP wraps a layer 3 message for transfer between MS and MSC, 3GPP TS
// 48.006 9.3. The payload is not interpreted.
type DTAP struct {
	DLCI    uint8
	Payload []byte
}

func NewDTAP(dlci uint8, payload []byte) *DTAP {
	return &DTAP{DLCI: dlci, Payload: payload}
}

func (m *DTAP) Discriminator() Discriminator { return DiscrDTAP }
func (m *DTAP) MessageType() MessageType     { return 0 }

func (m *DTAP) Validate() error {
	if len(m.Payload) > maxPayloadLen {
		return fmt.Errorf("DTAP validation failed: %w", models_base.ErrCapacityExceeded{
			What: "DTAP payload", Max: maxPayloadLen, Have: len(m.Payload)})
	}
	return nil
}

func (m *DTAP) Marshal() ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	b := make([]byte, 0, dtapHeaderLen+len(m.Payload))
	b = append(b, uint8(DiscrDTAP), m.DLCI, uint8(len(m.Payload)))
	return append(b, m.Payload...), nil
}

func (m *DTAP) Unmarshal(data []byte) error {
	h, payload, err := ParseHeader(data)
	if err != nil {
		return err
	}
	if h.Discriminator != DiscrDTAP {
		return models_base.ErrInvalidDiscriminator{IE: "BSSAP discriminator", Value: uint8(h.Discriminator)}
	}
	if h.Len()+len(payload) != len(data) {
		return models_base.ErrInvalidLength{IE: "DTAP", Length: int(h.Length),
			Reason: fmt.Sprintf("%d trailing octets", len(data)-h.Len()-len(payload))}
	}
	m.DLCI = h.DLCI
	m.Payload = append([]byte(nil), payload...)
	return nil
}

func (m *DTAP) String() string {
	return fmt.Sprintf("DTAP{dlci=0x%02x payload=%x}", m.DLCI, m.Payload)
}

// PrependDTAPHeader puts a DTAP header in front of an existing layer 3
// message. The payload is copied.
func PrependDTAPHeader(l3 []byte, dlci uint8) ([]byte, error) {
	return NewDTAP(dlci, l3).Marshal()
}
