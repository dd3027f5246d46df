package bssmap

import (
	"fmt"

	"github.com/hsdfat8/bssap/models_base"
)

// ClassmarkUpdate is the CLASSMARK UPDATE message, 3GPP TS 48.008 3.2.1.29.
// The classmark contents are passed through opaquely.
type ClassmarkUpdate struct {
	Classmark2 []byte
	// Classmark3 is optional
	Classmark3 []byte
}

func NewClassmarkUpdate() *ClassmarkUpdate {
	return &ClassmarkUpdate{}
}

func (m *ClassmarkUpdate) Discriminator() Discriminator { return DiscrBSSMAP }
func (m *ClassmarkUpdate) MessageType() MessageType     { return MsgClassmarkUpdate }

func (m *ClassmarkUpdate) Validate() error {
	if len(m.Classmark2) == 0 {
		return validationFailed(MsgClassmarkUpdate, models_base.ErrInvalidValue{
			IE: models_base.TagName(models_base.IEClassmarkInformationT2), Reason: "empty"})
	}
	return nil
}

func (m *ClassmarkUpdate) Marshal() ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return marshalBSSMAP(MsgClassmarkUpdate, 4+len(m.Classmark2)+len(m.Classmark3), func(w *ieWriter) {
		w.tlv(models_base.IEClassmarkInformationT2, m.Classmark2)
		if len(m.Classmark3) > 0 {
			w.tlv(models_base.IEClassmarkInformationT3, m.Classmark3)
		}
	})
}

func (m *ClassmarkUpdate) Unmarshal(data []byte) error {
	tp, err := parseBSSMAP(data, MsgClassmarkUpdate)
	if err != nil {
		return err
	}
	v, err := mandatory(tp, MsgClassmarkUpdate, models_base.IEClassmarkInformationT2)
	if err != nil {
		return err
	}
	m.Classmark2 = append([]byte(nil), v...)
	m.Classmark3 = nil
	if v, ok := tp.Get(models_base.IEClassmarkInformationT3); ok {
		m.Classmark3 = append([]byte(nil), v...)
	}
	return nil
}

func (m *ClassmarkUpdate) String() string {
	return fmt.Sprintf("%s{cm2=%x cm3=%x}", MsgClassmarkUpdate, m.Classmark2, m.Classmark3)
}

// SAPINReject is the SAPI "n" REJECT message, 3.2.1.34. The link identifier
// and cause follow the message type as bare octets.
type SAPINReject struct {
	LinkID uint8
	Cause  models_base.Cause
}

// NewSAPINReject creates a reject with cause "BSS not equipped"
func NewSAPINReject() *SAPINReject {
	return &SAPINReject{Cause: models_base.CauseBSSNotEquipped}
}

func (m *SAPINReject) Discriminator() Discriminator { return DiscrBSSMAP }
func (m *SAPINReject) MessageType() MessageType     { return MsgSAPINReject }

func (m *SAPINReject) Validate() error {
	if m.Cause.IsExtended() || m.Cause > 0x7f {
		return validationFailed(MsgSAPINReject, models_base.ErrInvalidValue{
			IE: "Cause", Reason: "only single octet causes are carried"})
	}
	return nil
}

func (m *SAPINReject) Marshal() ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return marshalBSSMAP(MsgSAPINReject, 2, func(w *ieWriter) {
		w.raw(m.LinkID, uint8(m.Cause))
	})
}

func (m *SAPINReject) Unmarshal(data []byte) error {
	body, err := bssmapBody(data, MsgSAPINReject)
	if err != nil {
		return err
	}
	if len(body) != 2 {
		return models_base.ErrInvalidLength{IE: MsgSAPINReject.String(), Length: len(body), Reason: "want link id and cause"}
	}
	m.LinkID = body[0]
	m.Cause = models_base.Cause(body[1] & 0x7f)
	return nil
}

func (m *SAPINReject) String() string {
	return fmt.Sprintf("%s{link_id=0x%02x cause=%s}", MsgSAPINReject, m.LinkID, m.Cause)
}
