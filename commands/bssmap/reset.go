package bssmap

import (
	"fmt"

	"github.com/hsdfat8/bssap/models_base"
)

// Reset is the RESET message, 3GPP TS 48.008 3.2.1.23
type Reset struct {
	Cause models_base.Cause
}

// NewReset creates a RESET with cause "equipment failure"
func NewReset() *Reset {
	return &Reset{Cause: models_base.CauseEquipmentFailure}
}

func (m *Reset) Discriminator() Discriminator { return DiscrBSSMAP }
func (m *Reset) MessageType() MessageType     { return MsgReset }

// Validate checks that the cause can be encoded
func (m *Reset) Validate() error {
	if _, err := m.Cause.AppendValue(nil); err != nil {
		return validationFailed(MsgReset, err)
	}
	return nil
}

// Marshal serializes the message to bytes
func (m *Reset) Marshal() ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return marshalBSSMAP(MsgReset, 4, func(w *ieWriter) {
		w.ie(m.Cause)
	})
}

// Unmarshal deserializes bytes into the message
func (m *Reset) Unmarshal(data []byte) error {
	tp, err := parseBSSMAP(data, MsgReset)
	if err != nil {
		return err
	}
	v, err := mandatory(tp, MsgReset, models_base.IECause)
	if err != nil {
		return err
	}
	m.Cause, err = decodeIE(MsgReset, models_base.IECause, v, models_base.DecodeCause)
	return err
}

func (m *Reset) String() string {
	return fmt.Sprintf("%s{cause=%s}", MsgReset, m.Cause)
}

// ResetAcknowledge is the RESET ACKNOWLEDGE message, 3.2.1.24
type ResetAcknowledge struct{}

func NewResetAcknowledge() *ResetAcknowledge { return &ResetAcknowledge{} }

func (m *ResetAcknowledge) Discriminator() Discriminator { return DiscrBSSMAP }
func (m *ResetAcknowledge) MessageType() MessageType     { return MsgResetAcknowledge }
func (m *ResetAcknowledge) Validate() error              { return nil }

func (m *ResetAcknowledge) Marshal() ([]byte, error) {
	return marshalBSSMAP(MsgResetAcknowledge, 0, nil)
}

func (m *ResetAcknowledge) Unmarshal(data []byte) error {
	_, err := parseBSSMAP(data, MsgResetAcknowledge)
	return err
}

func (m *ResetAcknowledge) String() string { return MsgResetAcknowledge.String() }
