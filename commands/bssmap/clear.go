package bssmap

import (
	"fmt"

	"github.com/hsdfat8/bssap/models_base"
)

// ClearCommand is the CLEAR COMMAND message, 3GPP TS 48.008 3.2.1.21
type ClearCommand struct {
	Cause models_base.Cause
	// CSFBIndication marks a release after CS fallback
	CSFBIndication bool
}

// NewClearCommand creates a CLEAR COMMAND with cause "call control"
func NewClearCommand() *ClearCommand {
	return &ClearCommand{Cause: models_base.CauseCallControl}
}

func (m *ClearCommand) Discriminator() Discriminator { return DiscrBSSMAP }
func (m *ClearCommand) MessageType() MessageType     { return MsgClearCommand }

func (m *ClearCommand) Validate() error {
	if _, err := m.Cause.AppendValue(nil); err != nil {
		return validationFailed(MsgClearCommand, err)
	}
	return nil
}

func (m *ClearCommand) Marshal() ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return marshalBSSMAP(MsgClearCommand, 5, func(w *ieWriter) {
		w.ie(m.Cause)
		if m.CSFBIndication {
			w.t(models_base.IECSFBIndication)
		}
	})
}

func (m *ClearCommand) Unmarshal(data []byte) error {
	tp, err := parseBSSMAP(data, MsgClearCommand)
	if err != nil {
		return err
	}
	v, err := mandatory(tp, MsgClearCommand, models_base.IECause)
	if err != nil {
		return err
	}
	if m.Cause, err = decodeIE(MsgClearCommand, models_base.IECause, v, models_base.DecodeCause); err != nil {
		return err
	}
	m.CSFBIndication = tp.Present(models_base.IECSFBIndication)
	return nil
}

func (m *ClearCommand) String() string {
	return fmt.Sprintf("%s{cause=%s csfb=%t}", MsgClearCommand, m.Cause, m.CSFBIndication)
}

// ClearComplete is the CLEAR COMPLETE message, 3.2.1.22
type ClearComplete struct{}

func NewClearComplete() *ClearComplete { return &ClearComplete{} }

func (m *ClearComplete) Discriminator() Discriminator { return DiscrBSSMAP }
func (m *ClearComplete) MessageType() MessageType     { return MsgClearComplete }
func (m *ClearComplete) Validate() error              { return nil }

func (m *ClearComplete) Marshal() ([]byte, error) {
	return marshalBSSMAP(MsgClearComplete, 0, nil)
}

func (m *ClearComplete) Unmarshal(data []byte) error {
	_, err := parseBSSMAP(data, MsgClearComplete)
	return err
}

func (m *ClearComplete) String() string { return MsgClearComplete.String() }

// ClearRequest is the CLEAR REQUEST message, 3.2.1.20
type ClearRequest struct {
	Cause models_base.Cause
}

func NewClearRequest() *ClearRequest {
	return &ClearRequest{Cause: models_base.CauseRadioInterfaceFailure}
}

func (m *ClearRequest) Discriminator() Discriminator { return DiscrBSSMAP }
func (m *ClearRequest) MessageType() MessageType     { return MsgClearRequest }

func (m *ClearRequest) Validate() error {
	if _, err := m.Cause.AppendValue(nil); err != nil {
		return validationFailed(MsgClearRequest, err)
	}
	return nil
}

func (m *ClearRequest) Marshal() ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return marshalBSSMAP(MsgClearRequest, 4, func(w *ieWriter) {
		w.ie(m.Cause)
	})
}

func (m *ClearRequest) Unmarshal(data []byte) error {
	tp, err := parseBSSMAP(data, MsgClearRequest)
	if err != nil {
		return err
	}
	v, err := mandatory(tp, MsgClearRequest, models_base.IECause)
	if err != nil {
		return err
	}
	m.Cause, err = decodeIE(MsgClearRequest, models_base.IECause, v, models_base.DecodeCause)
	return err
}

func (m *ClearRequest) String() string {
	return fmt.Sprintf("%s{cause=%s}", MsgClearRequest, m.Cause)
}
