package bssmap

import (
	"fmt"

	"github.com/hsdfat8/bssap/models_base"
)

// LCLSConnectControl is the LCLS CONNECT CONTROL message, 3GPP TS 48.008
// 3.2.1.91. Members that are nil or NA are left out.
type LCLSConnectControl struct {
	Config  *models_base.LCLSConfig
	Control *models_base.LCLSControl
}

func NewLCLSConnectControl() *LCLSConnectControl {
	return &LCLSConnectControl{}
}

func (m *LCLSConnectControl) Discriminator() Discriminator { return DiscrBSSMAP }
func (m *LCLSConnectControl) MessageType() MessageType     { return MsgLCLSConnectControl }
func (m *LCLSConnectControl) Validate() error              { return nil }

func (m *LCLSConnectControl) Marshal() ([]byte, error) {
	return marshalBSSMAP(MsgLCLSConnectControl, 4, func(w *ieWriter) {
		if m.Config != nil && *m.Config != models_base.LCLSConfigNA {
			w.tv(models_base.IELCLSConfig, uint8(*m.Config))
		}
		if m.Control != nil && *m.Control != models_base.LCLSControlNA {
			w.tv(models_base.IELCLSConnStatusCtrl, uint8(*m.Control))
		}
	})
}

func (m *LCLSConnectControl) Unmarshal(data []byte) error {
	tp, err := parseBSSMAP(data, MsgLCLSConnectControl)
	if err != nil {
		return err
	}
	*m = *NewLCLSConnectControl()
	v, ok, err := optionalFixed(tp, MsgLCLSConnectControl, models_base.IELCLSConfig, 1)
	if err != nil {
		return err
	}
	if ok {
		if c := models_base.LCLSConfig(v[0]); c != models_base.LCLSConfigNA {
			m.Config = &c
		}
	}
	if v, ok, err = optionalFixed(tp, MsgLCLSConnectControl, models_base.IELCLSConnStatusCtrl, 1); err != nil {
		return err
	}
	if ok {
		if c := models_base.LCLSControl(v[0]); c != models_base.LCLSControlNA {
			m.Control = &c
		}
	}
	return nil
}

func (m *LCLSConnectControl) String() string {
	config, control := "none", "none"
	if m.Config != nil {
		config = m.Config.String()
	}
	if m.Control != nil {
		control = m.Control.String()
	}
	return fmt.Sprintf("%s{config=%s control=%s}", MsgLCLSConnectControl, config, control)
}
