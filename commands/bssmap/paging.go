package bssmap

import (
	"fmt"

	"github.com/hsdfat8/bssap/models_base"
)

// Paging is the PAGING message, 3GPP TS 48.008 3.2.1.19
type Paging struct {
	IMSI  models_base.IMSI
	TMSI  *models_base.TMSI
	Cells *models_base.CellIdentifierList
	// ChannelNeeded is sent when non-nil; only the low two bits are used
	ChannelNeeded *uint8
}

func NewPaging() *Paging {
	return &Paging{}
}

func (m *Paging) Discriminator() Discriminator { return DiscrBSSMAP }
func (m *Paging) MessageType() MessageType     { return MsgPaging }

func (m *Paging) Validate() error {
	if err := m.IMSI.Validate(); err != nil {
		return validationFailed(MsgPaging, err)
	}
	if m.Cells == nil {
		return validationFailed(MsgPaging, models_base.ErrInvalidValue{IE: "Cell Identifier List", Reason: "not set"})
	}
	if _, err := m.Cells.AppendValue(nil); err != nil {
		return validationFailed(MsgPaging, err)
	}
	return nil
}

func (m *Paging) Marshal() ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return marshalBSSMAP(MsgPaging, 2+m.IMSI.Len()+6+2+m.Cells.Len()+2, func(w *ieWriter) {
		w.ie(m.IMSI)
		if m.TMSI != nil {
			w.ie(*m.TMSI)
		}
		w.ie(m.Cells)
		if m.ChannelNeeded != nil {
			w.tv(models_base.IEChannelNeeded, *m.ChannelNeeded&0x03)
		}
	})
}

func (m *Paging) Unmarshal(data []byte) error {
	const t = MsgPaging
	tp, err := parseBSSMAP(data, t)
	if err != nil {
		return err
	}
	*m = Paging{}

	v, err := mandatory(tp, t, models_base.IEIMSI)
	if err != nil {
		return err
	}
	if m.IMSI, err = decodeIE(t, models_base.IEIMSI, v, models_base.DecodeIMSI); err != nil {
		return err
	}
	if v, ok := tp.Get(models_base.IETMSI); ok {
		tmsi, err := decodeIE(t, models_base.IETMSI, v, models_base.DecodeTMSI)
		if err != nil {
			return err
		}
		m.TMSI = &tmsi
	}
	if v, err = mandatory(tp, t, models_base.IECellIdentifierList); err != nil {
		return err
	}
	if m.Cells, err = decodeIE(t, models_base.IECellIdentifierList, v, models_base.DecodeCellIdentifierList); err != nil {
		return err
	}
	v, ok, err := optionalFixed(tp, t, models_base.IEChannelNeeded, 1)
	if err != nil {
		return err
	}
	if ok {
		cn := v[0] & 0x03
		m.ChannelNeeded = &cn
	}
	return nil
}

func (m *Paging) String() string {
	tmsi := "none"
	if m.TMSI != nil {
		tmsi = m.TMSI.String()
	}
	cells := "none"
	if m.Cells != nil {
		cells = m.Cells.String()
	}
	channel := "none"
	if m.ChannelNeeded != nil {
		channel = fmt.Sprintf("%d", *m.ChannelNeeded)
	}
	return fmt.Sprintf("%s{imsi=%s tmsi=%s cells=%s channel_needed=%s}", MsgPaging, m.IMSI, tmsi, cells, channel)
}
