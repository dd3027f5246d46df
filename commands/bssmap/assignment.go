package bssmap

import (
	"fmt"
	"strings"

	"github.com/hsdfat8/bssap/models_base"
)

// AssignmentRequest is the ASSIGNMENT REQUEST message, 3GPP TS 48.008
// 3.2.1.1. Optional IEs are sent when non-nil, in the order of the fields.
type AssignmentRequest struct {
	ChannelType models_base.ChannelType
	CIC         *uint16
	AoIP        *models_base.AoIPTransportAddr
	// SpeechCodecs is the MSC preferred codec list
	SpeechCodecs models_base.SpeechCodecList
	CallID       *uint32
	Kc128        *[Kc128Len]byte
	LCLS         *models_base.LCLS
}

func NewAssignmentRequest() *AssignmentRequest {
	return &AssignmentRequest{}
}

func (m *AssignmentRequest) Discriminator() Discriminator { return DiscrBSSMAP }
func (m *AssignmentRequest) MessageType() MessageType     { return MsgAssignmentRequest }

func (m *AssignmentRequest) Validate() error {
	if m.ChannelType.Indicator == 0 {
		return validationFailed(MsgAssignmentRequest, models_base.ErrInvalidValue{
			IE: "Channel Type", Reason: "channel indicator not set"})
	}
	if _, err := m.ChannelType.AppendValue(nil); err != nil {
		return validationFailed(MsgAssignmentRequest, err)
	}
	if m.SpeechCodecs != nil {
		if _, err := m.SpeechCodecs.AppendValue(nil); err != nil {
			return validationFailed(MsgAssignmentRequest, err)
		}
	}
	return nil
}

func (m *AssignmentRequest) Marshal() ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return marshalBSSMAP(MsgAssignmentRequest, 64, func(w *ieWriter) {
		w.ie(m.ChannelType)
		if m.CIC != nil {
			w.tv(models_base.IECircuitIdentityCode, uint8(*m.CIC>>8), uint8(*m.CIC))
		}
		if m.AoIP != nil {
			w.ie(*m.AoIP)
		}
		if m.SpeechCodecs != nil {
			w.ie(m.SpeechCodecs)
		}
		if m.CallID != nil {
			id := *m.CallID
			w.tv(models_base.IECallID, uint8(id>>24), uint8(id>>16), uint8(id>>8), uint8(id))
		}
		if m.Kc128 != nil {
			w.tv(models_base.IEKc128, m.Kc128[:]...)
		}
		w.lcls(m.LCLS)
	})
}

func (m *AssignmentRequest) Unmarshal(data []byte) error {
	const t = MsgAssignmentRequest
	tp, err := parseBSSMAP(data, t)
	if err != nil {
		return err
	}
	*m = AssignmentRequest{}

	v, err := mandatory(tp, t, models_base.IEChannelType)
	if err != nil {
		return err
	}
	if m.ChannelType, err = decodeIE(t, models_base.IEChannelType, v, models_base.DecodeChannelType); err != nil {
		return err
	}
	v, ok, err := optionalFixed(tp, t, models_base.IECircuitIdentityCode, 2)
	if err != nil {
		return err
	}
	if ok {
		cic := uint16(v[0])<<8 | uint16(v[1])
		m.CIC = &cic
	}
	if v, ok := tp.Get(models_base.IEAoIPTransportAddr); ok {
		addr, err := decodeIE(t, models_base.IEAoIPTransportAddr, v, models_base.DecodeAoIPTransportAddr)
		if err != nil {
			return err
		}
		m.AoIP = &addr
	}
	if v, ok := tp.Get(models_base.IESpeechCodecList); ok {
		if m.SpeechCodecs, err = decodeIE(t, models_base.IESpeechCodecList, v, models_base.DecodeSpeechCodecList); err != nil {
			return err
		}
	}
	if v, ok, err = optionalFixed(tp, t, models_base.IECallID, 4); err != nil {
		return err
	}
	if ok {
		id := uint32(v[0])<<24 | uint32(v[1])<<16 | uint32(v[2])<<8 | uint32(v[3])
		m.CallID = &id
	}
	if v, ok, err = optionalFixed(tp, t, models_base.IEKc128, Kc128Len); err != nil {
		return err
	}
	if ok {
		var kc [Kc128Len]byte
		copy(kc[:], v)
		m.Kc128 = &kc
	}
	if m.LCLS, err = models_base.DecodeLCLS(tp); err != nil {
		return fmt.Errorf("unmarshal %s LCLS: %w", t, err)
	}
	return nil
}

func (m *AssignmentRequest) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s{%s", MsgAssignmentRequest, m.ChannelType)
	if m.CIC != nil {
		fmt.Fprintf(&sb, " cic=%d", *m.CIC)
	}
	if m.AoIP != nil {
		fmt.Fprintf(&sb, " aoip=%s", m.AoIP)
	}
	if m.SpeechCodecs != nil {
		fmt.Fprintf(&sb, " codecs=%s", m.SpeechCodecs)
	}
	if m.CallID != nil {
		fmt.Fprintf(&sb, " call_id=0x%08x", *m.CallID)
	}
	if m.Kc128 != nil {
		sb.WriteString(" kc128")
	}
	if m.LCLS != nil {
		fmt.Fprintf(&sb, " %s", m.LCLS)
	}
	sb.WriteString("}")
	return sb.String()
}

// AssignmentComplete is the ASSIGNMENT COMPLETE message, 3.2.1.2
type AssignmentComplete struct {
	RRCause         uint8
	ChosenChannel   uint8
	ChosenAlgorithm models_base.EncryptionAlgorithm
	// SpeechVersion is omitted when zero
	SpeechVersion uint8
	AoIP          *models_base.AoIPTransportAddr
	// SpeechCodec is the codec chosen by the BSS
	SpeechCodec *models_base.SpeechCodec
	// SpeechCodecs is the BSS supported codec list
	SpeechCodecs models_base.SpeechCodecList
	// LCLSStatus is omitted when NA
	LCLSStatus models_base.LCLSStatus
}

func NewAssignmentComplete() *AssignmentComplete {
	return &AssignmentComplete{ChosenAlgorithm: models_base.AlgA5_0, LCLSStatus: models_base.LCLSStatusNA}
}

func (m *AssignmentComplete) Discriminator() Discriminator { return DiscrBSSMAP }
func (m *AssignmentComplete) MessageType() MessageType     { return MsgAssignmentComplete }

func (m *AssignmentComplete) Validate() error {
	if m.SpeechCodec != nil {
		if _, err := m.SpeechCodec.AppendValue(nil); err != nil {
			return validationFailed(MsgAssignmentComplete, err)
		}
	}
	if m.SpeechCodecs != nil {
		if _, err := m.SpeechCodecs.AppendValue(nil); err != nil {
			return validationFailed(MsgAssignmentComplete, err)
		}
	}
	return nil
}

func (m *AssignmentComplete) Marshal() ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return marshalBSSMAP(MsgAssignmentComplete, 48, func(w *ieWriter) {
		w.tv(models_base.IERRCause, m.RRCause)
		w.tv(models_base.IEChosenChannel, m.ChosenChannel)
		w.tv(models_base.IEChosenEncrAlg, uint8(m.ChosenAlgorithm))
		if m.SpeechVersion != 0 {
			w.tv(models_base.IESpeechVersion, m.SpeechVersion)
		}
		if m.AoIP != nil {
			w.ie(*m.AoIP)
		}
		if m.SpeechCodec != nil {
			w.ie(*m.SpeechCodec)
		}
		if m.SpeechCodecs != nil {
			w.ie(m.SpeechCodecs)
		}
		if m.LCLSStatus != models_base.LCLSStatusNA {
			w.tv(models_base.IELCLSBSSStatus, uint8(m.LCLSStatus))
		}
	})
}

func (m *AssignmentComplete) Unmarshal(data []byte) error {
	const t = MsgAssignmentComplete
	tp, err := parseBSSMAP(data, t)
	if err != nil {
		return err
	}
	*m = *NewAssignmentComplete()

	for _, f := range []struct {
		tag uint8
		dst *uint8
	}{
		{models_base.IERRCause, &m.RRCause},
		{models_base.IEChosenChannel, &m.ChosenChannel},
		{models_base.IEChosenEncrAlg, (*uint8)(&m.ChosenAlgorithm)},
	} {
		v, err := mandatoryFixed(tp, t, f.tag, 1)
		if err != nil {
			return err
		}
		*f.dst = v[0]
	}
	v, ok, err := optionalFixed(tp, t, models_base.IESpeechVersion, 1)
	if err != nil {
		return err
	}
	if ok {
		m.SpeechVersion = v[0]
	}
	if v, ok := tp.Get(models_base.IEAoIPTransportAddr); ok {
		addr, err := decodeIE(t, models_base.IEAoIPTransportAddr, v, models_base.DecodeAoIPTransportAddr)
		if err != nil {
			return err
		}
		m.AoIP = &addr
	}
	if v, ok := tp.Get(models_base.IESpeechCodec); ok {
		sc, err := decodeIE(t, models_base.IESpeechCodec, v, models_base.DecodeSpeechCodec)
		if err != nil {
			return err
		}
		m.SpeechCodec = &sc
	}
	if v, ok := tp.Get(models_base.IESpeechCodecList); ok {
		if m.SpeechCodecs, err = decodeIE(t, models_base.IESpeechCodecList, v, models_base.DecodeSpeechCodecList); err != nil {
			return err
		}
	}
	if v, ok, err = optionalFixed(tp, t, models_base.IELCLSBSSStatus, 1); err != nil {
		return err
	}
	if ok {
		m.LCLSStatus = models_base.LCLSStatus(v[0])
	}
	return nil
}

func (m *AssignmentComplete) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s{rr_cause=0x%02x chosen_channel=0x%02x alg=%s", MsgAssignmentComplete,
		m.RRCause, m.ChosenChannel, m.ChosenAlgorithm)
	if m.SpeechVersion != 0 {
		fmt.Fprintf(&sb, " speech_version=0x%02x", m.SpeechVersion)
	}
	if m.AoIP != nil {
		fmt.Fprintf(&sb, " aoip=%s", m.AoIP)
	}
	if m.SpeechCodec != nil {
		fmt.Fprintf(&sb, " codec=%s", m.SpeechCodec)
	}
	if m.SpeechCodecs != nil {
		fmt.Fprintf(&sb, " codecs=%s", m.SpeechCodecs)
	}
	if m.LCLSStatus != models_base.LCLSStatusNA {
		fmt.Fprintf(&sb, " lcls_status=%s", m.LCLSStatus)
	}
	sb.WriteString("}")
	return sb.String()
}

// AssignmentFailure is the ASSIGNMENT FAILURE message, 3.2.1.3
type AssignmentFailure struct {
	Cause   models_base.Cause
	RRCause *uint8
	// SpeechCodecs is the BSS supported codec list
	SpeechCodecs models_base.SpeechCodecList
}

func NewAssignmentFailure() *AssignmentFailure {
	return &AssignmentFailure{Cause: models_base.CauseNoRadioResourceAvailable}
}

func (m *AssignmentFailure) Discriminator() Discriminator { return DiscrBSSMAP }
func (m *AssignmentFailure) MessageType() MessageType     { return MsgAssignmentFailure }

func (m *AssignmentFailure) Validate() error {
	if _, err := m.Cause.AppendValue(nil); err != nil {
		return validationFailed(MsgAssignmentFailure, err)
	}
	if m.SpeechCodecs != nil {
		if _, err := m.SpeechCodecs.AppendValue(nil); err != nil {
			return validationFailed(MsgAssignmentFailure, err)
		}
	}
	return nil
}

func (m *AssignmentFailure) Marshal() ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return marshalBSSMAP(MsgAssignmentFailure, 24, func(w *ieWriter) {
		w.ie(m.Cause)
		if m.RRCause != nil {
			w.tv(models_base.IERRCause, *m.RRCause)
		}
		if m.SpeechCodecs != nil {
			w.ie(m.SpeechCodecs)
		}
	})
}

func (m *AssignmentFailure) Unmarshal(data []byte) error {
	const t = MsgAssignmentFailure
	tp, err := parseBSSMAP(data, t)
	if err != nil {
		return err
	}
	*m = AssignmentFailure{}

	v, err := mandatory(tp, t, models_base.IECause)
	if err != nil {
		return err
	}
	if m.Cause, err = decodeIE(t, models_base.IECause, v, models_base.DecodeCause); err != nil {
		return err
	}
	v, ok, err := optionalFixed(tp, t, models_base.IERRCause, 1)
	if err != nil {
		return err
	}
	if ok {
		rr := v[0]
		m.RRCause = &rr
	}
	if v, ok := tp.Get(models_base.IESpeechCodecList); ok {
		if m.SpeechCodecs, err = decodeIE(t, models_base.IESpeechCodecList, v, models_base.DecodeSpeechCodecList); err != nil {
			return err
		}
	}
	return nil
}

func (m *AssignmentFailure) String() string {
	rr := "none"
	if m.RRCause != nil {
		rr = fmt.Sprintf("0x%02x", *m.RRCause)
	}
	return fmt.Sprintf("%s{cause=%s rr_cause=%s codecs=%s}", MsgAssignmentFailure, m.Cause, rr, m.SpeechCodecs)
}
