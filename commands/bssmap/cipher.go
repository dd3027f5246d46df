package bssmap

import (
	"fmt"

	"github.com/hsdfat8/bssap/models_base"
)

// Kc128Len is the size of a 128 bit ciphering key
const Kc128Len = 16

// CipherModeCommand is the CIPHER MODE COMMAND message, 3GPP TS 48.008
// 3.2.1.30
type CipherModeCommand struct {
	EncryptionInfo models_base.EncryptionInformation
	// CipherResponseMode is sent when non-nil
	CipherResponseMode *uint8
	Kc128              *[Kc128Len]byte
}

func NewCipherModeCommand() *CipherModeCommand {
	return &CipherModeCommand{}
}

func (m *CipherModeCommand) Discriminator() Discriminator { return DiscrBSSMAP }
func (m *CipherModeCommand) MessageType() MessageType     { return MsgCipherModeCommand }

func (m *CipherModeCommand) Validate() error {
	if len(m.EncryptionInfo.Permitted) == 0 {
		return validationFailed(MsgCipherModeCommand, models_base.ErrInvalidValue{
			IE: "Encryption Information", Reason: "no permitted algorithm"})
	}
	if _, err := m.EncryptionInfo.AppendValue(nil); err != nil {
		return validationFailed(MsgCipherModeCommand, err)
	}
	return nil
}

func (m *CipherModeCommand) Marshal() ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return marshalBSSMAP(MsgCipherModeCommand, 2+m.EncryptionInfo.Len()+2+1+Kc128Len, func(w *ieWriter) {
		w.ie(m.EncryptionInfo)
		if m.CipherResponseMode != nil {
			w.tv(models_base.IECipherResponseMode, *m.CipherResponseMode)
		}
		if m.Kc128 != nil {
			w.tv(models_base.IEKc128, m.Kc128[:]...)
		}
	})
}

func (m *CipherModeCommand) Unmarshal(data []byte) error {
	tp, err := parseBSSMAP(data, MsgCipherModeCommand)
	if err != nil {
		return err
	}
	v, err := mandatory(tp, MsgCipherModeCommand, models_base.IEEncryptionInformation)
	if err != nil {
		return err
	}
	if m.EncryptionInfo, err = decodeIE(MsgCipherModeCommand, models_base.IEEncryptionInformation, v,
		models_base.DecodeEncryptionInformation); err != nil {
		return err
	}

	m.CipherResponseMode = nil
	v, ok, err := optionalFixed(tp, MsgCipherModeCommand, models_base.IECipherResponseMode, 1)
	if err != nil {
		return err
	}
	if ok {
		mode := v[0]
		m.CipherResponseMode = &mode
	}
	m.Kc128 = nil
	if v, ok, err = optionalFixed(tp, MsgCipherModeCommand, models_base.IEKc128, Kc128Len); err != nil {
		return err
	}
	if ok {
		var kc [Kc128Len]byte
		copy(kc[:], v)
		m.Kc128 = &kc
	}
	return nil
}

func (m *CipherModeCommand) String() string {
	mode := "none"
	if m.CipherResponseMode != nil {
		mode = fmt.Sprintf("%d", *m.CipherResponseMode)
	}
	return fmt.Sprintf("%s{%s response_mode=%s kc128=%t}", MsgCipherModeCommand, m.EncryptionInfo, mode, m.Kc128 != nil)
}

// CipherModeComplete is the CIPHER MODE COMPLETE message, 3.2.1.31
type CipherModeComplete struct {
	// Layer3 is the ciphering mode complete from the MS. It is only sent
	// when longer than two octets.
	Layer3          []byte
	ChosenAlgorithm models_base.EncryptionAlgorithm
}

func NewCipherModeComplete() *CipherModeComplete {
	return &CipherModeComplete{ChosenAlgorithm: models_base.AlgA5_0}
}

func (m *CipherModeComplete) Discriminator() Discriminator { return DiscrBSSMAP }
func (m *CipherModeComplete) MessageType() MessageType     { return MsgCipherModeComplete }

func (m *CipherModeComplete) Validate() error {
	if len(m.Layer3) > 0xff {
		return validationFailed(MsgCipherModeComplete, models_base.ErrCapacityExceeded{
			What: "Layer 3 Message Contents", Max: 0xff, Have: len(m.Layer3)})
	}
	return nil
}

func (m *CipherModeComplete) Marshal() ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return marshalBSSMAP(MsgCipherModeComplete, 2+len(m.Layer3)+2, func(w *ieWriter) {
		if len(m.Layer3) > 2 {
			w.tlv(models_base.IELayer3MessageContents, m.Layer3)
		}
		w.tv(models_base.IEChosenEncrAlg, uint8(m.ChosenAlgorithm))
	})
}

func (m *CipherModeComplete) Unmarshal(data []byte) error {
	tp, err := parseBSSMAP(data, MsgCipherModeComplete)
	if err != nil {
		return err
	}
	m.Layer3 = nil
	if v, ok := tp.Get(models_base.IELayer3MessageContents); ok {
		m.Layer3 = append([]byte(nil), v...)
	}
	v, err := mandatoryFixed(tp, MsgCipherModeComplete, models_base.IEChosenEncrAlg, 1)
	if err != nil {
		return err
	}
	m.ChosenAlgorithm = models_base.EncryptionAlgorithm(v[0])
	return nil
}

func (m *CipherModeComplete) String() string {
	return fmt.Sprintf("%s{layer3=%x alg=%s}", MsgCipherModeComplete, m.Layer3, m.ChosenAlgorithm)
}

// CipherModeReject is the CIPHER MODE REJECT message, 3.2.1.48. Extended
// causes are carried in two octets.
type CipherModeReject struct {
	Cause models_base.Cause
}

func NewCipherModeReject() *CipherModeReject {
	return &CipherModeReject{Cause: models_base.CauseCipheringAlgorithmNotSupp}
}

func (m *CipherModeReject) Discriminator() Discriminator { return DiscrBSSMAP }
func (m *CipherModeReject) MessageType() MessageType     { return MsgCipherModeReject }

func (m *CipherModeReject) Validate() error {
	if _, err := m.Cause.AppendValue(nil); err != nil {
		return validationFailed(MsgCipherModeReject, err)
	}
	return nil
}

func (m *CipherModeReject) Marshal() ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return marshalBSSMAP(MsgCipherModeReject, 4, func(w *ieWriter) {
		w.ie(m.Cause)
	})
}

func (m *CipherModeReject) Unmarshal(data []byte) error {
	tp, err := parseBSSMAP(data, MsgCipherModeReject)
	if err != nil {
		return err
	}
	v, err := mandatory(tp, MsgCipherModeReject, models_base.IECause)
	if err != nil {
		return err
	}
	m.Cause, err = decodeIE(MsgCipherModeReject, models_base.IECause, v, models_base.DecodeCause)
	return err
}

func (m *CipherModeReject) String() string {
	return fmt.Sprintf("%s{cause=%s}", MsgCipherModeReject, m.Cause)
}
