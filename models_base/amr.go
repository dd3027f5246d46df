package models_base

import (
	"fmt"
	"strings"
)

// AMRMode is one AMR codec mode bit of the MultiRate configuration,
// 3GPP TS 44.018 10.5.2.21aa. The bit positions match the set of AMR codec
// modes octet.
type AMRMode uint8

const (
	AMR4_75 AMRMode = 1 << iota
	AMR5_15
	AMR5_90
	AMR6_70
	AMR7_40
	AMR7_95
	AMR10_2
	AMR12_2
)

var amrModeNames = []string{"4.75", "5.15", "5.90", "6.70", "7.40", "7.95", "10.2", "12.2"}

// AMRModeSet is a set of AMR codec modes
type AMRModeSet uint8

// Has reports whether m is in the set
func (s AMRModeSet) Has(m AMRMode) bool {
	return uint8(s)&uint8(m) != 0
}

func (s AMRModeSet) String() string {
	var out []string
	for i, name := range amrModeNames {
		if uint8(s)&(1<<i) != 0 {
			out = append(out, name)
		}
	}
	return "{" + strings.Join(out, ",") + "}"
}

// MultiRateConfig is the MultiRate configuration IE content
type MultiRateConfig struct {
	Version uint8
	NSCB    bool
	ICMI    bool
	Spare   bool
	SMOD    uint8
	Modes   AMRModeSet
}

// MarshalBinary returns the first two octets of the MultiRate configuration
// value: version/NSCB/ICMI/spare/SMOD and the set of AMR codec modes.
func (c MultiRateConfig) MarshalBinary() ([]byte, error) {
	if c.Version > 0x07 {
		return nil, ErrInvalidValue{IE: "MultiRate configuration", Reason: fmt.Sprintf("version %d does not fit in 3 bits", c.Version)}
	}
	if c.SMOD > 0x03 {
		return nil, ErrInvalidValue{IE: "MultiRate configuration", Reason: fmt.Sprintf("start mode %d does not fit in 2 bits", c.SMOD)}
	}
	o := c.Version << 5
	if c.NSCB {
		o |= 0x10
	}
	if c.ICMI {
		o |= 0x08
	}
	if c.Spare {
		o |= 0x04
	}
	o |= c.SMOD
	return []byte{o, uint8(c.Modes)}, nil
}

// UnmarshalBinary reads the two leading octets written by MarshalBinary
func (c *MultiRateConfig) UnmarshalBinary(b []byte) error {
	if len(b) < 2 {
		return ErrTruncated{IE: "MultiRate configuration", Need: 2, Have: len(b)}
	}
	*c = MultiRateConfig{
		Version: b[0] >> 5,
		NSCB:    b[0]&0x10 != 0,
		ICMI:    b[0]&0x08 != 0,
		Spare:   b[0]&0x04 != 0,
		SMOD:    b[0] & 0x03,
		Modes:   AMRModeSet(b[1]),
	}
	return nil
}

// S15..S0 configuration bits of FR_AMR, HR_AMR and OHR_AMR,
// 3GPP TS 28.062 Table 7.11.3.1.3-2
const (
	SCCfgS0 uint16 = 1 << iota
	SCCfgS1
	SCCfgS2
	SCCfgS3
	SCCfgS4
	SCCfgS5
	SCCfgS6
	SCCfgS7
)

// scCfgHRMask drops the configurations a half rate channel cannot carry
const scCfgHRMask = ^(SCCfgS1 | SCCfgS6 | SCCfgS7)

const scCfgS1Modes = AMRModeSet(AMR4_75 | AMR5_90 | AMR7_40 | AMR12_2)

// single rate configurations; 5.15 has none
var scCfgSingle = []struct {
	bit  uint16
	mode AMRMode
}{
	{SCCfgS0, AMR4_75},
	{SCCfgS2, AMR5_90},
	{SCCfgS3, AMR6_70},
	{SCCfgS4, AMR7_40},
	{SCCfgS5, AMR7_95},
	{SCCfgS6, AMR10_2},
	{SCCfgS7, AMR12_2},
}

// SpeechCodecConfig translates the active codec set of c into the S15..S0
// word of a Speech Codec Element. On half rate channels 10.2 and 12.2 are
// not available so S1, S6 and S7 are never set.
func (c MultiRateConfig) SpeechCodecConfig(fullRate bool) uint16 {
	var s uint16
	for _, e := range scCfgSingle {
		if c.Modes.Has(e.mode) {
			s |= e.bit
		}
	}
	if c.Modes&scCfgS1Modes == scCfgS1Modes {
		s |= SCCfgS1
	}
	if !fullRate {
		s &= scCfgHRMask
	}
	return s
}

// MultiRateConfigFromSpeechCodec derives the codec modes allowed by an
// S15..S0 word. Only S0..S7 are considered.
func MultiRateConfigFromSpeechCodec(s15s0 uint16) MultiRateConfig {
	var c MultiRateConfig
	for _, e := range scCfgSingle {
		if s15s0&e.bit != 0 {
			c.Modes |= AMRModeSet(e.mode)
		}
	}
	if s15s0&SCCfgS1 != 0 {
		c.Modes |= scCfgS1Modes
	}
	return c
}
