package models_base

import (
	"fmt"
	"strings"
)

// ChannelIndicator is the speech/data indicator of a Channel Type IE
type ChannelIndicator uint8

const (
	ChannelSpeech     ChannelIndicator = 0x1
	ChannelData       ChannelIndicator = 0x2
	ChannelSignalling ChannelIndicator = 0x3
)

func (c ChannelIndicator) String() string {
	switch c {
	case ChannelSpeech:
		return "speech"
	case ChannelData:
		return "data"
	case ChannelSignalling:
		return "signalling"
	}
	return fmt.Sprintf("indicator-0x%x", uint8(c))
}

// Channel rate and type values for speech and signalling channels
const (
	ChannelRateSDCCH             uint8 = 0x01
	ChannelRateFullBM            uint8 = 0x08
	ChannelRateHalfLM            uint8 = 0x09
	ChannelRateFullPref          uint8 = 0x0a
	ChannelRateHalfPref          uint8 = 0x0b
	ChannelRateFullPrefNoChange  uint8 = 0x1a
	ChannelRateHalfPrefNoChange  uint8 = 0x1b
	ChannelRateFullOrHalf        uint8 = 0x0f
	ChannelRateFullOrHalfNoAlter uint8 = 0x1f
)

// PermittedSpeech is a permitted speech version identifier
type PermittedSpeech uint8

const (
	PermittedFR1 PermittedSpeech = 0x01
	PermittedFR2 PermittedSpeech = 0x11
	PermittedFR3 PermittedSpeech = 0x21
	PermittedFR4 PermittedSpeech = 0x41
	PermittedFR5 PermittedSpeech = 0x42
	PermittedHR1 PermittedSpeech = 0x05
	PermittedHR2 PermittedSpeech = 0x15
	PermittedHR3 PermittedSpeech = 0x25
	PermittedHR4 PermittedSpeech = 0x45
	PermittedHR6 PermittedSpeech = 0x46
)

// ChannelTypeMaxSpeech bounds the permitted speech version list
const ChannelTypeMaxSpeech = 9

const channelTypeMinLen = 3

// ChannelType is the Channel Type IE, 3GPP TS 48.008 3.2.2.11
type ChannelType struct {
	Indicator ChannelIndicator
	RateType  uint8
	// Permitted lists speech versions in order of preference
	Permitted []PermittedSpeech
}

func (c ChannelType) Tag() uint8 { return IEChannelType }

func (c ChannelType) Len() int {
	return 2 + len(c.Permitted)
}

func (c ChannelType) AppendValue(b []byte) ([]byte, error) {
	if len(c.Permitted) == 0 {
		return b, ErrInvalidValue{IE: "Channel Type", Reason: "no permitted speech or data rate"}
	}
	if len(c.Permitted) > ChannelTypeMaxSpeech {
		return b, ErrCapacityExceeded{What: "Channel Type permitted speech", Max: ChannelTypeMaxSpeech, Have: len(c.Permitted)}
	}
	b = append(b, uint8(c.Indicator)&0x0f, c.RateType)
	for i, p := range c.Permitted {
		v := uint8(p) & 0x7f
		if i < len(c.Permitted)-1 {
			v |= 0x80
		}
		b = append(b, v)
	}
	return b, nil
}

func (c ChannelType) String() string {
	perm := make([]string, len(c.Permitted))
	for i, p := range c.Permitted {
		perm[i] = fmt.Sprintf("0x%02x", uint8(p))
	}
	return fmt.Sprintf("ChannelType{%s rate=0x%02x permitted=[%s]}", c.Indicator, c.RateType, strings.Join(perm, " "))
}

// DecodeChannelType decodes the value part of a Channel Type IE
func DecodeChannelType(b []byte) (ChannelType, int, error) {
	if len(b) < channelTypeMinLen {
		return ChannelType{}, 0, ErrTruncated{IE: "Channel Type", Need: channelTypeMinLen, Have: len(b)}
	}
	c := ChannelType{
		Indicator: ChannelIndicator(b[0] & 0x0f),
		RateType:  b[1],
	}
	for _, v := range b[2:] {
		if len(c.Permitted) == ChannelTypeMaxSpeech {
			return ChannelType{}, 0, ErrCapacityExceeded{What: "Channel Type permitted speech", Max: ChannelTypeMaxSpeech, Have: len(b) - 2}
		}
		c.Permitted = append(c.Permitted, PermittedSpeech(v&0x7f))
		if v&0x80 == 0 {
			break
		}
	}
	return c, 2 + len(c.Permitted), nil
}
