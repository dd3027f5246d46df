package models_base

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCause(t *testing.T) {
	got, err := Serialize(Cause(0x41))
	require.NoError(t, err)
	assert.Equal(t, unhex(t, "04 01 41"), got)

	ext := NewExtendedCause(CauseClassNorm0, 0x41)
	assert.True(t, ext.IsExtended())
	got, err = Serialize(ext)
	require.NoError(t, err)
	assert.Equal(t, unhex(t, "04 02 80 41"), got)

	c, n, err := DecodeCause(got[2:])
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, ext, c)

	assert.Equal(t, "EQUIPMENT_FAILURE", CauseEquipmentFailure.String())

	_, err = Serialize(Cause(0x0123))
	var ive ErrInvalidValue
	assert.ErrorAs(t, err, &ive)

	_, _, err = DecodeCause(unhex(t, "41 41"))
	var ile ErrInvalidLength
	assert.ErrorAs(t, err, &ile)
}

func TestSpeechCodec(t *testing.T) {
	tests := []struct {
		name  string
		codec SpeechCodec
		want  string
	}{
		{name: "fr1", codec: SpeechCodec{PI: true, Type: SpeechCodecFR1}, want: "7e 01 40"},
		{name: "fr3 config low octet first", codec: SpeechCodec{FI: true, Type: SpeechCodecFR3, Cfg: 0x1234}, want: "7e 03 82 34 12"},
		{name: "hr4 one config octet", codec: SpeechCodec{TF: true, Type: SpeechCodecHR4, Cfg: 0x42}, want: "7e 02 17 42"},
		{name: "csd extended type", codec: SpeechCodec{Type: SpeechCodecCSD, Cfg: 0x42}, want: "7e 03 0f fd 42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Serialize(tt.codec)
			require.NoError(t, err)
			assert.Equal(t, unhex(t, tt.want), got)

			dec, _, err := DecodeSpeechCodec(got[2:])
			require.NoError(t, err)
			assert.Equal(t, tt.codec, dec)
		})
	}

	_, _, err := DecodeSpeechCodec(unhex(t, "40 00"))
	var ile ErrInvalidLength
	assert.ErrorAs(t, err, &ile)

	_, _, err = DecodeSpeechCodec(unhex(t, "09"))
	var ide ErrInvalidDiscriminator
	assert.ErrorAs(t, err, &ide)

	_, _, err = DecodeSpeechCodec(unhex(t, "82 34"))
	var te ErrTruncated
	assert.ErrorAs(t, err, &te)

	// FR3 in extended form is not its canonical encoding
	_, _, err = DecodeSpeechCodec(unhex(t, "0f 02 34 12"))
	require.ErrorAs(t, err, &ide)
	assert.Equal(t, uint8(0x02), ide.Value)
}

func TestSpeechCodecList(t *testing.T) {
	l := SpeechCodecList{
		{PI: true, Type: SpeechCodecFR1},
		{FI: true, PI: true, Type: SpeechCodecFR3, Cfg: 0x5a5a},
	}
	got, err := Serialize(l)
	require.NoError(t, err)
	assert.Equal(t, unhex(t, "7d 04 40 c2 5a 5a"), got)

	dec, _, err := DecodeSpeechCodecList(got[2:])
	require.NoError(t, err)
	assert.Equal(t, l, dec)

	t.Run("empty list", func(t *testing.T) {
		got, err := Serialize(SpeechCodecList{})
		require.NoError(t, err)
		assert.Equal(t, unhex(t, "7d 00"), got)

		dec, n, err := DecodeSpeechCodecList(nil)
		require.NoError(t, err)
		assert.Zero(t, n)
		assert.NotNil(t, dec)
		assert.Empty(t, dec)
	})

	t.Run("unsupported codec is not encoded", func(t *testing.T) {
		b, err := SpeechCodecList{{Type: SpeechCodecFR1}, {Type: 0x0c}}.AppendValue([]byte{0xaa})
		assert.Error(t, err)
		assert.Equal(t, []byte{0xaa}, b)
	})
}

func TestChannelType(t *testing.T) {
	ct := ChannelType{
		Indicator: ChannelSpeech,
		RateType:  ChannelRateHalfPref,
		Permitted: []PermittedSpeech{PermittedFR3, PermittedHR3},
	}
	got, err := Serialize(ct)
	require.NoError(t, err)
	assert.Equal(t, unhex(t, "0b 04 01 0b a1 25"), got)

	dec, n, err := DecodeChannelType(got[2:])
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, ct, dec)

	// the permitted list ends at the first octet without extension bit
	dec, n, err = DecodeChannelType(unhex(t, "01 0b 21 25"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []PermittedSpeech{PermittedFR3}, dec.Permitted)

	_, _, err = DecodeChannelType(unhex(t, "01 0b"))
	var te ErrTruncated
	assert.ErrorAs(t, err, &te)

	// without a permitted entry the value would be too short to decode
	_, err = Serialize(ChannelType{Indicator: ChannelSpeech, RateType: ChannelRateHalfPref})
	var ive ErrInvalidValue
	assert.ErrorAs(t, err, &ive)
	got, err = ChannelType{Indicator: ChannelSpeech}.AppendValue([]byte{0xff})
	assert.Error(t, err)
	assert.Equal(t, []byte{0xff}, got)
}

func TestEncryptionInformation(t *testing.T) {
	e := EncryptionInformation{
		Permitted: []EncryptionAlgorithm{AlgA5_1, AlgA5_3},
		Key:       []byte{1, 2, 3, 4, 5, 6, 7, 8},
	}
	got, err := Serialize(e)
	require.NoError(t, err)
	assert.Equal(t, unhex(t, "0a 09 0a 01 02 03 04 05 06 07 08"), got)

	dec, _, err := DecodeEncryptionInformation(got[2:])
	require.NoError(t, err)
	assert.Equal(t, e, dec)
	assert.Equal(t, "A5/3", AlgA5_3.String())

	_, err = Serialize(EncryptionInformation{Permitted: []EncryptionAlgorithm{0}})
	var ive ErrInvalidValue
	assert.ErrorAs(t, err, &ive)

	dec, _, err = DecodeEncryptionInformation([]byte{0x01})
	require.NoError(t, err)
	assert.Equal(t, []EncryptionAlgorithm{AlgA5_0}, dec.Permitted)
	assert.Empty(t, dec.Key)
}

func testGCR() *GlobalCallRef {
	return &GlobalCallRef{
		NetID:   []byte("DDD"),
		Node:    0xfeed,
		CallRef: [5]byte{'A', 'A', 'A', 'A', 'A'},
	}
}

func TestGlobalCallRef(t *testing.T) {
	got, err := Serialize(testGCR())
	require.NoError(t, err)
	assert.Equal(t, unhex(t, "89 0d 03 44 44 44 02 fe ed 05 41 41 41 41 41"), got)

	dec, n, err := DecodeGlobalCallRef(got[2:])
	require.NoError(t, err)
	assert.Equal(t, 13, n)
	assert.True(t, dec.Equal(testGCR()))

	_, err = Serialize(&GlobalCallRef{NetID: []byte{1, 2}})
	var ive ErrInvalidValue
	assert.ErrorAs(t, err, &ive)

	_, _, err = DecodeGlobalCallRef(unhex(t, "03 44 44 44 03 fe ed 00 05 41 41 41 41 41"))
	var ile ErrInvalidLength
	assert.ErrorAs(t, err, &ile)
}

func TestLCLS(t *testing.T) {
	config, control := LCLSConfigBothWay, LCLSControlConnect
	l := &LCLS{
		GCR:           testGCR(),
		Config:        &config,
		Control:       &control,
		CorrNotNeeded: true,
	}
	got, err := l.AppendTo(nil)
	require.NoError(t, err)
	assert.Equal(t, unhex(t, "89 0d 03 44 44 44 02 fe ed 05 41 41 41 41 41 8a 00 8b 00 8c"), got)

	tp, err := ParseTLV(got, BSSMAPDefinitions)
	require.NoError(t, err)
	dec, err := DecodeLCLS(tp)
	require.NoError(t, err)
	assert.True(t, dec.Equal(l), "decoded %s", dec)

	assert.True(t, NewLCLS().Empty())
	empty, err := NewLCLS().AppendTo(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)

	// the zero value has nothing present either
	assert.True(t, (&LCLS{}).Empty())
	empty, err = (&LCLS{}).AppendTo(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
	assert.Equal(t, "LCLS{config=none control=none corr_not_needed=false gcr=none}", (&LCLS{}).String())

	// NA means absent whether given as a pointer or received
	na := LCLSConfigNA
	assert.True(t, (&LCLS{Config: &na}).Empty())
	got, err = (&LCLS{Config: &na}).AppendTo(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
	tp, err = ParseTLV(unhex(t, "8a 0f 8c"), BSSMAPDefinitions)
	require.NoError(t, err)
	dec, err = DecodeLCLS(tp)
	require.NoError(t, err)
	assert.Nil(t, dec.Config)
	assert.True(t, dec.CorrNotNeeded)

	assert.False(t, l.Equal(&LCLS{GCR: testGCR(), Config: &config, CorrNotNeeded: true}))

	// without definitions the LCLS tags are parsed as TLV and may be empty
	for _, in := range []string{"8a 00", "8b 00", "8b 02 00 01"} {
		tp, err = ParseTLV(unhex(t, in), nil)
		require.NoError(t, err)
		_, err = DecodeLCLS(tp)
		var ile ErrInvalidLength
		assert.ErrorAs(t, err, &ile, "input %s", in)
	}

	tp, err = ParseTLV(unhex(t, "04 01 20"), BSSMAPDefinitions)
	require.NoError(t, err)
	dec, err = DecodeLCLS(tp)
	require.NoError(t, err)
	assert.Nil(t, dec)
}

func TestAoIPTransportAddr(t *testing.T) {
	tests := []struct {
		name string
		addr string
		want string
	}{
		{name: "ipv4", addr: "192.168.100.23:1234", want: "7c 06 c0 a8 64 17 04 d2"},
		{name: "ipv6", addr: "[2001:db8::1]:5060", want: "7c 12 20 01 0d b8 00 00 00 00 00 00 00 00 00 00 00 01 13 c4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := AoIPTransportAddr(netip.MustParseAddrPort(tt.addr))
			got, err := Serialize(a)
			require.NoError(t, err)
			assert.Equal(t, unhex(t, tt.want), got)

			dec, _, err := DecodeAoIPTransportAddr(got[2:])
			require.NoError(t, err)
			assert.Equal(t, tt.addr, dec.String())
		})
	}

	mapped := AoIPTransportAddr(netip.MustParseAddrPort("[::ffff:10.0.0.1]:2000"))
	assert.Equal(t, 6, mapped.Len())

	_, err := Serialize(AoIPTransportAddr{})
	var ive ErrInvalidValue
	assert.ErrorAs(t, err, &ive)

	_, _, err = DecodeAoIPTransportAddr(unhex(t, "c0 a8 64 17 04"))
	var ile ErrInvalidLength
	assert.ErrorAs(t, err, &ile)
}

func TestMultiRateConfig(t *testing.T) {
	c := MultiRateConfig{Version: 1, ICMI: true, SMOD: 2, Modes: AMRModeSet(AMR12_2 | AMR5_90)}
	b, err := c.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x2a, 0x84}, b)

	var dec MultiRateConfig
	require.NoError(t, dec.UnmarshalBinary(b))
	assert.Equal(t, c, dec)
	assert.Equal(t, "{5.90,12.2}", dec.Modes.String())

	_, err = MultiRateConfig{Version: 8}.MarshalBinary()
	assert.Error(t, err)
	assert.Error(t, dec.UnmarshalBinary([]byte{0x20}))
}

func TestSpeechCodecConfig(t *testing.T) {
	tests := []struct {
		name     string
		modes    AMRMode
		fullRate bool
		want     uint16
	}{
		{name: "12.2 only", modes: AMR12_2, fullRate: true, want: 0x0080},
		{name: "s1 set on full rate", modes: AMR4_75 | AMR5_90 | AMR7_40 | AMR12_2, fullRate: true, want: 0x0097},
		{name: "half rate drops s1 s6 s7", modes: AMR4_75 | AMR5_90 | AMR7_40 | AMR12_2, want: 0x0015},
		{name: "half rate 10.2", modes: AMR10_2, want: 0},
		{name: "5.15 has no single rate config", modes: AMR5_15, fullRate: true, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := MultiRateConfig{Modes: AMRModeSet(tt.modes)}
			assert.Equal(t, tt.want, c.SpeechCodecConfig(tt.fullRate))
		})
	}

	c := MultiRateConfigFromSpeechCodec(SCCfgS1)
	assert.Equal(t, AMRModeSet(0x95), c.Modes)

	c = MultiRateConfigFromSpeechCodec(0x0080)
	assert.Equal(t, AMRModeSet(AMR12_2), c.Modes)
	assert.Equal(t, "{12.2}", c.Modes.String())
}

func TestMobileIdentity(t *testing.T) {
	got, err := Serialize(IMSI("001010000001234"))
	require.NoError(t, err)
	assert.Equal(t, unhex(t, "08 08 09 10 10 00 00 00 21 43"), got)

	got, err = Serialize(IMSI("1234"))
	require.NoError(t, err)
	assert.Equal(t, unhex(t, "08 03 11 32 f4"), got)

	imsi, _, err := DecodeIMSI(got[2:])
	require.NoError(t, err)
	assert.Equal(t, IMSI("1234"), imsi)

	assert.Error(t, IMSI("").Validate())
	assert.Error(t, IMSI("1234567890123456").Validate())

	_, _, err = DecodeIMSI(unhex(t, "14"))
	var ide ErrInvalidDiscriminator
	assert.ErrorAs(t, err, &ide)

	_, _, err = DecodeIMSI(unhex(t, "11 32 54"))
	var ive ErrInvalidValue
	assert.ErrorAs(t, err, &ive)

	got, err = Serialize(TMSI(0xdeadbeef))
	require.NoError(t, err)
	assert.Equal(t, unhex(t, "09 04 de ad be ef"), got)

	_, _, err = DecodeTMSI(unhex(t, "de ad be"))
	var ile ErrInvalidLength
	assert.ErrorAs(t, err, &ile)
}

func TestParseTLV(t *testing.T) {
	tp, err := ParseTLV(unhex(t, "04 01 20 21 09 17 02 aa bb 8f 01 00 04"), BSSMAPDefinitions)
	require.NoError(t, err)
	require.Len(t, tp.Elements, 5)
	assert.True(t, tp.Present(IECSFBIndication))

	v, ok := tp.Get(IEChosenChannel)
	require.True(t, ok)
	assert.Equal(t, []byte{0x09}, v)

	v, ok = tp.Get(IECircuitIdentityCode)
	require.True(t, ok)
	assert.Equal(t, []byte{0x00, 0x04}, v)

	v, ok, err = tp.GetFixed(IEChosenChannel, 1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte{0x09}, v)

	_, ok, err = tp.GetFixed(IELayer3Information, 3)
	assert.True(t, ok)
	var le ErrInvalidLength
	assert.ErrorAs(t, err, &le)

	_, ok, err = tp.GetFixed(IEKc128, 16)
	assert.False(t, ok)
	assert.NoError(t, err)

	var te ErrTruncated

	for _, in := range []string{"17 05 aa", "17", "01 00", "21"} {
		_, err := ParseTLV(unhex(t, in), BSSMAPDefinitions)
		assert.ErrorAs(t, err, &te, "input %s", in)
	}
}

func TestAppendTLVCapacity(t *testing.T) {
	b, err := AppendTLV([]byte{0x01}, IELayer3Information, make([]byte, 256))
	var ce ErrCapacityExceeded
	assert.ErrorAs(t, err, &ce)
	assert.Equal(t, []byte{0x01}, b)

	b, err = AppendTLV(nil, IELayer3Information, make([]byte, 255))
	require.NoError(t, err)
	assert.Len(t, b, 257)
}
