package bssmap

import (
	"bytes"
	"encoding/hex"
	"net/netip"
	"strings"
	"testing"

	"github.com/hsdfat8/bssap/models_base"
)

func mustHex(t testing.TB, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(strings.ReplaceAll(s, " ", ""))
	if err != nil {
		t.Fatalf("bad hex %q: %v", s, err)
	}
	return b
}

func ptr[T any](v T) *T { return &v }

// testCodecList is FR3 with configuration, FR2 and CSData
func testCodecList() models_base.SpeechCodecList {
	return models_base.SpeechCodecList{
		{PI: true, TF: true, Type: models_base.SpeechCodecFR3, Cfg: 0xcdef},
		{FI: true, PT: true, Type: models_base.SpeechCodecFR2},
		{FI: true, TF: true, Type: models_base.SpeechCodecCSD, Cfg: 0xc0},
	}
}

func testChannelType(perm ...models_base.PermittedSpeech) models_base.ChannelType {
	return models_base.ChannelType{
		Indicator: models_base.ChannelSpeech,
		RateType:  models_base.ChannelRateHalfPref,
		Permitted: perm,
	}
}

func testAoIP(s string) *models_base.AoIPTransportAddr {
	a := models_base.AoIPTransportAddr(netip.MustParseAddrPort(s))
	return &a
}

func testEncryptionInfo() models_base.EncryptionInformation {
	return models_base.EncryptionInformation{
		Permitted: []models_base.EncryptionAlgorithm{models_base.AlgA5_0, models_base.AlgA5_1},
		Key:       []byte{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff, 0x23, 0x42},
	}
}

func testLACList(t testing.TB, lacs ...uint16) *models_base.CellIdentifierList {
	t.Helper()
	ids := make([]models_base.CellID, len(lacs))
	for i, lac := range lacs {
		ids[i] = models_base.LocationAreaCode(lac)
	}
	l, err := models_base.NewCellIdentifierList(models_base.CellIdentLAC, ids...)
	if err != nil {
		t.Fatalf("Failed to build cell list: %v", err)
	}
	return l
}

type vectorCase struct {
	name string
	msg  func(t testing.TB) Message
	want string
	// lossy encodings drop a field the decoder cannot restore
	lossy bool
}

func messageVectors() []vectorCase {
	return []vectorCase{
		{
			name: "reset",
			msg:  func(testing.TB) Message { return NewReset() },
			want: "00 04 30 04 01 20",
		},
		{
			name: "reset acknowledge",
			msg:  func(testing.TB) Message { return NewResetAcknowledge() },
			want: "00 01 31",
		},
		{
			name: "clear command",
			msg: func(testing.TB) Message {
				m := NewClearCommand()
				m.Cause = models_base.CauseCCCHOverload
				return m
			},
			want: "00 04 20 04 01 23",
		},
		{
			name: "clear command with CSFB indication",
			msg: func(testing.TB) Message {
				m := NewClearCommand()
				m.Cause = models_base.CauseCCCHOverload
				m.CSFBIndication = true
				return m
			},
			want: "00 05 20 04 01 23 8f",
		},
		{
			name: "clear complete",
			msg:  func(testing.TB) Message { return NewClearComplete() },
			want: "00 01 21",
		},
		{
			name: "clear request",
			msg: func(testing.TB) Message {
				m := NewClearRequest()
				m.Cause = models_base.CauseCCCHOverload
				return m
			},
			want: "00 04 22 04 01 23",
		},
		{
			name: "cipher mode command",
			msg: func(testing.TB) Message {
				m := NewCipherModeCommand()
				m.EncryptionInfo = testEncryptionInfo()
				return m
			},
			want: "00 0c 53 0a 09 03 aa bb cc dd ee ff 23 42",
		},
		{
			name: "cipher mode command with response mode",
			msg: func(testing.TB) Message {
				m := NewCipherModeCommand()
				m.EncryptionInfo = testEncryptionInfo()
				m.CipherResponseMode = ptr(uint8(1))
				return m
			},
			want: "00 0e 53 0a 09 03 aa bb cc dd ee ff 23 42 23 01",
		},
		{
			name: "cipher mode complete",
			msg: func(testing.TB) Message {
				m := NewCipherModeComplete()
				m.Layer3 = []byte{0x23, 0x42, 0x21}
				m.ChosenAlgorithm = models_base.AlgA5_3
				return m
			},
			want: "00 08 55 20 03 23 42 21 2c 04",
		},
		{
			name: "cipher mode complete with short layer 3",
			msg: func(testing.TB) Message {
				m := NewCipherModeComplete()
				m.Layer3 = []byte{0x23, 0x42}
				m.ChosenAlgorithm = models_base.AlgA5_3
				return m
			},
			want:  "00 03 55 2c 04",
			lossy: true,
		},
		{
			name: "cipher mode reject",
			msg: func(testing.TB) Message {
				m := NewCipherModeReject()
				m.Cause = models_base.CauseCCCHOverload
				return m
			},
			want: "00 04 59 04 01 23",
		},
		{
			name: "cipher mode reject extended cause",
			msg: func(testing.TB) Message {
				m := NewCipherModeReject()
				m.Cause = models_base.NewExtendedCause(models_base.CauseClassInvalid, 0xfa)
				return m
			},
			want: "00 05 59 04 02 d0 fa",
		},
		{
			name: "classmark update",
			msg: func(testing.TB) Message {
				m := NewClassmarkUpdate()
				m.Classmark2 = []byte{0x23}
				m.Classmark3 = []byte{0x42}
				return m
			},
			want: "00 07 54 12 01 23 13 01 42",
		},
		{
			name: "sapi n reject",
			msg: func(testing.TB) Message {
				m := NewSAPINReject()
				m.LinkID = 0x03
				return m
			},
			want: "00 03 25 03 25",
		},
		{
			name: "assignment request",
			msg: func(testing.TB) Message {
				m := NewAssignmentRequest()
				m.ChannelType = testChannelType(models_base.PermittedFR3, models_base.PermittedHR3)
				m.CIC = ptr(uint16(4))
				return m
			},
			want: "00 0a 01 0b 04 01 0b a1 25 01 00 04",
		},
		{
			name: "assignment request aoip",
			msg: func(testing.TB) Message {
				m := NewAssignmentRequest()
				m.ChannelType = testChannelType(models_base.PermittedFR3, models_base.PermittedHR3)
				m.CIC = ptr(uint16(4))
				m.AoIP = testAoIP("192.168.100.23:1234")
				m.SpeechCodecs = testCodecList()
				m.CallID = ptr(uint32(0xaabbccdd))
				return m
			},
			want: "00 20 01 0b 04 01 0b a1 25 01 00 04 7c 06 c0 a8 64 17 04 d2 " +
				"7d 07 52 ef cd a1 9f fd c0 7f aa bb cc dd",
		},
		{
			name: "assignment request with Kc and LCLS",
			msg: func(testing.TB) Message {
				m := NewAssignmentRequest()
				m.ChannelType = testChannelType(models_base.PermittedFR2, models_base.PermittedHR2)
				m.CIC = ptr(uint16(4))
				m.AoIP = testAoIP("172.12.101.13:666")
				m.SpeechCodecs = testCodecList()
				m.CallID = ptr(uint32(0xdeadface))
				kc := [Kc128Len]byte{}
				for i := range kc {
					kc[i] = 'E'
				}
				m.Kc128 = &kc
				m.LCLS = &models_base.LCLS{
					GCR: &models_base.GlobalCallRef{
						NetID:   []byte("DDD"),
						Node:    0xfeed,
						CallRef: [5]byte{'A', 'A', 'A', 'A', 'A'},
					},
					Config:        ptr(models_base.LCLSConfigBothWay),
					Control:       ptr(models_base.LCLSControlConnect),
					CorrNotNeeded: true,
				}
				return m
			},
			want: "00 45 01 0b 04 01 0b 91 15 01 00 04 7c 06 ac 0c 65 0d 02 9a " +
				"7d 07 52 ef cd a1 9f fd c0 7f de ad fa ce " +
				"83 45 45 45 45 45 45 45 45 45 45 45 45 45 45 45 45 " +
				"89 0d 03 44 44 44 02 fe ed 05 41 41 41 41 41 8a 00 8b 00 8c",
		},
		{
			name: "assignment complete",
			msg: func(testing.TB) Message {
				m := NewAssignmentComplete()
				m.RRCause = 0x23
				m.ChosenChannel = 0x42
				m.ChosenAlgorithm = 0x11
				m.SpeechVersion = 0x22
				return m
			},
			want: "00 09 02 15 23 21 42 2c 11 40 22",
		},
		{
			name: "assignment complete without speech version",
			msg: func(testing.TB) Message {
				m := NewAssignmentComplete()
				m.RRCause = 0x23
				m.ChosenChannel = 0x42
				m.ChosenAlgorithm = 0x11
				return m
			},
			want: "00 07 02 15 23 21 42 2c 11",
		},
		{
			name: "assignment complete aoip",
			msg: func(testing.TB) Message {
				m := NewAssignmentComplete()
				m.RRCause = 0x23
				m.ChosenChannel = 0x42
				m.ChosenAlgorithm = 0x11
				m.SpeechVersion = 0x22
				m.AoIP = testAoIP("192.168.100.23:1234")
				m.SpeechCodec = &models_base.SpeechCodec{FI: true, TF: true, Type: models_base.SpeechCodecHR1}
				m.SpeechCodecs = testCodecList()
				return m
			},
			want: "00 1d 02 15 23 21 42 2c 11 40 22 7c 06 c0 a8 64 17 04 d2 7e 01 95 " +
				"7d 07 52 ef cd a1 9f fd c0",
		},
		{
			name: "assignment failure",
			msg: func(testing.TB) Message {
				m := NewAssignmentFailure()
				m.Cause = models_base.CauseCCCHOverload
				return m
			},
			want: "00 04 03 04 01 23",
		},
		{
			name: "assignment failure with rr cause",
			msg: func(testing.TB) Message {
				m := NewAssignmentFailure()
				m.Cause = models_base.CauseCCCHOverload
				m.RRCause = ptr(uint8(0x02))
				return m
			},
			want: "00 06 03 04 01 23 15 02",
		},
		{
			name: "assignment failure aoip",
			msg: func(testing.TB) Message {
				m := NewAssignmentFailure()
				m.Cause = models_base.CauseCCCHOverload
				m.RRCause = ptr(uint8(0x02))
				m.SpeechCodecs = testCodecList()
				return m
			},
			want: "00 0f 03 04 01 23 15 02 7d 07 52 ef cd a1 9f fd c0",
		},
		{
			name: "paging",
			msg: func(t testing.TB) Message {
				m := NewPaging()
				m.IMSI = "001010000001234"
				m.Cells = testLACList(t, 0x2342)
				return m
			},
			want: "00 10 52 08 08 09 10 10 00 00 00 21 43 1a 03 05 23 42",
		},
		{
			name: "paging with TMSI and channel needed",
			msg: func(t testing.TB) Message {
				m := NewPaging()
				m.IMSI = "001010000001234"
				tmsi := models_base.TMSI(0x12345678)
				m.TMSI = &tmsi
				m.Cells = testLACList(t, 0x2342)
				m.ChannelNeeded = ptr(uint8(1))
				return m
			},
			want: "00 18 52 08 08 09 10 10 00 00 00 21 43 09 04 12 34 56 78 1a 03 05 23 42 24 01",
		},
		{
			name: "complete layer 3",
			msg: func(testing.TB) Message {
				m := NewCompleteLayer3()
				m.Cell = models_base.NewCellIdentifier(models_base.GlobalCellID{
					LAI: models_base.LAI{PLMN: models_base.PLMN{MCC: 772, MNC: 386}, LAC: 0x3366},
					CI:  0x4488,
				})
				m.Layer3 = []byte{0x23}
				return m
			},
			want: "00 0e 57 05 08 00 77 62 83 33 66 44 88 17 01 23",
		},
		{
			name: "complete layer 3 aoip",
			msg: func(testing.TB) Message {
				m := NewCompleteLayer3()
				m.Cell = models_base.NewCellIdentifier(models_base.GlobalCellID{
					LAI: models_base.LAI{PLMN: models_base.PLMN{MCC: 772, MNC: 386}, LAC: 0x3366},
					CI:  0x4488,
				})
				m.Layer3 = []byte{0x23}
				m.SpeechCodecs = testCodecList()
				return m
			},
			want: "00 17 57 05 08 00 77 62 83 33 66 44 88 17 01 23 7d 07 52 ef cd a1 9f fd c0",
		},
		{
			name: "lcls connect control",
			msg: func(testing.TB) Message {
				m := NewLCLSConnectControl()
				m.Config = ptr(models_base.LCLSConfigBothWay)
				m.Control = ptr(models_base.LCLSControlConnect)
				return m
			},
			want: "00 05 74 8a 00 8b 00",
		},
		{
			name: "dtap",
			msg:  func(testing.TB) Message { return NewDTAP(0x03, []byte{0x23, 0x42}) },
			want: "01 03 02 23 42",
		},
	}
}

func TestMarshalVectors(t *testing.T) {
	for _, tt := range messageVectors() {
		t.Run(tt.name, func(t *testing.T) {
			data, err := tt.msg(t).Marshal()
			if err != nil {
				t.Fatalf("Failed to marshal: %v", err)
			}
			want := mustHex(t, tt.want)
			if !bytes.Equal(data, want) {
				t.Errorf("encoding mismatch\n got: % x\nwant: % x", data, want)
			}
		})
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	for _, tt := range messageVectors() {
		t.Run(tt.name, func(t *testing.T) {
			orig := tt.msg(t)
			data := mustHex(t, tt.want)

			msg, err := Decode(data)
			if err != nil {
				t.Fatalf("Failed to decode: %v", err)
			}
			if Code(msg) != Code(orig) {
				t.Fatalf("decoded %s, want %s", msg, orig)
			}
			if !tt.lossy && msg.String() != orig.String() {
				t.Errorf("decoded message differs\n got: %s\nwant: %s", msg, orig)
			}

			again, err := msg.Marshal()
			if err != nil {
				t.Fatalf("Failed to re-marshal: %v", err)
			}
			if !bytes.Equal(again, data) {
				t.Errorf("re-encoding mismatch\n got: % x\nwant: % x", again, data)
			}
		})
	}
}

func TestAssignmentRequestFields(t *testing.T) {
	data := mustHex(t, "00 45 01 0b 04 01 0b 91 15 01 00 04 7c 06 ac 0c 65 0d 02 9a "+
		"7d 07 52 ef cd a1 9f fd c0 7f de ad fa ce "+
		"83 45 45 45 45 45 45 45 45 45 45 45 45 45 45 45 45 "+
		"89 0d 03 44 44 44 02 fe ed 05 41 41 41 41 41 8a 00 8b 00 8c")

	m := &AssignmentRequest{}
	if err := m.Unmarshal(data); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}
	if m.CIC == nil || *m.CIC != 4 {
		t.Errorf("CIC mismatch: got %v", m.CIC)
	}
	if m.AoIP == nil || m.AoIP.String() != "172.12.101.13:666" {
		t.Errorf("AoIP mismatch: got %v", m.AoIP)
	}
	if m.CallID == nil || *m.CallID != 0xdeadface {
		t.Errorf("CallID mismatch: got %v", m.CallID)
	}
	if len(m.SpeechCodecs) != 3 || m.SpeechCodecs[0].Cfg != 0xcdef {
		t.Errorf("SpeechCodecs mismatch: got %s", m.SpeechCodecs)
	}
	if m.Kc128 == nil || m.Kc128[15] != 'E' {
		t.Errorf("Kc128 mismatch: got %v", m.Kc128)
	}
	if m.LCLS == nil {
		t.Fatal("LCLS not decoded")
	}
	if !m.LCLS.CorrNotNeeded || m.LCLS.Config == nil || *m.LCLS.Config != models_base.LCLSConfigBothWay ||
		m.LCLS.Control == nil || *m.LCLS.Control != models_base.LCLSControlConnect {
		t.Errorf("LCLS mismatch: got %s", m.LCLS)
	}
	if m.LCLS.GCR == nil || m.LCLS.GCR.Node != 0xfeed || string(m.LCLS.GCR.NetID) != "DDD" {
		t.Errorf("GCR mismatch: got %v", m.LCLS.GCR)
	}
}

func TestPagingString(t *testing.T) {
	m := NewPaging()
	m.IMSI = "001010000001234"
	m.Cells = testLACList(t, 0x2342)
	if s := m.String(); !strings.Contains(s, "channel_needed=none") {
		t.Errorf("expected channel_needed=none in %q", s)
	}

	data, err := m.Marshal()
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}
	m.ChannelNeeded = ptr(uint8(2))
	withChannel, err := m.Marshal()
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}

	a, b := NewPaging(), NewPaging()
	if err := a.Unmarshal(data); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}
	if err := b.Unmarshal(withChannel); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}
	if a.String() == b.String() {
		t.Errorf("channel needed not visible in String: %s", b)
	}
	if !strings.Contains(b.String(), "channel_needed=2") {
		t.Errorf("expected channel_needed=2 in %q", b)
	}
}

func TestLCLSConnectControlZeroValue(t *testing.T) {
	data, err := (&LCLSConnectControl{}).Marshal()
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}
	if want := mustHex(t, "00 01 74"); !bytes.Equal(data, want) {
		t.Errorf("got % x, want % x", data, want)
	}

	m := NewLCLSConnectControl()
	if err := m.Unmarshal(data); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}
	if m.Config != nil || m.Control != nil {
		t.Errorf("expected nothing present, got %s", m)
	}
	if want := "LCLS CONNECT CONTROL{config=none control=none}"; m.String() != want {
		t.Errorf("got %q, want %q", m.String(), want)
	}
}

func TestPrependDTAPHeader(t *testing.T) {
	data, err := PrependDTAPHeader([]byte{0x23, 0x42}, 0x03)
	if err != nil {
		t.Fatalf("Failed to prepend DTAP header: %v", err)
	}
	if !bytes.Equal(data, mustHex(t, "01 03 02 23 42")) {
		t.Errorf("got % x", data)
	}
}

func TestMessageTypeString(t *testing.T) {
	if got := MsgCompleteLayer3.String(); got != "COMPLETE LAYER 3 INFORMATION" {
		t.Errorf("got %q", got)
	}
	if got := MessageType(0xee).String(); got != "BSSMAP-0xee" {
		t.Errorf("got %q", got)
	}
}
