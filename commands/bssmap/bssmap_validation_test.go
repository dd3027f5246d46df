package bssmap

import (
	"errors"
	"strings"
	"testing"

	"github.com/hsdfat8/bssap/models_base"
)

func TestValidation(t *testing.T) {
	tests := []struct {
		name    string
		setup   func() Message
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid paging",
			setup: func() Message {
				m := NewPaging()
				m.IMSI = "001010000001234"
				m.Cells = testLACList(t, 1)
				return m
			},
		},
		{
			name: "paging without cells",
			setup: func() Message {
				m := NewPaging()
				m.IMSI = "001010000001234"
				return m
			},
			wantErr: true,
			errMsg:  "Cell Identifier List",
		},
		{
			name: "paging with bad IMSI",
			setup: func() Message {
				m := NewPaging()
				m.IMSI = "00101x"
				m.Cells = testLACList(t, 1)
				return m
			},
			wantErr: true,
			errMsg:  "IMSI",
		},
		{
			name:    "assignment request without channel type",
			setup:   func() Message { return NewAssignmentRequest() },
			wantErr: true,
			errMsg:  "Channel Type",
		},
		{
			name: "assignment request with too many permitted versions",
			setup: func() Message {
				m := NewAssignmentRequest()
				m.ChannelType = testChannelType(make([]models_base.PermittedSpeech, models_base.ChannelTypeMaxSpeech+1)...)
				return m
			},
			wantErr: true,
			errMsg:  "capacity exceeded",
		},
		{
			name: "assignment request without permitted speech",
			setup: func() Message {
				m := NewAssignmentRequest()
				m.ChannelType = testChannelType()
				return m
			},
			wantErr: true,
			errMsg:  "no permitted speech",
		},
		{
			name:    "cipher mode command without algorithms",
			setup:   func() Message { return NewCipherModeCommand() },
			wantErr: true,
			errMsg:  "Encryption Information",
		},
		{
			name: "cipher mode command with long key",
			setup: func() Message {
				m := NewCipherModeCommand()
				m.EncryptionInfo = testEncryptionInfo()
				m.EncryptionInfo.Key = make([]byte, models_base.EncryptionKeyMaxLen+1)
				return m
			},
			wantErr: true,
			errMsg:  "key",
		},
		{
			name: "reset with unrepresentable cause",
			setup: func() Message {
				m := NewReset()
				m.Cause = 0x0123
				return m
			},
			wantErr: true,
			errMsg:  "Cause",
		},
		{
			name:    "classmark update without classmark 2",
			setup:   func() Message { return NewClassmarkUpdate() },
			wantErr: true,
			errMsg:  "Classmark Information Type 2",
		},
		{
			name: "sapi reject with extended cause",
			setup: func() Message {
				m := NewSAPINReject()
				m.Cause = models_base.NewExtendedCause(models_base.CauseClassInvalid, 1)
				return m
			},
			wantErr: true,
			errMsg:  "single octet",
		},
		{
			name:    "complete layer 3 without cell",
			setup:   func() Message { return NewCompleteLayer3() },
			wantErr: true,
			errMsg:  "Cell Identifier",
		},
		{
			name: "complete layer 3 without layer 3",
			setup: func() Message {
				m := NewCompleteLayer3()
				m.Cell = models_base.NewCellIdentifier(models_base.CellIdentity(7))
				return m
			},
			wantErr: true,
			errMsg:  "Layer 3 Information",
		},
		{
			name: "assignment complete with unsupported codec",
			setup: func() Message {
				m := NewAssignmentComplete()
				m.SpeechCodec = &models_base.SpeechCodec{Type: 0x42}
				return m
			},
			wantErr: true,
			errMsg:  "unsupported codec type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := tt.setup()
			err := m.Validate()

			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				} else if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
				}
				if _, err := m.Marshal(); err == nil {
					t.Error("expected Marshal to fail validation, got nil error")
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestMarshalValidation(t *testing.T) {
	_, err := NewPaging().Marshal()
	if err == nil {
		t.Fatal("expected Marshal to fail validation, got nil error")
	}
	if !strings.Contains(err.Error(), "validation failed") {
		t.Errorf("expected 'validation failed' in error, got: %v", err)
	}
}

func TestUnmarshalErrors(t *testing.T) {
	tests := []struct {
		name  string
		msg   Message
		data  string
		check func(error) bool
	}{
		{
			name:  "empty input",
			msg:   NewReset(),
			data:  "",
			check: isErr[models_base.ErrTruncated],
		},
		{
			name:  "length beyond input",
			msg:   NewReset(),
			data:  "00 05 30 04 01 20",
			check: isErr[models_base.ErrTruncated],
		},
		{
			name:  "trailing octets",
			msg:   NewReset(),
			data:  "00 04 30 04 01 20 ff",
			check: isErr[models_base.ErrInvalidLength],
		},
		{
			name:  "wrong message type",
			msg:   NewReset(),
			data:  "00 01 31",
			check: isErr[models_base.ErrInvalidDiscriminator],
		},
		{
			name:  "missing cause",
			msg:   NewReset(),
			data:  "00 01 30",
			check: isErr[models_base.ErrMissingIE],
		},
		{
			name:  "cause IE runs past payload",
			msg:   NewReset(),
			data:  "00 03 30 04 02",
			check: isErr[models_base.ErrTruncated],
		},
		{
			name:  "extension bit in single octet cause",
			msg:   NewReset(),
			data:  "00 04 30 04 01 80",
			check: isErr[models_base.ErrInvalidLength],
		},
		{
			name:  "paging missing cell list",
			msg:   NewPaging(),
			data:  "00 0b 52 08 08 09 10 10 00 00 00 21 43",
			check: isErr[models_base.ErrMissingIE],
		},
		{
			name:  "complete layer 3 with short CGI",
			msg:   NewCompleteLayer3(),
			data:  "00 0d 57 05 07 00 77 62 83 33 66 44 17 01 23",
			check: isErr[models_base.ErrInvalidLength],
		},
		{
			name:  "assignment request with odd AoIP length",
			msg:   NewAssignmentRequest(),
			data:  "00 0c 01 0b 04 01 0b a1 25 7c 03 c0 a8 64",
			check: isErr[models_base.ErrInvalidLength],
		},
		{
			name:  "lcls connect control with truncated config",
			msg:   NewLCLSConnectControl(),
			data:  "00 02 74 8a",
			check: isErr[models_base.ErrTruncated],
		},
		{
			name:  "dtap into bssmap message",
			msg:   NewReset(),
			data:  "01 03 02 23 42",
			check: isErr[models_base.ErrInvalidDiscriminator],
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.msg.Unmarshal(mustHex(t, tt.data))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !tt.check(err) {
				t.Errorf("unexpected error type %T: %v", err, err)
			}
		})
	}
}

// IEs that BSSMAPDefinitions does not constrain to a length still have
// their fixed size checked before the value is read
func TestFixedLengthIEs(t *testing.T) {
	tests := []struct {
		name string
		data string
		n    int
	}{
		{"empty value", "8a 00", 1},
		{"short CIC", "01 01 04", 2},
		{"long call identifier", "7f 05 de ad fa ce 00", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tp, err := models_base.ParseTLV(mustHex(t, tt.data), nil)
			if err != nil {
				t.Fatalf("Failed to parse: %v", err)
			}
			tag := tp.Elements[0].Tag
			if _, _, err := optionalFixed(tp, MsgAssignmentRequest, tag, tt.n); !isErr[models_base.ErrInvalidLength](err) {
				t.Errorf("optionalFixed: expected ErrInvalidLength, got %v", err)
			}
			if _, err := mandatoryFixed(tp, MsgAssignmentRequest, tag, tt.n); !isErr[models_base.ErrInvalidLength](err) {
				t.Errorf("mandatoryFixed: expected ErrInvalidLength, got %v", err)
			}
		})
	}

	tp, err := models_base.ParseTLV(nil, nil)
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	if _, err := mandatoryFixed(tp, MsgAssignmentComplete, models_base.IERRCause, 1); !isErr[models_base.ErrMissingIE](err) {
		t.Errorf("expected ErrMissingIE, got %v", err)
	}
}

func isErr[E error](err error) bool {
	var target E
	return errors.As(err, &target)
}

func TestDecodeUnknownType(t *testing.T) {
	_, err := Decode(mustHex(t, "00 01 ee"))
	var e models_base.ErrInvalidDiscriminator
	if !errors.As(err, &e) {
		t.Fatalf("expected ErrInvalidDiscriminator, got %v", err)
	}
	if e.Value != 0xee {
		t.Errorf("got value 0x%02x", e.Value)
	}

	if _, err := Decode(mustHex(t, "05 01 31")); !isErr[models_base.ErrInvalidDiscriminator](err) {
		t.Errorf("expected ErrInvalidDiscriminator for unknown BSSAP discriminator, got %v", err)
	}
}

// Every prefix of a valid message must fail cleanly
func TestDecodeTruncatedPrefixes(t *testing.T) {
	for _, tt := range messageVectors() {
		data := mustHex(t, tt.want)
		for n := 0; n < len(data); n++ {
			if _, err := Decode(data[:n]); err == nil {
				t.Errorf("%s: prefix of %d octets decoded without error", tt.name, n)
			}
		}
	}
}
