package bssmap

import (
	"fmt"

	"github.com/hsdfat8/bssap/models_base"
)

// MessageType is the BSSMAP message type octet, 3GPP TS 48.008 3.2.2.1
type MessageType uint8

const (
	MsgAssignmentRequest  MessageType = 0x01
	MsgAssignmentComplete MessageType = 0x02
	MsgAssignmentFailure  MessageType = 0x03
	MsgClearCommand       MessageType = 0x20
	MsgClearComplete      MessageType = 0x21
	MsgClearRequest       MessageType = 0x22
	MsgSAPINReject        MessageType = 0x25
	MsgReset              MessageType = 0x30
	MsgResetAcknowledge   MessageType = 0x31
	MsgPaging             MessageType = 0x52
	MsgCipherModeCommand  MessageType = 0x53
	MsgClassmarkUpdate    MessageType = 0x54
	MsgCipherModeComplete MessageType = 0x55
	MsgCompleteLayer3     MessageType = 0x57
	MsgCipherModeReject   MessageType = 0x59
	MsgLCLSConnectControl MessageType = 0x74
)

var messageTypeNames = map[MessageType]string{
	MsgAssignmentRequest:  "ASSIGNMENT REQUEST",
	MsgAssignmentComplete: "ASSIGNMENT COMPLETE",
	MsgAssignmentFailure:  "ASSIGNMENT FAILURE",
	MsgClearCommand:       "CLEAR COMMAND",
	MsgClearComplete:      "CLEAR COMPLETE",
	MsgClearRequest:       "CLEAR REQUEST",
	MsgSAPINReject:        "SAPI N REJECT",
	MsgReset:              "RESET",
	MsgResetAcknowledge:   "RESET ACKNOWLEDGE",
	MsgPaging:             "PAGING",
	MsgCipherModeCommand:  "CIPHER MODE COMMAND",
	MsgClassmarkUpdate:    "CLASSMARK UPDATE",
	MsgCipherModeComplete: "CIPHER MODE COMPLETE",
	MsgCompleteLayer3:     "COMPLETE LAYER 3 INFORMATION",
	MsgCipherModeReject:   "CIPHER MODE REJECT",
	MsgLCLSConnectControl: "LCLS CONNECT CONTROL",
}

func (t MessageType) String() string {
	if name, ok := messageTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("BSSMAP-0x%02x", uint8(t))
}

// Message is a BSSAP message that can be encoded and decoded
type Message interface {
	Discriminator() Discriminator
	// MessageType is zero for DTAP
	MessageType() MessageType
	Marshal() ([]byte, error)
	Unmarshal(data []byte) error
	Validate() error
	String() string
}

// Code identifies the kind of a message: the message type for BSSMAP and
// 0x100 for DTAP
func Code(m Message) uint32 {
	return uint32(m.Discriminator())<<8 | uint32(m.MessageType())
}

var constructors = map[MessageType]func() Message{
	MsgAssignmentRequest:  func() Message { return NewAssignmentRequest() },
	MsgAssignmentComplete: func() Message { return NewAssignmentComplete() },
	MsgAssignmentFailure:  func() Message { return NewAssignmentFailure() },
	MsgClearCommand:       func() Message { return NewClearCommand() },
	MsgClearComplete:      func() Message { return NewClearComplete() },
	MsgClearRequest:       func() Message { return NewClearRequest() },
	MsgSAPINReject:        func() Message { return NewSAPINReject() },
	MsgReset:              func() Message { return NewReset() },
	MsgResetAcknowledge:   func() Message { return NewResetAcknowledge() },
	MsgPaging:             func() Message { return NewPaging() },
	MsgCipherModeCommand:  func() Message { return NewCipherModeCommand() },
	MsgClassmarkUpdate:    func() Message { return NewClassmarkUpdate() },
	MsgCipherModeComplete: func() Message { return NewCipherModeComplete() },
	MsgCompleteLayer3:     func() Message { return NewCompleteLayer3() },
	MsgCipherModeReject:   func() Message { return NewCipherModeReject() },
	MsgLCLSConnectControl: func() Message { return NewLCLSConnectControl() },
}

// Decode decodes one complete BSSAP message, choosing the message struct from
// the discriminator and message type
func Decode(data []byte) (Message, error) {
	h, payload, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}

	var m Message
	if h.Discriminator == DiscrDTAP {
		m = &DTAP{}
	} else {
		if len(payload) < 1 {
			return nil, models_base.ErrTruncated{IE: "message type", Need: 1, Have: 0}
		}
		newMsg, ok := constructors[MessageType(payload[0])]
		if !ok {
			return nil, models_base.ErrInvalidDiscriminator{IE: "BSSMAP message type", Value: payload[0]}
		}
		m = newMsg()
	}

	if err := m.Unmarshal(data); err != nil {
		return nil, err
	}
	return m, nil
}
