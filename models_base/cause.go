package models_base

import "fmt"

// Cause is a BSSMAP cause value, 3GPP TS 48.008 3.2.2.5. Values up to 0x7f
// are carried in one octet; extended causes carry bit 7 of the high octet.
type Cause uint16

// CauseClass is the class nibble of an extended cause
type CauseClass uint8

const (
	CauseClassNorm0        CauseClass = 0x0
	CauseClassNorm1        CauseClass = 0x1
	CauseClassResUnavail   CauseClass = 0x2
	CauseClassSrvOptNA     CauseClass = 0x3
	CauseClassSrvOptNImpl  CauseClass = 0x4
	CauseClassInvalid      CauseClass = 0x5
	CauseClassProtocolErr  CauseClass = 0x6
	CauseClassInterworking CauseClass = 0x7
)

const (
	CauseRadioInterfaceMessageFailure  Cause = 0x00
	CauseRadioInterfaceFailure         Cause = 0x01
	CauseUplinkQuality                 Cause = 0x02
	CauseUplinkStrength                Cause = 0x03
	CauseDownlinkQuality               Cause = 0x04
	CauseDownlinkStrength              Cause = 0x05
	CauseDistance                      Cause = 0x06
	CauseOAndMIntervention             Cause = 0x07
	CauseResponseToMSCInvocation       Cause = 0x08
	CauseCallControl                   Cause = 0x09
	CauseHandoverSuccessful            Cause = 0x0b
	CauseBetterCell                    Cause = 0x0c
	CauseDirectedRetry                 Cause = 0x0d
	CauseTraffic                       Cause = 0x0f
	CauseEquipmentFailure              Cause = 0x20
	CauseNoRadioResourceAvailable      Cause = 0x21
	CauseTerrestrialResourceUnavail    Cause = 0x22
	CauseCCCHOverload                  Cause = 0x23
	CauseProcessorOverload             Cause = 0x24
	CauseBSSNotEquipped                Cause = 0x25
	CauseMSNotEquipped                 Cause = 0x26
	CauseInvalidCell                   Cause = 0x27
	CauseTrafficLoad                   Cause = 0x28
	CausePreemption                    Cause = 0x29
	CauseTranscodingUnavailable        Cause = 0x30
	CauseCircuitPoolMismatch           Cause = 0x31
	CauseSwitchCircuitPool             Cause = 0x32
	CauseSpeechVersionUnavailable      Cause = 0x33
	CauseCodecTypeOrConfigUnavail      Cause = 0x35
	CauseCipheringAlgorithmNotSupp     Cause = 0x40
	CauseCodecTypeOrConfigNotSupp      Cause = 0x44
	CauseTerrestrialCircuitAllocated   Cause = 0x50
	CauseInvalidMessageContents        Cause = 0x51
	CauseIEOrFieldMissing              Cause = 0x52
	CauseIncorrectValue                Cause = 0x53
	CauseUnknownMessageType            Cause = 0x54
	CauseUnknownInformationElement     Cause = 0x55
	CauseCallIDAlreadyAllocated        Cause = 0x57
	CauseProtocolErrorBetweenBSSAndMSC Cause = 0x60
)

var causeNames = map[Cause]string{
	CauseRadioInterfaceMessageFailure:  "RADIO_INTERFACE_MESSAGE_FAILURE",
	CauseRadioInterfaceFailure:         "RADIO_INTERFACE_FAILURE",
	CauseUplinkQuality:                 "UPLINK_QUALITY",
	CauseUplinkStrength:                "UPLINK_STRENGTH",
	CauseDownlinkQuality:               "DOWNLINK_QUALITY",
	CauseDownlinkStrength:              "DOWNLINK_STRENGTH",
	CauseDistance:                      "DISTANCE",
	CauseOAndMIntervention:             "O_AND_M_INTERVENTION",
	CauseResponseToMSCInvocation:       "RESPONSE_TO_MSC_INVOCATION",
	CauseCallControl:                   "CALL_CONTROL",
	CauseHandoverSuccessful:            "HANDOVER_SUCCESSFUL",
	CauseBetterCell:                    "BETTER_CELL",
	CauseDirectedRetry:                 "DIRECTED_RETRY",
	CauseTraffic:                       "TRAFFIC",
	CauseEquipmentFailure:              "EQUIPMENT_FAILURE",
	CauseNoRadioResourceAvailable:      "NO_RADIO_RESOURCE_AVAILABLE",
	CauseTerrestrialResourceUnavail:    "RQSTED_TERRESTRIAL_RESOURCE_UNAVAILABLE",
	CauseCCCHOverload:                  "CCCH_OVERLOAD",
	CauseProcessorOverload:             "PROCESSOR_OVERLOAD",
	CauseBSSNotEquipped:                "BSS_NOT_EQUIPPED",
	CauseMSNotEquipped:                 "MS_NOT_EQUIPPED",
	CauseInvalidCell:                   "INVALID_CELL",
	CauseTrafficLoad:                   "TRAFFIC_LOAD",
	CausePreemption:                    "PREEMPTION",
	CauseTranscodingUnavailable:        "RQSTED_TRANSCODING_RATE_ADAPTION_UNAVAILABLE",
	CauseCircuitPoolMismatch:           "CIRCUIT_POOL_MISMATCH",
	CauseSwitchCircuitPool:             "SWITCH_CIRCUIT_POOL",
	CauseSpeechVersionUnavailable:      "RQSTED_SPEECH_VERSION_UNAVAILABLE",
	CauseCodecTypeOrConfigUnavail:      "REQ_CODEC_TYPE_OR_CONFIG_UNAVAIL",
	CauseCipheringAlgorithmNotSupp:     "CIPHERING_ALGORITHM_NOT_SUPPORTED",
	CauseCodecTypeOrConfigNotSupp:      "REQ_CODEC_TYPE_OR_CONFIG_NOT_SUPP",
	CauseTerrestrialCircuitAllocated:   "TERRESTRIAL_CIRCUIT_ALREADY_ALLOCATED",
	CauseInvalidMessageContents:        "INVALID_MESSAGE_CONTENTS",
	CauseIEOrFieldMissing:              "INFORMATION_ELEMENT_OR_FIELD_MISSING",
	CauseIncorrectValue:                "INCORRECT_VALUE",
	CauseUnknownMessageType:            "UNKNOWN_MESSAGE_TYPE",
	CauseUnknownInformationElement:     "UNKNOWN_INFORMATION_ELEMENT",
	CauseCallIDAlreadyAllocated:        "CALL_ID_ALREADY_ALLOC",
	CauseProtocolErrorBetweenBSSAndMSC: "PROTOCOL_ERROR_BETWEEN_BSS_AND_MSC",
}

// NewExtendedCause builds a two-octet cause from its class and value octet
func NewExtendedCause(class CauseClass, value uint8) Cause {
	return Cause(uint16(0x80|uint8(class&0x07)<<4)<<8 | uint16(value))
}

// IsExtended reports whether c is encoded in two octets
func (c Cause) IsExtended() bool {
	return (c>>8)&0x80 != 0
}

// Class returns the class nibble of an extended cause
func (c Cause) Class() CauseClass {
	return CauseClass((c >> 12) & 0x07)
}

// Value returns the cause octet carried last on the wire
func (c Cause) Value() uint8 {
	return uint8(c)
}

func (c Cause) Tag() uint8 {
	return IECause
}

func (c Cause) Len() int {
	if c.IsExtended() {
		return 2
	}
	return 1
}

func (c Cause) AppendValue(b []byte) ([]byte, error) {
	if c.IsExtended() {
		return append(b, uint8(c>>8), uint8(c)), nil
	}
	if c > 0x7f {
		return b, ErrInvalidValue{IE: "Cause", Reason: fmt.Sprintf("0x%04x is neither a one-octet nor an extended cause", uint16(c))}
	}
	return append(b, uint8(c)), nil
}

func (c Cause) String() string {
	if name, ok := causeNames[c]; ok {
		return name
	}
	if c.IsExtended() {
		return fmt.Sprintf("Cause{class=%d,value=0x%02x}", c.Class(), c.Value())
	}
	return fmt.Sprintf("Cause{0x%02x}", uint16(c))
}

// DecodeCause decodes the value part of a Cause IE
func DecodeCause(b []byte) (Cause, int, error) {
	switch len(b) {
	case 0:
		return 0, 0, ErrTruncated{IE: "Cause", Need: 1, Have: 0}
	case 1:
		if b[0]&0x80 != 0 {
			return 0, 0, ErrInvalidLength{IE: "Cause", Length: 1, Reason: "extension bit set in single octet cause"}
		}
		return Cause(b[0]), 1, nil
	case 2:
		if b[0]&0x80 == 0 {
			return 0, 0, ErrInvalidLength{IE: "Cause", Length: 2, Reason: "two octet cause without extension bit"}
		}
		return Cause(uint16(b[0])<<8 | uint16(b[1])), 2, nil
	}
	return 0, 0, ErrInvalidLength{IE: "Cause", Length: len(b)}
}
