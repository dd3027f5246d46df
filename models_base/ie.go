package models_base

import "fmt"

// IE identifiers, 3GPP TS 48.008 section 3.2.2
const (
	IECircuitIdentityCode     uint8 = 0x01
	IEResourceAvailable       uint8 = 0x03
	IECause                   uint8 = 0x04
	IECellIdentifier          uint8 = 0x05
	IEPriority                uint8 = 0x06
	IELayer3HeaderInformation uint8 = 0x07
	IEIMSI                    uint8 = 0x08
	IETMSI                    uint8 = 0x09
	IEEncryptionInformation   uint8 = 0x0a
	IEChannelType             uint8 = 0x0b
	IEPeriodicity             uint8 = 0x0c
	IENumberOfMSs             uint8 = 0x0e
	IEClassmarkInformationT2  uint8 = 0x12
	IEClassmarkInformationT3  uint8 = 0x13
	IEInterferenceBand        uint8 = 0x14
	IERRCause                 uint8 = 0x15
	IELayer3Information       uint8 = 0x17
	IEDLCI                    uint8 = 0x18
	IEDownlinkDTXFlag         uint8 = 0x19
	IECellIdentifierList      uint8 = 0x1a
	IEResponseRequest         uint8 = 0x1b
	IEClassmarkInformationT1  uint8 = 0x1d
	IEDiagnostic              uint8 = 0x1f
	IELayer3MessageContents   uint8 = 0x20
	IEChosenChannel           uint8 = 0x21
	IECipherResponseMode      uint8 = 0x23
	IEChannelNeeded           uint8 = 0x24
	IEChosenEncrAlg           uint8 = 0x2c
	IECircuitPool             uint8 = 0x2d
	IESpeechVersion           uint8 = 0x40
	IEAoIPTransportAddr       uint8 = 0x7c
	IESpeechCodecList         uint8 = 0x7d
	IESpeechCodec             uint8 = 0x7e
	IECallID                  uint8 = 0x7f
	IEKc128                   uint8 = 0x83
	IEGlobalCallRef           uint8 = 0x89
	IELCLSConfig              uint8 = 0x8a
	IELCLSConnStatusCtrl      uint8 = 0x8b
	IELCLSCorrNotNeeded       uint8 = 0x8c
	IELCLSBSSStatus           uint8 = 0x8d
	IELCLSBreakReq            uint8 = 0x8e
	IECSFBIndication          uint8 = 0x8f
)

var tagNames = map[uint8]string{
	IECircuitIdentityCode:     "Circuit Identity Code",
	IEResourceAvailable:       "Resource Available",
	IECause:                   "Cause",
	IECellIdentifier:          "Cell Identifier",
	IEPriority:                "Priority",
	IELayer3HeaderInformation: "Layer 3 Header Information",
	IEIMSI:                    "IMSI",
	IETMSI:                    "TMSI",
	IEEncryptionInformation:   "Encryption Information",
	IEChannelType:             "Channel Type",
	IEPeriodicity:             "Periodicity",
	IENumberOfMSs:             "Number Of MSs",
	IEClassmarkInformationT2:  "Classmark Information Type 2",
	IEClassmarkInformationT3:  "Classmark Information Type 3",
	IEInterferenceBand:        "Interference Band To Be Used",
	IERRCause:                 "RR Cause",
	IELayer3Information:       "Layer 3 Information",
	IEDLCI:                    "DLCI",
	IEDownlinkDTXFlag:         "Downlink DTX Flag",
	IECellIdentifierList:      "Cell Identifier List",
	IEResponseRequest:         "Response Request",
	IEClassmarkInformationT1:  "Classmark Information Type 1",
	IEDiagnostic:              "Diagnostic",
	IELayer3MessageContents:   "Layer 3 Message Contents",
	IEChosenChannel:           "Chosen Channel",
	IECipherResponseMode:      "Cipher Response Mode",
	IEChannelNeeded:           "Channel Needed",
	IEChosenEncrAlg:           "Chosen Encryption Algorithm",
	IECircuitPool:             "Circuit Pool",
	IESpeechVersion:           "Speech Version",
	IEAoIPTransportAddr:       "AoIP Transport Layer Address",
	IESpeechCodecList:         "Speech Codec List",
	IESpeechCodec:             "Speech Codec",
	IECallID:                  "Call Identifier",
	IEKc128:                   "Kc128",
	IEGlobalCallRef:           "Global Call Reference",
	IELCLSConfig:              "LCLS-Configuration",
	IELCLSConnStatusCtrl:      "LCLS-Connection-Status-Control",
	IELCLSCorrNotNeeded:       "LCLS-Correlation-Not-Needed",
	IELCLSBSSStatus:           "LCLS-BSS-Status",
	IELCLSBreakReq:            "LCLS-Break-Request",
	IECSFBIndication:          "CSFB Indication",
}

// TagName returns a human readable name for an IE identifier
func TagName(tag uint8) string {
	if name, ok := tagNames[tag]; ok {
		return name
	}
	return fmt.Sprintf("IE 0x%02x", tag)
}

// BSSMAPDefinitions describes how every known BSSMAP IE is framed. Tags not
// listed default to tag + length + value.
var BSSMAPDefinitions = func() *TLVDefinitions {
	d := &TLVDefinitions{}
	d.Set(IECircuitIdentityCode, TLVDef{Kind: KindFixed, Len: 2})
	d.Set(IEResourceAvailable, TLVDef{Kind: KindFixed, Len: 21})
	d.Set(IEPeriodicity, TLVDef{Kind: KindTV})
	d.Set(IENumberOfMSs, TLVDef{Kind: KindTV})
	d.Set(IEInterferenceBand, TLVDef{Kind: KindTV})
	d.Set(IERRCause, TLVDef{Kind: KindTV})
	d.Set(IEDLCI, TLVDef{Kind: KindTV})
	d.Set(IEDownlinkDTXFlag, TLVDef{Kind: KindTV})
	d.Set(IEResponseRequest, TLVDef{Kind: KindT})
	d.Set(IEClassmarkInformationT1, TLVDef{Kind: KindTV})
	d.Set(IEChosenChannel, TLVDef{Kind: KindTV})
	d.Set(IECipherResponseMode, TLVDef{Kind: KindTV})
	d.Set(IEChannelNeeded, TLVDef{Kind: KindTV})
	d.Set(IEChosenEncrAlg, TLVDef{Kind: KindTV})
	d.Set(IECircuitPool, TLVDef{Kind: KindTV})
	d.Set(IESpeechVersion, TLVDef{Kind: KindTV})
	d.Set(IECallID, TLVDef{Kind: KindFixed, Len: 4})
	d.Set(IEKc128, TLVDef{Kind: KindFixed, Len: 16})
	d.Set(IELCLSConfig, TLVDef{Kind: KindTV})
	d.Set(IELCLSConnStatusCtrl, TLVDef{Kind: KindTV})
	d.Set(IELCLSCorrNotNeeded, TLVDef{Kind: KindT})
	d.Set(IELCLSBSSStatus, TLVDef{Kind: KindTV})
	d.Set(IELCLSBreakReq, TLVDef{Kind: KindTV})
	d.Set(IECSFBIndication, TLVDef{Kind: KindT})
	return d
}()
