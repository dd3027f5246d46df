package models_base

import (
	"bytes"
	"fmt"
)

// GlobalCallRef is a parsed Global Call Reference, 3GPP TS 29.205 B.2.1.9
type GlobalCallRef struct {
	// NetID is the network identifier, 3 to 5 octets
	NetID   []byte
	Node    uint16
	CallRef [5]byte
}

const (
	gcrNetMinLen = 3
	gcrNetMaxLen = 5
	gcrNodeLen   = 2
	gcrCRLen     = 5
)

func (g *GlobalCallRef) Tag() uint8 { return IEGlobalCallRef }

func (g *GlobalCallRef) Len() int {
	return 1 + len(g.NetID) + 1 + gcrNodeLen + 1 + gcrCRLen
}

func (g *GlobalCallRef) AppendValue(b []byte) ([]byte, error) {
	if len(g.NetID) < gcrNetMinLen || len(g.NetID) > gcrNetMaxLen {
		return b, ErrInvalidValue{IE: "Global Call Reference", Reason: fmt.Sprintf("network id of %d octets, want %d..%d", len(g.NetID), gcrNetMinLen, gcrNetMaxLen)}
	}
	b = append(b, uint8(len(g.NetID)))
	b = append(b, g.NetID...)
	b = append(b, gcrNodeLen, uint8(g.Node>>8), uint8(g.Node))
	b = append(b, gcrCRLen)
	return append(b, g.CallRef[:]...), nil
}

// Equal compares two global call references
func (g *GlobalCallRef) Equal(o *GlobalCallRef) bool {
	if g == nil || o == nil {
		return g == o
	}
	return bytes.Equal(g.NetID, o.NetID) && g.Node == o.Node && g.CallRef == o.CallRef
}

func (g *GlobalCallRef) String() string {
	return fmt.Sprintf("GCR{net=%x node=0x%04x cr=%x}", g.NetID, g.Node, g.CallRef[:])
}

// DecodeGlobalCallRef decodes the value part of a Global Call Reference IE
func DecodeGlobalCallRef(b []byte) (*GlobalCallRef, int, error) {
	const ie = "Global Call Reference"
	if len(b) < 1 {
		return nil, 0, ErrTruncated{IE: ie, Need: 1, Have: 0}
	}
	netLen := int(b[0])
	if netLen < gcrNetMinLen || netLen > gcrNetMaxLen {
		return nil, 0, ErrInvalidLength{IE: ie, Length: netLen, Reason: "network id must be 3..5 octets"}
	}
	need := 1 + netLen + 1 + gcrNodeLen + 1 + gcrCRLen
	if len(b) < need {
		return nil, 0, ErrTruncated{IE: ie, Need: need, Have: len(b)}
	}
	pos := 1
	g := &GlobalCallRef{NetID: append([]byte(nil), b[pos:pos+netLen]...)}
	pos += netLen

	if b[pos] != gcrNodeLen {
		return nil, 0, ErrInvalidLength{IE: ie, Length: int(b[pos]), Reason: "node id must be 2 octets"}
	}
	g.Node = uint16(b[pos+1])<<8 | uint16(b[pos+2])
	pos += 1 + gcrNodeLen

	if b[pos] != gcrCRLen {
		return nil, 0, ErrInvalidLength{IE: ie, Length: int(b[pos]), Reason: "call reference id must be 5 octets"}
	}
	copy(g.CallRef[:], b[pos+1:pos+1+gcrCRLen])
	pos += 1 + gcrCRLen
	return g, pos, nil
}

// LCLSConfig is the LCLS-Configuration value, 3GPP TS 48.008 3.2.2.116
type LCLSConfig uint8

const (
	LCLSConfigBothWay                           LCLSConfig = 0x0
	LCLSConfigBothWayAndBicastUL                LCLSConfig = 0x1
	LCLSConfigBothWayAndSendDL                  LCLSConfig = 0x2
	LCLSConfigBothWayAndSendDLBlockLocalDL      LCLSConfig = 0x3
	LCLSConfigBothWayAndBicastULSendDL          LCLSConfig = 0x4
	LCLSConfigBothWayAndBicastULSendDLBlockLocl LCLSConfig = 0x5
	LCLSConfigNA                                LCLSConfig = 0xf
)

var lclsConfigNames = map[LCLSConfig]string{
	LCLSConfigBothWay:                           "BOTH_WAY",
	LCLSConfigBothWayAndBicastUL:                "BOTH_WAY_AND_BICAST_UL",
	LCLSConfigBothWayAndSendDL:                  "BOTH_WAY_AND_SEND_DL",
	LCLSConfigBothWayAndSendDLBlockLocalDL:      "BOTH_WAY_AND_SEND_DL_BLOCK_LOCAL_DL",
	LCLSConfigBothWayAndBicastULSendDL:          "BOTH_WAY_AND_BICAST_UL_SEND_DL",
	LCLSConfigBothWayAndBicastULSendDLBlockLocl: "BOTH_WAY_AND_BICAST_UL_SEND_DL_BLOCK_LOCAL_DL",
	LCLSConfigNA:                                "NA",
}

func (c LCLSConfig) String() string {
	if name, ok := lclsConfigNames[c]; ok {
		return name
	}
	return fmt.Sprintf("LCLSConfig(0x%x)", uint8(c))
}

// LCLSControl is the LCLS-Connection-Status-Control value, 3.2.2.117
type LCLSControl uint8

const (
	LCLSControlConnect                     LCLSControl = 0x0
	LCLSControlDoNotConnect                LCLSControl = 0x1
	LCLSControlReleaseLCLS                 LCLSControl = 0x2
	LCLSControlBicastULAtHandover          LCLSControl = 0x3
	LCLSControlBicastULAndRecvDLAtHandover LCLSControl = 0x4
	LCLSControlNA                          LCLSControl = 0xf
)

var lclsControlNames = map[LCLSControl]string{
	LCLSControlConnect:                     "CONNECT",
	LCLSControlDoNotConnect:                "DO_NOT_CONNECT",
	LCLSControlReleaseLCLS:                 "RELEASE_LCLS",
	LCLSControlBicastULAtHandover:          "BICAST_UL_AT_HANDOVER",
	LCLSControlBicastULAndRecvDLAtHandover: "BICAST_UL_AND_RECV_DL_AT_HANDOVER",
	LCLSControlNA:                          "NA",
}

func (c LCLSControl) String() string {
	if name, ok := lclsControlNames[c]; ok {
		return name
	}
	return fmt.Sprintf("LCLSControl(0x%x)", uint8(c))
}

// LCLSStatus is the LCLS-BSS-Status value, 3.2.2.119
type LCLSStatus uint8

const (
	LCLSStatusNotYetLS         LCLSStatus = 0x0
	LCLSStatusNotPossibleLS    LCLSStatus = 0x1
	LCLSStatusNoLongerLS       LCLSStatus = 0x2
	LCLSStatusReqNotConsistent LCLSStatus = 0x3
	LCLSStatusLocallySwitched  LCLSStatus = 0x4
	LCLSStatusNA               LCLSStatus = 0xf
)

var lclsStatusNames = map[LCLSStatus]string{
	LCLSStatusNotYetLS:         "NOT_YET_LS",
	LCLSStatusNotPossibleLS:    "NOT_POSSIBLE_LS",
	LCLSStatusNoLongerLS:       "NO_LONGER_LS",
	LCLSStatusReqNotConsistent: "REQ_LCLS_NOT_SUPP",
	LCLSStatusLocallySwitched:  "LOCALLY_SWITCHED",
	LCLSStatusNA:               "NA",
}

func (s LCLSStatus) String() string {
	if name, ok := lclsStatusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("LCLSStatus(0x%x)", uint8(s))
}

// LCLS groups the LCLS IEs carried by an Assignment Request. Each member is
// encoded only when present: GCR non-nil, Config and Control non-nil and
// other than NA, CorrNotNeeded set. The zero value encodes to nothing.
type LCLS struct {
	GCR           *GlobalCallRef
	Config        *LCLSConfig
	Control       *LCLSControl
	CorrNotNeeded bool
}

// NewLCLS returns a block with nothing present
func NewLCLS() *LCLS {
	return &LCLS{}
}

// HasConfig reports whether the configuration goes on the wire
func (l *LCLS) HasConfig() bool {
	return l.Config != nil && *l.Config != LCLSConfigNA
}

// HasControl reports whether the connection status control goes on the wire
func (l *LCLS) HasControl() bool {
	return l.Control != nil && *l.Control != LCLSControlNA
}

// Empty reports whether encoding l would produce no octets
func (l *LCLS) Empty() bool {
	return l.GCR == nil && !l.HasConfig() && !l.HasControl() && !l.CorrNotNeeded
}

// AppendTo appends the present LCLS IEs in their message order
func (l *LCLS) AppendTo(b []byte) ([]byte, error) {
	start := len(b)
	var err error
	if l.GCR != nil {
		if b, err = AppendIE(b, l.GCR); err != nil {
			return b[:start], err
		}
	}
	if l.HasConfig() {
		b = AppendTV(b, IELCLSConfig, uint8(*l.Config))
	}
	if l.HasControl() {
		b = AppendTV(b, IELCLSConnStatusCtrl, uint8(*l.Control))
	}
	if l.CorrNotNeeded {
		b = AppendT(b, IELCLSCorrNotNeeded)
	}
	return b, nil
}

// Equal compares two LCLS blocks by what they encode to
func (l *LCLS) Equal(o *LCLS) bool {
	if l == nil || o == nil {
		return l == o
	}
	if l.HasConfig() != o.HasConfig() || (l.HasConfig() && *l.Config != *o.Config) {
		return false
	}
	if l.HasControl() != o.HasControl() || (l.HasControl() && *l.Control != *o.Control) {
		return false
	}
	return l.CorrNotNeeded == o.CorrNotNeeded && l.GCR.Equal(o.GCR)
}

func optionalString[T fmt.Stringer](v *T) string {
	if v == nil {
		return "none"
	}
	return (*v).String()
}

func (l *LCLS) String() string {
	gcr := "none"
	if l.GCR != nil {
		gcr = l.GCR.String()
	}
	return fmt.Sprintf("LCLS{config=%s control=%s corr_not_needed=%t gcr=%s}",
		optionalString(l.Config), optionalString(l.Control), l.CorrNotNeeded, gcr)
}

// DecodeLCLS collects the LCLS IEs of a parsed message. A received NA leaves
// the member nil. It returns nil when none of them is present.
func DecodeLCLS(tp *TLVParsed) (*LCLS, error) {
	l := NewLCLS()
	found := false
	if v, ok := tp.Get(IEGlobalCallRef); ok {
		g, _, err := DecodeGlobalCallRef(v)
		if err != nil {
			return nil, err
		}
		l.GCR = g
		found = true
	}
	v, ok, err := tp.GetFixed(IELCLSConfig, 1)
	if err != nil {
		return nil, err
	}
	if ok {
		if c := LCLSConfig(v[0]); c != LCLSConfigNA {
			l.Config = &c
		}
		found = true
	}
	if v, ok, err = tp.GetFixed(IELCLSConnStatusCtrl, 1); err != nil {
		return nil, err
	}
	if ok {
		if c := LCLSControl(v[0]); c != LCLSControlNA {
			l.Control = &c
		}
		found = true
	}
	if tp.Present(IELCLSCorrNotNeeded) {
		l.CorrNotNeeded = true
		found = true
	}
	if !found {
		return nil, nil
	}
	return l, nil
}
