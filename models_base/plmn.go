package models_base

import "fmt"

// PLMN is a mobile country code and mobile network code. MNC values above 99
// are always three digits; MNC3Digits marks a three digit MNC with leading
// zeros such as 007.
type PLMN struct {
	MCC        uint16
	MNC        uint16
	MNC3Digits bool
}

const plmnLen = 3

// threeDigitMNC reports whether the MNC is coded with three digits
func (p PLMN) threeDigitMNC() bool {
	return p.MNC3Digits || p.MNC > 99
}

// appendBCD appends the 3 octet TS 24.008 10.5.1.3 encoding
func (p PLMN) appendBCD(b []byte) []byte {
	mcc1 := uint8(p.MCC / 100 % 10)
	mcc2 := uint8(p.MCC / 10 % 10)
	mcc3 := uint8(p.MCC % 10)

	var mnc1, mnc2, mnc3 uint8
	if p.threeDigitMNC() {
		mnc1 = uint8(p.MNC / 100 % 10)
		mnc2 = uint8(p.MNC / 10 % 10)
		mnc3 = uint8(p.MNC % 10)
	} else {
		mnc1 = uint8(p.MNC / 10 % 10)
		mnc2 = uint8(p.MNC % 10)
		mnc3 = 0x0f
	}
	return append(b,
		mcc2<<4|mcc1,
		mnc3<<4|mcc3,
		mnc2<<4|mnc1)
}

func decodePLMN(b []byte) PLMN {
	mcc := uint16(b[0]&0x0f)*100 + uint16(b[0]>>4)*10 + uint16(b[1]&0x0f)
	var p PLMN
	p.MCC = mcc
	if b[1]>>4 == 0x0f {
		p.MNC = uint16(b[2]&0x0f)*10 + uint16(b[2]>>4)
	} else {
		p.MNC = uint16(b[2]&0x0f)*100 + uint16(b[2]>>4)*10 + uint16(b[1]>>4)
		p.MNC3Digits = true
	}
	return p
}

// Equal compares two PLMNs by their digits. The three digit flag only
// matters when the MNC itself fits in two digits.
func (p PLMN) Equal(o PLMN) bool {
	return p.MCC == o.MCC && p.MNC == o.MNC && p.threeDigitMNC() == o.threeDigitMNC()
}

func (p PLMN) String() string {
	if p.threeDigitMNC() {
		return fmt.Sprintf("%03d-%03d", p.MCC, p.MNC)
	}
	return fmt.Sprintf("%03d-%02d", p.MCC, p.MNC)
}

// LAI is a location area identity
type LAI struct {
	PLMN PLMN
	LAC  uint16
}

const laiLen = plmnLen + 2

func (l LAI) appendTo(b []byte) []byte {
	b = l.PLMN.appendBCD(b)
	return append(b, uint8(l.LAC>>8), uint8(l.LAC))
}

func decodeLAI(b []byte) LAI {
	return LAI{
		PLMN: decodePLMN(b),
		LAC:  uint16(b[3])<<8 | uint16(b[4]),
	}
}

// Equal compares two location area identities
func (l LAI) Equal(o LAI) bool {
	return l.LAC == o.LAC && l.PLMN.Equal(o.PLMN)
}

func (l LAI) String() string {
	return fmt.Sprintf("%s-%d", l.PLMN, l.LAC)
}

// CGI is a cell global identity
type CGI struct {
	LAI LAI
	CI  uint16
}

const cgiLen = laiLen + 2

// Equal compares two cell global identities
func (c CGI) Equal(o CGI) bool {
	return c.CI == o.CI && c.LAI.Equal(o.LAI)
}

func (c CGI) String() string {
	return fmt.Sprintf("%s-%d", c.LAI, c.CI)
}
