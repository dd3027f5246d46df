package models_base

import (
	"fmt"
	"strings"
)

// CellIdentDiscr is the cell identification discriminator, 3GPP TS 48.008
// 3.2.2.17 and 3.2.2.27
type CellIdentDiscr uint8

const (
	CellIdentWholeGlobal CellIdentDiscr = 0x0
	CellIdentLACAndCI    CellIdentDiscr = 0x1
	CellIdentCI          CellIdentDiscr = 0x2
	CellIdentNoCell      CellIdentDiscr = 0x3
	CellIdentLAIAndLAC   CellIdentDiscr = 0x4
	CellIdentLAC         CellIdentDiscr = 0x5
	CellIdentBSS         CellIdentDiscr = 0x6
)

func (d CellIdentDiscr) String() string {
	switch d {
	case CellIdentWholeGlobal:
		return "CGI"
	case CellIdentLACAndCI:
		return "LAC-CI"
	case CellIdentCI:
		return "CI"
	case CellIdentNoCell:
		return "NO-CELL"
	case CellIdentLAIAndLAC:
		return "LAI"
	case CellIdentLAC:
		return "LAC"
	case CellIdentBSS:
		return "BSS"
	}
	return fmt.Sprintf("unknown-0x%x", uint8(d))
}

// entryLen returns the wire size of one identification for d
func (d CellIdentDiscr) entryLen() (int, bool) {
	switch d {
	case CellIdentWholeGlobal:
		return cgiLen, true
	case CellIdentLACAndCI:
		return 4, true
	case CellIdentCI, CellIdentLAC:
		return 2, true
	case CellIdentLAIAndLAC:
		return laiLen, true
	case CellIdentNoCell, CellIdentBSS:
		return 0, true
	}
	return 0, false
}

// CellID is one cell identification. The concrete type determines the
// discriminator: GlobalCellID, LACAndCI, CellIdentity, LAIAndLAC or
// LocationAreaCode. No-Cell and BSS carry no identification.
type CellID interface {
	Discriminator() CellIdentDiscr
	appendTo(b []byte) []byte
	equal(o CellID) bool
	String() string
}

// GlobalCellID identifies a cell by its cell global identity
type GlobalCellID CGI

func (GlobalCellID) Discriminator() CellIdentDiscr { return CellIdentWholeGlobal }

func (g GlobalCellID) appendTo(b []byte) []byte {
	b = g.LAI.appendTo(b)
	return append(b, uint8(g.CI>>8), uint8(g.CI))
}

func (g GlobalCellID) equal(o CellID) bool {
	x, ok := o.(GlobalCellID)
	return ok && CGI(g).Equal(CGI(x))
}

func (g GlobalCellID) String() string { return CGI(g).String() }

// LACAndCI identifies a cell by location area code and cell identity
type LACAndCI struct {
	LAC uint16
	CI  uint16
}

func (LACAndCI) Discriminator() CellIdentDiscr { return CellIdentLACAndCI }

func (l LACAndCI) appendTo(b []byte) []byte {
	return append(b, uint8(l.LAC>>8), uint8(l.LAC), uint8(l.CI>>8), uint8(l.CI))
}

func (l LACAndCI) equal(o CellID) bool {
	x, ok := o.(LACAndCI)
	return ok && l == x
}

func (l LACAndCI) String() string { return fmt.Sprintf("%d-%d", l.LAC, l.CI) }

// CellIdentity identifies a cell by its cell identity only
type CellIdentity uint16

func (CellIdentity) Discriminator() CellIdentDiscr { return CellIdentCI }

func (c CellIdentity) appendTo(b []byte) []byte {
	return append(b, uint8(c>>8), uint8(c))
}

func (c CellIdentity) equal(o CellID) bool {
	x, ok := o.(CellIdentity)
	return ok && c == x
}

func (c CellIdentity) String() string { return fmt.Sprintf("%d", uint16(c)) }

// LAIAndLAC identifies all cells of a location area
type LAIAndLAC LAI

func (LAIAndLAC) Discriminator() CellIdentDiscr { return CellIdentLAIAndLAC }

func (l LAIAndLAC) appendTo(b []byte) []byte { return LAI(l).appendTo(b) }

func (l LAIAndLAC) equal(o CellID) bool {
	x, ok := o.(LAIAndLAC)
	return ok && LAI(l).Equal(LAI(x))
}

func (l LAIAndLAC) String() string { return LAI(l).String() }

// LocationAreaCode identifies all cells of a location area within the PLMN
type LocationAreaCode uint16

func (LocationAreaCode) Discriminator() CellIdentDiscr { return CellIdentLAC }

func (l LocationAreaCode) appendTo(b []byte) []byte {
	return append(b, uint8(l>>8), uint8(l))
}

func (l LocationAreaCode) equal(o CellID) bool {
	x, ok := o.(LocationAreaCode)
	return ok && l == x
}

func (l LocationAreaCode) String() string { return fmt.Sprintf("%d", uint16(l)) }

// decodeCellID decodes one identification of the given discriminator. b must
// hold exactly the discriminator's entry length.
func decodeCellID(d CellIdentDiscr, b []byte) CellID {
	switch d {
	case CellIdentWholeGlobal:
		return GlobalCellID{LAI: decodeLAI(b), CI: uint16(b[5])<<8 | uint16(b[6])}
	case CellIdentLACAndCI:
		return LACAndCI{LAC: uint16(b[0])<<8 | uint16(b[1]), CI: uint16(b[2])<<8 | uint16(b[3])}
	case CellIdentCI:
		return CellIdentity(uint16(b[0])<<8 | uint16(b[1]))
	case CellIdentLAIAndLAC:
		return LAIAndLAC(decodeLAI(b))
	case CellIdentLAC:
		return LocationAreaCode(uint16(b[0])<<8 | uint16(b[1]))
	}
	return nil
}

// CellIdentifier is the Cell Identifier IE. ID is nil for the No-Cell and
// BSS discriminators.
type CellIdentifier struct {
	Discr CellIdentDiscr
	ID    CellID
}

// NewCellIdentifier returns the Cell Identifier IE carrying id
func NewCellIdentifier(id CellID) CellIdentifier {
	return CellIdentifier{Discr: id.Discriminator(), ID: id}
}

func (c CellIdentifier) Tag() uint8 { return IECellIdentifier }

func (c CellIdentifier) Len() int {
	n, _ := c.Discr.entryLen()
	return 1 + n
}

func (c CellIdentifier) AppendValue(b []byte) ([]byte, error) {
	n, ok := c.Discr.entryLen()
	if !ok {
		return b, ErrInvalidDiscriminator{IE: "Cell Identifier", Value: uint8(c.Discr)}
	}
	if n == 0 {
		if c.ID != nil {
			return b, ErrInvalidValue{IE: "Cell Identifier", Reason: fmt.Sprintf("%s carries no identification", c.Discr)}
		}
		return append(b, uint8(c.Discr)), nil
	}
	if c.ID == nil || c.ID.Discriminator() != c.Discr {
		return b, ErrInvalidValue{IE: "Cell Identifier", Reason: fmt.Sprintf("identification does not match discriminator %s", c.Discr)}
	}
	b = append(b, uint8(c.Discr))
	return c.ID.appendTo(b), nil
}

// Equal compares two cell identifiers
func (c CellIdentifier) Equal(o CellIdentifier) bool {
	if c.Discr != o.Discr {
		return false
	}
	if c.ID == nil || o.ID == nil {
		return c.ID == nil && o.ID == nil
	}
	return c.ID.equal(o.ID)
}

func (c CellIdentifier) String() string {
	if c.ID == nil {
		return c.Discr.String()
	}
	return fmt.Sprintf("%s:%s", c.Discr, c.ID)
}

// DecodeCellIdentifier decodes the value part of a Cell Identifier IE. The
// remaining length must match the discriminator exactly.
func DecodeCellIdentifier(b []byte) (CellIdentifier, int, error) {
	l, n, err := DecodeCellIdentifierList(b)
	if err != nil {
		return CellIdentifier{}, 0, err
	}
	want := 1
	if sz, _ := l.Discr.entryLen(); sz == 0 {
		want = 0
	}
	if l.Count() != want {
		return CellIdentifier{}, 0, ErrInvalidLength{IE: "Cell Identifier", Length: len(b),
			Reason: fmt.Sprintf("%s needs exactly one identification", l.Discr)}
	}
	c := CellIdentifier{Discr: l.Discr}
	if want == 1 {
		c.ID = l.At(0)
	}
	return c, n, nil
}

// CellIdentifierListMaxLen bounds the number of entries of a list
const CellIdentifierListMaxLen = 127

// CellIdentifierList is the Cell Identifier List IE. All entries share the
// list discriminator.
type CellIdentifierList struct {
	Discr CellIdentDiscr
	ids   []CellID
}

// NewCellIdentifierList builds a list of the given discriminator from ids
func NewCellIdentifierList(discr CellIdentDiscr, ids ...CellID) (*CellIdentifierList, error) {
	if _, ok := discr.entryLen(); !ok {
		return nil, ErrInvalidDiscriminator{IE: "Cell Identifier List", Value: uint8(discr)}
	}
	l := &CellIdentifierList{Discr: discr}
	for _, id := range ids {
		if err := l.Append(id); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// Count returns the number of identifications in the list
func (l *CellIdentifierList) Count() int {
	return len(l.ids)
}

// At returns the i-th identification
func (l *CellIdentifierList) At(i int) CellID {
	return l.ids[i]
}

// Append adds id at the end of the list
func (l *CellIdentifierList) Append(id CellID) error {
	if sz, _ := l.Discr.entryLen(); sz == 0 {
		return ErrIncompatibleMerge{Dst: l.Discr, Src: id.Discriminator()}
	}
	if id.Discriminator() != l.Discr {
		return ErrIncompatibleMerge{Dst: l.Discr, Src: id.Discriminator()}
	}
	if len(l.ids) >= CellIdentifierListMaxLen {
		return ErrCapacityExceeded{What: "Cell Identifier List", Max: CellIdentifierListMaxLen, Have: len(l.ids) + 1}
	}
	l.ids = append(l.ids, id)
	return nil
}

func (l *CellIdentifierList) contains(id CellID) bool {
	for _, x := range l.ids {
		if x.equal(id) {
			return true
		}
	}
	return false
}

// Add merges the entries of src into l, skipping entries already present,
// and returns how many were added. An empty list takes on the source
// discriminator; a BSS list accepts nothing. On error l is left unchanged.
func (l *CellIdentifierList) Add(src *CellIdentifierList) (int, error) {
	if l.Discr == CellIdentBSS {
		return 0, ErrIncompatibleMerge{Dst: l.Discr, Src: src.Discr}
	}
	discr := l.Discr
	if len(l.ids) == 0 {
		discr = src.Discr
	} else if l.Discr != src.Discr {
		return 0, ErrIncompatibleMerge{Dst: l.Discr, Src: src.Discr}
	}

	var fresh []CellID
	for _, id := range src.ids {
		if l.contains(id) {
			continue
		}
		dup := false
		for _, f := range fresh {
			if f.equal(id) {
				dup = true
				break
			}
		}
		if !dup {
			fresh = append(fresh, id)
		}
	}
	if len(l.ids)+len(fresh) > CellIdentifierListMaxLen {
		return 0, ErrCapacityExceeded{What: "Cell Identifier List", Max: CellIdentifierListMaxLen, Have: len(l.ids) + len(fresh)}
	}
	l.Discr = discr
	l.ids = append(l.ids, fresh...)
	return len(fresh), nil
}

func (l *CellIdentifierList) Tag() uint8 { return IECellIdentifierList }

func (l *CellIdentifierList) Len() int {
	n, _ := l.Discr.entryLen()
	return 1 + n*len(l.ids)
}

func (l *CellIdentifierList) AppendValue(b []byte) ([]byte, error) {
	sz, ok := l.Discr.entryLen()
	if !ok {
		return b, ErrInvalidDiscriminator{IE: "Cell Identifier List", Value: uint8(l.Discr)}
	}
	if len(l.ids) > CellIdentifierListMaxLen {
		return b, ErrCapacityExceeded{What: "Cell Identifier List", Max: CellIdentifierListMaxLen, Have: len(l.ids)}
	}
	if sz == 0 && len(l.ids) > 0 {
		return b, ErrInvalidValue{IE: "Cell Identifier List", Reason: fmt.Sprintf("%s list carries no identifications", l.Discr)}
	}
	b = append(b, uint8(l.Discr))
	for _, id := range l.ids {
		if id.Discriminator() != l.Discr {
			return b, ErrInvalidValue{IE: "Cell Identifier List", Reason: fmt.Sprintf("%s entry in %s list", id.Discriminator(), l.Discr)}
		}
		b = id.appendTo(b)
	}
	return b, nil
}

// Equal compares two lists entry by entry
func (l *CellIdentifierList) Equal(o *CellIdentifierList) bool {
	if l.Discr != o.Discr || len(l.ids) != len(o.ids) {
		return false
	}
	for i := range l.ids {
		if !l.ids[i].equal(o.ids[i]) {
			return false
		}
	}
	return true
}

// String renders the list as e.g. "LAC[3]:{123, 456, 789}"
func (l *CellIdentifierList) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s[%d]", l.Discr, len(l.ids))
	if sz, _ := l.Discr.entryLen(); sz == 0 {
		return sb.String()
	}
	sb.WriteString(":{")
	for i, id := range l.ids {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(id.String())
	}
	sb.WriteString("}")
	return sb.String()
}

// DecodeCellIdentifierList decodes the value part of a Cell Identifier List
// IE. The identifications must fill the remaining input exactly.
func DecodeCellIdentifierList(b []byte) (*CellIdentifierList, int, error) {
	if len(b) < 1 {
		return nil, 0, ErrTruncated{IE: "Cell Identifier List", Need: 1, Have: 0}
	}
	discr := CellIdentDiscr(b[0] & 0x0f)
	sz, ok := discr.entryLen()
	if !ok {
		return nil, 0, ErrInvalidDiscriminator{IE: "Cell Identifier List", Value: b[0] & 0x0f}
	}
	rest := b[1:]
	l := &CellIdentifierList{Discr: discr}
	if sz == 0 {
		if len(rest) != 0 {
			return nil, 0, ErrInvalidLength{IE: "Cell Identifier List", Length: len(b),
				Reason: fmt.Sprintf("%s carries no identifications", discr)}
		}
		return l, 1, nil
	}
	if len(rest)%sz != 0 {
		return nil, 0, ErrInvalidLength{IE: "Cell Identifier List", Length: len(b),
			Reason: fmt.Sprintf("%d trailing bytes do not form a %s entry of %d bytes", len(rest)%sz, discr, sz)}
	}
	if len(rest)/sz > CellIdentifierListMaxLen {
		return nil, 0, ErrCapacityExceeded{What: "Cell Identifier List", Max: CellIdentifierListMaxLen, Have: len(rest) / sz}
	}
	l.ids = make([]CellID, 0, len(rest)/sz)
	for off := 0; off+sz <= len(rest); off += sz {
		l.ids = append(l.ids, decodeCellID(discr, rest[off:off+sz]))
	}
	return l, len(b), nil
}
