package models_base

import "fmt"

// TLVKind selects how an element is framed on the wire
type TLVKind uint8

const (
	// KindTLV is tag, one-octet length, value
	KindTLV TLVKind = iota
	// KindTV is tag followed by a single value octet
	KindTV
	// KindFixed is tag followed by a value of TLVDef.Len octets
	KindFixed
	// KindT is a tag without length or value
	KindT
)

// TLVDef describes the framing of a single tag
type TLVDef struct {
	Kind TLVKind
	Len  int
}

// valueLen returns the implicit value length for non-TLV kinds
func (d TLVDef) valueLen() int {
	switch d.Kind {
	case KindTV:
		return 1
	case KindFixed:
		return d.Len
	}
	return 0
}

// TLVDefinitions maps every possible tag to its framing. The zero value
// treats every tag as TLV.
type TLVDefinitions struct {
	def [256]TLVDef
}

// Set defines the framing of tag
func (d *TLVDefinitions) Set(tag uint8, def TLVDef) {
	d.def[tag] = def
}

// Get returns the framing of tag
func (d *TLVDefinitions) Get(tag uint8) TLVDef {
	return d.def[tag]
}

// TLVElement is one decoded element. Value aliases the parsed input.
type TLVElement struct {
	Tag   uint8
	Value []byte
}

// TLVParsed is the result of walking a byte range of elements
type TLVParsed struct {
	Elements []TLVElement
	// index+1 of the first occurrence of each tag, 0 when absent
	first [256]int32
}

// WalkTLV calls fn for each element found in b, in wire order. Walking stops
// at the first framing error or at the first error returned by fn.
func WalkTLV(b []byte, defs *TLVDefinitions, fn func(tag uint8, value []byte) error) error {
	if defs == nil {
		defs = &TLVDefinitions{}
	}
	pos := 0
	for pos < len(b) {
		tag := b[pos]
		def := defs.Get(tag)
		pos++

		var n int
		if def.Kind == KindTLV {
			if pos >= len(b) {
				return ErrTruncated{IE: TagName(tag), Need: 1, Have: 0}
			}
			n = int(b[pos])
			pos++
		} else {
			n = def.valueLen()
		}

		if n > len(b)-pos {
			return ErrTruncated{IE: TagName(tag), Need: n, Have: len(b) - pos}
		}
		if err := fn(tag, b[pos:pos+n:pos+n]); err != nil {
			return err
		}
		pos += n
	}
	return nil
}

// ParseTLV parses all elements in b
func ParseTLV(b []byte, defs *TLVDefinitions) (*TLVParsed, error) {
	p := &TLVParsed{}
	err := WalkTLV(b, defs, func(tag uint8, value []byte) error {
		if p.first[tag] == 0 {
			p.first[tag] = int32(len(p.Elements) + 1)
		}
		p.Elements = append(p.Elements, TLVElement{Tag: tag, Value: value})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Present reports whether tag occurred at least once
func (p *TLVParsed) Present(tag uint8) bool {
	return p.first[tag] != 0
}

// Get returns the value of the first occurrence of tag
func (p *TLVParsed) Get(tag uint8) ([]byte, bool) {
	i := p.first[tag]
	if i == 0 {
		return nil, false
	}
	return p.Elements[i-1].Value, true
}

// GetFixed returns the value of tag if present. A value other than n octets
// long is an ErrInvalidLength.
func (p *TLVParsed) GetFixed(tag uint8, n int) ([]byte, bool, error) {
	v, ok := p.Get(tag)
	if !ok {
		return nil, false, nil
	}
	if len(v) != n {
		return nil, true, ErrInvalidLength{IE: TagName(tag), Length: len(v), Reason: fmt.Sprintf("want %d octets", n)}
	}
	return v, true, nil
}

func (p *TLVParsed) String() string {
	s := "["
	for i, e := range p.Elements {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("%s(%d)", TagName(e.Tag), len(e.Value))
	}
	return s + "]"
}
