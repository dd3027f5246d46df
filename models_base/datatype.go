package models_base

// Type is implemented by every information element value that is framed as
// tag + length + value on the wire.
type Type interface {
	// Tag returns the IE identifier written in front of the value
	Tag() uint8
	// Len returns the length of the value part, without tag and length octets
	Len() int
	// AppendValue appends the value part to b
	AppendValue(b []byte) ([]byte, error)
	String() string
}

// maxValueLen is the largest value a one-octet length field can describe
const maxValueLen = 0xff

// AppendIE appends t as a complete TLV element to b
func AppendIE(b []byte, t Type) ([]byte, error) {
	n := t.Len()
	if n > maxValueLen {
		return b, ErrCapacityExceeded{What: TagName(t.Tag()), Max: maxValueLen, Have: n}
	}
	start := len(b)
	b = append(b, t.Tag(), 0)
	b, err := t.AppendValue(b)
	if err != nil {
		return b[:start], err
	}
	written := len(b) - start - 2
	if written > maxValueLen {
		return b[:start], ErrCapacityExceeded{What: TagName(t.Tag()), Max: maxValueLen, Have: written}
	}
	b[start+1] = uint8(written)
	return b, nil
}

// Serialize returns t encoded as a complete TLV element
func Serialize(t Type) ([]byte, error) {
	return AppendIE(make([]byte, 0, t.Len()+2), t)
}

// AppendTLV appends a raw tag/length/value element
func AppendTLV(b []byte, tag uint8, value []byte) ([]byte, error) {
	if len(value) > maxValueLen {
		return b, ErrCapacityExceeded{What: TagName(tag), Max: maxValueLen, Have: len(value)}
	}
	b = append(b, tag, uint8(len(value)))
	return append(b, value...), nil
}

// AppendTV appends a tag followed by a fixed-size value
func AppendTV(b []byte, tag uint8, value ...byte) []byte {
	b = append(b, tag)
	return append(b, value...)
}

// AppendT appends a tag-only element
func AppendT(b []byte, tag uint8) []byte {
	return append(b, tag)
}
