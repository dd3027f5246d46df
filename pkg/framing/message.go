package framing

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/hsdfat8/bssap/commands/bssmap"
	"github.com/hsdfat8/bssap/models_base"
)

// Message is one BSSAP message cut from a byte stream
type Message struct {
	Header bssmap.Header
	// Raw holds the header followed by the payload
	Raw []byte
}

// Payload returns the octets after the BSSAP header
func (m *Message) Payload() []byte {
	return m.Raw[m.Header.Len():]
}

// Buffer pool for message reading
var readerBufferPool sync.Pool

const (
	// header plus the largest payload a one octet length can announce
	maxMessageLength = 3 + 0xff
)

func newReaderBuffer() *bytes.Buffer {
	if v := readerBufferPool.Get(); v != nil {
		return v.(*bytes.Buffer)
	}
	return bytes.NewBuffer(make([]byte, maxMessageLength))
}

func putReaderBuffer(b *bytes.Buffer) {
	if cap(b.Bytes()) == maxMessageLength {
		readerBufferPool.Put(b)
	}
}

// ReadMessage reads one BSSAP message from the reader. It returns io.EOF
// when the stream ends exactly between two messages and
// io.ErrUnexpectedEOF when it ends inside one.
func ReadMessage(reader io.Reader) (*Message, error) {
	buf := newReaderBuffer()
	defer putReaderBuffer(buf)
	b := buf.Bytes()[:maxMessageLength]

	if _, err := io.ReadFull(reader, b[:1]); err != nil {
		return nil, err
	}
	hdrLen := 2
	switch bssmap.Discriminator(b[0]) {
	case bssmap.DiscrBSSMAP:
	case bssmap.DiscrDTAP:
		hdrLen = 3
	default:
		return nil, models_base.ErrInvalidDiscriminator{IE: "BSSAP discriminator", Value: b[0]}
	}

	if _, err := io.ReadFull(reader, b[1:hdrLen]); err != nil {
		return nil, fmt.Errorf("read header: %w", eofInMessage(err))
	}
	bodyLen := int(b[hdrLen-1])
	n, err := io.ReadFull(reader, b[hdrLen:hdrLen+bodyLen])
	if err != nil {
		return nil, fmt.Errorf("read body: %w, %d of %d bytes read", eofInMessage(err), n, bodyLen)
	}

	m := &Message{Raw: make([]byte, hdrLen+bodyLen)}
	copy(m.Raw, b)
	h, _, err := bssmap.ParseHeader(m.Raw)
	if err != nil {
		return nil, err
	}
	m.Header = h
	return m, nil
}

func eofInMessage(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}

// ErrHexLine reports a line of hex input that is not valid hex
type ErrHexLine struct {
	Line int
	Err  error
}

func (e ErrHexLine) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e ErrHexLine) Unwrap() error {
	return e.Err
}

// HexReader yields one message per line of hex text. Blank lines and lines
// starting with '#' are skipped; whitespace and ':' between octets are
// ignored.
type HexReader struct {
	sc   *bufio.Scanner
	line int
}

// NewHexReader returns a HexReader reading from r
func NewHexReader(r io.Reader) *HexReader {
	return &HexReader{sc: bufio.NewScanner(r)}
}

// Line returns the line number of the last message returned
func (h *HexReader) Line() int {
	return h.line
}

// Next returns the octets of the next non-empty line, or io.EOF
func (h *HexReader) Next() ([]byte, error) {
	for h.sc.Scan() {
		h.line++
		text := strings.TrimSpace(h.sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		text = strings.NewReplacer(" ", "", "\t", "", ":", "").Replace(text)
		b, err := hex.DecodeString(text)
		if err != nil {
			return nil, ErrHexLine{Line: h.line, Err: err}
		}
		return b, nil
	}
	if err := h.sc.Err(); err != nil {
		return nil, err
	}
	return nil, io.EOF
}
