package metrics

import (
	"fmt"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/hsdfat8/bssap/commands/bssmap"
)

// CodeDecodeError counts inputs that did not decode. It lies outside the
// range of bssmap.Code.
const CodeDecodeError uint32 = 0xffff

// MessageTypeMetrics counts messages per kind, keyed by bssmap.Code
type MessageTypeMetrics struct {
	counters map[uint32]*atomic.Uint64
	mu       sync.RWMutex
}

// NewMessageTypeMetrics creates a new MessageTypeMetrics instance
func NewMessageTypeMetrics() *MessageTypeMetrics {
	return &MessageTypeMetrics{
		counters: make(map[uint32]*atomic.Uint64),
	}
}

// Increment increments the counter for a message code
func (m *MessageTypeMetrics) Increment(code uint32) {
	m.mu.Lock()
	counter, exists := m.counters[code]
	if !exists {
		counter = &atomic.Uint64{}
		m.counters[code] = counter
	}
	m.mu.Unlock()
	counter.Add(1)
}

// Observe counts a decoded message
func (m *MessageTypeMetrics) Observe(msg bssmap.Message) {
	m.Increment(bssmap.Code(msg))
}

// Get returns the count for a message code
func (m *MessageTypeMetrics) Get(code uint32) uint64 {
	m.mu.RLock()
	counter, exists := m.counters[code]
	m.mu.RUnlock()

	if !exists {
		return 0
	}
	return counter.Load()
}

// GetAll returns a snapshot of all counters
func (m *MessageTypeMetrics) GetAll() map[uint32]uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make(map[uint32]uint64)
	for code, counter := range m.counters {
		result[code] = counter.Load()
	}
	return result
}

// Reset clears all counters
func (m *MessageTypeMetrics) Reset() {
	m.mu.Lock()
	m.counters = make(map[uint32]*atomic.Uint64)
	m.mu.Unlock()
}

// MessageTypeName maps a message code to a human-readable name
func MessageTypeName(code uint32) string {
	switch {
	case code == CodeDecodeError:
		return "DECODE ERROR"
	case code == uint32(bssmap.DiscrDTAP)<<8:
		return "DTAP"
	case code <= 0xff:
		return bssmap.MessageType(code).String()
	}
	return fmt.Sprintf("CODE_0x%04x", code)
}

func sortedCodes(counters map[uint32]uint64) []uint32 {
	codes := make([]uint32, 0, len(counters))
	for code := range counters {
		codes = append(codes, code)
	}
	slices.Sort(codes)
	return codes
}

// FormatMetrics formats the metrics as a table, ordered by message code
func FormatMetrics(direction string, metrics *MessageTypeMetrics) string {
	var output string
	counters := metrics.GetAll()

	output = fmt.Sprintf("\n%s Metrics by Message Type:\n", direction)
	output += "┌─────────────────────────────────┬───────────┐\n"
	output += "│ Message Type                    │ Count     │\n"
	output += "├─────────────────────────────────┼───────────┤\n"

	total := uint64(0)
	for _, code := range sortedCodes(counters) {
		count := counters[code]
		output += fmt.Sprintf("│ %-31s │ %9d │\n", MessageTypeName(code), count)
		total += count
	}

	output += "├─────────────────────────────────┼───────────┤\n"
	output += fmt.Sprintf("│ %-31s │ %9d │\n", "TOTAL", total)
	output += "└─────────────────────────────────┴───────────┘\n"

	return output
}

// CompactMetrics formats the metrics in a single line
func CompactMetrics(direction string, metrics *MessageTypeMetrics) string {
	output := fmt.Sprintf("%s: ", direction)
	counters := metrics.GetAll()
	total := uint64(0)

	for _, code := range sortedCodes(counters) {
		if count := counters[code]; count > 0 {
			output += fmt.Sprintf("[%s=%d] ", MessageTypeName(code), count)
			total += count
		}
	}

	output += fmt.Sprintf("(Total=%d)", total)
	return output
}
