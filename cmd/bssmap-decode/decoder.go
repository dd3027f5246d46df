package main

import (
	"errors"
	"fmt"
	"io"
	"net"
	"os"

	"github.com/hsdfat8/bssap/commands/bssmap"
	"github.com/hsdfat8/bssap/internal/config"
	"github.com/hsdfat8/bssap/pkg/framing"
	"github.com/hsdfat8/bssap/pkg/logger"
	"github.com/hsdfat8/bssap/pkg/metrics"
	"github.com/hsdfat8/bssap/pkg/pcapdump"
)

// decoder decodes every message of one input and feeds the results into
// the log, the counters and the optional pcap file
type decoder struct {
	format  string
	counts  *metrics.MessageTypeMetrics
	pcap    *pcapdump.Writer
	pcapOut *os.File
	index   int
}

func newDecoder(cfg *config.Config) (*decoder, error) {
	d := &decoder{
		format: cfg.Input.Format,
		counts: metrics.NewMessageTypeMetrics(),
	}
	if cfg.Output.Pcap == "" {
		return d, nil
	}

	f, err := os.Create(cfg.Output.Pcap)
	if err != nil {
		return nil, fmt.Errorf("create pcap file: %w", err)
	}
	udp := cfg.Output.PcapUDP
	w, err := pcapdump.NewWriter(f, pcapdump.Endpoints{
		SrcIP:   net.ParseIP(udp.SrcIP),
		DstIP:   net.ParseIP(udp.DstIP),
		SrcPort: uint16(udp.SrcPort),
		DstPort: uint16(udp.DstPort),
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("write pcap header: %w", err)
	}
	d.pcap, d.pcapOut = w, f
	logger.Log.Infow("Writing decoded messages to pcap", "path", cfg.Output.Pcap)
	return d, nil
}

// run decodes r until it is exhausted. Messages that fail to decode are
// logged and counted; only read errors stop the loop.
func (d *decoder) run(r io.Reader) error {
	if d.format == config.FormatBinary {
		return d.runBinary(r)
	}
	return d.runHex(r)
}

func (d *decoder) runHex(r io.Reader) error {
	hr := framing.NewHexReader(r)
	for {
		b, err := hr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			var he framing.ErrHexLine
			if errors.As(err, &he) {
				// bad hex on one line does not end the input
				logger.Log.Warnw("Skipping unreadable line", "error", err)
				d.counts.Increment(metrics.CodeDecodeError)
				continue
			}
			return err
		}
		d.handle(b)
	}
}

func (d *decoder) runBinary(r io.Reader) error {
	for {
		m, err := framing.ReadMessage(r)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			d.counts.Increment(metrics.CodeDecodeError)
			return err
		}
		d.handle(m.Raw)
	}
}

// handle decodes one message
func (d *decoder) handle(raw []byte) {
	d.index++
	msg, err := bssmap.Decode(raw)
	if err != nil {
		d.counts.Increment(metrics.CodeDecodeError)
		logger.WithFields("msg_index", d.index).Warnw("Failed to decode message", "data", fmt.Sprintf("% x", raw), "error", err)
		return
	}

	d.counts.Observe(msg)
	logger.ForMessage(d.index, metrics.MessageTypeName(bssmap.Code(msg))).Infow("Decoded message", "len", len(raw), "content", msg.String())

	if d.pcap != nil {
		if err := d.pcap.WritePacket(raw); err != nil {
			logger.Log.Errorw("Failed to write pcap packet", "msg_index", d.index, "error", err)
		}
	}
}

func (d *decoder) failures() uint64 {
	return d.counts.Get(metrics.CodeDecodeError)
}

func (d *decoder) printSummary(w io.Writer) {
	fmt.Fprint(w, metrics.FormatMetrics("Decoded", d.counts))
	logger.Log.Infow(metrics.CompactMetrics("Decoded", d.counts))
}

func (d *decoder) close() error {
	if d.pcapOut == nil {
		return nil
	}
	return d.pcapOut.Close()
}
