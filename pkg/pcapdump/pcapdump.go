package pcapdump

import (
	"io"
	"net"
	"sync"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"
)

const snapLen = 65536

// Endpoints are the addresses written into every frame
type Endpoints struct {
	SrcIP   net.IP
	DstIP   net.IP
	SrcPort uint16
	DstPort uint16
}

// DefaultEndpoints is used when NewWriter gets a zero Endpoints
var DefaultEndpoints = Endpoints{
	SrcIP:   net.IPv4(10, 0, 0, 1),
	DstIP:   net.IPv4(10, 0, 0, 2),
	SrcPort: 2905,
	DstPort: 2905,
}

// Writer writes BSSAP messages as Ethernet/IPv4/UDP frames into a pcap
// stream, one message per frame
type Writer struct {
	mu  sync.Mutex
	w   *pcapgo.Writer
	ep  Endpoints
	now func() time.Time
}

// NewWriter writes the pcap file header to w and returns a Writer for it
func NewWriter(w io.Writer, ep Endpoints) (*Writer, error) {
	if ep.SrcIP == nil || ep.DstIP == nil {
		ep = DefaultEndpoints
	}
	pw := pcapgo.NewWriter(w)
	if err := pw.WriteFileHeader(snapLen, layers.LinkTypeEthernet); err != nil {
		return nil, err
	}
	return &Writer{w: pw, ep: ep, now: time.Now}, nil
}

// WritePacket writes payload as one frame
func (w *Writer) WritePacket(payload []byte) error {
	eth := &layers.Ethernet{
		SrcMAC:       net.HardwareAddr{0x00, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e},
		DstMAC:       net.HardwareAddr{0x00, 0x1a, 0x1b, 0x1c, 0x1d, 0x1e},
		EthernetType: layers.EthernetTypeIPv4,
	}
	ip := &layers.IPv4{
		Version:  4,
		IHL:      5,
		TTL:      64,
		Protocol: layers.IPProtocolUDP,
		SrcIP:    w.ep.SrcIP.To4(),
		DstIP:    w.ep.DstIP.To4(),
	}
	udp := &layers.UDP{
		SrcPort: layers.UDPPort(w.ep.SrcPort),
		DstPort: layers.UDPPort(w.ep.DstPort),
	}
	if err := udp.SetNetworkLayerForChecksum(ip); err != nil {
		return err
	}

	buf := gopacket.NewSerializeBuffer()
	opts := gopacket.SerializeOptions{FixLengths: true, ComputeChecksums: true}
	if err := gopacket.SerializeLayers(buf, opts, eth, ip, udp, gopacket.Payload(payload)); err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	ci := gopacket.CaptureInfo{
		Timestamp:     w.now(),
		CaptureLength: len(buf.Bytes()),
		Length:        len(buf.Bytes()),
	}
	return w.w.WritePacket(ci, buf.Bytes())
}

// ReadPayloads returns the UDP payloads of every frame in a pcap stream
func ReadPayloads(r io.Reader) ([][]byte, error) {
	pr, err := pcapgo.NewReader(r)
	if err != nil {
		return nil, err
	}
	var out [][]byte
	for {
		data, _, err := pr.ReadPacketData()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		pkt := gopacket.NewPacket(data, layers.LayerTypeEthernet, gopacket.Default)
		if udp, ok := pkt.Layer(layers.LayerTypeUDP).(*layers.UDP); ok {
			out = append(out, append([]byte(nil), udp.Payload...))
		}
	}
}
