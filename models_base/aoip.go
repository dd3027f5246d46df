package models_base

import "net/netip"

// AoIPTransportAddr is the AoIP Transport Layer Address IE, 3GPP TS 48.008
// 3.2.2.102: the IPv4 or IPv6 address followed by the UDP port
type AoIPTransportAddr netip.AddrPort

func (a AoIPTransportAddr) Tag() uint8 { return IEAoIPTransportAddr }

func (a AoIPTransportAddr) Len() int {
	if netip.AddrPort(a).Addr().Unmap().Is4() {
		return 4 + 2
	}
	return 16 + 2
}

func (a AoIPTransportAddr) AppendValue(b []byte) ([]byte, error) {
	ap := netip.AddrPort(a)
	addr := ap.Addr().Unmap()
	switch {
	case addr.Is4():
		v := addr.As4()
		b = append(b, v[:]...)
	case addr.Is6():
		v := addr.As16()
		b = append(b, v[:]...)
	default:
		return b, ErrInvalidValue{IE: "AoIP Transport Layer Address", Reason: "no IP address"}
	}
	return append(b, uint8(ap.Port()>>8), uint8(ap.Port())), nil
}

func (a AoIPTransportAddr) String() string {
	return netip.AddrPort(a).String()
}

// DecodeAoIPTransportAddr decodes the value part of an AoIP Transport Layer
// Address IE. The family follows from the length: 6 for IPv4, 18 for IPv6.
func DecodeAoIPTransportAddr(b []byte) (AoIPTransportAddr, int, error) {
	var addr netip.Addr
	switch len(b) {
	case 6:
		addr = netip.AddrFrom4([4]byte(b[:4]))
	case 18:
		addr = netip.AddrFrom16([16]byte(b[:16]))
	default:
		return AoIPTransportAddr{}, 0, ErrInvalidLength{IE: "AoIP Transport Layer Address", Length: len(b),
			Reason: "want 6 or 18 octets"}
	}
	port := uint16(b[len(b)-2])<<8 | uint16(b[len(b)-1])
	return AoIPTransportAddr(netip.AddrPortFrom(addr, port)), len(b), nil
}
