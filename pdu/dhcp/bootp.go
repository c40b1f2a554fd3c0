/* libtins-go - a packet crafting and interpretation library
 *
 * Copyright (C) 2026 Adrian Costin.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package dhcp

import (
	"encoding/binary"
	"net"

	"golang.org/x/exp/slices"

	"github.com/adriancostin6/libtins/pdu"
)

// Wire opcodes.
const (
	BootRequest uint8 = 1
	BootReply   uint8 = 2
)

const (
	bootpHeaderLen = 236

	chaddrLen = 16
	snameLen  = 64
	fileLen   = 128
)

// BootP holds the fixed 236-byte bootstrap-protocol header that precedes the
// DHCP options. Multi-byte fields use network byte order on the wire.
type BootP struct {
	Opcode         uint8
	HardwareType   uint8
	HardwareLen    uint8
	Hops           uint8
	TransactionID  uint32
	SecondsElapsed uint16
	Flags          uint16
	ClientIP       net.IP
	YourIP         net.IP
	ServerIP       net.IP
	GatewayIP      net.IP
	ClientHWAddr   net.HardwareAddr
	ServerName     []byte
	BootFile       []byte
}

func (b *BootP) parse(v *pdu.View) error {
	fixed, err := v.ReadBytes(bootpHeaderLen)
	if err != nil {
		return pdu.NewParseError("BootP", "fixed header", err)
	}
	b.Opcode = fixed[0]
	b.HardwareType = fixed[1]
	b.HardwareLen = fixed[2]
	b.Hops = fixed[3]
	b.TransactionID = binary.BigEndian.Uint32(fixed[4:8])
	b.SecondsElapsed = binary.BigEndian.Uint16(fixed[8:10])
	b.Flags = binary.BigEndian.Uint16(fixed[10:12])
	b.ClientIP = net.IP(slices.Clone(fixed[12:16]))
	b.YourIP = net.IP(slices.Clone(fixed[16:20]))
	b.ServerIP = net.IP(slices.Clone(fixed[20:24]))
	b.GatewayIP = net.IP(slices.Clone(fixed[24:28]))
	b.ClientHWAddr = net.HardwareAddr(slices.Clone(fixed[28:44]))
	b.ServerName = slices.Clone(fixed[44:108])
	b.BootFile = slices.Clone(fixed[108:236])
	return nil
}

// write serializes the fixed header into buf, which must hold at least
// bootpHeaderLen bytes. Variable-size fields are padded with zeros to their
// wire widths; overlong ones are truncated.
func (b *BootP) write(buf []byte) {
	buf[0] = b.Opcode
	buf[1] = b.HardwareType
	buf[2] = b.HardwareLen
	buf[3] = b.Hops
	binary.BigEndian.PutUint32(buf[4:8], b.TransactionID)
	binary.BigEndian.PutUint16(buf[8:10], b.SecondsElapsed)
	binary.BigEndian.PutUint16(buf[10:12], b.Flags)
	writeIPv4(buf[12:16], b.ClientIP)
	writeIPv4(buf[16:20], b.YourIP)
	writeIPv4(buf[20:24], b.ServerIP)
	writeIPv4(buf[24:28], b.GatewayIP)
	writePadded(buf[28:44], b.ClientHWAddr)
	writePadded(buf[44:108], b.ServerName)
	writePadded(buf[108:236], b.BootFile)
}

func (b *BootP) deepCopy() BootP {
	out := *b
	out.ClientIP = slices.Clone(b.ClientIP)
	out.YourIP = slices.Clone(b.YourIP)
	out.ServerIP = slices.Clone(b.ServerIP)
	out.GatewayIP = slices.Clone(b.GatewayIP)
	out.ClientHWAddr = slices.Clone(b.ClientHWAddr)
	out.ServerName = slices.Clone(b.ServerName)
	out.BootFile = slices.Clone(b.BootFile)
	return out
}

func writeIPv4(dst []byte, addr net.IP) {
	for i := range dst {
		dst[i] = 0
	}
	if v4 := addr.To4(); v4 != nil {
		copy(dst, v4)
	}
}

func writePadded(dst []byte, src []byte) {
	n := copy(dst, src)
	for i := n; i < len(dst); i++ {
		dst[i] = 0
	}
}
