/* libtins-go - a packet crafting and interpretation library
 *
 * Copyright (C) 2026 Adrian Costin.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

// Package dhcp implements the DHCP PDU: a BootP fixed header followed by a
// magic cookie and an ordered tag-length-value option list. The END option is
// appended automatically on serialization and never appears in the option
// store itself.
package dhcp

import (
	"bytes"
	"net"

	"github.com/adriancostin6/libtins/pdu"
)

// fixedHeaderLen is the BootP header plus the magic cookie.
const fixedHeaderLen = bootpHeaderLen + 4

// DHCP is the DHCP PDU.
type DHCP struct {
	pdu.Base
	BootP
	options pdu.OptionStore
}

// New creates an empty DHCP message with the hardware type and address length
// preset for Ethernet.
func New() *DHCP {
	d := new(DHCP)
	d.HardwareType = 1
	d.HardwareLen = 6
	d.options.SetSizeLimit(MaxMessageSize - fixedHeaderLen - 1)
	return d
}

// Parse constructs a DHCP message from raw bytes: the BootP fixed header, the
// magic cookie, then TLV options up to the END tag. Bytes past END are
// padding and are discarded. A short or malformed buffer yields a ParseError
// and no message.
func Parse(buf []byte) (*DHCP, error) {
	d := New()
	v := pdu.NewView(buf)
	if err := d.BootP.parse(v); err != nil {
		return nil, err
	}
	cookie, err := v.ReadBytes(4)
	if err != nil {
		return nil, pdu.NewParseError("DHCP", "magic cookie", pdu.ErrOutOfBounds)
	}
	if !bytes.Equal(cookie, magicCookie[:]) {
		return nil, pdu.NewParseError("DHCP", "magic cookie", pdu.ErrMalformedOption)
	}
	if err := d.options.Parse(v, OptionEnd); err != nil {
		return nil, pdu.NewParseError("DHCP", "options", err)
	}
	return d, nil
}

// Kind returns the protocol discriminant of this layer.
func (d *DHCP) Kind() pdu.Kind {
	return pdu.DHCP
}

// HeaderSize returns the serialized size of this layer: the fixed header, the
// option records, and the one-byte END terminator.
func (d *DHCP) HeaderSize() int {
	return fixedHeaderLen + d.options.WireSize() + 1
}

// Size returns the serialized size of this layer plus its inner chain.
func (d *DHCP) Size() int {
	return d.HeaderSize() + d.InnerSize()
}

// Clone deep-copies this layer and its inner chain.
func (d *DHCP) Clone() pdu.PDU {
	clone := new(DHCP)
	clone.BootP = d.BootP.deepCopy()
	clone.options = d.options.DeepCopy()
	clone.SetInnerPDU(d.CloneInner())
	return clone
}

// WriteHeader serializes the fixed header, the options in insertion order,
// and the END terminator into the front of buf.
func (d *DHCP) WriteHeader(buf []byte, totalSize int, parent pdu.PDU) error {
	headerSize := d.HeaderSize()
	if len(buf) < headerSize {
		return pdu.ErrOutOfBounds
	}
	d.BootP.write(buf)
	copy(buf[bootpHeaderLen:], magicCookie[:])
	if err := d.options.Write(buf[fixedHeaderLen:]); err != nil {
		return err
	}
	buf[headerSize-1] = OptionEnd
	return nil
}

// AddOption appends an option holding a copy of value. It returns false if
// the option would push the message past MaxMessageSize, if the value cannot
// fit the one-byte length field, or if the tag is the END terminator, which
// is appended automatically and must not be stored.
func (d *DHCP) AddOption(tag uint8, value []byte) bool {
	if tag == OptionEnd {
		return false
	}
	return d.options.Add(tag, value)
}

// SearchOption returns the first option with the specified tag in insertion
// order.
func (d *DHCP) SearchOption(tag uint8) (*pdu.Option, bool) {
	return d.options.Search(tag)
}

// Options returns the stored options in insertion order, without the END
// terminator.
func (d *DHCP) Options() []pdu.Option {
	return d.options.Options()
}

// AddMessageType adds a message type option.
func (d *DHCP) AddMessageType(t MessageType) bool {
	return pdu.AddScalarOption(&d.options, OptionMessageType, uint8(t))
}

// MessageType searches for the message type option.
func (d *DHCP) MessageType() (MessageType, bool) {
	t, ok := pdu.SearchScalarOption[uint8](&d.options, OptionMessageType)
	return MessageType(t), ok
}

// AddServerIdentifier adds a server identifier option.
func (d *DHCP) AddServerIdentifier(addr net.IP) bool {
	return pdu.AddIPv4Option(&d.options, OptionServerIdentifier, addr)
}

// ServerIdentifier searches for the server identifier option.
func (d *DHCP) ServerIdentifier() (net.IP, bool) {
	return pdu.SearchIPv4Option(&d.options, OptionServerIdentifier)
}

// AddLeaseTime adds an address lease time option, in seconds.
func (d *DHCP) AddLeaseTime(seconds uint32) bool {
	return pdu.AddScalarOption(&d.options, OptionLeaseTime, seconds)
}

// LeaseTime searches for the address lease time option.
func (d *DHCP) LeaseTime() (uint32, bool) {
	return pdu.SearchScalarOption[uint32](&d.options, OptionLeaseTime)
}

// AddRenewalTime adds a renewal (T1) time option, in seconds.
func (d *DHCP) AddRenewalTime(seconds uint32) bool {
	return pdu.AddScalarOption(&d.options, OptionRenewalTime, seconds)
}

// RenewalTime searches for the renewal (T1) time option.
func (d *DHCP) RenewalTime() (uint32, bool) {
	return pdu.SearchScalarOption[uint32](&d.options, OptionRenewalTime)
}

// AddRebindingTime adds a rebinding (T2) time option, in seconds.
func (d *DHCP) AddRebindingTime(seconds uint32) bool {
	return pdu.AddScalarOption(&d.options, OptionRebindingTime, seconds)
}

// RebindingTime searches for the rebinding (T2) time option.
func (d *DHCP) RebindingTime() (uint32, bool) {
	return pdu.SearchScalarOption[uint32](&d.options, OptionRebindingTime)
}

// AddSubnetMask adds a subnet mask option.
func (d *DHCP) AddSubnetMask(mask net.IP) bool {
	return pdu.AddIPv4Option(&d.options, OptionSubnetMask, mask)
}

// SubnetMask searches for the subnet mask option.
func (d *DHCP) SubnetMask() (net.IP, bool) {
	return pdu.SearchIPv4Option(&d.options, OptionSubnetMask)
}

// AddBroadcastAddress adds a broadcast address option.
func (d *DHCP) AddBroadcastAddress(addr net.IP) bool {
	return pdu.AddIPv4Option(&d.options, OptionBroadcastAddress, addr)
}

// BroadcastAddress searches for the broadcast address option.
func (d *DHCP) BroadcastAddress() (net.IP, bool) {
	return pdu.SearchIPv4Option(&d.options, OptionBroadcastAddress)
}

// AddRequestedAddress adds a requested IP address option.
func (d *DHCP) AddRequestedAddress(addr net.IP) bool {
	return pdu.AddIPv4Option(&d.options, OptionRequestedAddress, addr)
}

// RequestedAddress searches for the requested IP address option.
func (d *DHCP) RequestedAddress() (net.IP, bool) {
	return pdu.SearchIPv4Option(&d.options, OptionRequestedAddress)
}

// AddRouters adds a routers option holding the addresses in order.
func (d *DHCP) AddRouters(routers []net.IP) bool {
	return pdu.AddIPv4ListOption(&d.options, OptionRouters, routers)
}

// Routers searches for the routers option.
func (d *DHCP) Routers() ([]net.IP, bool) {
	return pdu.SearchIPv4ListOption(&d.options, OptionRouters)
}

// AddDNSServers adds a domain name servers option holding the addresses in
// order.
func (d *DHCP) AddDNSServers(servers []net.IP) bool {
	return pdu.AddIPv4ListOption(&d.options, OptionDomainNameServers, servers)
}

// DNSServers searches for the domain name servers option.
func (d *DHCP) DNSServers() ([]net.IP, bool) {
	return pdu.SearchIPv4ListOption(&d.options, OptionDomainNameServers)
}

// AddDomainName adds a domain name option.
func (d *DHCP) AddDomainName(name string) bool {
	return pdu.AddStringOption(&d.options, OptionDomainName, name)
}

// DomainName searches for the domain name option.
func (d *DHCP) DomainName() (string, bool) {
	return pdu.SearchStringOption(&d.options, OptionDomainName)
}

// AddHostName adds a host name option.
func (d *DHCP) AddHostName(name string) bool {
	return pdu.AddStringOption(&d.options, OptionHostName, name)
}

// HostName searches for the host name option.
func (d *DHCP) HostName() (string, bool) {
	return pdu.SearchStringOption(&d.options, OptionHostName)
}
