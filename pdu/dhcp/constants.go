/* libtins-go - a packet crafting and interpretation library
 *
 * Copyright (C) 2026 Adrian Costin.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package dhcp

// MessageType is the DHCP message type carried in option 53.
type MessageType uint8

// DHCP message types.
const (
	Discover MessageType = iota + 1
	Offer
	Request
	Decline
	Ack
	Nak
	Release
	Inform
)

func (t MessageType) String() string {
	switch t {
	case Discover:
		return "DISCOVER"
	case Offer:
		return "OFFER"
	case Request:
		return "REQUEST"
	case Decline:
		return "DECLINE"
	case Ack:
		return "ACK"
	case Nak:
		return "NAK"
	case Release:
		return "RELEASE"
	case Inform:
		return "INFORM"
	default:
		return "UNKNOWN"
	}
}

// Well-known DHCP option tags.
const (
	OptionPad                  uint8 = 0
	OptionSubnetMask           uint8 = 1
	OptionRouters              uint8 = 3
	OptionDomainNameServers    uint8 = 6
	OptionHostName             uint8 = 12
	OptionDomainName           uint8 = 15
	OptionBroadcastAddress     uint8 = 28
	OptionRequestedAddress     uint8 = 50
	OptionLeaseTime            uint8 = 51
	OptionMessageType          uint8 = 53
	OptionServerIdentifier     uint8 = 54
	OptionParameterRequestList uint8 = 55
	OptionRenewalTime          uint8 = 58
	OptionRebindingTime        uint8 = 59
	OptionEnd                  uint8 = 255
)

// MaxMessageSize is the maximum total serialized size of a DHCP header,
// the minimal maximum message size every RFC 2131 implementation accepts.
const MaxMessageSize = 576

// magicCookie introduces the options field of a DHCP message.
var magicCookie = [4]byte{99, 130, 83, 99}
