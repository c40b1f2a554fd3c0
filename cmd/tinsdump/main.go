/* libtins-go - a packet crafting and interpretation library
 *
 * Copyright (C) 2026 Adrian Costin.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cespare/xxhash"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"

	"github.com/adriancostin6/libtins/core"
	"github.com/adriancostin6/libtins/pdu"
	"github.com/adriancostin6/libtins/pdu/dhcp"
	"github.com/adriancostin6/libtins/pdu/loopback"
)

// Version of tinsdump.
var Version string

// BuildTime contains the timestamp of when this version of tinsdump was built.
var BuildTime string

func main() {
	core.Version = Version
	core.BuildTime = BuildTime

	var shouldPrintVersion bool
	flag.BoolVar(&shouldPrintVersion, "version", false, "Print version and exit")
	flag.BoolVar(&shouldPrintVersion, "V", false, "Print version and exit (short)")
	var configFile string
	flag.StringVar(&configFile, "config", "", "Configuration file (TOML)")
	var captureFile string
	flag.StringVar(&captureFile, "r", "", "Capture file to read (pcap)")
	var shouldDedup bool
	flag.BoolVar(&shouldDedup, "dedup", false, "Skip frames whose bytes were already seen")
	var dhcpFamily uint
	flag.UintVar(&dhcpFamily, "dhcp-family", 0, "Decode loopback payloads with this address family as DHCP")
	flag.Parse()

	if shouldPrintVersion {
		fmt.Println("tinsdump: packet chain decoder")
		fmt.Println("Version " + core.Version + " (Built " + core.BuildTime + ")")
		return
	}

	if captureFile == "" {
		fmt.Println("No capture file specified")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(2)
	}

	if configFile != "" {
		if err := core.LoadConfig(configFile); err != nil {
			fmt.Println("Unable to load configuration file: " + err.Error())
			os.Exit(1)
		}
	}
	core.InitializeLogger()

	file, err := os.Open(captureFile)
	if err != nil {
		core.LogFatal("Main", "Unable to open capture file: ", err)
	}
	defer file.Close()

	reader, err := pcapgo.NewReader(file)
	if err != nil {
		core.LogFatal("Main", "Unable to read capture file: ", err)
	}

	registry := pdu.NewRegistry()
	if dhcpFamily != 0 {
		registry.Register(uint32(dhcpFamily), func(buf []byte) (pdu.PDU, error) {
			return dhcp.Parse(buf)
		})
	}

	seen := make(map[uint64]struct{})
	frame := 0
	decoded := 0
	for {
		data, _, err := reader.ReadPacketData()
		if err == io.EOF {
			break
		}
		if err != nil {
			core.LogError("Main", "Unable to read frame: ", err)
			break
		}
		frame++

		if shouldDedup {
			fingerprint := xxhash.Sum64(data)
			if _, ok := seen[fingerprint]; ok {
				core.LogTrace("Main", "Frame ", frame, " is a duplicate, skipping")
				continue
			}
			seen[fingerprint] = struct{}{}
		}

		var chain pdu.PDU
		switch reader.LinkType() {
		case layers.LinkTypeNull, layers.LinkTypeLoop:
			chain, err = loopback.Parse(data, registry)
			if err != nil {
				core.LogWarn("Main", "Frame ", frame, ": ", err)
				continue
			}
		default:
			chain = pdu.NewRawPDU(data)
		}
		decoded++
		core.LogInfo("Main", "Frame ", frame, ": ", describeChain(chain), " (", chain.Size(), " bytes)")
	}
	core.LogInfo("Main", "Decoded ", decoded, " of ", frame, " frames")
}

func describeChain(p pdu.PDU) string {
	var description strings.Builder
	for layer := p; layer != nil; layer = layer.InnerPDU() {
		if layer != p {
			description.WriteByte('/')
		}
		description.WriteString(layer.Kind().String())
	}
	if d, ok := pdu.Find[*dhcp.DHCP](p); ok {
		if messageType, ok := d.MessageType(); ok {
			description.WriteString(" " + messageType.String())
		}
	}
	return description.String()
}
