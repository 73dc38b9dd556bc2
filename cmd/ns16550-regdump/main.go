// cmd/ns16550-regdump/main.go
// Prints the register encodings the driver programs for each symbolic
// configuration value, by running Init against the software model and
// reading the latched registers back.

//go:build !tinygo && !baremetal

package main

import (
	"fmt"

	"github.com/jangala-dev/tinygo-ns16550/ns16550"
	"github.com/jangala-dev/tinygo-ns16550/sim"
)

const base uintptr = 0x1000_0000

func lcrFor(dev *sim.UART, u *ns16550.UART, cfg ns16550.Config) byte {
	u.Init(cfg)
	return dev.LCR()
}

func main() {
	dev := sim.New()
	ns16550.Map(base, dev)
	defer ns16550.Unmap(base)
	u := ns16550.New(base)

	fmt.Println("LCR by word length (one stop bit, no parity):")
	for wl := ns16550.WordLength5; wl <= ns16550.WordLength8; wl++ {
		fmt.Printf("  %d data bits: %#02x\n", 5+int(wl),
			lcrFor(dev, u, ns16550.Config{WordLength: wl}))
	}

	fmt.Println("LCR framing variants (8 data bits):")
	variants := []struct {
		name string
		cfg  ns16550.Config
	}{
		{"long stop", ns16550.Config{WordLength: ns16550.WordLength8, StopBits: ns16550.StopBitsLong}},
		{"odd parity", ns16550.Config{WordLength: ns16550.WordLength8, Parity: ns16550.ParityEnable}},
		{"even parity", ns16550.Config{WordLength: ns16550.WordLength8, Parity: ns16550.ParityEnable, ParitySelect: ns16550.ParityEven}},
		{"stick parity", ns16550.Config{WordLength: ns16550.WordLength8, Parity: ns16550.ParityEnable, StickParity: ns16550.StickParityEnable}},
		{"break", ns16550.Config{WordLength: ns16550.WordLength8, Break: ns16550.BreakEnable}},
	}
	for _, v := range variants {
		fmt.Printf("  %-12s %#02x\n", v.name, lcrFor(dev, u, v.cfg))
	}

	fmt.Println("FCR by DMA mode:")
	for _, mode := range []ns16550.DMAMode{ns16550.DMAMode0, ns16550.DMAMode1} {
		u.Init(ns16550.Config{WordLength: ns16550.WordLength8, DMAMode: mode})
		fmt.Printf("  mode %d: %#02x\n", mode, dev.FCR())
	}

	fmt.Println("Divisor by symbolic rate (1.8432 MHz reference):")
	rates := []struct {
		name string
		baud ns16550.Baud
	}{
		{"300", ns16550.Baud300}, {"600", ns16550.Baud600},
		{"1200", ns16550.Baud1200}, {"2400", ns16550.Baud2400},
		{"4800", ns16550.Baud4800}, {"9600", ns16550.Baud9600},
		{"19200", ns16550.Baud19200}, {"38400", ns16550.Baud38400},
		{"57600", ns16550.Baud57600}, {"115200", ns16550.Baud115200},
	}
	for _, r := range rates {
		u.Init(ns16550.Config{WordLength: ns16550.WordLength8, Baud: r.baud})
		fmt.Printf("  %-6s %d\n", r.name, dev.Divisor())
	}
}
