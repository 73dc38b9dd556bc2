// cmd/ns16550-selftest/main.go
// Host self-test: maps a software NS16550A model behind the driver, runs the
// configuration and transfer paths, and verifies the register traffic.

//go:build !tinygo && !baremetal

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jangala-dev/tinygo-ns16550/ns16550"
	"github.com/jangala-dev/tinygo-ns16550/sim"
)

var (
	base    = flag.Uint64("base", 0x1000_0000, "register window base address")
	verbose = flag.Bool("v", false, "print the recorded register traffic")
)

var failures int

func check(name string, ok bool, detail string) {
	if ok {
		fmt.Printf("PASS %s\n", name)
		return
	}
	failures++
	fmt.Printf("FAIL %s: %s\n", name, detail)
}

func dumpTrace(dev *sim.UART) {
	if !*verbose {
		return
	}
	for _, a := range dev.Trace() {
		op := "load "
		if a.Op == sim.OpStore {
			op = "store"
		}
		fmt.Printf("  %s +%d = %#02x\n", op, a.Off, a.Val)
	}
}

func main() {
	flag.Parse()

	dev := sim.New()
	ns16550.Map(uintptr(*base), dev)
	defer ns16550.Unmap(uintptr(*base))
	u := ns16550.New(uintptr(*base))

	check("probe", u.Probe(), "scratch register did not latch")
	dev.ResetTrace()

	u.Init(ns16550.Config{
		WordLength: ns16550.WordLength8,
		StopBits:   ns16550.StopBits1,
		Parity:     ns16550.ParityDisable,
		DMAMode:    ns16550.DMAMode0,
		Baud:       ns16550.Baud1200,
	})
	dumpTrace(dev)
	check("init lcr", dev.LCR() == 0x03,
		fmt.Sprintf("LCR = %#02x, want 0x03", dev.LCR()))
	check("init fcr", dev.FCR() == 0x01,
		fmt.Sprintf("FCR = %#02x, want 0x01", dev.FCR()))
	check("init divisor", dev.Divisor() == 96,
		fmt.Sprintf("divisor = %d, want 96", dev.Divisor()))
	check("dlab clear", dev.LCR()&0x80 == 0, "DLAB left set after Init")

	dev.ResetTrace()
	if _, err := u.WriteString("selftest\r\n"); err != nil {
		check("write", false, err.Error())
	} else {
		check("write", string(dev.Transmitted()) == "selftest\r\n",
			fmt.Sprintf("transmitted %q", dev.Transmitted()))
	}
	dumpTrace(dev)

	dev.PushRX('o', 'k')
	b1, ok1 := u.Get()
	b2, ok2 := u.Get()
	_, ok3 := u.Get()
	check("get", ok1 && ok2 && !ok3 && b1 == 'o' && b2 == 'k',
		fmt.Sprintf("got (%q,%v) (%q,%v) pending=%v", b1, ok1, b2, ok2, ok3))

	if failures > 0 {
		fmt.Printf("%d check(s) failed\n", failures)
		os.Exit(1)
	}
	fmt.Println("all checks passed")
}
