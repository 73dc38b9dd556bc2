// ns16550/mmio_host.go

//go:build !tinygo && !baremetal

package ns16550

import (
	"fmt"
	"sync"
)

// Host shim: on non-target builds register accesses route through a mapped
// Window instead of raw memory, so the same driver code runs against a
// software device model in tests and tooling.

// Window is a byte-addressed register window covering offsets 0-7 of one
// device. Implementations provide the register semantics; the driver only
// issues single-byte loads and stores.
type Window interface {
	Load8(off uintptr) byte
	Store8(off uintptr, v byte)
}

var (
	windowsMu sync.Mutex
	windows   = map[uintptr]Window{}
)

// Map backs the register window at base with w. A later Map for the same
// base replaces the previous window.
func Map(base uintptr, w Window) {
	windowsMu.Lock()
	windows[base] = w
	windowsMu.Unlock()
}

// Unmap removes the window at base.
func Unmap(base uintptr) {
	windowsMu.Lock()
	delete(windows, base)
	windowsMu.Unlock()
}

func (u *UART) window() Window {
	windowsMu.Lock()
	w := windows[u.base]
	windowsMu.Unlock()
	if w == nil {
		panic(fmt.Sprintf("ns16550: no window mapped at %#x", u.base))
	}
	return w
}

func (u *UART) loadReg(off uintptr) byte {
	return u.window().Load8(off)
}

func (u *UART) storeReg(off uintptr, v byte) {
	u.window().Store8(off, v)
}
