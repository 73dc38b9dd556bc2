// sim/uart.go

// Package sim models an NS16550A register window in software. It backs the
// driver's host builds in tests and diagnostics: loads and stores behave
// like the hardware (divisor latch routing, line status composition) and
// every access is recorded so callers can assert exact poll/write sequences.
package sim

// Register offsets, as seen by the device.
const (
	regData    uintptr = 0 // RBR/THR, or DLL with DLAB set
	regIER     uintptr = 1 // or DLM with DLAB set
	regFCRIIR  uintptr = 2
	regLCR     uintptr = 3
	regMCR     uintptr = 4
	regLSR     uintptr = 5
	regMSR     uintptr = 6
	regScratch uintptr = 7
)

const (
	lcrDLAB      byte = 1 << 7
	lsrDataReady byte = 1 << 0
	lsrTHRE      byte = 1 << 5
	lsrTEMT      byte = 1 << 6
	iirNoPending byte = 1 << 0
	iirFIFOsOn   byte = 0xC0
	fcrEnable    byte = 1 << 0
)

// Op distinguishes recorded loads from stores.
type Op uint8

const (
	OpLoad Op = iota
	OpStore
)

// Access is one recorded register access. For loads Val is the value the
// device returned; for stores it is the value written.
type Access struct {
	Op  Op
	Off uintptr
	Val byte
}

// UART is the device model. The zero value is a powered-on, idle device:
// transmitter empty, no data pending.
type UART struct {
	ier, fcr, lcr, mcr, scr byte
	dll, dlm                byte

	rx []byte // pending receive bytes, front first
	tx []byte // everything written to THR, in order

	txBusy int // LSR reads left that report THRE/TEMT deasserted

	trace []Access
}

// New returns an idle device model.
func New() *UART {
	return &UART{}
}

func (u *UART) dlab() bool {
	return u.lcr&lcrDLAB != 0
}

func (u *UART) lsr() byte {
	var v byte
	if u.txBusy > 0 {
		u.txBusy--
	} else {
		v = lsrTHRE | lsrTEMT
	}
	if len(u.rx) > 0 {
		v |= lsrDataReady
	}
	return v
}

// Load8 implements the driver's host register window.
func (u *UART) Load8(off uintptr) byte {
	var v byte
	switch off {
	case regData:
		if u.dlab() {
			v = u.dll
		} else if len(u.rx) > 0 {
			v = u.rx[0]
			u.rx = u.rx[1:]
		}
	case regIER:
		if u.dlab() {
			v = u.dlm
		} else {
			v = u.ier
		}
	case regFCRIIR:
		v = iirNoPending
		if u.fcr&fcrEnable != 0 {
			v |= iirFIFOsOn
		}
	case regLCR:
		v = u.lcr
	case regMCR:
		v = u.mcr
	case regLSR:
		v = u.lsr()
	case regMSR:
		// No modem lines modelled.
	case regScratch:
		v = u.scr
	}
	u.trace = append(u.trace, Access{Op: OpLoad, Off: off, Val: v})
	return v
}

// Store8 implements the driver's host register window.
func (u *UART) Store8(off uintptr, v byte) {
	u.trace = append(u.trace, Access{Op: OpStore, Off: off, Val: v})
	switch off {
	case regData:
		if u.dlab() {
			u.dll = v
		} else {
			u.tx = append(u.tx, v)
		}
	case regIER:
		if u.dlab() {
			u.dlm = v
		} else {
			u.ier = v
		}
	case regFCRIIR:
		u.fcr = v
	case regLCR:
		u.lcr = v
	case regMCR:
		u.mcr = v
	case regLSR, regMSR:
		// Read-only; real hardware ignores these writes.
	case regScratch:
		u.scr = v
	}
}

// PushRX queues bytes for the driver to receive, asserting Data Ready until
// they are drained.
func (u *UART) PushRX(p ...byte) {
	u.rx = append(u.rx, p...)
}

// TxBusyFor makes the next n line-status reads report the transmitter as
// busy (THRE and TEMT clear) before it goes idle again.
func (u *UART) TxBusyFor(n int) {
	u.txBusy = n
}

// Transmitted returns every byte written to the transmit holding register,
// in order.
func (u *UART) Transmitted() []byte {
	return u.tx
}

// Divisor returns the programmed divisor latch value.
func (u *UART) Divisor() uint16 {
	return uint16(u.dlm)<<8 | uint16(u.dll)
}

// LCR returns the latched Line Control byte.
func (u *UART) LCR() byte {
	return u.lcr
}

// FCR returns the latched FIFO Control byte. The real register is
// write-only; the model keeps it readable for verification.
func (u *UART) FCR() byte {
	return u.fcr
}

// Trace returns the recorded accesses since the last ResetTrace.
func (u *UART) Trace() []Access {
	return u.trace
}

// ResetTrace discards the recorded accesses, keeping device state.
func (u *UART) ResetTrace() {
	u.trace = nil
}

// Loads counts recorded loads of the given offset.
func (u *UART) Loads(off uintptr) int {
	n := 0
	for _, a := range u.trace {
		if a.Op == OpLoad && a.Off == off {
			n++
		}
	}
	return n
}

// Stores returns the values of recorded stores to the given offset, in order.
func (u *UART) Stores(off uintptr) []byte {
	var vals []byte
	for _, a := range u.trace {
		if a.Op == OpStore && a.Off == off {
			vals = append(vals, a.Val)
		}
	}
	return vals
}
