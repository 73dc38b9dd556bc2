// ns16550/ns16550.go

// Package ns16550 is a polled driver for the NS16550A-compatible UART found
// on embedded and virtualized platforms. It programs the line protocol
// through typed, closed configuration values and moves single bytes: Put
// blocks until the transmit holding register accepts the byte, Get never
// blocks and reports absence instead.
//
// The driver holds no buffered state; every operation goes straight to the
// register window. It provides no locking: one UART value owns one register
// window, and callers sharing it across goroutines must serialize access
// themselves.
package ns16550

// UART is a handle on one NS16550A register window. Create it with New and
// do not duplicate it; the base address is assumed mapped, backed by real
// (or simulated) hardware, and exclusively owned for the process lifetime.
type UART struct {
	base uintptr
}

// New returns a UART bound to the register window at base. It touches no
// hardware; call Init before transferring bytes.
func New(base uintptr) *UART {
	return &UART{base: base}
}

// Init programs the full line setup. Every write is a whole-register write,
// so repeated calls fully re-specify the device with no stale bits carried
// over. Order matters:
//
//  1. LCR with DLAB set routes offsets 0/1 to the divisor latch.
//  2. Divisor low then high byte.
//  3. LCR with DLAB clear programs framing and leaves divisor mode.
//  4. FCR enables the FIFOs in the requested DMA mode.
//
// After Init returns the device is in normal addressing mode and ready for
// Put/Get. Init cannot fail: invalid configurations are unrepresentable.
func (u *UART) Init(cfg Config) {
	div := cfg.Baud.divisor()
	u.storeReg(regLCR, lcrByte(cfg)|lcrDLAB)
	u.storeReg(regDLL, byte(div))
	u.storeReg(regDLM, byte(div>>8))
	u.storeReg(regLCR, lcrByte(cfg))
	u.storeReg(regFCR, fcrByte(cfg.DMAMode))
}

// Put transmits one byte. It busy-polls the Line Status register until the
// transmit holding register is free, then writes the byte. Put returns once
// the byte is accepted by the holding register; the wire transfer may still
// be in flight (use Flush for drain semantics). There is no timeout: if the
// ready flag never asserts, Put never returns.
func (u *UART) Put(b byte) {
	for u.loadReg(regLSR)&lsrTHRE == 0 {
	}
	u.storeReg(regTHR, b)
}

// Get returns the next received byte, if one is waiting. It reads the Line
// Status register exactly once and never blocks: when Data Ready is unset it
// reports false without touching the receiver buffer.
func (u *UART) Get() (byte, bool) {
	if u.loadReg(regLSR)&lsrDataReady == 0 {
		return 0, false
	}
	return u.loadReg(regRBR), true
}

// Write transmits p in order, one Put per byte. It implements io.Writer and
// always returns len(p) with a nil error; like Put it can block without
// bound on a stuck line.
func (u *UART) Write(p []byte) (int, error) {
	for _, b := range p {
		u.Put(b)
	}
	return len(p), nil
}

// WriteString transmits s with the same contract as Write.
func (u *UART) WriteString(s string) (int, error) {
	for i := 0; i < len(s); i++ {
		u.Put(s[i])
	}
	return len(s), nil
}

// TryRead copies up to len(p) already-received bytes into p and returns the
// count. It never blocks; 0 means no data now.
func (u *UART) TryRead(p []byte) int {
	n := 0
	for n < len(p) {
		b, ok := u.Get()
		if !ok {
			break
		}
		p[n] = b
		n++
	}
	return n
}

// TxReady reports whether the transmit holding register would accept a byte
// right now, i.e. whether Put would return without polling.
func (u *UART) TxReady() bool {
	return u.loadReg(regLSR)&lsrTHRE != 0
}

// RxReady reports whether Get would return a byte right now.
func (u *UART) RxReady() bool {
	return u.loadReg(regLSR)&lsrDataReady != 0
}

// Flush busy-polls until the holding register and the transmit shifter are
// both empty, i.e. everything accepted by Put has left on the wire.
func (u *UART) Flush() {
	for u.loadReg(regLSR)&lsrTEMT == 0 {
	}
}

// Probe checks for 16550-style hardware behind the window by writing the
// scratch register and reading it back. A device that latches both test
// patterns is almost certainly present; absent hardware typically reads as
// a constant.
func (u *UART) Probe() bool {
	for _, pat := range [...]byte{0x55, 0xAA} {
		u.storeReg(regSCR, pat)
		if u.loadReg(regSCR) != pat {
			return false
		}
	}
	return true
}

// Regs is a register snapshot for diagnostics.
type Regs struct {
	IER byte
	IIR byte
	LCR byte
	MCR byte
	LSR byte
	MSR byte
	SCR byte
}

// Regs reads back the readable registers. Note that reading IIR can clear a
// pending transmit interrupt condition on real hardware; this is a debug
// aid, not part of the transfer path.
func (u *UART) Regs() Regs {
	return Regs{
		IER: u.loadReg(regIER),
		IIR: u.loadReg(regIIR),
		LCR: u.loadReg(regLCR),
		MCR: u.loadReg(regMCR),
		LSR: u.loadReg(regLSR),
		MSR: u.loadReg(regMSR),
		SCR: u.loadReg(regSCR),
	}
}
