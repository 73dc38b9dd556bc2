// ns16550/registers.go

package ns16550

// Register offsets from the base address. Offsets 0 and 1 are dual-purpose:
// with LCR.DLAB set they address the divisor latch instead of the data and
// interrupt-enable registers. The driver only sets DLAB inside Init and
// always clears it before returning.
const (
	regRBR uintptr = 0 // Receiver Buffer (R, DLAB=0)
	regTHR uintptr = 0 // Transmitter Holding (W, DLAB=0)
	regDLL uintptr = 0 // Divisor Latch low byte (RW, DLAB=1)
	regIER uintptr = 1 // Interrupt Enable (RW, DLAB=0)
	regDLM uintptr = 1 // Divisor Latch high byte (RW, DLAB=1)
	regFCR uintptr = 2 // FIFO Control (W)
	regIIR uintptr = 2 // Interrupt Identification (R)
	regLCR uintptr = 3 // Line Control (RW)
	regMCR uintptr = 4 // Modem Control (RW)
	regLSR uintptr = 5 // Line Status (R)
	regMSR uintptr = 6 // Modem Status (R)
	regSCR uintptr = 7 // Scratch (RW)
)

// Line Control register bits.
const (
	lcrWordLenMask byte = 0x03   // [1:0] data bits per character
	lcrStopBits    byte = 1 << 2 // 0: one stop bit; 1: 1.5 (5-bit words) or 2
	lcrParityEn    byte = 1 << 3 // parity generation and checking
	lcrEvenParity  byte = 1 << 4 // EPS: 1 selects even, 0 odd
	lcrStickParity byte = 1 << 5 // force parity bit to a fixed value
	lcrBreak       byte = 1 << 6 // hold TX line in the break condition
	lcrDLAB        byte = 1 << 7 // divisor latch access
)

// FIFO Control register bits.
const (
	fcrFIFOEnable byte = 1 << 0
	fcrDMAMode    byte = 1 << 3 // DMA signalling mode select
)

// Line Status register bits.
const (
	lsrDataReady byte = 1 << 0 // a received byte is waiting in RBR
	lsrTHRE      byte = 1 << 5 // THR is free to accept a byte
	lsrTEMT      byte = 1 << 6 // THR and shift register both empty
)
