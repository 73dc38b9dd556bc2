// ns16550/config.go

package ns16550

// Each configuration category is a closed enumeration whose members map 1:1
// to a hardware bit pattern, so no invalid line setup is representable. The
// zero value of every type is itself a valid setting, which makes the zero
// Config usable (5 data bits, one stop bit, no parity, DMA mode 0, 115200).

// WordLength selects the number of data bits per character (LCR[1:0]).
type WordLength uint8

const (
	WordLength5 WordLength = iota
	WordLength6
	WordLength7
	WordLength8
)

// StopBits selects the stop bit count (LCR[2]). StopBitsLong transmits 1.5
// stop bits with 5-bit words and 2 stop bits otherwise; the hardware picks,
// not the driver.
type StopBits uint8

const (
	StopBits1 StopBits = iota
	StopBitsLong
)

// Parity enables parity generation and checking (LCR[3]).
type Parity uint8

const (
	ParityDisable Parity = iota
	ParityEnable
)

// ParitySelect chooses odd or even parity (LCR[4], the EPS bit). It has no
// effect while parity is disabled.
type ParitySelect uint8

const (
	ParityOdd ParitySelect = iota
	ParityEven
)

// StickParity forces the parity bit to a fixed level (LCR[5]). No effect
// while parity is disabled.
type StickParity uint8

const (
	StickParityDisable StickParity = iota
	StickParityEnable
)

// Break holds the TX line in the break condition while enabled (LCR[6]).
type Break uint8

const (
	BreakDisable Break = iota
	BreakEnable
)

// DMAMode selects the FIFO DMA signalling mode (FCR bit 3). The FIFOs are
// always enabled alongside it.
type DMAMode uint8

const (
	DMAMode0 DMAMode = iota
	DMAMode1
)

// Baud is a symbolic line rate. Only rates with an exact divisor against the
// canonical 1.8432 MHz reference clock are listed; the zero value is 115200,
// the conventional console rate.
type Baud uint8

const (
	Baud115200 Baud = iota
	Baud300
	Baud600
	Baud1200
	Baud2400
	Baud4800
	Baud9600
	Baud19200
	Baud38400
	Baud57600
)

// divisor returns the 16-bit divisor latch value for the rate. The divisor
// counts the reference clock down by 16x the bit rate: 1843200 / (16 * baud).
func (b Baud) divisor() uint16 {
	switch b {
	case Baud300:
		return 384
	case Baud600:
		return 192
	case Baud1200:
		return 96
	case Baud2400:
		return 48
	case Baud4800:
		return 24
	case Baud9600:
		return 12
	case Baud19200:
		return 6
	case Baud38400:
		return 3
	case Baud57600:
		return 2
	default: // Baud115200
		return 1
	}
}

// Config is the full line setup consumed by Init. Every field is drawn from
// a closed enumeration, so any Config value is programmable as-is.
type Config struct {
	WordLength   WordLength
	StopBits     StopBits
	Parity       Parity
	ParitySelect ParitySelect
	StickParity  StickParity
	Break        Break
	DMAMode      DMAMode
	Baud         Baud
}

// lcrByte composes the full Line Control byte for cfg with DLAB clear.
func lcrByte(cfg Config) byte {
	v := byte(cfg.WordLength) & lcrWordLenMask
	if cfg.StopBits == StopBitsLong {
		v |= lcrStopBits
	}
	if cfg.Parity == ParityEnable {
		v |= lcrParityEn
	}
	if cfg.ParitySelect == ParityEven {
		v |= lcrEvenParity
	}
	if cfg.StickParity == StickParityEnable {
		v |= lcrStickParity
	}
	if cfg.Break == BreakEnable {
		v |= lcrBreak
	}
	return v
}

// fcrByte composes the FIFO Control byte: FIFOs on, requested DMA mode.
func fcrByte(mode DMAMode) byte {
	v := fcrFIFOEnable
	if mode == DMAMode1 {
		v |= fcrDMAMode
	}
	return v
}
