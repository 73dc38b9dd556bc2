package sim

import "testing"

func TestDLABRoutesDivisorLatch(t *testing.T) {
	u := New()

	// With DLAB set, offsets 0/1 address the divisor latch.
	u.Store8(regLCR, lcrDLAB)
	u.Store8(regData, 0x60)
	u.Store8(regIER, 0x01)
	if got := u.Divisor(); got != 0x0160 {
		t.Fatalf("divisor = %#04x, want 0x0160", got)
	}
	if got := u.Load8(regData); got != 0x60 {
		t.Fatalf("DLL readback = %#02x, want 0x60", got)
	}
	if len(u.Transmitted()) != 0 {
		t.Fatal("divisor write leaked into the TX stream")
	}

	// With DLAB clear, the same offsets are data and interrupt enable.
	u.Store8(regLCR, 0)
	u.Store8(regData, 'x')
	u.Store8(regIER, 0x0F)
	if got := string(u.Transmitted()); got != "x" {
		t.Fatalf("transmitted %q, want %q", got, "x")
	}
	if got := u.Load8(regIER); got != 0x0F {
		t.Fatalf("IER readback = %#02x, want 0x0F", got)
	}
	if got := u.Divisor(); got != 0x0160 {
		t.Fatalf("divisor changed to %#04x after leaving DLAB mode", got)
	}
}

func TestLineStatusComposition(t *testing.T) {
	u := New()
	if got := u.Load8(regLSR); got != lsrTHRE|lsrTEMT {
		t.Fatalf("idle LSR = %#02x, want %#02x", got, lsrTHRE|lsrTEMT)
	}

	u.PushRX('a')
	if got := u.Load8(regLSR); got&lsrDataReady == 0 {
		t.Fatalf("LSR = %#02x, Data Ready not asserted with RX pending", got)
	}
	if got := u.Load8(regData); got != 'a' {
		t.Fatalf("RBR = %#02x, want 'a'", got)
	}
	if got := u.Load8(regLSR); got&lsrDataReady != 0 {
		t.Fatalf("LSR = %#02x, Data Ready still asserted after drain", got)
	}
}

func TestTxBusyFor(t *testing.T) {
	u := New()
	u.TxBusyFor(2)
	for i := 0; i < 2; i++ {
		if got := u.Load8(regLSR); got&(lsrTHRE|lsrTEMT) != 0 {
			t.Fatalf("busy read %d: LSR = %#02x, transmitter not busy", i, got)
		}
	}
	if got := u.Load8(regLSR); got&lsrTHRE == 0 {
		t.Fatalf("LSR = %#02x, THRE not restored after busy window", got)
	}
}

func TestIIRReportsFIFOState(t *testing.T) {
	u := New()
	if got := u.Load8(regFCRIIR); got != iirNoPending {
		t.Fatalf("IIR = %#02x before FIFO enable, want %#02x", got, iirNoPending)
	}
	u.Store8(regFCRIIR, fcrEnable)
	if got := u.Load8(regFCRIIR); got != iirNoPending|iirFIFOsOn {
		t.Fatalf("IIR = %#02x after FIFO enable, want %#02x", got, iirNoPending|iirFIFOsOn)
	}
}

func TestReadOnlyRegistersIgnoreStores(t *testing.T) {
	u := New()
	u.Store8(regLSR, 0xFF)
	u.Store8(regMSR, 0xFF)
	if got := u.Load8(regLSR); got != lsrTHRE|lsrTEMT {
		t.Fatalf("LSR = %#02x after store, want %#02x", got, lsrTHRE|lsrTEMT)
	}
	if got := u.Load8(regMSR); got != 0 {
		t.Fatalf("MSR = %#02x after store, want 0", got)
	}
}

func TestTraceHelpers(t *testing.T) {
	u := New()
	u.Store8(regScratch, 0x5A)
	_ = u.Load8(regScratch)
	_ = u.Load8(regLSR)

	if n := u.Loads(regScratch); n != 1 {
		t.Fatalf("Loads(scratch) = %d, want 1", n)
	}
	if got := u.Stores(regScratch); len(got) != 1 || got[0] != 0x5A {
		t.Fatalf("Stores(scratch) = %#v, want [0x5A]", got)
	}

	u.ResetTrace()
	if len(u.Trace()) != 0 {
		t.Fatal("trace not empty after ResetTrace")
	}
	if got := u.Load8(regScratch); got != 0x5A {
		t.Fatalf("scratch = %#02x after ResetTrace, want state preserved", got)
	}
}
