// ns16550/mmio_baremetal.go

//go:build tinygo || baremetal

package ns16550

import (
	"runtime/volatile"
	"unsafe"
)

// Register accesses are single volatile bytes at base+offset. The hardware
// guarantees atomicity for one-byte accesses, so no further synchronization
// happens here.

func (u *UART) loadReg(off uintptr) byte {
	return volatile.LoadUint8((*uint8)(unsafe.Pointer(u.base + off)))
}

func (u *UART) storeReg(off uintptr, v byte) {
	volatile.StoreUint8((*uint8)(unsafe.Pointer(u.base + off)), v)
}
