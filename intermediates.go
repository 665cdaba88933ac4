package vtmachine

import "fmt"

// overrunLen marks VtIntermediates.len once a push beyond capacity has
// been attempted; any value greater than len(buf) means "overrun".
const overrunLen = 3

// VtIntermediates holds the intermediate bytes (0x20-0x2F) collected
// between an introducer and the final byte of a sequence: an ordered,
// bounded sequence of at most 2 bytes, plus an overrun flag.
//
// The zero value is a valid, empty VtIntermediates.
type VtIntermediates struct {
	buf [2]byte
	len uint8
}

// VtIntermediatesFromSlice builds a VtIntermediates containing the given
// bytes. It fails if from has more than 2 entries.
func VtIntermediatesFromSlice(from []byte) (VtIntermediates, error) {
	var v VtIntermediates
	if len(from) > len(v.buf) {
		return VtIntermediates{}, fmt.Errorf("vtmachine: too many intermediates (%d, max %d)", len(from), len(v.buf))
	}
	v.len = uint8(len(from))
	copy(v.buf[:], from)
	return v, nil
}

// Push appends b. On the third and subsequent pushes the buffer stays at
// length 2, HasOverrun becomes true, and the pushed byte is discarded.
func (v *VtIntermediates) Push(b byte) {
	if int(v.len) >= len(v.buf) {
		v.len = overrunLen
		return
	}
	v.buf[v.len] = b
	v.len++
}

// Clear discards all intermediates and resets the overrun flag.
func (v *VtIntermediates) Clear() {
	v.len = 0
}

// Bytes returns the intermediate bytes in order.
func (v VtIntermediates) Bytes() []byte {
	return v.buf[:v.Len()]
}

// Len returns the current visible length, capped at 2 even while
// HasOverrun is true.
func (v VtIntermediates) Len() int {
	if int(v.len) > len(v.buf) {
		return len(v.buf)
	}
	return int(v.len)
}

// HasOverrun reports whether more than 2 intermediates were pushed.
func (v VtIntermediates) HasOverrun() bool {
	return int(v.len) > len(v.buf)
}

func (v VtIntermediates) String() string {
	if v.HasOverrun() {
		return fmt.Sprintf("%v+overrun", v.Bytes())
	}
	return fmt.Sprintf("%v", v.Bytes())
}
