package vtmachine

import "fmt"

// VtParams holds the numeric parameters of a CSI or DCS sequence: an
// ordered, bounded sequence of at most 16 u16 values assembled from
// digit runs separated by ';'.
//
// The zero value is a valid, empty VtParams.
type VtParams struct {
	buf [16]uint16
	len uint8
}

// VtParamsFromSlice builds a VtParams containing the given values. It
// fails if from has more than 16 entries; construction is the only place
// an oversized VtParams is rejected rather than silently truncated.
func VtParamsFromSlice(from []uint16) (VtParams, error) {
	var p VtParams
	if len(from) > len(p.buf) {
		return VtParams{}, fmt.Errorf("vtmachine: too many params (%d, max %d)", len(from), len(p.buf))
	}
	p.len = uint8(len(from))
	copy(p.buf[:], from)
	return p, nil
}

// Push appends v. Pushes beyond the 16-entry capacity are silently
// dropped; they do not disturb the values already present.
func (p *VtParams) Push(v uint16) {
	if int(p.len) >= len(p.buf) {
		return
	}
	p.buf[p.len] = v
	p.len++
}

// pushDigit feeds one CSI/DCS parameter character: ';' starts a new
// zero-valued entry, and any ASCII digit multiplies the current entry by
// ten and adds the digit. Overflow of the u16 accumulator
// wraps modulo 2^16 and is not separately signalled.
func (p *VtParams) pushDigit(r rune) {
	if r == ';' {
		p.Push(0)
		return
	}
	if p.len == 0 {
		p.Push(0)
	}
	cur := &p.buf[p.len-1]
	*cur = *cur*10 + uint16(r-'0')
}

// Clear discards all parameters.
func (p *VtParams) Clear() {
	p.len = 0
}

// Values returns the parameter values in order.
func (p VtParams) Values() []uint16 {
	return p.buf[:p.len]
}

// Len returns the current number of parameters.
func (p VtParams) Len() int {
	return int(p.len)
}

func (p VtParams) String() string {
	return fmt.Sprintf("%v", p.Values())
}
