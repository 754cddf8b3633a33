package bitstream

import "github.com/mewkiz/bitstream/internal/bits"

// PutStartStop writes v using a Start-Stop code: steps lists, in order, the
// step widths whose running total through index i gives bucket i's suffix
// width. Bucket i covers a contiguous run of 2^(steps[0]+...+steps[i])
// values immediately following the values covered by buckets 0..i-1; it is
// selected by a Unary prefix equal to its index, followed by the offset
// within the bucket in steps[0]+...+steps[i] bits. The last entry is the
// stop code: a value that doesn't fit even there fails Overflow. steps must
// be non-empty.
func (s *BitStream) PutStartStop(v uint64, steps []int) error {
	const op = "BitStream.PutStartStop"
	if len(steps) == 0 {
		return errf(op, BadArgument, "steps must be non-empty")
	}
	var base uint64
	var cum int
	for i, w := range steps {
		if w < 0 {
			return errf(op, BadArgument, "negative step width at index %d", i)
		}
		cum += w
		size := uint64(1) << uint(cum)
		last := i == len(steps)-1
		if v >= base+size && !last {
			base += size
			continue
		}
		if v-base >= size {
			return errf(op, Overflow, "value %d exceeds the stop code's range", v)
		}
		if err := s.PutUnary(uint64(i)); err != nil {
			return err
		}
		return bits.PutBits(s, v-base, cum)
	}
	panic("unreachable")
}

// GetStartStop reads a value written by PutStartStop with the same steps.
func (s *BitStream) GetStartStop(steps []int) (uint64, error) {
	const op = "BitStream.GetStartStop"
	if len(steps) == 0 {
		return 0, errf(op, BadArgument, "steps must be non-empty")
	}
	i, err := s.GetUnary()
	if err != nil {
		return 0, err
	}
	if int(i) >= len(steps) {
		return 0, errf(op, Corruption, "selector %d exceeds %d configured steps", i, len(steps))
	}
	var base uint64
	var cum int
	for j := uint64(0); j < i; j++ {
		cum += steps[j]
		base += uint64(1) << uint(cum)
	}
	cum += steps[i]
	r, err := bits.GetBits(s, cum)
	if err != nil {
		return 0, err
	}
	return base + r, nil
}

// PutStartStopVec writes each value in vs in order with the given steps.
func (s *BitStream) PutStartStopVec(vs []uint64, steps []int) error {
	for _, v := range vs {
		if err := s.PutStartStop(v, steps); err != nil {
			return err
		}
	}
	return nil
}

// GetStartStopVec reads n values written by PutStartStopVec with the given
// steps; n == -1 reads until the stream is exhausted.
func (s *BitStream) GetStartStopVec(n int, steps []int) ([]uint64, error) {
	return getVec(n, func() (uint64, error) { return s.GetStartStop(steps) })
}
