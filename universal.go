package bitstream

import "github.com/mewkiz/bitstream/internal/bits"

// PutLevenstein writes v using a Levenstein-style recursive length code: the
// number of repeated floor-log2 steps needed to bring v down to 1 or 0 is sent as a
// Unary1 count M, then the chain of intermediate values is sent from the
// innermost (always exactly 2 bits wide, since its own floor-log2 is
// guaranteed to be 1) outward, each field's width determined by the value
// just decoded one level in.
func (s *BitStream) PutLevenstein(v uint64) error {
	var chain []uint64
	c := v
	for c > 1 {
		chain = append(chain, c)
		c = uint64(bits.FloorLog2(c))
	}
	m := len(chain)
	if err := s.PutUnary1(uint64(m)); err != nil {
		return err
	}
	if m == 0 {
		return bits.PutBits(s, v, 1)
	}
	w := 2
	for i := m - 1; i >= 0; i-- {
		if err := bits.PutBits(s, chain[i], w); err != nil {
			return err
		}
		w = int(chain[i]) + 1
	}
	return nil
}

// GetLevenstein reads a value written by PutLevenstein.
func (s *BitStream) GetLevenstein() (uint64, error) {
	m, err := s.GetUnary1()
	if err != nil {
		return 0, err
	}
	if m == 0 {
		return bits.GetBits(s, 1)
	}
	w := 2
	var last uint64
	for i := uint64(0); i < m; i++ {
		g, err := bits.GetBits(s, w)
		if err != nil {
			return 0, err
		}
		last = g
		w = int(g) + 1
	}
	return last, nil
}

// PutLevensteinVec writes each value in vs in order.
func (s *BitStream) PutLevensteinVec(vs []uint64) error {
	for _, v := range vs {
		if err := s.PutLevenstein(v); err != nil {
			return err
		}
	}
	return nil
}

// GetLevensteinVec reads n values written by PutLevensteinVec; n == -1
// reads until the stream is exhausted.
func (s *BitStream) GetLevensteinVec(n int) ([]uint64, error) {
	return getVec(n, s.GetLevenstein)
}

// PutEvenRodeh writes v using an Even-Rodeh-style recursive length code: the
// same repeated floor-log2 chain as Levenstein, but rooted in 3-bit groups
// (values 0-7 are terminal) rather than 1-bit ones, with the terminal width
// always transmitted explicitly since it is not forced to a single value the
// way Levenstein's is.
func (s *BitStream) PutEvenRodeh(v uint64) error {
	var chain []uint64
	c := v
	for c > 7 {
		chain = append(chain, c)
		c = uint64(bits.FloorLog2(c))
	}
	seed := c
	if err := s.PutUnary1(uint64(len(chain))); err != nil {
		return err
	}
	if err := bits.PutBits(s, seed, 3); err != nil {
		return err
	}
	w := int(seed) + 1
	for i := len(chain) - 1; i >= 0; i-- {
		if err := bits.PutBits(s, chain[i], w); err != nil {
			return err
		}
		w = int(chain[i]) + 1
	}
	return nil
}

// GetEvenRodeh reads a value written by PutEvenRodeh.
func (s *BitStream) GetEvenRodeh() (uint64, error) {
	m, err := s.GetUnary1()
	if err != nil {
		return 0, err
	}
	seed, err := bits.GetBits(s, 3)
	if err != nil {
		return 0, err
	}
	last := seed
	w := int(seed) + 1
	for i := uint64(0); i < m; i++ {
		g, err := bits.GetBits(s, w)
		if err != nil {
			return 0, err
		}
		last = g
		w = int(g) + 1
	}
	return last, nil
}

// PutEvenRodehVec writes each value in vs in order.
func (s *BitStream) PutEvenRodehVec(vs []uint64) error {
	for _, v := range vs {
		if err := s.PutEvenRodeh(v); err != nil {
			return err
		}
	}
	return nil
}

// GetEvenRodehVec reads n values written by PutEvenRodehVec; n == -1 reads
// until the stream is exhausted.
func (s *BitStream) GetEvenRodehVec(n int) ([]uint64, error) {
	return getVec(n, s.GetEvenRodeh)
}

// PutFib writes v using order-2 (Zeckendorf) Fibonacci coding: a leading
// flag bit, a Zeckendorf decomposition of v+1 written least-significant
// term first, and a terminating 1 bit that together with the final set
// coefficient forms the code's self-synchronizing "11" marker. v+1 can
// overflow the sentinel, so ~0 is carried as a reserved one-bit codeword
// instead of being pushed through the shift.
func (s *BitStream) PutFib(v uint64) error {
	if v == s.Sentinel() {
		return s.Write(1, 1)
	}
	if err := s.Write(1, 0); err != nil {
		return err
	}
	n := v + 1
	basis := bits.FibonacciBasis(s.w)
	coeffs := bits.ZeckendorfDecompose(n, basis)
	for _, set := range coeffs {
		bit := uint64(0)
		if set {
			bit = 1
		}
		if err := s.Write(1, bit); err != nil {
			return err
		}
	}
	return s.Write(1, 1)
}

// GetFib reads a value written by PutFib.
func (s *BitStream) GetFib() (uint64, error) {
	const op = "BitStream.GetFib"
	flag, err := s.Read(1, false)
	if err != nil {
		return 0, err
	}
	if flag == 1 {
		return s.Sentinel(), nil
	}
	basis := bits.FibonacciBasis(s.w)
	var sum uint64
	idx := 0
	var prevBit uint64
	for {
		bit, err := s.Read(1, false)
		if err != nil {
			return 0, err
		}
		if bit == 1 && prevBit == 1 {
			break
		}
		if bit == 1 {
			if idx >= len(basis) {
				return 0, errf(op, Corruption, "fibonacci term index %d exceeds basis", idx)
			}
			sum += basis[idx]
		}
		prevBit = bit
		idx++
	}
	if sum == 0 {
		return 0, errf(op, Corruption, "fibonacci decode produced an empty term set")
	}
	return sum - 1, nil
}

// PutFibVec writes each value in vs in order.
func (s *BitStream) PutFibVec(vs []uint64) error {
	for _, v := range vs {
		if err := s.PutFib(v); err != nil {
			return err
		}
	}
	return nil
}

// GetFibVec reads n values written by PutFibVec; n == -1 reads until the
// stream is exhausted.
func (s *BitStream) GetFibVec(n int) ([]uint64, error) {
	return getVec(n, s.GetFib)
}
