package bitstream

import "github.com/mewkiz/bitstream/internal/bits"

// PutGamma writes v using Elias Gamma coding: unary(b) followed by the low
// b bits of v+1, where b = floor(log2(v+1)). The sentinel ~0 is special-cased
// to unary(W) with no suffix, since v+1 would overflow W bits.
func (s *BitStream) PutGamma(v uint64) error {
	if v == s.Sentinel() {
		return s.PutUnary(uint64(s.w))
	}
	n := v + 1
	b := bits.FloorLog2(n)
	if err := s.PutUnary(uint64(b)); err != nil {
		return err
	}
	return bits.PutBits(s, n-(uint64(1)<<uint(b)), b)
}

// GetGamma reads a value written by PutGamma.
func (s *BitStream) GetGamma() (uint64, error) {
	b, err := s.GetUnary()
	if err != nil {
		return 0, err
	}
	if int(b) == s.w {
		return s.Sentinel(), nil
	}
	suf, err := bits.GetBits(s, int(b))
	if err != nil {
		return 0, err
	}
	n := (uint64(1) << uint(b)) + suf
	return n - 1, nil
}

// PutGammaVec writes each value in vs in order.
func (s *BitStream) PutGammaVec(vs []uint64) error {
	for _, v := range vs {
		if err := s.PutGamma(v); err != nil {
			return err
		}
	}
	return nil
}

// GetGammaVec reads n values written by PutGammaVec; n == -1 reads until
// the stream is exhausted.
func (s *BitStream) GetGammaVec(n int) ([]uint64, error) {
	return getVec(n, s.GetGamma)
}

// PutDelta writes v using Elias Delta coding: gamma(b), the 0-based Gamma
// encoding of b itself, followed by the low b bits of v+1, where
// b = floor(log2(v+1)). The sentinel ~0 is special-cased to the Gamma
// prefix for b=W with no suffix, mirroring Gamma's own sentinel treatment.
func (s *BitStream) PutDelta(v uint64) error {
	if v == s.Sentinel() {
		return s.PutGamma(uint64(s.w))
	}
	n := v + 1
	b := bits.FloorLog2(n)
	if err := s.PutGamma(uint64(b)); err != nil {
		return err
	}
	return bits.PutBits(s, n-(uint64(1)<<uint(b)), b)
}

// GetDelta reads a value written by PutDelta.
func (s *BitStream) GetDelta() (uint64, error) {
	b, err := s.GetGamma()
	if err != nil {
		return 0, err
	}
	if int(b) == s.w {
		return s.Sentinel(), nil
	}
	suf, err := bits.GetBits(s, int(b))
	if err != nil {
		return 0, err
	}
	n := (uint64(1) << uint(b)) + suf
	return n - 1, nil
}

// PutDeltaVec writes each value in vs in order.
func (s *BitStream) PutDeltaVec(vs []uint64) error {
	for _, v := range vs {
		if err := s.PutDelta(v); err != nil {
			return err
		}
	}
	return nil
}

// GetDeltaVec reads n values written by PutDeltaVec; n == -1 reads until
// the stream is exhausted.
func (s *BitStream) GetDeltaVec(n int) ([]uint64, error) {
	return getVec(n, s.GetDelta)
}

// PutOmega writes v using Elias Omega coding, recursively prefixing the
// bit-length of each successive length field until reaching a single
// terminal group, terminated by a 0 bit. Omega is naturally 1-based, so the
// public 0-based v is shifted internally: put_omega(v) == omegaRaw(v+1).
// At W=64 the sentinel ~0 makes v+1 wrap to 0 (2^64 doesn't fit in a
// uint64), so it is special-cased to omegaRawMax, which writes the same
// codeword omegaRaw(2^64) would if uint64 arithmetic could represent it.
func (s *BitStream) PutOmega(v uint64) error {
	if v == s.Sentinel() && s.w == 64 {
		return s.omegaRawMax()
	}
	return s.omegaRaw(v + 1)
}

// GetOmega reads a value written by PutOmega.
func (s *BitStream) GetOmega() (uint64, error) {
	n, isMax, err := s.omegaRawRead()
	if err != nil {
		return 0, err
	}
	if isMax {
		return s.Sentinel(), nil
	}
	return n - 1, nil
}

// omegaRaw writes the 1-based Elias Omega codeword for n >= 1: the chain of
// group lengths is built most-significant-group-first by repeatedly taking
// floor(log2(n)) until n == 1, each group written as its own binary value
// with its leading 1 bit retained (so the reader can recover its length from
// its own first bit once it knows where it starts), then terminated by a 0.
func (s *BitStream) omegaRaw(n uint64) error {
	var groups []uint64
	for n > 1 {
		groups = append(groups, n)
		n = uint64(bits.FloorLog2(n))
	}
	for i := len(groups) - 1; i >= 0; i-- {
		g := groups[i]
		gb := bits.FloorLog2(g) + 1
		if err := bits.PutBits(s, g, gb); err != nil {
			return err
		}
	}
	return s.Write(1, 0)
}

// omegaRawRead reads a 1-based codeword written by omegaRaw or omegaRawMax.
// Starting from an implicit group value of 1, it repeatedly peeks the next
// bit: a 0 terminates decoding; otherwise the next (value+1) bits (including
// the leading 1 just peeked) form the next group value. In a real codeword a
// group value of 64 is never followed by another group (that group would
// need 65 bits, and any v <= Sentinel()-1 needs at most 64), so a 1 bit after
// group value 64 unambiguously means the next group is omegaRawMax's virtual
// 65-bit 2^64 marker, and isMax is reported instead of trying to hold 2^64
// in a uint64.
func (s *BitStream) omegaRawRead() (n uint64, isMax bool, err error) {
	n = 1
	for {
		bit, err := s.Read(1, true)
		if err != nil {
			return 0, false, err
		}
		if bit == 0 {
			if _, err := s.Read(1, false); err != nil {
				return 0, false, err
			}
			return n, false, nil
		}
		if n == 64 {
			if err := s.skipOmegaSentinelGroup(); err != nil {
				return 0, false, err
			}
			if _, err := s.Read(1, false); err != nil { // terminator
				return 0, false, err
			}
			return 0, true, nil
		}
		gb := int(n) + 1
		g, err := bits.GetBits(s, gb)
		if err != nil {
			return 0, false, err
		}
		n = g
	}
}

// omegaRawMax writes the codeword omegaRaw(2^64) would if 2^64 fit in a
// uint64: the same group chain omegaRaw builds starting from
// floor(log2(2^64)) = 64, followed by a literal 65-bit top group (a leading
// 1 bit, its own length marker, followed by 64 zero bits representing
// 2^64's binary form), then the terminator.
func (s *BitStream) omegaRawMax() error {
	var groups []uint64
	n := uint64(64)
	for n > 1 {
		groups = append(groups, n)
		n = uint64(bits.FloorLog2(n))
	}
	for i := len(groups) - 1; i >= 0; i-- {
		g := groups[i]
		gb := bits.FloorLog2(g) + 1
		if err := bits.PutBits(s, g, gb); err != nil {
			return err
		}
	}
	if err := s.Write(1, 1); err != nil {
		return err
	}
	for i := 0; i < 64; i++ {
		if err := s.Write(1, 0); err != nil {
			return err
		}
	}
	return s.Write(1, 0)
}

// skipOmegaSentinelGroup consumes the 65-bit virtual group written by
// omegaRawMax, one bit at a time since it cannot be read as a single
// uint64 field.
func (s *BitStream) skipOmegaSentinelGroup() error {
	for i := 0; i < 65; i++ {
		if _, err := s.Read(1, false); err != nil {
			return err
		}
	}
	return nil
}

// PutOmegaVec writes each value in vs in order.
func (s *BitStream) PutOmegaVec(vs []uint64) error {
	for _, v := range vs {
		if err := s.PutOmega(v); err != nil {
			return err
		}
	}
	return nil
}

// GetOmegaVec reads n values written by PutOmegaVec; n == -1 reads until
// the stream is exhausted.
func (s *BitStream) GetOmegaVec(n int) ([]uint64, error) {
	return getVec(n, s.GetOmega)
}
