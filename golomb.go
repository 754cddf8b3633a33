package bitstream

import "github.com/mewkiz/bitstream/internal/bits"

// PutGolomb writes v using Golomb coding with modulus m: the quotient
// v/m is written in Unary, followed by the remainder v%m in Golomb's
// truncated binary code. m must be >= 1.
func (s *BitStream) PutGolomb(v, m uint64) error {
	if m < 1 {
		return errf("BitStream.PutGolomb", BadArgument, "modulus must be >= 1, got %d", m)
	}
	q := v / m
	r := v % m
	if err := s.PutUnary(q); err != nil {
		return err
	}
	return bits.PutTruncatedBinary(s, r, m)
}

// GetGolomb reads a value written by PutGolomb with the same modulus m.
func (s *BitStream) GetGolomb(m uint64) (uint64, error) {
	if m < 1 {
		return 0, errf("BitStream.GetGolomb", BadArgument, "modulus must be >= 1, got %d", m)
	}
	q, err := s.GetUnary()
	if err != nil {
		return 0, err
	}
	r, err := bits.GetTruncatedBinary(s, m)
	if err != nil {
		return 0, err
	}
	return q*m + r, nil
}

// PutGolombVec writes each value in vs in order with modulus m.
func (s *BitStream) PutGolombVec(vs []uint64, m uint64) error {
	for _, v := range vs {
		if err := s.PutGolomb(v, m); err != nil {
			return err
		}
	}
	return nil
}

// GetGolombVec reads n values written by PutGolombVec with modulus m;
// n == -1 reads until the stream is exhausted.
func (s *BitStream) GetGolombVec(n int, m uint64) ([]uint64, error) {
	return getVec(n, func() (uint64, error) { return s.GetGolomb(m) })
}

// PutRice writes v using Rice coding, Golomb coding specialized to a
// power-of-two modulus m = 2^k: the quotient v>>k is Unary, the low k bits
// are a plain fixed-width field (truncated binary degenerates to this when
// m is a power of two). k must be >= 0.
func (s *BitStream) PutRice(v uint64, k int) error {
	if k < 0 {
		return errf("BitStream.PutRice", BadArgument, "k must be >= 0, got %d", k)
	}
	q := v >> uint(k)
	if err := s.PutUnary(q); err != nil {
		return err
	}
	if k == 0 {
		return nil
	}
	r := v & ((uint64(1) << uint(k)) - 1)
	return bits.PutBits(s, r, k)
}

// GetRice reads a value written by PutRice with the same k.
func (s *BitStream) GetRice(k int) (uint64, error) {
	if k < 0 {
		return 0, errf("BitStream.GetRice", BadArgument, "k must be >= 0, got %d", k)
	}
	q, err := s.GetUnary()
	if err != nil {
		return 0, err
	}
	if k == 0 {
		return q, nil
	}
	r, err := bits.GetBits(s, k)
	if err != nil {
		return 0, err
	}
	return q<<uint(k) | r, nil
}

// PutRiceVec writes each value in vs in order with parameter k.
func (s *BitStream) PutRiceVec(vs []uint64, k int) error {
	for _, v := range vs {
		if err := s.PutRice(v, k); err != nil {
			return err
		}
	}
	return nil
}

// GetRiceVec reads n values written by PutRiceVec with parameter k;
// n == -1 reads until the stream is exhausted.
func (s *BitStream) GetRiceVec(n int, k int) ([]uint64, error) {
	return getVec(n, func() (uint64, error) { return s.GetRice(k) })
}

// PutGammaGolomb writes v using Golomb coding with the quotient carried in
// Gamma instead of Unary, trading codeword length for a slower blowup on
// outliers. m must be >= 1.
func (s *BitStream) PutGammaGolomb(v, m uint64) error {
	if m < 1 {
		return errf("BitStream.PutGammaGolomb", BadArgument, "modulus must be >= 1, got %d", m)
	}
	q := v / m
	r := v % m
	if err := s.PutGamma(q); err != nil {
		return err
	}
	return bits.PutTruncatedBinary(s, r, m)
}

// GetGammaGolomb reads a value written by PutGammaGolomb with the same m.
func (s *BitStream) GetGammaGolomb(m uint64) (uint64, error) {
	if m < 1 {
		return 0, errf("BitStream.GetGammaGolomb", BadArgument, "modulus must be >= 1, got %d", m)
	}
	q, err := s.GetGamma()
	if err != nil {
		return 0, err
	}
	r, err := bits.GetTruncatedBinary(s, m)
	if err != nil {
		return 0, err
	}
	return q*m + r, nil
}

// PutGammaGolombVec writes each value in vs in order with modulus m.
func (s *BitStream) PutGammaGolombVec(vs []uint64, m uint64) error {
	for _, v := range vs {
		if err := s.PutGammaGolomb(v, m); err != nil {
			return err
		}
	}
	return nil
}

// GetGammaGolombVec reads n values written by PutGammaGolombVec with
// modulus m; n == -1 reads until the stream is exhausted.
func (s *BitStream) GetGammaGolombVec(n int, m uint64) ([]uint64, error) {
	return getVec(n, func() (uint64, error) { return s.GetGammaGolomb(m) })
}

// PutExpGolomb writes v using Exponential-Golomb coding with order k: Rice
// specialized so the quotient is carried in Gamma instead of Unary. k must
// be >= 0.
func (s *BitStream) PutExpGolomb(v uint64, k int) error {
	if k < 0 {
		return errf("BitStream.PutExpGolomb", BadArgument, "k must be >= 0, got %d", k)
	}
	q := v >> uint(k)
	if err := s.PutGamma(q); err != nil {
		return err
	}
	if k == 0 {
		return nil
	}
	r := v & ((uint64(1) << uint(k)) - 1)
	return bits.PutBits(s, r, k)
}

// GetExpGolomb reads a value written by PutExpGolomb with the same k.
func (s *BitStream) GetExpGolomb(k int) (uint64, error) {
	if k < 0 {
		return 0, errf("BitStream.GetExpGolomb", BadArgument, "k must be >= 0, got %d", k)
	}
	q, err := s.GetGamma()
	if err != nil {
		return 0, err
	}
	if k == 0 {
		return q, nil
	}
	r, err := bits.GetBits(s, k)
	if err != nil {
		return 0, err
	}
	return q<<uint(k) | r, nil
}

// PutExpGolombVec writes each value in vs in order with order k.
func (s *BitStream) PutExpGolombVec(vs []uint64, k int) error {
	for _, v := range vs {
		if err := s.PutExpGolomb(v, k); err != nil {
			return err
		}
	}
	return nil
}

// GetExpGolombVec reads n values written by PutExpGolombVec with order k;
// n == -1 reads until the stream is exhausted.
func (s *BitStream) GetExpGolombVec(n int, k int) ([]uint64, error) {
	return getVec(n, func() (uint64, error) { return s.GetExpGolomb(k) })
}
