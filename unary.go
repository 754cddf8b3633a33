package bitstream

import "github.com/mewkiz/bitstream/internal/bits"

// PutUnary writes v using the 0-terminator=1 convention: v zero bits
// followed by a single one bit.
func (s *BitStream) PutUnary(v uint64) error {
	return bits.PutUnary(s, v)
}

// GetUnary reads a value written by PutUnary.
func (s *BitStream) GetUnary() (uint64, error) {
	return bits.GetUnary(s)
}

// PutUnary1 writes v using the 0-terminator=0 convention: v one bits
// followed by a single zero bit.
func (s *BitStream) PutUnary1(v uint64) error {
	return bits.PutUnary1(s, v)
}

// GetUnary1 reads a value written by PutUnary1.
func (s *BitStream) GetUnary1() (uint64, error) {
	return bits.GetUnary1(s)
}

// PutUnaryVec writes each value in vs in order.
func (s *BitStream) PutUnaryVec(vs []uint64) error {
	for _, v := range vs {
		if err := s.PutUnary(v); err != nil {
			return err
		}
	}
	return nil
}

// GetUnaryVec reads n values written by PutUnaryVec; n == -1 reads until
// the stream is exhausted.
func (s *BitStream) GetUnaryVec(n int) ([]uint64, error) {
	return getVec(n, s.GetUnary)
}

// PutUnary1Vec writes each value in vs in order.
func (s *BitStream) PutUnary1Vec(vs []uint64) error {
	for _, v := range vs {
		if err := s.PutUnary1(v); err != nil {
			return err
		}
	}
	return nil
}

// GetUnary1Vec reads n values written by PutUnary1Vec; n == -1 reads until
// the stream is exhausted.
func (s *BitStream) GetUnary1Vec(n int) ([]uint64, error) {
	return getVec(n, s.GetUnary1)
}

// getVec drains a scalar get operation into a vector. n == -1 means "until
// end": it reads until the next attempt fails Underflow, at which point it
// returns the values accumulated so far rather than propagating the error,
// per the vectorized boundary behavior in the spec.
func getVec(n int, get func() (uint64, error)) ([]uint64, error) {
	if n == -1 {
		var vs []uint64
		for {
			v, err := get()
			if err != nil {
				if Is(err, Underflow) {
					return vs, nil
				}
				return vs, err
			}
			vs = append(vs, v)
		}
	}
	if n < 0 {
		return nil, errf("getVec", BadArgument, "invalid count %d", n)
	}
	vs := make([]uint64, 0, n)
	for i := 0; i < n; i++ {
		v, err := get()
		if err != nil {
			return vs, err
		}
		vs = append(vs, v)
	}
	return vs, nil
}
