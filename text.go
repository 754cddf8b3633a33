package bitstream

import (
	"bytes"
	"strings"

	"github.com/icza/bitio"
)

// ToString renders the stream's bits (0..L) as a string of '0'/'1'
// characters, most significant bit of each byte first. Like ToRaw, it
// requires a READING-mode or write-closed stream and fails WrongMode on a
// WRITING stream that has not been write-closed.
func (s *BitStream) ToString() (string, error) {
	raw, length, err := s.snapshot()
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.Grow(length)
	for i := 0; i < length; i++ {
		byteIdx := i / 8
		bitIdx := 7 - uint(i%8)
		bit := (raw[byteIdx] >> bitIdx) & 1
		if bit == 1 {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String(), nil
}

// FromString replaces the stream's contents with the bits spelled out by
// str, which must consist solely of '0'/'1' characters, and transitions to
// READING mode at position 0. If nbits >= 0 it overrides the parsed length
// (str is padded/truncated as needed); nbits < 0 uses len(str).
func (s *BitStream) FromString(str string, nbits int) error {
	const op = "BitStream.FromString"
	for i := 0; i < len(str); i++ {
		if str[i] != '0' && str[i] != '1' {
			return errf(op, BadArgument, "character %q at offset %d is not '0' or '1'", str[i], i)
		}
	}
	length := len(str)
	if nbits >= 0 {
		length = nbits
	}
	raw := make([]byte, (length+7)/8)
	n := length
	if n > len(str) {
		n = len(str)
	}
	for i := 0; i < n; i++ {
		if str[i] == '1' {
			raw[i/8] |= 1 << uint(7-i%8)
		}
	}
	s.setRaw(raw, length)
	return nil
}

// ToRaw returns the stream's bits (0..L) packed MSB-first into bytes, with
// the final partial byte zero-padded.
func (s *BitStream) ToRaw() ([]byte, error) {
	raw, length, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	out := make([]byte, (length+7)/8)
	copy(out, raw)
	return out, nil
}

// FromRaw replaces the stream's contents with the first nbits bits of raw,
// packed MSB-first, and transitions to READING mode at position 0.
func (s *BitStream) FromRaw(raw []byte, nbits int) error {
	const op = "BitStream.FromRaw"
	if nbits < 0 {
		return errf(op, BadArgument, "nbits must be >= 0, got %d", nbits)
	}
	if (nbits+7)/8 > len(raw) {
		return errf(op, BadArgument, "nbits %d exceeds %d available bytes", nbits, len(raw))
	}
	buf := make([]byte, (nbits+7)/8)
	copy(buf, raw[:len(buf)])
	if rem := nbits % 8; rem != 0 {
		buf[len(buf)-1] &= byte(0xFF << uint(8-rem))
	}
	s.setRaw(buf, nbits)
	return nil
}

// snapshot returns the stream's current backing bytes and bit length. The
// underlying bitio.Writer only exposes its buffered sub-byte bits via
// Close, which is one-shot, so a WRITING-mode stream must be write-closed
// before its contents can be read out; snapshot fails WrongMode otherwise.
func (s *BitStream) snapshot() ([]byte, int, error) {
	if s.mode == Reading {
		return s.raw, s.length, nil
	}
	if s.writeClosed {
		return s.wbuf.Bytes(), s.length, nil
	}
	return nil, 0, errf("BitStream.snapshot", WrongMode, "call WriteClose or RewindForRead before reading out contents")
}

// setRaw installs raw/length as the stream's contents and switches it to
// READING mode at position 0, discarding anything previously buffered.
func (s *BitStream) setRaw(raw []byte, length int) {
	s.raw = raw
	s.length = length
	s.br = bitio.NewReader(bytes.NewReader(s.raw))
	s.pos = 0
	s.mode = Reading
	s.writeClosed = true
}
