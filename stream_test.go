package bitstream_test

import (
	"testing"

	"github.com/mewkiz/bitstream"
)

func TestModeTransitions(t *testing.T) {
	s := bitstream.New()
	if s.Mode() != bitstream.Writing {
		t.Fatalf("new stream mode = %v, want Writing", s.Mode())
	}
	if err := s.PutUnary(3); err != nil {
		t.Fatalf("PutUnary: %v", err)
	}
	if _, err := s.GetUnary(); !bitstream.Is(err, bitstream.WrongMode) {
		t.Fatalf("GetUnary while WRITING: err = %v, want WrongMode", err)
	}
	if err := s.RewindForRead(); err != nil {
		t.Fatalf("RewindForRead: %v", err)
	}
	if s.Mode() != bitstream.Reading {
		t.Fatalf("mode after RewindForRead = %v, want Reading", s.Mode())
	}
	if err := s.PutUnary(1); !bitstream.Is(err, bitstream.WrongMode) {
		t.Fatalf("PutUnary while READING: err = %v, want WrongMode", err)
	}
	if err := s.RewindForRead(); !bitstream.Is(err, bitstream.WrongMode) {
		t.Fatalf("second RewindForRead: err = %v, want WrongMode", err)
	}
	got, err := s.GetUnary()
	if err != nil {
		t.Fatalf("GetUnary: %v", err)
	}
	if got != 3 {
		t.Fatalf("GetUnary = %d, want 3", got)
	}
}

func TestPosRequiresReading(t *testing.T) {
	s := bitstream.New()
	if _, err := s.Pos(); !bitstream.Is(err, bitstream.WrongMode) {
		t.Fatalf("Pos while WRITING: err = %v, want WrongMode", err)
	}
	if err := s.PutUnary(5); err != nil {
		t.Fatalf("PutUnary: %v", err)
	}
	if err := s.RewindForRead(); err != nil {
		t.Fatalf("RewindForRead: %v", err)
	}
	if _, err := s.GetUnary(); err != nil {
		t.Fatalf("GetUnary: %v", err)
	}
	pos, err := s.Pos()
	if err != nil {
		t.Fatalf("Pos: %v", err)
	}
	if pos != 6 {
		t.Fatalf("Pos = %d, want 6", pos)
	}
}

func TestRewindReplaysFromStart(t *testing.T) {
	s := bitstream.New()
	if err := s.PutUnaryVec([]uint64{1, 2, 3}); err != nil {
		t.Fatalf("PutUnaryVec: %v", err)
	}
	if err := s.RewindForRead(); err != nil {
		t.Fatalf("RewindForRead: %v", err)
	}
	if _, err := s.GetUnary(); err != nil {
		t.Fatalf("GetUnary: %v", err)
	}
	if err := s.Rewind(); err != nil {
		t.Fatalf("Rewind: %v", err)
	}
	pos, err := s.Pos()
	if err != nil {
		t.Fatalf("Pos: %v", err)
	}
	if pos != 0 {
		t.Fatalf("Pos after Rewind = %d, want 0", pos)
	}
	vs, err := s.GetUnaryVec(-1)
	if err != nil {
		t.Fatalf("GetUnaryVec: %v", err)
	}
	want := []uint64{1, 2, 3}
	if len(vs) != len(want) {
		t.Fatalf("GetUnaryVec = %v, want %v", vs, want)
	}
	for i := range want {
		if vs[i] != want[i] {
			t.Fatalf("GetUnaryVec = %v, want %v", vs, want)
		}
	}
}

func TestEraseForWrite(t *testing.T) {
	s := bitstream.New()
	if err := s.PutUnary(9); err != nil {
		t.Fatalf("PutUnary: %v", err)
	}
	if err := s.RewindForRead(); err != nil {
		t.Fatalf("RewindForRead: %v", err)
	}
	s.EraseForWrite()
	if s.Mode() != bitstream.Writing {
		t.Fatalf("mode after EraseForWrite = %v, want Writing", s.Mode())
	}
	if s.Len() != 0 {
		t.Fatalf("Len after EraseForWrite = %d, want 0", s.Len())
	}
	if err := s.PutUnary(1); err != nil {
		t.Fatalf("PutUnary after erase: %v", err)
	}
}

func TestNewWidthRejectsUnsupported(t *testing.T) {
	if _, err := bitstream.NewWidth(24); !bitstream.Is(err, bitstream.BadArgument) {
		t.Fatalf("NewWidth(24): err = %v, want BadArgument", err)
	}
	s, err := bitstream.NewWidth(bitstream.Width16)
	if err != nil {
		t.Fatalf("NewWidth(16): %v", err)
	}
	if s.Width() != 16 {
		t.Fatalf("Width() = %d, want 16", s.Width())
	}
}

func TestSentinel(t *testing.T) {
	s, _ := bitstream.NewWidth(bitstream.Width16)
	if s.Sentinel() != 0xFFFF {
		t.Fatalf("Sentinel() = %#x, want 0xFFFF", s.Sentinel())
	}
	s64, _ := bitstream.NewWidth(bitstream.Width64)
	if s64.Sentinel() != ^uint64(0) {
		t.Fatalf("Sentinel() = %#x, want all-ones", s64.Sentinel())
	}
}
