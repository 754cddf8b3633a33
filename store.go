package bitstream

import (
	"encoding/binary"
	"io"

	"github.com/mewkiz/bitstream/internal/bufseekio"
	pkgerrors "github.com/pkg/errors"
)

// Header returns the caller-defined header lines carried alongside the
// stream by ToStore/FromStore.
func (s *BitStream) Header() []string {
	return s.header
}

// SetHeader replaces the caller-defined header lines written by a
// subsequent ToStore call.
func (s *BitStream) SetHeader(lines []string) {
	s.header = lines
}

// ToStore writes the stream's current contents to w in the store format:
// each header line terminated by "\n", a blank line closing the header
// section, an 8-byte big-endian bit length L, and L's packed raw payload.
// Like ToRaw/ToString, it requires a READING-mode or write-closed stream.
func (s *BitStream) ToStore(w io.Writer) error {
	const op = "BitStream.ToStore"
	raw, length, err := s.snapshot()
	if err != nil {
		return err
	}
	for _, line := range s.header {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return errf(op, Corruption, "write header line: %v", pkgerrors.WithStack(err))
		}
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return errf(op, Corruption, "write header terminator: %v", pkgerrors.WithStack(err))
	}
	var lenBuf [8]byte
	binary.BigEndian.PutUint64(lenBuf[:], uint64(length))
	if _, err := w.Write(lenBuf[:]); err != nil {
		return errf(op, Corruption, "write length prefix: %v", pkgerrors.WithStack(err))
	}
	packed := make([]byte, (length+7)/8)
	copy(packed, raw)
	if _, err := w.Write(packed); err != nil {
		return errf(op, Corruption, "write payload: %v", pkgerrors.WithStack(err))
	}
	return nil
}

// FromStore replaces the stream's contents with a store-format payload read
// from r, populating Header() from the file's header section, and
// transitions to READING mode at position 0.
func (s *BitStream) FromStore(r io.ReadSeeker) error {
	const op = "BitStream.FromStore"
	br := bufseekio.NewReadSeeker(r)
	var header []string
	for {
		line, err := br.ReadLine()
		if err != nil {
			return errf(op, Corruption, "read header: %v", pkgerrors.WithStack(err))
		}
		if line == "" {
			break
		}
		header = append(header, line)
	}
	var lenBuf [8]byte
	if _, err := io.ReadFull(br, lenBuf[:]); err != nil {
		return errf(op, Corruption, "read length prefix: %v", pkgerrors.WithStack(err))
	}
	length := int(binary.BigEndian.Uint64(lenBuf[:]))
	raw := make([]byte, (length+7)/8)
	if _, err := io.ReadFull(br, raw); err != nil {
		return errf(op, Corruption, "read payload: %v", pkgerrors.WithStack(err))
	}
	s.header = header
	s.setRaw(raw, length)
	return nil
}
