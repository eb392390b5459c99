package nfs_test

import (
	"github.com/HanFayeDD/nfs"
)

// memDevice is an in-memory Device double: a flat byte slice plus a
// cursor, servicing ReadUnit/WriteUnit in fixed IOUnit chunks.
type memDevice struct {
	buf    []byte
	pos    int64
	ioUnit int
	closed bool
}

func newMemDevice(size int64, ioUnit int) *memDevice {
	return &memDevice{
		buf:    make([]byte, size),
		ioUnit: ioUnit,
	}
}

func (m *memDevice) Seek(offset int64) error {
	if offset < 0 || offset > int64(len(m.buf)) {
		return nfs.ErrSeek
	}
	m.pos = offset
	return nil
}

func (m *memDevice) ReadUnit(buf []byte) error {
	if len(buf) != m.ioUnit {
		return nfs.ErrInval
	}
	n := copy(buf, m.buf[m.pos:])
	for i := n; i < len(buf); i++ {
		buf[i] = 0
	}
	m.pos += int64(len(buf))
	return nil
}

func (m *memDevice) WriteUnit(buf []byte) error {
	if len(buf) != m.ioUnit {
		return nfs.ErrInval
	}
	copy(m.buf[m.pos:], buf)
	m.pos += int64(len(buf))
	return nil
}

func (m *memDevice) Size() (int64, error) { return int64(len(m.buf)), nil }
func (m *memDevice) IOUnit() (int, error) { return m.ioUnit, nil }
func (m *memDevice) Close() error         { m.closed = true; return nil }
