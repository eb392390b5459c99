package nfs

import (
	"bufio"
	"bytes"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

var xzMagic = []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}

// Snapshot streams a zstd-compressed copy of the device image to w: the
// first layout-size bytes (every region of the filesystem), not any device
// capacity beyond them.
// This is ambient backup/provisioning tooling, not part of the core
// mount/lookup/sync algorithms: on-disk file data is never compressed
// here, only the whole-image copy taken for backup/restore.
func Snapshot(sb *Superblock, w io.Writer) error {
	enc, err := zstd.NewWriter(w)
	if err != nil {
		return ErrIO
	}
	defer enc.Close()

	size := sb.layout.size()
	buf := make([]byte, sb.Block)
	for offset := int64(0); offset < size; offset += int64(len(buf)) {
		n := len(buf)
		if remaining := size - offset; remaining < int64(n) {
			n = int(remaining)
		}
		if err := sb.driverRead(offset, buf[:n]); err != nil {
			return err
		}
		if _, err := enc.Write(buf[:n]); err != nil {
			return ErrIO
		}
	}
	return nil
}

// Restore writes a fresh device image at path from r, which may be either
// an xz-compressed seed image (e.g. a provisioning template shipped as
// `.xz`) or a raw image. The xz magic is sniffed so both forms work
// without a separate flag.
func Restore(path string, r io.Reader) error {
	br := bufio.NewReader(r)

	var in io.Reader = br
	if magic, err := br.Peek(len(xzMagic)); err == nil && bytes.Equal(magic, xzMagic) {
		xr, err := xz.NewReader(br)
		if err != nil {
			return ErrIO
		}
		in = xr
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return ErrIO
	}
	defer f.Close()

	if _, err := io.Copy(f, in); err != nil {
		return ErrIO
	}
	return nil
}
