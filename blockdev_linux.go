//go:build linux

package nfs

import (
	"os"

	"golang.org/x/sys/unix"
)

// queryBlockDevice overrides dev's reported IO unit and size with the
// kernel's own view when the backing file is a block special device,
// following the ioctl(BLKSSZGET)/ioctl(BLKGETSIZE64) pattern used for
// real block devices elsewhere in the ecosystem (e.g. LUKS tooling
// querying raw partitions before formatting them). Regular files used as
// virtual disk images are left untouched.
func queryBlockDevice(dev *FileDevice) {
	st, err := dev.f.Stat()
	if err != nil {
		return
	}
	if st.Mode()&os.ModeDevice == 0 {
		return
	}

	fd := dev.f.Fd()

	if sz, err := unix.IoctlGetInt(int(fd), unix.BLKSSZGET); err == nil && sz > 0 {
		dev.ioUnit = sz
	}
	if sz, err := unix.IoctlGetUint64(int(fd), unix.BLKGETSIZE64); err == nil && sz > 0 {
		dev.realSize = int64(sz)
	}
}
