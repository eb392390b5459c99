package nfs

import "os"

// FileDevice is the reference Device implementation: a regular file or
// block special file opened for read/write. It is a plain,
// always-available implementation so the core is runnable without a real
// FUSE mount.
type FileDevice struct {
	f        *os.File
	ioUnit   int
	realSize int64
}

// defaultIOUnit is used whenever the backing path isn't a recognized block
// special file (e.g. a plain regular file used as a virtual disk image).
const defaultIOUnit = 512

// OpenFileDevice opens path, creating it with size bytes if it doesn't
// exist yet. On Linux, if path refers to a block device node, the real
// sector size and capacity are queried via ioctl instead of using size/
// defaultIOUnit (see blockdev_linux.go).
func OpenFileDevice(path string, size int64) (*FileDevice, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, err
	}

	dev := &FileDevice{f: f, ioUnit: defaultIOUnit, realSize: size}

	if st, err := f.Stat(); err == nil && (st.Size() >= size || st.Mode()&os.ModeDevice != 0) {
		dev.realSize = st.Size()
	} else if err := f.Truncate(size); err != nil {
		f.Close()
		return nil, err
	}

	queryBlockDevice(dev)
	return dev, nil
}

func (d *FileDevice) Close() error {
	return d.f.Close()
}

func (d *FileDevice) Seek(offset int64) error {
	_, err := d.f.Seek(offset, 0)
	return err
}

func (d *FileDevice) ReadUnit(buf []byte) error {
	_, err := d.f.Read(buf)
	return err
}

func (d *FileDevice) WriteUnit(buf []byte) error {
	_, err := d.f.Write(buf)
	return err
}

func (d *FileDevice) Size() (int64, error) {
	return d.realSize, nil
}

func (d *FileDevice) IOUnit() (int, error) {
	return d.ioUnit, nil
}
