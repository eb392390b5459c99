//go:build !linux

package nfs

// queryBlockDevice is a no-op on non-Linux platforms: FileDevice always
// treats its backing file as a plain regular file, reporting
// defaultIOUnit and the size it was opened/truncated with.
func queryBlockDevice(dev *FileDevice) {}
