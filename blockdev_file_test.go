package nfs

import (
	"bytes"
	"path/filepath"
	"testing"
)

func TestFileDeviceReadWriteUnit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "disk.img")
	dev, err := OpenFileDevice(path, 4096)
	if err != nil {
		t.Fatalf("OpenFileDevice error: %v", err)
	}
	defer dev.Close()

	unit, err := dev.IOUnit()
	if err != nil {
		t.Fatalf("IOUnit error: %v", err)
	}
	size, err := dev.Size()
	if err != nil {
		t.Fatalf("Size error: %v", err)
	}
	if size != 4096 {
		t.Fatalf("Size() = %d, want 4096", size)
	}

	payload := bytes.Repeat([]byte{0x5A}, unit)
	if err := dev.Seek(0); err != nil {
		t.Fatalf("Seek error: %v", err)
	}
	if err := dev.WriteUnit(payload); err != nil {
		t.Fatalf("WriteUnit error: %v", err)
	}

	if err := dev.Seek(0); err != nil {
		t.Fatalf("Seek error: %v", err)
	}
	out := make([]byte, unit)
	if err := dev.ReadUnit(out); err != nil {
		t.Fatalf("ReadUnit error: %v", err)
	}
	if !bytes.Equal(out, payload) {
		t.Fatalf("ReadUnit = %x, want %x", out, payload)
	}
}

func TestOpenFileDeviceReopenPreservesLargerSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "disk.img")
	dev1, err := OpenFileDevice(path, 8192)
	if err != nil {
		t.Fatalf("first OpenFileDevice error: %v", err)
	}
	dev1.Close()

	dev2, err := OpenFileDevice(path, 4096)
	if err != nil {
		t.Fatalf("second OpenFileDevice error: %v", err)
	}
	defer dev2.Close()

	size, err := dev2.Size()
	if err != nil {
		t.Fatalf("Size error: %v", err)
	}
	if size != 8192 {
		t.Fatalf("Size() after reopen with smaller request = %d, want 8192 (existing size preserved)", size)
	}
}
