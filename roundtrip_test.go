package nfs_test

import (
	"bytes"
	"testing"

	"github.com/HanFayeDD/nfs"
)

const testDeviceSize = 4 << 20 // 4 MiB reference device.

func mountFresh(t *testing.T) *nfs.Superblock {
	t.Helper()
	dev := newMemDevice(testDeviceSize, 512)
	sb, err := nfs.Mount(dev)
	if err != nil {
		t.Fatalf("Mount error: %v", err)
	}
	return sb
}

func TestMountFormatsEmptyDevice(t *testing.T) {
	sb := mountFresh(t)
	if sb.Magic != nfs.Magic {
		t.Fatalf("Magic = %x, want %x", sb.Magic, nfs.Magic)
	}
	if sb.Usage != 1 {
		t.Fatalf("Usage after formatting = %d, want 1 (root inode only)", sb.Usage)
	}
	if sb.Root == nil || sb.Root.Inode == nil {
		t.Fatalf("root dentry/inode not materialized after mount")
	}
	if !sb.Root.Inode.IsDir() {
		t.Fatalf("root inode is not a directory")
	}
}

func TestCreateChildAndLookup(t *testing.T) {
	sb := mountFresh(t)

	child, err := sb.CreateChild(sb.Root, "hello.txt", nfs.KindFile)
	if err != nil {
		t.Fatalf("CreateChild error: %v", err)
	}
	if err := child.Inode.WriteBlock(0, []byte("hi there")); err != nil {
		t.Fatalf("WriteBlock error: %v", err)
	}

	found, isFind, isRoot, err := sb.Lookup("/hello.txt")
	if err != nil {
		t.Fatalf("Lookup error: %v", err)
	}
	if !isFind || isRoot {
		t.Fatalf("Lookup(/hello.txt) = isFind=%v isRoot=%v, want true false", isFind, isRoot)
	}
	if found.Name != "hello.txt" {
		t.Fatalf("Lookup found name = %q, want hello.txt", found.Name)
	}
	if !bytes.Equal(found.Inode.Data[0][:8], []byte("hi there")) {
		t.Fatalf("found inode data = %q, want %q", found.Inode.Data[0][:8], "hi there")
	}
}

func TestLookupMissingPath(t *testing.T) {
	sb := mountFresh(t)
	_, isFind, _, err := sb.Lookup("/nope")
	if err != nil {
		t.Fatalf("Lookup error: %v", err)
	}
	if isFind {
		t.Fatalf("Lookup(/nope) reported found, want not found")
	}
}

// TestRemountSurvivesTree mounts, creates a directory with a file inside
// it, unmounts, then mounts the same device image again and expects the
// tree to be reachable exactly as it was left.
func TestRemountSurvivesTree(t *testing.T) {
	dev := newMemDevice(testDeviceSize, 512)

	sb, err := nfs.Mount(dev)
	if err != nil {
		t.Fatalf("first Mount error: %v", err)
	}
	dir, err := sb.CreateChild(sb.Root, "docs", nfs.KindDir)
	if err != nil {
		t.Fatalf("CreateChild(docs) error: %v", err)
	}
	file, err := sb.CreateChild(dir, "readme", nfs.KindFile)
	if err != nil {
		t.Fatalf("CreateChild(readme) error: %v", err)
	}
	if err := file.Inode.WriteBlock(0, []byte("contents")); err != nil {
		t.Fatalf("WriteBlock error: %v", err)
	}
	if err := sb.Umount(); err != nil {
		t.Fatalf("Umount error: %v", err)
	}

	sb2, err := nfs.Mount(dev)
	if err != nil {
		t.Fatalf("second Mount error: %v", err)
	}
	found, isFind, _, err := sb2.Lookup("/docs/readme")
	if err != nil {
		t.Fatalf("Lookup after remount error: %v", err)
	}
	if !isFind {
		t.Fatalf("Lookup(/docs/readme) after remount: not found")
	}
	if !bytes.Equal(found.Inode.Data[0][:8], []byte("contents")) {
		t.Fatalf("data after remount = %q, want %q", found.Inode.Data[0][:8], "contents")
	}
}

func TestCreateChildRejectsDuplicateName(t *testing.T) {
	sb := mountFresh(t)
	if _, err := sb.CreateChild(sb.Root, "dup", nfs.KindFile); err != nil {
		t.Fatalf("first CreateChild error: %v", err)
	}
	if _, err := sb.CreateChild(sb.Root, "dup", nfs.KindFile); err != nfs.ErrExists {
		t.Fatalf("second CreateChild error = %v, want ErrExists", err)
	}
}
