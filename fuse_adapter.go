//go:build fuse

package nfs

import (
	"context"
	"io/fs"
	"os"

	"github.com/hanwen/go-fuse/v2/fuse"
)

// NFSRoot adapts a mounted Superblock to an external FUSE upper half that
// binds VFS operations to these core primitives. It is deliberately thin:
// reimplementing a full VFS binding is out of scope here; this only
// anchors github.com/hanwen/go-fuse/v2 at the binding point, grounded on
// inode_fuse.go's EntryOut/DirEntryList shape.
type NFSRoot struct {
	sb *Superblock
}

// NewNFSRoot wraps a mounted Superblock for FUSE binding.
func NewNFSRoot(sb *Superblock) *NFSRoot {
	return &NFSRoot{sb: sb}
}

// Lookup resolves name relative to dir's path, returning ENOENT when the
// core's Lookup doesn't find it.
func (r *NFSRoot) Lookup(ctx context.Context, dirPath, name string) (*Dentry, error) {
	full := dirPath + "/" + name
	d, isFind, _, err := r.sb.Lookup(full)
	if err != nil {
		return nil, fuse.EIO
	}
	if !isFind {
		return nil, fuse.ENOENT
	}
	return d, nil
}

// Open always succeeds for files: this format has no permission bits to
// enforce.
func (r *NFSRoot) Open(d *Dentry) (uint32, error) {
	if d.Inode.IsDir() {
		return 0, os.ErrInvalid
	}
	return fuse.FOPEN_KEEP_CACHE, nil
}

// OpenDir succeeds only for directories.
func (r *NFSRoot) OpenDir(d *Dentry) (uint32, error) {
	if !d.Inode.IsDir() {
		return 0, os.ErrInvalid
	}
	return fuse.FOPEN_KEEP_CACHE, nil
}

// ReadDir lists a directory's children. plus/attribute filling is left to
// a real binding; this returns bare names only.
func (r *NFSRoot) ReadDir(d *Dentry) ([]fs.DirEntry, error) {
	if !d.Inode.IsDir() {
		return nil, os.ErrInvalid
	}
	var out []fs.DirEntry
	for c := d.Inode.Children; c != nil; c = c.Sibling {
		out = append(out, dentryDirEntry{c})
	}
	return out, nil
}

// The mutating half of the VFS contract (Write, Mkdir, Create, Unlink,
// Rename...) is intentionally not implemented here: that upper half is
// treated as an external collaborator. A real binding calls CreateChild,
// Inode.WriteBlock, AllocDentry, and SyncInode directly instead.

type dentryDirEntry struct {
	d *Dentry
}

func (e dentryDirEntry) Name() string { return e.d.Name }
func (e dentryDirEntry) IsDir() bool  { return e.d.Kind == KindDir }
func (e dentryDirEntry) Type() fs.FileMode {
	if e.IsDir() {
		return fs.ModeDir
	}
	return 0
}
func (e dentryDirEntry) Info() (fs.FileInfo, error) {
	return nil, fuse.ENOSYS
}
