package nfs

// FileKind distinguishes the two file kinds this format supports.
type FileKind uint32

const (
	KindFile FileKind = iota
	KindDir
)

func (k FileKind) String() string {
	if k == KindDir {
		return "dir"
	}
	return "file"
}

// Dentry is a name-to-inode binding: a live, in-memory directory entry.
// Parent and Sibling form a singly-linked sibling chain per directory;
// Inode is non-owning in spirit (set once materialized) but modeled as a
// plain pointer — see DESIGN.md's Open Question notes on why an
// arena-of-handles isn't used here instead.
type Dentry struct {
	Name    string
	Ino     uint32
	Kind    FileKind
	Parent  *Dentry
	Sibling *Dentry
	Inode   *Inode
}

// newDentry constructs a transient dentry not yet bound to an inode,
// mirroring the original's new_dentry() helper.
func newDentry(name string, kind FileKind) *Dentry {
	return &Dentry{
		Name: name,
		Kind: kind,
	}
}
