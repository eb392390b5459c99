package nfs

// CreateChild composes AllocInode and AllocDentry into the single
// "create a new file or directory under this parent" step a VFS binding
// would perform (e.g. for mkdir/create callbacks). It is not itself a
// core primitive — it is a convenience built entirely from AllocInode and
// AllocDentry, provided so cmd/nfsctl and the tests don't have to repeat
// the same three-line sequence.
func (sb *Superblock) CreateChild(parent *Dentry, name string, kind FileKind) (*Dentry, error) {
	if parent.Inode == nil {
		if _, err := sb.ReadInode(parent, parent.Ino); err != nil {
			return nil, err
		}
	}
	if !parent.Inode.IsDir() {
		return nil, ErrIsDir
	}
	if _, hit := findChild(parent.Inode, name); hit {
		return nil, ErrExists
	}

	child := newDentry(name, kind)
	if _, err := sb.AllocInode(child); err != nil {
		return nil, err
	}
	if _, err := sb.AllocDentry(parent.Inode, child); err != nil {
		return nil, err
	}
	return child, nil
}
