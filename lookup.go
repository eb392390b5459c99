package nfs

import "strings"

// Lookup resolves a '/'-separated absolute path against the mounted tree,
// walking one dentry level per path component. Grounded on
// newfs_utils.c's nfs_lookup/nfs_calc_lvl, with an exact-length name
// comparison rather than a prefix one (a naive memcmp(..., strlen(fname))
// would wrongly match "foo" against a stored "foobar").
func (sb *Superblock) Lookup(path string) (dentry *Dentry, isFind bool, isRoot bool, err error) {
	components := splitPath(path)
	totalLvl := len(components)

	if totalLvl == 0 {
		return sb.Root, true, true, nil
	}

	cursor := sb.Root

	for lvl, name := range components {
		level := lvl + 1

		if cursor.Inode == nil {
			if _, err := sb.ReadInode(cursor, cursor.Ino); err != nil {
				return nil, false, false, err
			}
		}
		inode := cursor.Inode

		if inode.IsFile() && level < totalLvl {
			// An intermediate path component is a file: invalid path.
			return materialize(sb, inode.Dentry)
		}

		child, hit := findChild(inode, name)
		if !hit {
			return materialize(sb, inode.Dentry)
		}
		if level == totalLvl {
			d, _, _, err := materialize(sb, child)
			return d, true, false, err
		}
		cursor = child
	}

	// unreachable: totalLvl > 0 guarantees the loop above always returns
	// on its last iteration.
	return nil, false, false, ErrInval
}

// materialize ensures d's inode is loaded before it is handed back to the
// caller.
func materialize(sb *Superblock, d *Dentry) (*Dentry, bool, bool, error) {
	if d.Inode == nil {
		if _, err := sb.ReadInode(d, d.Ino); err != nil {
			return nil, false, false, err
		}
	}
	return d, false, false, nil
}

// findChild scans a directory's child chain for an exact name match.
func findChild(dirInode *Inode, name string) (*Dentry, bool) {
	for d := dirInode.Children; d != nil; d = d.Sibling {
		if d.Name == name {
			return d, true
		}
	}
	return nil, false
}

func splitPath(path string) []string {
	if path == "/" || path == "" {
		return nil
	}
	parts := strings.Split(path, "/")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
