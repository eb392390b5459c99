package nfs

// Inode is the live, in-memory metadata record for one file or directory.
// For FILE inodes it owns DataPerFile data buffers; for DIR inodes it owns
// a singly-linked chain of child Dentries.
type Inode struct {
	sb *Superblock

	Ino  uint32
	Size int64
	Link int32
	Kind FileKind

	// UsedBlockNum holds the data-block index for each of the
	// DataPerFile slots actually in use; -1 marks an unreserved slot.
	UsedBlockNum [DataPerFile]int32

	// Data holds one buffer per slot for FILE inodes, populated lazily:
	// allocated (but not data-bitmap-reserved) at inode-allocation time,
	// read back from disk on materialization, written through WriteBlock.
	Data [DataPerFile][]byte

	// Dentry is the (non-owning in spirit) back-reference to the dentry
	// this inode was reached through.
	Dentry *Dentry

	// Children is the head of the sibling chain for DIR inodes.
	Children *Dentry
	DirCount int
}

// IsDir reports whether this inode is a directory.
func (ino *Inode) IsDir() bool {
	return ino.Kind == KindDir
}

// IsFile reports whether this inode is a regular file.
func (ino *Inode) IsFile() bool {
	return ino.Kind == KindFile
}

// WriteBlock writes data into file data slot i, reserving a data-bitmap
// bit for that slot on first use rather than at inode allocation time —
// see DESIGN.md's open-question resolutions.
func (ino *Inode) WriteBlock(slot int, data []byte) error {
	if ino.Kind != KindFile {
		return ErrIsDir
	}
	if slot < 0 || slot >= DataPerFile {
		return ErrInval
	}
	if len(data) > ino.sb.Block {
		return ErrInval
	}

	if ino.UsedBlockNum[slot] < 0 {
		dno, err := ino.sb.allocDataBlock()
		if err != nil {
			return err
		}
		ino.UsedBlockNum[slot] = int32(dno)
	}

	if ino.Data[slot] == nil {
		ino.Data[slot] = make([]byte, ino.sb.Block)
	}
	for i := range ino.Data[slot] {
		ino.Data[slot][i] = 0
	}
	copy(ino.Data[slot], data)

	end := int64(slot)*int64(ino.sb.Block) + int64(len(data))
	if end > ino.Size {
		ino.Size = end
	}
	return nil
}
