package nfs

// ReadInode materializes a live inode from its on-disk record. Grounded
// on the read-path mirror of newfs_utils.c's nfs_sync_inode, the kept C
// excerpt's symmetric write path.
func (sb *Superblock) ReadInode(dentry *Dentry, ino uint32) (*Inode, error) {
	offset := sb.InodeTableOffset + int64(ino)*int64(sb.Block)

	raw := make([]byte, inodeDiskSize)
	if err := sb.driverRead(offset, raw); err != nil {
		return nil, ErrIO
	}

	var d inodeDisk
	if err := unmarshalBinary(raw, &d); err != nil {
		return nil, ErrIO
	}

	live := &Inode{
		sb:     sb,
		Ino:    d.Ino,
		Size:   int64(d.Size),
		Link:   int32(d.Link),
		Kind:   FileKind(d.Ftype),
		Dentry: dentry,
	}
	live.UsedBlockNum = d.UsedBlockNum

	switch live.Kind {
	case KindDir:
		if err := sb.readDirBlocks(live, int(d.DirCnt)); err != nil {
			return nil, ErrIO
		}
	case KindFile:
		for i := 0; i < DataPerFile; i++ {
			buf := make([]byte, sb.Block)
			if live.UsedBlockNum[i] >= 0 {
				blkOff := sb.DataOffset + int64(live.UsedBlockNum[i])*int64(sb.Block)
				if err := sb.driverRead(blkOff, buf); err != nil {
					return nil, ErrIO
				}
			}
			live.Data[i] = buf
		}
	}

	dentry.Inode = live
	return live, nil
}

// readDirBlocks walks the directory's recorded data blocks in order,
// reconstructing dirCnt child dentries. Children are prepended to the
// sibling chain directly rather than through AllocDentry: AllocDentry's
// job is reserving a fresh data-bitmap bit when a directory outgrows its
// current last block, but a directory read back from disk already has
// its blocks recorded in UsedBlockNum, so re-running that reservation
// here would double-count or corrupt the data bitmap — see DESIGN.md's
// open-question resolutions.
func (sb *Superblock) readDirBlocks(dirInode *Inode, dirCnt int) error {
	perBlock := sb.layout.dentriesPerBlock()
	remaining := dirCnt

	for blk := 0; remaining > 0 && blk < DataPerFile; blk++ {
		dno := dirInode.UsedBlockNum[blk]
		if dno < 0 {
			break
		}
		blkOff := sb.DataOffset + int64(dno)*int64(sb.Block)

		raw := make([]byte, sb.Block)
		if err := sb.driverRead(blkOff, raw); err != nil {
			return err
		}

		for i := 0; i < perBlock && remaining > 0; i++ {
			var dd dentryDisk
			if err := unmarshalBinary(raw[i*dentryDiskSize:(i+1)*dentryDiskSize], &dd); err != nil {
				return err
			}

			child := &Dentry{
				Name: dd.name(),
				Ino:  dd.Ino,
				Kind: FileKind(dd.Ftype),
			}
			child.Sibling = dirInode.Children
			dirInode.Children = child
			child.Parent = dirInode.Dentry

			remaining--
		}
	}

	dirInode.DirCount = dirCnt
	return nil
}
