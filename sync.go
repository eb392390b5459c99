package nfs

// SyncInode writes inode and everything beneath it back to disk. Grounded
// almost line for line on newfs_utils.c's nfs_sync_inode:
// write the inode record, then either the file's data buffers or, for a
// directory, every child dentry record across the directory's data
// blocks, recursing into any child whose inode is already materialized.
func (sb *Superblock) SyncInode(inode *Inode) error {
	d := inodeDisk{
		Ino:          inode.Ino,
		Size:         uint32(inode.Size),
		Link:         uint32(inode.Link),
		Ftype:        uint32(inode.Kind),
		UsedBlockNum: inode.UsedBlockNum,
		DirCnt:       uint32(inode.DirCount),
	}

	offset := sb.InodeTableOffset + int64(inode.Ino)*int64(sb.Block)
	if err := sb.driverWrite(offset, marshalBinary(&d)); err != nil {
		return ErrIO
	}

	switch inode.Kind {
	case KindFile:
		for i := 0; i < DataPerFile; i++ {
			if inode.UsedBlockNum[i] < 0 {
				continue
			}
			blkOff := sb.DataOffset + int64(inode.UsedBlockNum[i])*int64(sb.Block)
			if err := sb.driverWrite(blkOff, inode.Data[i]); err != nil {
				return ErrIO
			}
		}
	case KindDir:
		if err := sb.syncDirBlocks(inode); err != nil {
			return err
		}
	}

	return nil
}

func (sb *Superblock) syncDirBlocks(inode *Inode) error {
	perBlock := sb.layout.dentriesPerBlock()
	cursor := inode.Children
	blkNumber := 0

	for cursor != nil && blkNumber < DataPerFile {
		dno := inode.UsedBlockNum[blkNumber]
		if dno < 0 {
			break
		}
		blockStart := sb.DataOffset + int64(dno)*int64(sb.Block)
		blockEnd := blockStart + int64(perBlock*dentryDiskSize)

		offset := blockStart
		for cursor != nil && offset < blockEnd {
			var dd dentryDisk
			setDentryName(&dd, cursor.Name)
			dd.Ino = cursor.Ino
			dd.Ftype = uint32(cursor.Kind)

			if err := sb.driverWrite(offset, marshalBinary(&dd)); err != nil {
				return ErrIO
			}

			if cursor.Inode != nil {
				if err := sb.SyncInode(cursor.Inode); err != nil {
					return err
				}
			}

			cursor = cursor.Sibling
			offset += int64(dentryDiskSize)
		}
		blkNumber++
	}

	return nil
}
