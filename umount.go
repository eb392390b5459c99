package nfs

// Umount recursively syncs the whole reachable tree, then persists the
// bitmaps and superblock, then releases the device. A failure at any
// step aborts the whole unmount; subsequent steps are skipped.
func (sb *Superblock) Umount() error {
	if !sb.Mounted {
		return nil
	}

	if err := sb.SyncInode(sb.Root.Inode); err != nil {
		return err
	}

	d := superblockDisk{
		Magic:          sb.Magic,
		Usage:          uint32(sb.Usage),
		InodeMapBlocks: uint32(sb.InodeBitmapBlocks),
		InodeMapOffset: uint64(sb.InodeBitmapOffset),
		DataMapOffset:  uint64(sb.DataBitmapOffset),
		DataMapBlocks:  uint32(sb.DataBitmapBlocks),
		DataOffset:     uint64(sb.DataOffset),
		InodeOffset:    uint64(sb.InodeTableOffset),
	}
	if err := sb.driverWrite(sb.layout.superOffset, marshalBinary(&d)); err != nil {
		return ErrIO
	}

	if err := sb.driverWrite(sb.InodeBitmapOffset, sb.InodeBitmap); err != nil {
		return ErrIO
	}
	if err := sb.driverWrite(sb.DataBitmapOffset, sb.DataBitmap); err != nil {
		return ErrIO
	}

	sb.InodeBitmap = nil
	sb.DataBitmap = nil
	sb.Mounted = false

	if err := sb.device.Close(); err != nil {
		return ErrIO
	}

	return nil
}
