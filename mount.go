package nfs

// Mount opens a filesystem over device, performing first-time formatting
// in memory if the superblock's magic doesn't match. Grounded on
// newfs_utils.c's mount routine (implied by types.h's is_mounted/magic_num
// fields) and on squashfs.New's read-superblock-then-construct shape.
func Mount(device Device, opts ...Option) (*Superblock, error) {
	ioUnit, err := device.IOUnit()
	if err != nil {
		return nil, ErrIO
	}
	diskSize, err := device.Size()
	if err != nil {
		return nil, ErrIO
	}

	sb := &Superblock{
		device:   device,
		IOUnit:   ioUnit,
		Block:    2 * ioUnit,
		DiskSize: diskSize,
	}
	for _, opt := range opts {
		if err := opt(sb); err != nil {
			return nil, err
		}
	}

	sb.layout = newLayout(sb.Block)

	root := newDentry("/", KindDir)

	var sbd superblockDisk
	head := make([]byte, superblockDiskSize)
	if err := sb.driverRead(sb.layout.superOffset, head); err != nil {
		return nil, ErrIO
	}
	if err := unmarshalBinary(head, &sbd); err != nil {
		return nil, ErrIO
	}

	isInit := sbd.Magic != Magic
	if isInit {
		sb.logf("nfs: magic mismatch, formatting in memory")
		sb.MaxIno = sb.layout.maxIno
		sb.MaxData = sb.layout.maxData
		sb.InodeBitmapBlocks = sb.layout.inodeMapBlocks
		sb.InodeBitmapOffset = sb.layout.inodeMapOffset
		sb.DataBitmapBlocks = sb.layout.dataMapBlocks
		sb.DataBitmapOffset = sb.layout.dataMapOffset
		sb.InodeTableOffset = sb.layout.inodeTableOffset
		sb.DataOffset = sb.layout.dataOffset
		sb.Usage = 0
		sb.Magic = Magic
	} else {
		sb.Magic = sbd.Magic
		sb.Usage = int(sbd.Usage)
		sb.InodeBitmapBlocks = int(sbd.InodeMapBlocks)
		sb.InodeBitmapOffset = int64(sbd.InodeMapOffset)
		sb.DataBitmapOffset = int64(sbd.DataMapOffset)
		sb.DataBitmapBlocks = int(sbd.DataMapBlocks)
		sb.DataOffset = int64(sbd.DataOffset)
		sb.InodeTableOffset = int64(sbd.InodeOffset)
		sb.MaxIno = sb.layout.maxIno
		sb.MaxData = sb.layout.maxData
	}

	// Allocate both bitmaps to their block-sized byte extents. On a
	// first-time mount these must be zeroed before any allocation runs,
	// so that first-fit returns index 0 for the root inode; make()
	// already zero-fills, so this is automatic in Go.
	sb.InodeBitmap = make([]byte, sb.InodeBitmapBlocks*sb.Block)
	sb.DataBitmap = make([]byte, sb.DataBitmapBlocks*sb.Block)

	if !isInit {
		if err := sb.driverRead(sb.InodeBitmapOffset, sb.InodeBitmap); err != nil {
			return nil, ErrIO
		}
		if err := sb.driverRead(sb.DataBitmapOffset, sb.DataBitmap); err != nil {
			return nil, ErrIO
		}
	}

	if isInit {
		rootIno, err := sb.AllocInode(root)
		if err != nil {
			return nil, err
		}
		if err := sb.SyncInode(rootIno); err != nil {
			return nil, err
		}
	}

	rootIno, err := sb.ReadInode(root, RootIno)
	if err != nil {
		return nil, err
	}
	root.Inode = rootIno
	root.Ino = RootIno

	sb.Root = root
	sb.Mounted = true
	return sb, nil
}
