package nfs

// Fixed on-disk layout constants. Part of the on-disk contract: changing
// any of these invalidates every image created with a prior value.
const (
	// Magic is the superblock signature used to detect a first-time mount.
	Magic uint32 = 0x52415453

	// NameMax is the maximum filename length, in bytes.
	NameMax = 128

	// InodesPerBlock is the nominal inode packing factor. Packing is
	// nominal, not enforced: every inode still occupies a full logical
	// block on disk regardless of this packing factor.
	InodesPerBlock = 16

	// DataPerFile is the fixed number of data-block slots an inode owns,
	// used both for a regular file's data buffers and for a directory's
	// data blocks.
	DataPerFile = 6

	// RootIno is the inode number of "/".
	RootIno = 0

	superBlocks      = 1
	inodeMapBlocks   = 1
	dataMapBlocks    = 1
	inodeTableBlocks = 585
	dataRegionBlocks = 3508
)

// dentryDiskSize is sizeof(Dentry_d): fname[NameMax] + ino(uint32) + ftype(uint32).
const dentryDiskSize = NameMax + 4 + 4

// layout holds the derived, size-dependent region offsets for a given
// block size. Region order is fixed: SUPER -> INODE_MAP -> DATA_MAP ->
// INODE_TABLE -> DATA.
type layout struct {
	block int

	superOffset      int64
	inodeMapOffset   int64
	inodeMapBlocks   int
	dataMapOffset    int64
	dataMapBlocks    int
	inodeTableOffset int64
	inodeTableBlocks int
	dataOffset       int64
	dataBlocks       int

	maxIno  int
	maxData int
}

// newLayout derives every region offset from the logical block size, in
// fixed region order: SUPER -> INODE_MAP -> DATA_MAP -> INODE_TABLE -> DATA.
func newLayout(block int) *layout {
	l := &layout{
		block:            block,
		inodeMapBlocks:   inodeMapBlocks,
		dataMapBlocks:    dataMapBlocks,
		inodeTableBlocks: inodeTableBlocks,
		dataBlocks:       dataRegionBlocks,
		maxIno:           inodeTableBlocks,
		maxData:          dataRegionBlocks,
	}

	l.superOffset = 0
	l.inodeMapOffset = l.superOffset + int64(superBlocks*block)
	l.dataMapOffset = l.inodeMapOffset + int64(l.inodeMapBlocks*block)
	l.inodeTableOffset = l.dataMapOffset + int64(l.dataMapBlocks*block)
	l.dataOffset = l.inodeTableOffset + int64(l.inodeTableBlocks*block)

	return l
}

// size returns the minimum device size this layout requires.
func (l *layout) size() int64 {
	return l.dataOffset + int64(l.dataBlocks*l.block)
}

// dentriesPerBlock returns how many Dentry_d records fit in one logical block.
func (l *layout) dentriesPerBlock() int {
	return l.block / dentryDiskSize
}

func roundDown(value, round int64) int64 {
	if round == 0 || value%round == 0 {
		return value
	}
	return (value / round) * round
}

func roundUp(value, round int64) int64 {
	if round == 0 || value%round == 0 {
		return value
	}
	return (value/round + 1) * round
}
