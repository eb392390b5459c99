package nfs

import (
	"bytes"
	"encoding/binary"
	"reflect"
)

// On-disk records, bit-exact with the layout they describe. Field order is
// the wire order; every field must be a fixed-size type so encoding/binary
// can (de)serialize it directly.

type superblockDisk struct {
	Magic          uint32
	Usage          uint32
	InodeMapBlocks uint32
	InodeMapOffset uint64
	DataMapOffset  uint64
	DataMapBlocks  uint32
	DataOffset     uint64
	InodeOffset    uint64
}

type inodeDisk struct {
	Ino          uint32
	Size         uint32
	Link         uint32
	Ftype        uint32
	UsedBlockNum [DataPerFile]int32
	DirCnt       uint32
}

type dentryDisk struct {
	Fname [NameMax]byte
	Ino   uint32
	Ftype uint32
}

// diskOrder is the fixed byte order used for every on-disk record: plain
// little-endian, never byte-swapped. Unlike a format that detects byte
// order from a magic string that can appear in either endianness, this
// format has a single magic value, so little-endian is simply fixed
// rather than sniffed.
var diskOrder = binary.LittleEndian

// marshalBinary serializes v (a pointer to a fixed-size struct of exported
// fields) into wire bytes, using reflection to walk fields the same way
// unmarshalBinary does for reading.
func marshalBinary(v any) []byte {
	var buf bytes.Buffer
	rv := reflect.ValueOf(v).Elem()
	for i := 0; i < rv.NumField(); i++ {
		name := rv.Type().Field(i).Name
		if name[0] < 'A' || name[0] > 'Z' {
			continue
		}
		// binary.Write requires an addressable value for non-pointer
		// kinds too; Interface() on a field value is sufficient here
		// since every field is a fixed-size numeric type or array.
		if err := binary.Write(&buf, diskOrder, rv.Field(i).Interface()); err != nil {
			panic("nfs: marshalBinary: " + err.Error())
		}
	}
	return buf.Bytes()
}

// unmarshalBinary is the read-path mirror of marshalBinary, grounded on
// squashfs/super.go's UnmarshalBinary (same reflect-over-exported-fields
// technique, generalized to any disk struct instead of only the superblock).
func unmarshalBinary(data []byte, v any) error {
	r := bytes.NewReader(data)
	rv := reflect.ValueOf(v).Elem()
	for i := 0; i < rv.NumField(); i++ {
		name := rv.Type().Field(i).Name
		if name[0] < 'A' || name[0] > 'Z' {
			continue
		}
		if err := binary.Read(r, diskOrder, rv.Field(i).Addr().Interface()); err != nil {
			return err
		}
	}
	return nil
}

// binarySize returns the exact wire size of a disk struct, mirroring
// squashfs/super.go's binarySize.
func binarySize(v any) int {
	rv := reflect.ValueOf(v).Elem()
	sz := 0
	for i := 0; i < rv.NumField(); i++ {
		name := rv.Type().Field(i).Name
		if name[0] < 'A' || name[0] > 'Z' {
			continue
		}
		sz += int(rv.Field(i).Type().Size())
	}
	return sz
}

var (
	superblockDiskSize = binarySize(&superblockDisk{})
	inodeDiskSize      = binarySize(&inodeDisk{})
)

func (d *dentryDisk) name() string {
	n := bytes.IndexByte(d.Fname[:], 0)
	if n < 0 {
		n = len(d.Fname)
	}
	return string(d.Fname[:n])
}

func setDentryName(d *dentryDisk, name string) {
	for i := range d.Fname {
		d.Fname[i] = 0
	}
	copy(d.Fname[:], name)
}
