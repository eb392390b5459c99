package nfs

import "testing"

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	in := inodeDisk{
		Ino:    7,
		Size:   4096,
		Link:   1,
		Ftype:  uint32(KindFile),
		DirCnt: 0,
	}
	in.UsedBlockNum = [DataPerFile]int32{0, 1, -1, -1, -1, -1}

	raw := marshalBinary(&in)
	if len(raw) != inodeDiskSize {
		t.Fatalf("marshalBinary length = %d, want %d", len(raw), inodeDiskSize)
	}

	var out inodeDisk
	if err := unmarshalBinary(raw, &out); err != nil {
		t.Fatalf("unmarshalBinary error: %v", err)
	}
	if out != in {
		t.Fatalf("round trip mismatch: got %+v, want %+v", out, in)
	}
}

func TestDentryDiskName(t *testing.T) {
	var d dentryDisk
	setDentryName(&d, "hello")
	if got := d.name(); got != "hello" {
		t.Fatalf("name() = %q, want %q", got, "hello")
	}

	longest := make([]byte, NameMax)
	for i := range longest {
		longest[i] = 'x'
	}
	setDentryName(&d, string(longest))
	if got := d.name(); got != string(longest) {
		t.Fatalf("name() with a full-length name = %q, want %q", got, string(longest))
	}
}

func TestBinarySizes(t *testing.T) {
	if superblockDiskSize <= 0 {
		t.Fatalf("superblockDiskSize = %d, want > 0", superblockDiskSize)
	}
	if inodeDiskSize <= 0 {
		t.Fatalf("inodeDiskSize = %d, want > 0", inodeDiskSize)
	}
	if dentryDiskSize != NameMax+4+4 {
		t.Fatalf("dentryDiskSize = %d, want %d", dentryDiskSize, NameMax+4+4)
	}
}
