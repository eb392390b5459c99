// Command nfsctl drives the nfs core library against a real or virtual
// block device: a usage string, a switch over os.Args[1], and one
// function per subcommand.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/HanFayeDD/nfs"
)

const usage = `nfsctl - NFS virtual disk CLI tool

Usage:
  nfsctl format <device> [size]             Format (or mount) a virtual disk of [size] bytes (default 4 MiB)
  nfsctl ls <device> <path>                 List entries under <path>
  nfsctl mkdir <device> <path>               Create a directory at <path>
  nfsctl write <device> <path> <text>       Create a file at <path> with <text> as its contents
  nfsctl cat <device> <path>                Print a file's contents
  nfsctl stat <device> <path>               Print an inode's metadata
  nfsctl snapshot <device> <out.zst>        Write a compressed image snapshot
  nfsctl restore <image> <device>           Restore a device image (raw or .xz)
  nfsctl help                               Show this help message
`

func main() {
	if len(os.Args) < 2 {
		fmt.Println(usage)
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "format":
		err = runFormat(os.Args[2:])
	case "ls":
		err = runLs(os.Args[2:])
	case "mkdir":
		err = runMkdir(os.Args[2:])
	case "write":
		err = runWrite(os.Args[2:])
	case "cat":
		err = runCat(os.Args[2:])
	case "stat":
		err = runStat(os.Args[2:])
	case "snapshot":
		err = runSnapshot(os.Args[2:])
	case "restore":
		err = runRestore(os.Args[2:])
	case "help":
		fmt.Println(usage)
		return
	default:
		fmt.Printf("Error: unknown command %q\n", os.Args[1])
		fmt.Println(usage)
		os.Exit(1)
	}

	if err != nil {
		log.Fatalf("nfsctl: %s", err)
	}
}

func defaultSize() int64 {
	return 4 << 20 // 4 MiB reference device size.
}

func mount(device string) (*nfs.Superblock, error) {
	dev, err := nfs.OpenFileDevice(device, defaultSize())
	if err != nil {
		return nil, err
	}
	return nfs.Mount(dev)
}

func runFormat(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: nfsctl format <device> [size]")
	}
	size := defaultSize()
	if len(args) > 1 {
		var s int64
		if _, err := fmt.Sscanf(args[1], "%d", &s); err == nil && s > 0 {
			size = s
		}
	}
	dev, err := nfs.OpenFileDevice(args[0], size)
	if err != nil {
		return err
	}
	sb, err := nfs.Mount(dev)
	if err != nil {
		return err
	}
	fmt.Printf("formatted %s: magic=0x%x usage=%d\n", args[0], sb.Magic, sb.Usage)
	return sb.Umount()
}

func runLs(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: nfsctl ls <device> <path>")
	}
	sb, err := mount(args[0])
	if err != nil {
		return err
	}
	defer sb.Umount()

	d, isFind, _, err := sb.Lookup(args[1])
	if err != nil {
		return err
	}
	if !isFind {
		return fmt.Errorf("%s: not found", args[1])
	}
	if !d.Inode.IsDir() {
		fmt.Println(d.Name)
		return nil
	}
	for c := d.Inode.Children; c != nil; c = c.Sibling {
		fmt.Printf("%s\t%s\tino=%d\n", c.Kind, c.Name, c.Ino)
	}
	return nil
}

func runMkdir(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: nfsctl mkdir <device> <path>")
	}
	sb, err := mount(args[0])
	if err != nil {
		return err
	}
	defer sb.Umount()

	parentPath, name := splitParent(args[1])
	parent, isFind, _, err := sb.Lookup(parentPath)
	if err != nil {
		return err
	}
	if !isFind {
		return fmt.Errorf("%s: not found", parentPath)
	}
	_, err = sb.CreateChild(parent, name, nfs.KindDir)
	return err
}

func runWrite(args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("usage: nfsctl write <device> <path> <text>")
	}
	sb, err := mount(args[0])
	if err != nil {
		return err
	}
	defer sb.Umount()

	parentPath, name := splitParent(args[1])
	parent, isFind, _, err := sb.Lookup(parentPath)
	if err != nil {
		return err
	}
	if !isFind {
		return fmt.Errorf("%s: not found", parentPath)
	}
	child, err := sb.CreateChild(parent, name, nfs.KindFile)
	if err != nil {
		return err
	}
	return child.Inode.WriteBlock(0, []byte(args[2]))
}

func runCat(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: nfsctl cat <device> <path>")
	}
	sb, err := mount(args[0])
	if err != nil {
		return err
	}
	defer sb.Umount()

	d, isFind, _, err := sb.Lookup(args[1])
	if err != nil {
		return err
	}
	if !isFind || d.Inode.IsDir() {
		return fmt.Errorf("%s: not a file", args[1])
	}
	remaining := d.Inode.Size
	for i := 0; i < nfs.DataPerFile && remaining > 0; i++ {
		n := int64(len(d.Inode.Data[i]))
		if n > remaining {
			n = remaining
		}
		os.Stdout.Write(d.Inode.Data[i][:n])
		remaining -= n
	}
	return nil
}

func runStat(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: nfsctl stat <device> <path>")
	}
	sb, err := mount(args[0])
	if err != nil {
		return err
	}
	defer sb.Umount()

	d, isFind, _, err := sb.Lookup(args[1])
	if err != nil {
		return err
	}
	if !isFind {
		return fmt.Errorf("%s: not found", args[1])
	}
	fmt.Printf("ino=%d kind=%s size=%d link=%d dircount=%d\n",
		d.Inode.Ino, d.Inode.Kind, d.Inode.Size, d.Inode.Link, d.Inode.DirCount)
	return nil
}

func runSnapshot(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: nfsctl snapshot <device> <out.zst>")
	}
	sb, err := mount(args[0])
	if err != nil {
		return err
	}
	defer sb.Umount()

	out, err := os.Create(args[1])
	if err != nil {
		return err
	}
	defer out.Close()

	return nfs.Snapshot(sb, out)
}

func runRestore(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: nfsctl restore <image> <device>")
	}
	in, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer in.Close()

	return nfs.Restore(args[1], in)
}

// splitParent splits "/a/b/c" into ("/a/b", "c"); "/" has no parent and
// this is never called with it.
func splitParent(path string) (parent, name string) {
	i := len(path) - 1
	for i > 0 && path[i] != '/' {
		i--
	}
	if i == 0 {
		return "/", path[1:]
	}
	return path[:i], path[i+1:]
}
