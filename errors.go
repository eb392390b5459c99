package nfs

import "fmt"

// Errno is a numeric error code, kept distinct so it can be propagated to
// an upstream VFS binding as a negative number via errors.As.
type Errno int

const (
	ErrNone Errno = iota
	ErrAccess
	ErrSeek
	ErrIsDir
	ErrNoSpace
	ErrExists
	ErrNotFound
	ErrUnsupported
	ErrIO
	ErrInval
)

var errnoNames = [...]string{
	ErrNone:        "none",
	ErrAccess:      "access denied",
	ErrSeek:        "invalid seek",
	ErrIsDir:       "is a directory",
	ErrNoSpace:     "no space left on device",
	ErrExists:      "already exists",
	ErrNotFound:    "not found",
	ErrUnsupported: "unsupported",
	ErrIO:          "input/output error",
	ErrInval:       "invalid argument",
}

// Error satisfies the error interface, so an Errno can be returned directly
// from any core operation and compared with errors.Is against the sentinel
// values below.
func (e Errno) Error() string {
	if int(e) >= 0 && int(e) < len(errnoNames) {
		return errnoNames[e]
	}
	return fmt.Sprintf("nfs: errno(%d)", int(e))
}

// Code returns the negative numeric code an upstream VFS binding expects
// ("errors are returned as negative values from the producing function").
func (e Errno) Code() int {
	return -int(e)
}

// Sentinel error aliases (none for ErrAccess or ErrSeek), following the familiar exported
// errors.New-style var convention (usable with errors.Is) but backed by
// the numeric Errno so the code survives.
var (
	ErrNoSpaceErr     = ErrNoSpace
	ErrIOErr          = ErrIO
	ErrNotFoundErr    = ErrNotFound
	ErrInvalErr       = ErrInval
	ErrExistsErr      = ErrExists
	ErrIsDirErr       = ErrIsDir
	ErrUnsupportedErr = ErrUnsupported
)
