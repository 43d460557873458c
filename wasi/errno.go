package wasi

import "fmt"

// Errno is a portable status code returned by a host syscall, independent of
// the host operating system's native error numbering. Handlers never raise
// errors across the guest boundary: every failure is encoded as one of these
// values.
type Errno uint16

const (
	// No error occurred. System call completed successfully.
	ErrnoSuccess Errno = iota
	// Argument list too long.
	Errno2big
	// Permission denied.
	ErrnoAcces
	// Address in use.
	ErrnoAddrinuse
	// Address not available.
	ErrnoAddrnotavail
	// Address family not supported.
	ErrnoAfnosupport
	// Resource unavailable, or operation would block.
	ErrnoAgain
	// Connection already in progress.
	ErrnoAlready
	// Bad file descriptor.
	ErrnoBadf
	// Bad message.
	ErrnoBadmsg
	// Device or resource busy.
	ErrnoBusy
	// Operation canceled.
	ErrnoCanceled
	// No child processes.
	ErrnoChild
	// Connection aborted.
	ErrnoConnaborted
	// Connection refused.
	ErrnoConnrefused
	// Connection reset.
	ErrnoConnreset
	// Resource deadlock would occur.
	ErrnoDeadlk
	// Destination address required.
	ErrnoDestaddrreq
	// Mathematics argument out of domain of function.
	ErrnoDom
	// Storage quota exceeded.
	ErrnoDquot
	// File exists.
	ErrnoExist
	// Bad address.
	ErrnoFault
	// File too large.
	ErrnoFbig
	// Host is unreachable.
	ErrnoHostunreach
	// Identifier removed.
	ErrnoIdrm
	// Illegal byte sequence.
	ErrnoIlseq
	// Operation in progress.
	ErrnoInprogress
	// Interrupted function.
	ErrnoIntr
	// Invalid argument.
	ErrnoInval
	// I/O error.
	ErrnoIo
	// Socket is connected.
	ErrnoIsconn
	// Is a directory.
	ErrnoIsdir
	// Too many levels of symbolic links.
	ErrnoLoop
	// File descriptor value too large.
	ErrnoMfile
	// Too many links.
	ErrnoMlink
	// Message too large.
	ErrnoMsgsize
	// Reserved.
	ErrnoMultihop
	// Filename too long.
	ErrnoNametoolong
	// Network is down.
	ErrnoNetdown
	// Connection aborted by network.
	ErrnoNetreset
	// Network unreachable.
	ErrnoNetunreach
	// Too many files open in system.
	ErrnoNfile
	// No buffer space available.
	ErrnoNobufs
	// No such device.
	ErrnoNodev
	// No such file or directory.
	ErrnoNoent
	// Executable file format error.
	ErrnoNoexec
	// No locks available.
	ErrnoNolck
	// Reserved.
	ErrnoNolink
	// Not enough space.
	ErrnoNomem
	// No message of the desired type.
	ErrnoNomsg
	// Protocol not available.
	ErrnoNoprotoopt
	// No space left on device.
	ErrnoNospc
	// Function not supported.
	ErrnoNosys
	// The socket is not connected.
	ErrnoNotconn
	// Not a directory or a symbolic link to a directory.
	ErrnoNotdir
	// Directory not empty.
	ErrnoNotempty
	// State not recoverable.
	ErrnoNotrecoverable
	// Not a socket.
	ErrnoNotsock
	// Not supported, or operation not supported on socket.
	ErrnoNotsup
	// Inappropriate I/O control operation.
	ErrnoNotty
	// No such device or address.
	ErrnoNxio
	// Value too large to be stored in data type.
	ErrnoOverflow
	// Previous owner died.
	ErrnoOwnerdead
	// Operation not permitted.
	ErrnoPerm
	// Broken pipe.
	ErrnoPipe
	// Protocol error.
	ErrnoProto
	// Protocol not supported.
	ErrnoProtonosupport
	// Protocol wrong type for socket.
	ErrnoPrototype
	// Result too large.
	ErrnoRange
	// Read-only file system.
	ErrnoRofs
	// Invalid seek.
	ErrnoSpipe
	// No such process.
	ErrnoSrch
	// Reserved.
	ErrnoStale
	// Connection timed out.
	ErrnoTimedout
	// Text file busy.
	ErrnoTxtbsy
	// Cross-device link.
	ErrnoXdev
	// Extension: capabilities insufficient.
	ErrnoNotcapable
	// Extension: a host error with no portable equivalent. Unclassifiable
	// host failures always degrade to this value, never to success.
	ErrnoUnexpected
)

var errnoNames = [...]string{
	"success", "2big", "acces", "addrinuse", "addrnotavail", "afnosupport",
	"again", "already", "badf", "badmsg", "busy", "canceled", "child",
	"connaborted", "connrefused", "connreset", "deadlk", "destaddrreq",
	"dom", "dquot", "exist", "fault", "fbig", "hostunreach", "idrm",
	"ilseq", "inprogress", "intr", "inval", "io", "isconn", "isdir",
	"loop", "mfile", "mlink", "msgsize", "multihop", "nametoolong",
	"netdown", "netreset", "netunreach", "nfile", "nobufs", "nodev",
	"noent", "noexec", "nolck", "nolink", "nomem", "nomsg", "noprotoopt",
	"nospc", "nosys", "notconn", "notdir", "notempty", "notrecoverable",
	"notsock", "notsup", "notty", "nxio", "overflow", "ownerdead", "perm",
	"pipe", "proto", "protonosupport", "prototype", "range", "rofs",
	"spipe", "srch", "stale", "timedout", "txtbsy", "xdev", "notcapable",
	"unexpected",
}

func (e Errno) String() string {
	if int(e) < len(errnoNames) {
		return errnoNames[e]
	}
	return fmt.Sprintf("errno(%d)", uint16(e))
}
