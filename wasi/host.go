package wasi

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"syscall"

	"go.uber.org/zap"

	"github.com/keelvm/keel/exec"
)

// maxIovs is the maximum number of iovec descriptors serviced by a single
// fd_write call. A larger count is a caller-contract violation and is
// rejected with ErrnoInval.
const maxIovs = 128

// Options configures a Host. Nil writers default to the process's standard
// streams; a nil Clock defaults to the host system's clocks.
type Options struct {
	Args []string
	Env  map[string]string

	Stdout io.Writer
	Stderr io.Writer

	Clock Clock
}

// A Host answers the syscalls issued by guest bytecode. The argument and
// environment vectors are fixed at construction and immutable for the run;
// the Host holds no other cross-call state. Handlers receive the guest's
// memory accessor explicitly and perform all reads and writes within their
// own execution. A memory accessor fault (exec.Trap) propagates out of a
// handler unmodified.
type Host struct {
	args []string
	env  []string

	stdout io.Writer
	stderr io.Writer

	clock Clock
}

// NewHost creates a host with the given options. With nil options the host
// inherits the process's environment and standard streams and has an empty
// argument vector.
func NewHost(opts *Options) *Host {
	h := &Host{
		env:    os.Environ(),
		stdout: os.Stdout,
		stderr: os.Stderr,
		clock:  systemClock{},
	}
	if opts == nil {
		return h
	}

	h.args = opts.Args
	if opts.Env != nil {
		h.env = make([]string, 0, len(opts.Env))
		for k, v := range opts.Env {
			h.env = append(h.env, fmt.Sprintf("%s=%s", k, v))
		}
		sort.Strings(h.env)
	}
	if opts.Stdout != nil {
		h.stdout = opts.Stdout
	}
	if opts.Stderr != nil {
		h.stderr = opts.Stderr
	}
	if opts.Clock != nil {
		h.clock = opts.Clock
	}
	return h
}

// ArgsGet writes the argument vector into guest memory: one pointer per
// string at argv, and the strings serialized back-to-back at argvBuf, each
// followed by a NUL byte.
func (h *Host) ArgsGet(mem *exec.Memory, argv, argvBuf Ptr) Errno {
	return writeStrings(mem, h.args, argv, argvBuf)
}

// ArgsSizesGet writes the argument count and the buffer size required by
// ArgsGet.
func (h *Host) ArgsSizesGet(mem *exec.Memory, argc, argvBufSize Ptr) Errno {
	return writeStringSizes(mem, h.args, argc, argvBufSize)
}

// EnvironGet writes the environment vector into guest memory with the same
// layout as ArgsGet.
func (h *Host) EnvironGet(mem *exec.Memory, environ, environBuf Ptr) Errno {
	return writeStrings(mem, h.env, environ, environBuf)
}

// EnvironSizesGet writes the environment count and the buffer size required
// by EnvironGet.
func (h *Host) EnvironSizesGet(mem *exec.Memory, environc, environBufSize Ptr) Errno {
	return writeStringSizes(mem, h.env, environc, environBufSize)
}

// writeStrings serializes a string table: pointer i equals
// buf + sum(len(s_0..s_i-1) + 1).
func writeStrings(mem *exec.Memory, strs []string, vec, buf Ptr) Errno {
	for i, s := range strs {
		mem.PutUint32(uint32(buf), uint32(vec.Elem(uint32(i), 4)))
		mem.PutBytes([]byte(s), uint32(buf))
		mem.PutByte(0, uint32(buf)+uint32(len(s)))
		buf += Ptr(len(s) + 1)
	}
	return ErrnoSuccess
}

func writeStringSizes(mem *exec.Memory, strs []string, count, bufSize Ptr) Errno {
	size := uint32(0)
	for _, s := range strs {
		size += uint32(len(s)) + 1
	}
	mem.PutUint32(uint32(len(strs)), uint32(count))
	mem.PutUint32(size, uint32(bufSize))
	return ErrnoSuccess
}

// FdWrite gathers iovsLen buffers described at iovs and writes them, in
// argument order, to the stream selected by fd. On success the total number
// of bytes written is stored at nwritten. Only stdout and stderr are
// writable: any other descriptor yields ErrnoBadf.
func (h *Host) FdWrite(mem *exec.Memory, fd FD, iovs Ptr, iovsLen Size, nwritten Ptr) Errno {
	if fd.Rights()&RightsFdWrite == 0 {
		return ErrnoBadf
	}
	w := h.stdout
	if fd == FdStderr {
		w = h.stderr
	}

	if iovsLen > maxIovs {
		return ErrnoInval
	}

	total := Size(0)
	for i := uint32(0); i < iovsLen; i++ {
		var vec Iovec
		vec.load(mem, uint32(iovs.Elem(i, iovecSize)))

		n, err := w.Write(mem.Bytes(uint32(vec.Buf), vec.Len))
		total += Size(n)
		if err != nil {
			return writeErrno(err)
		}
	}

	mem.PutUint32(total, uint32(nwritten))
	return ErrnoSuccess
}

// writeErrno maps a host write failure onto the portable status vocabulary.
// Conditions with no defined mapping degrade to ErrnoUnexpected, never to
// success.
func writeErrno(err error) Errno {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		switch errno {
		case syscall.EDQUOT:
			return ErrnoDquot
		case syscall.EFBIG:
			return ErrnoFbig
		case syscall.EIO:
			return ErrnoIo
		case syscall.ENOSPC:
			return ErrnoNospc
		case syscall.EACCES, syscall.EPERM:
			return ErrnoAcces
		case syscall.EPIPE:
			return ErrnoPipe
		case syscall.ENOBUFS:
			return ErrnoNobufs
		case syscall.EBADF:
			return ErrnoBadf
		case syscall.EAGAIN:
			return ErrnoAgain
		}
	}

	switch {
	case errors.Is(err, io.ErrClosedPipe):
		return ErrnoPipe
	case errors.Is(err, os.ErrClosed):
		return ErrnoBadf
	case errors.Is(err, os.ErrPermission):
		return ErrnoAcces
	}

	Logger().Debug("unmapped host write error", zap.Error(err))
	return ErrnoUnexpected
}
