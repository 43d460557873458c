package wasi

import (
	"bytes"
	"errors"
	"io"
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keelvm/keel/exec"
)

func newTestHost(t *testing.T, opts *Options) (*Host, *exec.Memory) {
	t.Helper()
	mem := exec.NewMemory(1, 1)
	return NewHost(opts), &mem
}

func TestArgs(t *testing.T) {
	host, mem := newTestHost(t, &Options{Args: []string{"a", "bb"}})

	const argc, bufSize = 0, 4
	require.Equal(t, ErrnoSuccess, host.ArgsSizesGet(mem, argc, bufSize))
	assert.Equal(t, uint32(2), mem.Uint32(argc))
	assert.Equal(t, uint32(5), mem.Uint32(bufSize))

	const argv, buf = 16, 64
	require.Equal(t, ErrnoSuccess, host.ArgsGet(mem, argv, buf))
	assert.Equal(t, uint32(buf), mem.Uint32(argv))
	assert.Equal(t, uint32(buf+2), mem.Uint32(argv+4))
	assert.Equal(t, []byte("a\x00bb\x00"), mem.Bytes(buf, 5))
}

func TestArgsEmpty(t *testing.T) {
	host, mem := newTestHost(t, &Options{})

	require.Equal(t, ErrnoSuccess, host.ArgsSizesGet(mem, 0, 4))
	assert.Equal(t, uint32(0), mem.Uint32(0))
	assert.Equal(t, uint32(0), mem.Uint32(4))

	assert.Equal(t, ErrnoSuccess, host.ArgsGet(mem, 16, 64))
}

func TestEnviron(t *testing.T) {
	host, mem := newTestHost(t, &Options{Env: map[string]string{
		"PATH": "/bin",
		"HOME": "/root",
	}})

	require.Equal(t, ErrnoSuccess, host.EnvironSizesGet(mem, 0, 4))
	assert.Equal(t, uint32(2), mem.Uint32(0))
	assert.Equal(t, uint32(21), mem.Uint32(4))

	const environ, buf = 16, 64
	require.Equal(t, ErrnoSuccess, host.EnvironGet(mem, environ, buf))

	// Entries are serialized in sorted key order.
	assert.Equal(t, uint32(buf), mem.Uint32(environ))
	assert.Equal(t, uint32(buf+11), mem.Uint32(environ+4))
	assert.Equal(t, []byte("HOME=/root\x00PATH=/bin\x00"), mem.Bytes(buf, 21))
}

func putIovec(mem *exec.Memory, addr, buf, n uint32) {
	mem.PutUint32(buf, addr)
	mem.PutUint32(n, addr+4)
}

func TestFdWrite(t *testing.T) {
	var stdout, stderr bytes.Buffer
	host, mem := newTestHost(t, &Options{Stdout: &stdout, Stderr: &stderr})

	mem.PutBytes([]byte("hello"), 100)
	mem.PutBytes([]byte(", world"), 200)
	putIovec(mem, 0, 100, 5)
	putIovec(mem, 8, 200, 7)

	const nwritten = 64
	require.Equal(t, ErrnoSuccess, host.FdWrite(mem, FdStdout, 0, 2, nwritten))
	assert.Equal(t, uint32(12), mem.Uint32(nwritten))
	assert.Equal(t, "hello, world", stdout.String())
	assert.Empty(t, stderr.String())

	require.Equal(t, ErrnoSuccess, host.FdWrite(mem, FdStderr, 0, 1, nwritten))
	assert.Equal(t, uint32(5), mem.Uint32(nwritten))
	assert.Equal(t, "hello", stderr.String())
}

func TestFdWriteZeroIovs(t *testing.T) {
	var stdout bytes.Buffer
	host, mem := newTestHost(t, &Options{Stdout: &stdout})

	require.Equal(t, ErrnoSuccess, host.FdWrite(mem, FdStdout, 0, 0, 64))
	assert.Equal(t, uint32(0), mem.Uint32(64))
	assert.Empty(t, stdout.String())
}

func TestFdWriteBadf(t *testing.T) {
	host, mem := newTestHost(t, nil)

	assert.Equal(t, ErrnoBadf, host.FdWrite(mem, FdStdin, 0, 0, 64))
	assert.Equal(t, ErrnoBadf, host.FdWrite(mem, FD(7), 0, 0, 64))
}

func TestFdWriteTooManyIovs(t *testing.T) {
	var stdout bytes.Buffer
	host, mem := newTestHost(t, &Options{Stdout: &stdout})

	assert.Equal(t, ErrnoInval, host.FdWrite(mem, FdStdout, 0, maxIovs+1, 64))
	assert.Empty(t, stdout.String())
}

type failWriter struct {
	err error
}

func (w failWriter) Write(p []byte) (int, error) {
	return 0, w.err
}

func TestFdWriteErrno(t *testing.T) {
	cases := []struct {
		err  error
		want Errno
	}{
		{syscall.EDQUOT, ErrnoDquot},
		{syscall.EFBIG, ErrnoFbig},
		{syscall.EIO, ErrnoIo},
		{syscall.ENOSPC, ErrnoNospc},
		{syscall.EACCES, ErrnoAcces},
		{syscall.EPERM, ErrnoAcces},
		{syscall.EPIPE, ErrnoPipe},
		{syscall.ENOBUFS, ErrnoNobufs},
		{syscall.EBADF, ErrnoBadf},
		{syscall.EAGAIN, ErrnoAgain},
		{&os.PathError{Op: "write", Err: syscall.ENOSPC}, ErrnoNospc},
		{io.ErrClosedPipe, ErrnoPipe},
		{os.ErrClosed, ErrnoBadf},
		{os.ErrPermission, ErrnoAcces},
		{errors.New("boom"), ErrnoUnexpected},
	}
	for _, c := range cases {
		t.Run(c.err.Error(), func(t *testing.T) {
			host, mem := newTestHost(t, &Options{Stdout: failWriter{c.err}})
			putIovec(mem, 0, 100, 5)
			assert.Equal(t, c.want, host.FdWrite(mem, FdStdout, 0, 1, 64))
		})
	}
}

func TestFdWriteFault(t *testing.T) {
	var stdout bytes.Buffer
	host, mem := newTestHost(t, &Options{Stdout: &stdout})

	// An iovec that points past the end of memory must trap, not error.
	putIovec(mem, 0, exec.PageSize-2, 5)
	assert.PanicsWithValue(t, exec.TrapOutOfBoundsMemoryAccess, func() {
		host.FdWrite(mem, FdStdout, 0, 1, 64)
	})
}

func TestErrnoString(t *testing.T) {
	assert.Equal(t, "success", ErrnoSuccess.String())
	assert.Equal(t, "badf", ErrnoBadf.String())
	assert.Equal(t, "notcapable", ErrnoNotcapable.String())
	assert.Equal(t, "unexpected", ErrnoUnexpected.String())
}
