package wasi

import (
	"fmt"
	"reflect"

	"github.com/keelvm/keel/exec"
)

// ModuleName is the canonical import module name for this syscall surface.
const ModuleName = "wasi_snapshot_preview1"

// Module exposes a Host's handlers as host functions under their ABI names.
// The memory reference is the guest instance's exported linear memory,
// bound at link time; each handler closes over it rather than discovering
// it through the call.
type Module struct {
	host *Host
	mem  *exec.Memory
}

func NewModule(host *Host, mem *exec.Memory) *Module {
	return &Module{host: host, mem: mem}
}

func (m *Module) Name() string {
	return ModuleName
}

func (m *Module) GetMemory(name string) (*exec.Memory, error) {
	return nil, fmt.Errorf("unknown memory %q", name)
}

func (m *Module) GetFunction(name string) (exec.Function, error) {
	switch name {
	case "args_get":
		return exec.NewHostFunction(m, reflect.ValueOf(m.argsGet)), nil
	case "args_sizes_get":
		return exec.NewHostFunction(m, reflect.ValueOf(m.argsSizesGet)), nil
	case "environ_get":
		return exec.NewHostFunction(m, reflect.ValueOf(m.environGet)), nil
	case "environ_sizes_get":
		return exec.NewHostFunction(m, reflect.ValueOf(m.environSizesGet)), nil
	case "clock_res_get":
		return exec.NewHostFunction(m, reflect.ValueOf(m.clockResGet)), nil
	case "clock_time_get":
		return exec.NewHostFunction(m, reflect.ValueOf(m.clockTimeGet)), nil
	case "fd_write":
		return exec.NewHostFunction(m, reflect.ValueOf(m.fdWrite)), nil
	default:
		return nil, fmt.Errorf("unknown function %q", name)
	}
}

// The shims below flatten the handlers to the guest-visible ABI: u32/u64
// parameters and the Errno as an i32 result.

func (m *Module) argsGet(argv, argvBuf uint32) uint32 {
	return uint32(m.host.ArgsGet(m.mem, Ptr(argv), Ptr(argvBuf)))
}

func (m *Module) argsSizesGet(argc, argvBufSize uint32) uint32 {
	return uint32(m.host.ArgsSizesGet(m.mem, Ptr(argc), Ptr(argvBufSize)))
}

func (m *Module) environGet(environ, environBuf uint32) uint32 {
	return uint32(m.host.EnvironGet(m.mem, Ptr(environ), Ptr(environBuf)))
}

func (m *Module) environSizesGet(environc, environBufSize uint32) uint32 {
	return uint32(m.host.EnvironSizesGet(m.mem, Ptr(environc), Ptr(environBufSize)))
}

func (m *Module) clockResGet(id, resolution uint32) uint32 {
	return uint32(m.host.ClockResGet(m.mem, ClockID(id), Ptr(resolution)))
}

func (m *Module) clockTimeGet(id uint32, precision uint64, timestamp uint32) uint32 {
	return uint32(m.host.ClockTimeGet(m.mem, ClockID(id), precision, Ptr(timestamp)))
}

func (m *Module) fdWrite(fd, iovs, iovsLen, nwritten uint32) uint32 {
	return uint32(m.host.FdWrite(m.mem, FD(fd), Ptr(iovs), iovsLen, Ptr(nwritten)))
}
