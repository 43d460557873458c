package wasi

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keelvm/keel/exec"
)

func TestModuleName(t *testing.T) {
	mem := exec.NewMemory(1, 1)
	m := NewModule(NewHost(nil), &mem)
	assert.Equal(t, "wasi_snapshot_preview1", m.Name())
}

func TestModuleGetFunction(t *testing.T) {
	mem := exec.NewMemory(1, 1)
	m := NewModule(NewHost(nil), &mem)

	i32 := exec.ValueTypeI32
	cases := []struct {
		name string
		sig  exec.Signature
	}{
		{"args_get", exec.Signature{Params: []exec.ValueType{i32, i32}, Results: []exec.ValueType{i32}}},
		{"args_sizes_get", exec.Signature{Params: []exec.ValueType{i32, i32}, Results: []exec.ValueType{i32}}},
		{"environ_get", exec.Signature{Params: []exec.ValueType{i32, i32}, Results: []exec.ValueType{i32}}},
		{"environ_sizes_get", exec.Signature{Params: []exec.ValueType{i32, i32}, Results: []exec.ValueType{i32}}},
		{"clock_res_get", exec.Signature{Params: []exec.ValueType{i32, i32}, Results: []exec.ValueType{i32}}},
		{"clock_time_get", exec.Signature{Params: []exec.ValueType{i32, exec.ValueTypeI64, i32}, Results: []exec.ValueType{i32}}},
		{"fd_write", exec.Signature{Params: []exec.ValueType{i32, i32, i32, i32}, Results: []exec.ValueType{i32}}},
	}
	for _, c := range cases {
		f, err := m.GetFunction(c.name)
		require.NoError(t, err, c.name)
		assert.True(t, c.sig.Equals(f.GetSignature()), c.name)
	}

	_, err := m.GetFunction("proc_exit")
	assert.Error(t, err)

	_, err = m.GetMemory("memory")
	assert.Error(t, err)
}

func TestModuleUncheckedCall(t *testing.T) {
	var stdout bytes.Buffer
	mem := exec.NewMemory(1, 1)
	m := NewModule(NewHost(&Options{Stdout: &stdout}), &mem)

	mem.PutBytes([]byte("hi"), 100)
	putIovec(&mem, 0, 100, 2)

	f, err := m.GetFunction("fd_write")
	require.NoError(t, err)

	returns := make([]uint64, 1)
	f.UncheckedCall([]uint64{uint64(FdStdout), 0, 1, 64}, returns)
	assert.Equal(t, uint64(ErrnoSuccess), returns[0])
	assert.Equal(t, "hi", stdout.String())
	assert.Equal(t, uint32(2), mem.Uint32(64))

	f, err = m.GetFunction("fd_write")
	require.NoError(t, err)
	f.UncheckedCall([]uint64{7, 0, 0, 64}, returns)
	assert.Equal(t, uint64(ErrnoBadf), returns[0])
}
