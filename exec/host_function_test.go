package exec

import (
	"math"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type hostModule struct{}

func (hostModule) Name() string                         { return "host" }
func (hostModule) GetFunction(string) (Function, error) { return nil, nil }
func (hostModule) GetMemory(string) (*Memory, error)    { return nil, nil }

func TestHostFunctionSignature(t *testing.T) {
	f := NewHostFunction(hostModule{}, reflect.ValueOf(func(a uint32, b uint64, c float32, d float64) uint32 {
		return a
	}))

	want := Signature{
		Params:  []ValueType{ValueTypeI32, ValueTypeI64, ValueTypeF32, ValueTypeF64},
		Results: []ValueType{ValueTypeI32},
	}
	assert.True(t, want.Equals(f.GetSignature()))

	assert.Panics(t, func() {
		NewHostFunction(hostModule{}, reflect.ValueOf(func(string) {}))
	})
}

func TestHostFunctionCall(t *testing.T) {
	f := NewHostFunction(hostModule{}, reflect.ValueOf(func(a, b uint32) uint32 {
		return a + b
	}))

	returns := make([]uint64, 1)
	f.UncheckedCall([]uint64{40, 2}, returns)
	assert.Equal(t, uint64(42), returns[0])

	assert.Panics(t, func() { f.UncheckedCall([]uint64{1}, returns) })
}

func TestHostFunctionFloats(t *testing.T) {
	f := NewHostFunction(hostModule{}, reflect.ValueOf(func(v float32) float64 {
		return float64(v) * 2
	}))

	returns := make([]uint64, 1)
	f.UncheckedCall([]uint64{uint64(math.Float32bits(1.5))}, returns)
	require.Equal(t, 3.0, math.Float64frombits(returns[0]))
}

func TestSignatureEquals(t *testing.T) {
	a := Signature{Params: []ValueType{ValueTypeI32}, Results: []ValueType{ValueTypeI32}}
	assert.True(t, a.Equals(Signature{Params: []ValueType{ValueTypeI32}, Results: []ValueType{ValueTypeI32}}))
	assert.False(t, a.Equals(Signature{Params: []ValueType{ValueTypeI64}, Results: []ValueType{ValueTypeI32}}))
	assert.False(t, a.Equals(Signature{Results: []ValueType{ValueTypeI32}}))
}
