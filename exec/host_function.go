package exec

import (
	"fmt"
	"math"
	"reflect"
)

// ValueType is the type of a WASM value.
type ValueType byte

const (
	ValueTypeI32 ValueType = 0x7f
	ValueTypeI64 ValueType = 0x7e
	ValueTypeF32 ValueType = 0x7d
	ValueTypeF64 ValueType = 0x7c
)

func (t ValueType) String() string {
	switch t {
	case ValueTypeI32:
		return "i32"
	case ValueTypeI64:
		return "i64"
	case ValueTypeF32:
		return "f32"
	case ValueTypeF64:
		return "f64"
	default:
		return fmt.Sprintf("valuetype(0x%02x)", byte(t))
	}
}

// A Signature describes the parameter and result types of a function.
type Signature struct {
	Params  []ValueType
	Results []ValueType
}

func (s Signature) Equals(other Signature) bool {
	if len(s.Params) != len(other.Params) || len(s.Results) != len(other.Results) {
		return false
	}
	for i, p := range s.Params {
		if p != other.Params[i] {
			return false
		}
	}
	for i, r := range s.Results {
		if r != other.Results[i] {
			return false
		}
	}
	return true
}

// Function is a callable exported by a module.
type Function interface {
	GetSignature() Signature

	// UncheckedCall invokes the function with raw arguments. Each value
	// occupies one uint64 slot; floats are bit-cast. The caller is
	// responsible for matching the function's signature.
	UncheckedCall(args, returns []uint64)
}

// Module is the linkable surface of an instantiated module.
type Module interface {
	Name() string
	GetFunction(name string) (Function, error)
	GetMemory(name string) (*Memory, error)
}

// HostFunction adapts a Go method to the Function interface. The WASM
// signature is derived from the method's parameter and return types.
type HostFunction struct {
	module Module
	sig    Signature

	method reflect.Value
}

func isUnsigned(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	default:
		return false
	}
}

func wasmType(k reflect.Kind) ValueType {
	switch k {
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Uint8, reflect.Uint16, reflect.Uint32:
		return ValueTypeI32
	case reflect.Int, reflect.Int64, reflect.Uint, reflect.Uint64:
		return ValueTypeI64
	case reflect.Float32:
		return ValueTypeF32
	case reflect.Float64:
		return ValueTypeF64
	default:
		return 0
	}
}

// NewHostFunction creates a host function from the given method value.
// Methods may only use integer and floating-point parameter and return types.
func NewHostFunction(module Module, method reflect.Value) *HostFunction {
	t := method.Type()

	params := make([]ValueType, t.NumIn())
	for i, n := 0, t.NumIn(); i < n; i++ {
		vt := wasmType(t.In(i).Kind())
		if vt == 0 {
			panic(fmt.Errorf("cannot export method with parameter type %v", t.In(i)))
		}
		params[i] = vt
	}

	returns := make([]ValueType, t.NumOut())
	for i, n := 0, t.NumOut(); i < n; i++ {
		vt := wasmType(t.Out(i).Kind())
		if vt == 0 {
			panic(fmt.Errorf("cannot export method with return type %v", t.Out(i)))
		}
		returns[i] = vt
	}

	return &HostFunction{
		module: module,
		sig:    Signature{Params: params, Results: returns},
		method: method,
	}
}

func (f *HostFunction) GetSignature() Signature {
	return f.sig
}

func (f *HostFunction) UncheckedCall(args, returns []uint64) {
	if len(args) != len(f.sig.Params) {
		panic(fmt.Errorf("expected %v args; got %v", len(f.sig.Params), len(args)))
	}

	t := f.method.Type()

	vargs := make([]reflect.Value, len(args))
	for i, v := range args {
		in := t.In(i)
		switch f.sig.Params[i] {
		case ValueTypeI32, ValueTypeI64:
			vargs[i] = reflect.ValueOf(v).Convert(in)
		case ValueTypeF32:
			vargs[i] = reflect.ValueOf(math.Float32frombits(uint32(v))).Convert(in)
		case ValueTypeF64:
			vargs[i] = reflect.ValueOf(math.Float64frombits(v)).Convert(in)
		}
	}

	vreturns := f.method.Call(vargs)

	for i, v := range vreturns {
		switch f.sig.Results[i] {
		case ValueTypeI32:
			if isUnsigned(v.Kind()) {
				returns[i] = v.Uint()
			} else {
				returns[i] = uint64(int32(v.Int()))
			}
		case ValueTypeI64:
			if isUnsigned(v.Kind()) {
				returns[i] = v.Uint()
			} else {
				returns[i] = uint64(v.Int())
			}
		case ValueTypeF32:
			returns[i] = uint64(math.Float32bits(float32(v.Float())))
		case ValueTypeF64:
			returns[i] = math.Float64bits(v.Float())
		}
	}
}

// Func returns the adapted method as an interface value.
func (f *HostFunction) Func() interface{} {
	return f.method.Interface()
}
