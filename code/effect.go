package code

import (
	"fmt"
	"reflect"
)

// An Effect describes a value's runtime type on the implicit operand stack.
type Effect byte

const (
	Void Effect = iota
	I32
	I64
	F32
	F64
)

func (e Effect) String() string {
	switch e {
	case Void:
		return "void"
	case I32:
		return "i32"
	case I64:
		return "i64"
	case F32:
		return "f32"
	case F64:
		return "f64"
	default:
		return fmt.Sprintf("effect(%d)", byte(e))
	}
}

// effectOf maps a handler parameter or return type onto the stack effect of
// the value it carries. Only the four WASM value types are representable.
func effectOf(t reflect.Type) (Effect, error) {
	switch t.Kind() {
	case reflect.Int32, reflect.Uint32:
		return I32, nil
	case reflect.Int64, reflect.Uint64:
		return I64, nil
	case reflect.Float32:
		return F32, nil
	case reflect.Float64:
		return F64, nil
	default:
		return Void, fmt.Errorf("type %v has no stack effect", t)
	}
}

// effects derives an instruction's stack effect from the signature of a
// handler function: each parameter pops one slot and the return value, if
// any, is pushed. Handlers are limited to two parameters and one result.
func effects(handler interface{}) (pop [2]Effect, push Effect, err error) {
	t := reflect.TypeOf(handler)
	if t == nil || t.Kind() != reflect.Func {
		return pop, push, fmt.Errorf("handler must be a function, not %T", handler)
	}
	if t.NumIn() > 2 {
		return pop, push, fmt.Errorf("handler pops at most two operands; got %d", t.NumIn())
	}
	if t.NumOut() > 1 {
		return pop, push, fmt.Errorf("handler pushes at most one result; got %d", t.NumOut())
	}

	for i := 0; i < t.NumIn(); i++ {
		if pop[i], err = effectOf(t.In(i)); err != nil {
			return pop, push, err
		}
	}
	if t.NumOut() == 1 {
		if push, err = effectOf(t.Out(0)); err != nil {
			return pop, push, err
		}
	}
	return pop, push, nil
}
