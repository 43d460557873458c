package exec

// A Trap represents a WASM trap. Traps are delivered as panics: they indicate
// conditions more severe than any syscall status (guest memory corruption,
// malicious input) and terminate the call that raised them rather than being
// reported through a return value.
type Trap string

func (t Trap) Error() string {
	return string(t)
}

// TrapOutOfBoundsMemoryAccess indicates an out-of-bounds linear memory access.
var TrapOutOfBoundsMemoryAccess = Trap("out of bounds memory access")

// TrapUnreachable indicates execution of unreachable code.
var TrapUnreachable = Trap("unreachable")
