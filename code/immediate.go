package code

import "fmt"

// An ImmediateKind identifies the shape of the inline operand that follows
// an opcode byte. The kind and its payload are inseparable: an instruction
// carries exactly one of these shapes.
type ImmediateKind byte

const (
	// ImmNone marks an instruction with no immediate operand.
	ImmNone ImmediateKind = iota
	// ImmTypeTag is a value- or block-type tag.
	ImmTypeTag
	// ImmU32 is a 32-bit index or literal.
	ImmU32
	// ImmMemArg is a memory offset plus an alignment hint.
	ImmMemArg
	// ImmI32z is a zero-extended, LEB-style 32-bit literal.
	ImmI32z
)

// Width returns the number of bytes reserved for the immediate's decoded
// payload. This sizes dispatch storage; wire decoding is the decoder's
// concern and may use fewer or more bytes on the wire.
func (k ImmediateKind) Width() uint32 {
	switch k {
	case ImmTypeTag, ImmMemArg:
		return 8
	case ImmU32:
		return 4
	case ImmI32z:
		return 5
	default:
		return 0
	}
}

func (k ImmediateKind) String() string {
	switch k {
	case ImmNone:
		return "none"
	case ImmTypeTag:
		return "typetag"
	case ImmU32:
		return "u32"
	case ImmMemArg:
		return "memarg"
	case ImmI32z:
		return "i32z"
	default:
		return fmt.Sprintf("immediate(%d)", byte(k))
	}
}
