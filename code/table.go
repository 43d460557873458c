package code

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/willf/bitset"
)

// ErrOpNotFound is returned by ByName when no assigned instruction has the
// given mnemonic.
var ErrOpNotFound = errors.New("opcode not found")

// An Opcode describes a single instruction: its byte code, mnemonic, the
// shape of its immediate operand, and its type-stack effect. Pop slots are
// ordered: the first popped operand comes first.
type Opcode struct {
	Code      byte
	Name      string
	Immediate ImmediateKind
	Pop       [2]Effect
	Push      Effect
}

// Illegal is the sentinel stored in unassigned table slots. Its mnemonic is
// not a legal instruction name, so it is distinguishable from any assigned
// opcode.
var Illegal = Opcode{Name: "ILLEGAL"}

// Assigned reports whether op describes a declared instruction rather than
// the Illegal sentinel.
func (op Opcode) Assigned() bool {
	return op.Name != Illegal.Name
}

// A Def declares a single instruction. Code is the instruction's opcode as
// two hex digits. The stack effect is given either explicitly through Pop
// and Push or implicitly through Handler, whose parameter and return types
// are mapped onto effects at construction time.
type Def struct {
	Code      string
	Name      string
	Immediate ImmediateKind
	Pop       [2]Effect
	Push      Effect
	Handler   interface{}
}

func (d Def) resolve() (Opcode, error) {
	if len(d.Code) != 2 {
		return Illegal, fmt.Errorf("instruction %q: opcode %q is not two hex digits", d.Name, d.Code)
	}
	c, err := strconv.ParseUint(d.Code, 16, 8)
	if err != nil {
		return Illegal, fmt.Errorf("instruction %q: invalid opcode %q", d.Name, d.Code)
	}

	op := Opcode{
		Code:      byte(c),
		Name:      d.Name,
		Immediate: d.Immediate,
		Pop:       d.Pop,
		Push:      d.Push,
	}
	if d.Handler != nil {
		if op.Pop, op.Push, err = effects(d.Handler); err != nil {
			return Illegal, fmt.Errorf("instruction %q: %w", d.Name, err)
		}
	}
	return op, nil
}

// A Table is an immutable instruction registry: a dense 256-entry view
// indexed by opcode byte, and a mnemonic-sorted view over the assigned
// entries. Both views describe the same data; a Table is never mutated
// after construction and is safe for concurrent use.
type Table struct {
	dense    [256]Opcode
	sorted   []Opcode
	assigned *bitset.BitSet
}

// NewTable builds a registry from the given definitions. A malformed opcode,
// a duplicate code, a duplicate mnemonic, or an unsupported handler type is
// a construction-time fault: no partial table is usable.
func NewTable(defs []Def) (*Table, error) {
	t := Table{assigned: bitset.New(256)}
	for i := range t.dense {
		t.dense[i] = Illegal
	}

	t.sorted = make([]Opcode, 0, len(defs))
	for _, def := range defs {
		op, err := def.resolve()
		if err != nil {
			return nil, err
		}
		if t.assigned.Test(uint(op.Code)) {
			return nil, fmt.Errorf("instruction %q: duplicate opcode 0x%02x", op.Name, op.Code)
		}
		t.assigned.Set(uint(op.Code))
		t.dense[op.Code] = op
		t.sorted = append(t.sorted, op)
	}

	sort.Slice(t.sorted, func(i, j int) bool { return t.sorted[i].Name < t.sorted[j].Name })
	for i := 1; i < len(t.sorted); i++ {
		if t.sorted[i].Name == t.sorted[i-1].Name {
			return nil, fmt.Errorf("duplicate mnemonic %q", t.sorted[i].Name)
		}
	}
	return &t, nil
}

// MustNewTable is NewTable for static definition sets: a construction fault
// indicates a defect in the definitions and panics.
func MustNewTable(defs []Def) *Table {
	t, err := NewTable(defs)
	if err != nil {
		panic(err)
	}
	return t
}

// ByCode returns the metadata for the given opcode byte. ByCode is total:
// unassigned codes return the Illegal sentinel.
func (t *Table) ByCode(code byte) Opcode {
	return t.dense[code]
}

// ByName looks up an instruction by its exact mnemonic.
func (t *Table) ByName(name string) (Opcode, error) {
	cur, size := 0, len(t.sorted)
	for size > 0 {
		half := size / 2
		op := &t.sorted[cur+half]
		switch {
		case name < op.Name:
			size = half
		case name == op.Name:
			return *op, nil
		default:
			cur += half + 1
			size -= half + 1
		}
	}
	return Illegal, ErrOpNotFound
}

// Sorted returns the assigned entries in mnemonic order. The returned slice
// must not be modified.
func (t *Table) Sorted() []Opcode {
	return t.sorted
}

// Assigned returns the number of assigned opcodes.
func (t *Table) Assigned() int {
	return int(t.assigned.Count())
}
