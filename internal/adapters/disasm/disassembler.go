package disasm

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/core/vm"
	"github.com/trebuchet-org/creation-code/internal/usecase"
)

// Disassembler renders EVM bytecode as one instruction per line
type Disassembler struct{}

// NewDisassembler creates a new disassembler
func NewDisassembler() *Disassembler {
	return &Disassembler{}
}

// Disassemble lists every instruction as "pc: OPCODE [immediate]". A push
// whose immediate runs past the end of the code (common when constructor
// arguments are appended) is printed with the bytes that are left and marked
// as truncated. Bytes that are not opcodes are listed by their value.
func (d *Disassembler) Disassemble(code []byte) string {
	var b strings.Builder

	for pc := 0; pc < len(code); pc++ {
		op := vm.OpCode(code[pc])
		if !op.IsPush() || op == vm.PUSH0 {
			fmt.Fprintf(&b, "%08x: %v\n", pc, op)
			continue
		}

		size := int(op - vm.PUSH0)
		start := pc + 1
		end := start + size
		if end > len(code) {
			if rest := code[start:]; len(rest) > 0 {
				fmt.Fprintf(&b, "%08x: %v %#x (truncated)\n", pc, op, rest)
			} else {
				fmt.Fprintf(&b, "%08x: %v (truncated)\n", pc, op)
			}
			break
		}

		fmt.Fprintf(&b, "%08x: %v %#x\n", pc, op, code[start:end])
		pc = end - 1
	}

	return b.String()
}

// Ensure the adapter implements the interface
var _ usecase.Disassembler = (*Disassembler)(nil)
