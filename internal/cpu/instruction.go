package cpu

// Instruction is a single entry of the opcode table.
type Instruction struct {
	name string
	fn   func(*CPU)
}

// Name returns the mnemonic of the instruction, or "" if unmapped.
func (i Instruction) Name() string {
	return i.name
}

// Defined reports whether the instruction has an implementation.
func (i Instruction) Defined() bool {
	return i.fn != nil
}

// InstructionSet maps every opcode to its instruction. Entries that were
// never defined are unknown opcodes.
var InstructionSet [256]Instruction

// DefineInstruction defines the instruction in the InstructionSet with
// the provided opcode. Defining an opcode twice panics.
func DefineInstruction(opcode uint8, name string, fn func(*CPU)) {
	if InstructionSet[opcode].fn != nil {
		panic("instruction already defined: " + InstructionSet[opcode].name)
	}
	InstructionSet[opcode] = Instruction{
		name: name,
		fn:   fn,
	}
}

func init() {
	DefineInstruction(0x00, "NOP", func(c *CPU) {})
}
