package intcode

// Built-in opcodes.
const (
	OPCODE_ADD      = uint32(1)  // Add two cells.
	OPCODE_MULTIPLY = uint32(2)  // Multiply two cells.
	OPCODE_HALT     = uint32(99) // Halt; handled by the Computer, never registered.
)

// Add stores the sum of two cells. Overflow wraps.
type Add struct{}

func (Add) Opcode() uint32 { return OPCODE_ADD }

func (Add) Name() string { return "add" }

func (Add) Combine(a, b uint32) (uint32, error) {
	return a + b, nil
}

// Multiply stores the product of two cells. Overflow wraps.
type Multiply struct{}

func (Multiply) Opcode() uint32 { return OPCODE_MULTIPLY }

func (Multiply) Name() string { return "multiply" }

func (Multiply) Combine(a, b uint32) (uint32, error) {
	return a * b, nil
}

// Builtins returns a fresh set of the built-in commands.
func Builtins() []Command {
	return []Command{
		Binary{Add{}},
		Binary{Multiply{}},
	}
}
