package sim

import "fmt"

// GateKind identifies the arithmetic transform a gate applies.
type GateKind int

const (
	GateAdd GateKind = iota
	GateSub
	GateMul
	GateDiv
)

// GateOp is a gate's operation: a kind plus its operand.
type GateOp struct {
	Kind   GateKind
	Amount int
}

// Label returns the gate text as shown to the player, e.g. "+5" or "÷2".
func (op GateOp) Label() string {
	switch op.Kind {
	case GateAdd:
		return fmt.Sprintf("+%d", op.Amount)
	case GateSub:
		return fmt.Sprintf("-%d", op.Amount)
	case GateMul:
		return fmt.Sprintf("×%d", op.Amount)
	case GateDiv:
		return fmt.Sprintf("÷%d", op.Amount)
	default:
		return "?"
	}
}

// gateOps is the fixed set of operations gates are drawn from.
var gateOps = []GateOp{
	{Kind: GateAdd, Amount: gateAmount},
	{Kind: GateMul, Amount: gateFactor},
	{Kind: GateSub, Amount: gateAmount},
	{Kind: GateDiv, Amount: gateFactor},
}

// ApplyGate applies a gate operation to the crowd value. Division floors
// (integer division on non-negative operands) and the result is clamped
// to a minimum of 0. The divide operand is a fixed positive constant;
// the guard exists so an extended operation set cannot silently divide
// by zero.
func ApplyGate(value int, op GateOp) int {
	switch op.Kind {
	case GateAdd:
		value += op.Amount
	case GateSub:
		value -= op.Amount
	case GateMul:
		value *= op.Amount
	case GateDiv:
		if op.Amount <= 0 {
			panic("sim: gate divide amount must be positive")
		}
		value /= op.Amount
	}
	if value < 0 {
		value = 0
	}
	return value
}
