// Package signature holds the resolved signature results that feed code
// export: the item record, classification of resolved data and immutable,
// name-sorted snapshots loaded from project files.
package signature

import "fmt"

// Type selects what a scanner reports for a matched pattern.
type Type uint32

const (
	TypeAddress Type = iota + 1
	TypeOperator
	TypeOperand1
	TypeOperand2
	TypeOperand3
)

func (t Type) String() string {
	switch t {
	case TypeAddress:
		return "Address"
	case TypeOperator:
		return "Operator"
	case TypeOperand1:
		return "Operand 1"
	case TypeOperand2:
		return "Operand 2"
	case TypeOperand3:
		return "Operand 3"
	default:
		return fmt.Sprintf("Type(%d)", uint32(t))
	}
}

// Item is one named signature and the data it resolved to.
//
// Only Name, Pattern, Result, Data and Comments influence generated code;
// Type is carried through project files untouched.
type Item struct {
	Name     string `json:"name" yaml:"name" toml:"name"`
	Type     Type   `json:"type" yaml:"type" toml:"type"`
	Pattern  string `json:"signature" yaml:"signature" toml:"signature"`
	Result   uint64 `json:"result" yaml:"result" toml:"result"`
	Data     string `json:"data" yaml:"data" toml:"data"`
	Comments string `json:"comments" yaml:"comments" toml:"comments"`
}

// withDefaults fills the fields a hand-written project file may omit.
func (it Item) withDefaults() Item {
	if it.Type == 0 {
		it.Type = TypeAddress
	}
	if it.Result == 0 {
		it.Result = 1
	}
	return it
}
