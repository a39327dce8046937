package cppclass

import (
	"fmt"
	"strings"
)

// Access is the visibility of a generated class member.
type Access int

const (
	Public Access = iota
	Protected
	Private
)

// accessLevels is the fixed section order of a rendered class.
var accessLevels = [...]Access{Public, Protected, Private}

func (a Access) String() string {
	switch a {
	case Public:
		return "public"
	case Protected:
		return "protected"
	case Private:
		return "private"
	default:
		return fmt.Sprintf("Access(%d)", int(a))
	}
}

func (a Access) valid() bool {
	return a >= Public && a <= Private
}

// Declaration names a member together with its type. For functions Type is
// the return type.
type Declaration struct {
	Name string
	Type string
}

// Parameter is a single function argument.
type Parameter struct {
	Name string
	Type string
}

// Function is a member function of a generated class.
type Function struct {
	Access Access
	Decl   Declaration
	Params []Parameter
	Body   Body
}

// NewFunction returns a parameterless function with an empty body.
func NewFunction(access Access, name, returnType string) *Function {
	return &Function{
		Access: access,
		Decl:   Declaration{Name: name, Type: returnType},
	}
}

// InsertParameter appends a parameter. Duplicates are kept.
func (f *Function) InsertParameter(name, typ string) {
	f.Params = append(f.Params, Parameter{Name: name, Type: typ})
}

// RenderDeclaration renders the prototype used inside the class body,
// e.g. "unsigned long get_base(int a, int b)".
func (f *Function) RenderDeclaration() string {
	return f.Decl.Type + " " + f.Decl.Name + f.parameterList()
}

// RenderDefinition renders the out-of-class definition qualified with
// className, followed by the brace-delimited body.
func (f *Function) RenderDefinition(className string) string {
	var sb strings.Builder
	sb.WriteString(f.Decl.Type)
	sb.WriteByte(' ')
	sb.WriteString(className)
	sb.WriteString("::")
	sb.WriteString(f.Decl.Name)
	sb.WriteString(f.parameterList())
	sb.WriteByte('\n')
	writeBlock(&sb, f.Body.Text())
	return sb.String()
}

func (f *Function) parameterList() string {
	args := make([]string, len(f.Params))
	for i, p := range f.Params {
		args[i] = p.Type + " " + p.Name
	}
	return "(" + strings.Join(args, ", ") + ")"
}

func (f *Function) clone() Function {
	c := *f
	c.Params = append([]Parameter(nil), f.Params...)
	return c
}

// Field is a data member. Decl is the complete "type name" text.
type Field struct {
	Access Access
	Decl   string
}

// writeBlock writes body between braces, terminating the last line if the
// caller left it open.
func writeBlock(sb *strings.Builder, body string) {
	sb.WriteString("{\n")
	sb.WriteString(body)
	if body != "" && !strings.HasSuffix(body, "\n") {
		sb.WriteByte('\n')
	}
	sb.WriteString("}\n")
}
