// Package cppclass is a small in-memory model of a C++ class that renders
// to a header and a source file.
//
// Members are grouped by access level in three ordered lists, so the
// rendered text depends only on insertion order and is reproducible.
// A Class is meant to be built for a single export and then discarded.
package cppclass

import (
	"fmt"
	"strings"
)

// Class collects the members of one generated class.
type Class struct {
	// Name is used verbatim as the class identifier and as the
	// qualifier of out-of-class definitions.
	Name string

	// HeaderIncludes and SourceIncludes are raw lines (#include, #define,
	// using ...) emitted at the top of the respective file.
	HeaderIncludes []string
	SourceIncludes []string

	// functions holds every function in insertion order; byAccess indexes
	// into it per access level.
	functions   []Function
	byAccess    [len(accessLevels)][]int
	fields      [len(accessLevels)][]Field
	constructor Body
	destructor  Body
}

// New returns an empty class called name.
func New(name string) *Class {
	return &Class{Name: name}
}

// InsertFunction appends a copy of f to the section of its access level.
func (c *Class) InsertFunction(f *Function) {
	mustAccess(f.Access)
	c.byAccess[f.Access] = append(c.byAccess[f.Access], len(c.functions))
	c.functions = append(c.functions, f.clone())
}

// InsertField appends a field whose full declaration is decl, e.g.
// "unsigned long base".
func (c *Class) InsertField(access Access, decl string) {
	mustAccess(access)
	c.fields[access] = append(c.fields[access], Field{Access: access, Decl: decl})
}

// SetConstructor replaces the constructor body.
func (c *Class) SetConstructor(b Body) {
	c.constructor = b
}

// SetDestructor replaces the destructor body.
func (c *Class) SetDestructor(b Body) {
	c.destructor = b
}

// Functions returns the functions of one access level in insertion order.
func (c *Class) Functions(access Access) []Function {
	mustAccess(access)
	out := make([]Function, 0, len(c.byAccess[access]))
	for _, i := range c.byAccess[access] {
		out = append(out, c.functions[i].clone())
	}
	return out
}

// Fields returns the fields of one access level in insertion order.
func (c *Class) Fields(access Access) []Field {
	mustAccess(access)
	return append([]Field(nil), c.fields[access]...)
}

// RenderHeader renders the class declaration.
//
// Sections are emitted public, protected, private. The public section is
// always present because it carries the constructor and destructor.
func (c *Class) RenderHeader() string {
	var sb strings.Builder
	for _, line := range c.HeaderIncludes {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')

	fmt.Fprintf(&sb, "class %s\n{\n", c.Name)
	for _, access := range accessLevels {
		funcs, fields := c.byAccess[access], c.fields[access]
		if access != Public && len(funcs) == 0 && len(fields) == 0 {
			continue
		}

		sb.WriteString(access.String())
		sb.WriteString(":\n")
		if access == Public {
			fmt.Fprintf(&sb, "\t%s();\n", c.Name)
			fmt.Fprintf(&sb, "\t~%s();\n\n", c.Name)
		}
		for _, i := range funcs {
			sb.WriteByte('\t')
			sb.WriteString(c.functions[i].RenderDeclaration())
			sb.WriteString(";\n")
		}
		sb.WriteByte('\n')
		for _, f := range fields {
			sb.WriteByte('\t')
			sb.WriteString(f.Decl)
			sb.WriteString(";\n")
		}
	}
	sb.WriteString("};\n")
	return sb.String()
}

// RenderSource renders the constructor, destructor and every function
// definition, functions in insertion order across all access levels.
func (c *Class) RenderSource() string {
	var sb strings.Builder
	for _, line := range c.SourceIncludes {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')

	fmt.Fprintf(&sb, "%s::%s()\n", c.Name, c.Name)
	writeBlock(&sb, c.constructor.Text())
	sb.WriteByte('\n')

	fmt.Fprintf(&sb, "%s::~%s()\n", c.Name, c.Name)
	writeBlock(&sb, c.destructor.Text())

	for i := range c.functions {
		sb.WriteByte('\n')
		sb.WriteString(c.functions[i].RenderDefinition(c.Name))
	}
	return sb.String()
}

func mustAccess(a Access) {
	if !a.valid() {
		panic(fmt.Sprintf("cppclass: invalid access level %d", int(a)))
	}
}
