// Package export turns a snapshot of resolved signatures into C/C++ source
// artifacts: a getter-per-field class (header and source) or a flat header
// of #define macros.
//
// Output is a deterministic function of the snapshot (always walked in name
// order) and the class name or macro prefix.
package export

import (
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/Alia5/sigexport/internal/codegen/common"
	"github.com/Alia5/sigexport/internal/codegen/cppclass"
	"github.com/Alia5/sigexport/signature"
)

const (
	DefaultClassName   = "addresses"
	DefaultIntegerType = "unsigned long"
	DefaultStringType  = "std::string"

	// ErrorMacro is the initializer for signatures that did not resolve.
	ErrorMacro = "SIGNATURE_ERROR"

	HeaderExt = ".hpp"
	SourceExt = ".cpp"
)

// Builder renders export artifacts. The zero value is usable and writes no
// logs.
type Builder struct {
	// IntegerType is the C++ type of Address and Error fields.
	IntegerType string
	// StringType is the C++ type of Tag fields.
	StringType string

	logger *slog.Logger
}

// NewBuilder returns a Builder with default field types. A nil logger
// discards.
func NewBuilder(logger *slog.Logger) *Builder {
	return &Builder{
		IntegerType: DefaultIntegerType,
		StringType:  DefaultStringType,
		logger:      logger,
	}
}

// ClassArtifact is the rendered output of a class export. It stays valid
// whether or not saving it succeeds.
type ClassArtifact struct {
	ClassName string
	Header    string
	Source    string
	// Entries is the number of fields, equal to the number of getters.
	Entries int
}

// Class renders set as a class named className, or DefaultClassName when
// className is blank. Every item becomes a private field initialised in the
// constructor and a public get_<name>() accessor.
func (b *Builder) Class(set *signature.Set, className string) *ClassArtifact {
	name := strings.TrimSpace(className)
	if name == "" {
		name = DefaultClassName
	}
	intType, strType := b.types()
	log := b.log()

	class := cppclass.New(name)
	var ctor cppclass.Body

	items := set.Items()
	for i, item := range items {
		value := signature.Classify(item.Data)
		log.Debug("Classified signature", "name", item.Name, "kind", value.Kind)

		fieldType, init := intType, ""
		switch value.Kind {
		case signature.KindAddress:
			init = common.HexLiteral(value.Address)
		case signature.KindError:
			init = ErrorMacro
		default:
			fieldType = strType
			init = common.StringLiteral(value.Tag)
		}

		class.InsertField(cppclass.Private, fieldType+" "+item.Name)

		if i > 0 {
			ctor.AppendLine("")
		}
		ctor.AppendLine("\t" + itemComment(item))
		ctor.AppendLine("\tthis->" + item.Name + " = " + init + ";")

		getter := cppclass.NewFunction(cppclass.Public, "get_"+item.Name, fieldType)
		getter.Body.AppendLine("\treturn this->" + item.Name + ";")
		class.InsertFunction(getter)
	}
	class.SetConstructor(ctor)

	class.HeaderIncludes = []string{
		"#pragma once",
		"#include <string>",
	}
	class.SourceIncludes = []string{
		`#include "` + name + HeaderExt + `"`,
		"#define " + ErrorMacro + " static_cast<" + intType + ">(-1)",
	}

	art := &ClassArtifact{
		ClassName: name,
		Header:    class.RenderHeader(),
		Source:    class.RenderSource(),
		Entries:   len(items),
	}
	log.Info("Rendered class", "class", name, "entries", art.Entries)
	return art
}

func (b *Builder) types() (intType, strType string) {
	intType, strType = b.IntegerType, b.StringType
	if intType == "" {
		intType = DefaultIntegerType
	}
	if strType == "" {
		strType = DefaultStringType
	}
	return intType, strType
}

func (b *Builder) log() *slog.Logger {
	if b.logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return b.logger
}

// itemComment is the line comment placed above each generated value:
// //<pattern> [Result: <n>] {<comment>}
func itemComment(item signature.Item) string {
	c := "//" + item.Pattern + " [Result: " + strconv.FormatUint(item.Result, 10) + "]"
	if item.Comments != "" {
		c += " {" + item.Comments + "}"
	}
	return c
}
