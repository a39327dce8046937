package export

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/Alia5/sigexport/internal/codegen/common"
	"github.com/Alia5/sigexport/signature"
)

const macroHeaderTmpl = `#define {{.ErrorMacro}} -1

{{range .Macros}}{{.Comment}}
#define {{.Name}} {{.Value}}

{{end}}`

var macroHeader = template.Must(template.New("macros").Parse(macroHeaderTmpl))

type macroDef struct {
	Comment string
	Name    string
	Value   string
}

// MacroHeader renders set as a flat header of #define lines. A non-empty
// prefix is joined to every name with a single underscore and the result
// upper-cased. Names that collide after upper-casing get underscores
// prepended until unique.
func (b *Builder) MacroHeader(set *signature.Set, prefix string) (string, error) {
	prefix = normalizePrefix(prefix)
	log := b.log()

	items := set.Items()
	defs := make([]macroDef, 0, len(items))
	used := make(map[string]struct{}, len(items))
	for _, item := range items {
		name := strings.ToUpper(prefix + item.Name)
		if _, taken := used[name]; taken {
			original := name
			for taken {
				name = "_" + name
				_, taken = used[name]
			}
			log.Warn("Renamed colliding macro", "signature", item.Name, "macro", original, "renamed", name)
		}
		used[name] = struct{}{}

		defs = append(defs, macroDef{
			Comment: itemComment(item),
			Name:    name,
			Value:   macroValue(item.Data),
		})
	}

	var sb strings.Builder
	err := macroHeader.Execute(&sb, struct {
		ErrorMacro string
		Macros     []macroDef
	}{ErrorMacro: ErrorMacro, Macros: defs})
	if err != nil {
		return "", fmt.Errorf("render macro header: %w", err)
	}

	log.Info("Rendered macro header", "prefix", prefix, "macros", len(defs))
	return sb.String(), nil
}

func normalizePrefix(prefix string) string {
	if prefix != "" && !strings.HasSuffix(prefix, "_") {
		prefix += "_"
	}
	return prefix
}

func macroValue(data string) string {
	v := signature.Classify(data)
	switch v.Kind {
	case signature.KindError:
		return ErrorMacro
	case signature.KindAddress:
		return common.HexLiteral(v.Address)
	default:
		return common.StringLiteral(v.Tag)
	}
}
