package export

import (
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/sigexport/signature"
)

func mustSet(t *testing.T, items ...signature.Item) *signature.Set {
	t.Helper()
	set, err := signature.NewSet(items...)
	require.NoError(t, err)
	return set
}

func TestClassAddress(t *testing.T) {
	set := mustSet(t, signature.Item{Name: "base", Pattern: "55 8B EC", Result: 1, Data: "1A2B3C4D"})
	art := NewBuilder(nil).Class(set, "")

	assert.Equal(t, "addresses", art.ClassName)
	assert.Contains(t, art.Header, "\tunsigned long base;\n")
	assert.Contains(t, art.Header, "\tunsigned long get_base();\n")
	assert.Contains(t, art.Source, "\t//55 8B EC [Result: 1]\n\tthis->base = 0x1A2B3C4D;\n")
	assert.Contains(t, art.Source, "unsigned long addresses::get_base()\n{\n\treturn this->base;\n}\n")
}

func TestClassError(t *testing.T) {
	set := mustSet(t, signature.Item{Name: "flag", Pattern: "E8 ? ? ? ?", Result: 2, Data: "ERROR", Comments: "call"})
	art := NewBuilder(nil).Class(set, "offsets")

	assert.Contains(t, art.Header, "\tunsigned long flag;\n")
	assert.Contains(t, art.Source, "\t//E8 ? ? ? ? [Result: 2] {call}\n\tthis->flag = SIGNATURE_ERROR;\n")
	assert.Contains(t, art.Source, "#define SIGNATURE_ERROR static_cast<unsigned long>(-1)\n")
	assert.Contains(t, art.Source, `#include "offsets.hpp"`)
}

func TestClassTag(t *testing.T) {
	set := mustSet(t, signature.Item{Name: "label", Data: "PlayerHP"})
	art := NewBuilder(nil).Class(set, "addresses")

	assert.Contains(t, art.Header, "\tstd::string label;\n")
	assert.Contains(t, art.Header, "\tstd::string get_label();\n")
	assert.Contains(t, art.Source, "\tthis->label = \"PlayerHP\";\n")
	assert.Contains(t, art.Header, "#include <string>\n")
}

func TestClassCustomTypes(t *testing.T) {
	set := mustSet(t,
		signature.Item{Name: "a", Data: "10"},
		signature.Item{Name: "b", Data: "MOV"},
	)
	b := NewBuilder(nil)
	b.IntegerType = "std::uintptr_t"
	b.StringType = "const char*"
	art := b.Class(set, "x")

	assert.Contains(t, art.Header, "\tstd::uintptr_t a;\n")
	assert.Contains(t, art.Header, "\tconst char* b;\n")
	assert.Contains(t, art.Source, "static_cast<std::uintptr_t>(-1)")
}

func TestClassFullOutput(t *testing.T) {
	set := mustSet(t,
		signature.Item{Name: "label", Pattern: "8B 45", Result: 1, Data: "PlayerHP"},
		signature.Item{Name: "base", Pattern: "55 8B EC", Result: 1, Data: "1A2B3C4D", Comments: "module"},
	)
	var zero Builder
	art := zero.Class(set, "  ")

	wantHeader := "#pragma once\n" +
		"#include <string>\n" +
		"\n" +
		"class addresses\n" +
		"{\n" +
		"public:\n" +
		"\taddresses();\n" +
		"\t~addresses();\n" +
		"\n" +
		"\tunsigned long get_base();\n" +
		"\tstd::string get_label();\n" +
		"\n" +
		"private:\n" +
		"\n" +
		"\tunsigned long base;\n" +
		"\tstd::string label;\n" +
		"};\n"
	assert.Equal(t, wantHeader, art.Header)

	wantSource := "#include \"addresses.hpp\"\n" +
		"#define SIGNATURE_ERROR static_cast<unsigned long>(-1)\n" +
		"\n" +
		"addresses::addresses()\n" +
		"{\n" +
		"\t//55 8B EC [Result: 1] {module}\n" +
		"\tthis->base = 0x1A2B3C4D;\n" +
		"\n" +
		"\t//8B 45 [Result: 1]\n" +
		"\tthis->label = \"PlayerHP\";\n" +
		"}\n" +
		"\n" +
		"addresses::~addresses()\n" +
		"{\n" +
		"}\n" +
		"\n" +
		"unsigned long addresses::get_base()\n" +
		"{\n" +
		"\treturn this->base;\n" +
		"}\n" +
		"\n" +
		"std::string addresses::get_label()\n" +
		"{\n" +
		"\treturn this->label;\n" +
		"}\n"
	assert.Equal(t, wantSource, art.Source)
}

func TestClassEmptySet(t *testing.T) {
	art := NewBuilder(nil).Class(nil, "")

	assert.Equal(t, 0, art.Entries)
	assert.Equal(t, 1, strings.Count(art.Header, "\taddresses();"))
	assert.Equal(t, 1, strings.Count(art.Header, "\t~addresses();"))
	assert.Less(t, strings.Index(art.Header, "public:"), strings.Index(art.Header, "\taddresses();"))
	assert.NotContains(t, art.Header, "private:")
}

func TestClassCounts(t *testing.T) {
	var items []signature.Item
	for i := 0; i < 25; i++ {
		data := strconv.FormatUint(uint64(i*4096), 16)
		switch i % 3 {
		case 1:
			data = "ERROR"
		case 2:
			data = "tag" + strconv.Itoa(i)
		}
		items = append(items, signature.Item{Name: "sig" + strconv.Itoa(i), Data: data})
	}
	art := NewBuilder(nil).Class(mustSet(t, items...), "")

	fields := regexp.MustCompile(`(?m)^\t(unsigned long|std::string) sig\d+;$`).FindAllString(art.Header, -1)
	getters := regexp.MustCompile(`(?m)^\t(unsigned long|std::string) get_sig\d+\(\);$`).FindAllString(art.Header, -1)
	definitions := regexp.MustCompile(`(?m)^(unsigned long|std::string) addresses::get_sig\d+\(\)$`).FindAllString(art.Source, -1)

	assert.Len(t, fields, len(items))
	assert.Len(t, getters, len(items))
	assert.Len(t, definitions, len(items))
	assert.Equal(t, len(items), art.Entries)
}

func TestClassHexRoundTrip(t *testing.T) {
	inputs := []string{"0", "1", "00FF", "deadBEEF", "7FFE0000", "FFFFFFFFFFFFFFFF"}
	assign := regexp.MustCompile(`this->v = 0x([0-9A-F]+);`)

	for _, in := range inputs {
		set := mustSet(t, signature.Item{Name: "v", Data: in})
		art := NewBuilder(nil).Class(set, "")

		m := assign.FindStringSubmatch(art.Source)
		require.Len(t, m, 2, in)
		emitted, err := strconv.ParseUint(m[1], 16, 64)
		require.NoError(t, err)
		direct, err := strconv.ParseUint(in, 16, 64)
		require.NoError(t, err)
		assert.Equal(t, direct, emitted, in)
	}
}

func TestClassDeterministic(t *testing.T) {
	items := []signature.Item{
		{Name: "c", Data: "3"},
		{Name: "a", Data: "ERROR"},
		{Name: "b", Data: "tag"},
		{Name: "d", Data: "DEAD"},
	}
	reversed := []signature.Item{items[3], items[2], items[1], items[0]}

	b := NewBuilder(nil)
	first := b.Class(mustSet(t, items...), "k")
	second := b.Class(mustSet(t, reversed...), "k")
	assert.Equal(t, first.Header, second.Header)
	assert.Equal(t, first.Source, second.Source)

	m1, err := b.MacroHeader(mustSet(t, items...), "p")
	require.NoError(t, err)
	m2, err := b.MacroHeader(mustSet(t, reversed...), "p")
	require.NoError(t, err)
	assert.Equal(t, m1, m2)
}

func TestMacroHeader(t *testing.T) {
	set := mustSet(t,
		signature.Item{Name: "hp", Pattern: "AA BB", Result: 1, Data: "64"},
		signature.Item{Name: "name", Pattern: "CC", Result: 3, Data: "Player", Comments: "display"},
		signature.Item{Name: "missing", Pattern: "DD", Result: 1, Data: "ERROR"},
	)
	out, err := NewBuilder(nil).MacroHeader(set, "game")
	require.NoError(t, err)

	want := "#define SIGNATURE_ERROR -1\n" +
		"\n" +
		"//AA BB [Result: 1]\n" +
		"#define GAME_HP 0x64\n" +
		"\n" +
		"//DD [Result: 1]\n" +
		"#define GAME_MISSING SIGNATURE_ERROR\n" +
		"\n" +
		"//CC [Result: 3] {display}\n" +
		"#define GAME_NAME \"Player\"\n" +
		"\n"
	assert.Equal(t, want, out)
}

func TestMacroHeaderEmpty(t *testing.T) {
	out, err := NewBuilder(nil).MacroHeader(nil, "")
	require.NoError(t, err)
	assert.Equal(t, "#define SIGNATURE_ERROR -1\n\n", out)
}

func TestMacroPrefix(t *testing.T) {
	set := mustSet(t, signature.Item{Name: "hp", Data: "1"})
	b := NewBuilder(nil)

	for prefix, want := range map[string]string{
		"":      "#define HP 0x1",
		"game":  "#define GAME_HP 0x1",
		"game_": "#define GAME_HP 0x1",
		"Game":  "#define GAME_HP 0x1",
	} {
		out, err := b.MacroHeader(set, prefix)
		require.NoError(t, err)
		assert.Contains(t, out, want+"\n", "prefix %q", prefix)
	}
}

func TestMacroCollisions(t *testing.T) {
	defines := regexp.MustCompile(`(?m)^#define (\S+) `)
	names := func(out string) []string {
		var got []string
		for _, m := range defines.FindAllStringSubmatch(out, -1) {
			got = append(got, m[1])
		}
		return got
	}

	t.Run("case fold", func(t *testing.T) {
		set := mustSet(t, signature.Item{Name: "x", Data: "1"}, signature.Item{Name: "X", Data: "2"})
		out, err := NewBuilder(nil).MacroHeader(set, "")
		require.NoError(t, err)
		assert.Equal(t, []string{"SIGNATURE_ERROR", "X", "_X"}, names(out))
	})

	t.Run("repeated underscores", func(t *testing.T) {
		set := mustSet(t,
			signature.Item{Name: "X", Data: "1"},
			signature.Item{Name: "_x", Data: "2"},
			signature.Item{Name: "x", Data: "3"},
		)
		out, err := NewBuilder(nil).MacroHeader(set, "")
		require.NoError(t, err)
		assert.Equal(t, []string{"SIGNATURE_ERROR", "X", "_X", "__X"}, names(out))
		assert.Contains(t, out, "#define __X 0x3\n")
	})

	t.Run("prefix", func(t *testing.T) {
		set := mustSet(t, signature.Item{Name: "hp", Data: "1"}, signature.Item{Name: "HP", Data: "2"})
		out, err := NewBuilder(nil).MacroHeader(set, "game")
		require.NoError(t, err)
		assert.Equal(t, []string{"SIGNATURE_ERROR", "GAME_HP", "_GAME_HP"}, names(out))
	})
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.h")

	require.NoError(t, Save(path, "first"))
	require.NoError(t, Save(path, "2nd"))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "2nd", string(data))

	err = Save(filepath.Join(dir, "missing", "out.h"), "x")
	assert.ErrorIs(t, err, ErrWriteFailed)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestClassArtifactSaveTo(t *testing.T) {
	set := mustSet(t, signature.Item{Name: "base", Data: "10"})
	art := NewBuilder(nil).Class(set, "offsets")

	dir := t.TempDir()
	hp, sp, err := art.SaveTo(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "offsets.hpp"), hp)
	assert.Equal(t, filepath.Join(dir, "offsets.cpp"), sp)

	header, err := os.ReadFile(hp)
	require.NoError(t, err)
	assert.Equal(t, art.Header, string(header))
	source, err := os.ReadFile(sp)
	require.NoError(t, err)
	assert.Equal(t, art.Source, string(source))

	_, _, err = art.SaveTo(filepath.Join(dir, "nope"))
	assert.ErrorIs(t, err, ErrWriteFailed)
	assert.NotEmpty(t, art.Header, "artifact stays usable after a failed save")
}
