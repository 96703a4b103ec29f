package funcspec

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Spec
	}{
		{
			name:  "method on type",
			input: "android/content.Context.GetString",
			want:  Spec{PkgPath: "android/content", TypeName: "Context", FuncName: "GetString"},
		},
		{
			name:  "package function with dotted host",
			input: "github.com/datlag/tolgee/common.GetStringInstant",
			want:  Spec{PkgPath: "github.com/datlag/tolgee/common", FuncName: "GetStringInstant"},
		},
		{
			name:  "method with dotted host",
			input: "github.com/example/res.Resources.Lookup",
			want:  Spec{PkgPath: "github.com/example/res", TypeName: "Resources", FuncName: "Lookup"},
		},
		{
			name:  "stdlib function",
			input: "fmt.Sprintf",
			want:  Spec{PkgPath: "fmt", FuncName: "Sprintf"},
		},
		{
			name:  "bare name",
			input: "GetString",
			want:  Spec{FuncName: "GetString"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.input))
		})
	}
}

func TestParseList(t *testing.T) {
	got := ParseList(" a/b.F , ,c/d.T.M,Bare")

	assert.Equal(t, []Spec{
		{PkgPath: "a/b", FuncName: "F"},
		{PkgPath: "c/d", TypeName: "T", FuncName: "M"},
	}, got)
	assert.Empty(t, ParseList(""))
}

func TestFullName(t *testing.T) {
	assert.Equal(t, "content.Context.GetString", Parse("android/content.Context.GetString").FullName())
	assert.Equal(t, "common.GetStringInstant", Parse("github.com/datlag/tolgee/common.GetStringInstant").FullName())
	assert.Equal(t, "android/content.Context.GetString", Parse("android/content.Context.GetString").String())
}

const matchSrc = `package res

type Resources struct{}

func (*Resources) Lookup(id int) string { return "" }

type Screen struct{ Resources }

func Lookup(id int) string { return "" }
`

func TestMatches(t *testing.T) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "res.go", matchSrc, 0)
	require.NoError(t, err)

	pkg, err := (&types.Config{Importer: importer.Default()}).Check("example.com/res/v2", fset, []*ast.File{f}, nil)
	require.NoError(t, err)

	method := func(typeName string) *types.Func {
		named := pkg.Scope().Lookup(typeName).Type()
		obj, _, _ := types.LookupFieldOrMethod(named, true, pkg, "Lookup")
		fn, ok := obj.(*types.Func)
		require.True(t, ok)

		return fn
	}

	fn := pkg.Scope().Lookup("Lookup").(*types.Func)

	tests := []struct {
		name string
		spec string
		fn   *types.Func
		want bool
	}{
		{"method", "example.com/res.Resources.Lookup", method("Resources"), true},
		{"method with version suffix", "example.com/res/v2.Resources.Lookup", method("Resources"), true},
		{"promoted method belongs to the embedded type", "example.com/res.Screen.Lookup", method("Screen"), false},
		{"function", "example.com/res.Lookup", fn, true},
		{"function is not a method", "example.com/res.Resources.Lookup", fn, false},
		{"method is not a function", "example.com/res.Lookup", method("Resources"), false},
		{"other package", "example.com/other.Lookup", fn, false},
		{"other name", "example.com/res.Find", fn, false},
		{"nil", "example.com/res.Lookup", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.spec).Matches(tt.fn))
		})
	}
}
