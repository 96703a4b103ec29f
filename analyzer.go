// Package tolgeerewrite provides a go/analysis based analyzer that redirects
// string resource lookups to translation-aware replacement functions.
package tolgeerewrite

import (
	"errors"
	"flag"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"path"
	"strconv"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/astutil"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/datlag/tolgeerewrite/internal/config"
	"github.com/datlag/tolgeerewrite/internal/directive/ignore"
	"github.com/datlag/tolgeerewrite/internal/registry"
	"github.com/datlag/tolgeerewrite/internal/rewrite"
)

// Flags for the analyzer.
var (
	enableGetString bool
	target          string
	replacement     string
	marker          string
	configPath      string
)

func init() {
	Analyzer.Flags.BoolVar(&enableGetString, "getstring", false,
		"rewrite string resource lookups to the replacement functions (false does not override a -config file that enables it)")
	Analyzer.Flags.StringVar(&target, "target", config.DefaultTarget,
		"method whose calls are rewritten (e.g., android/content.Context.GetString)")
	Analyzer.Flags.StringVar(&replacement, "replacement", config.DefaultReplacement,
		"comma-separated list of replacement functions, tried in order (e.g., pkg/path.Func)")
	Analyzer.Flags.StringVar(&marker, "marker", config.DefaultMarker,
		"resource-id type a replacement's first parameter must have (e.g., int or pkg/path.Type)")
	Analyzer.Flags.StringVar(&configPath, "config", "",
		"YAML configuration file; flags that differ from their default take precedence")
}

// Analyzer is the main analyzer for tolgeerewrite.
var Analyzer = &analysis.Analyzer{
	Name:     "tolgeerewrite",
	Doc:      "rewrites string resource lookups (Context.GetString) to Tolgee replacement functions",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
	Flags:    flag.FlagSet{},
}

var ErrNoInspector = errors.New("inspector analyzer result not found")

func run(pass *analysis.Pass) (any, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	if !cfg.Enabled {
		return nil, nil
	}

	insp, ok := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, ErrNoInspector
	}

	// Resolve target and candidates once for this package
	reg := registry.Resolve(pass.Pkg, cfg)
	if !reg.Enabled() {
		return nil, nil
	}

	rewriter := rewrite.New(reg, pass.TypesInfo, cfg.Enabled)
	files := buildFiles(pass, buildSkipFiles(pass))

	nodeFilter := []ast.Node{(*ast.CallExpr)(nil)}
	insp.Preorder(nodeFilter, func(n ast.Node) {
		call := n.(*ast.CallExpr)
		pos := pass.Fset.Position(call.Pos())

		f := files[pos.Filename]
		if f == nil {
			return
		}

		rw, ok := rewriter.TryRewrite(call, f.qualifier)
		if !ok {
			return
		}

		if f.ignores.ShouldIgnore(pos.Line) {
			return
		}

		report(pass, reg, f, rw)
	})

	reportUnusedIgnores(pass, files)

	return nil, nil
}

// loadConfig merges defaults, the optional config file and the flags.
// A flag overrides the file only when it differs from its default.
func loadConfig() (config.Config, error) {
	cfg := config.Default()

	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath, cfg); err != nil {
			return cfg, err
		}
	}

	if enableGetString {
		cfg.Enabled = true
	}

	if target != config.DefaultTarget {
		cfg.Target = target
	}

	if replacement != config.DefaultReplacement {
		cfg.Replacements = config.SplitList(replacement)
	}

	if marker != config.DefaultMarker {
		cfg.Marker = marker
	}

	if !cfg.Enabled {
		return cfg, nil
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid -target: %w", err)
	}

	return cfg, nil
}

// buildSkipFiles creates a set of filenames to skip.
// Generated files are always skipped.
func buildSkipFiles(pass *analysis.Pass) map[string]bool {
	skipFiles := make(map[string]bool)

	for _, file := range pass.Files {
		filename := pass.Fset.Position(file.Pos()).Filename

		if ast.IsGenerated(file) {
			skipFiles[filename] = true
		}
	}

	return skipFiles
}

// fileState is the per-file context of a pass.
type fileState struct {
	pass    *analysis.Pass
	file    *ast.File
	ignores ignore.Map
}

// buildFiles creates the per-file state for every file that is not skipped.
func buildFiles(pass *analysis.Pass, skipFiles map[string]bool) map[string]*fileState {
	files := make(map[string]*fileState)

	for _, file := range pass.Files {
		filename := pass.Fset.Position(file.Pos()).Filename
		if skipFiles[filename] {
			continue
		}

		files[filename] = &fileState{
			pass:    pass,
			file:    file,
			ignores: ignore.Build(pass.Fset, file),
		}
	}

	return files
}

// importName returns the name the file uses for pkg, and whether an import
// has to be added for it.
func (f *fileState) importName(pkg *types.Package) (string, bool) {
	if pkg == f.pass.Pkg {
		return "", false
	}

	for _, group := range astutil.Imports(f.pass.Fset, f.file) {
		for _, spec := range group {
			p, err := strconv.Unquote(spec.Path.Value)
			if err != nil || p != pkg.Path() {
				continue
			}

			if spec.Name == nil {
				return pkg.Name(), false
			}

			switch spec.Name.Name {
			case "_":
				continue
			case ".":
				return "", false
			default:
				return spec.Name.Name, false
			}
		}
	}

	return pkg.Name(), true
}

// qualifier satisfies rewrite.Qualifier.
func (f *fileState) qualifier(pkg *types.Package) string {
	name, _ := f.importName(pkg)

	return name
}

// resolvable reports whether the replacement function can be named as
// qualifier.Name at pos without being shadowed.
func (f *fileState) resolvable(fn *types.Func, pos token.Pos) bool {
	name, add := f.importName(fn.Pkg())

	scope := f.pass.Pkg.Scope().Innermost(pos)
	if scope == nil {
		return false
	}

	if name == "" {
		_, obj := scope.LookupParent(fn.Name(), pos)

		return obj == fn
	}

	_, obj := scope.LookupParent(name, pos)
	if add {
		return obj == nil
	}

	pkgName, ok := obj.(*types.PkgName)

	return ok && pkgName.Imported() == fn.Pkg()
}

// importEdit adds an import of pkg after the file's last import declaration.
func (f *fileState) importEdit(pkg *types.Package) analysis.TextEdit {
	spec := strconv.Quote(pkg.Path())
	if path.Base(pkg.Path()) != pkg.Name() {
		spec = pkg.Name() + " " + spec
	}

	var last *ast.GenDecl
	for _, decl := range f.file.Decls {
		if gen, ok := decl.(*ast.GenDecl); ok && gen.Tok == token.IMPORT {
			last = gen
		}
	}

	switch {
	case last == nil:
		return insert(f.file.Name.End(), "\n\nimport "+spec)

	case last.Lparen.IsValid() && f.line(last.Lparen) != f.line(last.Rparen):
		// The closing parenthesis may share a line with the last spec.
		if n := len(last.Specs); n > 0 && f.line(last.Specs[n-1].End()) == f.line(last.Rparen) {
			return insert(last.Specs[n-1].End(), "\n\t"+spec)
		}

		return insert(last.Rparen, "\t"+spec+"\n")

	default:
		return insert(last.End(), "\nimport "+spec)
	}
}

func (f *fileState) line(pos token.Pos) int {
	return f.pass.Fset.Position(pos).Line
}

func insert(pos token.Pos, text string) analysis.TextEdit {
	return analysis.TextEdit{Pos: pos, End: pos, NewText: []byte(text)}
}

// callEdits turns the original call into the replacement call. Argument text
// is never touched, so edits of nested calls do not overlap.
func callEdits(rw *rewrite.Rewrite) []analysis.TextEdit {
	call := rw.Original
	fun := types.ExprString(rw.Call.Fun) + "("
	prefix, suffix := rw.Affixes()

	if rw.Form != rewrite.FormMethod {
		if prefix == "" && suffix == "" {
			// T.Method(recv, args) and Func(recv, args) keep their argument list.
			return []analysis.TextEdit{
				{Pos: call.Fun.Pos(), End: call.Lparen + 1, NewText: []byte(fun)},
			}
		}

		return []analysis.TextEdit{
			{Pos: call.Fun.Pos(), End: rw.Operand.Pos(), NewText: []byte(fun + prefix)},
			insert(rw.Operand.End(), suffix),
		}
	}

	sep := ""
	if len(rw.Args) > 0 {
		sep = ", "
	}

	return []analysis.TextEdit{
		{Pos: call.Fun.Pos(), End: rw.Operand.Pos(), NewText: []byte(fun + prefix)},
		{Pos: rw.Operand.End(), End: call.Lparen + 1, NewText: []byte(suffix + sep)},
	}
}

// report emits the diagnostic for one rewrite, with a fix when the
// replacement can be referenced from the file.
func report(pass *analysis.Pass, reg *registry.Registry, f *fileState, rw *rewrite.Rewrite) {
	call := rw.Original
	candidate := rw.Candidate.Func

	diag := analysis.Diagnostic{
		Pos:     call.Pos(),
		End:     call.End(),
		Message: fmt.Sprintf("%s call can be replaced with %s", reg.Spec().FullName(), rw.Candidate.Spec.FullName()),
	}

	if f.resolvable(candidate, call.Pos()) {
		edits := callEdits(rw)

		if _, add := f.importName(candidate.Pkg()); add {
			edits = append(edits, f.importEdit(candidate.Pkg()))
		}

		diag.SuggestedFixes = []analysis.SuggestedFix{{
			Message:   "Replace with " + rw.String(),
			TextEdits: edits,
		}}
	}

	pass.Report(diag)
}

// reportUnusedIgnores reports any ignore directives that were not used.
func reportUnusedIgnores(pass *analysis.Pass, files map[string]*fileState) {
	for _, f := range files {
		for _, pos := range f.ignores.Unused() {
			pass.Reportf(pos, "unused %s directive", ignore.Directive)
		}
	}
}
