// Package vet statically scans Go packages for typecheck declaration
// strings and compiles each one, so malformed declarations surface at vet
// time instead of when the declaring code first runs.
package vet

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"strconv"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/gvvaughan/typecheck"
)

const modulePath = "github.com/gvvaughan/typecheck"

// declFuncs are the library entry points whose first argument is a
// declaration string.
var declFuncs = map[string]bool{
	"Compile":     true,
	"MustCompile": true,
	"Wrap":        true,
	"MustWrap":    true,
}

type Cmd struct {
	Packages []string `arg:"" optional:"" help:"Packages to scan (default: ./...)."`
	Manifest []string `help:"Manifest files to vet as well." short:"m" type:"path"`
}

func (c *Cmd) Run() error {
	patterns := c.Packages
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}

	findings, checked, err := Scan(patterns)
	if err != nil {
		return fmt.Errorf("vet: %w", err)
	}

	for _, path := range c.Manifest {
		n, ferr := vetManifest(path)
		checked += n
		if ferr != nil {
			findings = append(findings, Finding{Source: path, Err: ferr})
		}
	}

	for _, f := range findings {
		fmt.Printf("%s: %v\n", f.Location(), f.Err)
	}
	if len(findings) > 0 {
		return fmt.Errorf("%d malformed declaration(s)", len(findings))
	}
	fmt.Printf("✓ %d declaration(s) checked\n", checked)
	return nil
}

// Finding is one malformed declaration with its source location.
type Finding struct {
	Pos    token.Position
	Source string // manifest path when not a Go position
	Decl   string
	Err    error
}

// Location renders the finding's source position.
func (f Finding) Location() string {
	if f.Source != "" {
		return f.Source
	}
	return f.Pos.String()
}

// Scan loads the packages matching the patterns and compiles every constant
// declaration string passed to typecheck.Compile, MustCompile, Wrap, or
// MustWrap, whether on the package itself or on a Checker value. checked
// counts all declarations found, malformed or not.
func Scan(patterns []string) (findings []Finding, checked int, err error) {
	return ScanDir("", patterns)
}

// ScanDir is Scan rooted at dir instead of the working directory.
func ScanDir(dir string, patterns []string) (findings []Finding, checked int, err error) {
	cfg := &packages.Config{
		Dir: dir,
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedImports |
			packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo,
	}
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, 0, fmt.Errorf("load packages: %w", err)
	}
	if len(pkgs) == 0 {
		return nil, 0, fmt.Errorf("no packages found matching %v", patterns)
	}

	// Compile on a throwaway checker so vet never pollutes the default
	// registry or cache.
	checker := typecheck.New()

	for _, pkg := range pkgs {
		if len(pkg.Errors) > 0 {
			return nil, 0, fmt.Errorf("package %s: %v", pkg.PkgPath, pkg.Errors[0])
		}
		for _, file := range pkg.Syntax {
			ast.Inspect(file, func(n ast.Node) bool {
				call, ok := n.(*ast.CallExpr)
				if !ok {
					return true
				}
				decl, pos, ok := declArg(pkg, call)
				if !ok {
					return true
				}
				checked++
				if _, cerr := checker.Compile(decl); cerr != nil {
					findings = append(findings, Finding{Pos: pos, Decl: decl, Err: cerr})
				}
				return true
			})
		}
	}
	return findings, checked, nil
}

// declArg extracts the constant declaration string from a call to one of
// the library's declaration-taking entry points, or reports ok=false.
func declArg(pkg *packages.Package, call *ast.CallExpr) (string, token.Position, bool) {
	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok || !declFuncs[sel.Sel.Name] || len(call.Args) < 1 {
		return "", token.Position{}, false
	}
	if !isTypecheckTarget(pkg, sel) {
		return "", token.Position{}, false
	}
	lit, ok := call.Args[0].(*ast.BasicLit)
	if !ok || lit.Kind != token.STRING {
		return "", token.Position{}, false
	}
	decl, err := strconv.Unquote(lit.Value)
	if err != nil {
		return "", token.Position{}, false
	}
	return decl, pkg.Fset.Position(lit.Pos()), true
}

// isTypecheckTarget reports whether the selector resolves to this module:
// either a package-level function of the typecheck package or a method on
// its Checker type.
func isTypecheckTarget(pkg *packages.Package, sel *ast.SelectorExpr) bool {
	if ident, ok := sel.X.(*ast.Ident); ok {
		if obj, ok := pkg.TypesInfo.Uses[ident]; ok {
			if pn, ok := obj.(*types.PkgName); ok {
				return pn.Imported().Path() == modulePath
			}
		}
	}
	if selection, ok := pkg.TypesInfo.Selections[sel]; ok {
		recv := selection.Recv()
		return recv != nil && strings.Contains(recv.String(), modulePath+".Checker")
	}
	return false
}

// vetManifest compiles every declaration of a manifest file, returning the
// declaration count and the first failure.
func vetManifest(path string) (int, error) {
	decls, err := typecheck.New().LoadManifest(path)
	if err != nil {
		return 0, err
	}
	return len(decls), nil
}
