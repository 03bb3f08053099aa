package internalcheck

import (
	"fmt"
	"go/ast"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

const corePkg = "github.com/shorlabs/shor-go/pkg/shor"

// TestNoGlobalRandomness enforces the injected-randomness policy: base
// sampling must consume Config.Rand, so the core package must not reach for
// the process-wide math/rand generators.
func TestNoGlobalRandomness(t *testing.T) {
	cfg := &packages.Config{Mode: packages.NeedName | packages.NeedImports}

	pkgs, err := packages.Load(cfg, corePkg)
	if err != nil {
		t.Fatalf("load package: %v", err)
	}

	for _, pkg := range pkgs {
		for path := range pkg.Imports {
			if path == "math/rand" || path == "math/rand/v2" {
				t.Fatalf("randomness policy violation: %s imports %s", pkg.PkgPath, path)
			}
		}
	}
}

// TestNoDirectPrinting enforces the logging policy: all progress reporting in
// the core package goes through the logging facade, never straight to stdout.
func TestNoDirectPrinting(t *testing.T) {
	cfg := &packages.Config{
		Mode: packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo | packages.NeedFiles | packages.NeedName,
	}

	pkgs, err := packages.Load(cfg, corePkg)
	if err != nil {
		t.Fatalf("load package: %v", err)
	}

	var findings []string

	for _, pkg := range pkgs {
		for _, file := range pkg.Syntax {
			fset := pkg.Fset
			ast.Inspect(file, func(n ast.Node) bool {
				call, ok := n.(*ast.CallExpr)
				if !ok {
					return true
				}

				selector, ok := call.Fun.(*ast.SelectorExpr)
				if !ok {
					return true
				}

				obj := pkg.TypesInfo.Uses[selector.Sel]
				if obj == nil || obj.Pkg() == nil {
					return true
				}

				if isPrintCall(obj.Pkg().Path(), obj.Name()) {
					pos := fset.Position(call.Pos())
					findings = append(findings, fmt.Sprintf("%s: progress must go through the logging facade", pos))
				}

				return true
			})
		}
	}

	if len(findings) > 0 {
		t.Fatalf("logging policy violation:\n%s", strings.Join(findings, "\n"))
	}
}

func isPrintCall(pkgPath, name string) bool {
	switch pkgPath {
	case "fmt":
		switch name {
		case "Print", "Println", "Printf":
			return true
		}
	case "log":
		switch name {
		case "Print", "Println", "Printf", "Fatal", "Fatalln", "Fatalf":
			return true
		}
	}
	return false
}
