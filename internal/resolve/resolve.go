// Package resolve looks up named constants referenced by enum member
// values in the package the code is generated into.
package resolve

import (
	"fmt"
	"go/constant"
	"go/types"

	"golang.org/x/tools/go/packages"
)

// Resolver resolves constant names against one loaded Go package.
type Resolver struct {
	pkg *packages.Package
}

// Load type-checks the package rooted at dir. If pkgName is not empty, the
// loaded package must have that name; go generate supplies it via
// $GOPACKAGE.
func Load(dir, pkgName string) (*Resolver, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedTypes | packages.NeedTypesInfo | packages.NeedDeps | packages.NeedImports,
		Dir:  dir,
	}
	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return nil, err
	}

	var ret *packages.Package
	for _, pkg := range pkgs {
		if pkgName != "" && pkg.Name != pkgName {
			continue
		}

		if ret != nil {
			return nil, fmt.Errorf("multiple packages found in %s", dir)
		}

		ret = pkg
	}

	if ret == nil {
		if pkgName != "" {
			return nil, fmt.Errorf("no package named %s found in %s", pkgName, dir)
		}
		return nil, fmt.Errorf("no package found in %s", dir)
	}

	return &Resolver{pkg: ret}, nil
}

// Constant returns the exact value of the named package-level integer
// constant as literal text, e.g. "14" or "-1".
func (r *Resolver) Constant(name string) (string, error) {
	obj := r.pkg.Types.Scope().Lookup(name)
	if obj == nil {
		return "", fmt.Errorf("constant %q not found in package %s", name, r.pkg.Name)
	}

	c, ok := obj.(*types.Const)
	if !ok {
		return "", fmt.Errorf("%q is not a constant in package %s", name, r.pkg.Name)
	}

	if c.Val().Kind() != constant.Int {
		return "", fmt.Errorf("constant %q is not an integer (%s)", name, c.Val().Kind())
	}

	return c.Val().ExactString(), nil
}
