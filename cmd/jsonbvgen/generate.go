// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// generate.go — package scanning and source emission: parses the target
// directory, verifies each requested type is declared there, and renders the
// binding methods through text/template. The emitted methods only forward to
// the jsonbv package; the envelope protocol is never inlined here.

package main

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"io/fs"
	"sort"
	"strings"
	"text/template"
)

var bindingsTemplate = template.Must(template.New("bindings").Parse(
	`// Code generated by jsonbvgen; DO NOT EDIT.

package {{.Package}}

import (
	"database/sql/driver"

	"github.com/AndrewDonelson/jsonbv"
)
{{range .Types}}
// Value encodes the {{.}} as a versioned jsonb envelope.
func (v {{.}}) Value() (driver.Value, error) {
	return jsonbv.Marshal(v)
}

// Scan decodes a versioned jsonb envelope into the {{.}}.
func (v *{{.}}) Scan(src any) error {
	return jsonbv.ScanValue(src, v)
}
{{end}}`))

type templateData struct {
	Package string
	Types   []string
}

// Generate parses the package in dir and returns a gofmt-formatted source
// file binding each named type. A type name that is empty, not a valid
// identifier, or not declared in the package is a hard error: binding
// failures belong at generation time, never at runtime.
func Generate(dir string, types []string) ([]byte, error) {
	for _, name := range types {
		if !token.IsIdentifier(name) {
			return nil, fmt.Errorf("jsonbvgen: %q is not a valid type name", name)
		}
	}

	pkgName, declared, err := scanPackage(dir)
	if err != nil {
		return nil, err
	}
	for _, name := range types {
		if !declared[name] {
			return nil, fmt.Errorf("jsonbvgen: type %s not declared in %s", name, dir)
		}
	}

	var buf bytes.Buffer
	if err := bindingsTemplate.Execute(&buf, templateData{Package: pkgName, Types: types}); err != nil {
		return nil, fmt.Errorf("jsonbvgen: render: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("jsonbvgen: format: %w", err)
	}
	return src, nil
}

// scanPackage parses the non-test files in dir and returns the package name
// and the set of type names declared at the top level.
func scanPackage(dir string) (string, map[string]bool, error) {
	fset := token.NewFileSet()
	filter := func(fi fs.FileInfo) bool {
		return !strings.HasSuffix(fi.Name(), "_test.go") &&
			!strings.HasSuffix(fi.Name(), "_jsonbv.go")
	}
	pkgs, err := parser.ParseDir(fset, dir, filter, parser.SkipObjectResolution)
	if err != nil {
		return "", nil, fmt.Errorf("jsonbvgen: parse %s: %w", dir, err)
	}
	if len(pkgs) == 0 {
		return "", nil, fmt.Errorf("jsonbvgen: no Go package in %s", dir)
	}
	if len(pkgs) > 1 {
		names := make([]string, 0, len(pkgs))
		for name := range pkgs {
			names = append(names, name)
		}
		sort.Strings(names)
		return "", nil, fmt.Errorf("jsonbvgen: multiple packages in %s: %s", dir, strings.Join(names, ", "))
	}

	declared := make(map[string]bool)
	var pkgName string
	for name, pkg := range pkgs {
		pkgName = name
		for _, file := range pkg.Files {
			for _, decl := range file.Decls {
				gd, ok := decl.(*ast.GenDecl)
				if !ok || gd.Tok != token.TYPE {
					continue
				}
				for _, spec := range gd.Specs {
					if ts, ok := spec.(*ast.TypeSpec); ok {
						declared[ts.Name.Name] = true
					}
				}
			}
		}
	}
	return pkgName, declared, nil
}
