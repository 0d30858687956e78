// Package pkg provides the core libraries for molviz structure rendering.
//
// # Overview
//
// Molviz turns SMILES line notation into skeletal-formula diagrams.
// The pkg directory is organized along the rendering pipeline:
//
//  1. [smiles] - Lenient SMILES parser producing a molecular graph
//  2. [mol] - Molecular graph types, valence rules, implicit hydrogens
//  3. [layout] - 2D coordinate assignment (zig-zag chains, ring polygons)
//  4. [render] - SVG and Graphviz DOT output
//  5. [pipeline] - Orchestration (parse → layout → render), never fails
//  6. [molfile] - JSON serialization of molecular graphs
//  7. [errors] - Structured error codes shared by the CLI and diagnostics
//
// # Architecture
//
// The typical data flow:
//
//	SMILES notation
//	         ↓
//	    [smiles] package (parse, collect diagnostics)
//	         ↓
//	    [mol] package (graph + implicit hydrogens)
//	         ↓
//	    [layout] package (2D coordinates)
//	         ↓
//	    [render] package (SVG output)
//
// # Quick Start
//
// Render a molecule in one call:
//
//	import "github.com/molviz/molviz/pkg/pipeline"
//
//	svg := pipeline.Render("CC(=O)Oc1ccccc1C(=O)O", pipeline.Options{})
//
// Or run the stages individually:
//
//	m, diags := smiles.ParseWithDiagnostics("c1ccccc1")
//	layout.Assign(m)
//	svg := render.SVG(m, render.Options{Width: 400, Height: 400})
//
// # Error Handling
//
// Rendering never returns an error. Malformed notation degrades into a
// partial structure plus advisory [smiles.Diagnostic] values; internal
// panics surface as an inline error graphic. The [errors] package
// classifies diagnostics and CLI failures with machine-readable codes.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/smiles/...    # Specific package
//	go test -run Example        # Examples only
//
// [smiles]: https://pkg.go.dev/github.com/molviz/molviz/pkg/smiles
// [mol]: https://pkg.go.dev/github.com/molviz/molviz/pkg/mol
// [layout]: https://pkg.go.dev/github.com/molviz/molviz/pkg/layout
// [render]: https://pkg.go.dev/github.com/molviz/molviz/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/molviz/molviz/pkg/pipeline
// [molfile]: https://pkg.go.dev/github.com/molviz/molviz/pkg/molfile
// [errors]: https://pkg.go.dev/github.com/molviz/molviz/pkg/errors
package pkg
