// Package render draws laid-out molecules as skeletal-formula SVG.
//
// # Overview
//
// This package turns a molecule with assigned 2D coordinates into a
// self-contained SVG document. It provides:
//
//   - Skeletal-formula drawing ([SVG]): bonds as lines, heteroatoms as
//     text labels, carbons left implicit
//   - Fallback graphics ([Placeholder], [ErrorSVG]) so callers always
//     have something to embed
//   - An abstract connectivity view ([ToDOT], [RenderDOT]) rendered
//     through Graphviz
//
// # Skeletal Conventions
//
// Carbon atoms are drawn as bare vertices unless charged, isotopically
// labeled, or [Options.ShowCarbons] is set. Heteroatoms get element
// labels with implicit hydrogen counts (OH, NH2). Bond ends are pulled
// back from labeled atoms so lines never touch text.
//
// Bond styles follow the usual chemistry conventions:
//
//   - single: one line
//   - double/triple: parallel offset lines
//   - aromatic: dashed line
//   - wedge (stereo up): filled triangle
//   - hash (stereo down): dashed line
//
// # Scaling
//
// The drawing is fit into the requested frame with a single uniform
// transform. Stroke widths and font sizes are divided by the scale so
// they stay constant in screen pixels regardless of molecule size.
//
//	svg := render.SVG(m, render.Options{Width: 400, Height: 400})
package render
