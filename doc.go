// Package plot2d provides 2D overlay plot actors for Go.
//
// # Overview
//
// plot2d renders annotation-style plots on top of an existing scene: a
// parallel-coordinates plot of multivariate tabular data, a color-legend
// scalar bar, and the 2D axis actor both are built from. Actors consume
// already-computed data (a field of numeric arrays, or a color lookup
// table) and produce screen-space geometry (polylines, ticks, quads) plus
// positioned text for a viewport to draw.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/plot2d"
//	    "github.com/gogpu/plot2d/render"
//	)
//
//	field := plot2d.NewFieldData()
//	field.AddArray(array) // one or more numeric arrays
//
//	actor := plot2d.NewParallelCoordinatesActor()
//	actor.SetInput(field)
//	actor.SetTitle("Iris")
//
//	vp := plot2d.NewBasicViewport(800, 600)
//	vp.SetCanvas(render.NewCanvas(800, 600))
//	actor.RenderOpaqueGeometry(vp)
//	actor.RenderOverlay(vp)
//
// # Architecture
//
// The library is organized into:
//   - Public API: ParallelCoordinatesActor, ScalarBarActor, AxisActor2D,
//     FieldData, LookupTable, PolyData, Viewport, Coordinate
//   - text: text style properties and shaping-based measurement
//   - render: a software canvas that rasterizes the produced geometry
//
// # Coordinate System
//
// Actors lay out geometry in viewport pixel coordinates with the origin at
// the bottom-left corner, Y increasing upward. Positions may be given in
// absolute viewport pixels or normalized to the viewport size; see
// Coordinate. The render package flips Y when writing into its pixmap.
//
// # Rebuilds
//
// Every actor caches its built geometry and rebuilds only when a
// modification timestamp (its own, its input's, or the viewport's resolved
// corners) advances past the last build. Rendering is single-threaded,
// synchronous, call-and-return.
package plot2d

// Version is the current version of the library.
const Version = "0.2.0"
