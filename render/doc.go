// Package render provides a software canvas for plot2d actors.
//
// Canvas rasterizes the geometry actors produce — polyline meshes, filled
// quads, and styled text — into an RGBA Pixmap that can be saved as PNG
// or composited over a scene. It implements the plot2d.Canvas interface;
// attach it to a viewport with SetCanvas.
//
// The canvas draws in the viewport convention (origin bottom-left, Y up)
// and flips Y when writing into the pixmap, whose origin is top-left.
package render
