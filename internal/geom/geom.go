// Package geom holds the small amount of planar geometry the pager and title
// strip need: sizes, axis-aligned frames and scalar interpolation. Frames are
// curve rectangles; the strip lays items out by origin and width, so Rect adds
// those accessors on top of curve's corner representation.
package geom

import (
	"math"

	"honnef.co/go/curve"
)

// Size is a width/height pair in host units (points or terminal cells).
type Size = curve.Size

// Sz returns the size (w, h).
func Sz(w, h float64) Size {
	return curve.Sz(w, h)
}

// Rect is an axis-aligned frame.
type Rect struct {
	curve.Rect
}

// XYWH returns the frame with origin (x, y) and size (w, h).
func XYWH(x, y, w, h float64) Rect {
	return Rect{curve.NewRectFromOrigin(curve.Pt(x, y), curve.Sz(w, h))}
}

// FromCenter returns the w×h frame centered on (cx, cy).
func FromCenter(cx, cy, w, h float64) Rect {
	// curve takes half extents
	return Rect{curve.NewRectFromCenter(curve.Pt(cx, cy), curve.Sz(w/2, h/2))}
}

func (r Rect) X() float64 { return r.X0 }
func (r Rect) Y() float64 { return r.Y0 }
func (r Rect) W() float64 { return r.Width() }
func (r Rect) H() float64 { return r.Height() }

// CenterX returns the horizontal center.
func (r Rect) CenterX() float64 { return r.Center().X }

// CenterY returns the vertical center.
func (r Rect) CenterY() float64 { return r.Center().Y }

// WithWidth resizes r keeping its origin.
func (r Rect) WithWidth(w float64) Rect {
	return Rect{r.WithSize(curve.Sz(w, r.Height()))}
}

// WithCenterX moves r horizontally so that its center sits at cx.
func (r Rect) WithCenterX(cx float64) Rect {
	return Rect{r.WithOrigin(curve.Pt(cx-r.Width()/2, r.Y0))}
}

// WithCenterY moves r vertically so that its center sits at cy.
func (r Rect) WithCenterY(cy float64) Rect {
	return Rect{r.WithOrigin(curve.Pt(r.X0, cy-r.Height()/2))}
}

// ContainsX reports whether x lies within [X, MaxX). Frames without height
// contain nothing.
func (r Rect) ContainsX(x float64) bool {
	return r.Contains(curve.Pt(x, r.CenterY()))
}

// Lerp interpolates linearly between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp limits v to [lo, hi]. When hi < lo the result is lo.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// Finite reports whether v is neither NaN nor infinite.
func Finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
