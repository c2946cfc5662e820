package signature

import "fmt"

// Rect is an on-screen rectangle relative to the canvas origin, in
// zoom-scaled pixels.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// CanvasPoint converts an absolute pointer position to document-space
// coordinates: subtract the canvas offset, then divide out the zoom. Stored
// positions are therefore zoom-independent regardless of the zoom level at
// placement time.
func CanvasPoint(pointerX, pointerY, canvasLeft, canvasTop, zoom float64) (Point, error) {
	if zoom <= 0 {
		return Point{}, fmt.Errorf("zoom must be positive, got %g", zoom)
	}
	return Point{
		X: (pointerX - canvasLeft) / zoom,
		Y: (pointerY - canvasTop) / zoom,
	}, nil
}

// ScreenRect is the inverse of CanvasPoint: a stored position rendered at
// the given zoom lands at {x*zoom, y*zoom} relative to the canvas origin.
func ScreenRect(position Point, zoom float64) Rect {
	return Rect{
		X: position.X * zoom,
		Y: position.Y * zoom,
	}
}
