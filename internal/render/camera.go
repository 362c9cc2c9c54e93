package render

// Camera translates between world coordinates and screen coordinates.
// World X is multiplied by 2 because emoji occupy 2 terminal columns.
type Camera struct {
	OffsetX    int
	OffsetY    int
	ViewWidth  int // in terminal columns
	ViewHeight int // in terminal rows
}

// NewCamera creates a camera for a viewport of viewW columns by viewH rows.
func NewCamera(viewW, viewH int) *Camera {
	return &Camera{ViewWidth: viewW, ViewHeight: viewH}
}

// Resize changes the viewport dimensions.
func (c *Camera) Resize(viewW, viewH int) {
	c.ViewWidth, c.ViewHeight = viewW, viewH
}

// Follow centers (cx, cy) in a worldW x worldH zone. An axis that fits
// entirely in the viewport is pinned to 0; otherwise the offset is clamped
// so the view never runs past the zone edge.
func (c *Camera) Follow(cx, cy, worldW, worldH int) {
	cols := c.ViewWidth / 2
	c.OffsetX = follow(cx, worldW, cols)
	c.OffsetY = follow(cy, worldH, c.ViewHeight)
}

func follow(center, world, view int) int {
	if world <= view {
		return 0
	}
	off := center - view/2
	if off < 0 {
		return 0
	}
	if off > world-view {
		return world - view
	}
	return off
}

// WorldToScreen converts world (wx, wy) to screen (sx, sy).
// visible is false when the result falls outside the viewport.
func (c *Camera) WorldToScreen(wx, wy int) (sx, sy int, visible bool) {
	sx = (wx - c.OffsetX) * 2
	sy = wy - c.OffsetY
	visible = sx >= 0 && sx+1 < c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}
