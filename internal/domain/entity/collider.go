package entity

// TileSize is the edge length of one grid cell in world pixels.
const TileSize = 24

// ColliderBox is an axis-aligned rectangle in world pixels.
// Width and Height are always positive.
type ColliderBox struct {
	X, Y          float64
	Width, Height float64
	Deadly        bool
}

// NewCellBox returns a box offset from a cell origin.
func NewCellBox(cellX, cellY int, offsetX, offsetY, w, h float64) ColliderBox {
	return ColliderBox{
		X:      float64(cellX*TileSize) + offsetX,
		Y:      float64(cellY*TileSize) + offsetY,
		Width:  w,
		Height: h,
	}
}

// IsColliding reports whether the open interiors of the two boxes intersect.
// Boxes that only share an edge do not collide.
func (c ColliderBox) IsColliding(other ColliderBox) bool {
	horizontal := c.X < other.X+other.Width && c.X+c.Width > other.X
	vertical := c.Y < other.Y+other.Height && c.Y+c.Height > other.Y
	return horizontal && vertical
}
