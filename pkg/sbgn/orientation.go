package sbgn

// Orientation is the layout direction of a node. Process nodes and logic
// gates are horizontal or vertical; tags point left, right, up or down. The
// empty orientation means "not set yet".
type Orientation string

const (
	Unoriented Orientation = ""
	Horizontal Orientation = "horizontal"
	Vertical   Orientation = "vertical"
	Left       Orientation = "left"
	Right      Orientation = "right"
	Up         Orientation = "up"
	Down       Orientation = "down"
)

// IsVertical reports whether fixed ports for o sit on the top and bottom
// sides. Anything but Vertical lays ports out left and right.
func (o Orientation) IsVertical() bool { return o == Vertical }

// Valid reports whether o is one of the known orientations.
func (o Orientation) Valid() bool {
	switch o {
	case Unoriented, Horizontal, Vertical, Left, Right, Up, Down:
		return true
	}
	return false
}
