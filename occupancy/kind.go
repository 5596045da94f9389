package occupancy

// Kind is the occupancy fact stored for a cell. Larger values take priority.
type Kind uint8

const (
	// Covered means the cell is inside some sensor's radius and holds nothing.
	Covered Kind = iota
	// Beacon means a beacon sits on the cell.
	Beacon
	// Sensor means a sensor sits on the cell.
	Sensor
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Covered:
		return "covered"
	case Beacon:
		return "beacon"
	case Sensor:
		return "sensor"
	default:
		return "unknown"
	}
}

// Glyph returns the single-character map symbol for k.
func (k Kind) Glyph() byte {
	switch k {
	case Beacon:
		return 'B'
	case Sensor:
		return 'S'
	default:
		return '#'
	}
}

// Merge returns the higher-priority of a and b.
func Merge(a, b Kind) Kind {
	return max(a, b)
}
