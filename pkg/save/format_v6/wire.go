package format_v6

import "fmt"

// PathMode selects how much of a wire's polyline is kept.
type PathMode uint8

const (
	// PathFull keeps every vertex.
	PathFull PathMode = iota
	// PathEndpoints keeps only the first and last vertex.
	PathEndpoints
)

func (m PathMode) String() string {
	switch m {
	case PathFull:
		return "full"
	case PathEndpoints:
		return "endpoints"
	default:
		return fmt.Sprintf("pathmode(%d)", uint8(m))
	}
}

// ParsePathMode parses "full" or "endpoints".
func ParsePathMode(s string) (PathMode, error) {
	switch s {
	case "", "full":
		return PathFull, nil
	case "endpoints":
		return PathEndpoints, nil
	default:
		return PathFull, fmt.Errorf("unknown wire path mode %q", s)
	}
}

// Wire is a connection drawn as an axis- or diagonal-aligned polyline.
type Wire struct {
	Kind    WireKind `json:"kind" yaml:"kind" cbor:"kind" msgpack:"kind"`
	Color   uint8    `json:"color" yaml:"color" cbor:"color" msgpack:"color"`
	Comment string   `json:"comment" yaml:"comment" cbor:"comment" msgpack:"comment"`
	Path    []Point  `json:"path" yaml:"path" cbor:"path" msgpack:"path"`
}

// Start returns the first vertex of the path.
func (w *Wire) Start() Point {
	if len(w.Path) == 0 {
		return Point{}
	}
	return w.Path[0]
}

// End returns the last vertex of the path.
func (w *Wire) End() Point {
	if len(w.Path) == 0 {
		return Point{}
	}
	return w.Path[len(w.Path)-1]
}

// ReadWire decodes one wire record.
func ReadWire(c *Cursor, mode PathMode) (Wire, error) {
	var w Wire
	var err error

	if w.Kind, err = ReadWireKind(c); err != nil {
		return Wire{}, fmt.Errorf("kind: %w", err)
	}
	if w.Color, err = c.ReadU8(); err != nil {
		return Wire{}, fmt.Errorf("color: %w", err)
	}
	if w.Comment, err = ReadString(c); err != nil {
		return Wire{}, fmt.Errorf("comment: %w", err)
	}
	if w.Path, err = ReadPath(c); err != nil {
		return Wire{}, fmt.Errorf("path: %w", err)
	}

	if mode == PathEndpoints && len(w.Path) > 2 {
		w.Path = []Point{w.Path[0], w.Path[len(w.Path)-1]}
	}
	return w, nil
}

// ReadPath decodes a start point followed by segment bytes. A first
// segment byte equal to the teleport marker is followed by the absolute
// end point. Otherwise each byte moves runLength cells in one of eight
// directions until a zero byte.
func ReadPath(c *Cursor) ([]Point, error) {
	current, err := c.ReadPoint()
	if err != nil {
		return nil, err
	}
	path := []Point{current}

	segment, err := c.ReadU8()
	if err != nil {
		return nil, err
	}

	if segment == teleportMarker {
		target, err := c.ReadPoint()
		if err != nil {
			return nil, fmt.Errorf("teleport target: %w", err)
		}
		return append(path, target), nil
	}

	for segment != 0 {
		direction := directions[segment>>directionShift]
		run := int16(segment & runLengthMask)
		current = current.Add(direction.Scale(run))
		path = append(path, current)

		if segment, err = c.ReadU8(); err != nil {
			return nil, fmt.Errorf("segment %d: %w", len(path)-1, err)
		}
	}

	return path, nil
}
