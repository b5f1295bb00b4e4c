package format_v6

// Stats summarizes a decoded circuit.
type Stats struct {
	Components   int
	Wires        int
	ByVariant    map[Variant]int
	ByWireKind   map[WireKind]int
	ProgramSlots int
	Vertices     int
	LongestPath  int
}

// Stats counts components by variant and wires by kind.
func (ci *Circuit) Stats() Stats {
	s := Stats{
		Components: len(ci.Components),
		Wires:      len(ci.Wires),
		ByVariant:  make(map[Variant]int),
		ByWireKind: make(map[WireKind]int),
	}
	for i := range ci.Components {
		comp := &ci.Components[i]
		s.ByVariant[comp.Variant()]++
		s.ProgramSlots += len(comp.Program)
	}
	for i := range ci.Wires {
		n := len(ci.Wires[i].Path)
		s.ByWireKind[ci.Wires[i].Kind]++
		s.Vertices += n
		if n > s.LongestPath {
			s.LongestPath = n
		}
	}
	return s
}
