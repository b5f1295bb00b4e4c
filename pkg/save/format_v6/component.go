package format_v6

import "fmt"

// Variant names the trailing layout of a component record.
type Variant uint8

const (
	VariantNormal Variant = iota
	VariantCustom
	VariantProgram
)

func (v Variant) String() string {
	switch v {
	case VariantNormal:
		return "normal"
	case VariantCustom:
		return "custom"
	case VariantProgram:
		return "program"
	default:
		return fmt.Sprintf("variant(%d)", uint8(v))
	}
}

// Variant returns which trailing fields a component of this kind carries.
func (k ComponentKind) Variant() Variant {
	switch k {
	case KindCustom:
		return VariantCustom
	case KindProgram8_1, KindProgram8_4, KindProgram:
		return VariantProgram
	default:
		return VariantNormal
	}
}

// CustomData trails components of kind Custom.
type CustomData struct {
	CustomID     uint64 `json:"custom_id" yaml:"custom_id" cbor:"custom_id" msgpack:"custom_id"`
	Displacement Point  `json:"custom_displacement" yaml:"custom_displacement" cbor:"custom_displacement" msgpack:"custom_displacement"`
}

// Component is one placed component. Custom is set only for Custom
// components; Program is non-nil only for the program kinds and maps a
// slot identifier to its program text.
type Component struct {
	Kind         ComponentKind `json:"kind" yaml:"kind" cbor:"kind" msgpack:"kind"`
	Position     Point         `json:"position" yaml:"position" cbor:"position" msgpack:"position"`
	Rotation     uint8         `json:"rotation" yaml:"rotation" cbor:"rotation" msgpack:"rotation"`
	PermanentID  uint64        `json:"permanent_id" yaml:"permanent_id" cbor:"permanent_id" msgpack:"permanent_id"`
	CustomString string        `json:"custom_string" yaml:"custom_string" cbor:"custom_string" msgpack:"custom_string"`
	Setting1     uint64        `json:"setting_1" yaml:"setting_1" cbor:"setting_1" msgpack:"setting_1"`
	Setting2     uint64        `json:"setting_2" yaml:"setting_2" cbor:"setting_2" msgpack:"setting_2"`
	UIOrder      int16         `json:"ui_order" yaml:"ui_order" cbor:"ui_order" msgpack:"ui_order"`

	Custom  *CustomData       `json:"custom,omitempty" yaml:"custom,omitempty" cbor:"custom,omitempty" msgpack:"custom,omitempty"`
	Program map[uint64]string `json:"program,omitempty" yaml:"program,omitempty" cbor:"program,omitempty" msgpack:"program,omitempty"`
}

// Variant reports the component's trailing layout.
func (c *Component) Variant() Variant {
	return c.Kind.Variant()
}

var decodeProgramSlot = PairOf(decodeU64, decodeString)

// ReadComponent decodes the common fields, then the trailing fields the
// kind selects.
func ReadComponent(c *Cursor) (Component, error) {
	var comp Component
	var err error

	if comp.Kind, err = ReadComponentKind(c); err != nil {
		return Component{}, fmt.Errorf("kind: %w", err)
	}
	if comp.Position, err = c.ReadPoint(); err != nil {
		return Component{}, fmt.Errorf("position: %w", err)
	}
	if comp.Rotation, err = c.ReadU8(); err != nil {
		return Component{}, fmt.Errorf("rotation: %w", err)
	}
	if comp.PermanentID, err = c.ReadU64(); err != nil {
		return Component{}, fmt.Errorf("permanent_id: %w", err)
	}
	if comp.CustomString, err = ReadString(c); err != nil {
		return Component{}, fmt.Errorf("custom_string: %w", err)
	}
	if comp.Setting1, err = c.ReadU64(); err != nil {
		return Component{}, fmt.Errorf("setting_1: %w", err)
	}
	if comp.Setting2, err = c.ReadU64(); err != nil {
		return Component{}, fmt.Errorf("setting_2: %w", err)
	}
	if comp.UIOrder, err = c.ReadI16(); err != nil {
		return Component{}, fmt.Errorf("ui_order: %w", err)
	}

	switch comp.Kind.Variant() {
	case VariantCustom:
		var custom CustomData
		if custom.CustomID, err = c.ReadU64(); err != nil {
			return Component{}, fmt.Errorf("custom_id: %w", err)
		}
		if custom.Displacement, err = c.ReadPoint(); err != nil {
			return Component{}, fmt.Errorf("custom_displacement: %w", err)
		}
		comp.Custom = &custom

	case VariantProgram:
		slots, err := ReadShortSeq(c, decodeProgramSlot)
		if err != nil {
			return Component{}, fmt.Errorf("program slots: %w", err)
		}
		// Repeated slot ids are legal; the last one wins.
		comp.Program = make(map[uint64]string, len(slots))
		for _, slot := range slots {
			comp.Program[slot.First] = slot.Second
		}
	}

	return comp, nil
}
