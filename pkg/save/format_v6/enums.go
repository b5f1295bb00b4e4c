package format_v6

import (
	"fmt"

	saveerrors "github.com/danielrab/save-monger/pkg/save/errors"
)

// UnknownTagError reports an enum tag outside its closed table.
type UnknownTagError struct {
	Kind  string
	Value uint64
}

func (e *UnknownTagError) Error() string {
	return fmt.Sprintf("%v: %s value %d", saveerrors.ErrUnknownEnumTag, e.Kind, e.Value)
}

func (e *UnknownTagError) Unwrap() error { return saveerrors.ErrUnknownEnumTag }

// SyncState records whether a custom component's schematic is in sync
// with the save that uses it.
type SyncState uint8

const (
	SyncUnsynced SyncState = iota
	SyncSynced
	SyncChangedAfterSync
)

var syncStateNames = [...]string{
	SyncUnsynced:         "Unsynced",
	SyncSynced:           "Synced",
	SyncChangedAfterSync: "ChangedAfterSync",
}

// WireKind is the bit width a wire carries.
type WireKind uint8

const (
	WireWidth1 WireKind = iota
	WireWidth8
	WireWidth16
	WireWidth32
	WireWidth64
)

var wireKindNames = [...]string{
	WireWidth1:  "Width1",
	WireWidth8:  "Width8",
	WireWidth16: "Width16",
	WireWidth32: "Width32",
	WireWidth64: "Width64",
}

// Bits returns the number of bits a wire of this kind carries.
func (k WireKind) Bits() int {
	if k > WireWidth64 {
		return 0
	}
	return [...]int{1, 8, 16, 32, 64}[k]
}

// tagNames turns a tag-indexed name table into its reverse index.
func tagNames(names []string) map[string]uint16 {
	m := make(map[string]uint16, len(names))
	for i, n := range names {
		m[n] = uint16(i)
	}
	return m
}

var (
	componentKindValues = tagNames(componentKindNames[:])
	syncStateValues     = tagNames(syncStateNames[:])
	wireKindValues      = tagNames(wireKindNames[:])
)

func tagString(names []string, v uint16, kind string) string {
	if int(v) < len(names) {
		return names[v]
	}
	return fmt.Sprintf("%s(%d)", kind, v)
}

func parseTag(values map[string]uint16, text []byte, kind string) (uint16, error) {
	v, ok := values[string(text)]
	if !ok {
		return 0, fmt.Errorf("%w: %s name %q", saveerrors.ErrUnknownEnumTag, kind, text)
	}
	return v, nil
}

// checkTag validates a raw tag against a table of size len(names).
func checkTag(names []string, raw uint16, kind string) error {
	if int(raw) >= len(names) {
		return &UnknownTagError{Kind: kind, Value: uint64(raw)}
	}
	return nil
}

func (k ComponentKind) String() string {
	return tagString(componentKindNames[:], uint16(k), "ComponentKind")
}

func (s SyncState) String() string {
	return tagString(syncStateNames[:], uint16(s), "SyncState")
}

func (k WireKind) String() string {
	return tagString(wireKindNames[:], uint16(k), "WireKind")
}

// Enum tags marshal as their names so exported dumps stay readable.

func (k ComponentKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }
func (s SyncState) MarshalText() ([]byte, error)     { return []byte(s.String()), nil }
func (k WireKind) MarshalText() ([]byte, error)      { return []byte(k.String()), nil }

func (k *ComponentKind) UnmarshalText(text []byte) error {
	v, err := parseTag(componentKindValues, text, "ComponentKind")
	*k = ComponentKind(v)
	return err
}

func (s *SyncState) UnmarshalText(text []byte) error {
	v, err := parseTag(syncStateValues, text, "SyncState")
	*s = SyncState(v)
	return err
}

func (k *WireKind) UnmarshalText(text []byte) error {
	v, err := parseTag(wireKindValues, text, "WireKind")
	*k = WireKind(v)
	return err
}

// ReadComponentKind reads a u16 component tag.
func ReadComponentKind(c *Cursor) (ComponentKind, error) {
	raw, err := c.ReadU16()
	if err != nil {
		return 0, err
	}
	if err := checkTag(componentKindNames[:], raw, "ComponentKind"); err != nil {
		return 0, err
	}
	return ComponentKind(raw), nil
}

// ReadSyncState reads a u8 sync-state tag.
func ReadSyncState(c *Cursor) (SyncState, error) {
	raw, err := c.ReadU8()
	if err != nil {
		return 0, err
	}
	if err := checkTag(syncStateNames[:], uint16(raw), "SyncState"); err != nil {
		return 0, err
	}
	return SyncState(raw), nil
}

// ReadWireKind reads a u8 wire-kind tag.
func ReadWireKind(c *Cursor) (WireKind, error) {
	raw, err := c.ReadU8()
	if err != nil {
		return 0, err
	}
	if err := checkTag(wireKindNames[:], uint16(raw), "WireKind"); err != nil {
		return 0, err
	}
	return WireKind(raw), nil
}
