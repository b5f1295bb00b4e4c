// Package savetest builds save files byte by byte for tests. It mirrors
// the on-disk layout directly and does not depend on the decoder.
package savetest

import (
	"encoding/binary"

	"github.com/klauspost/compress/s2"
)

// Raw tag values the builder needs to pick a component's trailing layout.
const (
	KindAnd        uint16 = 5
	KindProgram8_1 uint16 = 64
	KindProgram8_4 uint16 = 68
	KindCustom     uint16 = 92
	KindProgram    uint16 = 94

	TeleportMarker byte = 0b0010_0000
)

// Builder appends little-endian fields to a payload.
type Builder struct {
	buf []byte
}

// New returns an empty builder.
func New() *Builder { return &Builder{} }

func (b *Builder) Bytes() []byte { return b.buf }

func (b *Builder) Len() int { return len(b.buf) }

func (b *Builder) Raw(p ...byte) *Builder {
	b.buf = append(b.buf, p...)
	return b
}

func (b *Builder) U8(v uint8) *Builder { return b.Raw(v) }

func (b *Builder) Bool(v bool) *Builder {
	if v {
		return b.U8(1)
	}
	return b.U8(0)
}

func (b *Builder) U16(v uint16) *Builder {
	b.buf = binary.LittleEndian.AppendUint16(b.buf, v)
	return b
}

func (b *Builder) I16(v int16) *Builder { return b.U16(uint16(v)) }

func (b *Builder) U32(v uint32) *Builder {
	b.buf = binary.LittleEndian.AppendUint32(b.buf, v)
	return b
}

func (b *Builder) U64(v uint64) *Builder {
	b.buf = binary.LittleEndian.AppendUint64(b.buf, v)
	return b
}

func (b *Builder) Point(x, y int16) *Builder { return b.I16(x).I16(y) }

// ShortBytes writes a u16 length then p.
func (b *Builder) ShortBytes(p []byte) *Builder {
	return b.U16(uint16(len(p))).Raw(p...)
}

// String writes a u16 length then the raw string bytes.
func (b *Builder) String(s string) *Builder { return b.ShortBytes([]byte(s)) }

// Header describes every header field in file order.
type Header struct {
	SaveID         uint64
	HubID          uint32
	Gate           uint64
	Delay          uint64
	MenuVisible    bool
	ClockSpeed     uint32
	Dependencies   []uint64
	Description    string
	CameraX        int16
	CameraY        int16
	Synced         uint8
	CampaignBound  bool
	ArchScore      uint16
	PlayerData     []byte
	HubDescription string
}

func (b *Builder) Header(h Header) *Builder {
	b.U64(h.SaveID).U32(h.HubID).U64(h.Gate).U64(h.Delay).Bool(h.MenuVisible).U32(h.ClockSpeed)
	b.U16(uint16(len(h.Dependencies)))
	for _, d := range h.Dependencies {
		b.U64(d)
	}
	b.String(h.Description).Point(h.CameraX, h.CameraY).U8(h.Synced).Bool(h.CampaignBound).U16(h.ArchScore)
	return b.ShortBytes(h.PlayerData).String(h.HubDescription)
}

// Slot is one program entry.
type Slot struct {
	ID   uint64
	Text string
}

// Component describes a component record. CustomID/DX/DY are written
// only for KindCustom, Slots only for the program kinds.
type Component struct {
	Kind         uint16
	X, Y         int16
	Rotation     uint8
	PermanentID  uint64
	CustomString string
	Setting1     uint64
	Setting2     uint64
	UIOrder      int16
	CustomID     uint64
	DX, DY       int16
	Slots        []Slot
}

func (b *Builder) Component(c Component) *Builder {
	b.U16(c.Kind).Point(c.X, c.Y).U8(c.Rotation).U64(c.PermanentID).String(c.CustomString)
	b.U64(c.Setting1).U64(c.Setting2).I16(c.UIOrder)
	switch c.Kind {
	case KindCustom:
		b.U64(c.CustomID).Point(c.DX, c.DY)
	case KindProgram8_1, KindProgram8_4, KindProgram:
		b.U16(uint16(len(c.Slots)))
		for _, s := range c.Slots {
			b.U64(s.ID).String(s.Text)
		}
	}
	return b
}

// Wire describes a wire record. When Teleport is set the path is the
// start point, the teleport marker and the target; otherwise Segments
// are written followed by the zero terminator.
type Wire struct {
	Kind     uint8
	Color    uint8
	Comment  string
	X, Y     int16
	Segments []byte
	Teleport bool
	TX, TY   int16
}

func (b *Builder) Wire(w Wire) *Builder {
	b.U8(w.Kind).U8(w.Color).String(w.Comment).Point(w.X, w.Y)
	if w.Teleport {
		return b.U8(TeleportMarker).Point(w.TX, w.TY)
	}
	return b.Raw(w.Segments...).U8(0)
}

// Payload assembles header, components and wires with their u64 counts.
func Payload(h Header, comps []Component, wires []Wire) []byte {
	b := New().Header(h)
	b.U64(uint64(len(comps)))
	for _, c := range comps {
		b.Component(c)
	}
	b.U64(uint64(len(wires)))
	for _, w := range wires {
		b.Wire(w)
	}
	return b.Bytes()
}

// Container prefixes version 6 and Snappy-compresses the payload.
func Container(payload []byte) []byte {
	return ContainerVersion(6, payload)
}

// ContainerVersion is Container with an arbitrary version byte.
func ContainerVersion(version byte, payload []byte) []byte {
	return append([]byte{version}, s2.EncodeSnappy(nil, payload)...)
}
