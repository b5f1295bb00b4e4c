package savetest

import "fmt"

// Shape of the regression fixture.
const (
	FixtureClockSpeed = 100000
	FixtureComponents = 1623
	FixtureWires      = 6591
)

// FixtureHeader is the header written by Fixture.
func FixtureHeader() Header {
	return Header{
		SaveID:         0x5EED_0000_0000_0006,
		HubID:          42,
		Gate:           7,
		Delay:          12,
		MenuVisible:    true,
		ClockSpeed:     FixtureClockSpeed,
		Dependencies:   []uint64{11, 3, 11, 900},
		Description:    "byte computer",
		CameraX:        -120,
		CameraY:        64,
		Synced:         1,
		CampaignBound:  true,
		ArchScore:      321,
		PlayerData:     []byte{0xde, 0xad, 0xbe, 0xef},
		HubDescription: "Überschrift ✓",
	}
}

// FixtureComponentsList cycles through every tag, so custom and program
// components appear with their trailing fields.
func FixtureComponentsList() []Component {
	comps := make([]Component, FixtureComponents)
	for i := range comps {
		kind := uint16(i % 248)
		c := Component{
			Kind:        kind,
			X:           int16(i%97) - 48,
			Y:           int16(i%89) - 44,
			Rotation:    uint8(i % 4),
			PermanentID: uint64(1_000_000 + i),
			Setting1:    uint64(i) * 3,
			Setting2:    uint64(i) << 8,
			UIOrder:     int16(i%200) - 100,
		}
		if i%11 == 0 {
			c.CustomString = fmt.Sprintf("label %d", i)
		}
		switch kind {
		case KindCustom:
			c.CustomID = uint64(0xC0570000 + i)
			c.DX, c.DY = int16(i%5), -int16(i%3)
		case KindProgram8_1, KindProgram8_4, KindProgram:
			for s := 0; s < i%4; s++ {
				c.Slots = append(c.Slots, Slot{ID: uint64(s + i), Text: fmt.Sprintf("; slot %d\nadd r0 r1 r2", s)})
			}
		}
		comps[i] = c
	}
	return comps
}

// FixtureWiresList mixes teleport wires, straight runs and bends.
func FixtureWiresList() []Wire {
	wires := make([]Wire, FixtureWires)
	for i := range wires {
		w := Wire{
			Kind:  uint8(i % 5),
			Color: uint8(i % 13),
			X:     int16(i%211) - 100,
			Y:     int16(i%157) - 70,
		}
		if i%9 == 0 {
			w.Comment = "bus"
		}
		if i%7 == 0 {
			w.Teleport = true
			w.TX, w.TY = int16(i%300), -int16(i%150)
		} else {
			n := 1 + i%5
			for s := 0; s < n; s++ {
				dir := byte((i + s) % 8)
				run := byte(1 + (i*s)%31)
				w.Segments = append(w.Segments, dir<<5|run)
			}
		}
		wires[i] = w
	}
	return wires
}

// FixturePayload is the decompressed regression fixture.
func FixturePayload() []byte {
	return Payload(FixtureHeader(), FixtureComponentsList(), FixtureWiresList())
}

// Fixture is the regression fixture as a complete save file.
func Fixture() []byte {
	return Container(FixturePayload())
}
