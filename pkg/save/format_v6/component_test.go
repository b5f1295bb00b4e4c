package format_v6

import (
	"errors"
	"reflect"
	"testing"

	"github.com/danielrab/save-monger/internal/savetest"
	saveerrors "github.com/danielrab/save-monger/pkg/save/errors"
)

func TestReadComponentVariants(t *testing.T) {
	logger := testLogger("component_test")

	common := savetest.Component{
		X: 4, Y: -3, Rotation: 2, PermanentID: 77, CustomString: "clk",
		Setting1: 1, Setting2: 2, UIOrder: -5,
	}
	with := func(kind uint16, f func(c *savetest.Component)) savetest.Component {
		c := common
		c.Kind = kind
		if f != nil {
			f(&c)
		}
		return c
	}

	testCases := []struct {
		name        string
		comp        savetest.Component
		variant     Variant
		wantCustom  *CustomData
		wantProgram map[uint64]string
	}{
		{
			name:    "normal",
			comp:    with(savetest.KindAnd, nil),
			variant: VariantNormal,
		},
		{
			name: "custom",
			comp: with(savetest.KindCustom, func(c *savetest.Component) {
				c.CustomID, c.DX, c.DY = 0xABCD, -1, 6
			}),
			variant:    VariantCustom,
			wantCustom: &CustomData{CustomID: 0xABCD, Displacement: Point{X: -1, Y: 6}},
		},
		{
			name: "program",
			comp: with(savetest.KindProgram, func(c *savetest.Component) {
				c.Slots = []savetest.Slot{{ID: 1, Text: "nop"}, {ID: 2, Text: "halt"}}
			}),
			variant:     VariantProgram,
			wantProgram: map[uint64]string{1: "nop", 2: "halt"},
		},
		{
			name:        "program8_1 without slots",
			comp:        with(savetest.KindProgram8_1, nil),
			variant:     VariantProgram,
			wantProgram: map[uint64]string{},
		},
		{
			name: "program8_4 duplicate slot keeps last",
			comp: with(savetest.KindProgram8_4, func(c *savetest.Component) {
				c.Slots = []savetest.Slot{{ID: 5, Text: "old"}, {ID: 6, Text: "x"}, {ID: 5, Text: "new"}}
			}),
			variant:     VariantProgram,
			wantProgram: map[uint64]string{5: "new", 6: "x"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			logger.Debug("Decoding component", "test", tc.name, "kind", tc.comp.Kind)

			c := NewCursor(savetest.New().Component(tc.comp).Bytes())
			comp, err := ReadComponent(c)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if c.Remaining() != 0 {
				t.Fatalf("%d bytes left after component", c.Remaining())
			}

			if comp.Variant() != tc.variant {
				t.Errorf("variant = %v, want %v", comp.Variant(), tc.variant)
			}
			if comp.Position != (Point{X: 4, Y: -3}) || comp.Rotation != 2 || comp.PermanentID != 77 ||
				comp.CustomString != "clk" || comp.Setting1 != 1 || comp.Setting2 != 2 || comp.UIOrder != -5 {
				t.Errorf("common fields = %+v", comp)
			}
			if !reflect.DeepEqual(comp.Custom, tc.wantCustom) {
				t.Errorf("custom = %+v, want %+v", comp.Custom, tc.wantCustom)
			}
			if !reflect.DeepEqual(comp.Program, tc.wantProgram) {
				t.Errorf("program = %#v, want %#v", comp.Program, tc.wantProgram)
			}
		})
	}
}

func TestReadComponentErrors(t *testing.T) {
	full := savetest.New().Component(savetest.Component{Kind: savetest.KindCustom, CustomID: 1}).Bytes()

	testCases := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{"unknown kind", savetest.New().U16(248).Raw(full[2:]...).Bytes(), saveerrors.ErrUnknownEnumTag},
		{"custom data cut short", full[:len(full)-1], saveerrors.ErrTruncatedInput},
		{"empty", nil, saveerrors.ErrTruncatedInput},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ReadComponent(NewCursor(tc.data))
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("error = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestReadComponentInvalidProgramText(t *testing.T) {
	// Common fields of an And gate, retagged as Program, then one slot
	// whose text is not UTF-8.
	common := savetest.New().Component(savetest.Component{Kind: savetest.KindAnd}).Bytes()
	data := savetest.New().U16(savetest.KindProgram).Raw(common[2:]...).
		U16(1).U64(3).ShortBytes([]byte{0xc3, 0x28}).Bytes()

	_, err := ReadComponent(NewCursor(data))
	if !errors.Is(err, saveerrors.ErrInvalidUTF8) {
		t.Fatalf("error = %v, want ErrInvalidUTF8", err)
	}
}
