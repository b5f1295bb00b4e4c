package format_v6

import (
	"errors"
	"testing"

	"github.com/danielrab/save-monger/internal/savetest"
	saveerrors "github.com/danielrab/save-monger/pkg/save/errors"
)

func TestComponentKindTable(t *testing.T) {
	if len(componentKindNames) != 248 {
		t.Fatalf("component kind table has %d entries, want 248", len(componentKindNames))
	}
	for i, name := range componentKindNames {
		if name == "" {
			t.Errorf("tag %d has no name", i)
		}
		if componentKindValues[name] != uint16(i) {
			t.Errorf("reverse lookup of %q = %d, want %d", name, componentKindValues[name], i)
		}
	}
}

func TestReadComponentKind(t *testing.T) {
	testCases := []struct {
		name    string
		raw     uint16
		want    ComponentKind
		wantErr bool
	}{
		{"first tag", 0, KindError, false},
		{"deleted placeholder", 19, KindDeleted0, false},
		{"last deleted placeholder", 91, KindDeleted11, false},
		{"custom", 92, KindCustom, false},
		{"last tag", 247, KindAshr64, false},
		{"one past the table", 248, 0, true},
		{"max u16", 0xffff, 0, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ReadComponentKind(NewCursor(savetest.New().U16(tc.raw).Bytes()))
			if tc.wantErr {
				if !errors.Is(err, saveerrors.ErrUnknownEnumTag) {
					t.Fatalf("error = %v, want ErrUnknownEnumTag", err)
				}
				var tagErr *UnknownTagError
				if !errors.As(err, &tagErr) {
					t.Fatalf("error %v is not an *UnknownTagError", err)
				}
				if tagErr.Kind != "ComponentKind" || tagErr.Value != uint64(tc.raw) {
					t.Errorf("UnknownTagError = %+v", tagErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("kind = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSmallEnums(t *testing.T) {
	if _, err := ReadWireKind(NewCursor([]byte{4})); err != nil {
		t.Errorf("Width64 rejected: %v", err)
	}
	if _, err := ReadWireKind(NewCursor([]byte{5})); !errors.Is(err, saveerrors.ErrUnknownEnumTag) {
		t.Errorf("wire kind 5: error = %v, want ErrUnknownEnumTag", err)
	}
	if s, err := ReadSyncState(NewCursor([]byte{2})); err != nil || s != SyncChangedAfterSync {
		t.Errorf("sync state 2 = %v, %v", s, err)
	}
	if _, err := ReadSyncState(NewCursor([]byte{3})); !errors.Is(err, saveerrors.ErrUnknownEnumTag) {
		t.Errorf("sync state 3: error = %v, want ErrUnknownEnumTag", err)
	}
}

func TestEnumNames(t *testing.T) {
	testCases := []struct {
		got, want string
	}{
		{KindProgram8_1.String(), "Program8_1"},
		{KindVirtualRegister8RedPlus.String(), "VirtualRegister8RedPlus"},
		{ComponentKind(300).String(), "ComponentKind(300)"},
		{WireWidth16.String(), "Width16"},
		{SyncUnsynced.String(), "Unsynced"},
	}
	for _, tc := range testCases {
		if tc.got != tc.want {
			t.Errorf("name = %q, want %q", tc.got, tc.want)
		}
	}

	var k ComponentKind
	if err := k.UnmarshalText([]byte("DelayLine64")); err != nil || k != KindDelayLine64 {
		t.Errorf("UnmarshalText(DelayLine64) = %v, %v", k, err)
	}
	if err := k.UnmarshalText([]byte("Flux")); !errors.Is(err, saveerrors.ErrUnknownEnumTag) {
		t.Errorf("UnmarshalText(Flux) error = %v", err)
	}
	if WireWidth32.Bits() != 32 {
		t.Errorf("Width32 bits = %d", WireWidth32.Bits())
	}
}
