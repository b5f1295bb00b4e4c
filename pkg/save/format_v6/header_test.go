package format_v6

import (
	"errors"
	"reflect"
	"testing"

	"github.com/danielrab/save-monger/internal/savetest"
	saveerrors "github.com/danielrab/save-monger/pkg/save/errors"
)

func TestReadHeader(t *testing.T) {
	fields := savetest.FixtureHeader()
	data := savetest.New().Header(fields).Bytes()

	c := NewCursor(data)
	h, err := ReadHeader(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := Header{
		SaveID:         fields.SaveID,
		HubID:          42,
		Gate:           7,
		Delay:          12,
		MenuVisible:    true,
		ClockSpeed:     100000,
		Dependencies:   []uint64{11, 3, 11, 900},
		Description:    "byte computer",
		CameraPosition: Point{X: -120, Y: 64},
		Synced:         SyncSynced,
		CampaignBound:  true,
		ArchScore:      321,
		PlayerData:     []byte{0xde, 0xad, 0xbe, 0xef},
		HubDescription: "Überschrift ✓",
	}
	if !reflect.DeepEqual(h, expected) {
		t.Errorf("header = %+v\nwant     %+v", h, expected)
	}
	if c.Remaining() != 0 {
		t.Errorf("%d bytes left after header", c.Remaining())
	}
}

func TestReadHeaderEmptySequences(t *testing.T) {
	data := savetest.New().Header(savetest.Header{}).Bytes()
	h, err := ReadHeader(NewCursor(data))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.Dependencies == nil || len(h.Dependencies) != 0 {
		t.Errorf("dependencies = %#v, want empty non-nil", h.Dependencies)
	}
	if len(h.PlayerData) != 0 || h.Description != "" || h.HubDescription != "" {
		t.Errorf("unexpected non-empty fields: %+v", h)
	}
}

func TestReadHeaderBadSyncState(t *testing.T) {
	fields := savetest.FixtureHeader()
	fields.Synced = 9
	_, err := ReadHeader(NewCursor(savetest.New().Header(fields).Bytes()))
	if !errors.Is(err, saveerrors.ErrUnknownEnumTag) {
		t.Fatalf("error = %v, want ErrUnknownEnumTag", err)
	}
}
