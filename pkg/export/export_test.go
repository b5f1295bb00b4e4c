package export

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"

	"github.com/danielrab/save-monger/internal/savetest"
	"github.com/danielrab/save-monger/pkg/save/format_v6"
)

func decodeFixture(t *testing.T) *format_v6.Circuit {
	t.Helper()
	payload := savetest.Payload(savetest.FixtureHeader(),
		savetest.FixtureComponentsList()[:300],
		savetest.FixtureWiresList()[:50],
	)
	circuit, err := format_v6.Decode(savetest.Container(payload))
	if err != nil {
		t.Fatalf("decoding fixture: %v", err)
	}
	return circuit
}

// TestEncodeDecode runs each format through one compression chain and back
func TestEncodeDecode(t *testing.T) {
	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "export_test",
		Level: hclog.Trace,
	})
	circuit := decodeFixture(t)

	testCases := []struct {
		format      string
		compression string
		extension   string
	}{
		{"json", "raw", ".json"},
		{"yaml", "gzip", ".yaml.gz"},
		{"cbor", "zstd", ".cbor.zst"},
		{"msgpack", "lz4|bzip2", ".msgpack.lz4.bz2"},
	}

	for _, tc := range testCases {
		t.Run(tc.format, func(t *testing.T) {
			res, err := Encode(circuit, tc.format, tc.compression)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			logger.Debug("Encoded circuit", "format", tc.format, "compression", tc.compression, "size", len(res.Data))

			if res.Extension != tc.extension {
				t.Errorf("extension = %q, want %q", res.Extension, tc.extension)
			}

			back, err := Decode(res.Data, tc.format, tc.compression)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if back.Header.ClockSpeed != circuit.Header.ClockSpeed ||
				len(back.Components) != len(circuit.Components) || len(back.Wires) != len(circuit.Wires) {
				t.Fatalf("decoded dump differs in shape")
			}
			if !reflect.DeepEqual(back.Components[94].Program, circuit.Components[94].Program) {
				t.Errorf("program slots = %v, want %v", back.Components[94].Program, circuit.Components[94].Program)
			}
			if !reflect.DeepEqual(back.Wires[1].Path, circuit.Wires[1].Path) {
				t.Errorf("wire path = %v, want %v", back.Wires[1].Path, circuit.Wires[1].Path)
			}
		})
	}
}

func TestJSONUsesKindNames(t *testing.T) {
	res, err := Encode(decodeFixture(t), "json", "")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`"kind": "Custom"`, `"kind": "Width1"`, `"synced": "Synced"`, `"clock_speed": 100000`} {
		if !bytes.Contains(res.Data, []byte(want)) {
			t.Errorf("JSON dump missing %s", want)
		}
	}
}

func TestCBORIsDeterministic(t *testing.T) {
	circuit := decodeFixture(t)
	a, err := Encode(circuit, "cbor", "raw")
	if err != nil {
		t.Fatal(err)
	}
	b, err := Encode(circuit, "cbor", "raw")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Data, b.Data) {
		t.Error("two CBOR encodings of the same circuit differ")
	}
}

func TestCBORSortsProgramSlots(t *testing.T) {
	codec, err := NewCBOR[map[uint64]string]()
	if err != nil {
		t.Fatal(err)
	}
	data, err := codec.Encode(map[uint64]string{3: "c", 1: "a", 2: "b"})
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0xa3, 0x01, 0x61, 'a', 0x02, 0x61, 'b', 0x03, 0x61, 'c'}
	if !bytes.Equal(data, want) {
		t.Errorf("encoded = % x, want % x", data, want)
	}
}

func TestLookupErrors(t *testing.T) {
	if _, err := Lookup("xml"); err == nil || !strings.Contains(err.Error(), "json") {
		t.Errorf("Lookup(xml) error = %v", err)
	}
	if _, err := Encode(&format_v6.Circuit{}, "json", "rar"); err == nil {
		t.Error("Encode accepted an unknown compression")
	}
	if got := Names(); !reflect.DeepEqual(got, []string{"cbor", "json", "msgpack", "yaml"}) {
		t.Errorf("Names() = %v", got)
	}
}
