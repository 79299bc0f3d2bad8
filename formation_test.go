package fireworks

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultFormation(t *testing.T) {
	if err := DefaultFormation.Validate(); err != nil {
		t.Fatal(err)
	}
	if DefaultFormation.Width != 15 || DefaultFormation.Rows() != 5 {
		t.Errorf("size = %dx%d, want 15x5", DefaultFormation.Width, DefaultFormation.Rows())
	}
	if got := DefaultFormation.Popcount(); got != 39 {
		t.Errorf("Popcount = %d, want 39", got)
	}
}

func TestFormationStringRoundTrip(t *testing.T) {
	rows := strings.Split(DefaultFormation.String(), "\n")
	if len(rows) != 5 {
		t.Fatalf("rows = %d, want 5", len(rows))
	}
	if rows[0] != "###..#..###.#.#" {
		t.Errorf("row 0 = %q", rows[0])
	}
	f, err := ParseFormation(rows)
	if err != nil {
		t.Fatal(err)
	}
	if f.String() != DefaultFormation.String() {
		t.Error("parsed formation differs from default")
	}
}

func TestParseFormation(t *testing.T) {
	f, err := ParseFormation([]string{"", "#.x", "0X1", "  "})
	if err != nil {
		t.Fatal(err)
	}
	if f.Width != 3 || f.Rows() != 2 {
		t.Errorf("size = %dx%d, want 3x2", f.Width, f.Rows())
	}
	want := []uint8{1, 0, 1, 0, 1, 1}
	for i := range want {
		if f.Cells[i] != want[i] {
			t.Errorf("cell %d = %d, want %d", i, f.Cells[i], want[i])
		}
	}
}

func TestParseFormationErrors(t *testing.T) {
	tests := []struct {
		name string
		rows []string
	}{
		{"empty", nil},
		{"blank", []string{"", " "}},
		{"ragged", []string{"###", "##"}},
		{"bad rune", []string{"#?#"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseFormation(tt.rows); !errors.Is(err, ErrBadFormation) {
				t.Errorf("err = %v, want ErrBadFormation", err)
			}
		})
	}
}

func TestFormationValidate(t *testing.T) {
	tests := []struct {
		name string
		f    Formation
		ok   bool
	}{
		{"ok", Formation{Width: 2, Cells: []uint8{1, 0, 0, 1}}, true},
		{"zero width", Formation{Width: 0, Cells: []uint8{1}}, false},
		{"no cells", Formation{Width: 3}, false},
		{"partial row", Formation{Width: 3, Cells: []uint8{1, 1}}, false},
		{"not a bit", Formation{Width: 1, Cells: []uint8{2}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.f.Validate()
			if (err == nil) != tt.ok {
				t.Errorf("Validate() = %v, want ok=%v", err, tt.ok)
			}
		})
	}
}

func TestDecodeFormation(t *testing.T) {
	data := []byte(`
name: heart
rows:
  - ".#.#."
  - "#####"
  - ".###."
  - "..#.."
`)
	f, err := DecodeFormation(data)
	if err != nil {
		t.Fatal(err)
	}
	if f.Width != 5 || f.Rows() != 4 || f.Popcount() != 11 {
		t.Errorf("heart = %dx%d with %d set, want 5x4 with 11", f.Width, f.Rows(), f.Popcount())
	}
}

func TestDecodeFormationNamedError(t *testing.T) {
	_, err := DecodeFormation([]byte("name: broken\nrows: [\"##\", \"#\"]\n"))
	if !errors.Is(err, ErrBadFormation) {
		t.Fatalf("err = %v, want ErrBadFormation", err)
	}
	if !strings.Contains(err.Error(), `"broken"`) {
		t.Errorf("error %q should name the formation", err)
	}
}

func TestLoadFormation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dot.yaml")
	if err := os.WriteFile(path, []byte("rows: [\"#\"]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	f, err := LoadFormation(path)
	if err != nil {
		t.Fatal(err)
	}
	if f.Popcount() != 1 {
		t.Errorf("Popcount = %d, want 1", f.Popcount())
	}

	if _, err := LoadFormation(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
