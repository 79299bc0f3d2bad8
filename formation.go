package fireworks

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Formation is the bitmap rockets fly into. Cells holds Width-wide rows
// flattened row-major; a 1 places a rocket target at that cell, a 0 leaves
// a gap.
type Formation struct {
	Width int
	Cells []uint8
}

// DefaultFormation spells the year the show was first drawn for, 15 cells
// wide and 5 rows tall.
var DefaultFormation = Formation{
	Width: 15,
	Cells: []uint8{
		1, 1, 1, 0, 0, 1, 0, 0, 1, 1, 1, 0, 1, 0, 1,
		0, 0, 1, 0, 1, 0, 1, 0, 0, 0, 1, 0, 1, 0, 1,
		1, 1, 1, 0, 1, 0, 1, 0, 1, 1, 1, 0, 1, 1, 1,
		1, 0, 0, 0, 1, 0, 1, 0, 1, 0, 0, 0, 0, 0, 1,
		1, 1, 1, 0, 0, 1, 0, 0, 1, 1, 1, 0, 0, 0, 1,
	},
}

// Rows returns the number of rows in the bitmap.
func (f Formation) Rows() int {
	if f.Width <= 0 {
		return 0
	}
	return len(f.Cells) / f.Width
}

// Popcount returns the number of set cells, which is the number of rockets a
// show generates.
func (f Formation) Popcount() int {
	n := 0
	for _, c := range f.Cells {
		if c != 0 {
			n++
		}
	}
	return n
}

// Validate checks that the bitmap is a non-empty rectangle of 0/1 cells.
func (f Formation) Validate() error {
	switch {
	case f.Width <= 0:
		return fmt.Errorf("%w: width %d", ErrBadFormation, f.Width)
	case len(f.Cells) == 0:
		return fmt.Errorf("%w: no cells", ErrBadFormation)
	case len(f.Cells)%f.Width != 0:
		return fmt.Errorf("%w: %d cells do not fill rows of %d", ErrBadFormation, len(f.Cells), f.Width)
	}
	for i, c := range f.Cells {
		if c > 1 {
			return fmt.Errorf("%w: cell %d is %d", ErrBadFormation, i, c)
		}
	}
	return nil
}

// String renders the bitmap with '#' for set cells and '.' for gaps, one
// line per row.
func (f Formation) String() string {
	var b strings.Builder
	for i, c := range f.Cells {
		if i > 0 && f.Width > 0 && i%f.Width == 0 {
			b.WriteByte('\n')
		}
		if c != 0 {
			b.WriteByte('#')
		} else {
			b.WriteByte('.')
		}
	}
	return b.String()
}

// ParseFormation builds a formation from text rows. '#', '1', 'x' and 'X' set
// a cell; '.', '0', '_' and ' ' leave it empty. Blank leading and trailing
// lines are ignored; every remaining row must have the same width.
func ParseFormation(rows []string) (Formation, error) {
	for len(rows) > 0 && strings.TrimSpace(rows[0]) == "" {
		rows = rows[1:]
	}
	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 {
		return Formation{}, fmt.Errorf("%w: no rows", ErrBadFormation)
	}

	width := len([]rune(rows[0]))
	f := Formation{Width: width, Cells: make([]uint8, 0, width*len(rows))}
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != width {
			return Formation{}, fmt.Errorf("%w: row %d is %d wide, want %d", ErrBadFormation, y, len(runes), width)
		}
		for x, r := range runes {
			switch r {
			case '#', '1', 'x', 'X':
				f.Cells = append(f.Cells, 1)
			case '.', '0', '_', ' ':
				f.Cells = append(f.Cells, 0)
			default:
				return Formation{}, fmt.Errorf("%w: unexpected %q at row %d col %d", ErrBadFormation, r, y, x)
			}
		}
	}
	return f, f.Validate()
}

// formationFile is the YAML shape accepted by LoadFormation.
type formationFile struct {
	Name string   `yaml:"name"`
	Rows []string `yaml:"rows"`
}

// DecodeFormation parses a YAML formation document:
//
//	name: heart
//	rows:
//	  - ".#.#."
//	  - "#####"
//	  - ".###."
//	  - "..#.."
func DecodeFormation(data []byte) (Formation, error) {
	var doc formationFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Formation{}, fmt.Errorf("decode formation: %w", err)
	}
	f, err := ParseFormation(doc.Rows)
	if err != nil {
		if doc.Name != "" {
			return Formation{}, fmt.Errorf("formation %q: %w", doc.Name, err)
		}
		return Formation{}, err
	}
	return f, nil
}

// LoadFormation reads a YAML formation file from disk.
func LoadFormation(path string) (Formation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Formation{}, fmt.Errorf("load formation: %w", err)
	}
	return DecodeFormation(data)
}
