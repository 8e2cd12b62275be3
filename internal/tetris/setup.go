package tetris

import "fmt"

// ParseField builds a field from text rows of Columns characters each, top
// to bottom. Rows are aligned to the floor, so fewer than Rows lines describe
// the bottom of the well. '.' is empty, '#' is a wall block, and the letters
// IOSZJLT are locked cells of that kind.
func ParseField(rows []string) (Field, error) {
	f := NewField()
	if len(rows) > Rows {
		return f, fmt.Errorf("tetris: %d rows exceed the well height %d", len(rows), Rows)
	}

	top := FloorRow - len(rows)
	for i, row := range rows {
		if len(row) != Columns {
			return f, fmt.Errorf("tetris: row %d has %d columns, want %d", i, len(row), Columns)
		}
		for x := range Columns {
			c, err := parseCell(row[x])
			if err != nil {
				return f, fmt.Errorf("tetris: row %d column %d: %w", i, x, err)
			}
			f[top+i][InteriorLeft+x] = c
		}
	}
	return f, nil
}

func parseCell(b byte) (Cell, error) {
	switch b {
	case '.':
		return Empty, nil
	case '#':
		return Wall, nil
	}
	for _, k := range Kinds {
		if k.String()[0] == b {
			return k.Cell(), nil
		}
	}
	return Empty, fmt.Errorf("unknown cell %q", b)
}
