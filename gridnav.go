package prompter

// gridLayout is the once-per-frame layout decision shared by the List and
// Checkbox executors: how many columns fit the terminal width, and how
// many rows that implies.
type gridLayout struct {
	columns int
	rows    int
}

const minItemsForMultiColumn = 6
const columnMargin = 2

// computeLayout decides column count and row count for items within a
// terminal termCols wide, given the width of the key prefix each item
// carries (0 when no item has a shortcut key).
func computeLayout(items []Item, keyWidth int, termCols, availableRows int) gridLayout {
	n := len(items)
	if n == 0 {
		return gridLayout{columns: 1, rows: 0}
	}
	if n < minItemsForMultiColumn {
		return gridLayout{columns: 1, rows: n}
	}

	maxItemWidth := 0
	for _, it := range items {
		w := runeDisplayWidth(it.Text) + 2 /* indicator glyph */ + keyWidth
		if w > maxItemWidth {
			maxItemWidth = w
		}
	}

	cols := (termCols) / (maxItemWidth + columnMargin)
	if cols < 1 {
		cols = 1
	}
	if cols > n {
		cols = n
	}
	rows := (n + cols - 1) / cols
	for rows > availableRows && cols < n {
		cols++
		rows = (n + cols - 1) / cols
	}
	return gridLayout{columns: cols, rows: rows}
}

// position maps a row-first index to (row, col); column-first ordering is
// not offered as an option.
func (g gridLayout) position(index int) (row, col int) {
	return index / g.columns, index % g.columns
}

func (g gridLayout) index(row, col int) int {
	return row*g.columns + col
}

func isSelectable(items []Item, i int) bool {
	return i >= 0 && i < len(items) && items[i].Selectable
}

// firstSelectable returns the index of the first selectable item, or -1.
func firstSelectable(items []Item) int {
	for i := range items {
		if items[i].Selectable {
			return i
		}
	}
	return -1
}

// nextSelectable walks forward from i (exclusive), wrapping around, and
// returns the next selectable item's index, or i unchanged if none exists.
func nextSelectable(items []Item, i int) int {
	n := len(items)
	if n == 0 {
		return i
	}
	for step := 1; step <= n; step++ {
		j := (i + step) % n
		if items[j].Selectable {
			return j
		}
	}
	return i
}

// prevSelectable is nextSelectable's mirror.
func prevSelectable(items []Item, i int) int {
	n := len(items)
	if n == 0 {
		return i
	}
	for step := 1; step <= n; step++ {
		j := ((i-step)%n + n) % n
		if items[j].Selectable {
			return j
		}
	}
	return i
}

// columnStep moves the cursor by delta columns within the current row,
// falling back to the linear next/prev selectable item if the landing
// cell is non-selectable or off the grid.
func columnStep(items []Item, g gridLayout, i, delta int) int {
	row, col := g.position(i)
	newCol := ((col+delta)%g.columns + g.columns) % g.columns
	j := g.index(row, newCol)
	if isSelectable(items, j) {
		return j
	}
	if delta > 0 {
		return nextSelectable(items, i)
	}
	return prevSelectable(items, i)
}

// matchShortcut returns the index of the first selectable item whose Key
// matches r case-insensitively, or -1.
func matchShortcut(items []Item, keys []rune, r rune) int {
	lr := toLowerRune(r)
	for i, it := range items {
		if !it.Selectable || keys[i] == 0 {
			continue
		}
		if toLowerRune(keys[i]) == lr {
			return i
		}
	}
	return -1
}

func toLowerRune(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

// window is the single-column pagination state: a sliding [First, Last)
// range over the item list, recentred only when the cursor would fall
// outside it.
type window struct {
	First, Last int
}

// computeWindow recomputes the visible window for n items given the
// previous window, the current cursor, and the number of rows available
// for items (after any fixed chrome like the header/message lines).
func computeWindow(prev window, cursor, n, rows int) window {
	if rows <= 0 {
		rows = 1
	}
	if n <= rows {
		return window{0, n}
	}
	if prev.Last > prev.First && cursor >= prev.First && cursor < prev.Last {
		last := prev.Last
		if last > n {
			last = n
		}
		return window{prev.First, last}
	}
	// Recentre so the cursor sits near the bottom with one row of lookahead.
	last := cursor + 2
	if last > n {
		last = n
	}
	first := last - rows
	if first < 0 {
		first = 0
		last = first + rows
		if last > n {
			last = n
		}
	}
	return window{first, last}
}
