package schematic

// Qualifies reports whether the run touches a symbol.
// row is the row the run was scanned from. above and below are the
// neighboring rows, or nil at the top and bottom of the grid.
//
// The same-row neighbors only need the separator test: the run is maximal,
// so the cell beside it cannot be a digit. Neighbor rows may hold digits of
// another number and are checked with isSymbol.
func (r Run) Qualifies(row, above, below []rune) bool {
	lo, hi := r.Start, r.End
	if r.Start > 0 {
		lo--
	}
	if r.End < len(row)-1 {
		hi++
	}

	if r.Start > 0 && row[r.Start-1] != separator {
		return true
	}
	if r.End < len(row)-1 && row[r.End+1] != separator {
		return true
	}

	if above != nil && symbolWithin(above, lo, hi) {
		return true
	}
	if below != nil && symbolWithin(below, lo, hi) {
		return true
	}

	return false
}

// symbolWithin scans columns lo..hi of row. Columns past the end of a short
// row count as empty.
func symbolWithin(row []rune, lo, hi int) bool {
	if hi >= len(row) {
		hi = len(row) - 1
	}
	for i := lo; i <= hi; i++ {
		if isSymbol(row[i]) {
			return true
		}
	}
	return false
}

func isSymbol(c rune) bool {
	return !isDigit(c) && c != separator
}
