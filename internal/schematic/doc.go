// Package schematic finds the part numbers of an engine schematic.
//
// A schematic is a grid of characters. Digits form numbers, '.' is empty
// space, and every other character is a symbol. A number is a part number
// when any of its cells touches a symbol horizontally, vertically or
// diagonally.
//
//	values, err := schematic.FindPartNumbers(text)
//	if err != nil {
//	    return err
//	}
//	total, err := schematic.Sum(values)
//
// Scanning is split in three pieces that can be used on their own:
//
//   - RunScanner walks one row and yields each maximal digit run.
//   - Run.Qualifies decides whether a run touches a symbol, given its row
//     and the rows directly above and below it.
//   - FindPartNumbers drives both over a whole grid in row-major order.
//
// The grid is never validated. Columns missing from a shorter neighbor row
// are treated as empty space.
package schematic
