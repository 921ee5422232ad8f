package calibration

import "github.com/harrison/aoc/internal/trie"

// DigitProvider reports the decimal digits of each line.
type DigitProvider struct{}

// ExtractNumbers implements NumberProvider.
func (DigitProvider) ExtractNumbers(text string) [][]uint32 {
	lines := [][]uint32{{}}
	for _, c := range text {
		switch {
		case c == '\n':
			lines = append(lines, []uint32{})
		case c >= '0' && c <= '9':
			lines[len(lines)-1] = append(lines[len(lines)-1], uint32(c-'0'))
		}
	}
	return lines
}

var numberWords = trie.MustNew(map[string]uint32{
	"one":   1,
	"two":   2,
	"three": 3,
	"four":  4,
	"five":  5,
	"six":   6,
	"seven": 7,
	"eight": 8,
	"nine":  9,
})

var wordStarts = numberWords.FirstRunes()

// TextProvider reports digits and spelled-out numbers of each line.
// Words may overlap: "eightwo" yields 8 then 2.
type TextProvider struct{}

// ExtractNumbers implements NumberProvider.
func (TextProvider) ExtractNumbers(text string) [][]uint32 {
	runes := []rune(text)
	lines := [][]uint32{{}}

	for i, c := range runes {
		if c == '\n' {
			lines = append(lines, []uint32{})
			continue
		}
		if n, ok := numberAt(runes, i); ok {
			lines[len(lines)-1] = append(lines[len(lines)-1], n)
		}
	}
	return lines
}

func numberAt(text []rune, i int) (uint32, bool) {
	c := text[i]
	if c >= '0' && c <= '9' {
		return uint32(c - '0'), true
	}
	if !wordStarts[c] {
		return 0, false
	}
	return numberWords.MatchAt(text, i)
}
