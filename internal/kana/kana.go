package kana

import "strings"

const (
	katakanaFirst = 0x30A1 // ァ
	katakanaLast  = 0x30F6 // ヶ

	// katakanaOffset is the distance between a katakana rune and its
	// hiragana counterpart.
	katakanaOffset = 0x60
)

// IsKatakana reports whether r falls in the convertible katakana range.
func IsKatakana(r rune) bool {
	return r >= katakanaFirst && r <= katakanaLast
}

// KatakanaToHiragana shifts every katakana rune in s to hiragana and
// copies everything else unchanged.
func KatakanaToHiragana(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if IsKatakana(r) {
			r -= katakanaOffset
		}
		b.WriteRune(r)
	}
	return b.String()
}
