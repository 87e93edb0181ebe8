package transliteration

import (
	"sort"

	"github.com/samber/lo"
)

// Composition marks. These are single code points, which lets the
// scanner retract or inspect the last emitted rune directly.
const (
	halant       = '्'
	anusvara     = 'ं'
	chandrabindu = 'ँ'
	matraAA      = 'ा'
	matraUU      = 'ू'
)

// Independent vowel forms (svara), used when no consonant precedes.
// Keys are case-sensitive ITRANS; the uppercase single letter is an
// alternate spelling of the long digraph (aa/A, ii/I, ...).
var vowels = map[string]string{
	"a":  "अ",
	"aa": "आ", "A": "आ",
	"i":  "इ",
	"ii": "ई", "I": "ई",
	"u":  "उ",
	"uu": "ऊ", "U": "ऊ",
	"RRi": "ऋ", "R^i": "ऋ",
	"RRI": "ॠ", "R^I": "ॠ",
	"LLi": "ऌ", "L^i": "ऌ",
	"LLI": "ॡ", "L^I": "ॡ",
	"e":  "ए",
	"ai": "ऐ", "E": "ऐ",
	"o":  "ओ",
	"au": "औ", "O": "औ",
	"M":  "ं",
	"H":  "ः",
	".":  "।",
	"..": "॥",
}

// Consonants (vyanjana). Case matters: T/Th/D/Dh/N are retroflex,
// t/th/d/dh/n dental. Each glyph carries the unwritten inherent "a"
// unless the scanner attaches a matra or a halant.
var consonants = map[string]string{
	// Velars
	"k": "क", "kh": "ख", "g": "ग", "gh": "घ", "~N": "ङ", "N^": "ङ",
	// Palatals
	"ch": "च", "Ch": "छ", "chh": "छ", "j": "ज", "jh": "झ",
	"~n": "ञ", "JN": "ञ", "j~n": "ज्ञ", "GY": "ज्ञ",
	// Retroflex
	"T": "ट", "Th": "ठ", "D": "ड", "Dh": "ढ", "N": "ण",
	// Dentals
	"t": "त", "th": "थ", "d": "द", "dh": "ध", "n": "न",
	// Labials
	"p": "प", "ph": "फ", "b": "ब", "bh": "भ", "m": "म",
	// Semivowels
	"y": "य", "r": "र", "l": "ल", "v": "व", "w": "व",
	// Sibilants and aspirate
	"sh": "श", "Sh": "ष", "S": "ष", "s": "स", "h": "ह",
	// Conjunct shorthand
	"x": "क्ष",
}

// Dependent vowel signs (matra), attached directly after a consonant
// glyph. Same spellings as the vowel table minus "a": the inherent
// vowel has no written sign.
var matras = map[string]string{
	"aa": "ा", "A": "ा",
	"i":  "ि",
	"ii": "ी", "I": "ी",
	"u":  "ु",
	"uu": "ू", "U": "ू",
	"RRi": "ृ", "R^i": "ृ",
	"RRI": "ॄ", "R^I": "ॄ",
	"e":  "े",
	"ai": "ै", "E": "ै",
	"o":  "ो",
	"au": "ौ", "O": "ौ",
}

// Symbols with no vowel semantics. The pipe is an alternate danda for
// keyboards where "." is too overloaded to retype.
var specials = map[string]string{
	"M":  "ं",
	"H":  "ः",
	".":  "।",
	"..": "॥",
	"|":  "।",
}

// Precomputed per-table key orderings, longest key first, so every
// scan tries the longest candidate before its prefixes ("aa" before
// "a", "chh" before "ch").
var (
	vowelKeys     = keysLongestFirst(vowels)
	consonantKeys = keysLongestFirst(consonants)
	matraKeys     = keysLongestFirst(matras)
	specialKeys   = keysLongestFirst(specials)
)

func keysLongestFirst(table map[string]string) []string {
	keys := lo.Keys(table)
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}
