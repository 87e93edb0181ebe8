// Package transliteration converts Roman ITRANS text to Devanagari
// script. It is a single left-to-right pass doing longest-match lookup
// over the pattern tables, with matra attachment, conjunct halant
// insertion, and a few irregular nasalization rules layered on top.
package transliteration

import (
	"strings"
	"unicode/utf8"
)

// Translate converts ITRANS text to Devanagari. It is total: any span
// that matches no table entry is copied through unchanged, so mixed
// input (names, numbers, foreign words) degrades gracefully instead of
// failing. Each call is an independent composition; Translate is safe
// for concurrent use.
func Translate(input string) string {
	if input == "" {
		return ""
	}
	s := &scanner{text: applyOverrides(input)}
	for s.pos < len(s.text) {
		s.step()
	}
	return string(s.out)
}

// scanner is the per-call scan state: read cursor, output accumulator,
// and a one-bit memory of whether the previous step consumed a written
// inherent "a" (the halant exception needs it).
type scanner struct {
	text          string
	pos           int
	out           []rune
	prevImplicitA bool
}

// step consumes one span of input, trying in priority order: space,
// consonant, standalone vowel, special symbol, verbatim copy. Every
// branch advances the cursor, so the scan always terminates.
func (s *scanner) step() {
	if s.text[s.pos] == ' ' {
		s.out = append(s.out, ' ')
		s.pos++
		s.prevImplicitA = false
		return
	}

	if key, ok := matchAt(s.text, s.pos, consonantKeys); ok {
		s.consonant(key)
		return
	}

	if key, ok := matchAt(s.text, s.pos, vowelKeys); ok {
		s.emitNasalAware(key, vowels[key])
		s.pos += len(key)
		s.prevImplicitA = false
		return
	}

	if key, ok := matchAt(s.text, s.pos, specialKeys); ok {
		// Punctuation attaches directly to the preceding word.
		if n := len(s.out); n > 0 && s.out[n-1] == ' ' {
			s.out = s.out[:n-1]
		}
		s.emitNasalAware(key, specials[key])
		s.pos += len(key)
		s.prevImplicitA = false
		return
	}

	r, size := utf8.DecodeRuneInString(s.text[s.pos:])
	s.out = append(s.out, r)
	s.pos += size
	s.prevImplicitA = false
}

// consonant emits the matched consonant glyph and resolves what
// follows it: a matra, an explicit vowel, the word-final nasal, or the
// bare-consonant halant decision.
func (s *scanner) consonant(key string) {
	s.emit(consonants[key])
	next := s.pos + len(key)
	implicitA := false

	switch {
	case s.attachMatra(next):
	case s.attachVowel(next, &implicitA):
	case key == "n" && next >= len(s.text):
		// A bare final n nasalizes the syllable instead of standing as
		// its own consonant: "main" is मैं, not मैन.
		s.out[len(s.out)-1] = anusvara
		s.pos = next
	default:
		s.bareConsonant(next)
	}
	s.prevImplicitA = implicitA
}

// attachMatra appends the dependent vowel sign following a consonant,
// if there is one.
func (s *scanner) attachMatra(next int) bool {
	key, ok := matchAt(s.text, next, matraKeys)
	if !ok {
		return false
	}
	s.emit(matras[key])
	s.pos = next + len(key)
	return true
}

// attachVowel handles a vowel spelling after a consonant that has no
// matra form. A literal "a" is the inherent vowel: written in ITRANS,
// invisible in script. Any other vowel is emitted in its independent
// form.
func (s *scanner) attachVowel(next int, implicitA *bool) bool {
	key, ok := matchAt(s.text, next, vowelKeys)
	if !ok {
		return false
	}
	if key == "a" {
		*implicitA = true
	} else {
		s.emit(vowels[key])
	}
	s.pos = next + len(key)
	return true
}

// bareConsonant decides between the silent inherent vowel and a
// conjunct halant for a consonant with no written vowel of its own.
func (s *scanner) bareConsonant(next int) {
	s.pos = next

	nextKey, nextIsConsonant := matchAt(s.text, next, consonantKeys)
	if !nextIsConsonant {
		// End of word: the consonant keeps its inherent vowel.
		return
	}
	if !hasExplicitVowel(s.text, next+len(nextKey)) {
		// Two vowel-less consonants chain into a conjunct.
		s.emit(string(halant))
		return
	}
	// The following consonant carries its own vowel. The current one
	// still joins it as a conjunct ("namaste" is नमस्ते), except after
	// a written inherent "a" when the continuation is one of a few
	// irregular spellings ("saktaa" is सकता, no halant). The
	// continuation list is a narrow approximation, not a phonological
	// rule; do not widen it without evidence.
	if s.prevImplicitA && hasIrregularContinuation(s.text, next) {
		return
	}
	s.emit(string(halant))
}

// Continuations after which a consonant keeps its silent inherent
// vowel instead of chaining into a conjunct.
var irregularContinuations = []string{"taa", "tA"}

func hasIrregularContinuation(text string, pos int) bool {
	for _, c := range irregularContinuations {
		if strings.HasPrefix(text[pos:], c) {
			return true
		}
	}
	return false
}

func hasExplicitVowel(text string, pos int) bool {
	if _, ok := matchAt(text, pos, matraKeys); ok {
		return true
	}
	_, ok := matchAt(text, pos, vowelKeys)
	return ok
}

// emitNasalAware emits glyph, substituting chandrabindu for anusvara
// when the preceding output is a long-aa or long-uu matra; syllables
// like "huuM" and "kahaaM" conventionally end in the chandrabindu.
func (s *scanner) emitNasalAware(key, glyph string) {
	if key == "M" && len(s.out) > 0 {
		switch s.out[len(s.out)-1] {
		case matraAA, matraUU:
			glyph = string(chandrabindu)
		}
	}
	s.emit(glyph)
}

func (s *scanner) emit(glyph string) {
	s.out = append(s.out, []rune(glyph)...)
}

// matchAt returns the longest table key whose literal text starts at
// pos, relying on keys being ordered longest first.
func matchAt(text string, pos int, keys []string) (string, bool) {
	for _, k := range keys {
		if strings.HasPrefix(text[pos:], k) {
			return k, true
		}
	}
	return "", false
}
