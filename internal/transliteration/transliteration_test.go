package transliteration

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateWords(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"namaste", "नमस्ते"},
		{"namaskaar", "नमस्कार"},
		{"bharat", "भारत"},
		{"aaiye", "आइये"},
		{"main", "मैं"},
		{"tum", "तुम"},
		{"ham", "हम"},
		{"raam", "राम"},
		{"shri", "श्री"},
		{"shrii", "श्री"},
		{"devanaagarii", "देवनागरी"},
		{"sanskrit", "संस्कृत"},
		{"hindi", "हिंदी"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Translate(tt.input), "Translate(%q)", tt.input)
	}
}

func TestTranslateSentences(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"maiM hindii meM Taaip kar saktaa huuM |", "मैं हिन्दी में टाइप कर सकता हूँ।"},
		{"tum kahaaM jaa rahe ho?", "तुम कहाँ जा रहे हो?"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Translate(tt.input), "Translate(%q)", tt.input)
	}
}

func TestTranslateEmpty(t *testing.T) {
	assert.Equal(t, "", Translate(""))
}

func TestTranslateTotality(t *testing.T) {
	inputs := []string{
		"",
		" ",
		"1234567890",
		"!@#$%^&*()",
		"zzz",
		"Hello, World!",
		"already देवनागरी",
		"mixed raam 42 zebra",
		strings.Repeat("kSh", 200),
		"~", "^", "R^", "L^", "..", "...",
	}
	for _, in := range inputs {
		require.NotPanics(t, func() { Translate(in) }, "Translate(%q)", in)
	}
}

func TestTranslatePassThrough(t *testing.T) {
	// None of these characters key any table; they must survive intact.
	assert.Equal(t, "1234?!", Translate("1234?!"))
	assert.Equal(t, "zzz", Translate("zzz"))
	// Recognized and unrecognized spans mix freely.
	assert.Equal(t, "राम42", Translate("raam42"))
}

func TestTranslateLongestMatchWins(t *testing.T) {
	// "aa" must be read as one long vowel, not two short ones.
	assert.Equal(t, "आ", Translate("aa"))
	assert.NotEqual(t, "अअ", Translate("aa"))
	// "chh" over "ch": one aspirated consonant, not च + stray h.
	assert.Equal(t, "छ", Translate("chh"))
	// Double danda over single.
	assert.Equal(t, "राम॥", Translate("raam.."))
}

func TestTranslateConjuncts(t *testing.T) {
	// Vowel-less consonants chain with a halant.
	assert.Equal(t, "श्री", Translate("shrii"))
	// The n in hindii joins d even though d carries its own vowel.
	assert.Equal(t, "हिन्दी", Translate("hindii"))
	// After a written inherent a, the irregular taa continuation keeps
	// the consonant's silent vowel instead.
	assert.Equal(t, "सकता", Translate("saktaa"))
	assert.Equal(t, "सकता", Translate("saktA"))
	// ...but only for the listed continuations.
	assert.Equal(t, "नमस्कार", Translate("namaskaar"))
}

func TestTranslateWordFinalN(t *testing.T) {
	assert.Equal(t, "मैं", Translate("main"))
	assert.Equal(t, "नमं", Translate("naman"))
	// Mid-word n forms a conjunct instead.
	assert.Equal(t, "मन्दिर", Translate("mandir"))
}

func TestTranslateNasalization(t *testing.T) {
	// Anusvara after most matras.
	assert.Equal(t, "में", Translate("meM"))
	// Chandrabindu after long-aa and long-uu matras.
	assert.Equal(t, "हूँ", Translate("huuM"))
	assert.Equal(t, "कहाँ", Translate("kahaaM"))
	// Independent anusvara elsewhere.
	assert.Equal(t, "संत", Translate("saMt"))
}

func TestTranslateDandaAttachesToWord(t *testing.T) {
	assert.Equal(t, "राम।", Translate("raam |"))
	assert.Equal(t, "हूँ।", Translate("huuM |"))
}

func TestTranslateWordBoundaryIsolation(t *testing.T) {
	// The conjunct memory resets at spaces: each word translates the
	// same alone as in a sentence.
	words := []string{"namaste", "saktaa", "shrii", "hindii", "raam"}
	for _, w := range words {
		alone := Translate(w)
		inSentence := Translate("tum " + w)
		assert.Equal(t, Translate("tum")+" "+alone, inSentence, "word %q", w)
	}
}

func TestTranslateOverrides(t *testing.T) {
	// Whole-word, case-insensitive.
	assert.Equal(t, "श्री", Translate("Shri"))
	assert.Equal(t, "भारत", Translate("BHARAT"))
	// Prefix matches don't trigger an override; shrimaan scans as-is.
	assert.Equal(t, "श्रिमां", Translate("shrimaan"))
	// Runs of spaces collapse during the rejoin.
	assert.Equal(t, "तुम हो", Translate("tum  ho"))
}

func TestTranslateConcurrent(t *testing.T) {
	inputs := []string{"namaste", "saktaa huuM", "tum kahaaM jaa rahe ho?", "bharat"}
	want := make([]string, len(inputs))
	for i, in := range inputs {
		want[i] = Translate(in)
	}

	var wg sync.WaitGroup
	errs := make(chan error, 100)
	for i := range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j, in := range inputs {
				if got := Translate(in); got != want[j] {
					errs <- fmt.Errorf("goroutine %d: Translate(%q) = %q, want %q", i, in, got, want[j])
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}
