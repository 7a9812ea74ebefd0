package chars

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/badele/namenorm/internal/words"
)

func spaced(s string) []string {
	return slices.Collect(words.SpaceJoin(words.Split(s)))
}

func TestStripDiacritics(t *testing.T) {
	input := "Eyyyy cómo andamos mi Pepe perro ajá"
	expected := []rune{
		'E', 'y', 'y', 'y', 'y', ' ', 'c', 'o', 'm', 'o', ' ', 'a', 'n', 'd', 'a', 'm', 'o',
		's', ' ', 'm', 'i', ' ', 'P', 'e', 'p', 'e', ' ', 'p', 'e', 'r', 'r', 'o', ' ', 'a',
		'j', 'a',
	}

	got := slices.Collect(StripDiacritics(slices.Values(spaced(input))))
	assert.Equal(t, expected, got)
}

func TestBaseRune(t *testing.T) {
	tests := []struct {
		input    rune
		expected rune
	}{
		{'é', 'e'},
		{'Á', 'A'},
		{'ñ', 'n'},
		{'Ü', 'U'},
		{'ç', 'c'},
		{'a', 'a'},
		{'-', '-'},
		{'ø', 'ø'},
		{'́', '́'},
	}

	for _, tt := range tests {
		t.Run(string(tt.input), func(t *testing.T) {
			assert.Equal(t, tt.expected, BaseRune(tt.input))
		})
	}
}

func TestStripDiacriticsRunesStopsEarly(t *testing.T) {
	var got []rune
	for r := range StripDiacriticsRunes(slices.Values([]rune("áéíóú"))) {
		got = append(got, r)
		if len(got) == 3 {
			break
		}
	}
	assert.Equal(t, []rune("aei"), got)
}

func TestToLower(t *testing.T) {
	name := "CARLOS FERNANDO MARTÍNEZ GONZÁLEZ"
	assert.Equal(t, "carlos fernando martínez gonzález", Collect(ToLower(Runes(words.SanitizeSpacesSeq(name)))))
}

func TestToUpperExpands(t *testing.T) {
	assert.Equal(t, "STRASSE", Collect(ToUpper(slices.Values([]rune("straße")))))
	assert.Equal(t, "PEÑA", Collect(ToUpper(slices.Values([]rune("peña")))))
}

func TestCapitalizeFirst(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Upper", "MIKE THOMPSON garcia perez", "Mike Thompson Garcia Perez"},
		{"Particles are capitalized too", "Jennifer Maria Lopez de la Torre", "Jennifer Maria Lopez De La Torre"},
		{"Accents", "CARLOS \t\t\n \rFERNANDO   \n\n\rMARTÍNEZ             GONZÁLEZ\n\n\r", "Carlos Fernando Martínez González"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ""
			for w := range words.SanitizeSpacesSeq(tt.input) {
				got += Collect(CapitalizeFirst(Word(w)))
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestCapitalizeFirstEmpty(t *testing.T) {
	assert.Empty(t, slices.Collect(CapitalizeFirst(slices.Values([]rune(nil)))))
}

func TestCapitalizeFirstExpandsFirstOnly(t *testing.T) {
	assert.Equal(t, "SSa", Collect(CapitalizeFirst(slices.Values([]rune("ßA")))))
}

func TestReplace(t *testing.T) {
	dashes := []rune{'‐', '–', '—'}
	got := Collect(Replace(slices.Values([]rune("Lopez–Garcia—Perez")), dashes, '-'))
	assert.Equal(t, "Lopez-Garcia-Perez", got)
}

func TestFirstN(t *testing.T) {
	tests := []struct {
		name     string
		words    []string
		n        int
		expected []rune
	}{
		{
			name:     "Two per word",
			words:    slices.Collect(words.Split("Hola me llamo daniel")),
			n:        2,
			expected: []rune{'h', 'o', 'm', 'e', 'l', 'l', 'd', 'a'},
		},
		{
			name:     "Two per word with spaces",
			words:    spaced("Hola me llamo Daniel"),
			n:        2,
			expected: []rune{'h', 'o', ' ', 'm', 'e', ' ', 'l', 'l', ' ', 'd', 'a'},
		},
		{
			name:     "Initials keep accents",
			words:    []string{"Álvaro", "Íñigo"},
			n:        1,
			expected: []rune{'á', 'í'},
		},
		{
			name:     "Short words",
			words:    []string{"y", "de"},
			n:        3,
			expected: []rune{'y', 'd', 'e'},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slices.Collect(FirstN(slices.Values(tt.words), tt.n))
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFirstNKeepsOneRunePerChar(t *testing.T) {
	// U+0130 lower-cases to "i" followed by a combining dot.
	got := slices.Collect(FirstN(slices.Values([]string{"İstanbul"}), 1))
	assert.Equal(t, []rune{'i'}, got)
}
