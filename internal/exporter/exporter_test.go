package exporter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/rivo/uniseg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/badele/namenorm/internal/importer/particles"
	"github.com/badele/namenorm/internal/types"
)

func TestExportTokensToTableAligned(t *testing.T) {
	tokens := particles.NewTokenizer("José Núñez de la Peña").Tokenize()

	var buf bytes.Buffer
	require.NoError(t, ExportTokensToTable(tokens, &buf))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, len(tokens)+4)

	width := uniseg.StringWidth(lines[0])
	for _, line := range lines {
		assert.Equal(t, width, uniseg.StringWidth(line), "line %q", line)
	}
	assert.Contains(t, buf.String(), "Núñez")
	assert.Contains(t, buf.String(), "│ 3       │ 14     │ De     │")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "Cruz", truncate("Cruz", 10))
	assert.Equal(t, `a\tb`, truncate("a\tb", 10))

	long := truncate(strings.Repeat("ñ", 50), 10)
	assert.Equal(t, strings.Repeat("ñ", 7)+"...", long)
}

func TestTokensJSON(t *testing.T) {
	input := "Ana de Cruz"
	var buf bytes.Buffer
	require.NoError(t, TokensJSON(input, particles.NewTokenizer(input), &buf))

	var out TokenizerJSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	assert.Equal(t, input, out.Input)
	require.Len(t, out.Tokens, 3)
	assert.Equal(t, types.TokenDe, out.Tokens[1].Kind)
	assert.Equal(t, 3, out.Stats.TotalTokens)
	assert.Equal(t, 1, out.Stats.TokensByKind[types.TokenDe])
	assert.Contains(t, buf.String(), `"De": 1`)
}

func TestExportText(t *testing.T) {
	tokens := particles.NewTokenizer("  Ana\tde   Cruz ").Tokenize()

	var plain bytes.Buffer
	require.NoError(t, ExportText(tokens, &plain, false))
	assert.Equal(t, "Ana de Cruz\n", plain.String())

	noColor := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = noColor }()

	var colored bytes.Buffer
	require.NoError(t, ExportText(tokens, &colored, true))
	assert.Contains(t, colored.String(), "\x1b[")
	assert.Contains(t, colored.String(), "Ana ")
	assert.NotContains(t, colored.String(), "\x1b[36;3mAna")
}

func TestDisplayStats(t *testing.T) {
	tok := particles.NewTokenizer("Maria del Carmen y Sol")
	tok.Tokenize()

	var buf bytes.Buffer
	DisplayStats(tok.GetStats(), &buf)

	out := buf.String()
	assert.Contains(t, out, "Total tokens: 5")
	assert.Contains(t, out, "Particles: 2")
	assert.Contains(t, out, "Part      :      3 (60.0%)")
}
