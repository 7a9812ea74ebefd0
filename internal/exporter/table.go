package exporter

import (
	"fmt"
	"io"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/badele/namenorm/internal/types"
)

const textWidth = 36

func ExportTokensToTable(tokens []types.Token, writer io.Writer) error {
	rule := func(left, mid, right string) string {
		return left + strings.Repeat("─", 9) + mid + strings.Repeat("─", 8) + mid +
			strings.Repeat("─", 8) + mid + strings.Repeat("─", textWidth+2) + right
	}

	if _, err := fmt.Fprintln(writer, rule("┌", "┬", "┐")); err != nil {
		return err
	}
	fmt.Fprintf(writer, "│ %-7s │ %-6s │ %-6s │ %s │\n", "Token", "Pos", "Kind", pad("Text", textWidth))
	fmt.Fprintln(writer, rule("├", "┼", "┤"))

	for i, token := range tokens {
		fmt.Fprintf(writer, "│ %-7d │ %-6d │ %-6s │ %s │\n",
			i+1, token.Pos, token.Kind, pad(truncate(token.Text, textWidth), textWidth))
	}

	_, err := fmt.Fprintln(writer, rule("└", "┴", "┘"))
	return err
}

// pad fills s with spaces up to width terminal cells. fmt pads by runes,
// which misaligns combining marks and wide characters.
func pad(s string, width int) string {
	if w := uniseg.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

func truncate(s string, maxWidth int) string {
	s = fmt.Sprintf("%q", s)

	// Remove quote added by %q
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}

	if uniseg.StringWidth(s) <= maxWidth {
		return s
	}

	var sb strings.Builder
	width := 0
	state := -1
	rest := s
	for len(rest) > 0 {
		var cluster string
		var w int
		cluster, rest, w, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if width+w > maxWidth-3 {
			break
		}
		sb.WriteString(cluster)
		width += w
	}
	return sb.String() + "..."
}
