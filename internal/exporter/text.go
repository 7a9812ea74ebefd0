package exporter

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/badele/namenorm/internal/types"
)

var particleColor = color.New(color.FgCyan, color.Italic)

// ExportText writes tokens on one line separated by single spaces. With
// highlight, particles are colored.
func ExportText(tokens []types.Token, writer io.Writer, highlight bool) error {
	if !highlight {
		_, err := fmt.Fprintln(writer, types.JoinTokens(tokens))
		return err
	}

	var sb strings.Builder
	for i, t := range tokens {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if t.Kind.IsParticle() {
			sb.WriteString(particleColor.Sprint(t.Text))
		} else {
			sb.WriteString(t.Text)
		}
	}

	_, err := fmt.Fprintln(writer, sb.String())
	return err
}
