package exporter

import (
	"fmt"
	"io"
	"sort"

	"github.com/badele/namenorm/internal/types"
)

func DisplayStats(stats types.TokenStats, writer io.Writer) {
	type kindCount struct {
		Kind  types.TokenKind
		Count int
	}

	var kindCounts []kindCount

	fmt.Fprintf(writer, "=== Token Statistics ===\n\n")
	fmt.Fprintf(writer, "  Input size: %d bytes\n", stats.InputSize)
	fmt.Fprintf(writer, "  Total tokens: %d\n", stats.TotalTokens)
	fmt.Fprintf(writer, "  Particles: %d\n", stats.Particles)
	fmt.Fprintf(writer, "  Parts: %d\n", stats.Parts)

	if stats.TotalTokens == 0 {
		return
	}

	fmt.Fprintln(writer, "\n--- Tokens by Kind")

	for k, count := range stats.TokensByKind {
		kindCounts = append(kindCounts, kindCount{k, count})
	}
	sort.Slice(kindCounts, func(i, j int) bool {
		if kindCounts[i].Count != kindCounts[j].Count {
			return kindCounts[i].Count > kindCounts[j].Count
		}
		return kindCounts[i].Kind < kindCounts[j].Kind
	})

	for _, kc := range kindCounts {
		percentage := float64(kc.Count) / float64(stats.TotalTokens) * 100
		fmt.Fprintf(writer, "  %-10s:  %5d (%.1f%%)\n", kc.Kind.String(), kc.Count, percentage)
	}
}
