package exporter

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/badele/namenorm/internal/types"
)

type TokenizerJSONOutput struct {
	Input  string           `json:"input,omitempty"`
	Tokens []types.Token    `json:"tokens"`
	Stats  types.TokenStats `json:"stats"`
}

func TokensJSON(input string, tok types.TokenizerWithStats, writer io.Writer) error {
	output := TokenizerJSONOutput{
		Input:  input,
		Tokens: tok.Tokenize(),
	}
	output.Stats = tok.GetStats()

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("JSON serialization error: %w", err)
	}

	_, err = fmt.Fprintln(writer, string(data))
	return err
}
