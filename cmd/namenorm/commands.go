package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/badele/namenorm/internal/compare"
	"github.com/badele/namenorm/internal/config"
	"github.com/badele/namenorm/internal/exporter"
	"github.com/badele/namenorm/internal/importer/particles"
	"github.com/badele/namenorm/internal/processor"
	"github.com/badele/namenorm/internal/words"
	"github.com/badele/namenorm/pkg/namenorm"
)

var errNoMatch = errors.New("names do not match")

// App is the state shared by every command.
type App struct {
	Config   *config.Config
	Encoding string
	Stdin    io.Reader
	Stdout   io.Writer
	logger   *slog.Logger
}

// names returns args, or the non-blank lines of stdin when args is empty.
func (a *App) names(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	if f, ok := a.Stdin.(*os.File); ok {
		stat, err := f.Stat()
		if err != nil {
			return nil, fmt.Errorf("checking stdin: %w", err)
		}
		if (stat.Mode() & os.ModeCharDevice) != 0 {
			return nil, errors.New("no name given and stdin is not a pipe")
		}
	}

	data, err := io.ReadAll(a.Stdin)
	if err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}

	data, err = namenorm.ConvertToUTF8(data, a.Encoding)
	if err != nil {
		return nil, err
	}

	var names []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := scanner.Text()
		if words.SanitizeSpaces(line) == "" {
			continue
		}
		names = append(names, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}

	a.logger.Debug("read names from stdin", "count", len(names), "bytes", len(data), "encoding", a.Encoding)
	return names, nil
}

/////////////////////////////////////////////////////////////////////////////
// NORMALIZE
/////////////////////////////////////////////////////////////////////////////

type NormalizeCmd struct {
	Case  string   `help:"Override the configured case mode (lower, upper, name, keep)."`
	Names []string `arg:"" optional:"" help:"Names to normalize."`
}

func (c *NormalizeCmd) Run(app *App) error {
	opts, err := app.Config.Normalize.Options()
	if err != nil {
		return err
	}
	if c.Case != "" {
		opts.Case = processor.CaseMode(c.Case)
	}

	pipeline, err := processor.NewPipeline(opts)
	if err != nil {
		return err
	}
	app.logger.Debug("pipeline ready",
		"case", pipeline.Options().Case,
		"strip_diacritics", opts.StripDiacritics,
		"extra_separators", string(pipeline.Options().ExtraSeparators))

	names, err := app.names(c.Names)
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Fprintln(app.Stdout, pipeline.String(name))
	}
	return nil
}

/////////////////////////////////////////////////////////////////////////////
// SPACES
/////////////////////////////////////////////////////////////////////////////

type SpacesCmd struct {
	Names []string `arg:"" optional:"" help:"Names to clean."`
}

func (c *SpacesCmd) Run(app *App) error {
	names, err := app.names(c.Names)
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Fprintln(app.Stdout, words.SanitizeSpaces(name))
	}
	return nil
}

/////////////////////////////////////////////////////////////////////////////
// TOKENS
/////////////////////////////////////////////////////////////////////////////

type TokensCmd struct {
	Table     bool     `short:"t" xor:"format" help:"Display tokens in table format."`
	JSON      bool     `short:"j" xor:"format" help:"Display tokens in JSON format."`
	Stats     bool     `short:"s" xor:"format" help:"Display token statistics."`
	Highlight bool     `help:"Highlight particles in text output."`
	Names     []string `arg:"" optional:"" help:"Names to tokenize."`
}

func (c *TokensCmd) Run(app *App) error {
	names, err := app.names(c.Names)
	if err != nil {
		return err
	}

	for _, name := range names {
		tok := particles.NewTokenizer(name)

		switch {
		case c.JSON:
			err = exporter.TokensJSON(name, tok, app.Stdout)
		case c.Table:
			err = exporter.ExportTokensToTable(tok.Tokenize(), app.Stdout)
		case c.Stats:
			tok.Tokenize()
			exporter.DisplayStats(tok.GetStats(), app.Stdout)
		default:
			err = exporter.ExportText(tok.Tokenize(), app.Stdout, c.Highlight)
		}
		if err != nil {
			return fmt.Errorf("exporting tokens of %q: %w", name, err)
		}

		app.logger.Debug("tokenized", "name", name, "tokens", len(tok.Tokens))
	}
	return nil
}

/////////////////////////////////////////////////////////////////////////////
// COMPARE
/////////////////////////////////////////////////////////////////////////////

type CompareCmd struct {
	A string `arg:"" help:"First name."`
	B string `arg:"" help:"Second name."`
}

func (c *CompareCmd) Run(app *App) error {
	a, b := compare.Initials(c.A), compare.Initials(c.B)

	if !compare.FirstLetter(c.A, c.B) {
		fmt.Fprintf(app.Stdout, "no match (%s / %s)\n", a, b)
		return errNoMatch
	}

	fmt.Fprintf(app.Stdout, "match (%s)\n", a)
	return nil
}
