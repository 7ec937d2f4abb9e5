package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/quayside/fidgraph/internal/application/handlers"
	"github.com/quayside/fidgraph/internal/domain/entities"
	"github.com/quayside/fidgraph/internal/infrastructure/config"
)

type parseFlags struct {
	format string
	output string
}

func newParseCmd() *cobra.Command {
	var flags parseFlags

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a filing into an entity graph document",
		Long:  "Parses a delimiter-separated filing and writes the entity/relationship graph as JSON.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "auto", "Input format (tsv, csv, auto)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file (default: stdout)")

	return cmd
}

func runParse(cmd *cobra.Command, filePath string, flags parseFlags) error {
	ctx := cmd.Context()

	return withParseHandler(func(handler *handlers.ParseHandler) error {
		doc, err := handler.Handle(ctx, filePath, handlers.ParseOptions{Format: flags.format})
		if err != nil {
			return err
		}
		return writeDocument(doc, flags.output)
	})
}

func writeDocument(doc *entities.Document, output string) (err error) {
	var w io.Writer
	var f *os.File

	if output != "" {
		f, err = os.OpenFile(output, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return fmt.Errorf("creating file: %w", err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing file: %w", cerr)
			}
		}()
		w = f
	} else {
		w = os.Stdout
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}

	if output != "" {
		fmt.Printf("Wrote %d entities and %d relationships to %s\n",
			len(doc.Entities), len(doc.Relationships), output)
	}

	return nil
}

// withParseHandler loads config from the working directory and calls the
// provided function with a configured parse handler.
func withParseHandler(fn func(*handlers.ParseHandler) error) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	handler := handlers.NewParseHandler(cfg.Columns.Organisation, cfg.Columns.Contact)
	return fn(handler)
}
