package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quayside/fidgraph/internal/application/handlers"
	"github.com/quayside/fidgraph/internal/infrastructure/graphstore/sqlite"
)

type storeFlags struct {
	format string
	dbPath string
}

func newStoreCmd() *cobra.Command {
	var flags storeFlags

	cmd := &cobra.Command{
		Use:   "store <file>",
		Short: "Parse a filing and persist the graph to SQLite",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStore(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "auto", "Input format (tsv, csv, auto)")
	cmd.Flags().StringVar(&flags.dbPath, "db", "fidgraph.db", "SQLite database path")

	return cmd
}

func runStore(cmd *cobra.Command, filePath string, flags storeFlags) error {
	ctx := cmd.Context()

	return withParseHandler(func(parseHandler *handlers.ParseHandler) error {
		repo, err := sqlite.NewRepository(flags.dbPath)
		if err != nil {
			return fmt.Errorf("creating sqlite repository: %w", err)
		}
		defer repo.Close()

		handler := handlers.NewStoreHandler(parseHandler, repo)
		result, err := handler.Handle(ctx, filePath, handlers.ParseOptions{Format: flags.format})
		if err != nil {
			return err
		}

		fmt.Printf("Stored document %s: %d entities, %d relationships in %s\n",
			result.DocumentID, result.Entities, result.Relationships, flags.dbPath)
		return nil
	})
}
