package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"bookshelf/internal/catalog"
	"bookshelf/internal/domain"
	"bookshelf/internal/request"
	"bookshelf/internal/search"
	"bookshelf/internal/ui/views"
)

// errSearchFailed marks a search that ended in the Error state
var errSearchFailed = errors.New("search failed")

var searchCmd = &cobra.Command{
	Use:   "search <query...>",
	Short: "Search the catalog by title or author",
	Long: `Search runs one query through the same request pipeline as the UI,
including the simulated latency, and prints the ranked matches.

Words are joined with single spaces. Matching ignores case and looks at
titles and authors. Results are ordered by rating, highest first.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		switch format {
		case "table", "json", "yaml":
		default:
			return fmt.Errorf("unknown format %q (want table, json or yaml)", format)
		}

		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		books := catalog.Default()
		machine := request.NewMachine(search.NewEngine(books), books.All(), request.Options{
			Delay:        e.cfg.Search.Delay,
			DiscardStale: e.cfg.Search.DiscardStale,
			Bus:          e.bus,
			Logger:       e.logger,
		})
		defer machine.Close()

		machine.Submit(strings.Join(args, " "))
		machine.Wait()

		st := machine.Current()
		if st.Phase == request.PhaseError {
			return fmt.Errorf("%w: %s", errSearchFailed, st.Message)
		}
		return writeBooks(cmd.OutOrStdout(), format, st.Results)
	},
}

func init() {
	searchCmd.Flags().StringP("format", "f", "table", "output format: table, json or yaml")

	rootCmd.AddCommand(searchCmd)
}

// bookRecord is the serialized form of a result row
type bookRecord struct {
	Rank   int      `json:"rank" yaml:"rank"`
	Title  string   `json:"title" yaml:"title"`
	Author string   `json:"author" yaml:"author"`
	Rating *float64 `json:"rating" yaml:"rating"`
}

func writeBooks(w io.Writer, format string, books []domain.Book) error {
	records := make([]bookRecord, len(books))
	for i, b := range books {
		records[i] = bookRecord{Rank: i + 1, Title: b.Title, Author: b.Author, Rating: b.Rating}
	}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return err
		}
		return enc.Close()
	default:
		table := views.NewRenderer().Books().RenderTable(books, 0, len(books))
		_, err := fmt.Fprintln(w, table)
		return err
	}
}
