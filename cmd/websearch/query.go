package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"websearch/internal/bing"
	"websearch/internal/domain"
	"websearch/internal/ui/search"
	"websearch/internal/ui/views"
)

var errEmptyTerm = errors.New(search.ValidationMessage)

func newQueryCmd(v *viper.Viper) *cobra.Command {
	queryCmd := &cobra.Command{
		Use:   "query <term...>",
		Short: "Print one page of results and exit",
		Long: `query fetches a single page of web results for the given term and prints
them to stdout, either rendered or as JSON.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			page, _ := cmd.Flags().GetInt("page")
			asJSON, _ := cmd.Flags().GetBool("json")

			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runQuery(ctx, newClient(cfg), strings.Join(args, " "), page, asJSON, cfg.UISettings.ShowDisplayURL, cmd.OutOrStdout())
		},
	}

	queryCmd.Flags().Int("page", 1, "page number, starting at 1")
	queryCmd.Flags().Bool("json", false, "output results as JSON")

	return queryCmd
}

// queryOutput is the JSON shape printed by --json
type queryOutput struct {
	Term           string                    `json:"term"`
	Page           int                       `json:"page"`
	LastPage       int                       `json:"lastPage"`
	TotalEstimated int                       `json:"totalEstimated"`
	Items          []domain.SearchResultItem `json:"items"`
}

func runQuery(ctx context.Context, client bing.Searcher, term string, page int, asJSON, showDisplayURL bool, out io.Writer) error {
	term = strings.TrimSpace(term)
	if term == "" {
		return errEmptyTerm
	}

	q := domain.NewSearchQuery(term, page)
	set, err := client.Search(ctx, q)
	if err != nil {
		log.Warn().Err(err).Str("term", q.Term).Int("page", q.Page).Msg("search failed")
		if errors.Is(err, bing.ErrAPI) {
			return fmt.Errorf("%s: %w", search.APIErrorMessage, err)
		}
		return err
	}

	if asJSON {
		items := set.Items
		if items == nil {
			items = []domain.SearchResultItem{}
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(queryOutput{
			Term:           q.Term,
			Page:           q.Page,
			LastPage:       set.LastPage(q.PerPage),
			TotalEstimated: set.TotalEstimated,
			Items:          items,
		})
	}

	styles := views.NewStyles()
	renderer := views.NewResultRenderer(styles, showDisplayURL)

	if len(set.Items) == 0 {
		_, err := fmt.Fprintf(out, "No results for: %s\n", q.Term)
		return err
	}

	fmt.Fprintf(out, "Results for: %s\n\n", q.Term)
	for _, item := range set.Items {
		if block := renderer.RenderItem(item, false, 0); block != "" {
			fmt.Fprintln(out, block)
			fmt.Fprintln(out)
		}
	}

	pager := views.Paginator{CurrentPage: q.Page, TotalItems: set.TotalEstimated, PerPage: q.PerPage}
	_, err = fmt.Fprintln(out, pager.Render(styles))
	return err
}
