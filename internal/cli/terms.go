package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fr0stylo/contentconnector/internal/app/ports"
)

var termTaxonomies = map[string]ports.Taxonomy{
	"category":   ports.TaxonomyCategory,
	"categories": ports.TaxonomyCategory,
	"tag":        ports.TaxonomyTag,
	"tags":       ports.TaxonomyTag,
}

func newTermsCmd(current func() (*App, error)) *cobra.Command {
	termsCmd := &cobra.Command{
		Use:   "terms",
		Short: "Inspect categories and tags created by ingestion",
	}
	termsCmd.AddCommand(&cobra.Command{
		Use:       "list <category|tag>",
		Short:     "List terms of one taxonomy ordered by slug",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"category", "tag"},
		RunE: func(cmd *cobra.Command, args []string) error {
			taxonomy, ok := termTaxonomies[args[0]]
			if !ok {
				return fmt.Errorf("unknown taxonomy %q (want category or tag)", args[0])
			}
			app, err := current()
			if err != nil {
				return err
			}
			terms, err := app.Posts.ListTerms(cmd.Context(), taxonomy)
			if err != nil {
				return err
			}
			if len(terms) == 0 {
				printf(cmd, "No %s terms.\n", taxonomy)
				return nil
			}
			for _, term := range terms {
				printf(cmd, "%d\t%s\t%s\n", term.ID, term.Slug, term.Name)
			}
			return nil
		},
	})
	return termsCmd
}
