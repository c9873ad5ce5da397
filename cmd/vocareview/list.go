package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/chen-yiru/Vocabulary-review/internal/models"
	"github.com/chen-yiru/Vocabulary-review/internal/query"
	"github.com/spf13/cobra"
)

type listFlags struct {
	search     string
	letter     string
	tags       []string
	hard       string
	famMin     int
	famMax     int
	dates      map[string]*string
	page       int
	size       int
	printQuery bool
}

var dateFlags = []string{
	"created-after", "created-before",
	"reviewed-after", "reviewed-before",
	"due-after", "due-before",
}

func newListCmd(a *app) *cobra.Command {
	f := listFlags{dates: make(map[string]*string, len(dateFlags))}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List vocabulary matching the given filters",
		RunE: func(cmd *cobra.Command, _ []string) error {
			services, closeFn, err := a.services(false)
			if err != nil {
				return err
			}
			defer closeFn()

			ctx, cancel := context.WithTimeout(cmd.Context(), a.cfg.App.Timeout)
			defer cancel()

			spec, err := f.filterSpec(cmd)
			if err != nil {
				return err
			}

			if len(f.tags) > 0 {
				ids, skipped, err := services.FilterIDs(ctx, localUserID, f.tags)
				if err != nil {
					return err
				}
				for _, name := range skipped {
					fmt.Fprintf(cmd.ErrOrStderr(), "ignoring unknown tag %q\n", name)
				}
				spec.TagIDs = ids
			}

			size := f.size
			if size <= 0 {
				size = a.cfg.List.PageSize
			}
			if size <= 0 {
				size = models.DefaultPageSize
			}

			q := query.Compose(spec, &models.PageSpec{Page: f.page, Size: size})
			if f.printQuery {
				fmt.Fprintln(cmd.OutOrStdout(), q.Encode())
				return nil
			}

			text, _, err := services.Items(ctx, q)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.search, "search", "", "substring of word or meaning")
	flags.StringVar(&f.letter, "letter", "", "first letter of the word")
	flags.StringSliceVar(&f.tags, "tag", nil, "tag names (repeatable)")
	flags.StringVar(&f.hard, "hard", "", "true or false; empty means any")
	flags.IntVar(&f.famMin, "fam-min", 0, "minimum familiarity (1-5)")
	flags.IntVar(&f.famMax, "fam-max", 0, "maximum familiarity (1-5)")
	for _, name := range dateFlags {
		f.dates[name] = flags.String(name, "", "date bound as YYYY-MM-DD")
	}
	flags.IntVar(&f.page, "page", 1, "page number")
	flags.IntVar(&f.size, "size", 0, "page size (defaults to list.page_size)")
	flags.BoolVar(&f.printQuery, "print-query", false, "print the composed query instead of fetching")

	return cmd
}

func (f listFlags) filterSpec(cmd *cobra.Command) (models.FilterSpec, error) {
	spec := models.FilterSpec{
		Search: f.search,
		Letter: f.letter,
	}

	if f.hard != "" {
		hard, err := strconv.ParseBool(f.hard)
		if err != nil {
			return models.FilterSpec{}, fmt.Errorf("--hard: %w", err)
		}
		spec.IsHard = &hard
	}

	if cmd.Flags().Changed("fam-min") {
		spec.FamiliarityMin = &f.famMin
	}
	if cmd.Flags().Changed("fam-max") {
		spec.FamiliarityMax = &f.famMax
	}

	targets := map[string]**time.Time{
		"created-after":   &spec.CreatedAfter,
		"created-before":  &spec.CreatedBefore,
		"reviewed-after":  &spec.LastReviewAfter,
		"reviewed-before": &spec.LastReviewBefore,
		"due-after":       &spec.DueAfter,
		"due-before":      &spec.DueBefore,
	}
	for _, name := range dateFlags {
		value := *f.dates[name]
		if value == "" {
			continue
		}
		d, err := time.Parse(time.DateOnly, value)
		if err != nil {
			return models.FilterSpec{}, fmt.Errorf("--%s: expected YYYY-MM-DD", name)
		}
		*targets[name] = &d
	}

	return spec, nil
}
