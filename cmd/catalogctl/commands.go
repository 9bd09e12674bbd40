package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/noah-isme/tinta-academy-api/internal/models"
	"github.com/noah-isme/tinta-academy-api/internal/repository"
	"github.com/noah-isme/tinta-academy-api/internal/service"
	"github.com/noah-isme/tinta-academy-api/pkg/cache"
	"github.com/noah-isme/tinta-academy-api/pkg/config"
	"github.com/noah-isme/tinta-academy-api/pkg/export"
	"github.com/noah-isme/tinta-academy-api/pkg/fixtures"
)

func newValidateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check a fixture bundle for broken references and unknown enum values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bundle, err := fixtures.Load(opts.fixturesPath)
			if err != nil {
				return err
			}
			if err := fixtures.Validate(bundle); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "OK: %d catalog courses, %d educators, %d students\n",
				len(bundle.Catalog.Upcoming)+len(bundle.Catalog.Past), len(bundle.Educators), len(bundle.Students))
			return nil
		},
	}
}

func newCatalogCmd(opts *rootOptions) *cobra.Command {
	var (
		modality string
		kind     string
		tags     []string
	)
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List catalog courses matching the landing page filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			repo, err := opts.repository()
			if err != nil {
				return err
			}
			filters := models.CourseFilters{
				Modality: models.Modality(strings.ToLower(modality)),
				Type:     models.CourseType(strings.ToLower(kind)),
				TagIDs:   tags,
			}
			view, _, err := service.NewCatalogService(repo, nil, opts.logger()).Catalog(contextOf(cmd), filters)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "SECTION\tID\tTITLE\tTYPE\tMODALITY")
			for _, c := range view.Upcoming {
				fmt.Fprintf(w, "upcoming\t%s\t%s\t%s\t%s\n", c.ID, c.Title, c.TypeLabel, c.Modality)
			}
			for _, c := range view.Past {
				fmt.Fprintf(w, "past\t%s\t%s\t%s\t%s\n", c.ID, c.Title, c.TypeLabel, c.Modality)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d active filter(s)\n", view.ActiveFilterCount)
			return nil
		},
	}
	cmd.Flags().StringVar(&modality, "modality", "", "presencial or online")
	cmd.Flags().StringVar(&kind, "type", "", "wset, taller, cata or curso")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Tag id; repeat or comma separate to require several")
	return cmd
}

func newOrdersCmd(opts *rootOptions) *cobra.Command {
	var rate float64
	cmd := &cobra.Command{
		Use:   "orders STUDENT_ID",
		Short: "Print a student's order history and total paid in USD",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := opts.repository()
			if err != nil {
				return err
			}
			svc := service.NewLearnerService(service.LearnerServiceParams{
				Repo:   repo,
				Logger: opts.logger(),
				Config: service.LearnerServiceConfig{UYUPerUSD: rate},
			})
			history, _, err := svc.Orders(contextOf(cmd), args[0])
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ORDER\tDATE\tCOURSE\tAMOUNT\tPAYMENT\tSTATUS")
			for _, o := range history.Orders {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					o.OrderNumber, o.CreatedAt.Format("2006-01-02"), o.CourseTitle, o.AmountLabel, o.PaymentMethodLabel, o.StatusLabel)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Total pagado: %s\n", history.Summary.Label)
			return nil
		},
	}
	cmd.Flags().Float64Var(&rate, "uyu-per-usd", service.DefaultUYUPerUSD, "UYU to USD conversion rate")
	return cmd
}

type exportOptions struct {
	format    string
	out       string
	delimiter string
}

func (o *exportOptions) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.format, "format", string(export.FormatCSV), "csv or pdf")
	cmd.Flags().StringVarP(&o.out, "out", "o", "", "Output file (default: the suggested file name)")
	cmd.Flags().StringVar(&o.delimiter, "delimiter", "comma", "CSV separator: comma, semicolon, tab or a single character")
}

// service resolves the format and builds an export service for the chosen delimiter.
func (o *exportOptions) service(opts *rootOptions) (export.Format, *service.ExportService, error) {
	format, err := export.ParseFormat(o.format)
	if err != nil {
		return "", nil, err
	}
	delimiter, err := export.ParseDelimiter(o.delimiter)
	if err != nil {
		return "", nil, err
	}
	return format, service.NewExportService(export.NewExporter(export.WithDelimiter(delimiter)), nil, opts.logger()), nil
}

func (o *exportOptions) write(cmd *cobra.Command, file *service.ExportFile) error {
	path := o.out
	if path == "" {
		path = file.Filename
	}
	if path == "-" {
		_, err := cmd.OutOrStdout().Write(file.Body)
		return err
	}
	if err := os.WriteFile(path, file.Body, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s (%d bytes)\n", path, len(file.Body))
	return nil
}

func newExportRosterCmd(opts *rootOptions) *cobra.Command {
	var (
		out   exportOptions
		query service.RosterQuery
	)
	cmd := &cobra.Command{
		Use:   "export-roster EDUCATOR_ID COURSE_ID",
		Short: "Export a course roster with the given search and sort",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, exports, err := out.service(opts)
			if err != nil {
				return err
			}
			repo, err := opts.repository()
			if err != nil {
				return err
			}
			svc := service.NewEducatorService(service.EducatorServiceParams{Repo: repo, Exports: exports, Logger: opts.logger()})
			file, err := svc.ExportRoster(contextOf(cmd), args[0], args[1], query, format)
			if err != nil {
				return err
			}
			return out.write(cmd, file)
		},
	}
	out.bind(cmd)
	cmd.Flags().StringVar(&query.Search, "search", "", "Match name or email")
	cmd.Flags().StringVar(&query.Sort, "sort", "", "name, progress, enrolledAt or lastAccessAt")
	cmd.Flags().StringVar(&query.Order, "order", "", "asc or desc")
	return cmd
}

func newExportOrdersCmd(opts *rootOptions) *cobra.Command {
	var (
		out  exportOptions
		rate float64
	)
	cmd := &cobra.Command{
		Use:   "export-orders STUDENT_ID",
		Short: "Export a student's order history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, exports, err := out.service(opts)
			if err != nil {
				return err
			}
			repo, err := opts.repository()
			if err != nil {
				return err
			}
			svc := service.NewLearnerService(service.LearnerServiceParams{
				Repo:    repo,
				Exports: exports,
				Logger:  opts.logger(),
				Config:  service.LearnerServiceConfig{UYUPerUSD: rate},
			})
			file, err := svc.ExportOrders(contextOf(cmd), args[0], format)
			if err != nil {
				return err
			}
			return out.write(cmd, file)
		},
	}
	out.bind(cmd)
	cmd.Flags().Float64Var(&rate, "uyu-per-usd", service.DefaultUYUPerUSD, "UYU to USD conversion rate")
	return cmd
}

func newFlushCacheCmd(opts *rootOptions) *cobra.Command {
	var scope string
	cmd := &cobra.Command{
		Use:   "flush-cache",
		Short: "Drop cached source records from redis",
		Long:  "Connects with the server's REDIS_* settings and deletes cached source records so the next request reloads them.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			ctx := contextOf(cmd)
			client, err := cache.NewRedis(ctx, cfg.Redis)
			if err != nil {
				return err
			}
			repo := repository.NewCacheRepository(client, opts.logger())
			defer repo.Close() //nolint:errcheck

			pattern := service.SourceKeyPattern(scope)
			svc := service.NewCacheService(repo, nil, cfg.Cache.TTL, opts.logger(), true)
			if err := svc.Invalidate(ctx, pattern); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "flushed %s\n", pattern)
			return nil
		},
	}
	cmd.Flags().StringVar(&scope, "scope", "", "Narrow the flush, e.g. catalog, educator:edu-1, course:cc-1, student:stu-1")
	return cmd
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
