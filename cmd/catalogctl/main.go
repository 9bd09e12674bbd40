package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/noah-isme/tinta-academy-api/internal/repository"
	"github.com/noah-isme/tinta-academy-api/pkg/fixtures"
)

type rootOptions struct {
	fixturesPath string
	verbose      bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "catalogctl",
		Short:         "Run catalog derivations against a fixture bundle",
		Long:          "Offline companion to the API: validates fixture bundles and renders the same views and exports the server derives.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&opts.fixturesPath, "fixtures", "f", "", "Fixture file or directory (default: embedded bundle)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		newValidateCmd(opts),
		newCatalogCmd(opts),
		newOrdersCmd(opts),
		newExportRosterCmd(opts),
		newExportOrdersCmd(opts),
		newFlushCacheCmd(opts),
	)
	return root
}

func (o *rootOptions) logger() *zap.Logger {
	if !o.verbose {
		return zap.NewNop()
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return l
}

func (o *rootOptions) bundle() (*fixtures.Bundle, error) {
	bundle, err := fixtures.Load(o.fixturesPath)
	if err != nil {
		return nil, err
	}
	if err := fixtures.Validate(bundle); err != nil {
		return nil, err
	}
	return bundle, nil
}

func (o *rootOptions) repository() (*repository.FixtureRepository, error) {
	bundle, err := o.bundle()
	if err != nil {
		return nil, err
	}
	return repository.NewFixtureRepository(bundle), nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
