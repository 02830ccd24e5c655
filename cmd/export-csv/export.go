package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/copy-census/internal/adapters/export"
	"github.com/jsamuelsen/copy-census/internal/adapters/store/sqlstore"
	"github.com/jsamuelsen/copy-census/internal/app"
	"github.com/jsamuelsen/copy-census/internal/catalog"
	"github.com/jsamuelsen/copy-census/internal/platform/config"
	"github.com/jsamuelsen/copy-census/internal/platform/logging"
)

type options struct {
	configDir string
	profile   string
	dir       string
	only      []string
	paths     map[catalog.Dimension]*string
}

func newRootCmd() *cobra.Command {
	opts := options{paths: make(map[catalog.Dimension]*string)}

	cmd := &cobra.Command{
		Use:   "export-csv",
		Short: "Write the copy-count reports as CSV files",
		Long: `Write one CSV file per copy-count report: location, title, edition,
issue and provenance_name. Only canonical copies are counted.

Files go to --dir under their download names unless a per-report flag
gives an explicit path.

Examples:
  export-csv --dir ./exports
  export-csv --only location,title
  export-csv --provenance-name /srv/reports/owners.csv`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), &opts, cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configDir, "config-dir", "configs", "directory holding base.yaml and profile files")
	flags.StringVar(&opts.profile, "profile", "local", "config profile to load")
	flags.StringVar(&opts.dir, "dir", "", "output directory (default export.dir from config)")
	flags.StringSliceVar(&opts.only, "only", nil, "reports to write (default all)")

	for _, dim := range catalog.Dimensions() {
		name := strings.ReplaceAll(string(dim), "_", "-")
		opts.paths[dim] = flags.String(name, "", fmt.Sprintf("output path of the %s report", dim))
	}

	return cmd
}

func run(ctx context.Context, opts *options, out io.Writer) error {
	cfg, err := config.LoadFrom(opts.configDir, opts.profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	dims, err := selectDimensions(opts.only)
	if err != nil {
		return err
	}

	logger := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: "export-csv",
		Version: cfg.App.Version,
	})

	store, err := sqlstore.Open(ctx, sqlstore.Config{
		Path:         cfg.Database.Path,
		AutoMigrate:  cfg.Database.AutoMigrate,
		MaxOpenConns: cfg.Database.MaxOpenConns,
		LogQueries:   cfg.Database.LogQueries,
	}, logger)
	if err != nil {
		return fmt.Errorf("opening census store: %w", err)
	}
	defer store.Close()

	service := app.NewCensusService(app.CensusServiceConfig{
		Repository: store,
		Labels:     catalog.NewLabels(cfg.Census.CopyIDPrefix),
		Site:       app.Site{Name: cfg.Census.Name, Email: cfg.Census.Email},
		Logger:     logger,
	})

	dir := opts.dir
	if dir == "" {
		dir = cfg.Export.Dir
	}

	paths := make(map[catalog.Dimension]string, len(opts.paths))
	for dim, p := range opts.paths {
		if p != nil && *p != "" {
			paths[dim] = *p
		}
	}

	written, err := exportReports(ctx, service, dir, paths, dims)
	if err != nil {
		return err
	}

	for _, p := range written {
		fmt.Fprintln(out, p)
	}

	logger.InfoContext(ctx, "reports exported", slog.Int("files", len(written)), slog.String("dir", dir))

	return nil
}

// selectDimensions validates --only. An empty list selects every report.
func selectDimensions(only []string) ([]catalog.Dimension, error) {
	all := catalog.Dimensions()
	if len(only) == 0 {
		return all, nil
	}

	dims := make([]catalog.Dimension, 0, len(only))
	for _, name := range only {
		dim := catalog.Dimension(strings.TrimSpace(name))
		if !slices.Contains(all, dim) {
			return nil, fmt.Errorf("%w: %q", export.ErrUnknownDimension, name)
		}

		if !slices.Contains(dims, dim) {
			dims = append(dims, dim)
		}
	}

	return dims, nil
}

// exportReports builds every report from one read of the store and writes
// the selected ones. It returns the written paths in report order.
func exportReports(
	ctx context.Context,
	service *app.CensusService,
	dir string,
	paths map[catalog.Dimension]string,
	dims []catalog.Dimension,
) ([]string, error) {
	reports, err := service.Reports(ctx)
	if err != nil {
		return nil, fmt.Errorf("building reports: %w", err)
	}

	written := make([]string, 0, len(dims))

	for _, r := range reports {
		if !slices.Contains(dims, r.Dimension) {
			continue
		}

		path, ok := paths[r.Dimension]
		if !ok {
			path = filepath.Join(dir, export.Filename(r.Dimension))
		}

		if err := export.WriteFile(path, r.Dimension, r.Rows); err != nil {
			return written, fmt.Errorf("writing %s report: %w", r.Dimension, err)
		}

		written = append(written, path)
	}

	return written, nil
}
