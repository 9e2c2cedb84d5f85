package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/SergeyParamoshkin/newsdesk/internal/analytics"
	"github.com/SergeyParamoshkin/newsdesk/internal/config"
	"github.com/SergeyParamoshkin/newsdesk/internal/metrics"
	"github.com/SergeyParamoshkin/newsdesk/internal/seed"
	"github.com/SergeyParamoshkin/newsdesk/internal/server"
	"github.com/SergeyParamoshkin/newsdesk/internal/store"
)

const readHeaderTimeout = 10 * time.Second

func newRootCommand() *cobra.Command {
	var (
		addr     string
		diagAddr string
	)

	load := func() (*App, error) {
		cfg, err := config.Load()
		if err != nil {
			return nil, err
		}
		if addr != "" {
			cfg.Addr = addr
		}
		if diagAddr != "" {
			cfg.DiagAddr = diagAddr
		}

		return newApp(cfg)
	}

	serve := newServeCommand(load)

	rootCmd := &cobra.Command{
		Use:           config.ServiceName,
		Short:         "News publishing and reader analytics backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve.RunE,
	}

	rootCmd.PersistentFlags().StringVar(&addr, "addr", "", "application address (overrides NEWSDESK_ADDR)")
	rootCmd.PersistentFlags().StringVar(&diagAddr, "diag_addr", "", "diagnostics address (overrides NEWSDESK_DIAG_ADDR)")

	rootCmd.AddCommand(serve)
	rootCmd.AddCommand(newMigrateCommand(load))
	rootCmd.AddCommand(newSeedCommand(load))
	rootCmd.AddCommand(newRoutesCommand(load))
	rootCmd.AddCommand(newStatsCommand(load))

	return rootCmd
}

type loader func() (*App, error)

func newServeCommand(load loader) *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the API and diagnostics servers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := load()
			if err != nil {
				return err
			}
			defer app.logger.Sync() //nolint:errcheck

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return app.serve(ctx, migrate)
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", false, "apply the schema before serving")

	return cmd
}

func (a *App) serve(ctx context.Context, migrate bool) error {
	s, closeStore, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	if migrate {
		if err := s.Migrate(ctx); err != nil {
			return err
		}
	}

	m, err := metrics.New(config.ServiceName)
	if err != nil {
		return fmt.Errorf("init metrics: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := m.Shutdown(shutdownCtx); err != nil {
			a.sugarLogger.Warnw("metrics shutdown", "err", err)
		}
	}()

	r, err := a.router(ctx, s, m)
	if err != nil {
		return err
	}

	a.sugarLogger.Infow("starting", "addr", a.config.Addr, "diag_addr", a.config.DiagAddr)

	return server.Run(ctx, a.sugarLogger,
		&http.Server{Addr: a.config.Addr, Handler: r, ReadHeaderTimeout: readHeaderTimeout},
		&http.Server{Addr: a.config.DiagAddr, Handler: server.NewDiagRouter(m, s), ReadHeaderTimeout: readHeaderTimeout},
	)
}

func newMigrateCommand(load loader) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := load()
			if err != nil {
				return err
			}
			s, closeStore, err := app.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			if err := s.Migrate(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "schema is up to date")

			return nil
		},
	}
}

func newSeedCommand(load loader) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the sample articles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := load()
			if err != nil {
				return err
			}
			s, closeStore, err := app.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			inserted, err := seed.Seed(cmd.Context(), s, app.sugarLogger)
			rows := make([][]string, 0, len(inserted))
			for _, a := range inserted {
				rows = append(rows, []string{a.ID, deref(a.Category), a.Title})
			}
			if len(rows) > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"ID", "Category", "Title"}, rows, nil))
			}
			if err != nil && len(inserted) == 0 {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d articles inserted\n", len(inserted))

			return nil
		},
	}
}

func newRoutesCommand(load loader) *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print the generated route documentation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := load()
			if err != nil {
				return err
			}
			r, err := app.router(cmd.Context(), store.New(nil), nil)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), server.RoutesDoc(r))

			return nil
		},
	}
}

func newStatsCommand(load loader) *cobra.Command {
	return &cobra.Command{
		Use:   "stats <articleID>",
		Short: "Show the visit and section report of an article",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := load()
			if err != nil {
				return err
			}
			loc, err := app.config.Location()
			if err != nil {
				return err
			}
			s, closeStore, err := app.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			reports := analytics.NewService(s, loc)
			visits, err := reports.Visits(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			sections, err := reports.Sections(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderVisits(visits))
			if len(sections.Sections) == 0 {
				fmt.Fprintln(out, "no section views recorded")
				return nil
			}
			fmt.Fprintln(out, renderSections(sections))

			return nil
		},
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
