package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/campreserv/keepr/internal/availability"
	"github.com/campreserv/keepr/internal/campground"
	"github.com/campreserv/keepr/internal/clock"
	"github.com/campreserv/keepr/internal/config"
	"github.com/campreserv/keepr/internal/fee"
	"github.com/campreserv/keepr/internal/forecast"
	"github.com/campreserv/keepr/internal/migration"
	"github.com/campreserv/keepr/internal/observability"
	"github.com/campreserv/keepr/internal/occupancy"
	"github.com/campreserv/keepr/internal/pricing"
	"github.com/campreserv/keepr/internal/quote"
	"github.com/campreserv/keepr/internal/rate"
	"github.com/campreserv/keepr/internal/redis"
	"github.com/campreserv/keepr/internal/reservation"
	"github.com/campreserv/keepr/internal/scheduler"
	"github.com/campreserv/keepr/internal/seed"
	"github.com/campreserv/keepr/internal/server"
	"github.com/campreserv/keepr/pkg/db"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "keepr",
		Short:   "Keepr reservation pricing and booking service",
		Version: readVersionFromEnv(),
	}
	root.AddCommand(newMigrateCmd(), newServeCmd(), newSchedulerCmd(), newAllCmd())
	return root
}

func newMigrateCmd() *cobra.Command {
	var withDemoData bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(withDemoData)
		},
	}
	cmd.Flags().BoolVar(&withDemoData, "demo-data", false, "seed a demo campground after migrating")
	return cmd
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			runServe()
			return nil
		},
	}
}

func newSchedulerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scheduler",
		Short: "Run background scheduler jobs",
		RunE: func(cmd *cobra.Command, args []string) error {
			runScheduler()
			return nil
		},
	}
}

func newAllCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Run migrations, then start the API server and scheduler",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := runMigrate(false); err != nil {
				return err
			}
			runMonolith()
			return nil
		},
	}
}

func runMigrate(withDemoData bool) error {
	opts := []fx.Option{
		config.Module,
		observability.Module,
		fx.Provide(registerSnowflake),
		db.Module,
		migration.Module,
	}
	if withDemoData {
		opts = append(opts, fx.Invoke(func(conn *gorm.DB) error {
			return seed.EnsureDemoCampground(conn)
		}))
	}

	app := fx.New(opts...)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		return fmt.Errorf("migrate failed: %w", err)
	}
	_ = app.Stop(context.Background())
	return nil
}

// baseModules is the infrastructure every long-running process needs.
func baseModules() fx.Option {
	return fx.Options(
		config.Module,
		observability.Module,
		fx.Provide(registerSnowflake),
		db.Module,
		clock.Module,
		redis.Module,
		occupancy.Module,
	)
}

// domainModules wires every feature service.
func domainModules() fx.Option {
	return fx.Options(
		campground.Module,
		rate.Module,
		pricing.Module,
		fee.Module,
		quote.Module,
		reservation.Module,
		availability.Module,
		forecast.Module,
	)
}

func runServe() {
	app := fx.New(
		baseModules(),
		domainModules(),
		server.Module,
	)
	app.Run()
}

func runScheduler() {
	app := fx.New(
		baseModules(),
		domainModules(),
		scheduler.Module,
		fx.Invoke(startScheduler),
	)
	app.Run()
}

func runMonolith() {
	app := fx.New(
		baseModules(),
		domainModules(),
		server.Module,
		scheduler.Module,
		fx.Invoke(startScheduler),
	)
	app.Run()
}

func registerSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}

func readVersionFromEnv() string {
	if v := strings.TrimSpace(os.Getenv("APP_VERSION")); v != "" {
		return v
	}
	return "dev"
}

func startScheduler(lc fx.Lifecycle, s *scheduler.Scheduler) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go s.RunForever(context.Background())
			return nil
		},
	})
}
