package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/emrekoca/restopos-admin/internal/api"
	"github.com/emrekoca/restopos-admin/internal/catalog"
	"github.com/emrekoca/restopos-admin/internal/layout"
	"github.com/emrekoca/restopos-admin/internal/rosters"
	"github.com/emrekoca/restopos-admin/internal/session"
	"github.com/emrekoca/restopos-admin/pkg/config"
	"github.com/emrekoca/restopos-admin/pkg/logger"
	"github.com/emrekoca/restopos-admin/pkg/metrics"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
)

const usage = `usage: admin <command> [flags]

commands:
  products          list the product catalog
  prices [query]    list (product, price) pairs, optionally filtered
  pilots            list the pilot roster
  waiters           list the waiter roster
  sections          list seating sections
  tables            list tables
  delete-product    delete a product (-id required)
`

func main() {
	logg := logger.New(logger.Options{ServiceName: "admin"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "admin",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	sess := session.New(cfg.Session.Token)
	if sess.Expired(time.Now()) {
		logg.Warn(context.Background(), "bearer token missing or expired, calls will fail locally")
	}

	client, err := api.New(cfg.API, sess, logg, metrics.NewAPIMetrics(prometheus.NewRegistry()))
	if err != nil {
		logg.Error(context.Background(), "failed to create api client", err)
		os.Exit(1)
	}

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	ctx := context.Background()
	if err := run(ctx, client, os.Args[1], os.Args[2:]); err != nil {
		logg.Error(ctx, "command failed", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, client *api.Client, command string, args []string) error {
	switch command {
	case "products":
		records, err := client.GetProducts(ctx)
		if err != nil {
			return err
		}
		for _, record := range records {
			fmt.Printf("%s\t%s\t(branch %s)\n", record.ProductID, record.Name, record.BranchID)
		}
		return nil

	case "prices":
		picker, err := catalog.Open(ctx, client)
		if err != nil {
			return err
		}
		if len(args) > 0 {
			picker.SetQuery(args[0])
		}
		for _, row := range picker.Visible() {
			fmt.Printf("%s\t%s / %s\t%s\n", row.ProductPriceID, row.ProductName, row.PriceName, row.Price)
		}
		return nil

	case "pilots":
		manager, err := rosters.NewPilotManager(client)
		if err != nil {
			return err
		}
		records, err := manager.List(ctx)
		if err != nil {
			return err
		}
		for _, record := range records {
			fmt.Printf("%s\t%s\t%s\n", record.PilotID, record.Name, record.Phone)
		}
		return nil

	case "waiters":
		manager, err := rosters.NewWaiterManager(client)
		if err != nil {
			return err
		}
		records, err := manager.List(ctx)
		if err != nil {
			return err
		}
		for _, record := range records {
			fmt.Printf("%s\t%s\t%s\n", record.WaiterID, record.Name, record.Phone)
		}
		return nil

	case "sections":
		manager, err := layout.NewManager(client)
		if err != nil {
			return err
		}
		records, err := manager.Sections(ctx)
		if err != nil {
			return err
		}
		for _, record := range records {
			fmt.Printf("%s\t%s\n", record.SectionID, record.Name)
		}
		return nil

	case "tables":
		manager, err := layout.NewManager(client)
		if err != nil {
			return err
		}
		records, err := manager.Tables(ctx)
		if err != nil {
			return err
		}
		for _, record := range records {
			fmt.Printf("%s\t%s\t(section %s, %d seats)\n", record.TableID, record.Name, record.SectionID, record.Seats)
		}
		return nil

	case "delete-product":
		fs := flag.NewFlagSet("delete-product", flag.ContinueOnError)
		id := fs.String("id", "", "product id to delete")
		if err := fs.Parse(args); err != nil {
			return err
		}
		if *id == "" {
			return fmt.Errorf("-id is required")
		}
		return client.DeleteProduct(ctx, *id)

	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}
