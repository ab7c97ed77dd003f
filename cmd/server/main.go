package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	v1 "github.com/AbdoTarek2211/Cost-Management/internal/api/v1"
	"github.com/AbdoTarek2211/Cost-Management/internal/config"
	"github.com/AbdoTarek2211/Cost-Management/internal/console"
	"github.com/AbdoTarek2211/Cost-Management/internal/logger"
	"github.com/AbdoTarek2211/Cost-Management/internal/pdf"
	"github.com/AbdoTarek2211/Cost-Management/internal/repository/memory"
	"github.com/AbdoTarek2211/Cost-Management/internal/router"
	"github.com/AbdoTarek2211/Cost-Management/internal/service"
	"github.com/AbdoTarek2211/Cost-Management/internal/validator"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

var seedSampleData bool

var rootCmd = &cobra.Command{
	Use:   "costmgmt",
	Short: "Cost and invoice management service",
	Long: `Costmgmt tracks business costs, invoices and payments,
computes region-aware taxes and discounts, and renders reports
and PDF receipts. Run "serve" for the HTTP API or "console" for
the interactive menu.`,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := bootstrap()
		if err != nil {
			return err
		}
		defer app.close()

		handlers := router.Handlers{
			Cost:    v1.NewCostHandler(app.costs, app.log),
			Invoice: v1.NewInvoiceHandler(app.invoices, app.log),
			Payment: v1.NewPaymentHandler(app.payments, app.log),
			Report:  v1.NewReportHandler(app.reports, app.log),
		}
		r := router.SetupRouter(handlers, app.log)

		app.log.Infow("starting server", "address", app.cfg.Server.Address)
		if err := r.Run(app.cfg.Server.Address); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	},
}

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Start the interactive console menu",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := bootstrap()
		if err != nil {
			return err
		}
		defer app.close()

		return console.New(
			app.costs, app.invoices, app.payments, app.reports,
			os.Stdin, os.Stdout,
		).Run(context.Background())
	},
}

type application struct {
	cfg *config.Configuration
	log *logger.Logger

	costs    service.CostService
	invoices service.InvoiceService
	payments service.PaymentService
	reports  service.ReportService
}

func bootstrap() (*application, error) {
	// Optional; local development convenience only
	_ = godotenv.Load()

	cfg, err := config.NewConfig()
	if err != nil {
		return nil, err
	}

	log, err := logger.NewLogger(cfg)
	if err != nil {
		return nil, err
	}

	validator.NewValidator()

	params := service.NewServiceParams(
		log,
		cfg,
		memory.NewCostStore(),
		memory.NewInvoiceStore(),
		memory.NewPaymentStore(),
		pdf.NewReceiptGenerator(),
	)

	if seedSampleData {
		if err := service.SeedSampleData(context.Background(), params); err != nil {
			return nil, err
		}
	}

	return &application{
		cfg:      cfg,
		log:      log,
		costs:    service.NewCostService(params),
		invoices: service.NewInvoiceService(params),
		payments: service.NewPaymentService(params),
		reports:  service.NewReportService(params),
	}, nil
}

func (a *application) close() {
	_ = a.log.Sync()
}

func main() {
	rootCmd.PersistentFlags().BoolVar(&seedSampleData, "seed", false, "seed sample data on startup")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(consoleCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
