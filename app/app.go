// File: app/app.go
package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/OndrejKutil/budgeting-dashboard-sub000/client"
	"github.com/OndrejKutil/budgeting-dashboard-sub000/common"
	"github.com/OndrejKutil/budgeting-dashboard-sub000/config"
	"github.com/OndrejKutil/budgeting-dashboard-sub000/logger"
	"github.com/OndrejKutil/budgeting-dashboard-sub000/service"
)

func Run() {
	root := NewRootCommand()
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCommand assembles the full CLI. Configuration is loaded once in
// the persistent pre-run so every subcommand sees the same state.
func NewRootCommand() *cobra.Command {
	var cfgPath string

	root := &cobra.Command{
		Use:          "dashctl",
		Short:        "Command-line client for the budgeting dashboard API",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadConfig(cfgPath); err != nil {
				return err
			}
			logger.InitWithLevel(config.AppConfig.Log.Level)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", ".", "directory containing config.yml")

	root.AddCommand(authCommands()...)
	root.AddCommand(resourceCommands()...)
	root.AddCommand(analyticsCommands()...)
	return root
}

// deps bundles the wired client and services for one command invocation.
type deps struct {
	client       *client.Client
	transactions *service.TransactionService
	accounts     *service.AccountService
	categories   *service.CategoryService
	funds        *service.FundService
	budgets      *service.BudgetService
	profile      *service.ProfileService
	analytics    *service.AnalyticsService
}

func buildDeps() (*deps, error) {
	dir := config.AppConfig.Storage.Dir
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolve user config dir: %w", err)
		}
		dir = filepath.Join(base, "budgeting-dashboard")
	}
	store, err := client.NewFileStore(dir)
	if err != nil {
		return nil, err
	}

	cfg := config.AppConfig
	api := client.NewClient(cfg.API.BaseURL, cfg.API.Key, store, cfg.API.Timeout)
	return &deps{
		client:       api,
		transactions: service.NewTransactionService(api),
		accounts:     service.NewAccountService(api),
		categories:   service.NewCategoryService(api),
		funds:        service.NewFundService(api),
		budgets:      service.NewBudgetService(api),
		profile:      service.NewProfileService(api),
		analytics:    service.NewAnalyticsService(api, service.NewTTLCache(), cfg.Analytics.CacheTTL),
	}, nil
}

// wrapErr converts the dedicated session-expired error into actionable
// guidance; everything else passes through untouched.
func wrapErr(err error) error {
	if common.IsSessionExpired(err) {
		return fmt.Errorf("session expired, log in again with 'dashctl login'")
	}
	return err
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

func printJSON(cmd *cobra.Command, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	cmd.Println(string(raw))
	return nil
}
