package app

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/OndrejKutil/budgeting-dashboard-sub000/projection"
)

func analyticsCommands() []*cobra.Command {
	return []*cobra.Command{
		newSummaryCommand(),
		newMonthlyCommand(),
		newYearlyCommand(),
		newEmergencyFundCommand(),
		newProjectCommand(),
		newHealthCommand(),
	}
}

func newSummaryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show the current month's headline numbers",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := buildDeps()
			if err != nil {
				return err
			}
			summary, err := d.analytics.Summary(cmd.Context())
			if err != nil {
				return wrapErr(err)
			}
			return printJSON(cmd, summary)
		},
	}
}

func newMonthlyCommand() *cobra.Command {
	now := time.Now()
	var month, year int

	cmd := &cobra.Command{
		Use:   "monthly",
		Short: "Show the monthly analytics view",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := buildDeps()
			if err != nil {
				return err
			}
			analytics, err := d.analytics.Monthly(cmd.Context(), month, year)
			if err != nil {
				return wrapErr(err)
			}
			return printJSON(cmd, analytics)
		},
	}
	cmd.Flags().IntVar(&month, "month", int(now.Month()), "month (1-12)")
	cmd.Flags().IntVar(&year, "year", now.Year(), "year")
	return cmd
}

func newYearlyCommand() *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "yearly",
		Short: "Show the yearly analytics view",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := buildDeps()
			if err != nil {
				return err
			}
			analytics, err := d.analytics.Yearly(cmd.Context(), year)
			if err != nil {
				return wrapErr(err)
			}
			return printJSON(cmd, analytics)
		},
	}
	cmd.Flags().IntVar(&year, "year", time.Now().Year(), "year")
	return cmd
}

func newEmergencyFundCommand() *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "emergency-fund",
		Short: "Show emergency fund coverage against core expenses",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := buildDeps()
			if err != nil {
				return err
			}
			fund, err := d.analytics.EmergencyFund(cmd.Context(), year)
			if err != nil {
				return wrapErr(err)
			}
			return printJSON(cmd, fund)
		},
	}
	cmd.Flags().IntVar(&year, "year", time.Now().Year(), "year")
	return cmd
}

func newProjectCommand() *cobra.Command {
	var input projection.CompoundInput

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project compound growth of an investment, year by year",
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := projection.CompoundInterest(input)
			if err != nil {
				return err
			}
			return printJSON(cmd, rows)
		},
	}
	cmd.Flags().Float64Var(&input.Principal, "principal", 0, "starting amount")
	cmd.Flags().Float64Var(&input.MonthlyContribution, "monthly", 0, "monthly contribution")
	cmd.Flags().Float64Var(&input.AnnualRatePercent, "rate", 7, "annual rate in percent")
	cmd.Flags().IntVar(&input.Years, "years", 10, "projection horizon in years")
	cmd.Flags().IntVar(&input.CompoundsPerYear, "compounds", 12, "compounding periods per year")
	return cmd
}

func newHealthCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check the API's health endpoint",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := buildDeps()
			if err != nil {
				return err
			}
			health, err := d.profile.Health(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, health)
		},
	}
}
