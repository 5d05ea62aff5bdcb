package app

import (
	"github.com/spf13/cobra"

	"github.com/OndrejKutil/budgeting-dashboard-sub000/model"
	"github.com/OndrejKutil/budgeting-dashboard-sub000/service"
)

func resourceCommands() []*cobra.Command {
	return []*cobra.Command{
		newTransactionsCommand(),
		newAccountsCommand(),
		newCategoriesCommand(),
		newFundsCommand(),
		newBudgetsCommand(),
	}
}

func newTransactionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transactions",
		Short: "Manage transactions",
	}

	var filter service.TransactionFilter
	list := &cobra.Command{
		Use:   "list",
		Short: "List transactions",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := buildDeps()
			if err != nil {
				return err
			}
			txs, err := d.transactions.List(cmd.Context(), filter)
			if err != nil {
				return wrapErr(err)
			}
			return printJSON(cmd, txs)
		},
	}
	list.Flags().IntVar(&filter.Month, "month", 0, "filter by month (1-12)")
	list.Flags().IntVar(&filter.Year, "year", 0, "filter by year")
	list.Flags().StringVar(&filter.AccountID, "account", "", "filter by account id")
	list.Flags().StringVar(&filter.CategoryID, "category", "", "filter by category id")
	list.Flags().IntVar(&filter.Limit, "limit", 0, "page size")
	list.Flags().IntVar(&filter.Offset, "offset", 0, "page offset")

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := buildDeps()
			if err != nil {
				return err
			}
			tx, err := d.transactions.Get(cmd.Context(), args[0])
			if err != nil {
				return wrapErr(err)
			}
			return printJSON(cmd, tx)
		},
	}

	var create model.CreateTransactionRequest
	add := &cobra.Command{
		Use:   "add",
		Short: "Record a transaction (negative amount = expense)",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := buildDeps()
			if err != nil {
				return err
			}
			tx, err := d.transactions.Create(cmd.Context(), create)
			if err != nil {
				return wrapErr(err)
			}
			return printJSON(cmd, tx)
		},
	}
	add.Flags().StringVar(&create.AccountID, "account", "", "account id")
	add.Flags().StringVar(&create.CategoryID, "category", "", "category id")
	add.Flags().Float64Var(&create.Amount, "amount", 0, "signed amount")
	add.Flags().StringVar(&create.Currency, "currency", "", "currency code")
	add.Flags().StringVar(&create.Date, "date", "", "date (YYYY-MM-DD)")
	add.Flags().StringVar(&create.Notes, "notes", "", "free-form note")
	_ = add.MarkFlagRequired("account")
	_ = add.MarkFlagRequired("category")
	_ = add.MarkFlagRequired("amount")
	_ = add.MarkFlagRequired("date")

	var amount float64
	var accountID, categoryID, date, notes string
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Update fields of a transaction (only changed flags are sent)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := buildDeps()
			if err != nil {
				return err
			}
			var req model.UpdateTransactionRequest
			if cmd.Flags().Changed("amount") {
				req.Amount = &amount
			}
			if cmd.Flags().Changed("account") {
				req.AccountID = &accountID
			}
			if cmd.Flags().Changed("category") {
				req.CategoryID = &categoryID
			}
			if cmd.Flags().Changed("date") {
				req.Date = &date
			}
			if cmd.Flags().Changed("notes") {
				req.Notes = &notes
			}
			tx, err := d.transactions.Update(cmd.Context(), args[0], req)
			if err != nil {
				return wrapErr(err)
			}
			return printJSON(cmd, tx)
		},
	}
	update.Flags().Float64Var(&amount, "amount", 0, "signed amount")
	update.Flags().StringVar(&accountID, "account", "", "account id")
	update.Flags().StringVar(&categoryID, "category", "", "category id")
	update.Flags().StringVar(&date, "date", "", "date (YYYY-MM-DD)")
	update.Flags().StringVar(&notes, "notes", "", "free-form note")

	rm := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := buildDeps()
			if err != nil {
				return err
			}
			if err := d.transactions.Delete(cmd.Context(), args[0]); err != nil {
				return wrapErr(err)
			}
			cmd.Println("Deleted")
			return nil
		},
	}

	cmd.AddCommand(list, get, add, update, rm)
	return cmd
}

func newAccountsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Manage accounts",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := buildDeps()
			if err != nil {
				return err
			}
			accounts, err := d.accounts.List(cmd.Context())
			if err != nil {
				return wrapErr(err)
			}
			return printJSON(cmd, accounts)
		},
	}

	var create model.CreateAccountRequest
	add := &cobra.Command{
		Use:   "add",
		Short: "Create an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := buildDeps()
			if err != nil {
				return err
			}
			account, err := d.accounts.Create(cmd.Context(), create)
			if err != nil {
				return wrapErr(err)
			}
			return printJSON(cmd, account)
		},
	}
	add.Flags().StringVar(&create.Name, "name", "", "account name")
	add.Flags().StringVar(&create.Type, "type", "", "account type (checking, savings, ...)")
	add.Flags().StringVar(&create.Currency, "currency", "", "currency code")
	add.Flags().Float64Var(&create.StartingBalance, "balance", 0, "starting balance")
	_ = add.MarkFlagRequired("name")
	_ = add.MarkFlagRequired("type")

	rm := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := buildDeps()
			if err != nil {
				return err
			}
			if err := d.accounts.Delete(cmd.Context(), args[0]); err != nil {
				return wrapErr(err)
			}
			cmd.Println("Deleted")
			return nil
		},
	}

	cmd.AddCommand(list, add, rm)
	return cmd
}

func newCategoriesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage categories",
	}

	var categoryType string
	list := &cobra.Command{
		Use:   "list",
		Short: "List categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := buildDeps()
			if err != nil {
				return err
			}
			categories, err := d.categories.List(cmd.Context(), categoryType)
			if err != nil {
				return wrapErr(err)
			}
			return printJSON(cmd, categories)
		},
	}
	list.Flags().StringVar(&categoryType, "type", "", "filter by type (income, expense, saving)")

	var create model.CreateCategoryRequest
	add := &cobra.Command{
		Use:   "add",
		Short: "Create a category",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := buildDeps()
			if err != nil {
				return err
			}
			category, err := d.categories.Create(cmd.Context(), create)
			if err != nil {
				return wrapErr(err)
			}
			return printJSON(cmd, category)
		},
	}
	add.Flags().StringVar(&create.Name, "name", "", "category name")
	add.Flags().StringVar(&create.Type, "type", "", "income, expense or saving")
	add.Flags().BoolVar(&create.IsCore, "core", false, "core expense (counts toward the emergency fund)")
	_ = add.MarkFlagRequired("name")
	_ = add.MarkFlagRequired("type")

	rm := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := buildDeps()
			if err != nil {
				return err
			}
			if err := d.categories.Delete(cmd.Context(), args[0]); err != nil {
				return wrapErr(err)
			}
			cmd.Println("Deleted")
			return nil
		},
	}

	cmd.AddCommand(list, add, rm)
	return cmd
}

func newFundsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "funds",
		Short: "Manage savings funds",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List savings funds",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := buildDeps()
			if err != nil {
				return err
			}
			funds, err := d.funds.List(cmd.Context())
			if err != nil {
				return wrapErr(err)
			}
			return printJSON(cmd, funds)
		},
	}

	var create model.CreateFundRequest
	add := &cobra.Command{
		Use:   "add",
		Short: "Create a savings fund",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := buildDeps()
			if err != nil {
				return err
			}
			fund, err := d.funds.Create(cmd.Context(), create)
			if err != nil {
				return wrapErr(err)
			}
			return printJSON(cmd, fund)
		},
	}
	add.Flags().StringVar(&create.Name, "name", "", "fund name")
	add.Flags().Float64Var(&create.TargetAmount, "target", 0, "target amount")
	_ = add.MarkFlagRequired("name")
	_ = add.MarkFlagRequired("target")

	rm := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a savings fund",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := buildDeps()
			if err != nil {
				return err
			}
			if err := d.funds.Delete(cmd.Context(), args[0]); err != nil {
				return wrapErr(err)
			}
			cmd.Println("Deleted")
			return nil
		},
	}

	cmd.AddCommand(list, add, rm)
	return cmd
}

func newBudgetsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budgets",
		Short: "Manage monthly budgets",
	}

	var month, year int
	list := &cobra.Command{
		Use:   "list",
		Short: "List budgets for a month",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := buildDeps()
			if err != nil {
				return err
			}
			budgets, err := d.budgets.List(cmd.Context(), month, year)
			if err != nil {
				return wrapErr(err)
			}
			return printJSON(cmd, budgets)
		},
	}
	list.Flags().IntVar(&month, "month", 0, "month (1-12)")
	list.Flags().IntVar(&year, "year", 0, "year")

	var setReq model.SetBudgetRequest
	set := &cobra.Command{
		Use:   "set",
		Short: "Create or replace a category budget",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := buildDeps()
			if err != nil {
				return err
			}
			budget, err := d.budgets.Set(cmd.Context(), setReq)
			if err != nil {
				return wrapErr(err)
			}
			return printJSON(cmd, budget)
		},
	}
	set.Flags().StringVar(&setReq.CategoryID, "category", "", "category id")
	set.Flags().IntVar(&setReq.Month, "month", 0, "month (1-12)")
	set.Flags().IntVar(&setReq.Year, "year", 0, "year")
	set.Flags().Float64Var(&setReq.Amount, "amount", 0, "budget amount")
	_ = set.MarkFlagRequired("category")
	_ = set.MarkFlagRequired("month")
	_ = set.MarkFlagRequired("year")
	_ = set.MarkFlagRequired("amount")

	rm := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := buildDeps()
			if err != nil {
				return err
			}
			if err := d.budgets.Delete(cmd.Context(), args[0]); err != nil {
				return wrapErr(err)
			}
			cmd.Println("Deleted")
			return nil
		},
	}

	cmd.AddCommand(list, set, rm)
	return cmd
}
