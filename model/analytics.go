package model

// Summary is the dashboard's headline view of the current month.
type Summary struct {
	TotalIncome   float64 `json:"total_income"`
	TotalExpenses float64 `json:"total_expenses"`
	TotalSavings  float64 `json:"total_savings"`
	NetCashflow   float64 `json:"net_cashflow"`
}

// CategoryBreakdown is one slice of a monthly spending breakdown.
type CategoryBreakdown struct {
	CategoryID   string  `json:"category_id"`
	CategoryName string  `json:"category_name"`
	Total        float64 `json:"total"`
}

type MonthlyAnalytics struct {
	Month      int                 `json:"month"`
	Year       int                 `json:"year"`
	Income     float64             `json:"income"`
	Expenses   float64             `json:"expenses"`
	Savings    float64             `json:"savings"`
	ByCategory []CategoryBreakdown `json:"by_category"`
}

// MonthTotals is one month's row inside the yearly analytics view.
type MonthTotals struct {
	Month    int     `json:"month"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Savings  float64 `json:"savings"`
}

type YearlyAnalytics struct {
	Year          int           `json:"year"`
	TotalIncome   float64       `json:"total_income"`
	TotalExpenses float64       `json:"total_expenses"`
	TotalSavings  float64       `json:"total_savings"`
	Months        []MonthTotals `json:"months"`
}

// EmergencyFund reports how many months of core expenses the user's
// emergency savings currently cover.
type EmergencyFund struct {
	Year               int     `json:"year"`
	CoreMonthlyAverage float64 `json:"core_monthly_average"`
	TargetThreeMonths  float64 `json:"target_three_months"`
	TargetSixMonths    float64 `json:"target_six_months"`
	CurrentAmount      float64 `json:"current_amount"`
	MonthsCovered      float64 `json:"months_covered"`
}
