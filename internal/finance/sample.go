package finance

// Sample returns the demo ledger the app starts with.
func Sample() *Ledger {
	return New(SampleSnapshot())
}

// SampleSnapshot returns the demo ledger contents.
func SampleSnapshot() Snapshot {
	return Snapshot{
		Overview: Overview{
			NetWorth:        215750,
			MonthlyIncome:   12500,
			MonthlyExpenses: 7325,
			Savings:         68000,
			Investments:     118000,
			Debt:            45000,
			SavingsRate:     28,
			CreditScore:     795,
		},
		Income: []Line{
			{Category: "Salary", Amount: 9500, Percentage: 76},
			{Category: "Investments", Amount: 1200, Percentage: 9.6},
			{Category: "Side Business", Amount: 1500, Percentage: 12},
			{Category: "Other", Amount: 300, Percentage: 2.4},
		},
		Expenses: []Line{
			{Category: "Housing", Amount: 2800, Percentage: 38.2},
			{Category: "Transportation", Amount: 650, Percentage: 8.9},
			{Category: "Food", Amount: 850, Percentage: 11.6},
			{Category: "Utilities", Amount: 375, Percentage: 5.1},
			{Category: "Insurance", Amount: 450, Percentage: 6.1},
			{Category: "Entertainment", Amount: 400, Percentage: 5.5},
			{Category: "Shopping", Amount: 500, Percentage: 6.8},
			{Category: "Debt Payments", Amount: 800, Percentage: 10.9},
			{Category: "Savings", Amount: 500, Percentage: 6.8},
		},
		Investments: []Line{
			{Category: "Stocks", Amount: 58000, Percentage: 49.2},
			{Category: "Bonds", Amount: 18000, Percentage: 15.3},
			{Category: "Real Estate", Amount: 25000, Percentage: 21.2},
			{Category: "Crypto", Amount: 12000, Percentage: 10.2},
			{Category: "Cash", Amount: 5000, Percentage: 4.2},
		},
		Transactions: []Transaction{
			{ID: 1, Description: "Amazon Purchase", Amount: -95.67, Date: "Today", Category: "Shopping"},
			{ID: 2, Description: "Salary Deposit", Amount: 4750, Date: "Yesterday", Category: "Income"},
			{ID: 3, Description: "Starbucks", Amount: -5.43, Date: "Yesterday", Category: "Food"},
			{ID: 4, Description: "Uber Ride", Amount: -24.15, Date: "2 days ago", Category: "Transportation"},
			{ID: 5, Description: "Grocery Store", Amount: -132.41, Date: "3 days ago", Category: "Food"},
		},
	}
}
