// Package finance holds the in-memory personal finance ledger shown on the
// Financials screen: income, expense and investment breakdowns, a
// summary overview and a short list of recent transactions.
package finance

import (
	"errors"
	"fmt"
	"math"
	"sync"
)

// MaxTransactions is how many recent transactions the ledger retains.
const MaxTransactions = 10

var (
	ErrInvalidAmount     = errors.New("finance: invalid amount")
	ErrNotFound          = errors.New("finance: not found")
	ErrDuplicateCategory = errors.New("finance: duplicate category")
	ErrEmptyCategory     = errors.New("finance: empty category")
)

// Line is one category of a breakdown. Percentage is the share of the
// breakdown total, rounded to one decimal place.
type Line struct {
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

// Transaction is a single recent account movement. Negative amounts are
// outflows.
type Transaction struct {
	ID          int     `json:"id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Category    string  `json:"category"`
}

// Overview summarises the ledger.
type Overview struct {
	NetWorth        float64 `json:"netWorth"`
	MonthlyIncome   float64 `json:"monthlyIncome"`
	MonthlyExpenses float64 `json:"monthlyExpenses"`
	Savings         float64 `json:"savings"`
	Investments     float64 `json:"investments"`
	Debt            float64 `json:"debt"`
	SavingsRate     int     `json:"savingsRate"`
	CreditScore     int     `json:"creditScore"`
}

// OverviewPatch carries the overview fields to overwrite. Nil fields are
// left untouched.
type OverviewPatch struct {
	NetWorth        *float64
	MonthlyIncome   *float64
	MonthlyExpenses *float64
	Savings         *float64
	Investments     *float64
	Debt            *float64
	SavingsRate     *int
	CreditScore     *int
}

// Snapshot is a copy of the ledger's contents.
type Snapshot struct {
	Overview     Overview      `json:"overview"`
	Income       []Line        `json:"income"`
	Expenses     []Line        `json:"expenses"`
	Investments  []Line        `json:"investments"`
	Transactions []Transaction `json:"recentTransactions"`
}

// Ledger is safe for concurrent use.
type Ledger struct {
	mu           sync.RWMutex
	overview     Overview
	income       []Line
	expenses     []Line
	investments  []Line
	transactions []Transaction
}

// New returns a ledger initialised from s.
func New(s Snapshot) *Ledger {
	return &Ledger{
		overview:     s.Overview,
		income:       cloneLines(s.Income),
		expenses:     cloneLines(s.Expenses),
		investments:  cloneLines(s.Investments),
		transactions: append([]Transaction(nil), s.Transactions...),
	}
}

// Snapshot returns a copy of the current contents.
func (l *Ledger) Snapshot() Snapshot {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return Snapshot{
		Overview:     l.overview,
		Income:       cloneLines(l.income),
		Expenses:     cloneLines(l.expenses),
		Investments:  cloneLines(l.investments),
		Transactions: append([]Transaction(nil), l.transactions...),
	}
}

func (l *Ledger) Overview() Overview {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.overview
}

func (l *Ledger) Income() []Line {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return cloneLines(l.income)
}

func (l *Ledger) Expenses() []Line {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return cloneLines(l.expenses)
}

func (l *Ledger) Investments() []Line {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return cloneLines(l.investments)
}

func (l *Ledger) Transactions() []Transaction {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]Transaction(nil), l.transactions...)
}

// AddIncome appends an income line and refreshes MonthlyIncome and
// SavingsRate.
func (l *Ledger) AddIncome(category string, amount float64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	lines, err := addLine(l.income, category, amount)
	if err != nil {
		return fmt.Errorf("add income %q: %w", category, err)
	}
	l.income = lines
	l.refreshIncome()
	return nil
}

// DeleteIncome removes the income line for category.
func (l *Ledger) DeleteIncome(category string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	lines, err := deleteLine(l.income, category)
	if err != nil {
		return fmt.Errorf("delete income %q: %w", category, err)
	}
	l.income = lines
	l.refreshIncome()
	return nil
}

// AddExpense appends an expense line and refreshes MonthlyExpenses and
// SavingsRate.
func (l *Ledger) AddExpense(category string, amount float64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	lines, err := addLine(l.expenses, category, amount)
	if err != nil {
		return fmt.Errorf("add expense %q: %w", category, err)
	}
	l.expenses = lines
	l.refreshExpenses()
	return nil
}

// DeleteExpense removes the expense line for category.
func (l *Ledger) DeleteExpense(category string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	lines, err := deleteLine(l.expenses, category)
	if err != nil {
		return fmt.Errorf("delete expense %q: %w", category, err)
	}
	l.expenses = lines
	l.refreshExpenses()
	return nil
}

// AddInvestment appends an investment line and refreshes Investments and
// NetWorth.
func (l *Ledger) AddInvestment(category string, amount float64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	lines, err := addLine(l.investments, category, amount)
	if err != nil {
		return fmt.Errorf("add investment %q: %w", category, err)
	}
	l.investments = lines
	l.refreshInvestments()
	return nil
}

// DeleteInvestment removes the investment line for category.
func (l *Ledger) DeleteInvestment(category string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	lines, err := deleteLine(l.investments, category)
	if err != nil {
		return fmt.Errorf("delete investment %q: %w", category, err)
	}
	l.investments = lines
	l.refreshInvestments()
	return nil
}

// AddTransaction records t as the most recent transaction. The ID is
// assigned by the ledger and returned.
func (l *Ledger) AddTransaction(t Transaction) (int, error) {
	if math.IsNaN(t.Amount) || math.IsInf(t.Amount, 0) {
		return 0, fmt.Errorf("add transaction: %w", ErrInvalidAmount)
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	next := 1
	for _, existing := range l.transactions {
		if existing.ID >= next {
			next = existing.ID + 1
		}
	}
	t.ID = next

	l.transactions = append([]Transaction{t}, l.transactions...)
	if len(l.transactions) > MaxTransactions {
		l.transactions = l.transactions[:MaxTransactions]
	}
	return t.ID, nil
}

// DeleteTransaction removes the transaction with the given id.
func (l *Ledger) DeleteTransaction(id int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, t := range l.transactions {
		if t.ID == id {
			l.transactions = append(l.transactions[:i:i], l.transactions[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("delete transaction %d: %w", id, ErrNotFound)
}

// UpdateOverview overwrites the fields set in p.
func (l *Ledger) UpdateOverview(p OverviewPatch) {
	l.mu.Lock()
	defer l.mu.Unlock()
	o := &l.overview
	setFloat(&o.NetWorth, p.NetWorth)
	setFloat(&o.MonthlyIncome, p.MonthlyIncome)
	setFloat(&o.MonthlyExpenses, p.MonthlyExpenses)
	setFloat(&o.Savings, p.Savings)
	setFloat(&o.Investments, p.Investments)
	setFloat(&o.Debt, p.Debt)
	if p.SavingsRate != nil {
		o.SavingsRate = *p.SavingsRate
	}
	if p.CreditScore != nil {
		o.CreditScore = *p.CreditScore
	}
}

func (l *Ledger) refreshIncome() {
	l.overview.MonthlyIncome = Total(l.income)
	l.overview.SavingsRate = SavingsRate(l.overview.MonthlyIncome, l.overview.MonthlyExpenses)
}

func (l *Ledger) refreshExpenses() {
	l.overview.MonthlyExpenses = Total(l.expenses)
	l.overview.SavingsRate = SavingsRate(l.overview.MonthlyIncome, l.overview.MonthlyExpenses)
}

func (l *Ledger) refreshInvestments() {
	l.overview.Investments = Total(l.investments)
	l.overview.NetWorth = l.overview.Savings + l.overview.Investments - l.overview.Debt
}

func setFloat(dst, src *float64) {
	if src != nil {
		*dst = *src
	}
}
