package finance

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/aether/internal/finance"
	"github.com/abhisek/aether/internal/screen"
	"github.com/abhisek/aether/internal/ui/components"
	"github.com/abhisek/aether/internal/ui/layout"
	"github.com/abhisek/aether/internal/ui/theme"
)

type tab int

const (
	tabOverview tab = iota
	tabIncome
	tabExpenses
	tabInvestments
	tabTransactions
	numTabs
)

var tabLabels = []string{"Overview", "Income", "Expenses", "Investments", "Transactions"}

// FinanceScreen browses and edits the in-memory ledger.
type FinanceScreen struct {
	ledger   *finance.Ledger
	tab      tab
	selected int
	form     *components.Form
	overview bool // form edits the overview
	notice   string
	bad      bool
	now      func() time.Time
}

var _ screen.Screen = (*FinanceScreen)(nil)
var _ screen.KeyHintProvider = (*FinanceScreen)(nil)
var _ screen.EscapeCapturer = (*FinanceScreen)(nil)

func New(ledger *finance.Ledger) *FinanceScreen {
	return &FinanceScreen{ledger: ledger, now: time.Now}
}

func (s *FinanceScreen) Init() tea.Cmd {
	return nil
}

func (s *FinanceScreen) Title() string {
	return "Financials"
}

func (s *FinanceScreen) CapturesEscape() bool {
	return s.form != nil
}

func (s *FinanceScreen) KeyHints() []layout.KeyHint {
	if s.form != nil {
		return []layout.KeyHint{
			{Key: "Tab", Description: "Next field"},
			{Key: "Enter", Description: "Save"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	hints := []layout.KeyHint{{Key: "←→", Description: "Tabs"}}
	if s.tab == tabOverview {
		hints = append(hints, layout.KeyHint{Key: "e", Description: "Edit"})
	} else {
		hints = append(hints,
			layout.KeyHint{Key: "↑↓", Description: "Select"},
			layout.KeyHint{Key: "a", Description: "Add"},
			layout.KeyHint{Key: "d", Description: "Delete"},
		)
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (s *FinanceScreen) rows() int {
	switch s.tab {
	case tabIncome:
		return len(s.ledger.Income())
	case tabExpenses:
		return len(s.ledger.Expenses())
	case tabInvestments:
		return len(s.ledger.Investments())
	case tabTransactions:
		return len(s.ledger.Transactions())
	}
	return 0
}

func (s *FinanceScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.form != nil {
		return s.updateForm(msg)
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "tab", "right", "l":
		s.switchTab(1)
	case "shift+tab", "left", "h":
		s.switchTab(-1)
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < s.rows()-1 {
			s.selected++
		}
	case "d", "delete":
		s.deleteSelected()
	case "a":
		return s, s.openForm()
	case "e":
		if s.tab == tabOverview {
			s.openOverviewForm()
		}
	}
	return s, nil
}

func (s *FinanceScreen) switchTab(delta int) {
	s.tab = tab(components.Cycle(int(s.tab), delta, int(numTabs)))
	s.selected = 0
	s.notice = ""
}

func (s *FinanceScreen) setNotice(text string, bad bool) {
	s.notice = text
	s.bad = bad
}

func (s *FinanceScreen) deleteSelected() {
	var err error
	var what string
	switch s.tab {
	case tabIncome, tabExpenses, tabInvestments:
		lines := s.lines()
		if s.selected >= len(lines) {
			return
		}
		what = lines[s.selected].Category
		switch s.tab {
		case tabIncome:
			err = s.ledger.DeleteIncome(what)
		case tabExpenses:
			err = s.ledger.DeleteExpense(what)
		default:
			err = s.ledger.DeleteInvestment(what)
		}
	case tabTransactions:
		txs := s.ledger.Transactions()
		if s.selected >= len(txs) {
			return
		}
		what = txs[s.selected].Description
		err = s.ledger.DeleteTransaction(txs[s.selected].ID)
	default:
		return
	}

	if err != nil {
		s.setNotice(err.Error(), true)
		return
	}
	s.setNotice("Deleted "+what, false)
	if n := s.rows(); s.selected >= n && n > 0 {
		s.selected = n - 1
	}
}

func (s *FinanceScreen) openForm() tea.Cmd {
	var f components.Form
	switch s.tab {
	case tabIncome, tabExpenses, tabInvestments:
		f = components.NewForm("Add "+strings.ToLower(tabLabels[s.tab]),
			components.FormField{Label: "Category", Placeholder: "e.g. Bonus"},
			components.FormField{Label: "Amount", Placeholder: "0", Numeric: true},
		)
	case tabTransactions:
		f = components.NewForm("Add transaction",
			components.FormField{Label: "Description", Placeholder: "e.g. Grocery Store"},
			components.FormField{Label: "Amount", Placeholder: "negative for spending"},
			components.FormField{Label: "Category", Placeholder: "e.g. Food"},
		)
	default:
		return nil
	}
	s.form = &f
	s.notice = ""
	return nil
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (s *FinanceScreen) openOverviewForm() {
	o := s.ledger.Overview()
	f := components.NewForm("Edit overview",
		components.FormField{Label: "Income", Numeric: true},
		components.FormField{Label: "Expenses", Numeric: true},
		components.FormField{Label: "Savings", Numeric: true},
		components.FormField{Label: "Investments", Numeric: true},
		components.FormField{Label: "Debt", Numeric: true},
		components.FormField{Label: "Credit score", Placeholder: "300-850", Numeric: true},
	).Prefill(
		money(o.MonthlyIncome), money(o.MonthlyExpenses), money(o.Savings),
		money(o.Investments), money(o.Debt), strconv.Itoa(o.CreditScore),
	)
	s.form = &f
	s.overview = true
	s.notice = ""
}

// submitOverview patches the overview. A blank field leaves its value alone.
func (s *FinanceScreen) submitOverview(v []string) error {
	var p finance.OverviewPatch
	for i, dst := range []**float64{&p.MonthlyIncome, &p.MonthlyExpenses, &p.Savings, &p.Investments, &p.Debt} {
		if v[i] == "" {
			continue
		}
		n, err := strconv.ParseFloat(v[i], 64)
		if err != nil {
			return errAmount
		}
		*dst = &n
	}
	if v[5] != "" {
		score, err := strconv.Atoi(v[5])
		if err != nil || score < 300 || score > 850 {
			return errors.New("credit score must be between 300 and 850")
		}
		p.CreditScore = &score
	}
	s.ledger.UpdateOverview(p)
	s.setNotice("Overview updated", false)
	return nil
}

func (s *FinanceScreen) updateForm(msg tea.Msg) (screen.Screen, tea.Cmd) {
	f, cmd := s.form.Update(msg)
	switch f.State() {
	case components.FormCancelled:
		s.form = nil
		s.overview = false
		return s, nil
	case components.FormSubmitted:
		submit := s.submit
		if s.overview {
			submit = s.submitOverview
		}
		if err := submit(f.Values()); err != nil {
			f = f.Reopen(err.Error())
			s.form = &f
			return s, nil
		}
		s.form = nil
		s.overview = false
		return s, nil
	}
	s.form = &f
	return s, cmd
}

var errAmount = errors.New("amount must be a number")

func (s *FinanceScreen) submit(values []string) error {
	if s.tab == tabTransactions {
		amount, err := strconv.ParseFloat(values[1], 64)
		if err != nil {
			return errAmount
		}
		if values[0] == "" {
			return errors.New("description is required")
		}
		_, err = s.ledger.AddTransaction(finance.Transaction{
			Description: values[0],
			Amount:      amount,
			Category:    values[2],
			Date:        s.now().Format("Jan 02"),
		})
		if err == nil {
			s.setNotice("Added "+values[0], false)
			s.selected = 0
		}
		return err
	}

	amount, err := strconv.ParseFloat(values[1], 64)
	if err != nil {
		return errAmount
	}
	switch s.tab {
	case tabIncome:
		err = s.ledger.AddIncome(values[0], amount)
	case tabExpenses:
		err = s.ledger.AddExpense(values[0], amount)
	case tabInvestments:
		err = s.ledger.AddInvestment(values[0], amount)
	}
	if err == nil {
		s.setNotice("Added "+values[0], false)
	}
	return err
}

func (s *FinanceScreen) lines() []finance.Line {
	switch s.tab {
	case tabIncome:
		return s.ledger.Income()
	case tabExpenses:
		return s.ledger.Expenses()
	case tabInvestments:
		return s.ledger.Investments()
	}
	return nil
}

func (s *FinanceScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(components.Center(components.Tabs(tabLabels, int(s.tab)), width))
	b.WriteString("\n\n")

	var body string
	switch {
	case s.form != nil:
		body = components.Card(s.form.View(), cw)
	case s.tab == tabOverview:
		body = s.renderOverview(cw)
	case s.tab == tabTransactions:
		body = s.renderTransactions(cw)
	default:
		body = s.renderLines(cw)
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, body))
	b.WriteString("\n")

	if s.notice != "" {
		style := theme.Hint
		if s.bad {
			style = theme.Failure
		}
		b.WriteString("\n")
		b.WriteString(components.Center(style.Render(s.notice), width))
	}

	out, _ := components.Scroll(b.String(), 0, height)
	return out
}

func (s *FinanceScreen) renderOverview(cw int) string {
	o := s.ledger.Overview()
	rows := [][2]string{
		{"Net Worth", finance.FormatMoney(o.NetWorth)},
		{"Monthly Income", finance.FormatMoney(o.MonthlyIncome)},
		{"Monthly Expenses", finance.FormatMoney(o.MonthlyExpenses)},
		{"Savings", finance.FormatMoney(o.Savings)},
		{"Investments", finance.FormatMoney(o.Investments)},
		{"Debt", finance.FormatMoney(o.Debt)},
		{"Savings Rate", fmt.Sprintf("%d%%", o.SavingsRate)},
		{"Credit Score", strconv.Itoa(o.CreditScore)},
	}
	label := lipgloss.NewStyle().Width(20).Foreground(theme.TextDim)
	var b strings.Builder
	for _, r := range rows {
		b.WriteString(label.Render(r[0]))
		b.WriteString(theme.Body.Bold(true).Render(r[1]))
		b.WriteString("\n")
	}
	bar := components.NewProgressBar("Savings rate", float64(o.SavingsRate)/100, true, cw-6)
	bar.Color = theme.Success
	b.WriteString("\n")
	b.WriteString(bar.View())
	return components.Card(b.String(), cw)
}

func (s *FinanceScreen) renderLines(cw int) string {
	lines := s.lines()
	if len(lines) == 0 {
		return components.Card(theme.Hint.Render("Nothing here yet. Press a to add."), cw)
	}

	var b strings.Builder
	for i, l := range lines {
		prefix := "  "
		style := theme.Unselected
		if i == s.selected {
			prefix = "▸ "
			style = theme.Selected
		}
		b.WriteString(style.Render(fmt.Sprintf("%s%-18s %12s %7s",
			prefix, l.Category, finance.FormatMoney(l.Amount), finance.FormatPercent(l.Percentage))))
		b.WriteString("\n")
		bar := components.NewProgressBar("", l.Percentage/100, false, cw-8)
		bar.Color = theme.Series[i%len(theme.Series)]
		b.WriteString("  " + bar.View())
		b.WriteString("\n")
	}
	b.WriteString(theme.Heading.Render(fmt.Sprintf("  Total %s", finance.FormatMoney(finance.Total(lines)))))
	return components.Card(b.String(), cw)
}

func (s *FinanceScreen) renderTransactions(cw int) string {
	txs := s.ledger.Transactions()
	if len(txs) == 0 {
		return components.Card(theme.Hint.Render("No transactions. Press a to add one."), cw)
	}

	var b strings.Builder
	for i, t := range txs {
		prefix := "  "
		style := theme.Unselected
		if i == s.selected {
			prefix = "▸ "
			style = theme.Selected
		}
		amount := lipgloss.NewStyle().Foreground(theme.Success)
		if t.Amount < 0 {
			amount = lipgloss.NewStyle().Foreground(theme.Error)
		}
		b.WriteString(style.Render(fmt.Sprintf("%s%-22s %-14s %-12s ", prefix, t.Description, t.Category, t.Date)))
		b.WriteString(amount.Render(fmt.Sprintf("%12s", finance.FormatMoney(t.Amount))))
		b.WriteString("\n")
	}
	return components.Card(strings.TrimRight(b.String(), "\n"), cw)
}
