package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"wealthwise/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Snapshot persists the record collections between runs. It belongs to the
// presentation layer: the Store itself never reads or writes it, the CLI
// decides when to load and save.
type Snapshot struct {
	db *sql.DB
}

// OpenSnapshot opens or creates the snapshot database at the given path.
func OpenSnapshot(dbPath string) (*Snapshot, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening snapshot db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Snapshot{db: db}, nil
}

// Close closes the snapshot database.
func (sn *Snapshot) Close() error {
	return sn.db.Close()
}

// Save writes the store's current collections, replacing any previous
// snapshot contents in a single transaction.
func (sn *Snapshot) Save(s *Store) error {
	tx, err := sn.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"profile", "accounts", "payments", "goals", "reports"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return err
		}
	}

	p := s.Profile()
	_, err = tx.Exec(`INSERT INTO profile
		(id, monthly_income, mortgage_payment, car_payment, credit_card_payment,
		 student_loan_payment, other_debt_payment)
		VALUES (1, ?, ?, ?, ?, ?, ?)`,
		p.MonthlyIncome, p.MortgagePayment, p.CarPayment, p.CreditCardPayment,
		p.StudentLoanPayment, p.OtherDebtPayment,
	)
	if err != nil {
		return err
	}

	for i, a := range s.Accounts() {
		_, err = tx.Exec(`INSERT INTO accounts (pos, name, credit_limit, balance)
			VALUES (?, ?, ?, ?)`, i, a.Name, a.Limit, a.Balance)
		if err != nil {
			return err
		}
	}

	for i, r := range s.Payments() {
		_, err = tx.Exec(`INSERT INTO payments
			(pos, account_name, amount, due_date, payment_date, is_paid, is_late)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			i, r.AccountName, r.Amount, dateStr(r.DueDate), dateStr(r.PaymentDate),
			boolInt(r.IsPaid), boolInt(r.IsLate),
		)
		if err != nil {
			return err
		}
	}

	for i, g := range s.Goals() {
		_, err = tx.Exec(`INSERT INTO goals
			(pos, goal_id, name, current_amount, target_amount, deadline, category)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			i, g.ID, g.Name, g.CurrentAmount, g.TargetAmount, dateStr(g.Deadline), g.Category,
		)
		if err != nil {
			return err
		}
	}

	for i, r := range s.Reports() {
		_, err = tx.Exec(`INSERT INTO reports
			(pos, month, health_score, debt_to_income, credit_utilization, missed_payments, notes)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			i, r.Month, r.HealthScore, r.DebtToIncome, r.CreditUtilization, r.MissedPayments, r.Notes,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Load reads a previously saved seed from the snapshot. ok is false when
// no snapshot has been written yet (first run).
func (sn *Snapshot) Load() (seed Seed, ok bool, err error) {
	row := sn.db.QueryRow(`SELECT monthly_income, mortgage_payment, car_payment,
		credit_card_payment, student_loan_payment, other_debt_payment FROM profile WHERE id = 1`)
	err = row.Scan(&seed.Profile.MonthlyIncome, &seed.Profile.MortgagePayment,
		&seed.Profile.CarPayment, &seed.Profile.CreditCardPayment,
		&seed.Profile.StudentLoanPayment, &seed.Profile.OtherDebtPayment)
	if err == sql.ErrNoRows {
		return Seed{}, false, nil
	}
	if err != nil {
		return Seed{}, false, err
	}

	if seed.Accounts, err = sn.loadAccounts(); err != nil {
		return Seed{}, false, err
	}
	if seed.Payments, err = sn.loadPayments(); err != nil {
		return Seed{}, false, err
	}
	if seed.Goals, err = sn.loadGoals(); err != nil {
		return Seed{}, false, err
	}
	if seed.Reports, err = sn.loadReports(); err != nil {
		return Seed{}, false, err
	}

	return seed, true, nil
}

func (sn *Snapshot) loadAccounts() ([]model.CreditAccount, error) {
	rows, err := sn.db.Query("SELECT name, credit_limit, balance FROM accounts ORDER BY pos")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var accounts []model.CreditAccount
	for rows.Next() {
		var a model.CreditAccount
		if err := rows.Scan(&a.Name, &a.Limit, &a.Balance); err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

func (sn *Snapshot) loadPayments() ([]model.PaymentRecord, error) {
	rows, err := sn.db.Query(`SELECT account_name, amount, due_date, payment_date,
		is_paid, is_late FROM payments ORDER BY pos`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var payments []model.PaymentRecord
	for rows.Next() {
		var r model.PaymentRecord
		var due, paid sql.NullString
		var isPaid, isLate int
		if err := rows.Scan(&r.AccountName, &r.Amount, &due, &paid, &isPaid, &isLate); err != nil {
			return nil, err
		}
		r.DueDate = parseDate(due)
		r.PaymentDate = parseDate(paid)
		r.IsPaid = isPaid != 0
		r.IsLate = isLate != 0
		payments = append(payments, r)
	}
	return payments, rows.Err()
}

func (sn *Snapshot) loadGoals() ([]model.Goal, error) {
	rows, err := sn.db.Query(`SELECT goal_id, name, current_amount, target_amount,
		deadline, category FROM goals ORDER BY pos`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var goals []model.Goal
	for rows.Next() {
		var g model.Goal
		var deadline, category sql.NullString
		if err := rows.Scan(&g.ID, &g.Name, &g.CurrentAmount, &g.TargetAmount, &deadline, &category); err != nil {
			return nil, err
		}
		g.Deadline = parseDate(deadline)
		if category.Valid {
			g.Category = category.String
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

func (sn *Snapshot) loadReports() ([]model.MonthlyReport, error) {
	rows, err := sn.db.Query(`SELECT month, health_score, debt_to_income,
		credit_utilization, missed_payments, notes FROM reports ORDER BY pos`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var reports []model.MonthlyReport
	for rows.Next() {
		var r model.MonthlyReport
		var notes sql.NullString
		if err := rows.Scan(&r.Month, &r.HealthScore, &r.DebtToIncome,
			&r.CreditUtilization, &r.MissedPayments, &notes); err != nil {
			return nil, err
		}
		if notes.Valid {
			r.Notes = notes.String
		}
		reports = append(reports, r)
	}
	return reports, rows.Err()
}

func dateStr(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("2006-01-02")
}

func parseDate(s sql.NullString) time.Time {
	if !s.Valid || s.String == "" {
		return time.Time{}
	}
	t, _ := time.Parse("2006-01-02", s.String)
	return t
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
