package model

import "time"

// Expense statuses. Only approved and reimbursed expenses count as spent.
const (
	ExpenseStatusPending    = "pending"
	ExpenseStatusApproved   = "approved"
	ExpenseStatusReimbursed = "reimbursed"
	ExpenseStatusRejected   = "rejected"
)

type Budget struct {
	TotalBudget float64   `json:"total_budget"`
	Currency    string    `json:"currency"`
	Expenses    []Expense `json:"expenses"`
}

type Expense struct {
	ID          string    `json:"id"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
	Status      string    `json:"status"` // pending / approved / reimbursed / rejected
	SubmittedBy string    `json:"submitted_by"`
}

func (b Budget) clone() Budget {
	cp := b
	cp.Expenses = append([]Expense(nil), b.Expenses...)
	return cp
}
