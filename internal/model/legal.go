package model

import "time"

type LegalCompliance struct {
	Checklist []ChecklistItem `json:"checklist"`
	Releases  []Release       `json:"releases"`
	Permits   []Permit        `json:"permits"`
	Licenses  []License       `json:"licenses"`
}

// ChecklistItem is a boolean-completable legal or administrative task.
type ChecklistItem struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Category      string    `json:"category,omitempty"`
	Completed     bool      `json:"completed"`
	CompletedBy   string    `json:"completed_by,omitempty"`
	CompletedDate time.Time `json:"completed_date,omitempty"`
}

type Release struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"` // appearance / location / material
	Subject    string    `json:"subject"`
	SignedDate time.Time `json:"signed_date,omitempty"`
	Status     string    `json:"status"` // pending / signed / declined
}

type Permit struct {
	ID        string    `json:"id"`
	Authority string    `json:"authority"`
	Location  string    `json:"location"`
	ValidFrom time.Time `json:"valid_from"`
	ValidTo   time.Time `json:"valid_to"`
	Status    string    `json:"status"` // applied / granted / denied / expired
}

type License struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"` // music / footage / image
	Licensor  string    `json:"licensor"`
	Fee       float64   `json:"fee"`
	ExpiresAt time.Time `json:"expires_at,omitempty"`
	Status    string    `json:"status"` // negotiating / cleared / lapsed
}

func (l LegalCompliance) clone() LegalCompliance {
	cp := l
	cp.Checklist = append([]ChecklistItem(nil), l.Checklist...)
	cp.Releases = append([]Release(nil), l.Releases...)
	cp.Permits = append([]Permit(nil), l.Permits...)
	cp.Licenses = append([]License(nil), l.Licenses...)
	return cp
}
