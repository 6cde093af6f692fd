package model

import "time"

// ProductionProject is the root aggregate of one film or documentary
// production. Every dashboard is a view over this value and every edit
// replaces it wholesale.
type ProductionProject struct {
	ID           string           `json:"id"`
	OwnerID      int              `json:"owner_id"`
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	Status       string           `json:"status"` // development / pre-production / production / post-production / released
	Budget       Budget           `json:"budget"`
	Schedule     Schedule         `json:"schedule"`
	Milestones   []Milestone      `json:"milestones"`
	Team         []TeamMember     `json:"team"`
	Equipment    Equipment        `json:"equipment"`
	Legal        LegalCompliance  `json:"legal_compliance"`
	Distribution DistributionPlan `json:"distribution"`
	Documents    []Document       `json:"documents"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// Clone returns a deep copy so callers can hand out snapshots without
// aliasing the stored value.
func (p *ProductionProject) Clone() *ProductionProject {
	cp := *p
	cp.Budget = p.Budget.clone()
	cp.Schedule = p.Schedule.clone()
	cp.Milestones = cloneMilestones(p.Milestones)
	cp.Team = append([]TeamMember(nil), p.Team...)
	cp.Equipment = p.Equipment.clone()
	cp.Legal = p.Legal.clone()
	cp.Distribution = p.Distribution.clone()
	cp.Documents = append([]Document(nil), p.Documents...)
	return &cp
}
