package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"callsheet/internal/model"
)

// Budget ------------------------------------------------------------------

func (s *ProjectService) SetTotalBudget(ctx context.Context, projectID string, total float64, currency string) error {
	_, err := s.mutate(ctx, projectID, "budget", "update", func(p *model.ProductionProject) error {
		p.Budget.TotalBudget = total
		if currency != "" {
			p.Budget.Currency = currency
		}
		return nil
	})
	return err
}

func (s *ProjectService) AddExpense(ctx context.Context, projectID string, e model.Expense) (model.Expense, error) {
	e.ID = uuid.NewString()
	if e.Status == "" {
		e.Status = model.ExpenseStatusPending
	}
	if e.Date.IsZero() {
		e.Date = s.now()
	}
	_, err := s.mutate(ctx, projectID, "budget", "create", func(p *model.ProductionProject) error {
		p.Budget.Expenses = append(p.Budget.Expenses, e)
		return nil
	})
	return e, err
}

func (s *ProjectService) UpdateExpense(ctx context.Context, projectID string, e model.Expense) error {
	_, err := s.mutate(ctx, projectID, "budget", "update", func(p *model.ProductionProject) error {
		if !replaceByID(p.Budget.Expenses, e.ID, expenseID, e) {
			return ErrRecordNotFound
		}
		return nil
	})
	return err
}

func (s *ProjectService) DeleteExpense(ctx context.Context, projectID, id string) error {
	_, err := s.mutate(ctx, projectID, "budget", "delete", func(p *model.ProductionProject) error {
		rest, ok := removeByID(p.Budget.Expenses, id, expenseID)
		if !ok {
			return ErrRecordNotFound
		}
		p.Budget.Expenses = rest
		return nil
	})
	return err
}

// Schedule ----------------------------------------------------------------

func (s *ProjectService) AddShootingDay(ctx context.Context, projectID string, d model.ShootingDay) (model.ShootingDay, error) {
	d.ID = uuid.NewString()
	if d.Status == "" {
		d.Status = model.ShootingDayPlanned
	}
	_, err := s.mutate(ctx, projectID, "schedule", "create", func(p *model.ProductionProject) error {
		p.Schedule.ShootingDays = append(p.Schedule.ShootingDays, d)
		return nil
	})
	return d, err
}

func (s *ProjectService) UpdateShootingDay(ctx context.Context, projectID string, d model.ShootingDay) error {
	_, err := s.mutate(ctx, projectID, "schedule", "update", func(p *model.ProductionProject) error {
		if !replaceByID(p.Schedule.ShootingDays, d.ID, shootingDayID, d) {
			return ErrRecordNotFound
		}
		return nil
	})
	return err
}

func (s *ProjectService) DeleteShootingDay(ctx context.Context, projectID, id string) error {
	_, err := s.mutate(ctx, projectID, "schedule", "delete", func(p *model.ProductionProject) error {
		rest, ok := removeByID(p.Schedule.ShootingDays, id, shootingDayID)
		if !ok {
			return ErrRecordNotFound
		}
		p.Schedule.ShootingDays = rest
		return nil
	})
	return err
}

func (s *ProjectService) AddPhase(ctx context.Context, projectID string, ph model.Phase) (model.Phase, error) {
	ph.ID = uuid.NewString()
	_, err := s.mutate(ctx, projectID, "schedule", "create", func(p *model.ProductionProject) error {
		p.Schedule.Phases = append(p.Schedule.Phases, ph)
		return nil
	})
	return ph, err
}

// UpdatePhase replaces phase metadata but keeps the existing task list;
// tasks have their own operations.
func (s *ProjectService) UpdatePhase(ctx context.Context, projectID string, ph model.Phase) error {
	_, err := s.mutate(ctx, projectID, "schedule", "update", func(p *model.ProductionProject) error {
		for i := range p.Schedule.Phases {
			if p.Schedule.Phases[i].ID == ph.ID {
				ph.Tasks = p.Schedule.Phases[i].Tasks
				p.Schedule.Phases[i] = ph
				return nil
			}
		}
		return ErrRecordNotFound
	})
	return err
}

func (s *ProjectService) DeletePhase(ctx context.Context, projectID, id string) error {
	_, err := s.mutate(ctx, projectID, "schedule", "delete", func(p *model.ProductionProject) error {
		rest, ok := removeByID(p.Schedule.Phases, id, phaseID)
		if !ok {
			return ErrRecordNotFound
		}
		p.Schedule.Phases = rest
		return nil
	})
	return err
}

// Tasks -------------------------------------------------------------------

func (s *ProjectService) AddTask(ctx context.Context, projectID, phID string, t model.Task) (model.Task, error) {
	t.ID = uuid.NewString()
	if t.Status == "" {
		t.Status = model.TaskStatusNotStarted
	}
	_, err := s.mutate(ctx, projectID, "tasks", "create", func(p *model.ProductionProject) error {
		for i := range p.Schedule.Phases {
			if p.Schedule.Phases[i].ID == phID {
				p.Schedule.Phases[i].Tasks = append(p.Schedule.Phases[i].Tasks, t)
				return nil
			}
		}
		return ErrRecordNotFound
	})
	return t, err
}

// UpdateTask replaces the task. Moving to completed stamps CompletedBy and
// CompletedDate at the moment of the transition.
func (s *ProjectService) UpdateTask(ctx context.Context, projectID, phID, actor string, t model.Task) error {
	_, err := s.mutate(ctx, projectID, "tasks", "update", func(p *model.ProductionProject) error {
		for i := range p.Schedule.Phases {
			if p.Schedule.Phases[i].ID != phID {
				continue
			}
			tasks := p.Schedule.Phases[i].Tasks
			for j := range tasks {
				if tasks[j].ID != t.ID {
					continue
				}
				if t.Status == model.TaskStatusCompleted && tasks[j].Status != model.TaskStatusCompleted {
					t.CompletedBy = actor
					t.CompletedDate = s.now()
				}
				tasks[j] = t
				return nil
			}
			return ErrRecordNotFound
		}
		return ErrRecordNotFound
	})
	return err
}

func (s *ProjectService) DeleteTask(ctx context.Context, projectID, phID, taskID string) error {
	_, err := s.mutate(ctx, projectID, "tasks", "delete", func(p *model.ProductionProject) error {
		for i := range p.Schedule.Phases {
			if p.Schedule.Phases[i].ID != phID {
				continue
			}
			rest, ok := removeByID(p.Schedule.Phases[i].Tasks, taskID, taskIDOf)
			if !ok {
				return ErrRecordNotFound
			}
			p.Schedule.Phases[i].Tasks = rest
			return nil
		}
		return ErrRecordNotFound
	})
	return err
}

// Milestones --------------------------------------------------------------

func (s *ProjectService) AddMilestone(ctx context.Context, projectID string, m model.Milestone) (model.Milestone, error) {
	m.ID = uuid.NewString()
	if m.Status == "" {
		m.Status = model.MilestoneStatusPending
	}
	_, err := s.mutate(ctx, projectID, "milestones", "create", func(p *model.ProductionProject) error {
		p.Milestones = append(p.Milestones, m)
		return nil
	})
	return m, err
}

func (s *ProjectService) UpdateMilestone(ctx context.Context, projectID, actor string, m model.Milestone) error {
	_, err := s.mutate(ctx, projectID, "milestones", "update", func(p *model.ProductionProject) error {
		for i := range p.Milestones {
			if p.Milestones[i].ID != m.ID {
				continue
			}
			if m.Status == model.MilestoneStatusCompleted && p.Milestones[i].Status != model.MilestoneStatusCompleted {
				m.CompletedBy = actor
				m.CompletedDate = s.now()
			}
			p.Milestones[i] = m
			return nil
		}
		return ErrRecordNotFound
	})
	return err
}

func (s *ProjectService) DeleteMilestone(ctx context.Context, projectID, id string) error {
	_, err := s.mutate(ctx, projectID, "milestones", "delete", func(p *model.ProductionProject) error {
		rest, ok := removeByID(p.Milestones, id, milestoneID)
		if !ok {
			return ErrRecordNotFound
		}
		p.Milestones = rest
		return nil
	})
	return err
}

// Team --------------------------------------------------------------------

func (s *ProjectService) AddTeamMember(ctx context.Context, projectID string, m model.TeamMember) (model.TeamMember, error) {
	m.ID = uuid.NewString()
	if m.Status == "" {
		m.Status = "active"
	}
	_, err := s.mutate(ctx, projectID, "team", "create", func(p *model.ProductionProject) error {
		p.Team = append(p.Team, m)
		return nil
	})
	return m, err
}

func (s *ProjectService) UpdateTeamMember(ctx context.Context, projectID string, m model.TeamMember) error {
	_, err := s.mutate(ctx, projectID, "team", "update", func(p *model.ProductionProject) error {
		if !replaceByID(p.Team, m.ID, teamMemberID, m) {
			return ErrRecordNotFound
		}
		return nil
	})
	return err
}

func (s *ProjectService) DeleteTeamMember(ctx context.Context, projectID, id string) error {
	_, err := s.mutate(ctx, projectID, "team", "delete", func(p *model.ProductionProject) error {
		rest, ok := removeByID(p.Team, id, teamMemberID)
		if !ok {
			return ErrRecordNotFound
		}
		p.Team = rest
		return nil
	})
	return err
}

// Equipment ---------------------------------------------------------------

func (s *ProjectService) AddEquipmentItem(ctx context.Context, projectID string, it model.EquipmentItem) (model.EquipmentItem, error) {
	it.ID = uuid.NewString()
	if it.Status == "" {
		it.Status = model.EquipmentAvailable
	}
	_, err := s.mutate(ctx, projectID, "equipment", "create", func(p *model.ProductionProject) error {
		p.Equipment.Items = append(p.Equipment.Items, it)
		return nil
	})
	return it, err
}

func (s *ProjectService) UpdateEquipmentItem(ctx context.Context, projectID string, it model.EquipmentItem) error {
	_, err := s.mutate(ctx, projectID, "equipment", "update", func(p *model.ProductionProject) error {
		if !replaceByID(p.Equipment.Items, it.ID, equipmentItemID, it) {
			return ErrRecordNotFound
		}
		return nil
	})
	return err
}

func (s *ProjectService) DeleteEquipmentItem(ctx context.Context, projectID, id string) error {
	_, err := s.mutate(ctx, projectID, "equipment", "delete", func(p *model.ProductionProject) error {
		rest, ok := removeByID(p.Equipment.Items, id, equipmentItemID)
		if !ok {
			return ErrRecordNotFound
		}
		p.Equipment.Items = rest
		return nil
	})
	return err
}

// Legal checklist ---------------------------------------------------------

func (s *ProjectService) AddChecklistItem(ctx context.Context, projectID string, it model.ChecklistItem) (model.ChecklistItem, error) {
	it.ID = uuid.NewString()
	_, err := s.mutate(ctx, projectID, "legal", "create", func(p *model.ProductionProject) error {
		p.Legal.Checklist = append(p.Legal.Checklist, it)
		return nil
	})
	return it, err
}

// UpdateChecklistItem replaces the item, stamping completion metadata on
// the false -> true transition.
func (s *ProjectService) UpdateChecklistItem(ctx context.Context, projectID, actor string, it model.ChecklistItem) error {
	_, err := s.mutate(ctx, projectID, "legal", "update", func(p *model.ProductionProject) error {
		for i := range p.Legal.Checklist {
			if p.Legal.Checklist[i].ID != it.ID {
				continue
			}
			if it.Completed && !p.Legal.Checklist[i].Completed {
				it.CompletedBy = actor
				it.CompletedDate = s.now()
			}
			p.Legal.Checklist[i] = it
			return nil
		}
		return ErrRecordNotFound
	})
	return err
}

func (s *ProjectService) DeleteChecklistItem(ctx context.Context, projectID, id string) error {
	_, err := s.mutate(ctx, projectID, "legal", "delete", func(p *model.ProductionProject) error {
		rest, ok := removeByID(p.Legal.Checklist, id, checklistItemID)
		if !ok {
			return ErrRecordNotFound
		}
		p.Legal.Checklist = rest
		return nil
	})
	return err
}

// Documents ---------------------------------------------------------------

func (s *ProjectService) AddDocument(ctx context.Context, projectID string, d model.Document) (model.Document, error) {
	d.ID = uuid.NewString()
	if d.Status == "" {
		d.Status = "draft"
	}
	if d.Version == 0 {
		d.Version = 1
	}
	d.UploadedAt = s.now()
	_, err := s.mutate(ctx, projectID, "documents", "create", func(p *model.ProductionProject) error {
		p.Documents = append(p.Documents, d)
		return nil
	})
	return d, err
}

func (s *ProjectService) UpdateDocument(ctx context.Context, projectID string, d model.Document) error {
	_, err := s.mutate(ctx, projectID, "documents", "update", func(p *model.ProductionProject) error {
		if !replaceByID(p.Documents, d.ID, documentID, d) {
			return ErrRecordNotFound
		}
		return nil
	})
	return err
}

func (s *ProjectService) DeleteDocument(ctx context.Context, projectID, id string) error {
	_, err := s.mutate(ctx, projectID, "documents", "delete", func(p *model.ProductionProject) error {
		rest, ok := removeByID(p.Documents, id, documentID)
		if !ok {
			return ErrRecordNotFound
		}
		p.Documents = rest
		return nil
	})
	return err
}

// Whole-section replacement ------------------------------------------------

// ReplaceSection swaps an entire secondary collection in one call, the way
// the dashboard forms hand back a whole edited section. Primary
// collections with their own operations are not accepted here.
func (s *ProjectService) ReplaceSection(ctx context.Context, projectID, section string, raw json.RawMessage) error {
	_, err := s.mutate(ctx, projectID, section, "update", func(p *model.ProductionProject) error {
		switch section {
		case "releases":
			return unmarshalInto(raw, &p.Legal.Releases)
		case "permits":
			return unmarshalInto(raw, &p.Legal.Permits)
		case "licenses":
			return unmarshalInto(raw, &p.Legal.Licenses)
		case "packages":
			return unmarshalInto(raw, &p.Equipment.Packages)
		case "rentals":
			return unmarshalInto(raw, &p.Equipment.Rentals)
		case "insurance":
			return unmarshalInto(raw, &p.Equipment.Insurance)
		case "platforms":
			return unmarshalInto(raw, &p.Distribution.Platforms)
		case "festivals":
			return unmarshalInto(raw, &p.Distribution.Festivals)
		case "marketing-assets":
			return unmarshalInto(raw, &p.Distribution.MarketingAssets)
		case "distribution-timeline":
			return unmarshalInto(raw, &p.Distribution.Timeline)
		case "conflicts":
			return unmarshalInto(raw, &p.Schedule.Conflicts)
		default:
			return fmt.Errorf("unknown section %q", section)
		}
	})
	return err
}

func unmarshalInto[T any](raw json.RawMessage, dst *[]T) error {
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return fmt.Errorf("invalid section payload: %w", err)
	}
	for i := range items {
		if idOf := sectionItemID(&items[i]); idOf != nil && *idOf == "" {
			*idOf = uuid.NewString()
		}
	}
	*dst = items
	return nil
}

// sectionItemID points at the ID field of known section records so blank
// ids get generated on replacement.
func sectionItemID(v any) *string {
	switch it := v.(type) {
	case *model.Release:
		return &it.ID
	case *model.Permit:
		return &it.ID
	case *model.License:
		return &it.ID
	case *model.EquipmentPackage:
		return &it.ID
	case *model.EquipmentRental:
		return &it.ID
	case *model.EquipmentInsurance:
		return &it.ID
	case *model.Platform:
		return &it.ID
	case *model.Festival:
		return &it.ID
	case *model.MarketingAsset:
		return &it.ID
	case *model.TimelineEntry:
		return &it.ID
	case *model.Conflict:
		return &it.ID
	default:
		return nil
	}
}

// ID accessors for the generic helpers.
func expenseID(e model.Expense) string             { return e.ID }
func shootingDayID(d model.ShootingDay) string     { return d.ID }
func phaseID(p model.Phase) string                 { return p.ID }
func taskIDOf(t model.Task) string                 { return t.ID }
func milestoneID(m model.Milestone) string         { return m.ID }
func teamMemberID(m model.TeamMember) string       { return m.ID }
func equipmentItemID(i model.EquipmentItem) string { return i.ID }
func checklistItemID(i model.ChecklistItem) string { return i.ID }
func documentID(d model.Document) string           { return d.ID }
