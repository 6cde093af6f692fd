package model

import "time"

// Task statuses.
const (
	TaskStatusNotStarted = "not-started"
	TaskStatusInProgress = "in-progress"
	TaskStatusCompleted  = "completed"
	TaskStatusBlocked    = "blocked"
)

// Shooting day statuses.
const (
	ShootingDayPlanned   = "planned"
	ShootingDayConfirmed = "confirmed"
	ShootingDayCompleted = "completed"
	ShootingDayCancelled = "cancelled"
)

type Schedule struct {
	StartDate    time.Time     `json:"start_date"`
	EndDate      time.Time     `json:"end_date"`
	Phases       []Phase       `json:"phases"`
	ShootingDays []ShootingDay `json:"shooting_days"`
	Conflicts    []Conflict    `json:"conflicts"`
}

type Phase struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Tasks     []Task    `json:"tasks"`
}

type Task struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Status        string    `json:"status"` // not-started / in-progress / completed / blocked
	AssigneeID    string    `json:"assignee_id"`
	DueDate       time.Time `json:"due_date"`
	CompletedBy   string    `json:"completed_by,omitempty"`
	CompletedDate time.Time `json:"completed_date,omitempty"`
}

type ShootingDay struct {
	ID       string    `json:"id"`
	Date     time.Time `json:"date"`
	Location string    `json:"location"`
	Status   string    `json:"status"` // planned / confirmed / completed / cancelled
	CrewIDs  []string  `json:"crew_ids"`
	Notes    string    `json:"notes,omitempty"`
}

type Conflict struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Severity    string    `json:"severity"` // low / medium / high
}

func (s Schedule) clone() Schedule {
	cp := s
	cp.Phases = make([]Phase, len(s.Phases))
	for i, ph := range s.Phases {
		cp.Phases[i] = ph
		cp.Phases[i].Tasks = append([]Task(nil), ph.Tasks...)
	}
	cp.ShootingDays = make([]ShootingDay, len(s.ShootingDays))
	for i, d := range s.ShootingDays {
		cp.ShootingDays[i] = d
		cp.ShootingDays[i].CrewIDs = append([]string(nil), d.CrewIDs...)
	}
	cp.Conflicts = append([]Conflict(nil), s.Conflicts...)
	return cp
}
