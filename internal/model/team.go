package model

type TeamMember struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Role       string  `json:"role"`
	Department string  `json:"department"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone,omitempty"`
	DayRate    float64 `json:"day_rate"`
	Status     string  `json:"status"` // active / on-hold / wrapped
}
