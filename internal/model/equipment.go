package model

import "time"

// Equipment item statuses.
const (
	EquipmentAvailable   = "available"
	EquipmentInUse       = "in-use"
	EquipmentMaintenance = "maintenance"
)

type Equipment struct {
	Items     []EquipmentItem      `json:"items"`
	Packages  []EquipmentPackage   `json:"packages"`
	Rentals   []EquipmentRental    `json:"rentals"`
	Insurance []EquipmentInsurance `json:"insurance"`
}

type EquipmentItem struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Category     string  `json:"category"` // camera / lens / audio / lighting / grip / other
	SerialNumber string  `json:"serial_number,omitempty"`
	Status       string  `json:"status"` // available / in-use / maintenance
	AssignedTo   string  `json:"assigned_to,omitempty"`
	DailyValue   float64 `json:"daily_value"`
}

type EquipmentPackage struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	ItemIDs []string `json:"item_ids"`
}

type EquipmentRental struct {
	ID        string    `json:"id"`
	Vendor    string    `json:"vendor"`
	ItemIDs   []string  `json:"item_ids"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	DailyCost float64   `json:"daily_cost"`
	Status    string    `json:"status"` // reserved / out / returned
}

type EquipmentInsurance struct {
	ID           string    `json:"id"`
	Provider     string    `json:"provider"`
	PolicyNumber string    `json:"policy_number"`
	Coverage     float64   `json:"coverage"`
	ExpiresAt    time.Time `json:"expires_at"`
}

func (e Equipment) clone() Equipment {
	cp := e
	cp.Items = append([]EquipmentItem(nil), e.Items...)
	cp.Packages = make([]EquipmentPackage, len(e.Packages))
	for i, p := range e.Packages {
		cp.Packages[i] = p
		cp.Packages[i].ItemIDs = append([]string(nil), p.ItemIDs...)
	}
	cp.Rentals = make([]EquipmentRental, len(e.Rentals))
	for i, r := range e.Rentals {
		cp.Rentals[i] = r
		cp.Rentals[i].ItemIDs = append([]string(nil), r.ItemIDs...)
	}
	cp.Insurance = append([]EquipmentInsurance(nil), e.Insurance...)
	return cp
}
