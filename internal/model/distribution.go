package model

import "time"

type DistributionPlan struct {
	Platforms       []Platform       `json:"platforms"`
	Festivals       []Festival       `json:"festivals"`
	MarketingAssets []MarketingAsset `json:"marketing_assets"`
	Timeline        []TimelineEntry  `json:"timeline"`
}

type Platform struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`   // streaming / broadcast / theatrical / educational
	Status      string    `json:"status"` // targeted / submitted / accepted / rejected / live
	ReleaseDate time.Time `json:"release_date,omitempty"`
}

type Festival struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Deadline    time.Time `json:"deadline"`
	SubmittedAt time.Time `json:"submitted_at,omitempty"`
	EntryFee    float64   `json:"entry_fee"`
	Status      string    `json:"status"` // considering / submitted / selected / declined
}

type MarketingAsset struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Type   string `json:"type"`   // trailer / poster / still / social
	Status string `json:"status"` // planned / in-production / delivered
}

type TimelineEntry struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Date        time.Time `json:"date"`
	Description string    `json:"description,omitempty"`
}

func (d DistributionPlan) clone() DistributionPlan {
	cp := d
	cp.Platforms = append([]Platform(nil), d.Platforms...)
	cp.Festivals = append([]Festival(nil), d.Festivals...)
	cp.MarketingAssets = append([]MarketingAsset(nil), d.MarketingAssets...)
	cp.Timeline = append([]TimelineEntry(nil), d.Timeline...)
	return cp
}
