package model

import "time"

type Document struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Type       string    `json:"type"`   // script / contract / call-sheet / report / other
	Status     string    `json:"status"` // draft / review / final / archived
	Version    int       `json:"version"`
	UploadedBy string    `json:"uploaded_by"`
	UploadedAt time.Time `json:"uploaded_at"`
}
