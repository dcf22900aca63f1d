package model

import "time"

// Snapshot summarizes one archived publication of the stock list.
type Snapshot struct {
	ID      int64     `json:"id"`
	TakenAt time.Time `json:"taken_at"`
	Count   int       `json:"count"`
	TopName string    `json:"top_name"`
	TopRate string    `json:"top_rate"`
}
