package model

// Job is a single job record. ID is assigned by the store.
type Job struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Salary float64 `json:"salary"`
}
