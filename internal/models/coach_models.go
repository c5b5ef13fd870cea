package models

// Coach represents a trainer employed by the fitness center.
type Coach struct {
	ID             string `json:"id" db:"id"`
	Name           string `json:"name" db:"name"`
	Specialization string `json:"specialization" db:"specialization"`
}
