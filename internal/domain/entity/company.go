package entity

import "time"

// Company representa un estudio contable (tenant). Sus clientes y usuarios cuelgan de él.
type Company struct {
	ID        string
	Name      string
	RUT       string // forma canónica 12.345.678-5
	Email     string
	Status    string // active, suspended
	CreatedAt time.Time
	UpdatedAt time.Time
}
