package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

type Equipment struct {
	ID        uint64       `db:"id"`
	Name      string       `db:"name"`
	Category  string       `db:"category"`
	Price     null.Float64 `db:"price"`
	CreatedAt time.Time    `db:"created_at"`
	UpdatedAt time.Time    `db:"updated_at"`
}
