package dto

import "time"

type CreateEquipmentDTO struct {
	Name     string   `json:"name" validate:"required,max=255"`
	Category string   `json:"category" validate:"max=100"`
	Price    *float64 `json:"price" validate:"omitempty,gte=0"`
}

type UpdateEquipmentDTO struct {
	Name     *string  `json:"name" validate:"omitempty,max=255"`
	Category *string  `json:"category" validate:"omitempty,max=100"`
	Price    *float64 `json:"price" validate:"omitempty,gte=0"`
}

type EquipmentDTO struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Price     *float64  `json:"price"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
