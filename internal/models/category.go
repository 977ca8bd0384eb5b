package models

import "time"

type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Color     *string   `json:"color,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// swagger:model CreateCategoryRequest
type CreateCategoryRequest struct {
	Name  string  `json:"name"  example:"Музыка"`
	Slug  string  `json:"slug"  example:"music"`
	Color *string `json:"color,omitempty" example:"#ff00aa"`
}
