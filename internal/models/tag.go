package models

import "time"

type Tag struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}

// swagger:model CreateTagRequest
type CreateTagRequest struct {
	Name string `json:"name" example:"Ретровейв"`
	Slug string `json:"slug" example:"retrowave"`
}
