package models

import "time"

type Post struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Slug       string    `json:"slug"`
	Excerpt    *string   `json:"excerpt,omitempty"`
	Content    string    `json:"content"`
	CoverImage *string   `json:"cover_image,omitempty"`
	Category   string    `json:"category"`
	Tags       []string  `json:"tags"`
	Author     *string   `json:"author,omitempty"`
	Published  bool      `json:"published"`
	CreatedAt  time.Time `json:"created_at"`
}

// swagger:model CreatePostRequest
type CreatePostRequest struct {
	Title      string   `json:"title"   example:"Retro Wave"`
	Slug       string   `json:"slug"    example:"retro-wave"`
	Excerpt    *string  `json:"excerpt,omitempty" example:"Короткое описание для превью"`
	Content    string   `json:"content" example:"Текст поста в Markdown"`
	CoverImage *string  `json:"cover_image,omitempty" example:"https://example.com/cover.jpg"`
	Category   string   `json:"category" example:"music"`
	Tags       []string `json:"tags"     example:"synth,80s"`
	Author     *string  `json:"author,omitempty" example:"Иван"`
	Published  *bool    `json:"published,omitempty"`
}

// PostFilter — параметры выборки списка постов.
// Limit валидируется в сервисе: [1,100], по умолчанию 20.
type PostFilter struct {
	Category string
	Tag      string
	Query    string
	Limit    int
}
