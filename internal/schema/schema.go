// Package schema — статически описанные схемы сущностей блога.
// Реестр служит и валидации входных данных, и эндпоинту GET /schema:
// никакой рефлексии по типам в рантайме.
package schema

import (
	"fmt"
	"strings"
)

type FieldType string

const (
	TypeString      FieldType = "string"
	TypeBool        FieldType = "boolean"
	TypeStringArray FieldType = "array"
)

type Field struct {
	Name        string
	Type        FieldType
	Required    bool
	Default     interface{}
	Description string
}

type Entity struct {
	Title  string
	Fields []Field
}

// Registry — ключ совпадает с именем коллекции в хранилище.
var Registry = map[string]Entity{
	"category": {
		Title: "Category",
		Fields: []Field{
			{Name: "name", Type: TypeString, Required: true, Description: "Название категории"},
			{Name: "slug", Type: TypeString, Required: true, Description: "URL-слаг"},
			{Name: "color", Type: TypeString, Description: "Hex-цвет для интерфейса"},
		},
	},
	"tag": {
		Title: "Tag",
		Fields: []Field{
			{Name: "name", Type: TypeString, Required: true, Description: "Название тега"},
			{Name: "slug", Type: TypeString, Required: true, Description: "URL-слаг"},
		},
	},
	"post": {
		Title: "Post",
		Fields: []Field{
			{Name: "title", Type: TypeString, Required: true, Description: "Заголовок поста"},
			{Name: "slug", Type: TypeString, Required: true, Description: "URL-слаг"},
			{Name: "excerpt", Type: TypeString, Description: "Короткое описание"},
			{Name: "content", Type: TypeString, Required: true, Description: "Контент (Markdown или HTML)"},
			{Name: "cover_image", Type: TypeString, Description: "URL обложки"},
			{Name: "category", Type: TypeString, Required: true, Description: "Слаг категории"},
			{Name: "tags", Type: TypeStringArray, Default: []string{}, Description: "Слаги тегов"},
			{Name: "author", Type: TypeString, Description: "Имя автора"},
			{Name: "published", Type: TypeBool, Default: true, Description: "Опубликован ли пост"},
		},
	},
}

// ValidationError — структурная ошибка валидации со списком полей.
type ValidationError struct {
	Entity string
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: отсутствуют обязательные поля: %s", e.Entity, strings.Join(e.Fields, ", "))
}

// ValidateRequired проверяет обязательные текстовые поля сущности.
// values — поле → значение из запроса (уже после decode).
func ValidateRequired(entity string, values map[string]string) error {
	ent, ok := Registry[entity]
	if !ok {
		return fmt.Errorf("неизвестная сущность: %s", entity)
	}

	var missing []string
	for _, f := range ent.Fields {
		if !f.Required || f.Type != TypeString {
			continue
		}
		if strings.TrimSpace(values[f.Name]) == "" {
			missing = append(missing, f.Name)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Entity: entity, Fields: missing}
	}
	return nil
}

// Describe отдаёт описание реестра в духе JSON Schema для GET /schema.
func Describe() map[string]interface{} {
	out := make(map[string]interface{}, len(Registry))
	for _, ent := range Registry {
		props := make(map[string]interface{}, len(ent.Fields))
		var required []string
		for _, f := range ent.Fields {
			p := map[string]interface{}{
				"type":        string(f.Type),
				"description": f.Description,
			}
			if f.Type == TypeStringArray {
				p["items"] = map[string]interface{}{"type": "string"}
			}
			if f.Default != nil {
				p["default"] = f.Default
			}
			props[f.Name] = p
			if f.Required {
				required = append(required, f.Name)
			}
		}
		out[ent.Title] = map[string]interface{}{
			"title":      ent.Title,
			"type":       "object",
			"properties": props,
			"required":   required,
		}
	}
	return out
}
