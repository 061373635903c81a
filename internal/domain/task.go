package domain

import (
	"context"
	"time"

	"skill-summarizer-backend/pkg/objectid"
)

// Task is the normalized output record of the tasks collection.
type Task struct {
	ID              *string   `json:"id"`
	Title           string    `json:"title"`
	Description     *string   `json:"description"`
	Date            time.Time `json:"date"`
	ExtractedSkills []string  `json:"extracted_skills"`
	ConfirmedSkills []string  `json:"confirmed_skills"`
}

// CreateTaskInput is the creation payload. Any id sent by the client is
// ignored; the store assigns it.
type CreateTaskInput struct {
	Title           string     `json:"title" validate:"required,min=1,max=200" example:"Learn Go"`
	Description     *string    `json:"description" validate:"omitempty,min=10" example:"Study the Go standard library in depth"`
	Date            *time.Time `json:"date"`
	ExtractedSkills []string   `json:"extracted_skills" example:"Go,MongoDB,REST"`
	ConfirmedSkills []string   `json:"confirmed_skills" example:"Go"`
}

// NewTaskDocument applies creation defaults: date falls back to now, skill
// lists to empty.
func (in CreateTaskInput) NewTaskDocument(now time.Time) TaskDocument {
	doc := TaskDocument{
		Title:           in.Title,
		Description:     in.Description,
		Date:            now.UTC(),
		ExtractedSkills: in.ExtractedSkills,
		ConfirmedSkills: in.ConfirmedSkills,
	}
	if in.Date != nil {
		doc.Date = in.Date.UTC()
	}
	if doc.ExtractedSkills == nil {
		doc.ExtractedSkills = []string{}
	}
	if doc.ConfirmedSkills == nil {
		doc.ConfirmedSkills = []string{}
	}
	return doc
}

// TaskDocument is what gets inserted into the store.
type TaskDocument struct {
	Title           string
	Description     *string
	Date            time.Time
	ExtractedSkills []string
	ConfirmedSkills []string
}

// TaskPatch is a sparse update. JSON null and absent keys both decode to nil
// and are dropped.
type TaskPatch struct {
	ID              *string    `json:"id" validate:"isdefault" swaggerignore:"true"`
	MongoID         *string    `json:"_id" validate:"isdefault" swaggerignore:"true"`
	Title           *string    `json:"title" validate:"omitempty,min=1,max=200"`
	Description     *string    `json:"description" validate:"omitempty,min=10"`
	Date            *time.Time `json:"date"`
	ExtractedSkills *[]string  `json:"extracted_skills"`
	ConfirmedSkills *[]string  `json:"confirmed_skills"`
}

// Fields returns the set of stored fields to overwrite, keyed by document
// field name.
func (p TaskPatch) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if p.Title != nil {
		fields["title"] = *p.Title
	}
	if p.Description != nil {
		fields["description"] = *p.Description
	}
	if p.Date != nil {
		fields["date"] = p.Date.UTC()
	}
	if p.ExtractedSkills != nil {
		fields["extracted_skills"] = nonNil(*p.ExtractedSkills)
	}
	if p.ConfirmedSkills != nil {
		fields["confirmed_skills"] = nonNil(*p.ConfirmedSkills)
	}
	return fields
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

type TaskRepository interface {
	Create(ctx context.Context, doc TaskDocument) (objectid.ID, error)
	GetByID(ctx context.Context, id objectid.ID) (*Task, error)
	Fetch(ctx context.Context, limit int) ([]Task, error)
	Update(ctx context.Context, id objectid.ID, fields map[string]interface{}) (int64, error)
	Delete(ctx context.Context, id objectid.ID) (int64, error)
}

type TaskUsecase interface {
	CreateTask(ctx context.Context, input CreateTaskInput) (*Task, error)
	ListTasks(ctx context.Context) ([]Task, error)
	GetTask(ctx context.Context, id objectid.ID) (*Task, error)
	UpdateTask(ctx context.Context, id objectid.ID, patch TaskPatch) (*Task, error)
	DeleteTask(ctx context.Context, id objectid.ID) error
}
