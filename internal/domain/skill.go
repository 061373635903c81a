package domain

import (
	"context"

	"skill-summarizer-backend/pkg/objectid"
)

// Skill is the normalized output record of the skills collection.
type Skill struct {
	ID       *string `json:"id"`
	Name     string  `json:"name"`
	Category *string `json:"category"`
	Level    *string `json:"level"`
}

type CreateSkillInput struct {
	Name     string  `json:"name" validate:"required,min=1,max=100" example:"Go"`
	Category *string `json:"category" validate:"omitempty,max=50" example:"Programming Language"`
	Level    *string `json:"level" validate:"omitempty,max=20" example:"Advanced"`
}

// SkillDocument is what gets inserted into the store.
type SkillDocument struct {
	Name     string
	Category *string
	Level    *string
}

func (in CreateSkillInput) NewSkillDocument() SkillDocument {
	return SkillDocument{
		Name:     in.Name,
		Category: in.Category,
		Level:    in.Level,
	}
}

type SkillPatch struct {
	ID       *string `json:"id" validate:"isdefault" swaggerignore:"true"`
	MongoID  *string `json:"_id" validate:"isdefault" swaggerignore:"true"`
	Name     *string `json:"name" validate:"omitempty,min=1,max=100"`
	Category *string `json:"category" validate:"omitempty,max=50"`
	Level    *string `json:"level" validate:"omitempty,max=20"`
}

func (p SkillPatch) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if p.Name != nil {
		fields["name"] = *p.Name
	}
	if p.Category != nil {
		fields["category"] = *p.Category
	}
	if p.Level != nil {
		fields["level"] = *p.Level
	}
	return fields
}

type SkillRepository interface {
	Create(ctx context.Context, doc SkillDocument) (objectid.ID, error)
	GetByID(ctx context.Context, id objectid.ID) (*Skill, error)
	Fetch(ctx context.Context, limit int) ([]Skill, error)
	Update(ctx context.Context, id objectid.ID, fields map[string]interface{}) (int64, error)
	Delete(ctx context.Context, id objectid.ID) (int64, error)
}

type SkillUsecase interface {
	CreateSkill(ctx context.Context, input CreateSkillInput) (*Skill, error)
	ListSkills(ctx context.Context) ([]Skill, error)
	GetSkill(ctx context.Context, id objectid.ID) (*Skill, error)
	UpdateSkill(ctx context.Context, id objectid.ID, patch SkillPatch) (*Skill, error)
	DeleteSkill(ctx context.Context, id objectid.ID) error
}
