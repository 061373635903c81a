package mongodb

import (
	"context"

	"skill-summarizer-backend/internal/domain"
	"skill-summarizer-backend/pkg/objectid"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type skillRepo struct {
	collection
}

func NewSkillRepository(coll *mongo.Collection) domain.SkillRepository {
	return &skillRepo{collection{coll: coll}}
}

func (r *skillRepo) Create(ctx context.Context, doc domain.SkillDocument) (objectid.ID, error) {
	raw := bson.M{
		"name":     doc.Name,
		"category": doc.Category,
		"level":    doc.Level,
	}
	return r.insertOne(ctx, raw)
}

func (r *skillRepo) GetByID(ctx context.Context, id objectid.ID) (*domain.Skill, error) {
	doc, err := r.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return skillFromDocument(doc)
}

func (r *skillRepo) Fetch(ctx context.Context, limit int) ([]domain.Skill, error) {
	docs, err := r.findAll(ctx, limit)
	if err != nil {
		return nil, err
	}

	skills := make([]domain.Skill, 0, len(docs))
	for _, doc := range docs {
		skill, err := skillFromDocument(doc)
		if err != nil {
			return nil, err
		}
		skills = append(skills, *skill)
	}
	return skills, nil
}

func (r *skillRepo) Update(ctx context.Context, id objectid.ID, fields map[string]interface{}) (int64, error) {
	return r.updateByID(ctx, id, fields)
}

func (r *skillRepo) Delete(ctx context.Context, id objectid.ID) (int64, error) {
	return r.deleteByID(ctx, id)
}

func skillFromDocument(doc bson.M) (*domain.Skill, error) {
	name, err := requiredString(doc, "name")
	if err != nil {
		return nil, err
	}

	return &domain.Skill{
		ID:       objectid.FromStore(doc["_id"]),
		Name:     name,
		Category: optionalString(doc, "category"),
		Level:    optionalString(doc, "level"),
	}, nil
}
