package mongodb

import (
	"context"

	"skill-summarizer-backend/internal/domain"
	"skill-summarizer-backend/pkg/objectid"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type taskRepo struct {
	collection
}

func NewTaskRepository(coll *mongo.Collection) domain.TaskRepository {
	return &taskRepo{collection{coll: coll}}
}

func (r *taskRepo) Create(ctx context.Context, doc domain.TaskDocument) (objectid.ID, error) {
	raw := bson.M{
		"title":            doc.Title,
		"description":      doc.Description,
		"date":             doc.Date,
		"extracted_skills": doc.ExtractedSkills,
		"confirmed_skills": doc.ConfirmedSkills,
	}
	return r.insertOne(ctx, raw)
}

func (r *taskRepo) GetByID(ctx context.Context, id objectid.ID) (*domain.Task, error) {
	doc, err := r.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return taskFromDocument(doc)
}

func (r *taskRepo) Fetch(ctx context.Context, limit int) ([]domain.Task, error) {
	docs, err := r.findAll(ctx, limit)
	if err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(docs))
	for _, doc := range docs {
		task, err := taskFromDocument(doc)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *task)
	}
	return tasks, nil
}

func (r *taskRepo) Update(ctx context.Context, id objectid.ID, fields map[string]interface{}) (int64, error) {
	return r.updateByID(ctx, id, fields)
}

func (r *taskRepo) Delete(ctx context.Context, id objectid.ID) (int64, error) {
	return r.deleteByID(ctx, id)
}

func taskFromDocument(doc bson.M) (*domain.Task, error) {
	title, err := requiredString(doc, "title")
	if err != nil {
		return nil, err
	}
	date, err := requiredTime(doc, "date")
	if err != nil {
		return nil, err
	}

	return &domain.Task{
		ID:              objectid.FromStore(doc["_id"]),
		Title:           title,
		Description:     optionalString(doc, "description"),
		Date:            date,
		ExtractedSkills: stringList(doc, "extracted_skills"),
		ConfirmedSkills: stringList(doc, "confirmed_skills"),
	}, nil
}
