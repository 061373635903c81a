package mongodb

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestTaskFromDocument(t *testing.T) {
	oid := primitive.NewObjectID()
	date := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

	t.Run("full document", func(t *testing.T) {
		task, err := taskFromDocument(bson.M{
			"_id":              oid,
			"title":            "Learn X",
			"description":      "Study the X framework in depth",
			"date":             primitive.NewDateTimeFromTime(date),
			"extracted_skills": primitive.A{"Go", "MongoDB"},
			"confirmed_skills": primitive.A{"Go"},
		})
		require.NoError(t, err)
		require.NotNil(t, task.ID)
		assert.Equal(t, oid.Hex(), *task.ID)
		assert.Equal(t, "Learn X", task.Title)
		require.NotNil(t, task.Description)
		assert.Equal(t, "Study the X framework in depth", *task.Description)
		assert.True(t, date.Equal(task.Date))
		assert.Equal(t, []string{"Go", "MongoDB"}, task.ExtractedSkills)
		assert.Equal(t, []string{"Go"}, task.ConfirmedSkills)
	})

	t.Run("optional fields default", func(t *testing.T) {
		task, err := taskFromDocument(bson.M{
			"title":       "Learn X",
			"description": nil,
			"date":        primitive.NewDateTimeFromTime(date),
		})
		require.NoError(t, err)
		assert.Nil(t, task.ID)
		assert.Nil(t, task.Description)
		assert.NotNil(t, task.ExtractedSkills)
		assert.Empty(t, task.ExtractedSkills)
		assert.NotNil(t, task.ConfirmedSkills)
		assert.Empty(t, task.ConfirmedSkills)
	})

	t.Run("legacy string date", func(t *testing.T) {
		task, err := taskFromDocument(bson.M{
			"title": "Learn X",
			"date":  "2024-03-01T09:30:00",
		})
		require.NoError(t, err)
		assert.True(t, date.Equal(task.Date))
	})

	t.Run("missing title is malformed", func(t *testing.T) {
		_, err := taskFromDocument(bson.M{"date": primitive.NewDateTimeFromTime(date)})
		assert.True(t, errors.Is(err, errMalformedDocument))
	})

	t.Run("missing date is malformed", func(t *testing.T) {
		_, err := taskFromDocument(bson.M{"title": "Learn X"})
		assert.True(t, errors.Is(err, errMalformedDocument))
	})

	t.Run("wrong title type is malformed", func(t *testing.T) {
		_, err := taskFromDocument(bson.M{"title": 42, "date": primitive.NewDateTimeFromTime(date)})
		assert.True(t, errors.Is(err, errMalformedDocument))
	})
}

func TestSkillFromDocument(t *testing.T) {
	oid := primitive.NewObjectID()

	skill, err := skillFromDocument(bson.M{"_id": oid, "name": "Go", "level": "Advanced"})
	require.NoError(t, err)
	assert.Equal(t, oid.Hex(), *skill.ID)
	assert.Equal(t, "Go", skill.Name)
	assert.Nil(t, skill.Category)
	require.NotNil(t, skill.Level)
	assert.Equal(t, "Advanced", *skill.Level)

	_, err = skillFromDocument(bson.M{"_id": oid})
	assert.True(t, errors.Is(err, errMalformedDocument))
}

func TestStringListSkipsNonStrings(t *testing.T) {
	got := stringList(bson.M{"tags": primitive.A{"Go", 3, nil, "SQL"}}, "tags")
	assert.Equal(t, []string{"Go", "SQL"}, got)

	assert.Equal(t, []string{}, stringList(bson.M{"tags": "Go"}, "tags"))
}
