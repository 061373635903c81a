package mongodb

import (
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// errMalformedDocument marks a stored document that is missing a required
// field or holds it with the wrong type. Only writes bypassing this service
// can produce one, so it surfaces as an internal error.
var errMalformedDocument = errors.New("malformed stored document")

func requiredString(doc bson.M, key string) (string, error) {
	v, ok := doc[key]
	if !ok {
		return "", fmt.Errorf("%w: missing %q", errMalformedDocument, key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %q is %T, want string", errMalformedDocument, key, v)
	}
	return s, nil
}

func requiredTime(doc bson.M, key string) (time.Time, error) {
	v, ok := doc[key]
	if !ok {
		return time.Time{}, fmt.Errorf("%w: missing %q", errMalformedDocument, key)
	}
	switch t := v.(type) {
	case primitive.DateTime:
		return t.Time().UTC(), nil
	case time.Time:
		return t.UTC(), nil
	case string:
		// Older writers stored ISO-8601 strings.
		parsed, err := parseISOTime(t)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q: %v", errMalformedDocument, key, err)
		}
		return parsed, nil
	default:
		return time.Time{}, fmt.Errorf("%w: %q is %T, want datetime", errMalformedDocument, key, v)
	}
}

var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
}

func parseISOTime(s string) (time.Time, error) {
	var err error
	for _, layout := range isoLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, err
}

// optionalString never fails: absent, null or non-string values yield nil.
func optionalString(doc bson.M, key string) *string {
	s, ok := doc[key].(string)
	if !ok {
		return nil
	}
	return &s
}

// stringList never fails: anything that is not a list yields an empty one and
// non-string elements are skipped.
func stringList(doc bson.M, key string) []string {
	out := []string{}
	var items []interface{}
	switch v := doc[key].(type) {
	case primitive.A:
		items = v
	case []interface{}:
		items = v
	case []string:
		return append(out, v...)
	default:
		return out
	}
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
