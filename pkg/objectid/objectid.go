// Package objectid wraps the document store's 12-byte identifier for use at
// the HTTP boundary. Parsing never fails: a malformed string yields an ID
// whose Valid method reports false, which callers treat as "no such record".
package objectid

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ID struct {
	raw   string
	oid   primitive.ObjectID
	valid bool
}

// Parse decodes a 24-character hex string.
func Parse(s string) ID {
	oid, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return ID{raw: s}
	}
	return ID{raw: s, oid: oid, valid: true}
}

// New generates a fresh identifier.
func New() ID {
	oid := primitive.NewObjectID()
	return ID{raw: oid.Hex(), oid: oid, valid: true}
}

// FromObjectID wraps an identifier returned by the store.
func FromObjectID(oid primitive.ObjectID) ID {
	if oid.IsZero() {
		return ID{}
	}
	return ID{raw: oid.Hex(), oid: oid, valid: true}
}

func (id ID) Valid() bool {
	return id.valid
}

// ObjectID returns the store-native value. It is the zero ObjectID when the ID
// is not valid.
func (id ID) ObjectID() primitive.ObjectID {
	return id.oid
}

// Hex returns the canonical lowercase form of a valid ID, or the string it was
// parsed from otherwise.
func (id ID) Hex() string {
	if !id.valid {
		return id.raw
	}
	return id.oid.Hex()
}

func (id ID) String() string {
	return id.Hex()
}

// FromStore stringifies an _id value read from a raw document. Absent or nil
// identifiers yield nil so they serialize as JSON null.
func FromStore(v interface{}) *string {
	var s string
	switch val := v.(type) {
	case nil:
		return nil
	case primitive.ObjectID:
		s = val.Hex()
	case string:
		s = val
	default:
		return nil
	}
	return &s
}
