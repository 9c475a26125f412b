package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// ErrDuplicateID is returned when a document is created with an id that already
// exists in its collection.
var ErrDuplicateID = errors.New("document with this id already exists")

// Filter is an exact-match query: every field must equal its value.
type Filter = bson.M

// DocumentStore is the per-collection persistence contract shared by every resource.
// Documents are addressed by their "id" field, never by the store's native key.
// Absence is reported as a nil document (or false), not as an error.
type DocumentStore[T any] interface {
	Create(ctx context.Context, doc *T) (*T, error)
	GetByID(ctx context.Context, id string) (*T, error)
	List(ctx context.Context, skip, limit int64, filter Filter) ([]*T, error)
	Update(ctx context.Context, id string, patch any) (*T, error)
	Upsert(ctx context.Context, id string, patch any, defaults any) (*T, error)
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context, filter Filter) (int64, error)
	CountBy(ctx context.Context, field string) (map[string]int64, error)
}

// toM converts a struct (or map) into a flat bson.M by round-tripping it through
// BSON, so the bson tags (including omitempty on patch pointers) decide the keys.
func toM(v any) (bson.M, error) {
	if v == nil {
		return bson.M{}, nil
	}
	if m, ok := v.(bson.M); ok && m == nil {
		return bson.M{}, nil
	}
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	m := bson.M{}
	if err := bson.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	return m, nil
}

func fromM[T any](m bson.M) (*T, error) {
	raw, err := bson.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	var out T
	if err := bson.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	return &out, nil
}

// prepareCreate stamps the timestamps and assigns an id when the caller left it empty.
func prepareCreate(doc any, now time.Time) (bson.M, error) {
	m, err := toM(doc)
	if err != nil {
		return nil, err
	}
	delete(m, "_id")
	if id, _ := m["id"].(string); id == "" {
		m["id"] = uuid.New().String()
	}
	m["created_at"] = now
	m["updated_at"] = now
	return m, nil
}

// preparePatch returns the $set document for a partial update. Unsupplied fields are
// already gone because patch pointers carry omitempty; id and created_at are never
// overwritten.
func preparePatch(patch any, now time.Time) (bson.M, error) {
	set, err := toM(patch)
	if err != nil {
		return nil, err
	}
	delete(set, "_id")
	delete(set, "id")
	delete(set, "created_at")
	set["updated_at"] = now
	return set, nil
}

// prepareUpsert builds the $set and $setOnInsert halves of an upsert. A nil patch
// leaves an existing document untouched. Defaults never shadow supplied fields.
func prepareUpsert(patch, defaults any, now time.Time) (set bson.M, onInsert bson.M, err error) {
	set = bson.M{}
	if patch != nil {
		if set, err = preparePatch(patch, now); err != nil {
			return nil, nil, err
		}
	}
	if onInsert, err = toM(defaults); err != nil {
		return nil, nil, err
	}
	delete(onInsert, "_id")
	delete(onInsert, "id")
	for k := range set {
		delete(onInsert, k)
	}
	onInsert["created_at"] = now
	if _, ok := set["updated_at"]; !ok {
		onInsert["updated_at"] = now
	}
	return set, onInsert, nil
}

func groupKey(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	default:
		return fmt.Sprint(val)
	}
}

// ListPage returns one skip/limit window of the matching documents together with
// the total number of matches, which is what every list endpoint reports.
func ListPage[T any](ctx context.Context, store DocumentStore[T], skip, limit int64, filter Filter) ([]*T, int64, error) {
	docs, err := store.List(ctx, skip, limit, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := store.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return docs, total, nil
}
