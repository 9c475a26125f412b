package models

import (
	"context"
	"reflect"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// MemoryStore is an in-process DocumentStore. Documents are kept as encoded BSON so
// callers never share memory with the stored copy, and they decode exactly like
// documents read back from MongoDB (millisecond timestamps included).
type MemoryStore[T any] struct {
	mu   sync.RWMutex
	docs []bson.Raw
	now  func() time.Time
}

func NewMemoryStore[T any]() *MemoryStore[T] {
	return &MemoryStore[T]{
		now: func() time.Time { return time.Now().UTC() },
	}
}

// WithClock replaces the time source used for created_at and updated_at.
func (s *MemoryStore[T]) WithClock(now func() time.Time) *MemoryStore[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
	return s
}

func (s *MemoryStore[T]) Create(ctx context.Context, doc *T) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := prepareCreate(doc, s.now())
	if err != nil {
		return nil, err
	}
	if s.indexOf(data["id"].(string)) >= 0 {
		return nil, ErrDuplicateID
	}
	raw, err := bson.Marshal(data)
	if err != nil {
		return nil, err
	}
	s.docs = append(s.docs, raw)
	return decodeRaw[T](raw)
}

func (s *MemoryStore[T]) GetByID(ctx context.Context, id string) (*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, nil
	}
	return decodeRaw[T](s.docs[i])
}

func (s *MemoryStore[T]) List(ctx context.Context, skip, limit int64, filter Filter) ([]*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	want, err := toM(filter)
	if err != nil {
		return nil, err
	}

	out := make([]*T, 0)
	var skipped int64
	for _, raw := range s.docs {
		if limit > 0 && int64(len(out)) >= limit {
			break
		}
		ok, err := matches(raw, want)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		if skipped < skip {
			skipped++
			continue
		}
		doc, err := decodeRaw[T](raw)
		if err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, nil
}

func (s *MemoryStore[T]) Update(ctx context.Context, id string, patch any) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, nil
	}
	set, err := preparePatch(patch, s.now())
	if err != nil {
		return nil, err
	}
	return s.apply(i, set)
}

func (s *MemoryStore[T]) Upsert(ctx context.Context, id string, patch any, defaults any) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, onInsert, err := prepareUpsert(patch, defaults, s.now())
	if err != nil {
		return nil, err
	}

	if i := s.indexOf(id); i >= 0 {
		if len(set) == 0 {
			return decodeRaw[T](s.docs[i])
		}
		return s.apply(i, set)
	}

	doc := onInsert
	for k, v := range set {
		doc[k] = v
	}
	doc["id"] = id
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}
	s.docs = append(s.docs, raw)
	return decodeRaw[T](raw)
}

func (s *MemoryStore[T]) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false, nil
	}
	s.docs = append(s.docs[:i], s.docs[i+1:]...)
	return true, nil
}

func (s *MemoryStore[T]) Count(ctx context.Context, filter Filter) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	want, err := toM(filter)
	if err != nil {
		return 0, err
	}
	var n int64
	for _, raw := range s.docs {
		ok, err := matches(raw, want)
		if err != nil {
			return 0, err
		}
		if ok {
			n++
		}
	}
	return n, nil
}

func (s *MemoryStore[T]) CountBy(ctx context.Context, field string) (map[string]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[string]int64)
	for _, raw := range s.docs {
		var key any
		if v, err := raw.LookupErr(field); err == nil {
			if str, ok := v.StringValueOK(); ok {
				key = str
			} else {
				key = v.String()
			}
		}
		counts[groupKey(key)]++
	}
	return counts, nil
}

// apply merges set into the document at i, top-level keys only, like $set.
func (s *MemoryStore[T]) apply(i int, set bson.M) (*T, error) {
	current := bson.M{}
	if err := bson.Unmarshal(s.docs[i], &current); err != nil {
		return nil, err
	}
	for k, v := range set {
		current[k] = v
	}
	raw, err := bson.Marshal(current)
	if err != nil {
		return nil, err
	}
	s.docs[i] = raw
	return decodeRaw[T](raw)
}

func (s *MemoryStore[T]) indexOf(id string) int {
	for i, raw := range s.docs {
		if v, err := raw.LookupErr("id"); err == nil {
			if str, ok := v.StringValueOK(); ok && str == id {
				return i
			}
		}
	}
	return -1
}

func matches(raw bson.Raw, want bson.M) (bool, error) {
	if len(want) == 0 {
		return true, nil
	}
	doc := bson.M{}
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return false, err
	}
	for k, v := range want {
		got, ok := doc[k]
		if !ok || !reflect.DeepEqual(got, v) {
			return false, nil
		}
	}
	return true, nil
}

func decodeRaw[T any](raw bson.Raw) (*T, error) {
	var out T
	if err := bson.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
