package store

import (
	"context"
	"sort"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore is a map-backed Store used in unit tests. It understands the
// filter operators the query layer produces ($or, case-insensitive $regex,
// $gte, $lte) plus plain field equality; identifiers are ObjectID hex strings
// so id handling matches the Mongo-backed store.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string][]bson.M
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string][]bson.M)}
}

func (s *MemoryStore) Insert(ctx context.Context, collection string, doc bson.M) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := bson.M{}
	for k, v := range doc {
		stored[k] = v
	}
	id := primitive.NewObjectID().Hex()
	stored["_id"] = id
	s.collections[collection] = append(s.collections[collection], stored)
	return id, nil
}

func (s *MemoryStore) Find(ctx context.Context, collection string, filter bson.M) ([]bson.M, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []bson.M{}
	for _, d := range s.collections[collection] {
		if matchFilter(d, filter) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (s *MemoryStore) FindByID(ctx context.Context, collection, id string) (bson.M, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, ErrNotFound
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, d := range s.collections[collection] {
		if d["_id"] == id {
			return d, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) Count(ctx context.Context, collection string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.collections[collection])), nil
}

func (s *MemoryStore) Collections(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.collections))
	for name := range s.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (s *MemoryStore) Name() string {
	return "memory"
}

// matchFilter evaluates a document against the bson.M filter subset produced
// by listing.BuildFilter. $regex patterns are treated as literal substrings,
// which is all the filter builder emits.
func matchFilter(doc bson.M, filter bson.M) bool {
	for key, cond := range filter {
		if key == "$or" {
			if !matchAny(doc, cond) {
				return false
			}
			continue
		}
		if ops, ok := cond.(bson.M); ok {
			if !matchOps(doc[key], ops) {
				return false
			}
			continue
		}
		if doc[key] != cond {
			return false
		}
	}
	return true
}

func matchAny(doc bson.M, cond interface{}) bool {
	clauses, ok := cond.([]bson.M)
	if !ok {
		return false
	}
	for _, clause := range clauses {
		if matchFilter(doc, clause) {
			return true
		}
	}
	return false
}

func matchOps(field interface{}, ops bson.M) bool {
	for op, arg := range ops {
		switch op {
		case "$regex":
			s, ok := field.(string)
			pattern, okp := arg.(string)
			if !ok || !okp || !strings.Contains(strings.ToLower(s), strings.ToLower(pattern)) {
				return false
			}
		case "$gte":
			fv, ok := asFloat(field)
			av, oka := asFloat(arg)
			if !ok || !oka || fv < av {
				return false
			}
		case "$lte":
			fv, ok := asFloat(field)
			av, oka := asFloat(arg)
			if !ok || !oka || fv > av {
				return false
			}
		case "$options":
			// modifier for $regex, handled there
		default:
			return false
		}
	}
	return true
}

func asFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
