package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestMemoryStoreInsertFind(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	id, err := s.Insert(ctx, "property", bson.M{"title": "Hut", "price_per_night": 100.0})
	require.NoError(t, err)
	require.Len(t, id, 24, "ids should be ObjectID hex strings")

	docs, err := s.Find(ctx, "property", bson.M{})
	require.NoError(t, err)
	require.Len(t, docs, 1)
	require.Equal(t, id, docs[0]["_id"])

	got, err := s.FindByID(ctx, "property", id)
	require.NoError(t, err)
	require.Equal(t, "Hut", got["title"])
}

func TestMemoryStoreFindByIDNotFound(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, err := s.FindByID(ctx, "property", "ffffffffffffffffffffffff")
	require.ErrorIs(t, err, ErrNotFound)

	// malformed id is NotFound, not a different failure
	_, err = s.FindByID(ctx, "property", "not-a-hex-id")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreFilterEvaluation(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, err := s.Insert(ctx, "property", bson.M{"title": "Cozy Mountain Hut", "description": "wooden hut", "location": "Aspen, Colorado", "price_per_night": 220.0})
	require.NoError(t, err)
	_, err = s.Insert(ctx, "property", bson.M{"title": "Lakeside Cabin", "description": "on the lake", "location": "Lake Tahoe", "price_per_night": 180.0})
	require.NoError(t, err)

	t.Run("or with case-insensitive substring", func(t *testing.T) {
		docs, err := s.Find(ctx, "property", bson.M{"$or": []bson.M{
			{"title": bson.M{"$regex": "HUT", "$options": "i"}},
			{"description": bson.M{"$regex": "HUT", "$options": "i"}},
			{"location": bson.M{"$regex": "HUT", "$options": "i"}},
		}})
		require.NoError(t, err)
		require.Len(t, docs, 1)
		require.Equal(t, "Cozy Mountain Hut", docs[0]["title"])
	})

	t.Run("price range", func(t *testing.T) {
		docs, err := s.Find(ctx, "property", bson.M{"price_per_night": bson.M{"$gte": 200.0}})
		require.NoError(t, err)
		require.Len(t, docs, 1)
		require.Equal(t, "Cozy Mountain Hut", docs[0]["title"])

		docs, err = s.Find(ctx, "property", bson.M{"price_per_night": bson.M{"$gte": 100.0, "$lte": 200.0}})
		require.NoError(t, err)
		require.Len(t, docs, 1)
		require.Equal(t, "Lakeside Cabin", docs[0]["title"])
	})

	t.Run("location clause", func(t *testing.T) {
		docs, err := s.Find(ctx, "property", bson.M{"location": bson.M{"$regex": "tahoe", "$options": "i"}})
		require.NoError(t, err)
		require.Len(t, docs, 1)
	})

	t.Run("no match", func(t *testing.T) {
		docs, err := s.Find(ctx, "property", bson.M{"location": bson.M{"$regex": "berlin", "$options": "i"}})
		require.NoError(t, err)
		require.Empty(t, docs)
	})
}

func TestMemoryStoreCountAndCollections(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	count, err := s.Count(ctx, "property")
	require.NoError(t, err)
	require.Zero(t, count)

	_, err = s.Insert(ctx, "property", bson.M{"title": "a"})
	require.NoError(t, err)
	_, err = s.Insert(ctx, "booking", bson.M{"name": "b"})
	require.NoError(t, err)

	count, err = s.Count(ctx, "property")
	require.NoError(t, err)
	require.Equal(t, int64(1), count)

	cols, err := s.Collections(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"booking", "property"}, cols)
}
