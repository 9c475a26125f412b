package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var Validate = validator.New()

const (
	ToursColName        = "tours"
	CoachesColName      = "coaches"
	TestimonialsColName = "testimonials"
	GalleryColName      = "gallery"
	BookingsColName     = "bookings"
	ContactsColName     = "contacts"
	SettingsColName     = "settings"
)

type MongodbRepo struct {
	mongodbClient *mongo.Client
	dbName        string
}

func MongodbNewRepo(mongodbClient *mongo.Client, dbName string) *MongodbRepo {
	return &MongodbRepo{
		mongodbClient: mongodbClient,
		dbName:        dbName,
	}
}

func (mdb *MongodbRepo) GetCollection(colName string) (*mongo.Collection, error) {
	if mdb.mongodbClient == nil {
		return nil, fmt.Errorf("mongodb client is not initialized")
	}
	return mdb.mongodbClient.Database(mdb.dbName).Collection(colName), nil
}

// MongoCollection is the MongoDB implementation of DocumentStore.
type MongoCollection[T any] struct {
	col *mongo.Collection
}

func NewMongoCollection[T any](mdb *MongodbRepo, colName string) (*MongoCollection[T], error) {
	col, err := mdb.GetCollection(colName)
	if err != nil {
		return nil, err
	}
	return &MongoCollection[T]{col: col}, nil
}

// hide the native key; documents are addressed by "id" only
var withoutObjectID = bson.M{"_id": 0}

func (m *MongoCollection[T]) Create(ctx context.Context, doc *T) (*T, error) {
	data, err := prepareCreate(doc, time.Now().UTC().Truncate(time.Millisecond))
	if err != nil {
		return nil, err
	}
	if _, err := m.col.InsertOne(ctx, data); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateID
		}
		return nil, fmt.Errorf("failed to insert into %s: %w", m.col.Name(), err)
	}
	delete(data, "_id")
	return fromM[T](data)
}

func (m *MongoCollection[T]) GetByID(ctx context.Context, id string) (*T, error) {
	var out T
	opts := options.FindOne().SetProjection(withoutObjectID)
	err := m.col.FindOne(ctx, bson.M{"id": id}, opts).Decode(&out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find %s %q: %w", m.col.Name(), id, err)
	}
	return &out, nil
}

func (m *MongoCollection[T]) List(ctx context.Context, skip, limit int64, filter Filter) ([]*T, error) {
	if filter == nil {
		filter = Filter{}
	}
	opts := options.Find().
		SetSkip(skip).
		SetLimit(limit).
		SetProjection(withoutObjectID)

	cursor, err := m.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", m.col.Name(), err)
	}
	defer cursor.Close(ctx)

	docs := make([]*T, 0)
	for cursor.Next(ctx) {
		var doc T
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("error decoding %s document: %w", m.col.Name(), err)
		}
		docs = append(docs, &doc)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return docs, nil
}

func (m *MongoCollection[T]) Update(ctx context.Context, id string, patch any) (*T, error) {
	set, err := preparePatch(patch, time.Now().UTC().Truncate(time.Millisecond))
	if err != nil {
		return nil, err
	}
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(withoutObjectID)

	var out T
	err = m.col.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": set}, opts).Decode(&out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update %s %q: %w", m.col.Name(), id, err)
	}
	return &out, nil
}

func (m *MongoCollection[T]) Upsert(ctx context.Context, id string, patch any, defaults any) (*T, error) {
	set, onInsert, err := prepareUpsert(patch, defaults, time.Now().UTC().Truncate(time.Millisecond))
	if err != nil {
		return nil, err
	}
	update := bson.M{"$setOnInsert": onInsert}
	if len(set) > 0 {
		update["$set"] = set
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After).
		SetProjection(withoutObjectID)

	var out T
	err = m.col.FindOneAndUpdate(ctx, bson.M{"id": id}, update, opts).Decode(&out)
	if mongo.IsDuplicateKeyError(err) {
		// two first-time writers raced on the unique id index; the loser now matches
		err = m.col.FindOneAndUpdate(ctx, bson.M{"id": id}, update, opts).Decode(&out)
	}
	if err != nil {
		return nil, fmt.Errorf("error upserting %s %q: %w", m.col.Name(), id, err)
	}
	return &out, nil
}

func (m *MongoCollection[T]) Delete(ctx context.Context, id string) (bool, error) {
	res, err := m.col.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return false, fmt.Errorf("failed to delete %s %q: %w", m.col.Name(), id, err)
	}
	return res.DeletedCount > 0, nil
}

func (m *MongoCollection[T]) Count(ctx context.Context, filter Filter) (int64, error) {
	if filter == nil {
		filter = Filter{}
	}
	n, err := m.col.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", m.col.Name(), err)
	}
	return n, nil
}

func (m *MongoCollection[T]) CountBy(ctx context.Context, field string) (map[string]int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$" + field},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}
	cursor, err := m.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate %s by %s: %w", m.col.Name(), field, err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Key   any   `bson:"_id"`
		Count int64 `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("error decoding %s aggregation: %w", m.col.Name(), err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[groupKey(row.Key)] += row.Count
	}
	return counts, nil
}

// EnsureIndexes creates the unique id index plus one index per filtered field.
func (m *MongoCollection[T]) EnsureIndexes(ctx context.Context, fields ...string) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("id_unique"),
		},
	}
	for _, f := range fields {
		indexes = append(indexes, mongo.IndexModel{
			Keys:    bson.D{{Key: f, Value: 1}},
			Options: options.Index().SetName(f + "_idx"),
		})
	}

	if _, err := m.col.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("error creating indexes on %s: %w", m.col.Name(), err)
	}
	return nil
}
