package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const ContentCollection = "content"

type contentDocument struct {
	ID        string    `bson:"_id"`
	Body      bson.Raw  `bson:"body"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// MongoContentRepository serves the content documents from a collection where
// each document is {_id: <resource>, body: <the JSON document>}.
type MongoContentRepository struct {
	mongoClient *mongo.Client
	database    string
}

func NewMongoContentRepository(mongoClient *mongo.Client, database string) *MongoContentRepository {
	return &MongoContentRepository{
		mongoClient: mongoClient,
		database:    database,
	}
}

func (r *MongoContentRepository) collection() *mongo.Collection {
	return r.mongoClient.Database(r.database).Collection(ContentCollection)
}

func (r *MongoContentRepository) Load(ctx context.Context, resource string) ([]byte, error) {
	var doc contentDocument
	err := r.collection().FindOne(ctx, bson.M{"_id": resource}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%s: %w", resource, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	return bson.MarshalExtJSON(doc.Body, false, false)
}

// Save upserts the JSON document under resource. Key order of the document
// is kept, social.json relies on it.
func (r *MongoContentRepository) Save(ctx context.Context, resource string, body []byte) error {
	var d bson.D
	if err := bson.UnmarshalExtJSON(body, false, &d); err != nil {
		return fmt.Errorf("%s: %w", resource, err)
	}

	raw, err := bson.Marshal(d)
	if err != nil {
		return err
	}

	_, err = r.collection().ReplaceOne(ctx,
		bson.M{"_id": resource},
		contentDocument{
			ID:        resource,
			Body:      raw,
			UpdatedAt: time.Now().UTC(),
		},
		options.Replace().SetUpsert(true),
	)
	return err
}

func (r *MongoContentRepository) Resources(ctx context.Context) ([]string, error) {
	cursor, err := r.collection().Find(ctx, bson.M{}, options.Find().SetProjection(bson.M{"_id": 1}).SetSort(bson.M{"_id": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []struct {
		ID string `bson:"_id"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	resources := make([]string, 0, len(docs))
	for _, doc := range docs {
		resources = append(resources, doc.ID)
	}
	return resources, nil
}
