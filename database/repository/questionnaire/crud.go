package questionnaireRepo

import (
	"context"
	"errors"
	"time"

	"nutrify/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Save inserts a completed questionnaire record under its session identifier.
func (r *mongoQuestionnaireRepo) Save(ctx context.Context, record models.QuestionnaireRecord) (*models.QuestionnaireRecord, error) {
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}
	if _, err := r.coll.InsertOne(ctx, record); err != nil {
		return nil, err
	}
	return &record, nil
}

// FindBySessionID returns the record for a session identifier, or ErrNotFound.
func (r *mongoQuestionnaireRepo) FindBySessionID(ctx context.Context, sessionID string) (*models.QuestionnaireRecord, error) {
	var record models.QuestionnaireRecord
	err := r.coll.FindOne(ctx, bson.M{"sessionId": sessionID}).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}
