package repository

import (
	"context"
	"errors"
	"time"

	"voyago/database"
	"voyago/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrBookingNotFound is returned for lookups of unknown booking IDs.
var ErrBookingNotFound = errors.New("booking record not found")

// BookingRepository persists confirmed bookings.
type BookingRepository interface {
	Create(ctx context.Context, record models.BookingRecord) (string, error)
	GetByID(ctx context.Context, id string) (*models.BookingRecord, error)
	GetBySessionID(ctx context.Context, sessionID string) ([]models.BookingRecord, error)
	MarkReminderSent(ctx context.Context, id string) error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns the mongo-backed BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	coll := database.MongoClient.Database("voyago").Collection("bookings")
	return &mongoBookingRepo{coll: coll}
}

// Create inserts a new booking record and returns its ID.
func (r *mongoBookingRepo) Create(ctx context.Context, record models.BookingRecord) (string, error) {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	record.CreatedAt = time.Now()
	record.UpdatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, record)
	if err != nil {
		return "", err
	}
	return record.ID, nil
}

// GetByID returns a booking record by its ID.
func (r *mongoBookingRepo) GetByID(ctx context.Context, id string) (*models.BookingRecord, error) {
	var record models.BookingRecord
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&record)
	if err == mongo.ErrNoDocuments {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// GetBySessionID fetches all bookings made within a trip session, newest first.
func (r *mongoBookingRepo) GetBySessionID(ctx context.Context, sessionID string) ([]models.BookingRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"sessionId": sessionID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.BookingRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// MarkReminderSent flags the departure reminder as delivered.
func (r *mongoBookingRepo) MarkReminderSent(ctx context.Context, id string) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"reminderSent": true, "updatedAt": time.Now()}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrBookingNotFound
	}
	return nil
}
