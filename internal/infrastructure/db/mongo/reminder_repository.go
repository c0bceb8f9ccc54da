package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/salesflow/crm-api/internal/core/domain"
	"github.com/salesflow/crm-api/internal/core/ports"
)

const reminderCollection = "reminders"

type ReminderRepository struct {
	coll *mongo.Collection
}

func NewReminderRepository(db *mongo.Database) ports.ReminderRepository {
	return &ReminderRepository{coll: db.Collection(reminderCollection)}
}

type mongoReminder struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	OwnerID    string             `bson:"owner_id"`
	ClientID   string             `bson:"client_id"`
	ClientName string             `bson:"client_name"`
	Message    string             `bson:"message"`
	RemindAt   time.Time          `bson:"remind_at"`
	Type       string             `bson:"type"`
	Completed  bool               `bson:"completed"`
	CreatedAt  time.Time          `bson:"created_at"`
}

func (mr mongoReminder) toDomain() *domain.Reminder {
	return &domain.Reminder{
		ID:         mr.ID.Hex(),
		OwnerID:    mr.OwnerID,
		ClientID:   mr.ClientID,
		ClientName: mr.ClientName,
		Message:    mr.Message,
		RemindAt:   mr.RemindAt,
		Type:       domain.ReminderType(mr.Type),
		Completed:  mr.Completed,
		CreatedAt:  mr.CreatedAt,
	}
}

func (r *ReminderRepository) Create(ctx context.Context, reminder *domain.Reminder) (*domain.Reminder, error) {
	doc := mongoReminder{
		OwnerID:    reminder.OwnerID,
		ClientID:   reminder.ClientID,
		ClientName: reminder.ClientName,
		Message:    reminder.Message,
		RemindAt:   reminder.RemindAt,
		Type:       string(reminder.Type),
		Completed:  reminder.Completed,
		CreatedAt:  reminder.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert reminder: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *ReminderRepository) FindByID(ctx context.Context, id string) (*domain.Reminder, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrReminderNotFound
	}

	var mr mongoReminder
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mr); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrReminderNotFound
		}
		return nil, fmt.Errorf("find reminder: %w", err)
	}
	return mr.toDomain(), nil
}

// List returns reminders ordered soonest first, so upcoming follow-ups lead.
func (r *ReminderRepository) List(ctx context.Context, ownerID string) ([]*domain.Reminder, error) {
	opts := options.Find().SetSort(bson.D{{Key: "remind_at", Value: 1}})
	cursor, err := r.coll.Find(ctx, ownerFilter(ownerID), opts)
	if err != nil {
		return nil, fmt.Errorf("list reminders: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoReminder
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode reminders: %w", err)
	}

	reminders := make([]*domain.Reminder, 0, len(docs))
	for _, d := range docs {
		reminders = append(reminders, d.toDomain())
	}
	return reminders, nil
}

func (r *ReminderRepository) Update(ctx context.Context, reminder *domain.Reminder) error {
	oid, err := primitive.ObjectIDFromHex(reminder.ID)
	if err != nil {
		return domain.ErrReminderNotFound
	}

	update := bson.M{"$set": bson.M{
		"client_id":   reminder.ClientID,
		"client_name": reminder.ClientName,
		"message":     reminder.Message,
		"remind_at":   reminder.RemindAt,
		"type":        string(reminder.Type),
		"completed":   reminder.Completed,
	}}

	res, err := r.coll.UpdateByID(ctx, oid, update)
	if err != nil {
		return fmt.Errorf("update reminder: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrReminderNotFound
	}
	return nil
}

func (r *ReminderRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrReminderNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete reminder: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrReminderNotFound
	}
	return nil
}

func (r *ReminderRepository) DeleteByOwner(ctx context.Context, ownerID string) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{"owner_id": ownerID})
	if err != nil {
		return 0, fmt.Errorf("delete reminders by owner: %w", err)
	}
	return res.DeletedCount, nil
}

func (r *ReminderRepository) DeleteByClient(ctx context.Context, clientID string) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{"client_id": clientID})
	if err != nil {
		return 0, fmt.Errorf("delete reminders by client: %w", err)
	}
	return res.DeletedCount, nil
}

func (r *ReminderRepository) RefreshClientName(ctx context.Context, clientID, name string) error {
	_, err := r.coll.UpdateMany(ctx,
		bson.M{"client_id": clientID},
		bson.M{"$set": bson.M{"client_name": name}},
	)
	if err != nil {
		return fmt.Errorf("refresh reminder client name: %w", err)
	}
	return nil
}

func (r *ReminderRepository) CountPending(ctx context.Context, ownerID string) (int64, error) {
	filter := ownerFilter(ownerID)
	filter["completed"] = false
	n, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count pending reminders: %w", err)
	}
	return n, nil
}
