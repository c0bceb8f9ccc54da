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

const clientCollection = "clients"

type ClientRepository struct {
	coll *mongo.Collection
}

func NewClientRepository(db *mongo.Database) ports.ClientRepository {
	return &ClientRepository{coll: db.Collection(clientCollection)}
}

type mongoClient struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	OwnerID      string             `bson:"owner_id"`
	Name         string             `bson:"name"`
	Email        string             `bson:"email"`
	Phone        string             `bson:"phone"`
	Requirements string             `bson:"requirements"`
	Priority     string             `bson:"priority"`
	CreatedAt    time.Time          `bson:"created_at"`
}

func (mc mongoClient) toDomain() *domain.Client {
	return &domain.Client{
		ID:           mc.ID.Hex(),
		OwnerID:      mc.OwnerID,
		Name:         mc.Name,
		Email:        mc.Email,
		Phone:        mc.Phone,
		Requirements: mc.Requirements,
		Priority:     domain.Priority(mc.Priority),
		CreatedAt:    mc.CreatedAt,
	}
}

// ownerFilter scopes a query to ownerID; an empty ownerID matches everything.
func ownerFilter(ownerID string) bson.M {
	if ownerID == "" {
		return bson.M{}
	}
	return bson.M{"owner_id": ownerID}
}

func (r *ClientRepository) Create(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	doc := mongoClient{
		OwnerID:      client.OwnerID,
		Name:         client.Name,
		Email:        client.Email,
		Phone:        client.Phone,
		Requirements: client.Requirements,
		Priority:     string(client.Priority),
		CreatedAt:    client.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert client: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *ClientRepository) FindByID(ctx context.Context, id string) (*domain.Client, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrClientNotFound
	}

	var mc mongoClient
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrClientNotFound
		}
		return nil, fmt.Errorf("find client: %w", err)
	}
	return mc.toDomain(), nil
}

func (r *ClientRepository) List(ctx context.Context, ownerID string) ([]*domain.Client, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, ownerFilter(ownerID), opts)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoClient
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode clients: %w", err)
	}

	clients := make([]*domain.Client, 0, len(docs))
	for _, d := range docs {
		clients = append(clients, d.toDomain())
	}
	return clients, nil
}

func (r *ClientRepository) Update(ctx context.Context, client *domain.Client) error {
	oid, err := primitive.ObjectIDFromHex(client.ID)
	if err != nil {
		return domain.ErrClientNotFound
	}

	update := bson.M{"$set": bson.M{
		"name":         client.Name,
		"email":        client.Email,
		"phone":        client.Phone,
		"requirements": client.Requirements,
		"priority":     string(client.Priority),
	}}

	res, err := r.coll.UpdateByID(ctx, oid, update)
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrClientNotFound
	}
	return nil
}

func (r *ClientRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrClientNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrClientNotFound
	}
	return nil
}

func (r *ClientRepository) DeleteByOwner(ctx context.Context, ownerID string) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{"owner_id": ownerID})
	if err != nil {
		return 0, fmt.Errorf("delete clients by owner: %w", err)
	}
	return res.DeletedCount, nil
}

func (r *ClientRepository) Count(ctx context.Context, ownerID string) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, ownerFilter(ownerID))
	if err != nil {
		return 0, fmt.Errorf("count clients: %w", err)
	}
	return n, nil
}

func (r *ClientRepository) CountByPriority(ctx context.Context, ownerID string, priority domain.Priority) (int64, error) {
	filter := ownerFilter(ownerID)
	filter["priority"] = string(priority)
	n, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count clients by priority: %w", err)
	}
	return n, nil
}
