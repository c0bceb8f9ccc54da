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

const quotationCollection = "quotations"

type QuotationRepository struct {
	coll *mongo.Collection
}

func NewQuotationRepository(db *mongo.Database) ports.QuotationRepository {
	return &QuotationRepository{coll: db.Collection(quotationCollection)}
}

type mongoQuotation struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	OwnerID    string             `bson:"owner_id"`
	ClientID   string             `bson:"client_id"`
	ClientName string             `bson:"client_name"`
	Details    string             `bson:"details"`
	Amount     float64            `bson:"amount"`
	Status     string             `bson:"status"`
	CreatedAt  time.Time          `bson:"created_at"`
}

func (mq mongoQuotation) toDomain() *domain.Quotation {
	return &domain.Quotation{
		ID:         mq.ID.Hex(),
		OwnerID:    mq.OwnerID,
		ClientID:   mq.ClientID,
		ClientName: mq.ClientName,
		Details:    mq.Details,
		Amount:     mq.Amount,
		Status:     domain.QuotationStatus(mq.Status),
		CreatedAt:  mq.CreatedAt,
	}
}

func (r *QuotationRepository) Create(ctx context.Context, quotation *domain.Quotation) (*domain.Quotation, error) {
	doc := mongoQuotation{
		OwnerID:    quotation.OwnerID,
		ClientID:   quotation.ClientID,
		ClientName: quotation.ClientName,
		Details:    quotation.Details,
		Amount:     quotation.Amount,
		Status:     string(quotation.Status),
		CreatedAt:  quotation.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert quotation: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *QuotationRepository) FindByID(ctx context.Context, id string) (*domain.Quotation, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrQuotationNotFound
	}

	var mq mongoQuotation
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mq); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrQuotationNotFound
		}
		return nil, fmt.Errorf("find quotation: %w", err)
	}
	return mq.toDomain(), nil
}

func (r *QuotationRepository) List(ctx context.Context, ownerID string) ([]*domain.Quotation, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, ownerFilter(ownerID), opts)
	if err != nil {
		return nil, fmt.Errorf("list quotations: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoQuotation
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode quotations: %w", err)
	}

	quotations := make([]*domain.Quotation, 0, len(docs))
	for _, d := range docs {
		quotations = append(quotations, d.toDomain())
	}
	return quotations, nil
}

func (r *QuotationRepository) Update(ctx context.Context, quotation *domain.Quotation) error {
	oid, err := primitive.ObjectIDFromHex(quotation.ID)
	if err != nil {
		return domain.ErrQuotationNotFound
	}

	update := bson.M{"$set": bson.M{
		"client_id":   quotation.ClientID,
		"client_name": quotation.ClientName,
		"details":     quotation.Details,
		"amount":      quotation.Amount,
		"status":      string(quotation.Status),
	}}

	res, err := r.coll.UpdateByID(ctx, oid, update)
	if err != nil {
		return fmt.Errorf("update quotation: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrQuotationNotFound
	}
	return nil
}

func (r *QuotationRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrQuotationNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete quotation: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrQuotationNotFound
	}
	return nil
}

func (r *QuotationRepository) DeleteByOwner(ctx context.Context, ownerID string) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{"owner_id": ownerID})
	if err != nil {
		return 0, fmt.Errorf("delete quotations by owner: %w", err)
	}
	return res.DeletedCount, nil
}

func (r *QuotationRepository) DeleteByClient(ctx context.Context, clientID string) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{"client_id": clientID})
	if err != nil {
		return 0, fmt.Errorf("delete quotations by client: %w", err)
	}
	return res.DeletedCount, nil
}

func (r *QuotationRepository) RefreshClientName(ctx context.Context, clientID, name string) error {
	_, err := r.coll.UpdateMany(ctx,
		bson.M{"client_id": clientID},
		bson.M{"$set": bson.M{"client_name": name}},
	)
	if err != nil {
		return fmt.Errorf("refresh quotation client name: %w", err)
	}
	return nil
}

func (r *QuotationRepository) Count(ctx context.Context, ownerID string) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, ownerFilter(ownerID))
	if err != nil {
		return 0, fmt.Errorf("count quotations: %w", err)
	}
	return n, nil
}
