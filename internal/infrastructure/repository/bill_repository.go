package repository

import (
	"context"
	"errors"
	"time"

	"github.com/maligai/backoffice-api/internal/domain/entity"
	domainRepo "github.com/maligai/backoffice-api/internal/domain/repository"
	"github.com/maligai/backoffice-api/pkg/pagination"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type billRepository struct {
	col *mongo.Collection
}

// NewBillRepository creates a bill repository over the given database handle
func NewBillRepository(db *mongo.Database) domainRepo.BillRepository {
	return &billRepository{col: db.Collection("bills")}
}

func (r *billRepository) Create(ctx context.Context, bill *entity.Bill) error {
	if bill.ID.IsZero() {
		bill.ID = primitive.NewObjectID()
	}
	if bill.CreatedAt.IsZero() {
		bill.CreatedAt = time.Now()
	}
	_, err := r.col.InsertOne(ctx, bill)
	return err
}

func (r *billRepository) GetByID(ctx context.Context, id string) (*entity.Bill, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var bill entity.Bill
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&bill)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &bill, nil
}

func (r *billRepository) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Bill, int64, error) {
	params.Validate()

	total, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetSkip(int64(params.Offset())).
		SetLimit(int64(params.PerPage))

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	bills := make([]entity.Bill, 0, params.PerPage)
	for cur.Next(ctx) {
		var b entity.Bill
		if err := cur.Decode(&b); err != nil {
			return nil, 0, err
		}
		bills = append(bills, b)
	}
	if err := cur.Err(); err != nil {
		return nil, 0, err
	}

	return bills, total, nil
}
