package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/adminhub/user-console/internal/core/domain"
	"github.com/adminhub/user-console/internal/core/ports"
)

const addressesCollection = "addresses"

var addressSortFields = map[string]string{
	"street":    "street",
	"city":      "city",
	"state":     "state",
	"zipCode":   "zip_code",
	"createdAt": "created_at",
}

type AddressRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewAddressRepository(db *mongo.Database) *AddressRepository {
	return &AddressRepository{db: db, coll: db.Collection(addressesCollection)}
}

type addressDoc struct {
	ID           int64     `bson:"_id"`
	Street       string    `bson:"street"`
	Number       string    `bson:"number"`
	Complement   string    `bson:"complement,omitempty"`
	Neighborhood string    `bson:"neighborhood,omitempty"`
	City         string    `bson:"city"`
	State        string    `bson:"state"`
	ZipCode      string    `bson:"zip_code"`
	Country      string    `bson:"country"`
	UserID       int64     `bson:"user_id"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

func toAddressDoc(a *domain.Address) addressDoc {
	return addressDoc{
		ID:           a.ID,
		Street:       a.Street,
		Number:       a.Number,
		Complement:   a.Complement,
		Neighborhood: a.Neighborhood,
		City:         a.City,
		State:        a.State,
		ZipCode:      a.ZipCode,
		Country:      a.Country,
		UserID:       a.UserID,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func (d addressDoc) toDomain() *domain.Address {
	return &domain.Address{
		ID:           d.ID,
		Street:       d.Street,
		Number:       d.Number,
		Complement:   d.Complement,
		Neighborhood: d.Neighborhood,
		City:         d.City,
		State:        d.State,
		ZipCode:      d.ZipCode,
		Country:      d.Country,
		UserID:       d.UserID,
		CreatedAt:    d.CreatedAt.UTC(),
		UpdatedAt:    d.UpdatedAt.UTC(),
	}
}

func (r *AddressRepository) Create(ctx context.Context, address *domain.Address) (*domain.Address, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextSequence(ctx, r.db, addressesCollection)
	if err != nil {
		return nil, err
	}

	doc := toAddressDoc(address)
	doc.ID = id

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert address: %w", err)
	}

	created := *address
	created.ID = id
	return &created, nil
}

func (r *AddressRepository) FindByID(ctx context.Context, userID, id int64) (*domain.Address, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": id}
	if userID > 0 {
		filter["user_id"] = userID
	}

	var doc addressDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAddressNotFound
		}
		return nil, fmt.Errorf("find address: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *AddressRepository) Update(ctx context.Context, address *domain.Address) (*domain.Address, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"street":       address.Street,
		"number":       address.Number,
		"complement":   address.Complement,
		"neighborhood": address.Neighborhood,
		"city":         address.City,
		"state":        address.State,
		"zip_code":     address.ZipCode,
		"country":      address.Country,
		"updated_at":   address.UpdatedAt,
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": address.ID, "user_id": address.UserID}, update)
	if err != nil {
		return nil, fmt.Errorf("update address: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrAddressNotFound
	}
	return address, nil
}

func (r *AddressRepository) Delete(ctx context.Context, userID, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": id}
	if userID > 0 {
		filter["user_id"] = userID
	}

	res, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("delete address: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrAddressNotFound
	}
	return nil
}

func (r *AddressRepository) ListByUser(ctx context.Context, userID int64, query ports.ListQuery) (*domain.Page[domain.Address], error) {
	return r.list(ctx, bson.M{"user_id": userID}, query)
}

func (r *AddressRepository) ListAll(ctx context.Context, query ports.ListQuery) (*domain.Page[domain.Address], error) {
	return r.list(ctx, bson.M{}, query)
}

func (r *AddressRepository) list(ctx context.Context, filter bson.M, query ports.ListQuery) (*domain.Page[domain.Address], error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if query.Search != "" {
		pattern := regexp.QuoteMeta(query.Search)
		filter["$or"] = bson.A{
			bson.M{"street": bson.M{"$regex": pattern, "$options": "i"}},
			bson.M{"city": bson.M{"$regex": pattern, "$options": "i"}},
			bson.M{"neighborhood": bson.M{"$regex": pattern, "$options": "i"}},
			bson.M{"zip_code": bson.M{"$regex": pattern, "$options": "i"}},
		}
	}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count addresses: %w", err)
	}

	opts := options.Find().
		SetSort(sortSpec(addressSortFields, query, "zip_code")).
		SetSkip(int64(query.Page * query.Size)).
		SetLimit(int64(query.Size))

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []addressDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode addresses: %w", err)
	}

	addresses := make([]domain.Address, len(docs))
	for i, d := range docs {
		addresses[i] = *d.toDomain()
	}

	page := domain.NewPage(addresses, query.Page, query.Size, total)
	return &page, nil
}

func (r *AddressRepository) DeleteByUser(ctx context.Context, userID int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.DeleteMany(ctx, bson.M{"user_id": userID}); err != nil {
		return fmt.Errorf("delete addresses by user: %w", err)
	}
	return nil
}

// EnsureIndexes creates necessary indexes on the addresses collection.
func (r *AddressRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
		{Keys: bson.D{{Key: "zip_code", Value: 1}}},
		{Keys: bson.D{{Key: "city", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
