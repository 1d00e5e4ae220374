package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/omsorgsplus/booking-api/internal/core/domain"
	"github.com/omsorgsplus/booking-api/internal/core/ports"
)

const collectionBookings = "bookings"

type BookingRepository struct {
	col *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) *BookingRepository {
	return &BookingRepository{col: db.Collection(collectionBookings)}
}

type bookingDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	StaffID   string             `bson:"staffId"`
	Datetime  *time.Time         `bson:"datetime,omitempty"`
	Need      string             `bson:"need"`
	Address   string             `bson:"address"`
	UserEmail string             `bson:"userEmail"`
	CreatedAt time.Time          `bson:"createdAt"`
}

func bookingToDocument(b *domain.Booking) bookingDocument {
	d := bookingDocument{
		StaffID:   b.StaffID,
		Need:      b.Need,
		Address:   b.Address,
		UserEmail: b.UserEmail,
		CreatedAt: b.CreatedAt.UTC(),
	}
	if b.Datetime != nil {
		t := b.Datetime.UTC()
		d.Datetime = &t
	}
	return d
}

func (d bookingDocument) toDomain() *domain.Booking {
	return &domain.Booking{
		ID:        d.ID.Hex(),
		StaffID:   d.StaffID,
		Datetime:  d.Datetime,
		Need:      d.Need,
		Address:   d.Address,
		UserEmail: d.UserEmail,
		CreatedAt: d.CreatedAt,
	}
}

// Create inserts a booking document and copies the generated id back.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, bookingToDocument(b))
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		b.ID = oid.Hex()
	}
	return nil
}

// List returns bookings newest first, optionally scoped to one staff id.
func (r *BookingRepository) List(ctx context.Context, filter ports.BookingFilter) ([]*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bookingFilter(filter), options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("find bookings: %w", err)
	}
	defer cur.Close(ctx)

	var docs []bookingDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode bookings: %w", err)
	}

	out := make([]*domain.Booking, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func bookingFilter(f ports.BookingFilter) bson.M {
	q := bson.M{}
	if f.StaffID != "" {
		q["staffId"] = f.StaffID
	}
	return q
}

func (r *BookingRepository) FindByID(ctx context.Context, id string) (*domain.Booking, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d bookingDocument
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("find booking %s: %w", id, err)
	}
	return d.toDomain(), nil
}

// EnsureIndexes creates the indexes used by List.
func (r *BookingRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "staffId", Value: 1}, {Key: "createdAt", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
