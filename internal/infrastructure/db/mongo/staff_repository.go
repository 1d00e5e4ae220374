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
)

// collectionStaff matches the pluralised name existing deployments use.
const collectionStaff = "staffs"

type StaffRepository struct {
	col *mongo.Collection
}

func NewStaffRepository(db *mongo.Database) *StaffRepository {
	return &StaffRepository{col: db.Collection(collectionStaff)}
}

type staffDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Role        string             `bson:"role"`
	Experience  int                `bson:"experience"`
	Rating      float64            `bson:"rating"`
	RatingCount int                `bson:"ratingCount"`
	Ratings     []int              `bson:"ratings"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

func staffToDocument(s *domain.StaffMember) staffDocument {
	ratings := s.Ratings
	if ratings == nil {
		ratings = []int{}
	}
	return staffDocument{
		Name:        s.Name,
		Role:        s.Role,
		Experience:  s.Experience,
		Rating:      s.Rating,
		RatingCount: s.RatingCount,
		Ratings:     ratings,
		CreatedAt:   s.CreatedAt.UTC(),
		UpdatedAt:   s.UpdatedAt.UTC(),
	}
}

func (d staffDocument) toDomain() *domain.StaffMember {
	ratings := d.Ratings
	if ratings == nil {
		ratings = []int{}
	}
	return &domain.StaffMember{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Role:        d.Role,
		Experience:  d.Experience,
		Rating:      d.Rating,
		RatingCount: d.RatingCount,
		Ratings:     ratings,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// Create inserts a new staff document and copies the generated id back.
func (r *StaffRepository) Create(ctx context.Context, s *domain.StaffMember) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, staffToDocument(s))
	if err != nil {
		return fmt.Errorf("insert staff: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		s.ID = oid.Hex()
	}
	return nil
}

// FindAll returns every staff member in insertion order.
func (r *StaffRepository) FindAll(ctx context.Context) ([]*domain.StaffMember, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find staff: %w", err)
	}
	defer cur.Close(ctx)

	var docs []staffDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode staff: %w", err)
	}

	out := make([]*domain.StaffMember, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (r *StaffRepository) FindByID(ctx context.Context, id string) (*domain.StaffMember, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d staffDocument
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrStaffNotFound
		}
		return nil, fmt.Errorf("find staff %s: %w", id, err)
	}
	return d.toDomain(), nil
}

// SaveRatings writes back the full ratings list and the derived aggregate.
// The last writer wins.
func (r *StaffRepository) SaveRatings(ctx context.Context, s *domain.StaffMember) error {
	oid, err := parseID(s.ID)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"ratings":     s.Ratings,
		"rating":      s.Rating,
		"ratingCount": s.RatingCount,
		"updatedAt":   s.UpdatedAt.UTC(),
	}}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("update staff ratings: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrStaffNotFound
	}
	return nil
}
