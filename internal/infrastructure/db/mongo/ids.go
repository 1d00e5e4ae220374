package mongo

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/omsorgsplus/booking-api/internal/core/domain"
)

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domain.ErrInvalidID
	}
	return oid, nil
}
