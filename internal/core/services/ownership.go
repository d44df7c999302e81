package services

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	apperrors "viewtube/pkg/errors"
)

// RequireOwner is the single ownership gate for mutating operations. Both
// sides are compared as canonical hex strings; structural equality across
// differing identifier representations is unreliable. Existence must be
// checked before calling: absence is a 404, never a 403.
func RequireOwner(resource, action string, owner, actor primitive.ObjectID) error {
	if owner.Hex() != actor.Hex() {
		return apperrors.NewForbiddenError(
			fmt.Sprintf("You are not authorized to %s this %s", action, resource))
	}
	return nil
}

// parseID canonicalizes a path identifier, rejecting missing or malformed
// values before any store access.
func parseID(resource, id string) (primitive.ObjectID, error) {
	if id == "" {
		return primitive.NilObjectID, apperrors.NewInvalidInputError(
			fmt.Sprintf("%s ID is required", resource))
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, apperrors.NewInvalidInputError(
			fmt.Sprintf("Invalid %s ID", resource))
	}
	return oid, nil
}
