package users

import (
	"encoding/json"
	"fmt"

	"storefront/internal/entities"
)

func ToDomain(id string, doc []byte) (*entities.User, error) {
	var userDoc UserDoc
	if err := json.Unmarshal(doc, &userDoc); err != nil {
		return nil, fmt.Errorf("decode user document %s: %w", id, err)
	}

	role := entities.UserRoleType(userDoc.Role)
	if userDoc.Role == "" {
		role = entities.DefaultUserRole
	}

	return &entities.User{
		ID:      id,
		Role:    role,
		Name:    userDoc.Name,
		Phone:   userDoc.Phone,
		Address: userDoc.Address,
	}, nil
}
