package posts

import (
	"errors"
	"strings"
)

// ValidCategory reports whether the category is one we accept.
func ValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// ValidateCreate checks the creation payload beyond what binding covers. The
// date field must match the post type: lost posts carry dateLost, found posts
// carry dateFound, never both.
func ValidateCreate(req *CreateRequest) error {
	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)
	req.Address = strings.TrimSpace(req.Address)

	if !ValidCategory(req.Category) {
		return errors.New("invalid category")
	}

	switch req.Type {
	case TypeLost:
		if req.DateLost == nil || req.DateFound != nil {
			return errors.New("a lost post requires dateLost and must not carry dateFound")
		}
	case TypeFound:
		if req.DateFound == nil || req.DateLost != nil {
			return errors.New("a found post requires dateFound and must not carry dateLost")
		}
	default:
		return errors.New("type must be lost or found")
	}

	if req.Address == "" {
		return errors.New("address is required")
	}

	return nil
}

// ValidateUpdate checks the partial update payload.
func ValidateUpdate(req *UpdateRequest) error {
	if req.Category != nil && !ValidCategory(*req.Category) {
		return errors.New("invalid category")
	}
	if req.Address != nil && strings.TrimSpace(*req.Address) == "" {
		return errors.New("address cannot be empty")
	}
	return nil
}
