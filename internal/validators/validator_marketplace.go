package validators

import (
	"context"
	"net/mail"

	"github.com/aivahq/aiva/models"
)

const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPlan     = "plan"
	FieldCreator  = "creator"
	FieldCategory = "category"
)

// MarketplaceValidator validates the marketplace domain models: user
// accounts, avatar listings, and bare category values.
type MarketplaceValidator struct {
}

func NewMarketplaceValidator() Validator {
	return &MarketplaceValidator{}
}

func (v *MarketplaceValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, *value, fields...)

	case models.Avatar:
		return v.validateAvatar(ctx, value, fields...)
	case *models.Avatar:
		return v.validateAvatar(ctx, *value, fields...)

	case models.Category:
		return v.validateCategory(value)

	default:
		return ErrUnsupportedType
	}
}

func (v *MarketplaceValidator) validateUser(_ context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldPlan}
	}

	for _, field := range fields {
		switch field {
		case FieldName:
			if user.Name == "" {
				return ErrEmptyName
			}
		case FieldEmail:
			if user.Email == "" {
				return ErrEmptyEmail
			}
			if _, err := mail.ParseAddress(user.Email); err != nil {
				return ErrMalformedEmail
			}
		case FieldPlan:
			if user.Plan != "" && !user.Plan.Valid() {
				return ErrUnknownPlan
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *MarketplaceValidator) validateAvatar(_ context.Context, avatar models.Avatar, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldCreator, FieldCategory}
	}

	for _, field := range fields {
		switch field {
		case FieldName:
			if avatar.Name == "" {
				return ErrEmptyName
			}
		case FieldCreator:
			if avatar.Creator == "" {
				return ErrEmptyCreator
			}
		case FieldCategory:
			if !avatar.Category.Valid() {
				return ErrUnknownCategory
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *MarketplaceValidator) validateCategory(category models.Category) error {
	if !category.Valid() {
		return ErrUnknownCategory
	}
	return nil
}
