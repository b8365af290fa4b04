package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	apperrors "hostel-directory-backend/internal/errors"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// NewValidator returns a validator that reports fields by their JSON names
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// validationError converts validator output into a ValidationError for the first failing field
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		msg := fmt.Sprintf("failed on the '%s' rule", fe.Tag())
		if fe.Param() != "" {
			msg = fmt.Sprintf("failed on the '%s=%s' rule", fe.Tag(), fe.Param())
		}
		return apperrors.NewValidationError(fe.Field(), msg)
	}
	return apperrors.NewValidationError("", err.Error())
}

// lookupError maps a missing row to notFound and wraps anything else
func lookupError(err error, notFound error, action string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}

// writeError maps constraint violations to domain errors and wraps anything else.
// exists may be nil when a unique violation is not expected.
func writeError(err error, action string, exists error) error {
	switch {
	case exists != nil && errors.Is(err, gorm.ErrDuplicatedKey):
		return exists
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return apperrors.NewReferentialIntegrityError("", fmt.Sprintf("cannot %s: row is referenced or references a missing row", action))
	default:
		return fmt.Errorf("failed to %s: %w", action, err)
	}
}
