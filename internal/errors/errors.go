package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in this category"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ReferentialIntegrityError is returned when a write would leave a row pointing at
// something that no longer exists (or delete something still referenced).
type ReferentialIntegrityError struct {
	Entity  string
	Message string
}

func (e *ReferentialIntegrityError) Error() string {
	if e.Entity != "" {
		return fmt.Sprintf("referential integrity violation on %s: %s", e.Entity, e.Message)
	}
	return fmt.Sprintf("referential integrity violation: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrCategoryNotFound = &NotFoundError{Entity: "category"}
	ErrOptionNotFound   = &NotFoundError{Entity: "category option"}
	ErrHostelNotFound   = &NotFoundError{Entity: "hostel"}
	ErrProjectNotFound  = &NotFoundError{Entity: "project"}
	ErrRatingNotFound   = &NotFoundError{Entity: "rating"}
	ErrCommentNotFound  = &NotFoundError{Entity: "comment"}
	ErrImageNotFound    = &NotFoundError{Entity: "hostel image"}
	ErrUserNotFound     = &NotFoundError{Entity: "user"}
)

// Already Exists Errors
var (
	ErrCategoryExists = &AlreadyExistsError{Entity: "category", Context: "with this name"}
	ErrOptionExists   = &AlreadyExistsError{Entity: "category option", Context: "with this name in the category"}
	ErrRatingExists   = &AlreadyExistsError{Entity: "rating", Context: "for this user and hostel"}
	ErrUserExists     = &AlreadyExistsError{Entity: "user", Context: "with this auth uid"}
)

// Tagging Errors
var (
	ErrOptionCategoryMismatch = &ValidationError{Field: "option_id", Message: "option does not belong to the category"}
	ErrInvalidSentinelOption  = &ValidationError{Field: "sentinel_option", Message: "must name one of the category options"}
	ErrUnsupportedEntityType  = errors.New("unsupported entity type")
)

// Authentication Errors
var (
	ErrMissingToken     = &AuthenticationError{Message: "authorization header required"}
	ErrInvalidToken     = &AuthenticationError{Message: "invalid or expired token"}
	ErrInsufficientRole = &AuthorizationError{Message: "insufficient role for this operation"}
)

// Configuration Errors
var (
	ErrJWTSecretNotSet   = &ConfigurationError{Message: "JWT_SECRET must be set when auth is enabled or in production"}
	ErrUnknownDBDriver   = &ConfigurationError{Message: "DB_DRIVER must be postgres or sqlite"}
	ErrSeedFileMissing   = &ConfigurationError{Message: "seed file path is required"}
	ErrDatabaseNameEmpty = &ConfigurationError{Message: "database name is required"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.Is(err, &NotFoundError{}) || errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.Is(err, &AlreadyExistsError{}) || errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.Is(err, &ValidationError{}) || errors.As(err, &validationErr)
}

// IsReferentialIntegrity checks if an error is a ReferentialIntegrityError
func IsReferentialIntegrity(err error) bool {
	var refErr *ReferentialIntegrityError
	return errors.As(err, &refErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.Is(err, &AuthenticationError{}) || errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.Is(err, &AuthorizationError{}) || errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.Is(err, &ConfigurationError{}) || errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewReferentialIntegrityError creates a new ReferentialIntegrityError
func NewReferentialIntegrityError(entity, message string) error {
	return &ReferentialIntegrityError{Entity: entity, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
