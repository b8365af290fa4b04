package models

import "github.com/google/uuid"

// Category is a named dimension entities can be tagged along, e.g. "Domain".
// SentinelOption, when set, names the option that stands in for free-text values.
type Category struct {
	BaseModel
	Name           string `json:"name" gorm:"not null;size:100;uniqueIndex" validate:"required,min=1,max=100"`
	SentinelOption string `json:"sentinel_option" gorm:"size:255"`

	Options []CategoryOption `json:"options,omitempty" gorm:"foreignKey:CategoryID"`
}

// TableName returns the table name for Category
func (Category) TableName() string {
	return "categories"
}

// HasSentinel reports whether the category accepts free-text values
func (c *Category) HasSentinel() bool {
	return c.SentinelOption != ""
}

// CategoryOption is one allowed value of a Category. Names are unique within their category.
type CategoryOption struct {
	BaseModel
	CategoryID uuid.UUID `json:"category_id" gorm:"type:uuid;not null;uniqueIndex:idx_category_options_category_name;index:idx_category_options_position"`
	Name       string    `json:"name" gorm:"not null;size:255;uniqueIndex:idx_category_options_category_name" validate:"required,min=1,max=255"`
	Position   int       `json:"position" gorm:"not null;default:0;index:idx_category_options_position"`
}

// TableName returns the table name for CategoryOption
func (CategoryOption) TableName() string {
	return "category_options"
}
