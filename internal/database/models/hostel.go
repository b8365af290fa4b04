package models

import "github.com/google/uuid"

// Hostel is a listed accommodation. Rows are never hard deleted; IsActive=false hides them.
type Hostel struct {
	BaseModel
	Name         string       `json:"name" gorm:"not null;size:255" validate:"required,min=1,max=255"`
	Description  string       `json:"description" gorm:"type:text"`
	Location     string       `json:"location" gorm:"not null;size:500" validate:"required,max=500"`
	Address      string       `json:"address" gorm:"type:text"`
	PhoneNumber  string       `json:"phone_number" gorm:"size:20"`
	Email        string       `json:"email" gorm:"size:255"`
	Website      string       `json:"website" gorm:"size:255"`
	PriceRange   string       `json:"price_range" gorm:"size:100"`
	CustomValues CustomValues `json:"-" gorm:"type:text"`
	CreatedBy    *uuid.UUID   `json:"created_by,omitempty" gorm:"type:uuid;index"`
	IsActive     bool         `json:"is_active" gorm:"not null;default:true;index"`

	Images   []HostelImage `json:"-" gorm:"foreignKey:HostelID"`
	Ratings  []Rating      `json:"-" gorm:"foreignKey:HostelID"`
	Comments []Comment     `json:"-" gorm:"foreignKey:HostelID"`
}

// TableName returns the table name for Hostel
func (Hostel) TableName() string {
	return "hostels"
}

// HostelImage holds image metadata only; the file itself lives elsewhere.
type HostelImage struct {
	BaseModel
	HostelID  uuid.UUID `json:"hostel_id" gorm:"type:uuid;not null;index"`
	ImageURL  string    `json:"image_url" gorm:"type:text;not null"`
	ImageType ImageType `json:"image_type" gorm:"type:varchar(50);not null;default:'general'"`
	IsPrimary bool      `json:"is_primary" gorm:"not null;default:false"`
}

// TableName returns the table name for HostelImage
func (HostelImage) TableName() string {
	return "hostel_images"
}
