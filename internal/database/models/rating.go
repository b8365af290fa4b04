package models

import "github.com/google/uuid"

// Rating is one user's score for one hostel
type Rating struct {
	BaseModel
	HostelID      uuid.UUID `json:"hostel_id" gorm:"type:uuid;not null;uniqueIndex:idx_ratings_hostel_user"`
	UserID        uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_ratings_hostel_user"`
	OverallRating float64   `json:"overall_rating" gorm:"not null"`

	User User `json:"-" gorm:"foreignKey:UserID"`
}

// TableName returns the table name for Rating
func (Rating) TableName() string {
	return "ratings"
}
