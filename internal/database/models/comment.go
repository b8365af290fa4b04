package models

import "github.com/google/uuid"

// Comment is a visitor comment on a hostel. UserID is optional for anonymous comments.
type Comment struct {
	BaseModel
	HostelID    uuid.UUID  `json:"hostel_id" gorm:"type:uuid;not null;index"`
	UserID      *uuid.UUID `json:"user_id,omitempty" gorm:"type:uuid;index"`
	CommentText string     `json:"comment_text" gorm:"type:text;not null"`
	UserName    string     `json:"user_name" gorm:"size:255"`
	UserEmail   string     `json:"user_email" gorm:"size:255"`
	IsVerified  bool       `json:"is_verified" gorm:"not null;default:false"`
}

// TableName returns the table name for Comment
func (Comment) TableName() string {
	return "comments"
}
