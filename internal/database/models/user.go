package models

// User is a directory user identified by the external auth provider's uid
type User struct {
	BaseModel
	AuthUID     string   `json:"auth_uid" gorm:"not null;size:128;uniqueIndex"`
	DisplayName string   `json:"display_name" gorm:"size:255"`
	Role        UserRole `json:"role" gorm:"type:varchar(20);not null;default:'user'"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
