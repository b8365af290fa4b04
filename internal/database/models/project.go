package models

import "github.com/google/uuid"

// Project is a showcased student project
type Project struct {
	BaseModel
	Name         string       `json:"name" gorm:"not null;size:255" validate:"required,min=1,max=255"`
	Description  string       `json:"description" gorm:"type:text"`
	Link         string       `json:"link" gorm:"type:text"`
	CustomValues CustomValues `json:"-" gorm:"type:text"`
	IsActive     bool         `json:"is_active" gorm:"not null;default:true;index"`

	Members []TeamMember `json:"members,omitempty" gorm:"foreignKey:ProjectID"`
}

// TableName returns the table name for Project
func (Project) TableName() string {
	return "projects"
}

// TeamMember is a person credited on a project
type TeamMember struct {
	BaseModel
	ProjectID uuid.UUID `json:"project_id" gorm:"type:uuid;not null;index"`
	Name      string    `json:"name" gorm:"not null;size:255"`
	LinkedIn  string    `json:"linkedin" gorm:"column:linkedin;size:255"`
}

// TableName returns the table name for TeamMember
func (TeamMember) TableName() string {
	return "team_members"
}
