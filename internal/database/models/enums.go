package models

// EntityType identifies the kind of entity a tag link points at
type EntityType string

const (
	EntityTypeHostel  EntityType = "hostel"
	EntityTypeProject EntityType = "project"
)

// IsValid checks if the EntityType is one of the taggable kinds
func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeHostel, EntityTypeProject:
		return true
	default:
		return false
	}
}

// TableName returns the table holding entities of this type
func (e EntityType) TableName() string {
	switch e {
	case EntityTypeHostel:
		return Hostel{}.TableName()
	case EntityTypeProject:
		return Project{}.TableName()
	default:
		return ""
	}
}

// UserRole is the role stored on a user row
type UserRole string

const (
	UserRoleUser       UserRole = "user"
	UserRoleAdmin      UserRole = "admin"
	UserRoleSuperAdmin UserRole = "super_admin"
)

// IsValid checks if the UserRole is known
func (r UserRole) IsValid() bool {
	return r == UserRoleUser || r.IsAdmin()
}

// IsAdmin reports whether the role may moderate the directory
func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin || r == UserRoleSuperAdmin
}

// ImageType classifies a hostel image
type ImageType string

const (
	ImageTypeGeneral  ImageType = "general"
	ImageTypeRoom     ImageType = "room"
	ImageTypeExterior ImageType = "exterior"
	ImageTypeCommon   ImageType = "common_area"
)

// IsValid checks if the ImageType is valid
func (t ImageType) IsValid() bool {
	switch t {
	case ImageTypeGeneral, ImageTypeRoom, ImageTypeExterior, ImageTypeCommon:
		return true
	default:
		return false
	}
}
