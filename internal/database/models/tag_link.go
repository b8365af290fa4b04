package models

import "github.com/google/uuid"

// TagLink ties an entity to exactly one option of a category.
// The unique index on (entity_type, entity_id, category_id) enforces one option per category per entity.
type TagLink struct {
	BaseModel
	EntityType EntityType `json:"entity_type" gorm:"type:varchar(20);not null;uniqueIndex:idx_tag_links_entity_category;index:idx_tag_links_entity"`
	EntityID   uuid.UUID  `json:"entity_id" gorm:"type:uuid;not null;uniqueIndex:idx_tag_links_entity_category;index:idx_tag_links_entity"`
	CategoryID uuid.UUID  `json:"category_id" gorm:"type:uuid;not null;uniqueIndex:idx_tag_links_entity_category"`
	OptionID   uuid.UUID  `json:"option_id" gorm:"type:uuid;not null;index"`

	Category Category       `json:"-" gorm:"foreignKey:CategoryID"`
	Option   CategoryOption `json:"-" gorm:"foreignKey:OptionID"`
}

// TableName returns the table name for TagLink
func (TagLink) TableName() string {
	return "tag_links"
}
