package repository

import "gorm.io/gorm"

// Repositories groups the write-side repositories bound to one *gorm.DB.
// Services build one per transaction so every step shares it.
type Repositories struct {
	Categories *CategoryRepository
	TagLinks   *TagLinkRepository
	Entities   *EntityRepository
	Hostels    *HostelRepository
	Projects   *ProjectRepository
	Images     *HostelImageRepository
	Ratings    *RatingRepository
	Comments   *CommentRepository
	Users      *UserRepository
}

// New binds every repository to db
func New(db *gorm.DB) *Repositories {
	return &Repositories{
		Categories: NewCategoryRepository(db),
		TagLinks:   NewTagLinkRepository(db),
		Entities:   NewEntityRepository(db),
		Hostels:    NewHostelRepository(db),
		Projects:   NewProjectRepository(db),
		Images:     NewHostelImageRepository(db),
		Ratings:    NewRatingRepository(db),
		Comments:   NewCommentRepository(db),
		Users:      NewUserRepository(db),
	}
}
