package repository

import (
	"context"
	"fmt"
	"strings"

	"hostel-directory-backend/internal/database/models"
	"hostel-directory-backend/internal/tagging"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// ResolvedTag is a tag link joined with its category and option names
type ResolvedTag struct {
	EntityID     uuid.UUID `db:"entity_id"`
	CategoryID   uuid.UUID `db:"category_id"`
	CategoryName string    `db:"category_name"`
	OptionName   string    `db:"option_name"`
}

// Pair drops the IDs
func (t ResolvedTag) Pair() tagging.Pair {
	return tagging.Pair{CategoryName: t.CategoryName, OptionName: t.OptionName}
}

// TagQueryRepository answers read-side tag questions with hand-written joins
type TagQueryRepository struct {
	db *sqlx.DB
}

// Ensure TagQueryRepository implements TagQueryRepositoryInterface
var _ TagQueryRepositoryInterface = (*TagQueryRepository)(nil)

// NewTagQueryRepository creates a new tag query repository
func NewTagQueryRepository(db *sqlx.DB) *TagQueryRepository {
	return &TagQueryRepository{db: db}
}

const filterEntitiesQuery = `
SELECT tl.entity_id
FROM tag_links tl
JOIN categories c ON c.id = tl.category_id
JOIN category_options o ON o.id = tl.option_id AND o.category_id = tl.category_id
WHERE tl.entity_type = ? AND (%s)
GROUP BY tl.entity_id
HAVING COUNT(DISTINCT tl.category_id) = ?`

// FilterEntityIDs returns the IDs of entities matching every category in filters
// (any listed option within a category). One query regardless of filter size:
// each tag link satisfies at most one category clause, so an entity matches all
// clauses exactly when its distinct matching categories equal the clause count.
func (r *TagQueryRepository) FilterEntityIDs(ctx context.Context, kind models.EntityType, filters tagging.Filters) ([]uuid.UUID, error) {
	filters = filters.Normalize()
	if filters.Empty() {
		return nil, fmt.Errorf("filter entities: no filters given")
	}

	categories := filters.Categories()
	clauses := make([]string, 0, len(categories))
	args := []interface{}{string(kind)}
	for _, category := range categories {
		clauses = append(clauses, "(c.name = ? AND o.name IN (?))")
		args = append(args, category, filters[category])
	}
	args = append(args, len(categories))

	query, args, err := sqlx.In(fmt.Sprintf(filterEntitiesQuery, strings.Join(clauses, " OR ")), args...)
	if err != nil {
		return nil, fmt.Errorf("build filter query: %w", err)
	}

	ids := []uuid.UUID{}
	if err := r.db.SelectContext(ctx, &ids, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("filter entities: %w", err)
	}
	return ids, nil
}

const entityTagsQuery = `
SELECT tl.entity_id, tl.category_id, c.name AS category_name, o.name AS option_name
FROM tag_links tl
JOIN categories c ON c.id = tl.category_id
JOIN category_options o ON o.id = tl.option_id
WHERE tl.entity_type = ? AND tl.entity_id IN (?)
ORDER BY c.name, o.name`

// EntityTags resolves the tags of many entities in one query
func (r *TagQueryRepository) EntityTags(ctx context.Context, kind models.EntityType, ids []uuid.UUID) (map[uuid.UUID][]ResolvedTag, error) {
	out := make(map[uuid.UUID][]ResolvedTag, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	query, args, err := sqlx.In(entityTagsQuery, string(kind), ids)
	if err != nil {
		return nil, fmt.Errorf("build entity tags query: %w", err)
	}

	var rows []ResolvedTag
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("load entity tags: %w", err)
	}
	for _, row := range rows {
		out[row.EntityID] = append(out[row.EntityID], row)
	}
	return out, nil
}
