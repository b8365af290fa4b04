package service_test

import (
	"testing"

	"hostel-directory-backend/internal/database"
	"hostel-directory-backend/internal/repository"
	"hostel-directory-backend/internal/tagging"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTagQuery(t *testing.T, db *gorm.DB) *repository.TagQueryRepository {
	t.Helper()
	x, err := database.NewSQLX(db)
	require.NoError(t, err)
	return repository.NewTagQueryRepository(x)
}

func pairs(kv ...string) []tagging.Pair {
	out := make([]tagging.Pair, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		out = append(out, tagging.Pair{CategoryName: kv[i], OptionName: kv[i+1]})
	}
	return out
}

func requirePairs(t *testing.T, want, got []tagging.Pair) {
	t.Helper()
	want = append([]tagging.Pair{}, want...)
	got = append([]tagging.Pair{}, got...)
	tagging.SortPairs(want)
	tagging.SortPairs(got)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("tag set mismatch (-want +got):\n%s", diff)
	}
}

func statuses(results []tagging.Result) []tagging.Status {
	out := make([]tagging.Status, len(results))
	for i, r := range results {
		out[i] = r.Status
	}
	return out
}
