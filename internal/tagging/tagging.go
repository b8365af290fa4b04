// Package tagging holds the shape of category/option tags independent of storage:
// mappings submitted by clients, per-mapping outcomes and listing filters.
package tagging

import (
	"sort"
	"strings"
)

// Pair names an option within a category
type Pair struct {
	CategoryName string `json:"category_name" yaml:"category_name"`
	OptionName   string `json:"option_name" yaml:"option_name"`
}

// Normalize returns the pair with surrounding whitespace removed
func (p Pair) Normalize() Pair {
	return Pair{
		CategoryName: strings.TrimSpace(p.CategoryName),
		OptionName:   strings.TrimSpace(p.OptionName),
	}
}

// SortPairs orders pairs by category then option name
func SortPairs(pairs []Pair) {
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].CategoryName != pairs[j].CategoryName {
			return pairs[i].CategoryName < pairs[j].CategoryName
		}
		return pairs[i].OptionName < pairs[j].OptionName
	})
}

// Status is the outcome of resolving one mapping
type Status string

const (
	StatusLinked            Status = "linked"
	StatusLinkedSentinel    Status = "linked_sentinel"
	StatusEmptyOption       Status = "empty_option"
	StatusCategoryNotFound  Status = "category_not_found"
	StatusOptionNotFound    Status = "option_not_found"
	StatusDuplicateCategory Status = "duplicate_category"
	StatusCustomNotAllowed  Status = "custom_not_allowed"

	// a custom value was sent for a category no mapping in the request names
	StatusCustomWithoutMapping Status = "custom_without_mapping"
)

// Applied reports whether the status means a link was written
func (s Status) Applied() bool {
	return s == StatusLinked || s == StatusLinkedSentinel
}

// Result reports what happened to one submitted mapping
type Result struct {
	CategoryName string `json:"category_name"`
	OptionName   string `json:"option_name"`
	Status       Status `json:"status"`
	Message      string `json:"message,omitempty"`
}

// Summarize counts applied and skipped results
func Summarize(results []Result) (applied, skipped int) {
	for _, r := range results {
		if r.Status.Applied() {
			applied++
		} else {
			skipped++
		}
	}
	return applied, skipped
}
