package tagging

import (
	"fmt"
	"sort"
	"strings"
)

// Filters constrains a listing: an entity matches when, for every category key,
// it is linked to one of the listed options.
type Filters map[string][]string

// ParseFilters reads repeated "Category:Option" values. The first colon splits the
// pair so option names may themselves contain colons.
func ParseFilters(raw []string) (Filters, error) {
	filters := Filters{}
	for _, value := range raw {
		if strings.TrimSpace(value) == "" {
			continue
		}
		category, option, ok := strings.Cut(value, ":")
		if !ok {
			return nil, fmt.Errorf("filter %q must have the form Category:Option", value)
		}
		category = strings.TrimSpace(category)
		if category == "" {
			return nil, fmt.Errorf("filter %q has an empty category", value)
		}
		filters[category] = append(filters[category], option)
	}
	return filters.Normalize(), nil
}

// Normalize trims names, collapses duplicate options and drops categories left
// without options. The receiver is not modified.
func (f Filters) Normalize() Filters {
	out := Filters{}
	for category, options := range f {
		category = strings.TrimSpace(category)
		if category == "" {
			continue
		}
		seen := map[string]bool{}
		for _, option := range append(out[category], options...) {
			option = strings.TrimSpace(option)
			if option == "" || seen[option] {
				continue
			}
			seen[option] = true
		}
		if len(seen) == 0 {
			continue
		}
		names := make([]string, 0, len(seen))
		for option := range seen {
			names = append(names, option)
		}
		sort.Strings(names)
		out[category] = names
	}
	return out
}

// Categories returns the constrained category names in sorted order
func (f Filters) Categories() []string {
	names := make([]string, 0, len(f))
	for category := range f {
		names = append(names, category)
	}
	sort.Strings(names)
	return names
}

// Empty reports whether the filters constrain nothing
func (f Filters) Empty() bool {
	return len(f) == 0
}

// Matches evaluates the filters against an entity's resolved tags in memory.
// Listings filter in SQL; this is the reference the query tests check that SQL against.
func (f Filters) Matches(tags []Pair) bool {
	byCategory := make(map[string]string, len(tags))
	for _, t := range tags {
		byCategory[t.CategoryName] = t.OptionName
	}
	for category, options := range f {
		linked, ok := byCategory[category]
		if !ok {
			return false
		}
		found := false
		for _, option := range options {
			if option == linked {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
