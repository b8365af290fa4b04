package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// CustomValues holds free-text values keyed by category ID, stored as JSON text.
// Keys are IDs rather than names so a category rename does not orphan the value.
type CustomValues map[string]string

// Value implements driver.Valuer
func (c CustomValues) Value() (driver.Value, error) {
	if len(c) == 0 {
		return "{}", nil
	}
	b, err := json.Marshal(map[string]string(c))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner
func (c *CustomValues) Scan(value interface{}) error {
	var raw []byte
	switch v := value.(type) {
	case nil:
		*c = CustomValues{}
		return nil
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("unsupported custom values type %T", value)
	}
	if len(raw) == 0 {
		*c = CustomValues{}
		return nil
	}
	values := map[string]string{}
	if err := json.Unmarshal(raw, &values); err != nil {
		return fmt.Errorf("decode custom values: %w", err)
	}
	*c = values
	return nil
}
