package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Base carries the columns every table owns. The gateway assigns ID and
// the timestamps when the caller omits them; rows are never
// soft-deleted, every delete is immediate.
type Base struct {
	ID        string `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Array stores a string list as a JSON text column, matching the
// gateway's array-typed columns (club leads, event rules, ...).
type Array[T any] []T

func (a *Array[T]) Scan(obj any) error {
	switch t := obj.(type) {
	case string:
		return json.Unmarshal([]byte(t), a)
	case []byte:
		return json.Unmarshal(t, a)
	case nil:
		*a = nil
		return nil
	}

	return fmt.Errorf("cannot scan invalid data type %T", obj)
}

func (a Array[T]) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}

	return json.Marshal(a)
}
