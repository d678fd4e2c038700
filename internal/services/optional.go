package services

import "encoding/json"

// Optional records whether a JSON key was present and whether it was null.
// An absent key leaves Set false; an explicit null sets Set with a nil Value.
type Optional[T any] struct {
	Set   bool
	Value *T
}

func Some[T any](value T) Optional[T] {
	return Optional[T]{Set: true, Value: &value}
}

func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

func (field *Optional[T]) UnmarshalJSON(data []byte) error {
	field.Set = true
	if string(data) == "null" {
		field.Value = nil
		return nil
	}
	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	field.Value = &value
	return nil
}

// Or returns the first of field and fallback that was present in the payload.
func (field Optional[T]) Or(fallback Optional[T]) Optional[T] {
	if field.Set {
		return field
	}
	return fallback
}
