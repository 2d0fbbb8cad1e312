package types

import "encoding/json"

// Optional is a field in a PATCH-style request body that distinguishes the three
// states a JSON document can put a key in: absent, explicitly null, or set to a
// value. Absent fields must leave the stored column untouched; null clears it.
type Optional[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// UnmarshalJSON implements the json.Unmarshaler interface. It is only invoked
// when the key is present in the document, so Set is always true here.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Null = true
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

// MarshalJSON implements the json.Marshaler interface.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || o.Null {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// Apply records the field into a column update map when it was present in the
// request. Null becomes a SQL NULL.
func (o Optional[T]) Apply(updates map[string]any, column string) {
	if !o.Set {
		return
	}
	if o.Null {
		updates[column] = nil
		return
	}
	updates[column] = o.Value
}
