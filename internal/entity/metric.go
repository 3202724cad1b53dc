package entity

import (
	"bytes"
	"encoding/json"
)

// Metric holds a value that is either known or still pending computation
// (for example attendee counts that require a join against RSVPs).
// The zero Metric is pending.
type Metric[T any] struct {
	value T
	known bool
}

func Known[T any](v T) Metric[T] {
	return Metric[T]{value: v, known: true}
}

func Pending[T any]() Metric[T] {
	return Metric[T]{}
}

func (m Metric[T]) Get() (T, bool) {
	return m.value, m.known
}

func (m Metric[T]) IsPending() bool {
	return !m.known
}

// Or returns the known value or fallback when pending.
func (m Metric[T]) Or(fallback T) T {
	if !m.known {
		return fallback
	}
	return m.value
}

func (m Metric[T]) MarshalJSON() ([]byte, error) {
	if !m.known {
		return []byte("null"), nil
	}
	return json.Marshal(m.value)
}

func (m *Metric[T]) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*m = Pending[T]()
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*m = Known(v)
	return nil
}
