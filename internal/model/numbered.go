package model

import (
	"errors"
	"fmt"
)

// ErrInvalidIndex is returned when an index is not a positive ordinal.
var ErrInvalidIndex = errors.New("index must be a positive integer")

// Index is a position in a displayed list. It is stored zero-based and
// shown to users one-based.
type Index struct {
	zeroBased int
}

// IndexFromOneBased converts a user-facing ordinal into an Index.
func IndexFromOneBased(n int) (Index, error) {
	if n < 1 {
		return Index{}, fmt.Errorf("%w: %d", ErrInvalidIndex, n)
	}
	return Index{zeroBased: n - 1}, nil
}

// MustIndex is IndexFromOneBased for literals known to be valid.
func MustIndex(n int) Index {
	idx, err := IndexFromOneBased(n)
	if err != nil {
		panic(err)
	}
	return idx
}

// ZeroBased returns the offset into the displayed list.
func (i Index) ZeroBased() int { return i.zeroBased }

// OneBased returns the ordinal shown to users.
func (i Index) OneBased() int { return i.zeroBased + 1 }

// InBounds reports whether i addresses an element of a list of length n.
func (i Index) InBounds(n int) bool { return i.zeroBased < n }

func (i Index) String() string { return fmt.Sprintf("%d", i.OneBased()) }

// Numbered wraps an item with the 1-indexed number users type to refer to it
// in follow-up commands such as `delete 1,3`.
type Numbered[T any] struct {
	// Num is the 1-indexed position in the displayed list.
	Num int `json:"num"`

	// Item is the underlying value.
	Item T `json:"item"`
}

// NumberedList converts a displayed list to numbered items.
func NumberedList[T any](items []T) []Numbered[T] {
	result := make([]Numbered[T], len(items))
	for i, item := range items {
		result[i] = Numbered[T]{
			Num:  i + 1, // 1-indexed
			Item: item,
		}
	}
	return result
}
