package timeseries

import (
	"iter"
	"slices"
)

// History is a date-indexed series of values, kept sorted and with at
// most one value per day.
//
// The zero value is an empty history ready to use.
type History[T any] struct {
	days   []Date
	values []T
}

// Len returns the number of points in the history.
func (h *History[T]) Len() int { return len(h.days) }

// Clear removes all points from the history.
func (h *History[T]) Clear() {
	h.days = h.days[:0]
	h.values = h.values[:0]
}

// Oldest returns the first point of the history, or zero values when it
// is empty.
func (h *History[T]) Oldest() (day Date, value T) {
	if len(h.days) == 0 {
		return Date{}, *new(T)
	}
	return h.days[0], h.values[0]
}

// Latest returns the last point of the history, or zero values when it
// is empty.
func (h *History[T]) Latest() (day Date, value T) {
	last := len(h.days) - 1
	if last < 0 {
		return Date{}, *new(T)
	}
	return h.days[last], h.values[last]
}

func searchDay(days []Date, day Date) (int, bool) {
	return slices.BinarySearchFunc(days, day, Date.Compare)
}

// Append adds a point to the history, keeping it sorted.
//
// An existing value at that date is overwritten: the freshest data wins.
func (h *History[T]) Append(on Date, q T) *History[T] {
	i, found := searchDay(h.days, on)
	if found {
		h.values[i] = q
		return h
	}
	h.days = slices.Insert(h.days, i, on)
	h.values = slices.Insert(h.values, i, q)
	return h
}

// Get returns the value at day, or the zero value and false.
func (h *History[T]) Get(day Date) (T, bool) {
	if i, found := searchDay(h.days, day); found {
		return h.values[i], true
	}
	var zero T
	return zero, false
}

// ValueAsOf returns the value at day, falling back to the closest value
// before it. The second result is false when the history holds nothing
// on or before day.
func (h *History[T]) ValueAsOf(day Date) (T, bool) {
	i, found := searchDay(h.days, day)
	if found {
		return h.values[i], true
	}
	if i == 0 {
		var zero T
		return zero, false
	}
	// i is the insertion point, so i-1 holds the closest earlier day.
	return h.values[i-1], true
}

// Values iterates over all points in chronological order.
func (h *History[T]) Values() iter.Seq2[Date, T] {
	return func(yield func(Date, T) bool) {
		for i, on := range h.days {
			if !yield(on, h.values[i]) {
				return
			}
		}
	}
}

// Between iterates over the points within r, both bounds inclusive.
func (h *History[T]) Between(r Range) iter.Seq2[Date, T] {
	return func(yield func(Date, T) bool) {
		start, _ := searchDay(h.days, r.From)
		for i := start; i < len(h.days); i++ {
			if h.days[i].After(r.To) {
				return
			}
			if !yield(h.days[i], h.values[i]) {
				return
			}
		}
	}
}
