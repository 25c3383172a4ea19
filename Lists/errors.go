package Lists

import "strconv"

type OutOfBoundsError struct {
	Index, Length int
}

func (e *OutOfBoundsError) Error() string {
	return "index " + strconv.Itoa(e.Index) + " out of bounds for length " + strconv.Itoa(e.Length)
}

// CapacityExceededError is returned when the list is full and already at its maximum capacity.
type CapacityExceededError struct {
	MaxCapacity int
}

func (e *CapacityExceededError) Error() string {
	return "List is full: maximum capacity " + strconv.Itoa(e.MaxCapacity) + " reached."
}

// InvalidValueError is returned when an absent (nil) value is inserted or set.
type InvalidValueError struct {
}

func (e *InvalidValueError) Error() string {
	return "List cannot store an absent value."
}

type EmptyListError struct {
}

func (e *EmptyListError) Error() string {
	return "List is Empty."
}
