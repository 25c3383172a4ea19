package Queues

import "strconv"

// Priority is one of the four message ranks, Highest first.
type Priority uint8

const (
	Highest Priority = iota
	High
	Low
	Lowest
)

const levelCount = 4

var scanOrder = [levelCount]Priority{Highest, High, Low, Lowest}

// ScanOrder returns a copy of the order in which MessagePriorityQueue looks at its levels.
func ScanOrder() [levelCount]Priority {
	return scanOrder
}

var priorityNames = [levelCount]string{Highest: "highest", High: "high", Low: "low", Lowest: "lowest"}

func (p Priority) Valid() bool {
	return p <= Lowest
}

func (p Priority) String() string {
	if p.Valid() {
		return priorityNames[p]
	}
	return "Priority(" + strconv.Itoa(int(p)) + ")"
}

// ParsePriority accepts the names returned by Priority.String.
func ParsePriority(s string) (Priority, error) {
	for _, p := range scanOrder {
		if priorityNames[p] == s {
			return p, nil
		}
	}
	return 0, &UnknownPriorityError{s}
}

type UnknownPriorityError struct {
	Name string
}

func (e *UnknownPriorityError) Error() string {
	return "unknown priority " + strconv.Quote(e.Name)
}
