package Queues

import "strconv"

// Stack is the last-in-first-out view of a Deque.
type Stack interface {
	Push(v string) error
	Pop() (string, error)
	PeekTop() (string, error)
	PokeTop(v string) error
	DropTop() error
	SwapTop() error
	DupTop() error
	DropAll()
	Size() int
	Empty() bool
}

// Queue is the first-in-first-out view of a Deque.
type Queue interface {
	Enqueue(v string) error
	Dequeue() (string, error)
	PeekHead() (string, error)
	PokeHead(v string) error
	DropHead() error
	DropAll()
	Size() int
	Empty() bool
}

var (
	_ Stack = (*Deque)(nil)
	_ Queue = (*Deque)(nil)
)

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty."
}

// NotEnoughElementsError is returned by SwapTop when fewer than two values are present.
type NotEnoughElementsError struct {
	Need, Have int
}

func (e *NotEnoughElementsError) Error() string {
	return "Queue has " + strconv.Itoa(e.Have) + " elements, need " + strconv.Itoa(e.Need) + "."
}

// AllLevelsEmptyError is returned by MessagePriorityQueue when no level holds a message.
type AllLevelsEmptyError struct {
}

func (e *AllLevelsEmptyError) Error() string {
	return "MessagePriorityQueue is Empty at every priority."
}

type InvalidPriorityError struct {
	Priority Priority
}

func (e *InvalidPriorityError) Error() string {
	return "invalid priority " + strconv.Itoa(int(e.Priority))
}
