package Queues

import "strings"

// MessagePriorityQueue keeps one Deque per Priority. Messages leave in priority order, and in arrival order within a priority.
type MessagePriorityQueue struct {
	levels [levelCount]*Deque
	maxCap int
}

// NewMPQ creates the four levels, each limited to maxCapacity messages. A negative maxCapacity is treated as 0.
func NewMPQ(maxCapacity int) *MessagePriorityQueue {
	if maxCapacity < 0 {
		maxCapacity = 0
	}
	q := &MessagePriorityQueue{maxCap: maxCapacity}
	for _, p := range scanOrder {
		q.levels[p] = NewDeque(maxCapacity)
	}
	return q
}

// Enqueue appends a copy of message to the tail of the level for priority.
func (this *MessagePriorityQueue) Enqueue(message string, priority Priority) error {
	if !priority.Valid() {
		return &InvalidPriorityError{priority}
	}
	return this.levels[priority].Enqueue(message)
}

// Dequeue removes the head of the highest non-empty level.
func (this *MessagePriorityQueue) Dequeue() (string, error) {
	for _, p := range scanOrder {
		if v, e := this.levels[p].Dequeue(); e == nil {
			return v, nil
		}
	}
	return "", &AllLevelsEmptyError{}
}

// Peek returns the message Dequeue would remove, without removing it.
func (this *MessagePriorityQueue) Peek() (string, error) {
	for _, p := range scanOrder {
		if v, e := this.levels[p].PeekHead(); e == nil {
			return v, nil
		}
	}
	return "", &AllLevelsEmptyError{}
}

func (this *MessagePriorityQueue) TotalSize() (n int) {
	for _, d := range this.levels {
		n += d.Size()
	}
	return
}

// SizeForPriority is 0 for an invalid priority.
func (this *MessagePriorityQueue) SizeForPriority(priority Priority) int {
	if !priority.Valid() {
		return 0
	}
	return this.levels[priority].Size()
}

// Empty reports whether every level is empty.
func (this *MessagePriorityQueue) Empty() bool {
	for _, d := range this.levels {
		if !d.Empty() {
			return false
		}
	}
	return true
}

// EmptyForPriority is true for an invalid priority.
func (this *MessagePriorityQueue) EmptyForPriority(priority Priority) bool {
	if !priority.Valid() {
		return true
	}
	return this.levels[priority].Empty()
}

func (this *MessagePriorityQueue) MaxCap() int {
	return this.maxCap
}

// Destroy releases all four levels; the queue must not be used afterwards.
func (this *MessagePriorityQueue) Destroy() {
	for _, d := range this.levels {
		d.Destroy()
	}
}

// String renders one line per level in scan order, like "high: ( "a" )".
func (this *MessagePriorityQueue) String() string {
	var b strings.Builder
	for _, p := range scanOrder {
		b.WriteString(p.String())
		b.WriteString(": ")
		b.WriteString(this.levels[p].String())
		b.WriteByte('\n')
	}
	return b.String()
}
