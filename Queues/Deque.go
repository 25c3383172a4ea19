package Queues

import (
	"errors"
	"strconv"
	"strings"

	"github.com/g-m-twostay/go-lists/Lists"
)

// Deque adds and removes strings at both ends of a Lists.ArrayList. The first end is the head of a queue, the last end is the top of a stack.
type Deque struct {
	list *Lists.ArrayList
}

func NewDeque(maxCapacity int) *Deque {
	return &Deque{Lists.New(maxCapacity)}
}

// NewStack returns a deque used from its last end only.
func NewStack(maxCapacity int) Stack {
	return NewDeque(maxCapacity)
}

// NewQueue returns a deque that enqueues at the last end and dequeues from the first.
func NewQueue(maxCapacity int) Queue {
	return NewDeque(maxCapacity)
}

// emptied turns the list's empty error into the deque's own.
func emptied(e error) error {
	var el *Lists.EmptyListError
	if errors.As(e, &el) {
		return &EmptyQueueError{}
	}
	return e
}

func (this *Deque) AddFirst(v string) error {
	return this.list.InsertFirst(v)
}

func (this *Deque) AddLast(v string) error {
	return this.list.InsertLast(v)
}

// AddLastBytes appends a copy of b; a nil b is rejected as an absent value.
func (this *Deque) AddLastBytes(b []byte) error {
	return this.list.InsertBytesAt(this.list.Size(), b)
}

func (this *Deque) Enqueue(v string) error {
	return this.AddLast(v)
}

func (this *Deque) Push(v string) error {
	return this.AddLast(v)
}

// PeekFirst returns the first value without removing it.
func (this *Deque) PeekFirst() (string, error) {
	v, e := this.list.GetFirst()
	return v, emptied(e)
}

// PeekLast returns the last value without removing it.
func (this *Deque) PeekLast() (string, error) {
	v, e := this.list.GetLast()
	return v, emptied(e)
}

func (this *Deque) PeekHead() (string, error) {
	return this.PeekFirst()
}

func (this *Deque) PeekTop() (string, error) {
	return this.PeekLast()
}

// PokeFirst overwrites the first value.
func (this *Deque) PokeFirst(v string) error {
	return emptied(this.list.SetFirst(v))
}

// PokeLast overwrites the last value.
func (this *Deque) PokeLast(v string) error {
	return emptied(this.list.SetLast(v))
}

func (this *Deque) PokeHead(v string) error {
	return this.PokeFirst(v)
}

func (this *Deque) PokeTop(v string) error {
	return this.PokeLast(v)
}

// DeleteFirst removes the first value and returns a copy owned by the caller.
func (this *Deque) DeleteFirst() (string, error) {
	v, e := this.PeekFirst()
	if e != nil {
		return "", e
	}
	v = strings.Clone(v)
	return v, this.DropFirst()
}

// DeleteLast removes the last value and returns a copy owned by the caller.
func (this *Deque) DeleteLast() (string, error) {
	v, e := this.PeekLast()
	if e != nil {
		return "", e
	}
	v = strings.Clone(v)
	return v, this.DropLast()
}

func (this *Deque) Dequeue() (string, error) {
	return this.DeleteFirst()
}

func (this *Deque) Pop() (string, error) {
	return this.DeleteLast()
}

// DropFirst removes the first value without returning it.
func (this *Deque) DropFirst() error {
	return emptied(this.list.RemoveFirst())
}

// DropLast removes the last value without returning it.
func (this *Deque) DropLast() error {
	return emptied(this.list.RemoveLast())
}

func (this *Deque) DropHead() error {
	return this.DropFirst()
}

func (this *Deque) DropTop() error {
	return this.DropLast()
}

// SwapTop exchanges the two top values by popping both and pushing them back in reverse order.
func (this *Deque) SwapTop() error {
	if n := this.list.Size(); n < 2 {
		return &NotEnoughElementsError{2, n}
	}
	v1, _ := this.Pop()
	v2, _ := this.Pop()
	//two slots were just freed, so both pushes fit.
	this.Push(v1)
	this.Push(v2)
	return nil
}

// DupTop pushes another copy of the top value.
func (this *Deque) DupTop() error {
	v, e := this.PeekTop()
	if e != nil {
		return e
	}
	return this.Push(v)
}

func (this *Deque) DropAll() {
	this.list.RemoveAll()
}

func (this *Deque) Size() int {
	return this.list.Size()
}

func (this *Deque) Empty() bool {
	return this.list.Empty()
}

// Iterator walks the values from first to last.
func (this *Deque) Iterator() *Lists.Iterator {
	return this.list.Iterator()
}

// Destroy releases the backing list; the deque must not be used afterwards.
func (this *Deque) Destroy() {
	this.list.Destroy()
}

// String renders the deque first to last, as ( "a" "b" ).
func (this *Deque) String() string {
	return this.list.String()
}

// QueueString renders the deque head first.
func (this *Deque) QueueString() string {
	return this.list.String()
}

// StackString renders "stack (n):" followed by one value per line, top first.
func (this *Deque) StackString() string {
	var b strings.Builder
	b.WriteString("stack (")
	b.WriteString(strconv.Itoa(this.list.Size()))
	b.WriteString("):\n")
	it := this.list.Iterator()
	for it.End(); it.Prev(); {
		b.WriteString(it.Str())
		b.WriteByte('\n')
	}
	return b.String()
}
