package Lists

import (
	"math"
	"strings"
)

// Unbounded can be used as maxCapacity when the list should only be limited by memory.
const Unbounded = math.MaxInt

// ArrayList is a contiguous list of strings that grows by doubling up to a fixed maximum capacity.
// Every stored value is an owned copy: the caller's input is never aliased. The zero value is a list with maximum capacity 0.
type ArrayList struct {
	sz, maxCap int
	content    []string //len(content) is the current capacity; slots in [sz, len(content)) are always "".
}

// New creates an empty list whose capacity starts at min(maxCapacity, 2). A negative maxCapacity is treated as 0.
func New(maxCapacity int) *ArrayList {
	if maxCapacity < 0 {
		maxCapacity = 0
	}
	return &ArrayList{0, maxCapacity, make([]string, min(maxCapacity, 2))}
}

// own returns a copy of v that shares no memory with the caller.
func own(v string) string {
	return strings.Clone(v)
}

// ensureCap makes room for one more element, growing to min(2*capacity, maxCapacity) in a single step when full.
func (this *ArrayList) ensureCap() error {
	if this.sz < len(this.content) {
		return nil
	}
	if len(this.content) >= this.maxCap {
		return &CapacityExceededError{this.maxCap}
	}
	this.resize(this.nextCap())
	return nil
}

func (this *ArrayList) nextCap() int {
	c := len(this.content)
	if this.maxCap-c < c { //no room to double.
		return this.maxCap
	}
	return max(c*2, 1)
}

func (this *ArrayList) resize(newLen int) {
	nc := make([]string, newLen)
	copy(nc, this.content[:this.sz])
	this.content = nc
}

// InsertAt stores a copy of v at index, shifting the elements at positions >= index one slot toward the end.
// index may equal Size(), which appends.
func (this *ArrayList) InsertAt(index int, v string) error {
	if index < 0 || index > this.sz {
		return &OutOfBoundsError{index, this.sz}
	}
	if e := this.ensureCap(); e != nil {
		return e
	}
	copy(this.content[index+1:this.sz+1], this.content[index:this.sz])
	this.content[index] = own(v)
	this.sz++
	return nil
}

// InsertBytesAt is InsertAt for a byte buffer; a nil buffer is an absent value and is rejected.
func (this *ArrayList) InsertBytesAt(index int, b []byte) error {
	if b == nil {
		return &InvalidValueError{}
	}
	return this.InsertAt(index, string(b))
}

func (this *ArrayList) InsertFirst(v string) error {
	return this.InsertAt(0, v)
}

func (this *ArrayList) InsertLast(v string) error {
	return this.InsertAt(this.sz, v)
}

// Get returns the stored value at index without copying it.
func (this *ArrayList) Get(index int) (string, error) {
	if index < 0 || index >= this.sz {
		return "", &OutOfBoundsError{index, this.sz}
	}
	return this.content[index], nil
}

func (this *ArrayList) GetFirst() (string, error) {
	if this.sz == 0 {
		return "", &EmptyListError{}
	}
	return this.content[0], nil
}

func (this *ArrayList) GetLast() (string, error) {
	if this.sz == 0 {
		return "", &EmptyListError{}
	}
	return this.content[this.sz-1], nil
}

// Set replaces the value at index with a copy of v, releasing the old one.
func (this *ArrayList) Set(index int, v string) error {
	if index < 0 || index >= this.sz {
		return &OutOfBoundsError{index, this.sz}
	}
	this.content[index] = own(v)
	return nil
}

// SetBytes is Set for a byte buffer; a nil buffer is an absent value and is rejected.
func (this *ArrayList) SetBytes(index int, b []byte) error {
	if b == nil {
		return &InvalidValueError{}
	}
	return this.Set(index, string(b))
}

func (this *ArrayList) SetFirst(v string) error {
	if this.sz == 0 {
		return &EmptyListError{}
	}
	return this.Set(0, v)
}

func (this *ArrayList) SetLast(v string) error {
	if this.sz == 0 {
		return &EmptyListError{}
	}
	return this.Set(this.sz-1, v)
}

// RemoveAt releases the value at index and shifts the elements after it one slot toward the start.
func (this *ArrayList) RemoveAt(index int) error {
	if index < 0 || index >= this.sz {
		return &OutOfBoundsError{index, this.sz}
	}
	this.sz--
	copy(this.content[index:this.sz], this.content[index+1:this.sz+1])
	this.content[this.sz] = ""
	return nil
}

func (this *ArrayList) RemoveFirst() error {
	if this.sz == 0 {
		return &EmptyListError{}
	}
	return this.RemoveAt(0)
}

func (this *ArrayList) RemoveLast() error {
	if this.sz == 0 {
		return &EmptyListError{}
	}
	return this.RemoveAt(this.sz - 1)
}

// RemoveAll removes from the end until the list is empty. Capacity is kept.
func (this *ArrayList) RemoveAll() {
	for this.RemoveLast() == nil {
	}
}

// Clear is RemoveAll.
func (this *ArrayList) Clear() {
	this.RemoveAll()
}

func (this *ArrayList) Size() int {
	return this.sz
}

func (this *ArrayList) Empty() bool {
	return this.sz == 0
}

// Cap is the number of allocated slots.
func (this *ArrayList) Cap() int {
	return len(this.content)
}

func (this *ArrayList) MaxCap() int {
	return this.maxCap
}

// Destroy removes every element and drops the backing storage. The list reports capacity 0 afterwards and calling Destroy again is harmless.
func (this *ArrayList) Destroy() {
	this.RemoveAll()
	this.content = nil
}

// Values returns the elements in order as a new slice.
func (this *ArrayList) Values() []interface{} {
	vs := make([]interface{}, this.sz)
	for i, v := range this.content[:this.sz] {
		vs[i] = v
	}
	return vs
}

// Strings is Values without the boxing.
func (this *ArrayList) Strings() []string {
	return append([]string(nil), this.content[:this.sz]...)
}

// String renders the list as ( "a" "b" ).
func (this *ArrayList) String() string {
	var b strings.Builder
	b.WriteString("( ")
	for _, v := range this.content[:this.sz] {
		b.WriteByte('"')
		b.WriteString(v)
		b.WriteString(`" `)
	}
	b.WriteString(")")
	return b.String()
}
