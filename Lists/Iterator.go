package Lists

import "github.com/emirpasic/gods/containers"

var (
	_ containers.Container                = (*ArrayList)(nil)
	_ containers.ReverseIteratorWithIndex = (*Iterator)(nil)
)

// Iterator is a read-only cursor over an ArrayList. It starts one-before-first; modifying the list while iterating is not supported.
type Iterator struct {
	list  *ArrayList
	index int
}

func (this *ArrayList) Iterator() *Iterator {
	return &Iterator{this, -1}
}

// Next moves to the next element and reports whether there is one.
func (it *Iterator) Next() bool {
	if it.index < it.list.sz {
		it.index++
	}
	return it.list.inRange(it.index)
}

// Prev moves to the previous element and reports whether there is one.
func (it *Iterator) Prev() bool {
	if it.index >= 0 {
		it.index--
	}
	return it.list.inRange(it.index)
}

func (it *Iterator) Value() interface{} {
	return it.list.content[it.index]
}

// Str is Value without the boxing.
func (it *Iterator) Str() string {
	return it.list.content[it.index]
}

func (it *Iterator) Index() int {
	return it.index
}

func (it *Iterator) Begin() {
	it.index = -1
}

func (it *Iterator) End() {
	it.index = it.list.sz
}

func (it *Iterator) First() bool {
	it.Begin()
	return it.Next()
}

func (it *Iterator) Last() bool {
	it.End()
	return it.Prev()
}

// NextTo moves to the next element satisfying f.
func (it *Iterator) NextTo(f func(index int, value interface{}) bool) bool {
	for it.Next() {
		if f(it.index, it.Value()) {
			return true
		}
	}
	return false
}

// PrevTo moves to the previous element satisfying f.
func (it *Iterator) PrevTo(f func(index int, value interface{}) bool) bool {
	for it.Prev() {
		if f(it.index, it.Value()) {
			return true
		}
	}
	return false
}

func (this *ArrayList) inRange(i int) bool {
	return i >= 0 && i < this.sz
}
