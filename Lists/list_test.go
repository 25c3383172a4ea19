package Lists

import (
	"errors"
	"math/rand"
	"strconv"
	"testing"
	"unsafe"
)

var rg = *rand.New(rand.NewSource(0))

func content(l *ArrayList) []string {
	var r []string
	for it := l.Iterator(); it.Next(); {
		r = append(r, it.Str())
	}
	return r
}

func same(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestArrayList_New(t *testing.T) {
	for _, c := range [][2]int{{0, 0}, {1, 1}, {2, 2}, {10, 2}, {Unbounded, 2}, {-3, 0}} {
		l := New(c[0])
		if l.Cap() != c[1] {
			t.Errorf("New(%d) has capacity %d, want %d", c[0], l.Cap(), c[1])
		}
		if !l.Empty() || l.Size() != 0 {
			t.Errorf("New(%d) is not empty", c[0])
		}
	}
}

func TestArrayList_Growth(t *testing.T) {
	l := New(5)
	wantCaps := []int{2, 2, 4, 4, 5}
	for i, want := range wantCaps {
		if e := l.InsertLast(strconv.Itoa(i)); e != nil {
			t.Fatalf("insert %d: %v", i, e)
		}
		if l.Cap() != want {
			t.Errorf("after %d inserts capacity is %d, want %d", i+1, l.Cap(), want)
		}
	}
	var ce *CapacityExceededError
	if e := l.InsertFirst("x"); !errors.As(e, &ce) || ce.MaxCapacity != 5 {
		t.Errorf("insert into full list returned %v", e)
	}
	if l.Size() != 5 || l.Cap() != 5 {
		t.Errorf("failed insert changed the list: size %d cap %d", l.Size(), l.Cap())
	}
	if !same(content(l), []string{"0", "1", "2", "3", "4"}) {
		t.Errorf("wrong content %v", content(l))
	}
}

func TestArrayList_CapacityMonotone(t *testing.T) {
	const maxCap = 37
	l := New(maxCap)
	prev := l.Cap()
	for i := 0; i < 100; i++ {
		before := l.Cap()
		full := l.Size() == before
		e := l.InsertAt(rg.Intn(l.Size()+1), strconv.Itoa(i))
		if full && before < maxCap && l.Cap() != min(2*before, maxCap) {
			t.Errorf("grew from %d to %d", before, l.Cap())
		}
		var ce *CapacityExceededError
		if full && before == maxCap {
			if !errors.As(e, &ce) || l.Size() != maxCap {
				t.Errorf("insert %d past maximum capacity returned %v", i, e)
			}
		} else if e != nil {
			t.Errorf("insert %d failed: %v", i, e)
		}
		if l.Cap() < prev || l.Cap() > maxCap || l.Size() > l.Cap() {
			t.Errorf("bad sizes: size %d cap %d prev cap %d", l.Size(), l.Cap(), prev)
		}
		prev = l.Cap()
	}
	if l.Size() != maxCap {
		t.Errorf("size is %d, want %d", l.Size(), maxCap)
	}
}

func TestArrayList_ZeroMax(t *testing.T) {
	l := New(0)
	var ce *CapacityExceededError
	if e := l.InsertLast("a"); !errors.As(e, &ce) {
		t.Errorf("insert into zero capacity list returned %v", e)
	}
	var z ArrayList
	if e := z.InsertLast("a"); !errors.As(e, &ce) {
		t.Errorf("insert into zero value list returned %v", e)
	}
}

func TestArrayList_InsertRemove(t *testing.T) {
	l := New(Unbounded)
	var oob *OutOfBoundsError
	if e := l.InsertAt(1, "a"); !errors.As(e, &oob) || oob.Index != 1 || oob.Length != 0 {
		t.Errorf("insert past end returned %v", e)
	}
	l.InsertLast("b")
	l.InsertFirst("a")
	l.InsertLast("d")
	l.InsertAt(2, "c")
	if !same(content(l), []string{"a", "b", "c", "d"}) {
		t.Errorf("wrong content %v", content(l))
	}
	if e := l.RemoveAt(1); e != nil || !same(content(l), []string{"a", "c", "d"}) {
		t.Errorf("remove middle: %v %v", e, content(l))
	}
	if e := l.RemoveAt(3); !errors.As(e, &oob) {
		t.Errorf("remove past end returned %v", e)
	}
	if e := l.RemoveFirst(); e != nil || !same(content(l), []string{"c", "d"}) {
		t.Errorf("remove first: %v %v", e, content(l))
	}
	if e := l.RemoveLast(); e != nil || !same(content(l), []string{"c"}) {
		t.Errorf("remove last: %v %v", e, content(l))
	}
	l.RemoveLast()
	var el *EmptyListError
	if e := l.RemoveFirst(); !errors.As(e, &el) {
		t.Errorf("remove first on empty returned %v", e)
	}
	if e := l.RemoveLast(); !errors.As(e, &el) {
		t.Errorf("remove last on empty returned %v", e)
	}
	if l.Cap() != 4 {
		t.Errorf("capacity shrank to %d", l.Cap())
	}
	for _, s := range l.content {
		if s != "" {
			t.Errorf("released slot still holds %q", s)
		}
	}
}

func TestArrayList_GetSet(t *testing.T) {
	l := New(4)
	var el *EmptyListError
	if _, e := l.GetFirst(); !errors.As(e, &el) {
		t.Error("wrong get first on empty")
	}
	if _, e := l.GetLast(); !errors.As(e, &el) {
		t.Error("wrong get last on empty")
	}
	if e := l.SetFirst("x"); !errors.As(e, &el) {
		t.Error("wrong set first on empty")
	}
	if e := l.SetLast("x"); !errors.As(e, &el) {
		t.Error("wrong set last on empty")
	}
	l.InsertLast("a")
	l.InsertLast("b")
	l.InsertLast("c")
	if v, e := l.Get(1); e != nil || v != "b" {
		t.Errorf("get 1 = %q %v", v, e)
	}
	var oob *OutOfBoundsError
	if _, e := l.Get(3); !errors.As(e, &oob) {
		t.Error("wrong get past end")
	}
	if _, e := l.Get(-1); !errors.As(e, &oob) {
		t.Error("wrong get negative")
	}
	if e := l.Set(3, "z"); !errors.As(e, &oob) {
		t.Error("wrong set past end")
	}
	l.SetFirst("A")
	l.SetLast("C")
	l.Set(1, "B")
	if !same(content(l), []string{"A", "B", "C"}) {
		t.Errorf("wrong content %v", content(l))
	}
	if v, _ := l.GetFirst(); v != "A" {
		t.Errorf("get first = %q", v)
	}
	if v, _ := l.GetLast(); v != "C" {
		t.Errorf("get last = %q", v)
	}
}

func TestArrayList_CopyIsolation(t *testing.T) {
	l := New(4)
	buf := []byte("hello")
	alias := unsafe.String(&buf[0], len(buf))
	l.InsertLast(alias)
	l.InsertLast("x")
	l.Set(1, alias)
	buf[0] = 'j'
	if alias != "jello" {
		t.Fatal("alias does not track the buffer")
	}
	if v, _ := l.Get(0); v != "hello" {
		t.Errorf("inserted value changed to %q", v)
	}
	if v, _ := l.Get(1); v != "hello" {
		t.Errorf("set value changed to %q", v)
	}

	b := []byte("abc")
	l.InsertBytesAt(0, b)
	l.SetBytes(1, b)
	b[0] = 'z'
	if v, _ := l.Get(0); v != "abc" {
		t.Errorf("inserted bytes changed to %q", v)
	}
	if v, _ := l.Get(1); v != "abc" {
		t.Errorf("set bytes changed to %q", v)
	}
}

func TestArrayList_InvalidValue(t *testing.T) {
	l := New(4)
	var iv *InvalidValueError
	if e := l.InsertBytesAt(0, nil); !errors.As(e, &iv) {
		t.Errorf("insert nil returned %v", e)
	}
	if l.Size() != 0 {
		t.Error("nil insert changed size")
	}
	if e := l.InsertBytesAt(0, []byte{}); e != nil {
		t.Errorf("insert empty buffer returned %v", e)
	}
	if e := l.SetBytes(0, nil); !errors.As(e, &iv) {
		t.Errorf("set nil returned %v", e)
	}
	if v, _ := l.Get(0); v != "" || l.Size() != 1 {
		t.Error("nil set changed the list")
	}
}

func TestArrayList_RemoveAllDestroy(t *testing.T) {
	l := New(8)
	l.RemoveAll()
	if !l.Empty() {
		t.Error("remove all on empty list")
	}
	for i := 0; i < 5; i++ {
		l.InsertLast(strconv.Itoa(i))
	}
	l.RemoveAll()
	if !l.Empty() || l.Cap() != 8 {
		t.Errorf("after remove all: size %d cap %d", l.Size(), l.Cap())
	}
	l.InsertLast("a")
	l.Destroy()
	l.Destroy()
	if l.Size() != 0 || l.Cap() != 0 {
		t.Errorf("after destroy: size %d cap %d", l.Size(), l.Cap())
	}
}

func TestArrayList_Iterator(t *testing.T) {
	l := New(Unbounded)
	for _, s := range []string{"a", "b", "c"} {
		l.InsertLast(s)
	}
	it := l.Iterator()
	if !it.Last() || it.Str() != "c" || it.Index() != 2 {
		t.Error("wrong last")
	}
	var back []string
	for it.End(); it.Prev(); {
		back = append(back, it.Value().(string))
	}
	if !same(back, []string{"c", "b", "a"}) {
		t.Errorf("wrong reverse %v", back)
	}
	if !it.First() || it.Str() != "a" {
		t.Error("wrong first")
	}
	if !it.NextTo(func(_ int, v interface{}) bool { return v == "c" }) || it.Index() != 2 {
		t.Error("wrong next to")
	}
	if it.NextTo(func(int, interface{}) bool { return true }) {
		t.Error("next to past end")
	}
	if !it.PrevTo(func(i int, _ interface{}) bool { return i == 0 }) || it.Str() != "a" {
		t.Error("wrong prev to")
	}
	if l.Iterator().Next() == l.Empty() {
		t.Error("wrong next on fresh iterator")
	}
	if e := New(1).Iterator(); e.Next() || e.Prev() {
		t.Error("iterator on empty list moved")
	}
}

func TestArrayList_Render(t *testing.T) {
	l := New(3)
	if l.String() != "( )" {
		t.Errorf("empty renders %q", l.String())
	}
	l.InsertLast("a")
	l.InsertLast("b c")
	if s := l.String(); s != `( "a" "b c" )` {
		t.Errorf("renders %q", s)
	}
	vs := l.Values()
	if len(vs) != 2 || vs[0] != "a" || vs[1] != "b c" {
		t.Errorf("values %v", vs)
	}
	ss := l.Strings()
	ss[0] = "z"
	if v, _ := l.Get(0); v != "a" {
		t.Error("Strings aliases the backing storage")
	}
	l.Clear()
	if !l.Empty() {
		t.Error("clear left elements")
	}
}
