// Package queue implements a singly linked queue of strings that supports
// insertion at both ends, removal from the head and in-place reversal.
//
// All methods accept a nil *Queue and report failure instead of panicking.
package queue

import "strings"

type element struct {
	value string
	next  *element
}

type Queue struct {
	head  *element
	tail  *element
	count int
}

func New() *Queue {
	return &Queue{}
}

// Free releases every element held by the queue and leaves it empty.
func (q *Queue) Free() {
	if q == nil {
		return
	}

	for e := q.head; e != nil; {
		next := e.next
		e.next = nil
		e.value = ""
		e = next
	}
	q.head, q.tail, q.count = nil, nil, 0
}

// The value is cloned so the queue never shares a backing array with the caller.
func newElement(s string) *element {
	return &element{value: strings.Clone(s)}
}

func (q *Queue) InsertHead(s string) bool {
	if q == nil {
		return false
	}

	e := newElement(s)
	e.next = q.head
	q.head = e
	if q.count == 0 {
		q.tail = e
	}
	q.count++
	return true
}

func (q *Queue) InsertTail(s string) bool {
	if q == nil {
		return false
	}

	e := newElement(s)
	if q.count == 0 {
		q.head = e
	} else {
		q.tail.next = e
	}
	q.tail = e
	q.count++
	return true
}

// RemoveHead detaches the head element. When buf is non-empty, up to
// len(buf)-1 bytes of the removed value are copied into it and the rest of
// buf is zeroed, so buf[len(buf)-1] is always 0. A zero-length buf is left
// untouched. On failure neither the queue nor buf is modified.
func (q *Queue) RemoveHead(buf []byte) bool {
	e := q.detachHead()
	if e == nil {
		return false
	}

	if len(buf) > 0 {
		n := copy(buf[:len(buf)-1], e.value)
		clear(buf[n:])
	}
	e.value = ""
	return true
}

func (q *Queue) detachHead() *element {
	if q == nil || q.count == 0 {
		return nil
	}

	e := q.head
	q.head = e.next
	e.next = nil
	q.count--
	if q.count == 0 {
		q.tail = nil
	}
	return e
}

func (q *Queue) Size() int {
	if q == nil {
		return 0
	}
	return q.count
}

// Reverse relinks the existing elements in the opposite order. It does not
// allocate.
func (q *Queue) Reverse() {
	if q == nil || q.count < 2 {
		return
	}

	var prev *element
	curr := q.head
	for curr != nil {
		next := curr.next
		curr.next = prev
		prev = curr
		curr = next
	}
	q.head, q.tail = q.tail, q.head
}

func (q *Queue) Enqueue(s string) bool {
	return q.InsertTail(s)
}

func (q *Queue) Push(s string) bool {
	return q.InsertHead(s)
}

func (q *Queue) Dequeue() (string, error) {
	if q == nil {
		return "", ErrNilQueue
	}

	e := q.detachHead()
	if e == nil {
		return "", ErrEmptyQueue
	}
	return e.value, nil
}

func (q *Queue) Peek() (string, bool) {
	if q == nil || q.count == 0 {
		return "", false
	}
	return q.head.value, true
}

func (q *Queue) Empty() bool {
	return q.Size() == 0
}
