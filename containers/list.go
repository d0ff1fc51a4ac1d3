// Copyright 2026 Kvist Exercises. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package containers

import (
	"github.com/pkg/errors"
)

type listNode[T any] struct {
	value      T
	prev, next *listNode[T]
}

// List is a doubly linked list.
//
// The zero value is an empty list ready for use.
type List[T any] struct {
	front, back *listNode[T]
	size        int
}

// NewList creates a list holding the given values front to back.
func NewList[T any](values ...T) *List[T] {
	l := &List[T]{}
	for _, v := range values {
		l.PushBack(v)
	}
	return l
}

// Len returns the number of stored elements.
func (l *List[T]) Len() int {
	return l.size
}

// PushFront prepends val.
func (l *List[T]) PushFront(val T) {
	node := &listNode[T]{value: val, next: l.front}
	if l.front != nil {
		l.front.prev = node
	} else {
		l.back = node
	}
	l.front = node
	l.size++
}

// PushBack appends val.
func (l *List[T]) PushBack(val T) {
	node := &listNode[T]{value: val, prev: l.back}
	if l.back != nil {
		l.back.next = node
	} else {
		l.front = node
	}
	l.back = node
	l.size++
}

// PopFront removes and returns the first element.
func (l *List[T]) PopFront() (T, error) {
	var zero T
	if l.front == nil {
		return zero, errors.New("containers: pop from empty list")
	}
	node := l.front
	l.front = node.next
	if l.front != nil {
		l.front.prev = nil
	} else {
		l.back = nil
	}
	l.size--
	return node.value, nil
}

// PopBack removes and returns the last element.
func (l *List[T]) PopBack() (T, error) {
	var zero T
	if l.back == nil {
		return zero, errors.New("containers: pop from empty list")
	}
	node := l.back
	l.back = node.prev
	if l.back != nil {
		l.back.next = nil
	} else {
		l.front = nil
	}
	l.size--
	return node.value, nil
}

// Front returns the first element without removing it.
func (l *List[T]) Front() (T, error) {
	var zero T
	if l.front == nil {
		return zero, errors.New("containers: front of empty list")
	}
	return l.front.value, nil
}

// Back returns the last element without removing it.
func (l *List[T]) Back() (T, error) {
	var zero T
	if l.back == nil {
		return zero, errors.New("containers: back of empty list")
	}
	return l.back.value, nil
}

// Clear removes all elements.
func (l *List[T]) Clear() {
	l.front = nil
	l.back = nil
	l.size = 0
}

// Do calls f for every element front to back.
func (l *List[T]) Do(f func(T)) {
	for node := l.front; node != nil; node = node.next {
		f(node.value)
	}
}

// DoReverse calls f for every element back to front.
func (l *List[T]) DoReverse(f func(T)) {
	for node := l.back; node != nil; node = node.prev {
		f(node.value)
	}
}

// RemoveFirst deletes the first element for which match returns true and
// reports whether one was found.
func (l *List[T]) RemoveFirst(match func(T) bool) bool {
	for node := l.front; node != nil; node = node.next {
		if !match(node.value) {
			continue
		}
		if node.prev != nil {
			node.prev.next = node.next
		} else {
			l.front = node.next
		}
		if node.next != nil {
			node.next.prev = node.prev
		} else {
			l.back = node.prev
		}
		l.size--
		return true
	}
	return false
}
