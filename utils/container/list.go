package container

import (
	"fmt"
	"log"
)

// IHasV is the element interface for lane lists: anything stored in a lane
// must expose its current speed so a follower can read its leader's speed
// without knowing the concrete type.
type IHasV interface {
	V() float64 // current speed
}

// ListNode is a node of the doubly-linked lane list. S is the sort key
// (position along the lane, ascending towards the lane end), Value the
// stored element and Extra an optional per-node payload.
type ListNode[T IHasV, E any] struct {
	parent     *List[T, E]
	prev, next *ListNode[T, E]
	S          float64
	Value      T
	Extra      E
}

func (n *ListNode[T, E]) String() string {
	return fmt.Sprintf("Node{S:%v, Value:%+v}", n.S, n.Value)
}

// Prev returns the node behind this one (smaller S), nil at the back.
func (n *ListNode[T, E]) Prev() *ListNode[T, E] {
	return n.prev
}

// Next returns the node ahead of this one (larger S), nil at the front.
func (n *ListNode[T, E]) Next() *ListNode[T, E] {
	return n.next
}

// Parent returns the list the node currently belongs to, nil if detached.
func (n *ListNode[T, E]) Parent() *List[T, E] {
	return n.parent
}

// V forwards to the stored element's speed.
func (n *ListNode[T, E]) V() float64 {
	return n.Value.V()
}

// InsertBefore inserts add directly behind n. add must be detached.
func (n *ListNode[T, E]) InsertBefore(add *ListNode[T, E]) {
	if add.parent != nil {
		log.Panic("insert node who already in list")
	}
	add.parent = n.parent
	add.next = n
	add.prev = n.prev
	n.prev = add
	if add.prev != nil {
		add.prev.next = add
	} else {
		add.parent.head = add
	}
	n.parent.length++
}

// InsertAfter inserts add directly ahead of n. add must be detached.
func (n *ListNode[T, E]) InsertAfter(add *ListNode[T, E]) {
	if add.parent != nil {
		log.Panic("insert node who already in list")
	}
	add.parent = n.parent
	add.prev = n
	add.next = n.next
	n.next = add
	if add.next != nil {
		add.next.prev = add
	} else {
		add.parent.tail = add
	}
	n.parent.length++
}

// List is a doubly-linked list kept sorted by S. It is the authoritative
// container for the cars of one lane: the tail is the frontmost car (largest
// S), the head the rearmost. A node belongs to at most one list at a time.
type List[T IHasV, E any] struct {
	ID         string
	head, tail *ListNode[T, E]
	length     int
}

func (l *List[T, E]) String() string {
	return fmt.Sprintf("List{ID:%v}", l.ID)
}

// Keys returns the S keys of all nodes in list order.
func (l *List[T, E]) Keys() []float64 {
	keys := make([]float64, l.length)
	for i, node := 0, l.head; node != nil; i, node = i+1, node.next {
		keys[i] = node.S
	}
	return keys
}

// Values returns all stored elements in list order (back to front).
func (l *List[T, E]) Values() []T {
	values := make([]T, l.length)
	for i, node := 0, l.head; node != nil; i, node = i+1, node.next {
		values[i] = node.Value
	}
	return values
}

// Len returns the number of nodes.
func (l *List[T, E]) Len() int {
	return l.length
}

// PushFront inserts a detached node at the back of the list (head side).
func (l *List[T, E]) PushFront(add *ListNode[T, E]) {
	if add.parent != nil {
		log.Panic("push node who already in list")
	}
	add.next = nil
	add.prev = nil
	if l.head == nil {
		add.parent = l
		l.head = add
		l.tail = add
		l.length++
	} else {
		// length++ and add.parent are handled by InsertBefore
		l.head.InsertBefore(add)
		l.head = add
	}
}

// PushBack inserts a detached node at the front of the list (tail side).
func (l *List[T, E]) PushBack(add *ListNode[T, E]) {
	if add.parent != nil {
		log.Panic("push node who already in list")
	}
	add.next = nil
	add.prev = nil
	if l.tail == nil {
		add.parent = l
		l.head = add
		l.tail = add
		l.length++
	} else {
		// length++ and add.parent are handled by InsertAfter
		l.tail.InsertAfter(add)
		l.tail = add
	}
}

// Remove detaches node from the list.
func (l *List[T, E]) Remove(node *ListNode[T, E]) {
	if node.parent != l {
		log.Panic("remove node from wrong list")
	}
	if node.prev != nil {
		node.prev.next = node.next
	} else {
		l.head = node.next
	}
	if node.next != nil {
		node.next.prev = node.prev
	} else {
		l.tail = node.prev
	}
	node.prev = nil
	node.next = nil
	node.parent = nil
	l.length--
}

// First returns the rearmost node (smallest S), nil if empty.
func (l *List[T, E]) First() *ListNode[T, E] {
	return l.head
}

// Last returns the frontmost node (largest S), nil if empty.
func (l *List[T, E]) Last() *ListNode[T, E] {
	return l.tail
}

// PopUnsorted removes and returns every node whose key is out of order with
// respect to its predecessor. Cars move every tick, so the lane re-sorts by
// popping the out-of-order nodes and merging them back.
func (l *List[T, E]) PopUnsorted() (unsorted []*ListNode[T, E]) {
	for node := l.head; node != nil; {
		next := node.next
		if node.prev != nil && node.prev.S > node.S {
			l.Remove(node)
			unsorted = append(unsorted, node)
		}
		node = next
	}
	return unsorted
}

// Merge inserts a batch of detached nodes, keeping the list sorted by S.
func (l *List[T, E]) Merge(adds []*ListNode[T, E]) {
	// insertion sort, batches are small
	for i := 0; i < len(adds)-1; i++ {
		for j := i + 1; j < len(adds); j++ {
			if adds[i].S > adds[j].S {
				adds[i], adds[j] = adds[j], adds[i]
			}
		}
	}
	node := l.head
	for _, add := range adds {
		for node != nil && node.S < add.S {
			node = node.next
		}
		if node != nil {
			node.InsertBefore(add)
		} else {
			l.PushBack(add)
		}
	}
}
