package lane

import (
	"sync"

	"github.com/eylon-gilad/Traffic-Light-and-Enjoy/utils/container"
)

// laneList wraps the sorted car list with add/remove buffers. Mutations
// requested during a tick are applied at the next prepare, so the ordered
// list is stable while the dynamics pass reads it.
type laneList[T container.IHasV, E any] struct {
	list              *container.List[T, E]
	addBuffer         []*container.ListNode[T, E]
	addBufferMutex    sync.Mutex
	removeBuffer      []*container.ListNode[T, E]
	removeBufferMutex sync.Mutex
}

func newLaneList[T container.IHasV, E any](id string) laneList[T, E] {
	return laneList[T, E]{
		list: &container.List[T, E]{
			ID: id,
		},
		addBuffer:         make([]*container.ListNode[T, E], 0),
		addBufferMutex:    sync.Mutex{},
		removeBuffer:      make([]*container.ListNode[T, E], 0),
		removeBufferMutex: sync.Mutex{},
	}
}

// prepare applies the buffered removes, re-sorts nodes whose keys moved and
// merges the buffered adds back in.
func (l *laneList[T, E]) prepare() {
	if l == nil || l.list == nil {
		return
	}
	for _, v := range l.removeBuffer {
		l.list.Remove(v)
	}
	unsorted := l.list.PopUnsorted()
	l.list.Merge(append(l.addBuffer, unsorted...))
	l.removeBuffer = l.removeBuffer[:0]
	l.addBuffer = l.addBuffer[:0]
}

// add schedules node for insertion at the next prepare.
func (l *laneList[T, E]) add(node *container.ListNode[T, E]) {
	if node.Parent() != nil {
		log.Panic("add node who has parent")
	}
	l.addBufferMutex.Lock()
	l.addBuffer = append(l.addBuffer, node)
	l.addBufferMutex.Unlock()
}

// remove schedules node for removal at the next prepare.
func (l *laneList[T, E]) remove(node *container.ListNode[T, E]) {
	if node.Parent() != l.list {
		log.Panicf("remove node %v (parent=%v) from wrong parent %+v", node, node.Parent(), l.list)
	}
	l.removeBufferMutex.Lock()
	l.removeBuffer = append(l.removeBuffer, node)
	l.removeBufferMutex.Unlock()
}

// clear drops every node and all pending buffers.
func (l *laneList[T, E]) clear() {
	if l == nil || l.list == nil {
		return
	}
	for node := l.list.First(); node != nil; node = l.list.First() {
		l.list.Remove(node)
	}
	l.addBuffer = l.addBuffer[:0]
	l.removeBuffer = l.removeBuffer[:0]
}
