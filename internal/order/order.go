// Package order tracks least-recently-used ordering over a set of keys.
//
// List is an arena-backed doubly-linked list with a key→slot index, giving
// O(1) Touch, Remove and PopOldest. Slots of removed keys are recycled
// through a free list, so steady-state operation does not allocate.
//
// List is not safe for concurrent use; the caller serializes access.
package order

const none = -1

type node[K comparable] struct {
	key        K
	prev, next int
}

// List is a recency sequence: oldest at the front, newest at the back.
type List[K comparable] struct {
	nodes []node[K]
	index map[K]int
	head  int // least recent
	tail  int // most recent
	free  int // head of the free-slot list (linked via next)
	size  int
}

func NewList[K comparable]() *List[K] {
	return &List[K]{
		index: make(map[K]int),
		head:  none,
		tail:  none,
		free:  none,
	}
}

func (l *List[K]) Len() int { return l.size }

// Touch marks key as most recently used, inserting it if absent.
func (l *List[K]) Touch(key K) {
	if i, ok := l.index[key]; ok {
		l.unlink(i)
		l.linkBack(i)
		return
	}
	i := l.alloc(key)
	l.index[key] = i
	l.linkBack(i)
	l.size++
}

// Remove detaches key from the sequence. Reports whether it was present.
func (l *List[K]) Remove(key K) bool {
	i, ok := l.index[key]
	if !ok {
		return false
	}
	l.unlink(i)
	l.release(i)
	delete(l.index, key)
	l.size--
	return true
}

// PopOldest removes and returns the least recently used key.
func (l *List[K]) PopOldest() (K, bool) {
	var zero K
	if l.head == none {
		return zero, false
	}
	i := l.head
	key := l.nodes[i].key
	l.unlink(i)
	l.release(i)
	delete(l.index, key)
	l.size--
	return key, true
}

// Clear resets the sequence, keeping allocated capacity.
func (l *List[K]) Clear() {
	l.nodes = l.nodes[:0]
	clear(l.index)
	l.head, l.tail, l.free = none, none, none
	l.size = 0
}

func (l *List[K]) alloc(key K) int {
	if l.free != none {
		i := l.free
		l.free = l.nodes[i].next
		l.nodes[i] = node[K]{key: key, prev: none, next: none}
		return i
	}
	l.nodes = append(l.nodes, node[K]{key: key, prev: none, next: none})
	return len(l.nodes) - 1
}

func (l *List[K]) release(i int) {
	var zero K
	l.nodes[i] = node[K]{key: zero, prev: none, next: l.free}
	l.free = i
}

func (l *List[K]) unlink(i int) {
	n := l.nodes[i]
	if n.prev != none {
		l.nodes[n.prev].next = n.next
	} else if l.head == i {
		l.head = n.next
	}
	if n.next != none {
		l.nodes[n.next].prev = n.prev
	} else if l.tail == i {
		l.tail = n.prev
	}
	l.nodes[i].prev, l.nodes[i].next = none, none
}

func (l *List[K]) linkBack(i int) {
	l.nodes[i].prev = l.tail
	l.nodes[i].next = none
	if l.tail != none {
		l.nodes[l.tail].next = i
	}
	l.tail = i
	if l.head == none {
		l.head = i
	}
}
