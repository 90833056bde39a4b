package domain

// orderedSet is an insertion-ordered set of pointers
type orderedSet[T comparable] struct {
	items []T
}

func (s *orderedSet[T]) contains(v T) bool {
	for _, item := range s.items {
		if item == v {
			return true
		}
	}
	return false
}

// add appends v unless already present
func (s *orderedSet[T]) add(v T) bool {
	if s.contains(v) {
		return false
	}
	s.items = append(s.items, v)
	return true
}

func (s *orderedSet[T]) remove(v T) bool {
	for i, item := range s.items {
		if item == v {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

func (s *orderedSet[T]) len() int {
	return len(s.items)
}

// snapshot returns a copy that stays valid while the set is mutated
func (s *orderedSet[T]) snapshot() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// reorder sets the iteration order to that of order; members missing from
// order keep their relative position at the end
func (s *orderedSet[T]) reorder(order []T) {
	next := make([]T, 0, len(s.items))
	seen := make(map[T]bool, len(order))
	for _, v := range order {
		if !seen[v] && s.contains(v) {
			next = append(next, v)
			seen[v] = true
		}
	}
	for _, v := range s.items {
		if !seen[v] {
			next = append(next, v)
		}
	}
	s.items = next
}

// membership indexes the non-nil members of items
func membership[T comparable](items []T) map[T]bool {
	var zero T
	index := make(map[T]bool, len(items))
	for _, item := range items {
		if item != zero {
			index[item] = true
		}
	}
	return index
}

// replaceTickets makes held equal to tickets: members not in tickets are
// detached, the remaining ones attached, then the order is aligned
func replaceTickets(held *orderedSet[*Ticket], tickets []*Ticket, detach, attach func(*Ticket)) {
	keep := membership(tickets)
	for _, t := range held.snapshot() {
		if !keep[t] {
			detach(t)
		}
	}
	for _, t := range tickets {
		if t != nil {
			attach(t)
		}
	}
	held.reorder(tickets)
}
