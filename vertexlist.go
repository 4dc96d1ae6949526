package quickhull

// VertexList is an intrusive doubly linked list of Vertex nodes. It plays
// two roles in the builder: the global "claimed" list, partitioned per
// face via each vertex's face field (a face's claimed vertices form a
// contiguous run whose head is Face.outside), and the transient
// "unclaimed" list used while walking the horizon.
type VertexList struct {
	head, tail *Vertex
}

func (l *VertexList) clear() {
	l.head, l.tail = nil, nil
}

func (l *VertexList) first() *Vertex {
	return l.head
}

func (l *VertexList) isEmpty() bool {
	return l.head == nil
}

// add appends v to the end of the list.
func (l *VertexList) add(v *Vertex) {
	if l.tail != nil {
		l.tail.next = v
	} else {
		l.head = v
	}
	v.prev = l.tail
	v.next = nil
	l.tail = v
}

// addAll appends the run headed by v (and ending at vEnd) to the end of the
// list.
func (l *VertexList) addAll(v, vEnd *Vertex) {
	if l.tail != nil {
		l.tail.next = v
	} else {
		l.head = v
	}
	v.prev = l.tail
	l.tail = vEnd
}

// delete unlinks v from the list.
func (l *VertexList) delete(v *Vertex) {
	if v.prev == nil {
		l.head = v.next
	} else {
		v.prev.next = v.next
	}
	if v.next == nil {
		l.tail = v.prev
	} else {
		v.next.prev = v.prev
	}
	v.prev, v.next = nil, nil
}

// deleteRun unlinks the contiguous run [v, vEnd] from the list.
func (l *VertexList) deleteRun(v, vEnd *Vertex) {
	if v.prev == nil {
		l.head = vEnd.next
	} else {
		v.prev.next = vEnd.next
	}
	if vEnd.next == nil {
		l.tail = v.prev
	} else {
		vEnd.next.prev = v.prev
	}
	v.prev, vEnd.next = nil, nil
}

// insertBefore inserts v immediately before target in the list. target must
// not be nil.
func (l *VertexList) insertBefore(v, target *Vertex) {
	v.prev = target.prev
	v.next = target
	if target.prev == nil {
		l.head = v
	} else {
		target.prev.next = v
	}
	target.prev = v
}

// addPointToFace assigns v to face, inserting it into claimed so that
// face's claimed run stays contiguous with face.outside as its head, per
// spec.md §4.3: a newcomer is inserted immediately before the existing
// head, becoming the new head.
func addPointToFace(v *Vertex, face *Face, claimed *VertexList) {
	v.face = face
	if face.outside == nil {
		claimed.add(v)
	} else {
		claimed.insertBefore(v, face.outside)
	}
	face.outside = v
}

// removePointFromFace unlinks v from face's claimed run and from claimed.
func removePointFromFace(v *Vertex, face *Face, claimed *VertexList) {
	if v == face.outside {
		if v.next != nil && v.next.face == face {
			face.outside = v.next
		} else {
			face.outside = nil
		}
	}
	claimed.delete(v)
}

// removeAllPointsFromFace removes the whole contiguous run claimed by face
// from claimed and returns its head and tail (both nil if face claims
// nothing). The caller is responsible for re-homing the returned vertices
// (they arrive with face still set on each, per spec.md §4.5 "points flow
// into unclaimed").
func removeAllPointsFromFace(face *Face, claimed *VertexList) (head, tail *Vertex) {
	if face.outside == nil {
		return nil, nil
	}

	run := face.outside
	end := run
	for end.next != nil && end.next.face == face {
		end = end.next
	}

	claimed.deleteRun(run, end)
	face.outside = nil
	return run, end
}

// nextPointToAdd returns the vertex with the greatest distance to its own
// assigned face, restricted to the run of the first non-empty face (the
// face owning claimed.first()). Returns nil if the list is empty.
func (l *VertexList) nextPointToAdd() *Vertex {
	if l.isEmpty() {
		return nil
	}

	eyeFace := l.head.face
	best := l.head
	bestDist := eyeFace.distanceToPlane(best.Point)

	for v := l.head.next; v != nil && v.face == eyeFace; v = v.next {
		dist := eyeFace.distanceToPlane(v.Point)
		if dist > bestDist {
			bestDist = dist
			best = v
		}
	}
	return best
}
