package sjs

// queue is an append only worklist reused across passes. run picks up items
// added while it is running.
type queue[T any] struct {
	items []T
	count int
}

func (q *queue[T]) reset() {
	clear(q.items[:q.count])
	q.count = 0
}

func (q *queue[T]) add(item T) {
	if q.count < len(q.items) {
		q.items[q.count] = item
	} else {
		q.items = append(q.items, item)
	}
	q.count++
}

func (q *queue[T]) run(fn func(T)) {
	var zero T
	for i := 0; i < q.count; i++ {
		fn(q.items[i])
		q.items[i] = zero
	}
	q.count = 0
}
