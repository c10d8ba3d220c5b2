package workspace

// TaskQueue holds actions deferred until the current event has been handled.
// Tasks run in the order they were scheduled; tasks scheduled while draining
// run in the same drain, after the ones already queued.
type TaskQueue struct {
	pending []func()
}

// Defer schedules fn for the next drain.
func (q *TaskQueue) Defer(fn func()) {
	if fn == nil {
		return
	}
	q.pending = append(q.pending, fn)
}

// Drain runs queued tasks until the queue is empty and returns how many ran.
func (q *TaskQueue) Drain() int {
	n := 0
	for len(q.pending) > 0 {
		fn := q.pending[0]
		q.pending[0] = nil
		q.pending = q.pending[1:]
		fn()
		n++
	}
	q.pending = nil
	return n
}

// Len is the number of tasks waiting.
func (q *TaskQueue) Len() int { return len(q.pending) }
