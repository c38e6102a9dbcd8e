package element

// indexQueue is a FIFO ring of freed slot indices.
type indexQueue struct {
	buf  []uint32
	head int
	size int
}

func newIndexQueue(capacity int) indexQueue {
	if capacity < 4 {
		capacity = 4
	}
	return indexQueue{buf: make([]uint32, capacity)}
}

func (q *indexQueue) Len() int {
	return q.size
}

func (q *indexQueue) Enqueue(v uint32) {
	if q.size == len(q.buf) {
		q.grow()
	}
	q.buf[(q.head+q.size)%len(q.buf)] = v
	q.size++
}

func (q *indexQueue) Dequeue() uint32 {
	v := q.buf[q.head]
	q.head = (q.head + 1) % len(q.buf)
	q.size--
	return v
}

func (q *indexQueue) Clear() {
	q.head = 0
	q.size = 0
}

func (q *indexQueue) grow() {
	next := make([]uint32, len(q.buf)*2)
	for i := 0; i < q.size; i++ {
		next[i] = q.buf[(q.head+i)%len(q.buf)]
	}
	q.buf = next
	q.head = 0
}
