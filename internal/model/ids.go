package model

// Counter allocates monotonically increasing entity IDs, starting at 1.
// Each entity type gets its own Counter; IDs are never reused, even after
// deletion.
type Counter struct {
	next int
}

// NewCounter returns a counter whose first allocated ID is 1.
func NewCounter() *Counter {
	return &Counter{next: 1}
}

// Next returns the next ID and advances the counter.
func (c *Counter) Next() int {
	id := c.next
	c.next++
	return id
}

// Observe advances the counter past id so that future allocations never
// collide with it. Used when reconstructing entities from storage.
func (c *Counter) Observe(id int) {
	if id >= c.next {
		c.next = id + 1
	}
}

// Peek returns the ID that Next would allocate, without advancing.
func (c *Counter) Peek() int {
	return c.next
}

func containsID(ids []int, id int) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func removeID(ids []int, id int) []int {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}

// copyIDs returns a non-nil copy so that callers cannot mutate entity state
// and serialized membership lists come out as [] rather than null.
func copyIDs(ids []int) []int {
	out := make([]int, len(ids))
	copy(out, ids)
	return out
}
