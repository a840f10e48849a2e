package mainloop

import "sync"

// Coalescer merges bursts of same-key tasks: only the latest task posted for
// a key runs, once, when the poster gets to it.
type Coalescer[K comparable] struct {
	mu        sync.Mutex
	pending   map[K]bool
	latest    map[K]func()
	post      func(func())
	destroyed bool
}

// NewCoalescer returns a coalescer scheduling through post, which is usually
// Loop.Post or a writer goroutine's queue.
func NewCoalescer[K comparable](post func(func())) *Coalescer[K] {
	if post == nil {
		panic("mainloop.NewCoalescer: post function cannot be nil")
	}

	return &Coalescer[K]{
		pending: make(map[K]bool),
		latest:  make(map[K]func()),
		post:    post,
	}
}

// Post records fn as the latest task for key and schedules a run unless one
// is already pending.
func (c *Coalescer[K]) Post(key K, fn func()) {
	if fn == nil {
		return
	}

	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return
	}
	c.latest[key] = fn
	if c.pending[key] {
		c.mu.Unlock()
		return
	}
	c.pending[key] = true
	post := c.post
	c.mu.Unlock()

	post(func() { c.run(key) })
}

func (c *Coalescer[K]) run(key K) {
	c.mu.Lock()
	fn := c.latest[key]
	delete(c.pending, key)
	delete(c.latest, key)
	if c.destroyed {
		fn = nil
	}
	c.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// Len returns the number of keys waiting to run.
func (c *Coalescer[K]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}

// Destroy drops pending work; later posts are ignored.
func (c *Coalescer[K]) Destroy() {
	c.mu.Lock()
	c.destroyed = true
	c.pending = map[K]bool{}
	c.latest = map[K]func(){}
	c.mu.Unlock()
}
