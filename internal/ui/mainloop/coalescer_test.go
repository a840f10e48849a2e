package mainloop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoalescer_MergesBurstIntoSingleRun(t *testing.T) {
	var queue []func()
	c := NewCoalescer[string](func(fn func()) { queue = append(queue, fn) })

	value := 0
	for i := 1; i <= 5; i++ {
		v := i
		c.Post("window-state", func() { value = v })
	}

	require.Len(t, queue, 1)
	assert.Equal(t, 1, c.Len())
	queue[0]()

	assert.Equal(t, 5, value, "latest task wins")
	assert.Equal(t, 0, c.Len())
}

func TestCoalescer_KeysAreIndependent(t *testing.T) {
	var queue []func()
	c := NewCoalescer[int](func(fn func()) { queue = append(queue, fn) })

	var ran []int
	c.Post(1, func() { ran = append(ran, 1) })
	c.Post(2, func() { ran = append(ran, 2) })
	require.Len(t, queue, 2)

	for _, fn := range queue {
		fn()
	}
	assert.Equal(t, []int{1, 2}, ran)
}

func TestCoalescer_PostAfterRunSchedulesAgain(t *testing.T) {
	var queue []func()
	c := NewCoalescer[string](func(fn func()) { queue = append(queue, fn) })

	count := 0
	c.Post("k", func() { count++ })
	queue[0]()
	c.Post("k", func() { count++ })
	require.Len(t, queue, 2)
	queue[1]()
	assert.Equal(t, 2, count)
}

func TestCoalescer_DropsWorkAfterDestroy(t *testing.T) {
	var queue []func()
	c := NewCoalescer[string](func(fn func()) { queue = append(queue, fn) })

	ran := false
	c.Post("k", func() { ran = true })
	c.Destroy()

	require.Len(t, queue, 1)
	queue[0]()
	assert.False(t, ran)

	c.Post("k", func() { ran = true })
	assert.Len(t, queue, 1, "no new callback after destroy")
}

func TestNewCoalescer_PanicsOnNilPost(t *testing.T) {
	assert.Panics(t, func() { _ = NewCoalescer[string](nil) })
}
