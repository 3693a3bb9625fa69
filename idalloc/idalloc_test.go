package idalloc_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/clustergraph/idalloc"
)

func TestAllocator_InitialCount(t *testing.T) {
	a := idalloc.New()
	require.Equal(t, idalloc.Reserved, a.Count())
}

func TestAllocator_GenerateIsMonotone(t *testing.T) {
	a := idalloc.New()

	first := a.Generate()
	second := a.Generate()
	third := a.Generate()

	assert.Equal(t, idalloc.Reserved+1, first)
	assert.Equal(t, idalloc.Reserved+2, second)
	assert.Equal(t, idalloc.Reserved+3, third)
	assert.Equal(t, third, a.Count())
}

func TestAllocator_SetCountOnlyMovesForward(t *testing.T) {
	a := idalloc.New()
	a.SetCount(500)
	require.Equal(t, uint64(500), a.Count())

	// Moving backward is a no-op.
	a.SetCount(100)
	assert.Equal(t, uint64(500), a.Count())

	next := a.Generate()
	assert.Equal(t, uint64(501), next)
}

func TestAllocator_ConcurrentGenerateNeverCollides(t *testing.T) {
	a := idalloc.New()
	const n = 1000

	seen := make(chan uint64, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			seen <- a.Generate()
		}()
	}
	wg.Wait()
	close(seen)

	unique := make(map[uint64]struct{}, n)
	for id := range seen {
		_, dup := unique[id]
		require.False(t, dup, "duplicate id %d issued", id)
		unique[id] = struct{}{}
	}
	assert.Len(t, unique, n)
}
