package parallel_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"colorflow/parallel"
)

func TestPoolDo(t *testing.T) {
	for _, workers := range []int{1, 4} {
		pool := parallel.Start(workers)

		var sum atomic.Int64
		for i := range 100 {
			pool.Do(func() { sum.Add(int64(i)) })
		}
		pool.Wait(true)

		require.EqualValues(t, 4950, sum.Load(), "workers=%d", workers)
	}
}

func TestPoolSize(t *testing.T) {
	require.Equal(t, 1, parallel.Start(1).Size())

	pool := parallel.Start(3)
	defer pool.Wait(true)
	require.Equal(t, 3, pool.Size())

	var nilPool *parallel.Pool
	require.Equal(t, 1, nilPool.Size())
}

func TestBatch(t *testing.T) {
	pools := map[string]*parallel.Pool{
		"nil":    nil,
		"inline": parallel.Start(1),
		"four":   parallel.Start(4),
	}
	for name, pool := range pools {
		t.Run(name, func(t *testing.T) {
			seen := make([]atomic.Int32, 257)
			pool.Batch(len(seen), func(i int) { seen[i].Add(1) })
			for i := range seen {
				require.EqualValues(t, 1, seen[i].Load(), "index %d", i)
			}

			pool.Batch(0, func(int) { t.Fatal("called for empty batch") })
		})
	}
	pools["four"].Wait(true)
}

func TestBatchInsideJob(t *testing.T) {
	pool := parallel.Start(2)

	var (
		total atomic.Int64
		jobs  sync.WaitGroup
	)
	for range 8 {
		jobs.Add(1)
		pool.Do(func() {
			defer jobs.Done()
			pool.Batch(64, func(i int) { total.Add(int64(i)) })
		})
	}
	jobs.Wait()
	pool.Wait(true)

	require.EqualValues(t, 8*2016, total.Load())
}
