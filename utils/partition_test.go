package utils

import (
	"math"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartitionMap(t *testing.T) {
	getHisto := func(K, Np int) (histo map[int]int) {
		pm := NewPartitionMap(Np, K)
		histo = make(map[int]int)
		for np := 0; np < pm.ParallelDegree; np++ {
			kMin, kMax := pm.GetBucketRange(np)
			histo[kMax-kMin]++
		}
		return
	}
	getTotal := func(histo map[int]int) (total int) {
		for key, count := range histo {
			total += key * count
		}
		return
	}
	assert.Equal(t, map[int]int{0: 30, 1: 2}, getHisto(2, 32))
	assert.Equal(t, map[int]int{1: 32}, getHisto(32, 32))
	assert.Equal(t, map[int]int{8: 32}, getHisto(256, 32))
	assert.Equal(t, map[int]int{8: 1, 9: 31}, getHisto(287, 32))
	for n := 64; n < 2000; n++ {
		histo := getHisto(n, 32)
		var keys []float64
		for key := range histo {
			keys = append(keys, float64(key))
		}
		if len(keys) == 2 {
			// maximum imbalance of one
			assert.Equal(t, 1., math.Abs(keys[0]-keys[1]))
		}
		assert.Equal(t, n, getTotal(histo))
	}

	// buckets are contiguous and cover the range
	for maxIndex := 10; maxIndex < 300; maxIndex++ {
		pm := NewPartitionMap(5, maxIndex)
		next := 0
		for bn := 0; bn < pm.ParallelDegree; bn++ {
			kMin, kMax := pm.GetBucketRange(bn)
			assert.Equal(t, next, kMin)
			next = kMax
		}
		assert.Equal(t, maxIndex, next)
	}
}

func TestParallelFor(t *testing.T) {
	for _, n := range []int{0, 1, 7, 1000} {
		seen := make([]int32, n)
		var calls int64
		ParallelFor(n, func(k int) {
			seen[k]++
			atomic.AddInt64(&calls, 1)
		})
		assert.Equal(t, int64(n), calls)
		for k := range seen {
			assert.Equal(t, int32(1), seen[k])
		}
	}
}
