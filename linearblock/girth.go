package linearblock

import (
	"context"
	"runtime"
	"sync"

	mat "github.com/nathanhack/sparsemat"
	"github.com/nathanhack/threadpool"
)

// Girth returns the length of the smallest cycle in the tanner graph of H,
// or -1 when the graph has no cycles.
// threads specifies the number of threads to use if <=0 will use runtime.NumCPU()
func (l *LinearBlock) Girth(ctx context.Context, threads int) int {
	return Girth(ctx, l.H, threads)
}

func Girth(ctx context.Context, H mat.SparseMat, threads int) int {
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	rows, _ := H.Dims()

	pool := threadpool.New(ctx, threads)
	girth := -1
	mux := sync.Mutex{}
	for i := 0; i < rows; i++ {
		check := i
		pool.Add(func() {
			mux.Lock()
			limit := girth
			mux.Unlock()

			g := shortestCycle(H, check, limit)

			mux.Lock()
			if g > 0 && (girth == -1 || g < girth) {
				girth = g
			}
			mux.Unlock()
		})
	}
	pool.Wait()
	return girth
}

type tannerNode struct {
	parent int
}

// shortestCycle runs a BFS from the check node, alternating between variable and
// check nodes, and returns the length of the first cycle through it. The search
// stops once cycles can no longer be shorter than limit (-1 for no limit).
func shortestCycle(H mat.SparseMat, check, limit int) int {
	rows, _ := H.Dims()

	hop := make(map[int]tannerNode)
	for _, v := range H.Row(check).NonzeroArray() {
		hop[v] = tannerNode{parent: check}
	}
	if len(hop) <= 1 {
		return -1
	}

	for level := 1; level < 2*rows; level++ {
		if limit > 0 && (level+1)*2 >= limit {
			return -1
		}

		next := make(map[int]tannerNode)
		for n, node := range hop {
			var neighbors []int
			if level%2 == 0 {
				neighbors = H.Row(n).NonzeroArray()
			} else {
				neighbors = H.Column(n).NonzeroArray()
			}

			for _, i := range neighbors {
				if i == node.parent {
					continue
				}
				_, has := next[i]
				if has || (level%2 == 1 && i == check) {
					return (level + 1) * 2
				}
				next[i] = tannerNode{parent: n}
			}
		}
		if len(next) == 0 {
			return -1
		}
		hop = next
	}
	return -1
}
