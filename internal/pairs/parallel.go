package pairs

import (
	"fmt"
	"sync"

	"github.com/mwerner/sphpair/internal/vecmath"
)

// accPool recycles per-worker acceleration scratch buffers.
type accPool struct {
	pool sync.Pool
	size int
}

func newAccPool(size int) *accPool {
	return &accPool{
		size: size,
		pool: sync.Pool{
			New: func() interface{} {
				return make([]vecmath.Vec, size)
			},
		},
	}
}

func (p *accPool) get() []vecmath.Vec {
	return p.pool.Get().([]vecmath.Vec)
}

func (p *accPool) put(acc []vecmath.Vec) {
	if len(acc) != p.size {
		return
	}
	for i := range acc {
		acc[i].Clear()
	}
	p.pool.Put(acc)
}

// EvaluateParallel accumulates the pair list across workers goroutines.
// Pairs sharing a particle may land on different workers, so each worker
// writes into a private scratch buffer; the scratches are reduced into Acc
// single-threaded afterwards. The result matches Evaluate up to
// floating-point summation order.
func (e *Evaluator) EvaluateParallel(pairList []Pair, workers int) error {
	if workers <= 1 || len(pairList) < 2*workers {
		return e.Evaluate(pairList)
	}

	pool := newAccPool(len(e.particles))
	scratches := make([][]vecmath.Vec, workers)
	errs := make([]error, workers)

	chunk := (len(pairList) + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > len(pairList) {
			hi = len(pairList)
		}
		if lo >= hi {
			break
		}

		wg.Add(1)
		go func(idx, lo, hi int) {
			defer wg.Done()

			scratch := pool.get()
			scratches[idx] = scratch

			for k := lo; k < hi; k++ {
				if err := e.evaluatePair(&pairList[k], scratch); err != nil {
					errs[idx] = fmt.Errorf("pair %d (%d,%d): %w",
						k, pairList[k].I, pairList[k].J, err)
					return
				}
			}
		}(w, lo, hi)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	for _, scratch := range scratches {
		if scratch == nil {
			continue
		}
		for i := range e.Acc {
			e.Acc[i].Add(scratch[i])
		}
		pool.put(scratch)
	}

	return nil
}
