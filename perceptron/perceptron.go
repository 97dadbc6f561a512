// Package perceptron trains sequence-labeling models with the online
// averaged perceptron (Collins 2002). The package owns only the training
// loop; decoding and feature enumeration are capabilities injected through
// the Batch.
package perceptron

import (
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/chewxy/math32"
	"github.com/pkg/errors"
	"gorgonia.org/vecf32"
)

// ErrOutOfMemory is returned when a working buffer cannot be acquired from
// the allocator. It is the only failure a training run can end with.
var ErrOutOfMemory = errors.New("out of memory")

// Train runs the averaged perceptron over the batch and returns the
// time-averaged weight vector, of length batch.Features. Ownership of the
// returned slice passes to the caller; every scratch buffer is returned to
// the allocator on every exit path.
//
// Progress is written to lg; a nil lg discards it.
func Train(batch *Batch, conf Config, lg *log.Logger) ([]float32, error) {
	if !conf.IsValid() {
		return nil, errors.Errorf("invalid config: max iterations %d, epsilon %f", conf.MaxIterations, conf.Epsilon)
	}
	if lg == nil {
		lg = log.New(io.Discard, "", 0)
	}
	r := conf.Rand
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	alloc := conf.Alloc
	if alloc == nil {
		alloc = heapAlloc{}
	}

	N := len(batch.Instances)
	K := batch.Features
	T := batch.MaxItems

	var (
		w, ws, wa     []float32
		perm, viterbi []int
		err           error
		done          bool
	)
	defer func() {
		alloc.PutInts(viterbi)
		alloc.PutInts(perm)
		alloc.PutFloats(ws)
		alloc.PutFloats(w)
		if !done {
			// wa only survives a completed run.
			alloc.PutFloats(wa)
		}
	}()
	if perm, err = alloc.Ints(N); err != nil {
		return nil, errors.Wrapf(ErrOutOfMemory, "permutation buffer: %v", err)
	}
	if w, err = alloc.Floats(K); err != nil {
		return nil, errors.Wrapf(ErrOutOfMemory, "weight buffer: %v", err)
	}
	if ws, err = alloc.Floats(K); err != nil {
		return nil, errors.Wrapf(ErrOutOfMemory, "weight sum buffer: %v", err)
	}
	if wa, err = alloc.Floats(K); err != nil {
		return nil, errors.Wrapf(ErrOutOfMemory, "averaged weight buffer: %v", err)
	}
	if viterbi, err = alloc.Ints(T); err != nil {
		return nil, errors.Wrapf(ErrOutOfMemory, "decode buffer: %v", err)
	}
	zero(w)
	zero(ws)
	zero(wa)

	lg.Printf("Averaged perceptron")
	lg.Printf("max_iterations: %d", conf.MaxIterations)
	lg.Printf("epsilon: %f", conf.Epsilon)

	begin := time.Now()

	// c counts instances processed across the whole run, starting at 1. It
	// is the time index that makes the lazy averaging below come out right.
	c := 1
	var cu, cs float32
	visit := FeatureVisitor(func(f int, v float32) {
		w[f] += cu * v
		ws[f] += cs * v
	})

	for i := 0; i < conf.MaxIterations; i++ {
		var loss float32
		epochBegin := time.Now()

		for n := range perm {
			perm[n] = n
		}
		r.Shuffle(N, func(a, b int) { perm[a], perm[b] = perm[b], perm[a] })

		for _, n := range perm {
			inst := batch.Instances[n]
			pred := viterbi[:len(inst.Labels)]
			batch.Decoder.Decode(w, inst, pred)

			if d := hamming(inst.Labels, pred); d > 0 {
				// Every feature on the gold path moves up, every feature on
				// the predicted path moves down; ws records each move scaled
				// by the current time index.
				cu, cs = 1, float32(c)
				batch.Oracle.ForEachFeature(inst, inst.Labels, visit)
				cu, cs = -1, -float32(c)
				batch.Oracle.ForEachFeature(inst, pred, visit)

				loss += float32(d) / float32(len(inst.Labels))
			}
			c++
		}

		// wa = w - ws/c reconstructs the mean of every historical weight
		// vector without having snapshotted any of them.
		copy(wa, ws)
		vecf32.Scale(wa, -1/float32(c))
		vecf32.Add(wa, w)

		lg.Printf("***** Iteration #%d *****", i+1)
		lg.Printf("Loss: %f", loss)
		lg.Printf("Feature norm: %f", norm(wa))
		lg.Printf("Seconds required for this iteration: %.3f", time.Since(epochBegin).Seconds())

		if converged(loss, N, conf.Epsilon) {
			lg.Printf("Terminated with the stopping criterion")
			break
		}
	}

	lg.Printf("Total seconds required for training: %.3f", time.Since(begin).Seconds())

	done = true
	return wa, nil
}

// converged reports whether training can stop after an epoch: an epoch with
// zero training error is convergence outright (this also covers the empty
// batch, which would otherwise divide by zero); anything else is measured as
// the mean per-instance error rate against epsilon.
func converged(loss float32, n int, epsilon float32) bool {
	if loss == 0 {
		return true
	}
	return loss/float32(n) < epsilon
}

// hamming counts the positions where the two labelings disagree.
func hamming(gold, pred []int) int {
	var d int
	for i := range gold {
		if gold[i] != pred[i] {
			d++
		}
	}
	return d
}

// norm computes the Euclidean norm of v.
func norm(v []float32) float32 {
	var s float32
	for _, x := range v {
		s += x * x
	}
	return math32.Sqrt(s)
}

func zero(v []float32) {
	for i := range v {
		v[i] = 0
	}
}
