// Package taggo ties together the linear-chain model, the corpus reader and
// the averaged-perceptron trainer into a sequence tagger.
package taggo

import (
	"log"
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/panjf2000/ants/v2"
	"github.com/pkg/errors"

	"taggo/chain"
	"taggo/corpus"
	"taggo/perceptron"
)

// Config configures a Tagger.
type Config struct {
	MaxIterations int     `yaml:"max_iterations"`
	Epsilon       float32 `yaml:"epsilon"`
	Seed          int64   `yaml:"seed"`    // 0 leaves the shuffle time-seeded
	Workers       int     `yaml:"workers"` // goroutines used to tag a dataset
}

func DefaultConfig() Config {
	return Config{
		MaxIterations: 10,
		Workers:       runtime.NumCPU(),
	}
}

// Tagger couples a linear-chain model with its training configuration.
type Tagger struct {
	Model *chain.Model
	Conf  Config
}

func New(conf Config) *Tagger {
	return &Tagger{
		Model: chain.NewModel(),
		Conf:  conf,
	}
}

// Train fits the model to ds with the averaged perceptron. The model's
// alphabets grow to cover the dataset; its weights are replaced wholesale by
// the averaged vector the trainer hands back.
func (tg *Tagger) Train(ds *corpus.Dataset, lg *log.Logger) error {
	seqs := make([]chain.Sequence, ds.Len())
	for i := range seqs {
		words, tags := ds.Split(i)
		seqs[i] = tg.Model.Digest(words, tags)
	}

	conf := perceptron.Config{
		MaxIterations: tg.Conf.MaxIterations,
		Epsilon:       tg.Conf.Epsilon,
	}
	if tg.Conf.Seed != 0 {
		conf.Rand = rand.New(rand.NewSource(tg.Conf.Seed))
	}

	w, err := perceptron.Train(tg.Model.Batch(seqs), conf, lg)
	if err != nil {
		return errors.WithMessage(err, "training failed")
	}
	tg.Model.Weights = w
	return nil
}

// Evaluate tags every sentence of ds in parallel and returns the token-level
// accuracy against the gold tags.
func (tg *Tagger) Evaluate(ds *corpus.Dataset) (float32, error) {
	workers := tg.Conf.Workers
	if workers < 1 {
		workers = 1
	}
	pool, err := ants.NewPool(workers)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	defer pool.Release()

	var (
		wg             sync.WaitGroup
		correct, total int64
	)
	for i := 0; i < ds.Len(); i++ {
		words, tags := ds.Split(i)
		wg.Add(1)
		task := func() {
			defer wg.Done()
			var ok int64
			for t, tag := range tg.Model.Tag(words) {
				if tag == tags[t] {
					ok++
				}
			}
			atomic.AddInt64(&correct, ok)
			atomic.AddInt64(&total, int64(len(tags)))
		}
		if err := pool.Submit(task); err != nil {
			wg.Done()
			return 0, errors.WithStack(err)
		}
	}
	wg.Wait()

	if total == 0 {
		return 0, nil
	}
	return float32(correct) / float32(total), nil
}
