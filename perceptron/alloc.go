package perceptron

import "sync"

// Allocator is the source of a training run's working buffers. Custom
// allocators can pool buffers across runs or cap the working set; an
// allocator that cannot satisfy a request reports an error, which the
// trainer surfaces as ErrOutOfMemory after returning every buffer it
// already holds.
type Allocator interface {
	Floats(n int) ([]float32, error)
	Ints(n int) ([]int, error)
	PutFloats(p []float32)
	PutInts(p []int)
}

// heapAlloc is the default Allocator. It allocates from the heap and lets
// the garbage collector do the reclaiming.
type heapAlloc struct{}

func (heapAlloc) Floats(n int) ([]float32, error) { return make([]float32, n), nil }
func (heapAlloc) Ints(n int) ([]int, error)       { return make([]int, n), nil }
func (heapAlloc) PutFloats(p []float32)           {}
func (heapAlloc) PutInts(p []int)                 {}

// Pool is an Allocator that recycles buffers across training runs. Useful
// when many models of the same feature-space size are trained in sequence.
type Pool struct {
	mu     sync.Mutex
	floats map[int]*sync.Pool
	ints   map[int]*sync.Pool
}

func NewPool() *Pool {
	return &Pool{
		floats: make(map[int]*sync.Pool),
		ints:   make(map[int]*sync.Pool),
	}
}

// Floats hands out a zeroed buffer of length n.
func (p *Pool) Floats(n int) ([]float32, error) {
	p.mu.Lock()
	d, ok := p.floats[n]
	if !ok {
		d = &sync.Pool{New: func() interface{} { return make([]float32, n) }}
		p.floats[n] = d
	}
	p.mu.Unlock()

	buf := d.Get().([]float32)
	for i := range buf {
		buf[i] = 0
	}
	return buf, nil
}

func (p *Pool) Ints(n int) ([]int, error) {
	p.mu.Lock()
	d, ok := p.ints[n]
	if !ok {
		d = &sync.Pool{New: func() interface{} { return make([]int, n) }}
		p.ints[n] = d
	}
	p.mu.Unlock()
	return d.Get().([]int), nil
}

func (p *Pool) PutFloats(buf []float32) {
	if buf == nil {
		return
	}
	p.mu.Lock()
	d, ok := p.floats[len(buf)]
	p.mu.Unlock()
	if ok {
		d.Put(buf)
	}
}

func (p *Pool) PutInts(buf []int) {
	if buf == nil {
		return
	}
	p.mu.Lock()
	d, ok := p.ints[len(buf)]
	p.mu.Unlock()
	if ok {
		d.Put(buf)
	}
}
