package perceptron

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolHandsOutZeroedFloats(t *testing.T) {
	p := NewPool()

	buf, err := p.Floats(8)
	require.NoError(t, err)
	require.Len(t, buf, 8)

	for i := range buf {
		buf[i] = float32(i + 1)
	}
	p.PutFloats(buf)

	again, err := p.Floats(8)
	require.NoError(t, err)
	require.Len(t, again, 8)
	assert.Equal(t, make([]float32, 8), again, "recycled buffers must come back zeroed")
}

func TestPoolInts(t *testing.T) {
	p := NewPool()

	buf, err := p.Ints(4)
	require.NoError(t, err)
	assert.Len(t, buf, 4)

	p.PutInts(buf)
	p.PutInts(nil)               // tolerated
	p.PutInts(make([]int, 1024)) // unknown size, dropped
}

func TestPoolBackedTraining(t *testing.T) {
	batch := &Batch{
		Instances: []Instance{{Labels: []int{0}}},
		Features:  2,
		MaxItems:  1,
		Decoder:   constDecoder(1),
		Oracle:    labelOracle{},
	}
	conf := DefaultConfig()
	conf.MaxIterations = 1
	conf.Alloc = NewPool()

	w, err := Train(batch, conf, nil)
	require.NoError(t, err)
	assert.Equal(t, []float32{0.5, -0.5}, w)

	// A second run recycles the first run's scratch buffers and must not be
	// polluted by them.
	w, err = Train(batch, conf, nil)
	require.NoError(t, err)
	assert.Equal(t, []float32{0.5, -0.5}, w)
}
