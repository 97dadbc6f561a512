package taggo

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taggo/corpus"
)

// toy is trivially separable: the word fully determines the tag.
const toy = `a X

b Y

a X

b Y

a X

b Y
`

func TestTrainAndEvaluate(t *testing.T) {
	ds, err := corpus.Parse(toy)
	require.NoError(t, err)

	conf := DefaultConfig()
	conf.Seed = 1
	conf.Workers = 2

	tg := New(conf)
	require.NoError(t, tg.Train(ds, nil))
	require.NotEmpty(t, tg.Model.Weights)

	acc, err := tg.Evaluate(ds)
	require.NoError(t, err)
	assert.Equal(t, float32(1), acc, "a separable toy corpus must be fit exactly")

	assert.Equal(t, []string{"X"}, tg.Model.Tag([]string{"a"}))
	assert.Equal(t, []string{"Y"}, tg.Model.Tag([]string{"b"}))
}

func TestEvaluateEmptyDataset(t *testing.T) {
	tg := New(DefaultConfig())
	acc, err := tg.Evaluate(new(corpus.Dataset))
	require.NoError(t, err)
	assert.Zero(t, acc)
}

func TestStatistics(t *testing.T) {
	s := MakeStatistics()
	s.Record("train", 0.5)
	s.Record("dev", 0.25)
	s.Record("train", 0.75)

	path := filepath.Join(t.TempDir(), "stats.csv")
	require.NoError(t, s.Dump(path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"train", "dev"}, records[0])
	assert.Equal(t, []string{"0.5000", "0.2500"}, records[1])
	assert.Equal(t, []string{"0.7500", ""}, records[2])
}
