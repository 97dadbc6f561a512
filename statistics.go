package taggo

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// Statistics accumulates per-dataset accuracies over the lifetime of a
// training session, keyed by dataset name in first-seen order.
type Statistics struct {
	Names      []string
	Accuracies map[string][]float32
}

func MakeStatistics() Statistics {
	return Statistics{
		Names:      make([]string, 0, 4),
		Accuracies: make(map[string][]float32),
	}
}

func (s *Statistics) Record(name string, accuracy float32) {
	if _, ok := s.Accuracies[name]; !ok {
		s.Names = append(s.Names, name)
	}
	s.Accuracies[name] = append(s.Accuracies[name], accuracy)
}

// Dump writes the recorded accuracies to filename as CSV, one column per
// dataset.
func (s *Statistics) Dump(filename string) error {
	f, err := os.OpenFile(filename, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return errors.WithStack(err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(s.Names); err != nil {
		return errors.WithStack(err)
	}

	var rows int
	for _, name := range s.Names {
		if n := len(s.Accuracies[name]); n > rows {
			rows = n
		}
	}
	for i := 0; i < rows; i++ {
		record := make([]string, len(s.Names))
		for j, name := range s.Names {
			if accs := s.Accuracies[name]; i < len(accs) {
				record[j] = strconv.FormatFloat(float64(accs[i]), 'f', 4, 32)
			}
		}
		if err := w.Write(record); err != nil {
			return errors.WithStack(err)
		}
	}
	w.Flush()
	return errors.WithStack(w.Error())
}
