package chain

import (
	"encoding/gob"
	"os"

	"github.com/pkg/errors"
)

// Save writes the model to filename.
func (m *Model) Save(filename string) error {
	f, err := os.OpenFile(filename, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return errors.WithStack(err)
	}
	defer f.Close()

	enc := gob.NewEncoder(f)
	return errors.WithStack(enc.Encode(m))
}

// Load reads a model written by Save.
func Load(filename string) (*Model, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer f.Close()

	m := NewModel()
	dec := gob.NewDecoder(f)
	if err := dec.Decode(m); err != nil {
		return nil, errors.WithStack(err)
	}
	return m, nil
}
