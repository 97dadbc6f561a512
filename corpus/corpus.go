// Package corpus reads and writes two-column tagged datasets: one
// "word tag" pair per line, sentences separated by a blank line.
package corpus

import (
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Token is one word with its gold tag.
type Token struct {
	Word string
	Tag  string
}

// Dataset is an ordered collection of tagged sentences.
type Dataset struct {
	Sentences [][]Token
}

// Load reads a dataset from a file.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	ds, err := Parse(string(data))
	return ds, errors.WithMessagef(err, "parsing %s", path)
}

// Parse reads a dataset from its textual form.
func Parse(data string) (*Dataset, error) {
	ds := new(Dataset)
	for _, block := range strings.Split(data, "\n\n") {
		var sent []Token
		for _, line := range strings.Split(block, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			fields := strings.Fields(line)
			if len(fields) != 2 {
				return nil, errors.Errorf("malformed line %q", line)
			}
			sent = append(sent, Token{Word: fields[0], Tag: fields[1]})
		}
		if len(sent) > 0 {
			ds.Sentences = append(ds.Sentences, sent)
		}
	}
	return ds, nil
}

// Store writes the dataset back out in its textual form.
func (ds *Dataset) Store(path string) error {
	var b strings.Builder
	for _, sent := range ds.Sentences {
		for _, tok := range sent {
			b.WriteString(tok.Word)
			b.WriteByte(' ')
			b.WriteString(tok.Tag)
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}
	return errors.WithStack(os.WriteFile(path, []byte(b.String()), 0644))
}

func (ds *Dataset) Len() int { return len(ds.Sentences) }

// Split returns the words and tags of sentence i as parallel slices.
func (ds *Dataset) Split(i int) (words, tags []string) {
	sent := ds.Sentences[i]
	words = make([]string, len(sent))
	tags = make([]string, len(sent))
	for j, tok := range sent {
		words[j] = tok.Word
		tags[j] = tok.Tag
	}
	return words, tags
}
