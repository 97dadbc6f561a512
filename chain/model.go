// Package chain implements a linear-chain sequence labeling model: dense
// weights over state and transition features, Viterbi decoding, and feature
// extraction from tokenized sentences. It provides the decoding and
// feature-enumeration capabilities the perceptron trainer is built against.
package chain

// Attr is one active attribute at a sequence position.
type Attr struct {
	ID    int
	Value float32
}

// Sequence is a labeled sentence digested into model attributes.
type Sequence struct {
	Items  [][]Attr
	Labels []int
}

// Model is a linear-chain model with a dense weight vector.
//
// Weight layout: all state features first, indexed attr*L + label, followed
// by the L×L transition block, indexed prev*L + label. L is the size of the
// label alphabet.
type Model struct {
	Labels  *Alphabet
	Attrs   *Alphabet
	Weights []float32
}

func NewModel() *Model {
	return &Model{
		Labels: NewAlphabet(),
		Attrs:  NewAlphabet(),
	}
}

// NumFeatures is the weight-space size for the current alphabets.
func (m *Model) NumFeatures() int {
	l := m.Labels.Len()
	return m.Attrs.Len()*l + l*l
}

// StateFeature is the weight index of (attribute, label).
func (m *Model) StateFeature(attr, label int) int {
	return attr*m.Labels.Len() + label
}

// TransFeature is the weight index of the (prev, label) transition.
func (m *Model) TransFeature(prev, label int) int {
	l := m.Labels.Len()
	return m.Attrs.Len()*l + prev*l + label
}

// Tag labels a sentence with the model's trained weights.
func (m *Model) Tag(words []string) []string {
	if len(words) == 0 {
		return nil
	}
	items := m.Observe(words)
	pred := make([]int, len(words))
	m.Viterbi(m.Weights, items, pred)

	tags := make([]string, len(words))
	for i, y := range pred {
		tags[i] = m.Labels.Name(y)
	}
	return tags
}
