package chain

import "taggo/perceptron"

// Batch wraps the digested sequences as a training batch, binding the
// model's Viterbi decoder and feature enumeration to it.
func (m *Model) Batch(seqs []Sequence) *perceptron.Batch {
	insts := make([]perceptron.Instance, len(seqs))
	var maxItems int
	for i, s := range seqs {
		insts[i] = perceptron.Instance{Labels: s.Labels, Value: s.Items}
		if len(s.Items) > maxItems {
			maxItems = len(s.Items)
		}
	}
	return &perceptron.Batch{
		Instances: insts,
		Features:  m.NumFeatures(),
		MaxItems:  maxItems,
		Decoder: perceptron.DecoderFunc(func(w []float32, inst perceptron.Instance, pred []int) float32 {
			return m.Viterbi(w, inst.Value.([][]Attr), pred)
		}),
		Oracle: perceptron.OracleFunc(func(inst perceptron.Instance, labels []int, visit perceptron.FeatureVisitor) {
			m.ForEachFeature(inst.Value.([][]Attr), labels, visit)
		}),
	}
}
