package perceptron

// FeatureVisitor receives one active (feature, value) pair at a time.
type FeatureVisitor func(feature int, value float32)

// Decoder finds the best-scoring labeling of an instance under the given
// weights, writing it into pred (len(pred) == number of items). The score is
// returned for observability only; the trainer never consults it.
//
// A Decoder must be deterministic given fixed weights and a fixed instance.
type Decoder interface {
	Decode(w []float32, inst Instance, pred []int) float32
}

// FeatureOracle walks every feature active on an instance under the given
// labeling. Enumeration order is irrelevant, but it must be exhaustive and
// must not visit the same feature twice within one call.
type FeatureOracle interface {
	ForEachFeature(inst Instance, labels []int, visit FeatureVisitor)
}

// DecoderFunc adapts a plain function to the Decoder interface.
type DecoderFunc func(w []float32, inst Instance, pred []int) float32

func (f DecoderFunc) Decode(w []float32, inst Instance, pred []int) float32 {
	return f(w, inst, pred)
}

// OracleFunc adapts a plain function to the FeatureOracle interface.
type OracleFunc func(inst Instance, labels []int, visit FeatureVisitor)

func (f OracleFunc) ForEachFeature(inst Instance, labels []int, visit FeatureVisitor) {
	f(inst, labels, visit)
}

// Instance is one labeled training sequence.
type Instance struct {
	Labels []int       // gold labels, one per item
	Value  interface{} // model-specific payload, opaque to the trainer
}

// Batch is a training set: the labeled instances plus the capabilities the
// trainer needs to decode them and to enumerate their features. The batch is
// owned by the caller and is never mutated by the trainer.
type Batch struct {
	Instances []Instance
	Features  int // total number of distinct feature ids
	MaxItems  int // upper bound on the number of items per instance

	Decoder Decoder
	Oracle  FeatureOracle
}
