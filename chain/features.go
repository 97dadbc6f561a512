package chain

import (
	"fmt"
	"strings"
	"unicode"
)

// ForEachFeature visits every feature active on items under the given
// labeling: one state feature per (position, attribute) and one transition
// feature per adjacent label pair. Repeated activations of the same feature
// are summed so that no feature id is visited twice within one call.
func (m *Model) ForEachFeature(items [][]Attr, labels []int, visit func(feature int, value float32)) {
	acc := make(map[int]float32, len(items)*8)
	for i, item := range items {
		for _, a := range item {
			acc[m.StateFeature(a.ID, labels[i])] += a.Value
		}
		if i > 0 {
			acc[m.TransFeature(labels[i-1], labels[i])]++
		}
	}
	for f, v := range acc {
		visit(f, v)
	}
}

// Digest converts a tagged sentence into a training sequence, interning
// every unseen label and attribute. Use Observe for tagging-time conversion,
// which leaves the alphabets alone.
func (m *Model) Digest(words, tags []string) Sequence {
	seq := Sequence{
		Items:  make([][]Attr, len(words)),
		Labels: make([]int, len(words)),
	}
	for i := range words {
		obs := observations(words, i)
		attrs := make([]Attr, len(obs))
		for j, o := range obs {
			attrs[j] = Attr{ID: m.Attrs.Add(o), Value: 1}
		}
		seq.Items[i] = attrs
		seq.Labels[i] = m.Labels.Add(tags[i])
	}
	return seq
}

// Observe converts an untagged sentence into model attributes. Attributes
// the model has never seen carry no weight and are dropped.
func (m *Model) Observe(words []string) [][]Attr {
	items := make([][]Attr, len(words))
	for i := range words {
		for _, o := range observations(words, i) {
			if id := m.Attrs.ID(o); id >= 0 {
				items[i] = append(items[i], Attr{ID: id, Value: 1})
			}
		}
	}
	return items
}

// observations applies the feature templates at position i: the word itself,
// its lowered form, its shape, prefixes and suffixes up to length 3,
// neighboring words within a ±2 window, and sentence boundary markers.
func observations(words []string, i int) []string {
	w := words[i]
	runes := []rune(w)

	obs := make([]string, 0, 16)
	obs = append(obs,
		"w="+w,
		"wl="+strings.ToLower(w),
		"shape="+shape(runes),
	)
	for n := 1; n <= 3 && n <= len(runes); n++ {
		obs = append(obs, fmt.Sprintf("p%d=%s", n, string(runes[:n])))
		obs = append(obs, fmt.Sprintf("s%d=%s", n, string(runes[len(runes)-n:])))
	}
	for off := -2; off <= 2; off++ {
		if off == 0 {
			continue
		}
		if p := i + off; 0 <= p && p < len(words) {
			obs = append(obs, fmt.Sprintf("w[%d]=%s", off, words[p]))
		}
	}
	if i == 0 {
		obs = append(obs, "__BOS__")
	}
	if i == len(words)-1 {
		obs = append(obs, "__EOS__")
	}
	return obs
}

// shape maps each rune to a character class: U for upper, L for lower, D for
// digit, anything else passes through.
func shape(runes []rune) string {
	var b strings.Builder
	for _, r := range runes {
		switch {
		case unicode.IsUpper(r):
			b.WriteByte('U')
		case unicode.IsLower(r):
			b.WriteByte('L')
		case unicode.IsDigit(r):
			b.WriteByte('D')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
