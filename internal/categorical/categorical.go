// Package categorical maps string categories to dense integer codes.
package categorical

import "slices"

// Unseen is the code Encode returns for a value absent at fit time.
const Unseen = -1

// CodeMap is a bijection between the distinct values of one column and the
// codes 0..k-1, assigned in lexicographic order of the values. A CodeMap is
// read-only after Fit and safe for concurrent use.
type CodeMap struct {
	classes []string
	codes   map[string]int
}

// Fit builds a CodeMap from the observed values of a column.
func Fit(values []string) *CodeMap {
	classes := slices.Clone(values)
	slices.Sort(classes)
	classes = slices.Compact(classes)

	codes := make(map[string]int, len(classes))
	for i, c := range classes {
		codes[c] = i
	}
	return &CodeMap{classes: classes, codes: codes}
}

// Encode returns the code for value, or Unseen if value was not fitted.
func (m *CodeMap) Encode(value string) int {
	if code, ok := m.codes[value]; ok {
		return code
	}
	return Unseen
}

// EncodeAll encodes each value in order.
func (m *CodeMap) EncodeAll(values []string) []int {
	out := make([]int, len(values))
	for i, v := range values {
		out[i] = m.Encode(v)
	}
	return out
}

// Decode returns the value for code.
func (m *CodeMap) Decode(code int) (string, bool) {
	if code < 0 || code >= len(m.classes) {
		return "", false
	}
	return m.classes[code], true
}

// Classes returns the fitted values in code order.
func (m *CodeMap) Classes() []string {
	return slices.Clone(m.classes)
}

// Len returns the number of fitted classes.
func (m *CodeMap) Len() int {
	return len(m.classes)
}
