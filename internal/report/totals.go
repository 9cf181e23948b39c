package report

import "cofre/internal/money"

// Slice is one labelled share of a total.
type Slice struct {
	Name    string  `json:"name"`
	Amount  int64   `json:"amount"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// Totals accumulates amounts and counts per label, remembering the order in
// which labels were first seen.
type Totals struct {
	index   map[string]int
	names   []string
	amounts []int64
	counts  []int
}

// NewTotals returns an empty accumulator.
func NewTotals() *Totals {
	return &Totals{index: make(map[string]int)}
}

// Add records amount under name.
func (t *Totals) Add(name string, amount int64) {
	i, ok := t.index[name]
	if !ok {
		i = len(t.names)
		t.index[name] = i
		t.names = append(t.names, name)
		t.amounts = append(t.amounts, 0)
		t.counts = append(t.counts, 0)
	}
	t.amounts[i] += amount
	t.counts[i]++
}

// Len is the number of distinct labels.
func (t *Totals) Len() int { return len(t.names) }

// Amount returns the running total for name.
func (t *Totals) Amount(name string) int64 {
	if i, ok := t.index[name]; ok {
		return t.amounts[i]
	}
	return 0
}

// MostFrequent returns the label with the highest count. Ties go to the
// label seen first.
func (t *Totals) MostFrequent() (string, bool) {
	best := -1
	for i := range t.names {
		if best < 0 || t.counts[i] > t.counts[best] {
			best = i
		}
	}
	if best < 0 {
		return "", false
	}
	return t.names[best], true
}

// Slices lists every label in first-seen order with its share of whole.
func (t *Totals) Slices(whole int64) []Slice {
	out := make([]Slice, len(t.names))
	for i, name := range t.names {
		out[i] = Slice{
			Name:    name,
			Amount:  t.amounts[i],
			Count:   t.counts[i],
			Percent: money.Round(money.Percent(t.amounts[i], whole), 1),
		}
	}
	return out
}
