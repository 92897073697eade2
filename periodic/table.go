package periodic

import (
	"fmt"
	"sort"
)

// MapTable is an in-memory Table keyed by element symbol.
type MapTable struct {
	elements map[string]Element
	cation   map[string]int
	anion    map[string]int
}

// NewMapTable returns an empty table; use Add and SetAcceptance to fill it,
// or Parse to build one from HCL.
func NewMapTable() *MapTable {
	return &MapTable{
		elements: make(map[string]Element),
		cation:   make(map[string]int),
		anion:    make(map[string]int),
	}
}

// Add validates el and inserts or replaces it.
func (t *MapTable) Add(el Element) error {
	if err := validateElement(el); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidTable, err)
	}
	t.insert(el)
	return nil
}

func (t *MapTable) insert(el Element) {
	vs := make([]int, len(el.Valences))
	copy(vs, el.Valences)
	el.Valences = vs
	t.elements[el.Symbol] = el
}

// SetAcceptance records the cation and anion acceptance limits for symbol.
// A negative limit removes the corresponding entry.
func (t *MapTable) SetAcceptance(symbol string, cation, anion int) error {
	if _, ok := t.elements[symbol]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownElement, symbol)
	}
	setOrDelete(t.cation, symbol, cation)
	setOrDelete(t.anion, symbol, anion)
	return nil
}

func setOrDelete(m map[string]int, k string, v int) {
	if v < 0 {
		delete(m, k)
		return
	}
	m[k] = v
}

// Lookup implements Table.
func (t *MapTable) Lookup(symbol string) (Element, bool) {
	el, ok := t.elements[symbol]
	return el, ok
}

// Find returns the element or an ErrUnknownElement-wrapped error.
func (t *MapTable) Find(symbol string) (Element, error) {
	el, ok := t.elements[symbol]
	if !ok {
		return Element{}, fmt.Errorf("%w: %q", ErrUnknownElement, symbol)
	}
	return el, nil
}

// CationAcceptance implements Table.
func (t *MapTable) CationAcceptance(symbol string) (int, bool) {
	v, ok := t.cation[symbol]
	return v, ok
}

// AnionAcceptance implements Table.
func (t *MapTable) AnionAcceptance(symbol string) (int, bool) {
	v, ok := t.anion[symbol]
	return v, ok
}

// Len returns the number of elements.
func (t *MapTable) Len() int { return len(t.elements) }

// Symbols returns every symbol sorted by ordinal number.
func (t *MapTable) Symbols() []string {
	out := make([]string, 0, len(t.elements))
	for s := range t.elements {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		return t.elements[out[i]].Ordinal < t.elements[out[j]].Ordinal
	})
	return out
}

// Merge copies every element and acceptance entry of src into t; entries
// of src replace those of t with the same symbol.
func (t *MapTable) Merge(src *MapTable) {
	for s, el := range src.elements {
		t.elements[s] = el
	}
	for s, v := range src.cation {
		t.cation[s] = v
	}
	for s, v := range src.anion {
		t.anion[s] = v
	}
}

// FormulaDict returns the element-count mapping of a single symbol.
func FormulaDict(symbol string) map[string]int {
	return map[string]int{symbol: 1}
}
