package periodic

import (
	"fmt"
	"os"
	"sort"

	"github.com/go-logr/logr"
	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
	"go.uber.org/multierr"
)

var validate = validator.New()

// tableFile is the top-level shape of a table document.
type tableFile struct {
	Elements   []*elementBlock  `hcl:"element,block"`
	Acceptance *acceptanceBlock `hcl:"acceptance,block"`
	Remain     hcl.Body         `hcl:",remain"`
}

type elementBlock struct {
	Symbol    string   `hcl:"symbol,label"`
	Ordinal   int      `hcl:"ordinal"`
	Valences  []int    `hcl:"valences"`
	En        *float64 `hcl:"en,optional"`
	Weight    float64  `hcl:"weight"`
	Electrons int      `hcl:"electrons"`
}

// acceptanceBlock keeps raw values: object literals are converted to
// map(number) after decoding.
type acceptanceBlock struct {
	Cation cty.Value `hcl:"cation,optional"`
	Anion  cty.Value `hcl:"anion,optional"`
}

// Loader reads table documents from disk, merging them in order so later
// files override earlier ones symbol by symbol.
type Loader struct {
	log logr.Logger
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithLogger attaches a logger; the default discards everything.
func WithLogger(l logr.Logger) LoaderOption {
	return func(ld *Loader) { ld.log = l }
}

// NewLoader creates a Loader.
func NewLoader(opts ...LoaderOption) *Loader {
	ld := &Loader{log: logr.Discard()}
	for _, opt := range opts {
		opt(ld)
	}
	return ld
}

// Load parses every path and merges the results into one table.
func (ld *Loader) Load(paths ...string) (*MapTable, error) {
	out := NewMapTable()
	for _, p := range paths {
		src, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("periodic: reading %s: %w", p, err)
		}
		t, err := Parse(src, p)
		if err != nil {
			return nil, err
		}
		ld.log.V(1).Info("loaded periodic table", "path", p, "elements", t.Len())
		out.Merge(t)
	}
	return out, nil
}

// LoadFile parses a single table document from disk.
func LoadFile(path string) (*MapTable, error) {
	return NewLoader().Load(path)
}

// Parse decodes and validates an HCL table document. filename is used in
// diagnostics only. Every validation problem is reported, not just the first.
func Parse(src []byte, filename string) (*MapTable, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidTable, filename, diags)
	}
	var root tableFile
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidTable, filename, diags)
	}

	t := NewMapTable()
	var errs error
	for _, b := range root.Elements {
		el := b.element()
		if _, dup := t.elements[el.Symbol]; dup {
			errs = multierr.Append(errs, fmt.Errorf("element %q defined twice", el.Symbol))
			continue
		}
		if err := validateElement(el); err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		t.insert(el)
	}
	if root.Acceptance != nil {
		errs = multierr.Append(errs, decodeAcceptance(root.Acceptance.Cation, "cation", t, t.cation))
		errs = multierr.Append(errs, decodeAcceptance(root.Acceptance.Anion, "anion", t, t.anion))
	}
	if errs != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidTable, filename, errs)
	}
	return t, nil
}

func (b *elementBlock) element() Element {
	el := Element{
		Symbol:           b.Symbol,
		Ordinal:          b.Ordinal,
		Valences:         b.Valences,
		Weight:           b.Weight,
		ValenceElectrons: b.Electrons,
	}
	if b.En != nil {
		el.Electronegativity = *b.En
	}
	return el
}

// decodeAcceptance converts an object or map literal into dst, checking
// that every key names a known element.
func decodeAcceptance(val cty.Value, name string, t *MapTable, dst map[string]int) error {
	if val.IsNull() || !val.IsKnown() {
		return nil
	}
	asMap, err := convert.Convert(val, cty.Map(cty.Number))
	if err != nil {
		return fmt.Errorf("acceptance.%s: %w", name, err)
	}
	var m map[string]int
	if err := gocty.FromCtyValue(asMap, &m); err != nil {
		return fmt.Errorf("acceptance.%s: %w", name, err)
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var errs error
	for _, k := range keys {
		if _, ok := t.elements[k]; !ok {
			errs = multierr.Append(errs, fmt.Errorf("acceptance.%s: %w: %q", name, ErrUnknownElement, k))
			continue
		}
		dst[k] = m[k]
	}
	return errs
}

// validateElement applies the struct tags and the ascending-valence rule.
func validateElement(el Element) error {
	var errs error
	if err := validate.Struct(el); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range verrs {
				errs = multierr.Append(errs, fmt.Errorf("element %q: field %s fails %q", el.Symbol, fe.Field(), fe.Tag()))
			}
		} else {
			errs = multierr.Append(errs, err)
		}
	}
	for i := 1; i < len(el.Valences); i++ {
		if el.Valences[i] <= el.Valences[i-1] {
			errs = multierr.Append(errs, fmt.Errorf("element %q: valences must be strictly ascending", el.Symbol))
			break
		}
	}
	return errs
}
