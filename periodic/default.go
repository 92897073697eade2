package periodic

import (
	_ "embed"
	"sync"
)

//go:embed elements.hcl
var defaultSource []byte

var (
	defaultOnce  sync.Once
	defaultTable *MapTable
)

// Default returns the embedded table shared by every caller that does not
// supply its own. It must not be mutated.
func Default() *MapTable {
	defaultOnce.Do(func() {
		t, err := Parse(defaultSource, "elements.hcl")
		if err != nil {
			// The embedded document is part of the build; a failure is a bug.
			panic(err)
		}
		defaultTable = t
	})
	return defaultTable
}
