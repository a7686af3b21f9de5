package catalog

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/funopi/funopi-backend/internal/types"
)

//go:embed fallback.yaml
var fallbackYAML []byte

var (
	fallbackOnce  sync.Once
	fallbackItems []types.Experience
)

// Fallback returns the compiled-in catalog served when the store is
// unreachable, empty, or not configured. Entries carry no position: they are
// not mutable rows. Callers get a fresh copy each time.
func Fallback() []types.Experience {
	fallbackOnce.Do(func() {
		if err := yaml.Unmarshal(fallbackYAML, &fallbackItems); err != nil {
			panic(fmt.Sprintf("catalog: embedded fallback.yaml is invalid: %v", err))
		}
	})
	out := make([]types.Experience, len(fallbackItems))
	copy(out, fallbackItems)
	return out
}
