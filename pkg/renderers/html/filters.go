package html

import (
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
)

var registerFiltersOnce sync.Once

// registerDefaultFilters installs the filters the bundled templates use.
// pongo2 filters are global, so registration happens once per process.
func registerDefaultFilters() {
	registerFiltersOnce.Do(func() {
		if !pongo2.FilterExists("field_id") {
			_ = pongo2.RegisterFilter("field_id", filterFieldID)
		}
	})
}

// filterFieldID turns a dotted field path into an HTML id.
func filterFieldID(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	path := strings.TrimSpace(in.String())
	id := strings.NewReplacer(".", "-", "[", "-", "]", "").Replace(path)
	return pongo2.AsValue("field-" + id), nil
}
