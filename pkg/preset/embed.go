package preset

import (
	"embed"
	"io/fs"
	"sync"
)

//go:embed catalog/*.yaml
var embeddedCatalog embed.FS

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// EmbeddedFS returns the bundled preset documents.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedCatalog, "catalog")
	if err != nil {
		// The embed directive guarantees the subpath exists.
		panic(err)
	}
	return sub
}

// Default returns the catalog built from the bundled presets. The bundled data
// is validated by tests, so a load failure here is a build defect and panics.
func Default() *Catalog {
	defaultOnce.Do(func() {
		catalog, err := LoadFS(EmbeddedFS())
		if err != nil {
			panic(err)
		}
		defaultCatalog = catalog
	})
	return defaultCatalog
}
