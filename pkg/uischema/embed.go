package uischema

import (
	"embed"
	"io/fs"
)

//go:embed ui/*
var embeddedSchema embed.FS

// EmbeddedFS returns the bundled UI schema assets.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedSchema, "ui")
	if err != nil {
		panic(err)
	}
	return sub
}
