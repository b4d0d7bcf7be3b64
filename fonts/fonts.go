// Package fonts bundles the built-in glyph sets,
// one directory per font.
package fonts

import (
	"embed"
	"io/fs"
	"sort"
)

// Default is the font used when none is specified.
const Default = "segment"

//go:embed segment/*.svg block/*.svg
var files embed.FS

// Names returns the names of the built-in fonts, sorted.
func Names() []string {
	entries, _ := files.ReadDir(".")
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names
}

// Lookup returns the glyph files of the built-in font `name`.
func Lookup(name string) (fs.FS, bool) {
	if info, err := fs.Stat(files, name); err != nil || !info.IsDir() {
		return nil, false
	}
	sub, err := fs.Sub(files, name)
	if err != nil {
		return nil, false
	}
	return sub, true
}
