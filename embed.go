package main

import (
	"embed"
	"io/fs"
	"os"
)

//go:embed all:Assets
var embeddedAssets embed.FS

// assetFS prefers dir on disk so art can be edited without rebuilding, and
// falls back to the copy compiled into the binary.
func assetFS(dir string) (fs.FS, bool, error) {
	if info, err := os.Stat(dir); err == nil && info.IsDir() {
		return os.DirFS(dir), true, nil
	}
	sub, err := fs.Sub(embeddedAssets, "Assets")
	if err != nil {
		return nil, false, err
	}
	return sub, false, nil
}
