package core

import (
	"go/parser"
	"go/token"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

const modulePath = "github.com/1siamBot/particle-gesture/"

// The offline exporter builds on this package, so nothing it reaches may
// need a window system.
func TestCoreImportsNoEbiten(t *testing.T) {
	seen := map[string]bool{}
	var walk func(dir, from string)
	walk = func(dir, from string) {
		if seen[dir] {
			return
		}
		seen[dir] = true
		pkgs, err := parser.ParseDir(token.NewFileSet(), dir, func(fi fs.FileInfo) bool {
			return !strings.HasSuffix(fi.Name(), "_test.go")
		}, parser.ImportsOnly)
		if err != nil {
			t.Fatalf("parse %s: %v", dir, err)
		}
		for _, pkg := range pkgs {
			for name, f := range pkg.Files {
				for _, imp := range f.Imports {
					path, _ := strconv.Unquote(imp.Path.Value)
					if strings.HasPrefix(path, "github.com/hajimehoshi/ebiten") {
						t.Errorf("%s imports %s (reached from %s)", name, path, from)
					}
					if rest, ok := strings.CutPrefix(path, modulePath); ok {
						walk(filepath.Join("..", "..", filepath.FromSlash(rest)), dir)
					}
				}
			}
		}
	}
	walk(".", "core")
}
