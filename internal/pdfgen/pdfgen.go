// Package pdfgen compiles every PDF a course shipped with into one
// combined document, in course order.
package pdfgen

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/veteranbv/ThinkiPlex/internal/organize"
	"github.com/veteranbv/ThinkiPlex/internal/util"
)

// CollectPDFs returns every .pdf under courseDir ordered by chapter
// ordinal, then item ordinal, then file name. Files outside the numbered
// folder scheme sort after numbered ones at the same level.
func CollectPDFs(courseDir string) ([]string, error) {
	var found []struct {
		path string
		key  []int
	}

	err := filepath.WalkDir(courseDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".pdf") {
			return nil
		}
		rel, err := filepath.Rel(courseDir, path)
		if err != nil {
			return err
		}
		found = append(found, struct {
			path string
			key  []int
		}{path, orderKey(rel)})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", courseDir, err)
	}

	sort.SliceStable(found, func(i, j int) bool {
		a, b := found[i], found[j]
		for k := 0; k < len(a.key) && k < len(b.key); k++ {
			if a.key[k] != b.key[k] {
				return a.key[k] < b.key[k]
			}
		}
		if len(a.key) != len(b.key) {
			return len(a.key) < len(b.key)
		}
		return a.path < b.path
	})

	paths := make([]string, len(found))
	for i, f := range found {
		paths[i] = f.path
	}
	return paths, nil
}

// orderKey maps a course-relative path onto its numeric folder ordinals.
// Unnumbered path elements contribute a sentinel that sorts last.
func orderKey(rel string) []int {
	parts := strings.Split(rel, string(filepath.Separator))
	key := make([]int, 0, len(parts)-1)
	for _, part := range parts[:len(parts)-1] {
		if n, _, ok := organize.ParseNumberedDir(part); ok {
			key = append(key, n)
		} else {
			key = append(key, 1<<30)
		}
	}
	return key
}

// Compile merges the course's PDFs into outPath. Returns the number of
// source documents merged.
func Compile(courseDir, outPath string) (int, error) {
	pdfs, err := CollectPDFs(courseDir)
	if err != nil {
		return 0, err
	}
	if len(pdfs) == 0 {
		return 0, fmt.Errorf("no PDFs found in %s", courseDir)
	}

	if err := util.EnsureDir(filepath.Dir(outPath)); err != nil {
		return 0, err
	}
	if err := api.MergeCreateFile(pdfs, outPath, false, nil); err != nil {
		return 0, fmt.Errorf("merging %d PDFs: %w", len(pdfs), err)
	}
	return len(pdfs), nil
}
