package splitter

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// SheetGroup is one directory and its cue sheets, both in sorted order so
// batch runs are reproducible.
type SheetGroup struct {
	Dir    string
	Sheets []string
}

// DiscoverSheets locates cue sheets under root. With recursive set every
// subdirectory is scanned; otherwise only root itself. Directories without
// sheets are omitted.
func DiscoverSheets(root string, recursive bool) ([]SheetGroup, error) {
	if !recursive {
		entries, err := os.ReadDir(root)
		if err != nil {
			return nil, fmt.Errorf("read source directory: %w", err)
		}
		var sheets []string
		for _, entry := range entries {
			if !entry.IsDir() && isCueSheet(entry.Name()) {
				sheets = append(sheets, entry.Name())
			}
		}
		if len(sheets) == 0 {
			return nil, nil
		}
		sort.Strings(sheets)
		return []SheetGroup{{Dir: root, Sheets: sheets}}, nil
	}

	byDir := make(map[string][]string)
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !entry.IsDir() && isCueSheet(entry.Name()) {
			dir := filepath.Dir(path)
			byDir[dir] = append(byDir[dir], entry.Name())
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk source directory: %w", err)
	}

	dirs := make([]string, 0, len(byDir))
	for dir := range byDir {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)

	groups := make([]SheetGroup, 0, len(dirs))
	for _, dir := range dirs {
		sheets := byDir[dir]
		sort.Strings(sheets)
		groups = append(groups, SheetGroup{Dir: dir, Sheets: sheets})
	}
	return groups, nil
}

func isCueSheet(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".cue")
}
