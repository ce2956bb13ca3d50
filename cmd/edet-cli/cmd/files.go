package cmd

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gobwas/glob"

	"edet/internal/domain"
)

// collectFiles turns paths into descriptors, walking directories and
// skipping hidden entries. include filters on the base name when set.
func collectFiles(paths []string, include glob.Glob) ([]domain.FileDescriptor, error) {
	files := []domain.FileDescriptor{}

	for _, p := range paths {
		p = expandHome(p)
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", p, err)
		}

		if !info.IsDir() {
			if include != nil && !include.Match(info.Name()) {
				continue
			}
			fd, err := describe(p, info)
			if err != nil {
				return nil, err
			}
			files = append(files, fd)
			continue
		}

		var found []domain.FileDescriptor
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if path != p && strings.HasPrefix(d.Name(), ".") {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if d.IsDir() {
				return nil
			}
			if include != nil && !include.Match(d.Name()) {
				return nil
			}

			info, err := d.Info()
			if err != nil {
				return err
			}
			fd, err := describe(path, info)
			if err != nil {
				return err
			}
			found = append(found, fd)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk %s: %w", p, err)
		}

		sort.Slice(found, func(i, j int) bool {
			return found[i].Name < found[j].Name
		})
		files = append(files, found...)
	}

	return files, nil
}

func describe(path string, info fs.FileInfo) (domain.FileDescriptor, error) {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return domain.FileDescriptor{}, fmt.Errorf("failed to detect type of %s: %w", path, err)
	}
	return domain.FileDescriptor{
		Name: info.Name(),
		Size: info.Size(),
		Type: mtype.String(),
	}, nil
}

func expandHome(p string) string {
	if strings.HasPrefix(p, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, p[1:])
		}
	}
	return p
}
