package i18n

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"path"
	"strings"
)

//go:embed locales/*.yaml
var builtinLocales embed.FS

// TranslationAdapter is a source of translations keyed by language.
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter serves translations from memory.
type MapAdapter struct {
	Translations map[string]map[string]any
}

func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	if len(a.Translations) == 0 {
		return nil, ErrNoTranslations
	}
	return a.Translations, nil
}

// FSAdapter loads every .yaml and .yml file from dir of a filesystem.
// Bundles for the same language are merged, later files win on conflicting top-level keys.
type FSAdapter struct {
	fsys fs.FS
	dir  string
}

// NewFSAdapter creates an adapter reading dir from fsys, e.g. os.DirFS("translations").
func NewFSAdapter(fsys fs.FS, dir string) *FSAdapter {
	if dir == "" {
		dir = "."
	}
	return &FSAdapter{fsys: fsys, dir: dir}
}

// BuiltinAdapter returns the bundles shipped with the package (en, ru).
func BuiltinAdapter() *FSAdapter {
	return NewFSAdapter(builtinLocales, "locales")
}

func (a *FSAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	entries, err := fs.ReadDir(a.fsys, a.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}

	all := make(map[string]map[string]any)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(path.Ext(name))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		content, err := fs.ReadFile(a.fsys, path.Join(a.dir, name))
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, err)
		}
		bundle, err := parseYAML(ctx, content)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		for lang, trans := range bundle {
			if all[lang] == nil {
				all[lang] = make(map[string]any, len(trans))
			}
			maps.Copy(all[lang], trans)
		}
	}

	if len(all) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoTranslations, a.dir)
	}
	return all, nil
}
