package mapfile

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"codeberg.org/snonux/locconv/internal/translation"
)

// Reader loads a directory of mapping files into a catalog
type Reader struct {
	codec  Codec
	logger zerolog.Logger
}

// NewReader creates a reader for files handled by codec
func NewReader(codec Codec, logger zerolog.Logger) *Reader {
	return &Reader{
		codec:  codec,
		logger: logger.With().Str("sys", "mapfile").Logger(),
	}
}

// ReadDir parses every mapping file in dir. Locales are named after the
// file's base name and appear in the catalog in directory order. Files with
// other extensions, files without a base name (".json") and subdirectories
// are skipped. A directory without any mapping file yields an empty catalog
// and a warning.
//
// When two files map to the same locale (en.yaml and en.yml) the later one
// in directory order replaces the earlier one.
func (r *Reader) ReadDir(ctx context.Context, dir string) (*translation.Catalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &translation.IOError{Op: "read directory", Path: dir, Err: err}
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !hasExtension(r.codec, entry.Name()) {
			r.logger.Debug().
				Str("file", entry.Name()).
				Msgf("Skipping entry that is not a %s file", r.codec.Name())
			continue
		}
		if LocaleFromFileName(entry.Name()) == "" {
			r.logger.Debug().Str("file", entry.Name()).Msg("Skipping file without locale name")
			continue
		}
		names = append(names, entry.Name())
	}

	catalog := translation.NewCatalog()
	if len(names) == 0 {
		r.logger.Warn().Str("dir", dir).Msg("No locale file found")
		return catalog, nil
	}

	// One slot per file; the merge below happens after the join.
	mappings := make([]*translation.Mapping, len(names))

	g, ctx := errgroup.WithContext(ctx)
	for i, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			m, err := r.readFile(filepath.Join(dir, name))
			if err != nil {
				return err
			}
			mappings[i] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, name := range names {
		locale := LocaleFromFileName(name)
		if catalog.Put(locale, mappings[i]) {
			r.logger.Warn().
				Str("locale", locale).
				Str("file", name).
				Msg("Duplicate locale, replacing previously loaded file")
		}

		r.logger.Debug().
			Str("locale", locale).
			Int("keys", mappings[i].Len()).
			Msg("Loaded locale")
	}

	return catalog, nil
}

func (r *Reader) readFile(path string) (*translation.Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &translation.IOError{Op: "read", Path: path, Err: err}
	}

	m, err := r.codec.Decode(data)
	if err != nil {
		return nil, &translation.ParseError{Path: path, Err: err}
	}
	return m, nil
}
