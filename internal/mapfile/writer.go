package mapfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"codeberg.org/snonux/locconv/internal"
	"codeberg.org/snonux/locconv/internal/translation"
)

const (
	dirPermissions  = 0755
	filePermissions = 0644
)

var errUnsafeLocale = errors.New("locale cannot be used as a file name")

// Writer stores a catalog as one mapping file per locale
type Writer struct {
	codec  Codec
	logger zerolog.Logger
}

// NewWriter creates a writer producing files in codec's format
func NewWriter(codec Codec, logger zerolog.Logger) *Writer {
	return &Writer{
		codec:  codec,
		logger: logger.With().Str("sys", "mapfile").Logger(),
	}
}

// WriteDir creates dir if needed and writes every locale of catalog into
// it. Files are written concurrently and each one atomically; when a write
// fails the files already written are left in place.
func (w *Writer) WriteDir(ctx context.Context, dir string, catalog *translation.Catalog) error {
	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return &translation.IOError{Op: "mkdir", Path: dir, Err: err}
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, locale := range catalog.Locales() {
		m, _ := catalog.Lookup(locale)

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return w.writeFile(dir, locale, m)
		})
	}

	return g.Wait()
}

func (w *Writer) writeFile(dir, locale string, m *translation.Mapping) error {
	path := filepath.Join(dir, FileName(w.codec, locale))
	if !isSafeLocale(locale) {
		return &translation.IOError{Op: "write", Path: path, Err: errUnsafeLocale}
	}

	data, err := w.codec.Encode(m)
	if err != nil {
		return &translation.IOError{Op: "encode", Path: path, Err: err}
	}

	if err := internal.WriteFileAtomic(path, data, filePermissions); err != nil {
		return &translation.IOError{Op: "write", Path: path, Err: err}
	}

	w.logger.Debug().
		Str("locale", locale).
		Str("file", path).
		Int("keys", m.Len()).
		Msg("Wrote locale file")
	return nil
}

// isSafeLocale rejects locales that would escape the target directory
func isSafeLocale(locale string) bool {
	if locale == "" || locale == "." || locale == ".." {
		return false
	}
	return !strings.ContainsAny(locale, `/\`)
}
