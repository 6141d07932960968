package mapfile

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"codeberg.org/snonux/locconv/internal/translation"
)

var (
	utf8BOM        = []byte("\xef\xbb\xbf")
	errInvalidUTF8 = errors.New("invalid UTF-8")
)

// Codec converts a mapping to and from one structured-text format
type Codec interface {
	// Name returns the format name used in configuration
	Name() string

	// Extensions lists the accepted file extensions; the first one is used
	// when writing
	Extensions() []string

	// Encode serializes the mapping with keys in lexicographic order
	Encode(m *translation.Mapping) ([]byte, error)

	// Decode parses a flat object, keeping the document's key order
	Decode(data []byte) (*translation.Mapping, error)
}

// NewCodec returns the codec for format ("json" or "yaml")
func NewCodec(format string) (Codec, error) {
	switch strings.ToLower(format) {
	case "", "json":
		return JSONCodec{}, nil
	case "yaml", "yml":
		return YAMLCodec{}, nil
	default:
		return nil, fmt.Errorf("%w: unsupported mapping format %q (use json or yaml)", translation.ErrUsage, format)
	}
}

// FileName returns the file name used for locale
func FileName(codec Codec, locale string) string {
	return locale + codec.Extensions()[0]
}

// LocaleFromFileName strips the extension from a mapping file name
func LocaleFromFileName(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}

func hasExtension(codec Codec, name string) bool {
	ext := filepath.Ext(name)
	for _, candidate := range codec.Extensions() {
		if ext == candidate {
			return true
		}
	}
	return false
}

func sortedKeys(m *translation.Mapping) []string {
	keys := m.Keys()
	sort.Strings(keys)
	return keys
}

func trimBOM(data []byte) []byte {
	return bytes.TrimPrefix(data, utf8BOM)
}

// checkUTF8 refuses mappings that neither format can store byte for byte
func checkUTF8(m *translation.Mapping) error {
	for _, key := range m.Keys() {
		value, _ := m.Get(key)
		if !utf8.ValidString(key) || !utf8.ValidString(value) {
			return fmt.Errorf("%w in key %q", errInvalidUTF8, key)
		}
	}
	return nil
}
