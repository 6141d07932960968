package tabular

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/snonux/locconv/internal/testutil"
	"codeberg.org/snonux/locconv/internal/translation"
)

func TestWrite(t *testing.T) {
	table := &Table{
		Columns: []string{"key", "en", "fr"},
		Rows: []Row{
			{"key": "a", "en": "1", "fr": "un"},
			{"key": "b", "en": "2"},
			{"key": "c,d", "en": "line\nbreak", "fr": `"quoted"`},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, table))

	want := "key,en,fr\n" +
		"a,1,un\n" +
		"b,2,\n" +
		"\"c,d\",\"line\nbreak\",\"\"\"quoted\"\"\"\n"
	assert.Equal(t, want, buf.String())
}

func TestWrite_RoundTrip(t *testing.T) {
	table := &Table{
		Columns: []string{"key", "en"},
		Rows: []Row{
			{"key": "greeting", "en": "Hello, \"world\""},
			{"key": "multi", "en": "one\ntwo"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, table))

	got, err := Read(strings.NewReader(buf.String()))
	require.NoError(t, err)
	assert.Equal(t, table, got)
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.csv")
	table := &Table{
		Columns: []string{"key", "en"},
		Rows:    []Row{{"key": "a", "en": "1"}},
	}

	require.NoError(t, WriteFile(path, table))
	testutil.AssertFileContent(t, path, []byte("key,en\na,1\n"))

	// A second write fully replaces the previous content.
	table.Rows = nil
	require.NoError(t, WriteFile(path, table))
	testutil.AssertFileContent(t, path, []byte("key,en\n"))
}

func TestWriteFile_Unwritable(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("file, not a directory"), 0644))

	err := WriteFile(filepath.Join(blocker, "out.csv"), &Table{Columns: []string{"key"}})

	var ioErr *translation.IOError
	require.True(t, errors.As(err, &ioErr))
	assert.Equal(t, "mkdir", ioErr.Op)
}
