// Package mapfile reads and writes directories of per-locale mapping files.
//
// Each file holds one flat key to string object and is named after its
// locale, for example en.json or pt-BR.yaml. Files are written with sorted
// keys and two-space indentation so repeated runs produce identical bytes,
// and are read back in document order so key order survives a round trip.
// Per-file work fans out over an errgroup and is joined before returning.
package mapfile
