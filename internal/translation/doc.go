// Package translation holds the in-memory model of a multi-locale
// dictionary: per-locale key to string mappings, the ordered catalog of
// loaded locales, and the error kinds shared by both conversion directions.
package translation
