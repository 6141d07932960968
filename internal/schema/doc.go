// Package schema infers the layout of a tabular translation file: which
// column holds the translation keys and which columns are locales.
package schema
