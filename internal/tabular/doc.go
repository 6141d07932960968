// Package tabular reads and writes the CSV side of a translation
// dictionary: a header row naming the columns followed by one record per
// translation key.
package tabular
