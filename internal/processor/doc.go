// Package processor contains the two conversion pipelines. It reads the
// input with the tabular or mapfile packages, classifies and transforms the
// data, and hands the result to the matching writer. This package serves
// as the coordinator between all other components.
package processor
