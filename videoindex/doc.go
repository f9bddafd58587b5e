// Package videoindex defines the forward-iterator contract a
// recording's compact per-sample index is consumed through
// (SampleIndexIterator in spec.md §6), plus one concrete, tested
// codec for it. The codec is additive: spec.md treats the on-disk
// index format as an opaque external detail, but sampletable.go and
// the builder need a real decoder to be exercised end-to-end.
package videoindex
