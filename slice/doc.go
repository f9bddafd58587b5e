// Package slice implements the lazy, size-addressable byte-range
// composition engine used to assemble a virtual file out of static
// headers, computed metadata buffers, and passthrough regions of
// on-disk sample files, without ever materializing the whole stream.
package slice
