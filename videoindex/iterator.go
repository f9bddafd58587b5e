package videoindex

// Iterator is a forward-only cursor over one recording's per-sample
// index, per spec.md §6. Construction places the cursor at frame 0, if
// any; Next advances it. A full scan reads the current frame, calls
// Next, and repeats until Done() is true.
type Iterator interface {
	Done() bool
	HasError() bool
	Err() error
	Next()

	Start90k() int32
	Duration90k() int32
	End90k() int32
	Bytes() int32
	IsKey() bool
	Pos() int64
}
