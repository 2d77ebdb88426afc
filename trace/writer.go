package trace

// Meta carries the one-time header fields written at Open (spec.md §6).
// Fields a caller doesn't track are left empty. The header has no fstats
// or time field.
type Meta struct {
	TracerName    string
	TracerVersion string
	TargetPath    string
	TargetMD5     string
	User          string
	Host          string
}

// Writer is the external trace container the engine emits frames to. The
// concrete file format is explicitly out of the core's scope (spec.md §1);
// this interface is the contract. ContainerWriter in this package is one
// conforming implementation; an embedder may supply another.
type Writer interface {
	// Open begins a new trace at path. Calling Open while a writer is
	// already open is a no-op that returns an error (spec.md §5).
	Open(path string, meta Meta) error
	// Add appends one frame, in order.
	Add(f Frame) error
	// Finish flushes and finalizes the container so its footer is
	// written. Not calling Finish is observable as a corrupt trace.
	Finish() error
}
