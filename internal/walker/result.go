package walker

// Result represents the outcome of processing a single file.
type Result struct {
	// Path of the processed file
	Path string

	// Size of the file after processing, in bytes
	Size int64

	// Any error that occurred during processing
	Error error
}
