package recorder

import "image/png"

// RecorderBuilderOption is a functional option for configuring a recorder.
type RecorderBuilderOption func(*recorder)

// WithWorkers sets the number of encoder goroutines. Values below 1 are ignored.
//
// Parameters:
//   - n: worker count
//
// Returns:
//   - RecorderBuilderOption: option function to apply
func WithWorkers(n int) RecorderBuilderOption {
	return func(r *recorder) {
		if n > 0 {
			r.workers = n
		}
	}
}

// WithQueueSize sets how many frames may wait for an encoder before Record blocks.
//
// Parameters:
//   - n: queue capacity
//
// Returns:
//   - RecorderBuilderOption: option function to apply
func WithQueueSize(n int) RecorderBuilderOption {
	return func(r *recorder) {
		if n >= 0 {
			r.queueSize = n
		}
	}
}

// WithPrefix sets the file name prefix; files are named <prefix>_00000.png.
//
// Parameters:
//   - prefix: file name prefix
//
// Returns:
//   - RecorderBuilderOption: option function to apply
func WithPrefix(prefix string) RecorderBuilderOption {
	return func(r *recorder) {
		if prefix != "" {
			r.prefix = prefix
		}
	}
}

// WithCompression sets the PNG compression level.
//
// Parameters:
//   - level: the png.CompressionLevel to encode with
//
// Returns:
//   - RecorderBuilderOption: option function to apply
func WithCompression(level png.CompressionLevel) RecorderBuilderOption {
	return func(r *recorder) {
		r.compression = level
	}
}
