package recorder

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"golang.org/x/image/draw"
)

// ErrClosed is returned when frames are recorded after Close.
var ErrClosed = errors.New("recorder: closed")

type recorder struct {
	mu *sync.Mutex
	wg sync.WaitGroup

	pool      worker.DynamicWorkerPool
	workers   int
	queueSize int

	dir         string
	prefix      string
	compression png.CompressionLevel

	next    int
	written int
	errs    []error
	closed  bool
}

// Recorder writes overlay frames to numbered PNG files, encoding them on a worker pool.
type Recorder interface {
	// Record copies frame and queues it for encoding. The copy is taken before Record
	// returns, so the caller may reuse the frame buffer immediately.
	//
	// Parameters:
	//   - frame: the frame to write
	//
	// Returns:
	//   - string: the path the frame will be written to
	//   - error: ErrClosed after Close, or an error for an empty frame
	Record(frame image.Image) (string, error)

	// Flush blocks until every queued frame has been written.
	//
	// Returns:
	//   - error: the joined encode errors since the previous Flush, or nil
	Flush() error

	// Written returns the number of frames successfully written.
	//
	// Returns:
	//   - int: written frame count
	Written() int

	// Dir returns the output directory.
	//
	// Returns:
	//   - string: the directory frames are written into
	Dir() string

	// Close flushes pending frames and stops the worker pool.
	//
	// Returns:
	//   - error: the joined encode errors of the final flush
	Close() error
}

var _ Recorder = &recorder{}

// NewRecorder creates a Recorder writing into dir, creating it if needed.
//
// Parameters:
//   - dir: the output directory
//   - options: functional options to configure the recorder
//
// Returns:
//   - Recorder: the recorder
//   - error: an error if dir cannot be created
func NewRecorder(dir string, options ...RecorderBuilderOption) (Recorder, error) {
	r := &recorder{
		mu:          &sync.Mutex{},
		workers:     runtime.NumCPU(),
		queueSize:   64,
		dir:         dir,
		prefix:      "frame",
		compression: png.DefaultCompression,
	}
	for _, option := range options {
		option(r)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("recorder: create %s: %w", dir, err)
	}
	r.pool = worker.NewDynamicWorkerPool(r.workers, r.queueSize, time.Second)
	return r, nil
}

func (r *recorder) Record(frame image.Image) (string, error) {
	if frame == nil || frame.Bounds().Empty() {
		return "", errors.New("recorder: empty frame")
	}

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return "", ErrClosed
	}
	index := r.next
	r.next++
	r.mu.Unlock()

	path := filepath.Join(r.dir, fmt.Sprintf("%s_%05d.png", r.prefix, index))
	img := cloneRGBA(frame)

	r.wg.Add(1)
	r.pool.SubmitTask(worker.Task{
		ID: index,
		Do: func() (any, error) {
			defer r.wg.Done()
			err := r.encode(path, img)
			r.mu.Lock()
			if err != nil {
				r.errs = append(r.errs, err)
			} else {
				r.written++
			}
			r.mu.Unlock()
			return path, err
		},
	})
	return path, nil
}

func (r *recorder) encode(path string, img *image.RGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("recorder: create %s: %w", path, err)
	}
	enc := png.Encoder{CompressionLevel: r.compression}
	if err := enc.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("recorder: encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("recorder: close %s: %w", path, err)
	}
	return nil
}

func (r *recorder) Flush() error {
	r.wg.Wait()
	r.mu.Lock()
	defer r.mu.Unlock()
	err := errors.Join(r.errs...)
	r.errs = nil
	return err
}

func (r *recorder) Written() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.written
}

func (r *recorder) Dir() string {
	return r.dir
}

func (r *recorder) Close() error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	r.closed = true
	r.mu.Unlock()

	err := r.Flush()
	r.pool.Stop()
	log.Printf("[Recorder] wrote %d frames to %s", r.Written(), r.dir)
	return err
}

// cloneRGBA copies src into a fresh RGBA image anchored at the origin.
func cloneRGBA(src image.Image) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}
