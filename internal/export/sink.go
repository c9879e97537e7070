package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// File is a finished download handed to a Sink.
type File struct {
	Name        string
	ContentType string
	Body        []byte
}

// Sink delivers a file to the user, e.g. as an HTTP attachment or a file on disk.
type Sink interface {
	Deliver(ctx context.Context, f File) error
}

// DirSink writes every delivered file into a directory.
type DirSink struct {
	Dir string
}

func NewDirSink(dir string) *DirSink {
	return &DirSink{Dir: dir}
}

func (s *DirSink) Deliver(ctx context.Context, f File) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("create export dir %s: %w", s.Dir, err)
	}
	path := filepath.Join(s.Dir, filepath.Base(f.Name))
	if err := os.WriteFile(path, f.Body, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Recorder keeps delivered files in memory.
type Recorder struct {
	mu    sync.Mutex
	files []File
}

func (r *Recorder) Deliver(_ context.Context, f File) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.files = append(r.files, f)
	return nil
}

func (r *Recorder) Files() []File {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]File, len(r.files))
	copy(out, r.files)
	return out
}
