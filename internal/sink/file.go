package sink

import (
	"context"
	"sync"

	"github.com/spf13/afero"
)

// FileConfig configures the file sink.
type FileConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// FileSink appends every record, newline-delimited, to a file on an
// afero.Fs. Using afero rather than os directly makes the sink testable
// against afero.NewMemMapFs() without touching disk.
type FileSink struct {
	mu   sync.Mutex
	fs   afero.Fs
	file afero.File
}

// NewFileSink opens path on fs for append writes, creating it if missing;
// an existing file is kept and appended to, not truncated.
func NewFileSink(fs afero.Fs, path string) (*FileSink, error) {
	f, err := fs.OpenFile(path, osAppendFlags, 0o644)
	if err != nil {
		return nil, err
	}
	return &FileSink{fs: fs, file: f}, nil
}

// Write appends record followed by a newline.
func (s *FileSink) Write(_ context.Context, record string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.file.WriteString(record + "\n")
	return err
}

// Close flushes and closes the underlying file.
func (s *FileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.file.Close()
}
