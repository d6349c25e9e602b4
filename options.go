package interleaver

import (
	"os"

	"github.com/damoonazarpazhooh/interleaver/internal/logger"
)

// Option ...
type Option func(*Interleaver)

// LogOps ...
func LogOps() Option {
	return func(s *Interleaver) {
		s.stateLock.Lock()
		defer s.stateLock.Unlock()
		s.logOps = true
	}
}

// WithLogger -
func WithLogger(arg *logger.Logger) Option {
	return func(s *Interleaver) {
		s.stateLock.Lock()
		defer s.stateLock.Unlock()
		s.log = arg
	}
}

// WithRootPath - relative source and target paths are resolved against arg
func WithRootPath(arg string) Option {
	return func(s *Interleaver) {
		s.stateLock.Lock()
		defer s.stateLock.Unlock()
		s.root = arg
	}
}

// WithFileMode - permission bits of written parts and merged files
func WithFileMode(arg os.FileMode) Option {
	return func(s *Interleaver) {
		s.stateLock.Lock()
		defer s.stateLock.Unlock()
		s.fileMode = arg
	}
}
