package file

import (
	"context"
	"path/filepath"
	"time"

	"github.com/damoonazarpazhooh/interleaver/internal/errcode"
	"github.com/damoonazarpazhooh/interleaver/internal/logger"
	"github.com/damoonazarpazhooh/interleaver/pkg/filewrapper"
	"github.com/palantir/stacktrace"
)

// DefaultFileMode is used for written files when no mode was given.
const DefaultFileMode = 0644

// New - constructs a new file Storage. Call Init before use.
func New(opts ...Option) *Storage {
	result := &Storage{
		fileMode: DefaultFileMode,
	}
	for _, opt := range opts {
		opt(result)
	}
	if result.log == nil {
		result.log = logger.Discard()
	}
	return result
}

// Init -
func (b *Storage) Init() error {
	b.stateLock.Lock()
	defer b.stateLock.Unlock()
	if len(b.path) != 0 {
		path, err := filepath.Abs(b.path)
		if err != nil {
			err = stacktrace.PropagateWithCode(err, errcode.FileOpen, "Storage : could not resolve root path (%s)", b.path)
			return err
		}
		root, err := filewrapper.Stat(path)
		if err != nil {
			err = stacktrace.PropagateWithCode(err, errcode.FileOpen, "Storage : root path (%s) is not accessible", path)
			return err
		}
		if !root.IsDir() {
			err = stacktrace.NewErrorWithCode(errcode.FileOpen, "Storage : root path (%s) is not a directory", path)
			return err
		}
		b.path = path
		if b.logOps {
			b.log.Infof("Storage", "initialized at (%s)", b.path)
		}
	}
	b.initialized = true
	return nil
}

// Get reads the whole file at key.
func (b *Storage) Get(ctx context.Context, key string) (*Entry, error) {
	if !b.initialized {
		err := stacktrace.NewError("Storage : was not initialized")
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		err = stacktrace.Propagate(err, "Storage : Get operation of (%s) cancelled", key)
		return nil, err
	}
	b.stateLock.RLock()
	defer b.stateLock.RUnlock()
	if b.logOps {
		start := time.Now()
		defer func() {
			b.log.Infof("Storage", "Get operation took (%v) to complete", time.Since(start))
		}()
	}
	return b.getInternal(key)
}

// Put writes entry.Value to the file at entry.Key, truncating it first.
func (b *Storage) Put(ctx context.Context, entry *Entry) error {
	if !b.initialized {
		err := stacktrace.NewError("Storage : was not initialized")
		return err
	}
	if err := ctx.Err(); err != nil {
		err = stacktrace.Propagate(err, "Storage : Put operation of (%s) cancelled", entry.Key)
		return err
	}
	b.stateLock.RLock()
	defer b.stateLock.RUnlock()
	if b.logOps {
		start := time.Now()
		defer func() {
			b.log.Infof("Storage", "Put operation took (%v) to complete", time.Since(start))
		}()
	}
	return b.putInternal(entry)
}
