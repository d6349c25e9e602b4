// Package interleaver splits files into interleaved parts and merges them
// back. Byte i of a file ends up in part i mod n; part files are named after
// the source with a 1-based suffix.
package interleaver

import (
	"os"
	"strconv"
	"sync"

	"github.com/damoonazarpazhooh/interleaver/internal/logger"
	"github.com/damoonazarpazhooh/interleaver/pkg/file"
	"github.com/palantir/stacktrace"
)

// Interleaver ...
type Interleaver struct {
	stateLock sync.RWMutex
	logOps    bool
	log       *logger.Logger
	// ----------------------
	root     string
	fileMode os.FileMode
	disk     *file.Storage
}

// New ...
func New(opts ...Option) (*Interleaver, error) {
	result := &Interleaver{
		fileMode: file.DefaultFileMode,
	}
	for _, opt := range opts {
		opt(result)
	}
	if result.log == nil {
		result.log = logger.Discard()
	}
	storageOpts := []file.Option{
		file.WithPath(result.root),
		file.WithFileMode(result.fileMode),
		file.WithLogger(result.log),
	}
	if result.logOps {
		storageOpts = append(storageOpts, file.LogOps())
	}
	disk := file.New(storageOpts...)
	err := disk.Init()
	if err != nil {
		err = stacktrace.Propagate(err, "Interleaver : could not set up file storage")
		return nil, err
	}
	result.disk = disk
	return result, nil
}

// PartPath returns the file name of part index (0-based) of source.
func PartPath(source string, index int) string {
	return source + strconv.Itoa(index+1)
}

// PartPaths returns the file names of all n parts of source.
func PartPaths(source string, n int) []string {
	result := make([]string, n)
	for i := range result {
		result[i] = PartPath(source, i)
	}
	return result
}
