package file

import (
	"github.com/damoonazarpazhooh/interleaver/pkg/filewrapper"
)

// Entry is a whole file held in memory.
type Entry struct {
	Key   string
	Value []byte
	// Meta is filled by Get.
	Meta *filewrapper.File
}

// Size ...
func (e *Entry) Size() int64 {
	return int64(len(e.Value))
}
