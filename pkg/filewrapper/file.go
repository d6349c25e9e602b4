package filewrapper

import (
	"os"

	"github.com/mitchellh/hashstructure"
	"github.com/palantir/stacktrace"
)

// File ...
type File struct {
	Path string `json:"path,omitempty" mapstructure:"path,omitempty"`
	Size int64  `json:"size,omitempty" mapstructure:"size,omitempty"`
	Time int64  `json:"time,omitempty" mapstructure:"time,omitempty"`
	Mode int64  `json:"mode,omitempty" mapstructure:"mode,omitempty"`
	Hash uint64 `json:"hash,omitempty" mapstructure:"hash,omitempty"`
}

// CreateFileFromFileInfo ...
func CreateFileFromFileInfo(fileInfo os.FileInfo, path string) *File {
	return &File{
		Path: path,
		Size: fileInfo.Size(),
		Time: fileInfo.ModTime().Unix(),
		Mode: int64(fileInfo.Mode()),
	}
}

// Stat describes the file at path.
func Stat(path string) (*File, error) {
	info, err := os.Stat(path)
	if err != nil {
		err = stacktrace.Propagate(err, "could not stat (%s)", path)
		return nil, err
	}
	return CreateFileFromFileInfo(info, path), nil
}

// Fingerprint stores a hashstructure hash of data in f.Hash.
// It is only a log aid; nothing compares it. hashstructure walks the slice
// by reflection one byte at a time, which costs far more than a plain
// checksum on large files, so callers compute it only for verbose logs.
func (f *File) Fingerprint(data []byte) uint64 {
	hash, err := hashstructure.Hash(data, nil)
	if err != nil {
		return 0
	}
	f.Hash = hash
	return hash
}

// IsDir ...
func (f *File) IsDir() bool {
	return f.Mode&int64(os.ModeDir) != 0
}
