package file

import (
	"bytes"
	"io"
	"os"

	"github.com/damoonazarpazhooh/interleaver/internal/errcode"
	"github.com/damoonazarpazhooh/interleaver/pkg/filewrapper"
	"github.com/damoonazarpazhooh/interleaver/pkg/utils"
	"github.com/palantir/stacktrace"
)

func (b *Storage) getInternal(key string) (*Entry, error) {
	path := utils.Resolve(b.path, key)
	if b.logOps {
		b.log.Infof("Storage", "Get operation. stating file at (%s)", path)
	}
	meta, err := filewrapper.Stat(path)
	if err != nil {
		err = stacktrace.PropagateWithCode(err, errcode.FileOpen, "could not open file (%s)", key)
		return nil, err
	}
	// no directory handling
	if meta.IsDir() {
		err = stacktrace.NewErrorWithCode(errcode.FileOpen, "could not open file (%s): is a directory", key)
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		err = stacktrace.PropagateWithCode(err, errcode.FileOpen, "could not open file (%s)", key)
		return nil, err
	}
	defer f.Close()
	buf := bytes.NewBuffer(make([]byte, 0, int(meta.Size)+bytes.MinRead))
	_, err = io.Copy(buf, f)
	if err != nil {
		err = stacktrace.PropagateWithCode(err, errcode.FileOpen, "could not read file (%s)", key)
		return nil, err
	}
	if b.logOps {
		b.log.Infof("Storage", "Get operation. read (%s) bytes from (%s)", utils.PrettyPrintSize(int64(buf.Len())), path)
	}
	result := &Entry{
		Key:   key,
		Value: buf.Bytes(),
		Meta:  meta,
	}
	return result, nil
}

func (b *Storage) putInternal(entry *Entry) error {
	path := utils.Resolve(b.path, entry.Key)
	if b.logOps {
		b.log.Infof("Storage", "Put operation. creating file at (%s)", path)
	}
	f, err := os.OpenFile(
		path,
		os.O_CREATE|os.O_TRUNC|os.O_WRONLY,
		b.fileMode)
	if err != nil {
		err = stacktrace.PropagateWithCode(err, errcode.FileWrite, "could not create file (%s)", entry.Key)
		return err
	}
	length, err := io.Copy(f, bytes.NewReader(entry.Value))
	if err != nil {
		f.Close()
		err = stacktrace.PropagateWithCode(err, errcode.FileWrite, "could not write file (%s)", entry.Key)
		return err
	}
	err = f.Sync()
	if err != nil {
		f.Close()
		err = stacktrace.PropagateWithCode(err, errcode.FileWrite, "could not sync file (%s)", entry.Key)
		return err
	}
	err = f.Close()
	if err != nil {
		err = stacktrace.PropagateWithCode(err, errcode.FileWrite, "could not close file (%s)", entry.Key)
		return err
	}
	if b.logOps {
		b.log.Infof("Storage", "Put operation. copied (%s) bytes to (%s)", utils.PrettyPrintSize(length), path)
	}
	return nil
}
