package interleaver

import (
	"context"
	"time"

	"github.com/damoonazarpazhooh/interleaver/internal/errcode"
	"github.com/damoonazarpazhooh/interleaver/pkg/file"
	"github.com/damoonazarpazhooh/interleaver/pkg/filewrapper"
	"github.com/damoonazarpazhooh/interleaver/pkg/part"
	"github.com/damoonazarpazhooh/interleaver/pkg/utils"
	"github.com/palantir/stacktrace"
)

// SplitFile reads source, interleaves it into n parts and writes part i to
// PartPath(source, i). Parts are written in order; on a write failure the
// parts already written are left in place. It returns the written paths.
func (s *Interleaver) SplitFile(ctx context.Context, source string, n int) ([]string, error) {
	if n < 1 {
		err := stacktrace.NewErrorWithCode(errcode.InvalidPositiveInteger, "part count must be a positive integer, got %d", n)
		return nil, err
	}
	if s.logOps {
		start := time.Now()
		defer func() {
			s.log.Infof("Split", "operation took (%v) to complete", time.Since(start))
		}()
	}
	entry, err := s.disk.Get(ctx, source)
	if err != nil {
		return nil, err
	}
	if s.logOps {
		s.log.Infof("Split", "splitting (%s) of size (%s) fingerprint (%d) into (%d) parts",
			source, utils.PrettyPrintSize(entry.Size()), entry.Meta.Fingerprint(entry.Value), n)
	}
	parts := part.Split(entry.Value, n)
	targets := PartPaths(source, n)
	written := make([]string, 0, n)
	for i, p := range parts {
		target := targets[i]
		err = s.disk.Put(ctx, &file.Entry{Key: target, Value: p})
		if err != nil {
			return written, err
		}
		written = append(written, target)
		if s.logOps {
			s.log.Infof("Split", "part #%d written to (%s) with size (%s)", i+1, target, utils.PrettyPrintSize(int64(len(p))))
		}
	}
	return written, nil
}

// MergeFiles reads every source in order, re-interleaves them and writes the
// result to target. All sources are read before target is touched, so a
// missing or unreadable source leaves target untouched.
func (s *Interleaver) MergeFiles(ctx context.Context, sources []string, target string) error {
	if len(sources) == 0 {
		return part.ErrNoParts
	}
	if s.logOps {
		start := time.Now()
		defer func() {
			s.log.Infof("Merge", "operation took (%v) to complete", time.Since(start))
		}()
	}
	parts := make([][]byte, 0, len(sources))
	for _, source := range sources {
		entry, err := s.disk.Get(ctx, source)
		if err != nil {
			return err
		}
		parts = append(parts, entry.Value)
		if s.logOps {
			s.log.Infof("Merge", "loaded part (%s) with size (%s)", source, utils.PrettyPrintSize(entry.Size()))
		}
	}
	if err := part.Check(parts); err != nil {
		s.log.Warnf("Merge", "parts do not look like the output of a split (%v); merging round-robin anyway", err)
	}
	data, err := part.Merge(parts)
	if err != nil {
		return err
	}
	out := &file.Entry{Key: target, Value: data}
	err = s.disk.Put(ctx, out)
	if err != nil {
		return err
	}
	if s.logOps {
		s.log.Infof("Merge", "merged (%d) parts into (%s) with size (%s) fingerprint (%d)",
			len(parts), target, utils.PrettyPrintSize(out.Size()), (&filewrapper.File{Path: target}).Fingerprint(data))
	}
	return nil
}
