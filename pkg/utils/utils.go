package utils

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

// HasSuffix ...
func HasSuffix(s string, suffix string) bool {
	if runtime.GOOS == "windows" {
		return strings.HasSuffix(strings.ToLower(s), strings.ToLower(suffix))
	}
	return strings.HasSuffix(s, suffix)
}

// PathJoin joins elem with the OS separator and keeps a trailing slash of the
// last element.
func PathJoin(elem ...string) string {
	trailingSlash := ""
	if len(elem) > 0 {
		if HasSuffix(elem[len(elem)-1], "/") {
			trailingSlash = "/"
		}
	}
	return filepath.Join(elem...) + trailingSlash
}

// Resolve returns path unchanged when it is absolute or root is empty,
// otherwise path relative to root.
func Resolve(root, path string) string {
	if len(root) == 0 || filepath.IsAbs(path) {
		return path
	}
	return PathJoin(root, path)
}

// PrettyPrintSize ...
func PrettyPrintSize(size int64) string {
	if size > 1024*1024 {
		return fmt.Sprintf("%.2fM", float64(size)/(1024.0*1024.0))
	} else if size > 1024 {
		return fmt.Sprintf("%.0fK", float64(size)/1024.0)
	} else {
		return fmt.Sprintf("%d", size)
	}
}
