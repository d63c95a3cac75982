package loader

import "path/filepath"

// FileRefresher refreshes when the record file itself changes. Atomic
// replacement by rename shows up as Create, in-place writes as Write.
type FileRefresher struct {
	recordPath string
	watchOps   map[FileSystemOp]struct{}
}

var defaultFileSystemOps = map[FileSystemOp]struct{}{
	Write:  {},
	Create: {},
}

func (f *FileRefresher) WatchDirectory(recordPath string) string {
	f.recordPath = filepath.Clean(recordPath)
	return filepath.Dir(f.recordPath)
}

func (f *FileRefresher) WatchFileSystemOps(fsops ...FileSystemOp) map[FileSystemOp]struct{} {
	f.watchOps = map[FileSystemOp]struct{}{}
	for _, op := range fsops {
		f.watchOps[op] = struct{}{}
	}

	return f.watchOps
}

func (f *FileRefresher) ShouldRefresh(path string, op FileSystemOp) bool {
	var watchOps map[FileSystemOp]struct{}

	if f.watchOps == nil {
		watchOps = defaultFileSystemOps
	} else {
		watchOps = f.watchOps
	}

	if _, opMatches := watchOps[op]; opMatches && filepath.Clean(path) == f.recordPath {
		return true
	}
	return false
}
