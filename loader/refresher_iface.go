package loader

type FileSystemOp int32

// Filesystem operations that are monitored for changes
const (
	Create FileSystemOp = iota
	Write
	Remove
	Rename
	Chmod
)

// A Refresher is used to determine when to re-read the record
type Refresher interface {
	// @return The directory path to watch for changes.
	// @param recordPath The path of the shared memory file holding the record
	WatchDirectory(recordPath string) string

	// @return If the record needs to be re-read
	// @param path The path that triggered the FileSystemOp
	// @param The Filesystem op that happened on the directory returned from WatchDirectory
	ShouldRefresh(path string, op FileSystemOp) bool
}
