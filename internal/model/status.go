package model

// FileStatus represents the state of a loaded font file
type FileStatus string

const (
	// FileStatusLoaded means the file was scanned and is waiting for action
	FileStatusLoaded FileStatus = "Loaded"

	// FileStatusRenaming means the file is being renamed
	FileStatusRenaming FileStatus = "Renaming"

	// FileStatusRenamed means the file was renamed successfully
	FileStatusRenamed FileStatus = "Renamed"

	// FileStatusSkipped means the rename was skipped (unchanged or invalid name)
	FileStatusSkipped FileStatus = "Skipped"

	// FileStatusError means the rename failed with an error
	FileStatusError FileStatus = "Error"

	// FileStatusMissing means the file disappeared from disk after loading
	FileStatusMissing FileStatus = "Missing"
)

// String returns the string representation of FileStatus
func (fs FileStatus) String() string {
	return string(fs)
}

// IsActive returns true while a rename is in flight
func (fs FileStatus) IsActive() bool {
	return fs == FileStatusRenaming
}

// IsFinished returns true if a rename attempt has concluded (renamed, skipped, or error)
func (fs FileStatus) IsFinished() bool {
	return fs == FileStatusRenamed || fs == FileStatusSkipped || fs == FileStatusError
}

// IsRenamable returns true if the file can take part in a rename batch
func (fs FileStatus) IsRenamable() bool {
	return fs != FileStatusRenaming && fs != FileStatusMissing
}
