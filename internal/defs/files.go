package defs

// Directory names used across the project.
const (
	// GphDir is the per-project state directory created by "gph init".
	GphDir = ".gph"

	// PackagesSubdir holds timestamped package outputs under .gph/.
	PackagesSubdir = "packages"

	// GlobalConfigSubdir is the gph directory under the OS config dir.
	GlobalConfigSubdir = "gph"
)

// Common file names used across the project.
const (
	// ConfigTOML is the file name of both the global and project config.
	ConfigTOML = "config.toml"

	// GitignoreFile keeps package outputs out of version control.
	GitignoreFile = ".gitignore"
)

// PackageTimestampLayout formats default package output directory names
// (e.g. 20260118-142305).
const PackageTimestampLayout = "20060102-150405"

// Permissions for directories and files gph creates.
const (
	DirPerm  = 0o755
	FilePerm = 0o644
)
