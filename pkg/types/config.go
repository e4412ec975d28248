package types

import "path/filepath"

// DatabaseFileName is the SQLite file created inside the data directory.
const DatabaseFileName = "larder.db"

// Config holds the parameters for opening a Store.
type Config struct {
	// DataDir is the directory holding the database file. Empty means the
	// current directory.
	DataDir string `json:"data_dir" yaml:"data_dir"`
}

// DatabasePath returns the full path of the SQLite database file.
func (c Config) DatabasePath() string {
	dir := c.DataDir
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, DatabaseFileName)
}
