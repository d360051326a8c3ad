package prompt

import (
	"path/filepath"
	"strings"
)

// BinaryExtensions is the fixed set of file extensions that are always
// excluded from selection, regardless of include patterns.
var BinaryExtensions = map[string]bool{
	// Images
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".bmp": true,
	".ico": true, ".tif": true, ".tiff": true, ".webp": true,
	// Archives
	".zip": true, ".tar": true, ".gz": true, ".tgz": true, ".bz2": true,
	".xz": true, ".7z": true, ".rar": true,
	// Executables
	".exe": true, ".dll": true, ".bin": true, ".msi": true,
	// Media
	".mp3": true, ".mp4": true, ".wav": true, ".avi": true, ".mov": true,
	".mkv": true, ".flac": true, ".ogg": true, ".webm": true,
	// Fonts
	".ttf": true, ".otf": true, ".woff": true, ".woff2": true, ".eot": true,
	// Compiled objects
	".o": true, ".obj": true, ".a": true, ".so": true, ".dylib": true,
	".class": true, ".pyc": true, ".wasm": true,
	// Databases
	".db": true, ".sqlite": true, ".sqlite3": true, ".mdb": true,
}

// isBinaryPath checks if the file has a known binary extension.
func isBinaryPath(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return BinaryExtensions[ext]
}
