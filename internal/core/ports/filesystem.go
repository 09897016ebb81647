package ports

// Workspace manipulates the build tree on disk.
//
//go:generate go run go.uber.org/mock/mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type Workspace interface {
	// Exists reports whether path exists.
	Exists(path string) bool
	// Clean removes path and everything below it. A missing path is not an error.
	Clean(path string) error
}
