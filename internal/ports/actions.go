package ports

// Copier places text on the system clipboard
type Copier interface {
	Copy(text string) error
}

// Opener reveals a folder in the platform file manager
type Opener interface {
	Open(path string) error
}
