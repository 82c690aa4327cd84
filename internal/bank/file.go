package bank

import (
	"context"
	"fmt"
	"os"

	"quiz-session/internal/quiz"
)

// FileSource reads a bank document from disk.
type FileSource struct {
	Path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

func (f *FileSource) Load(_ context.Context) (quiz.Bank, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", quiz.ErrLoadFailure, err)
	}
	return Decode(data, FormatForPath(f.Path))
}

func (f *FileSource) String() string {
	return "file:" + f.Path
}
