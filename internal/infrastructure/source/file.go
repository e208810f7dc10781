package source

import (
	"context"
	"fmt"
	"os"

	"restaurant_analytics/internal/domain"
	"restaurant_analytics/internal/domain/entity"
	"restaurant_analytics/internal/infrastructure/csvtable"
	"restaurant_analytics/pkg/errcodes"
)

// File reads a dataset CSV from the local filesystem.
type File struct {
	Path string
}

func NewFile(path string) File {
	return File{Path: path}
}

func (f File) Load(context.Context) ([]entity.Restaurant, error) {
	fh, err := os.Open(f.Path)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.DatasetUnavailable, "failed to open dataset file")
	}

	defer fh.Close()

	rows, err := csvtable.Decode(fh, csvtable.DatasetColumns)
	if err != nil {
		return nil, fmt.Errorf("csvtable.Decode: %w", err)
	}

	return rows, nil
}

func (f File) String() string {
	return "file:" + f.Path
}
