package csv

import (
	"bytes"
	"context"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
)

//Exporter writes records as CSV to any afs supported location
type Exporter struct {
	fs afs.Service
}

//NewExporter creates an exporter, nil service falls back to afs.New()
func NewExporter(fs afs.Service) *Exporter {
	if fs == nil {
		fs = afs.New()
	}
	return &Exporter{fs: fs}
}

//Export renders records with the supplied writer options and uploads them to URL, it returns number of data rows
func (e *Exporter) Export(ctx context.Context, URL string, records interface{}, options ...interface{}) (int, error) {
	buffer := new(bytes.Buffer)
	writer := NewWriter(buffer, options...)
	if err := writer.WriteAll(records); err != nil {
		return 0, err
	}

	if err := writer.WriteHeader(); err != nil {
		return 0, err
	}

	if err := writer.Flush(); err != nil {
		return 0, err
	}

	if err := e.fs.Upload(ctx, URL, file.DefaultFileOsMode, buffer); err != nil {
		return 0, err
	}
	return writer.Rows(), nil
}
