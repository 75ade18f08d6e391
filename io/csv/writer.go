package csv

import (
	"bufio"
	"fmt"
	"github.com/pkg/errors"
	"github.com/viant/toolbox/format"
	"github.com/viant/xunsafe"
	"io"
	"reflect"
	"strings"
)

const enclosure = '"'

//ErrColumnCount is returned when a record does not match configured column names
var ErrColumnCount = errors.New("column count mismatch")

//Writer writes records as CSV text according to WriterOptions
type Writer struct {
	options    *WriterOptions
	tokens     *tokens
	headerCase *format.Case
	writer     *bufio.Writer
	row        *Buffer
	headerDone bool
	rows       int
}

//NewWriter creates a writer, supported options: *WriterOptions, WriterOptions, *Builder, *Config, HeaderCase
func NewWriter(w io.Writer, options ...interface{}) *Writer {
	result := &Writer{
		writer: bufio.NewWriter(w),
		row:    NewBuffer(1024),
	}

	result.applyOptions(options)
	if result.options == nil {
		result.options = DefaultWriterOptions()
	}

	result.tokens = newTokens(result.options)
	return result
}

func (w *Writer) applyOptions(options []interface{}) {
	for _, option := range options {
		switch actual := option.(type) {
		case *WriterOptions:
			if actual != nil {
				w.options = actual
			}
		case WriterOptions:
			w.options = &actual
		case *Builder:
			if actual != nil {
				w.options = actual.Build()
			}
		case *Config:
			if actual != nil {
				w.options = actual.Options()
			}
		case HeaderCase:
			headerCase := format.Case(actual)
			w.headerCase = &headerCase
		}
	}
}

//Options returns writer options
func (w *Writer) Options() *WriterOptions {
	return w.options
}

//Rows returns number of written data rows
func (w *Writer) Rows() int {
	return w.rows
}

//WriteHeader writes configured column names once, if header was requested
func (w *Writer) WriteHeader() error {
	return w.writeHeader(w.options.columnNames)
}

func (w *Writer) writeHeader(names []string) error {
	if w.headerDone {
		return nil
	}

	w.headerDone = true
	if !w.options.IncludeHeader() || len(names) == 0 {
		return nil
	}

	w.row.Reset()
	for i, name := range names {
		w.appendField(i, name, true)
	}
	return w.endRow()
}

//Write writes a single record
func (w *Writer) Write(record []interface{}) error {
	if err := w.checkColumnCount(len(record)); err != nil {
		return err
	}

	if err := w.WriteHeader(); err != nil {
		return err
	}

	w.row.Reset()
	for i, value := range record {
		text, mayEnclose := w.tokens.format(value)
		w.appendField(i, text, mayEnclose)
	}

	if err := w.endRow(); err != nil {
		return err
	}

	w.rows++
	return nil
}

//WriteAll writes [][]interface{} records, or a slice (or pointer to slice) of structs
func (w *Writer) WriteAll(records interface{}) error {
	if rows, ok := records.([][]interface{}); ok {
		for _, record := range rows {
			if err := w.Write(record); err != nil {
				return err
			}
		}
		return nil
	}

	return w.writeStructs(records)
}

func (w *Writer) writeStructs(records interface{}) error {
	sliceType := reflect.TypeOf(records)
	if sliceType != nil && sliceType.Kind() == reflect.Ptr {
		sliceType = sliceType.Elem()
	}

	if sliceType == nil || sliceType.Kind() != reflect.Slice {
		return fmt.Errorf("unsupported records type: %T", records)
	}

	structType := sliceType.Elem()
	if structType.Kind() == reflect.Ptr {
		structType = structType.Elem()
	}

	if structType.Kind() != reflect.Struct {
		return fmt.Errorf("unsupported record type: %v", structType.String())
	}

	stringifier := newTypeStringifier(structType, w.tokens, w.headerCase)
	fieldCount := len(stringifier.fields)
	if err := w.checkColumnCount(fieldCount); err != nil {
		return err
	}

	headers := w.options.columnNames
	if len(headers) == 0 {
		headers = stringifier.headers()
	}

	if err := w.writeHeader(headers); err != nil {
		return err
	}

	slicePtr := xunsafe.AsPointer(records)
	if slicePtr == nil {
		return nil
	}

	xSlice := xunsafe.NewSlice(sliceType)
	values := make([]string, fieldCount)
	wasStrings := make([]bool, fieldCount)
	sliceLen := xSlice.Len(slicePtr)
	for i := 0; i < sliceLen; i++ {
		at := xSlice.ValuePointerAt(slicePtr, i)
		stringifier.stringify(xunsafe.AsPointer(at), values, wasStrings)

		w.row.Reset()
		for j := range values {
			w.appendField(j, values[j], wasStrings[j])
		}

		if err := w.endRow(); err != nil {
			return err
		}
		w.rows++
	}
	return nil
}

//Flush writes any buffered data to the underlying writer
func (w *Writer) Flush() error {
	return w.writer.Flush()
}

func (w *Writer) checkColumnCount(actual int) error {
	expected := w.options.columnCount()
	if expected == 0 || expected == actual {
		return nil
	}
	return errors.Wrapf(ErrColumnCount, "expected %v values, but had %v", expected, actual)
}

func (w *Writer) appendField(index int, text string, mayEnclose bool) {
	if index > 0 {
		_ = w.row.WriteByte(w.options.fieldDelimiter)
	}

	if !mayEnclose || !w.needsEnclosure(text) {
		w.row.WriteString(text)
		return
	}

	_ = w.row.WriteByte(enclosure)
	w.row.WriteString(strings.ReplaceAll(text, `"`, `""`))
	_ = w.row.WriteByte(enclosure)
}

func (w *Writer) needsEnclosure(text string) bool {
	if text == "" {
		return false
	}

	if strings.IndexByte(text, w.options.fieldDelimiter) != -1 || strings.ContainsAny(text, "\"\r\n") {
		return true
	}

	rowDelimiter := w.options.rowDelimiter
	return rowDelimiter != "" && strings.Contains(text, rowDelimiter)
}

func (w *Writer) endRow() error {
	w.row.WriteString(w.options.rowDelimiter)
	_, err := w.writer.Write(w.row.Bytes())
	return err
}
