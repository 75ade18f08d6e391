package csv

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestDefaultWriterOptions(t *testing.T) {
	options := DefaultWriterOptions()
	assert.False(t, options.IncludeHeader())
	assert.Equal(t, "\n", options.RowDelimiter())
	assert.Equal(t, byte(','), options.FieldDelimiter())
	assert.Equal(t, "", options.NullValue())
	assert.Equal(t, "true", options.TrueValue())
	assert.Equal(t, "false", options.FalseValue())
	assert.Equal(t, []string{}, options.ColumnNames())
}

func TestWriterOptions_Example(t *testing.T) {
	options := NewBuilder().
		WithColumns("id", "name").
		WithIncludeHeader(true).
		WithFieldDelimiter(';').
		WithNullValue("NULL").
		Build()

	assert.Equal(t, []string{"id", "name"}, options.ColumnNames())
	assert.True(t, options.IncludeHeader())
	assert.Equal(t, byte(';'), options.FieldDelimiter())
	assert.Equal(t, "NULL", options.NullValue())
	assert.Equal(t, "true", options.TrueValue())
	assert.Equal(t, "false", options.FalseValue())
	assert.Equal(t, "\n", options.RowDelimiter())
}

func TestWriterOptions_RowDelimiter(t *testing.T) {
	for _, rowDelimiter := range []string{"", "\n", "\r\n", "||", "\x00", ",\n"} {
		options := NewBuilder().WithRowDelimiter(rowDelimiter).Build()
		assert.Equal(t, rowDelimiter, options.RowDelimiter())
	}
}
