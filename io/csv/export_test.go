package csv

import (
	"context"
	"github.com/stretchr/testify/assert"
	"github.com/viant/afs"
	"path"
	"testing"
)

func TestExporter_Export(t *testing.T) {
	type Event struct {
		ID   int
		Name string `csv:"event"`
	}

	testCases := []struct {
		description string
		records     interface{}
		options     []interface{}
		expected    string
		rows        int
	}{
		{
			description: "structs with header",
			records:     []Event{{ID: 1, Name: "start"}, {ID: 2, Name: "stop"}},
			options:     []interface{}{NewBuilder().WithIncludeHeader(true).WithFieldDelimiter('|')},
			expected:    "ID|event\n1|start\n2|stop\n",
			rows:        2,
		},
		{
			description: "no records, header only",
			records:     [][]interface{}{},
			options:     []interface{}{NewBuilder().WithColumns("id", "name").WithIncludeHeader(true)},
			expected:    "id,name\n",
			rows:        0,
		},
		{
			description: "config option",
			records:     [][]interface{}{{1, nil, true}},
			options:     []interface{}{&Config{NullValue: stringPtr("NULL"), TrueValue: stringPtr("T")}},
			expected:    "1,NULL,T\n",
			rows:        1,
		},
	}

	ctx := context.Background()
	fs := afs.New()
	exporter := NewExporter(nil)
	for i, testCase := range testCases {
		URL := path.Join(t.TempDir(), string(rune('a'+i))+".csv")
		rows, err := exporter.Export(ctx, URL, testCase.records, testCase.options...)
		if !assert.Nil(t, err, testCase.description) {
			continue
		}

		assert.Equal(t, testCase.rows, rows, testCase.description)
		data, err := fs.DownloadWithURL(ctx, URL)
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.Equal(t, testCase.expected, string(data), testCase.description)
	}
}

func stringPtr(value string) *string {
	return &value
}
