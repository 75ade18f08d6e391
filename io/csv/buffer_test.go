package csv

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestBuffer(t *testing.T) {
	testCases := []struct {
		description string
		initialSize int
		data        []string
		bytes       []byte
		expected    string
	}{
		{
			description: "buffer size greater than data size",
			initialSize: 1024,
			data:        []string{"foo name", ",", "123"},
			expected:    "foo name,123",
		},
		{
			description: "buffer size lower than data size",
			initialSize: 1,
			data:        []string{"foo name", ",", "123"},
			bytes:       []byte{'\n'},
			expected:    "foo name,123\n",
		},
		{
			description: "zero size buffer",
			initialSize: 0,
			bytes:       []byte{'a', ';', 'b'},
			expected:    "a;b",
		},
	}

	for _, testCase := range testCases {
		buffer := NewBuffer(testCase.initialSize)
		for _, value := range testCase.data {
			buffer.WriteString(value)
		}
		for _, value := range testCase.bytes {
			assert.Nil(t, buffer.WriteByte(value), testCase.description)
		}

		assert.Equal(t, testCase.expected, string(buffer.Bytes()), testCase.description)
		assert.Equal(t, len(testCase.expected), buffer.Len(), testCase.description)

		buffer.Reset()
		assert.Equal(t, 0, buffer.Len(), testCase.description)
		buffer.WriteString("x")
		assert.Equal(t, "x", string(buffer.Bytes()), testCase.description)
	}
}
