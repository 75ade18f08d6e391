package csv

const (
	//DefaultRowDelimiter terminates every written row unless configured otherwise
	DefaultRowDelimiter = "\n"
	//DefaultFieldDelimiter separates fields within a row unless configured otherwise
	DefaultFieldDelimiter byte = ','
	DefaultNullValue           = ""
	DefaultTrueValue           = "true"
	DefaultFalseValue          = "false"
)

//WriterOptions represents immutable CSV writer settings, use Builder to create one
type WriterOptions struct {
	columnNames    []string
	includeHeader  bool
	rowDelimiter   string
	fieldDelimiter byte
	nullValue      string
	trueValue      string
	falseValue     string
}

//ColumnNames returns a copy of configured column names, in output order
func (o *WriterOptions) ColumnNames() []string {
	result := make([]string, len(o.columnNames))
	copy(result, o.columnNames)
	return result
}

//IncludeHeader returns true if column names are written as the first row
func (o *WriterOptions) IncludeHeader() bool {
	return o.includeHeader
}

//RowDelimiter returns row terminator
func (o *WriterOptions) RowDelimiter() string {
	return o.rowDelimiter
}

//FieldDelimiter returns field separator
func (o *WriterOptions) FieldDelimiter() byte {
	return o.fieldDelimiter
}

//NullValue returns token written for absent values
func (o *WriterOptions) NullValue() string {
	return o.nullValue
}

//TrueValue returns token written for true
func (o *WriterOptions) TrueValue() string {
	return o.trueValue
}

//FalseValue returns token written for false
func (o *WriterOptions) FalseValue() string {
	return o.falseValue
}

func (o *WriterOptions) columnCount() int {
	return len(o.columnNames)
}

//DefaultWriterOptions returns options with all defaults
func DefaultWriterOptions() *WriterOptions {
	return NewBuilder().Build()
}
