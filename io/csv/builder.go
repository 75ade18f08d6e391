package csv

//Builder accumulates writer settings, it is not safe for concurrent use
type Builder struct {
	columnNames    []string
	includeHeader  bool
	rowDelimiter   string
	fieldDelimiter byte
	nullValue      string
	trueValue      string
	falseValue     string
}

//NewBuilder creates a builder with default settings
func NewBuilder() *Builder {
	return &Builder{
		columnNames:    []string{},
		rowDelimiter:   DefaultRowDelimiter,
		fieldDelimiter: DefaultFieldDelimiter,
		nullValue:      DefaultNullValue,
		trueValue:      DefaultTrueValue,
		falseValue:     DefaultFalseValue,
	}
}

//WithColumnNames replaces column names with a copy of the supplied ones
func (b *Builder) WithColumnNames(columnNames []string) *Builder {
	b.columnNames = copyStrings(columnNames)
	return b
}

//WithColumns replaces column names with the supplied ones
func (b *Builder) WithColumns(columnNames ...string) *Builder {
	return b.WithColumnNames(columnNames)
}

//WithIncludeHeader sets whether column names are written as the first row
func (b *Builder) WithIncludeHeader(includeHeader bool) *Builder {
	b.includeHeader = includeHeader
	return b
}

//WithRowDelimiter sets row terminator, any string including empty is accepted
func (b *Builder) WithRowDelimiter(rowDelimiter string) *Builder {
	b.rowDelimiter = rowDelimiter
	return b
}

//WithFieldDelimiter sets field separator
func (b *Builder) WithFieldDelimiter(fieldDelimiter byte) *Builder {
	b.fieldDelimiter = fieldDelimiter
	return b
}

//WithNullValue sets token written for absent values
func (b *Builder) WithNullValue(nullValue string) *Builder {
	b.nullValue = nullValue
	return b
}

//WithTrueValue sets token written for true
func (b *Builder) WithTrueValue(trueValue string) *Builder {
	b.trueValue = trueValue
	return b
}

//WithFalseValue sets token written for false
func (b *Builder) WithFalseValue(falseValue string) *Builder {
	b.falseValue = falseValue
	return b
}

//Build returns a new WriterOptions snapshot, the builder can be reused afterwards
func (b *Builder) Build() *WriterOptions {
	return &WriterOptions{
		columnNames:    copyStrings(b.columnNames),
		includeHeader:  b.includeHeader,
		rowDelimiter:   b.rowDelimiter,
		fieldDelimiter: b.fieldDelimiter,
		nullValue:      b.nullValue,
		trueValue:      b.trueValue,
		falseValue:     b.falseValue,
	}
}

func copyStrings(values []string) []string {
	result := make([]string, len(values))
	copy(result, values)
	return result
}
