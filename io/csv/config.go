package csv

//Config represents serializable writer settings, nil or empty fields keep defaults
type Config struct {
	Columns        []string `json:",omitempty" yaml:",omitempty"`
	IncludeHeader  bool     `json:",omitempty" yaml:",omitempty"`
	RowDelimiter   *string  `json:",omitempty" yaml:",omitempty"`
	FieldDelimiter string   `json:",omitempty" yaml:",omitempty"`
	NullValue      *string  `json:",omitempty" yaml:",omitempty"`
	TrueValue      *string  `json:",omitempty" yaml:",omitempty"`
	FalseValue     *string  `json:",omitempty" yaml:",omitempty"`
}

//Builder returns a builder seeded with config values
func (c *Config) Builder() *Builder {
	builder := NewBuilder().
		WithColumnNames(c.Columns).
		WithIncludeHeader(c.IncludeHeader)

	if c.RowDelimiter != nil {
		builder.WithRowDelimiter(*c.RowDelimiter)
	}

	if c.FieldDelimiter != "" {
		builder.WithFieldDelimiter(c.FieldDelimiter[0])
	}

	if c.NullValue != nil {
		builder.WithNullValue(*c.NullValue)
	}

	if c.TrueValue != nil {
		builder.WithTrueValue(*c.TrueValue)
	}

	if c.FalseValue != nil {
		builder.WithFalseValue(*c.FalseValue)
	}

	return builder
}

//Options returns WriterOptions built from config
func (c *Config) Options() *WriterOptions {
	return c.Builder().Build()
}
