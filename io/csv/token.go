package csv

import (
	"fmt"
	"reflect"
	"strconv"
	"time"
)

//tokens renders values using configured null and boolean representation
type tokens struct {
	nullValue  string
	trueValue  string
	falseValue string
}

func newTokens(options *WriterOptions) *tokens {
	return &tokens{
		nullValue:  options.NullValue(),
		trueValue:  options.TrueValue(),
		falseValue: options.FalseValue(),
	}
}

func (t *tokens) boolean(value bool) string {
	if value {
		return t.trueValue
	}
	return t.falseValue
}

//format returns value text and information if it may need enclosing, null and boolean tokens are never enclosed
func (t *tokens) format(value interface{}) (string, bool) {
	switch actual := value.(type) {
	case nil:
		return t.nullValue, false
	case string:
		return actual, true
	case *string:
		if actual == nil {
			return t.nullValue, false
		}
		return *actual, true
	case bool:
		return t.boolean(actual), false
	case *bool:
		if actual == nil {
			return t.nullValue, false
		}
		return t.boolean(*actual), false
	case int:
		return strconv.Itoa(actual), true
	case int8:
		return strconv.FormatInt(int64(actual), 10), true
	case int16:
		return strconv.FormatInt(int64(actual), 10), true
	case int32:
		return strconv.FormatInt(int64(actual), 10), true
	case int64:
		return strconv.FormatInt(actual, 10), true
	case uint:
		return strconv.FormatUint(uint64(actual), 10), true
	case uint8:
		return strconv.FormatUint(uint64(actual), 10), true
	case uint16:
		return strconv.FormatUint(uint64(actual), 10), true
	case uint32:
		return strconv.FormatUint(uint64(actual), 10), true
	case uint64:
		return strconv.FormatUint(actual, 10), true
	case float32:
		return strconv.FormatFloat(float64(actual), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(actual, 'f', -1, 64), true
	case []byte:
		if actual == nil {
			return t.nullValue, false
		}
		return string(actual), true
	case time.Time:
		return actual.Format(time.RFC3339), true
	case *time.Time:
		if actual == nil {
			return t.nullValue, false
		}
		return actual.Format(time.RFC3339), true
	}
	return t.formatOther(value)
}

func (t *tokens) formatOther(value interface{}) (string, bool) {
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice:
		if rValue.IsNil() {
			return t.nullValue, false
		}
	}

	switch actual := value.(type) {
	case fmt.Stringer:
		return actual.String(), true
	case error:
		return actual.Error(), true
	}

	if rValue.Kind() == reflect.Ptr {
		return t.format(rValue.Elem().Interface())
	}
	return fmt.Sprint(value), true
}
