package csv

import (
	"reflect"
	"strings"
)

//TagName represents csv struct tag name
const TagName = "csv"

//Tag represent field tag
type Tag struct {
	Column       string
	Transient    bool
	NullifyEmpty bool
}

//ParseTag parses tag
func ParseTag(tagString string) *Tag {
	tag := &Tag{}
	if tagString == "-" {
		tag.Transient = true
		return tag
	}

	elements := strings.Split(tagString, ",")
	for i, element := range elements {
		nv := strings.Split(element, "=")
		switch len(nv) {
		case 2:
			switch strings.ToLower(strings.TrimSpace(nv[0])) {
			case "name":
				tag.Column = strings.TrimSpace(nv[1])
			case "nullifyempty":
				nullifyEmpty := strings.TrimSpace(nv[1])
				tag.NullifyEmpty = nullifyEmpty == "true" || nullifyEmpty == ""
			}
		case 1:
			if i == 0 {
				tag.Column = strings.TrimSpace(element)
				continue
			}
			if strings.ToLower(strings.TrimSpace(element)) == "nullifyempty" {
				tag.NullifyEmpty = true
			}
		}
	}
	return tag
}

func fieldTag(field reflect.StructField) *Tag {
	return ParseTag(field.Tag.Get(TagName))
}
