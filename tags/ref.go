package tags

import (
	"fmt"
	"reflect"
	"strings"
)

// RefTagName defines reference attribute tag
const RefTagName = "ref"

// Ref represents reference attribute tag, i.e. `ref:"name=renderers"`
type Ref struct {
	Name    string
	Ignore  bool
	Include bool
}

// ParseRef parses reference attribute tag
func ParseRef(tag reflect.StructTag) (*Ref, error) {
	ret := &Ref{}
	encoded, ok := tag.Lookup(RefTagName)
	if !ok {
		return ret, nil
	}
	if encoded == "-" {
		ret.Ignore = true
		return ret, nil
	}
	err := Values(encoded).MatchPairs(func(key, value string) error {
		switch strings.ToLower(key) {
		case "name":
			ret.Name = value
		case "-", "ignore", "transient":
			ret.Ignore = true
		case "include", "force":
			ret.Include = true
		default:
			return fmt.Errorf("unsupported %v tag key: %v", RefTagName, key)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ret, nil
}
