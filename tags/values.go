package tags

import (
	"strings"

	"github.com/viant/parsly"
)

// Values represents tag values
type Values string

// MatchPairs match key[=value] pairs separated by ,
func (v Values) MatchPairs(onMatch func(key, value string) error) error {
	cursor := parsly.NewCursor("", []byte(v), 0)
	for cursor.Pos < len(cursor.Input) {
		element := strings.TrimSpace(matchElement(cursor))
		if element == "" {
			continue
		}
		key, value := element, ""
		if index := strings.Index(element, "="); index != -1 {
			key, value = strings.TrimSpace(element[:index]), unwrap(strings.TrimSpace(element[index+1:]))
		}
		if err := onMatch(key, value); err != nil {
			return err
		}
	}
	return nil
}

func matchElement(cursor *parsly.Cursor) string {
	value := ""
	match := cursor.MatchAfterOptional(whitespaceMatcher, scopeBlockMatcher, quotedMatcher, comaTerminatorMatcher)
	switch match.Code {
	case scopeBlockToken, quotedToken:
		value = unwrap(match.Text(cursor))
		cursor.MatchAny(comaTerminatorMatcher)
	case comaTerminatorToken:
		value = match.Text(cursor)
		value = value[:len(value)-1] //exclude ,
	default:
		if cursor.Pos < len(cursor.Input) {
			value = string(cursor.Input[cursor.Pos:])
		}
		cursor.Pos = len(cursor.Input)
	}
	return value
}

func unwrap(value string) string {
	if len(value) < 2 {
		return value
	}
	switch {
	case value[0] == '{' && value[len(value)-1] == '}',
		value[0] == '\'' && value[len(value)-1] == '\'':
		return value[1 : len(value)-1]
	}
	return value
}
