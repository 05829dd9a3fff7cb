// Copyright (c) 2026 Moviebunkers. All rights reserved.
// Author: dev@moviebunkers.app

// Package query parses free-form URL query parameters into structured
// filter and sort directives.
package query

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// Sort directions, encoded the way the API reports them back.
const (
	Ascending  = 1
	Descending = -1
)

// DefaultSortField is applied when no sort directive is supplied.
const DefaultSortField = "createdAt"

// sortTokenRegex matches a single "field.direction" sort token.
var sortTokenRegex = regexp.MustCompile(`^[A-Za-z0-9]\w+\.(asc|desc)$`)

// SortField is one parsed "field.direction" token.
type SortField struct {
	Field     string
	Direction int
}

// SortOrder is an ordered list of sort fields. Order is significant: the
// first field is the primary sort key.
type SortOrder []SortField

// InvalidSortError reports a malformed sort token. The whole directive is
// rejected when any single token fails to parse.
type InvalidSortError struct {
	Token string
}

func (e *InvalidSortError) Error() string {
	return fmt.Sprintf("query: invalid sort element %q (want field.asc or field.desc)", e.Token)
}

// ParseSort parses a comma-separated list of "field.direction" tokens.
//
//	"year.desc,title.asc" → [{year -1} {title +1}]
//	""                    → [{createdAt -1}]
//	"badtoken"            → *InvalidSortError naming "badtoken"
func ParseSort(raw string) (SortOrder, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return SortOrder{{Field: DefaultSortField, Direction: Descending}}, nil
	}

	var order SortOrder
	for _, token := range strings.Split(trimmed, ",") {
		token = strings.TrimSpace(token)
		if !sortTokenRegex.MatchString(token) {
			return nil, &InvalidSortError{Token: token}
		}

		dotIndex := strings.LastIndex(token, ".")
		field := token[:dotIndex]
		direction := Ascending
		if token[dotIndex+1:] == "desc" {
			direction = Descending
		}

		order = append(order, SortField{Field: field, Direction: direction})
	}

	return order, nil
}

// MarshalJSON renders the sort order as an ordered JSON object, e.g.
// {"year":-1,"title":1}. Encoding by hand keeps the field order that a
// Go map would lose.
func (order SortOrder) MarshalJSON() ([]byte, error) {
	var buffer bytes.Buffer
	buffer.WriteByte('{')
	for i, sortField := range order {
		if i > 0 {
			buffer.WriteByte(',')
		}
		name, err := json.Marshal(sortField.Field)
		if err != nil {
			return nil, err
		}
		buffer.Write(name)
		fmt.Fprintf(&buffer, ":%d", sortField.Direction)
	}
	buffer.WriteByte('}')
	return buffer.Bytes(), nil
}
