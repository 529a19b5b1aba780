package config

import (
	"fmt"
	"strings"
)

// listSeparator joins the canonical string form of every list type.
const listSeparator = ", "

// parseList splits a comma separated list and parses each trimmed element.
// An empty (or all-whitespace) input is an empty list, not a list holding
// one empty element. Any failing element fails the whole list.
func parseList[T any](input string, parse func(string) (T, error)) ([]T, error) {
	if strings.TrimSpace(input) == "" {
		return nil, nil
	}

	parts := strings.Split(input, ",")
	out := make([]T, 0, len(parts))
	for _, part := range parts {
		v, err := parse(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func joinList[T fmt.Stringer](items []T) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = item.String()
	}
	return strings.Join(parts, listSeparator)
}

func cloneList[T any](items []T) []T {
	if items == nil {
		return nil
	}
	out := make([]T, len(items))
	copy(out, items)
	return out
}
