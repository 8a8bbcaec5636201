package seqcmd

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/vipcxj/steprange/internal/steprange"
	"gopkg.in/yaml.v3"
)

var AllowedFormats = []string{"newline", "comma", "space", "json", "yaml"}

// structured formats render the whole sequence and cannot be combined
var structuredFormats = []string{"json", "yaml"}

func splitAndTrim(s string, seps string) []string {
	isSep := func(r rune) bool { return strings.ContainsRune(seps, r) }
	parts := strings.FieldsFunc(s, isSep) // 自动丢弃空片段
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// NormalizeFormats splits comma separated entries (as they arrive from the
// environment) and validates the result. An empty list means newline.
func NormalizeFormats(raw []string) ([]string, error) {
	var formats []string
	for _, r := range raw {
		formats = append(formats, splitAndTrim(r, ",")...)
	}
	if len(formats) == 0 {
		return []string{AllowedFormats[0]}, nil
	}
	for _, format := range formats {
		if !slices.Contains(AllowedFormats, format) {
			return nil, fmt.Errorf("invalid format: %s, allowed formats are: %v", format, AllowedFormats)
		}
		if slices.Contains(structuredFormats, format) && len(formats) > 1 {
			return nil, fmt.Errorf("format '%s' cannot be combined with other formats", format)
		}
	}
	return formats, nil
}

// Render materializes seq and prints it in the given formats.
//
// For the plain formats the separator is picked by priority
// comma > newline > space, whatever the order they were given in.
// An empty sequence renders as "" for plain formats and "[]" for json/yaml.
func Render[T steprange.Number](seq steprange.Sequence[T], formats []string) (string, error) {
	formats, err := NormalizeFormats(formats)
	if err != nil {
		return "", err
	}
	values := seq.Values()

	switch formats[0] {
	case "json":
		data, err := json.Marshal(values)
		if err != nil {
			return "", fmt.Errorf("failed to marshal values to json: %w", err)
		}
		return string(data), nil
	case "yaml":
		data, err := yaml.Marshal(values)
		if err != nil {
			return "", fmt.Errorf("failed to marshal values to yaml: %w", err)
		}
		return strings.TrimRight(string(data), "\n"), nil
	}

	var sep string
	if slices.Contains(formats, "comma") {
		sep = ","
	} else if slices.Contains(formats, "newline") {
		sep = "\n"
	} else {
		sep = " "
	}
	strs := make([]string, len(values))
	for i, v := range values {
		strs[i] = fmt.Sprint(v)
	}
	return strings.Join(strs, sep), nil
}
