package observer

import (
	"fmt"
	"strings"
)

// Options are the observer settings conventionally passed around as a single
// string of "key: value" pairs, e.g.
//
//	result_folder: rs_on_toybox_f01_24 algorithm_name: rs algorithm_info: "random search"
//
// Values containing spaces are double-quoted.
type Options struct {
	ResultFolder  string
	AlgorithmName string
	AlgorithmInfo string
}

// String renders the options in the conventional key-value form
func (o Options) String() string {
	return fmt.Sprintf("result_folder: %s algorithm_name: %s algorithm_info: %q",
		o.ResultFolder, o.AlgorithmName, o.AlgorithmInfo)
}

// FormatOptions builds the standard options string for an experiment: the
// result folder encodes the algorithm, suite and function range.
func FormatOptions(algorithm, suiteName string, firstFunction, lastFunction int, info string) string {
	return Options{
		ResultFolder:  fmt.Sprintf("%s_on_%s_f%02d_%02d", algorithm, suiteName, firstFunction, lastFunction),
		AlgorithmName: algorithm,
		AlgorithmInfo: info,
	}.String()
}

// ParseOptions parses an options string back into Options. Unknown keys are
// rejected so that typos surface at construction time.
func ParseOptions(s string) (Options, error) {
	var o Options

	rest := strings.TrimSpace(s)
	for rest != "" {
		colon := strings.Index(rest, ":")
		if colon < 0 {
			return Options{}, fmt.Errorf("malformed observer options near %q: missing ':'", rest)
		}
		key := strings.TrimSpace(rest[:colon])
		rest = strings.TrimSpace(rest[colon+1:])

		var value string
		if strings.HasPrefix(rest, `"`) {
			end := strings.Index(rest[1:], `"`)
			if end < 0 {
				return Options{}, fmt.Errorf("unterminated quoted value for %q", key)
			}
			value = rest[1 : end+1]
			rest = strings.TrimSpace(rest[end+2:])
		} else {
			if sp := strings.IndexByte(rest, ' '); sp >= 0 {
				value = rest[:sp]
				rest = strings.TrimSpace(rest[sp+1:])
			} else {
				value = rest
				rest = ""
			}
		}

		switch key {
		case "result_folder":
			o.ResultFolder = value
		case "algorithm_name":
			o.AlgorithmName = value
		case "algorithm_info":
			o.AlgorithmInfo = value
		default:
			return Options{}, fmt.Errorf("unknown observer option %q", key)
		}
	}

	if o.ResultFolder == "" {
		return Options{}, fmt.Errorf("observer options must set result_folder")
	}
	return o, nil
}
