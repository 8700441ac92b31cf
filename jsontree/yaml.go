package jsontree

import (
	"gopkg.in/yaml.v3"

	"github.com/faultline/jsonfix/parser"
)

// ToYAML renders v as YAML text via v.Native(), the same generic
// map[string]any/[]any/scalar shape encoding/json would consume.
func ToYAML(v parser.Value) (string, error) {
	out, err := yaml.Marshal(v.Native())
	if err != nil {
		return "", err
	}
	return string(out), nil
}
