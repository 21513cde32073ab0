package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Explain returns the effective value at a dotted YAML path and the node
// that set it. A zero Source means the built-in default applies.
func Explain(res *LoadResult, path string) (any, Source, error) {
	if res == nil || res.Config == nil {
		return nil, Source{}, fmt.Errorf("no config loaded")
	}
	data, err := yaml.Marshal(res.Config)
	if err != nil {
		return nil, Source{}, fmt.Errorf("failed to marshal config: %w", err)
	}
	var tree map[string]any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, Source{}, fmt.Errorf("failed to decode config: %w", err)
	}

	path = strings.Trim(strings.TrimSpace(path), ".")
	if path == "" {
		return nil, Source{}, fmt.Errorf("empty config path")
	}

	var cur any = tree
	for _, part := range strings.Split(path, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, Source{}, fmt.Errorf("unknown config path %q", path)
		}
		if cur, ok = m[part]; !ok {
			return nil, Source{}, fmt.Errorf("unknown config path %q", path)
		}
	}

	return cur, res.Sources[path], nil
}
