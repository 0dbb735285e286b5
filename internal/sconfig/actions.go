package sconfig

import (
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/firestige/stalkermap/pkg/stalkermap"
)

// ActionConfig is the mapstructure-decoded shape of one "actions" entry,
// mirroring the teacher's pattern of decoding a generic map[string]any
// config blob into a typed options struct per plugin
// (firestige-Otus plugin.Config).
type ActionConfig struct {
	Name string `mapstructure:"name"`
}

// BuildActions decodes raw into a concrete Action per entry. An empty or
// missing "name" resolves to "is_port_open", matching spec.md's canonical
// built-in. Unknown names are rejected rather than silently ignored.
func BuildActions(raw []map[string]any) ([]stalkermap.Action, error) {
	actions := make([]stalkermap.Action, 0, len(raw))
	for i, r := range raw {
		var ac ActionConfig
		if err := mapstructure.Decode(r, &ac); err != nil {
			return nil, fmt.Errorf("stalkermap: decoding actions[%d]: %w", i, err)
		}
		a, err := resolveAction(ac.Name)
		if err != nil {
			return nil, err
		}
		actions = append(actions, a)
	}
	return actions, nil
}

func resolveAction(name string) (stalkermap.Action, error) {
	switch name {
	case "", "is_port_open":
		return stalkermap.NewIsPortOpenAction(), nil
	case "banner":
		return stalkermap.NewBannerAction(), nil
	default:
		return nil, fmt.Errorf("stalkermap: unknown action %q", name)
	}
}
