package config

import "sort"

// Preset is a named animation budget.
type Preset struct {
	FPS   int
	Nodes int
}

var Presets = map[string]Preset{
	"lite":    {FPS: 15, Nodes: 24},
	"default": {FPS: DefaultFPS, Nodes: DefaultNodes},
	"dense":   {FPS: 60, Nodes: 96},
}

func GetPreset(name string) *Preset {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	return &p
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
