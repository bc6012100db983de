package config

// Preset configurations for common evaluation setups.
var presets = map[string]*Config{
	"classic": {
		Formulation:      "monaghan",
		KernelCorrection: DefaultKernelCorrection,
		Workers:          DefaultWorkers,
	},
	"classic-stabilized": {
		Formulation:        "monaghan",
		BackgroundPressure: true,
		KernelCorrection:   DefaultKernelCorrection,
		Workers:            DefaultWorkers,
	},
	"transport": {
		Formulation:       "adami",
		TransportVelocity: true,
		KernelCorrection:  DefaultKernelCorrection,
		Workers:           DefaultWorkers,
	},
	"transport-stabilized": {
		Formulation:                   "adami",
		BackgroundPressure:            true,
		GeneralizedBackgroundPressure: true,
		TransportVelocity:             true,
		KernelCorrection:              DefaultKernelCorrection,
		Workers:                       DefaultWorkers,
	},
}

// GetPreset returns a copy of the named preset, or nil if unknown.
func GetPreset(name string) *Config {
	p, ok := presets[name]
	if !ok {
		return nil
	}
	cp := *p
	return &cp
}

// ListPresets returns the available preset names.
func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	return names
}
