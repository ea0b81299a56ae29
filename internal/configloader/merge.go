package configloader

import "github.com/notelint/notelint/pkg/config"

// merge overlays layer on top of base and returns the combined config.
// Scalars set in the layer replace the base value; disable and enable
// lists replace wholesale rather than concatenating, since appending
// would make a narrower config unable to re-enable a rule. Per-rule
// option tables merge key by key.
func merge(base, layer *config.Config) *config.Config {
	if layer == nil {
		return base
	}
	out := base.Clone()

	if layer.Flavor != "" {
		out.Flavor = layer.Flavor
	}
	if layer.LineLength != 0 {
		out.LineLength = layer.LineLength
	}
	if layer.FixPasses != 0 {
		out.FixPasses = layer.FixPasses
	}
	if layer.Disable != nil {
		out.Disable = append([]string(nil), layer.Disable...)
	}
	if layer.Enable != nil {
		out.Enable = append([]string(nil), layer.Enable...)
	}

	for name, opts := range layer.Rules {
		merged, ok := out.Rules[name]
		if !ok {
			merged = make(config.RuleOptions, len(opts))
			out.Rules[name] = merged
		}
		for k, v := range opts {
			merged[k] = v
		}
	}

	out.Warnings = append(out.Warnings, layer.Warnings...)
	return out
}
