package config

import (
	"fmt"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// recognized page sizes; anything else the UI cannot render sensibly.
var allowedPageSizes = map[int]bool{6: true, 12: true, 24: true, 48: true}

// NormalizeAndValidate fills defaults for omitted timings, dedupes the
// page-size list, and reports anything out of range.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	out := cfg
	var res Validation

	if out.App.Port <= 0 || out.App.Port > 65535 {
		res.addErr("app.port must be 1..65535")
	}

	if out.Cache.TTLHours == 0 {
		out.Cache.TTLHours = 24
	}
	if out.Cache.TTLHours < 0 {
		res.addErr("cache.ttl_hours must be >= 0")
	}

	if out.Storage.MaxValueBytes < 0 {
		res.addErr("storage.max_value_bytes must be >= 0")
	}

	if out.UI.DebounceMS == 0 {
		out.UI.DebounceMS = 300
	}
	if out.UI.SettleMS == 0 {
		out.UI.SettleMS = 100
	}
	if out.UI.TransitionMS == 0 {
		out.UI.TransitionMS = 200
	}
	if out.UI.DebounceMS < 0 || out.UI.SettleMS < 0 || out.UI.TransitionMS < 0 {
		res.addErr("ui timings must be >= 0")
	}
	if out.UI.DebounceMS > 2000 {
		res.addWarn("ui.debounce_ms is very high (%d); search will feel sluggish.", out.UI.DebounceMS)
	}

	var sizes []int
	seen := map[int]bool{}
	for _, n := range out.UI.PageSizes {
		if !allowedPageSizes[n] {
			res.addErr("ui.page_sizes contains unrecognized size %d (allowed: 6, 12, 24, 48)", n)
			continue
		}
		if seen[n] {
			continue
		}
		seen[n] = true
		sizes = append(sizes, n)
	}
	if len(sizes) == 0 {
		sizes = []int{6, 12, 24, 48}
	}
	out.UI.PageSizes = sizes

	if out.Export.Prefix == "" {
		out.Export.Prefix = "recruitment_data"
	}

	if out.Refresh.PerMinute == 0 {
		out.Refresh.PerMinute = 6
	}
	if out.Refresh.PerMinute < 0 {
		res.addErr("refresh.per_minute must be >= 0")
	}

	switch out.Theme.SystemDefault {
	case "", "light", "dark":
	default:
		res.addErr("theme.system_default must be \"light\", \"dark\", or empty")
	}

	return out, res
}
