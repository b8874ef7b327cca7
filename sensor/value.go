package sensor

import (
	"slices"
	"strings"
	"time"

	"github.com/fen-lake/st2mqtt/smartthings"
)

// jobStateMap normalizes the inconsistent vendor spellings of washer,
// dryer, and dishwasher job states to the canonical snake_case vocabulary.
// An empty canonical value means the state is unknown and maps to nil.
var jobStateMap = map[string]string{
	"airWash":                 "air_wash",
	"airwash":                 "air_wash",
	"aIRinse":                 "ai_rinse",
	"aISpin":                  "ai_spin",
	"aIWash":                  "ai_wash",
	"aIDrying":                "ai_drying",
	"internalCare":            "internal_care",
	"continuousDehumidifying": "continuous_dehumidifying",
	"thawingFrozenInside":     "thawing_frozen_inside",
	"delayWash":               "delay_wash",
	"weightSensing":           "weight_sensing",
	"freezeProtection":        "freeze_protection",
	"preDrain":                "pre_drain",
	"preWash":                 "pre_wash",
	"prewash":                 "pre_wash",
	"wrinklePrevent":          "wrinkle_prevent",
	"unknown":                 "",
}

var ovenJobStateMap = map[string]string{
	"scheduledStart":  "scheduled_start",
	"fastPreheat":     "fast_preheat",
	"scheduledEnd":    "scheduled_end",
	"stone_heating":   "stone_heating",
	"timeHoldPreheat": "time_hold_preheat",
}

var mediaPlaybackStateMap = map[string]string{
	"fast forwarding": "fast_forwarding",
}

var robotCleanerTurboModeMap = map[string]string{
	"extraSilence": "extra_silence",
}

var robotCleanerMovementMap = map[string]string{
	"powerOff": "off",
}

var ovenModeMap = map[string]string{
	"Conventional":                  "conventional",
	"Bake":                          "bake",
	"BottomHeat":                    "bottom_heat",
	"ConvectionBake":                "convection_bake",
	"ConvectionRoast":               "convection_roast",
	"Broil":                         "broil",
	"ConvectionBroil":               "convection_broil",
	"SteamCook":                     "steam_cook",
	"SteamBake":                     "steam_bake",
	"SteamRoast":                    "steam_roast",
	"SteamBottomHeatplusConvection": "steam_bottom_heat_plus_convection",
	"Microwave":                     "microwave",
	"MWplusGrill":                   "microwave_plus_grill",
	"MWplusConvection":              "microwave_plus_convection",
	"MWplusHotBlast":                "microwave_plus_hot_blast",
	"MWplusHotBlast2":               "microwave_plus_hot_blast_2",
	"SlimMiddle":                    "slim_middle",
	"SlimStrong":                    "slim_strong",
	"SlowCook":                      "slow_cook",
	"Proof":                         "proof",
	"Dehydrate":                     "dehydrate",
	"Others":                        "others",
	"StrongSteam":                   "strong_steam",
	"Descale":                       "descale",
	"Rinse":                         "rinse",
}

var washerOptions = []string{"pause", "run", "stop"}

// mapped returns a ValueFunc that normalizes a vendor enum string through
// the given map. Strings absent from the map pass through unchanged, so
// unseen vendor values survive rather than vanish. A mapped empty string
// yields nil (the unknown state). Non-string input yields nil.
func mapped(m map[string]string) ValueFunc {
	return func(raw any) any {
		s, ok := raw.(string)
		if !ok {
			return nil
		}
		canonical, ok := m[s]
		if !ok {
			return s
		}
		if canonical == "" {
			return nil
		}
		return canonical
	}
}

// values returns the canonical vocabulary of m for use as an option
// list, sorted so republished discovery payloads stay stable.
func values(m map[string]string) []string {
	opts := make([]string, 0, len(m))
	for _, v := range m {
		opts = append(opts, v)
	}
	slices.Sort(opts)
	return opts
}

// parseTimestamp parses an RFC 3339 string into a time, yielding nil on
// anything unparsable.
func parseTimestamp(raw any) any {
	s, ok := raw.(string)
	if !ok {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil
	}
	return t
}

// ovenSetpoint suppresses the sentinel "no setpoint" values of 0 F and
// -17 C; anything else passes through unchanged.
func ovenSetpoint(raw any) any {
	if raw == nil {
		return nil
	}
	if f, ok := (smartthings.Status{Value: raw}).Float(); ok && (f == 0 || f == -17) {
		return nil
	}
	return raw
}

// lowercased lower-cases a raw string value, yielding nil for anything else.
func lowercased(raw any) any {
	s, ok := raw.(string)
	if !ok || s == "" {
		return nil
	}
	return strings.ToLower(s)
}

// subField extracts one field of a composite report value. Entity creation
// is gated by hasSubField, but the transform still guards the lookup in
// case the report shape changes after setup.
func subField(key string) ValueFunc {
	return func(raw any) any {
		m, ok := raw.(map[string]any)
		if !ok {
			return nil
		}
		v, ok := m[key]
		if !ok {
			return nil
		}
		return v
	}
}

// scaledSubField extracts one numeric field of a composite report value
// and divides it by div.
func scaledSubField(key string, div float64) ValueFunc {
	extract := subField(key)
	return func(raw any) any {
		v := extract(raw)
		if v == nil {
			return nil
		}
		f, ok := (smartthings.Status{Value: v}).Float()
		if !ok {
			return nil
		}
		return f / div
	}
}

// axis extracts one coordinate of a three-axis report.
func axis(i int) ValueFunc {
	return func(raw any) any {
		v, ok := raw.([]any)
		if !ok || i >= len(v) {
			return nil
		}
		return v[i]
	}
}

// hasSubField is an ExistsFunc testing for the presence of one field in a
// composite report value.
func hasSubField(key string) ExistsFunc {
	return func(s smartthings.Status) bool {
		m, ok := s.Value.(map[string]any)
		if !ok {
			return false
		}
		_, ok = m[key]
		return ok
	}
}

// powerAttributes exposes the billing-period bounds of a power consumption
// report as auxiliary attributes.
func powerAttributes(raw any) map[string]any {
	m, ok := raw.(map[string]any)
	if !ok {
		return nil
	}
	attrs := make(map[string]any, 2)
	for _, k := range []string{"start", "end"} {
		if v, ok := m[k]; ok && v != nil {
			attrs["power_consumption_"+k] = v
		}
	}
	return attrs
}

// mediaPlayer is a DeprecatedFunc for sensors unconditionally superseded
// by the media player entity.
func mediaPlayer(smartthings.ComponentStatus) string {
	return "media_player"
}

// volumeDeprecated flags the audio volume sensor only when the device has
// enough media capabilities for a media player entity to cover it.
func volumeDeprecated(status smartthings.ComponentStatus) string {
	if status.HasAll(smartthings.CapabilityAudioMute, smartthings.CapabilityMediaPlayback) {
		return "media_player"
	}
	return ""
}
