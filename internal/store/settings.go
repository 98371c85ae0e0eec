package store

import (
	"encoding/json"
	"fmt"
	"strings"
)

type FontSize string

const (
	FontSizeSmall  FontSize = "small"
	FontSizeMedium FontSize = "medium"
	FontSizeLarge  FontSize = "large"
)

const DefaultFontSize = FontSizeMedium

func ValidFontSize(v FontSize) bool {
	switch v {
	case FontSizeSmall, FontSizeMedium, FontSizeLarge:
		return true
	}
	return false
}

func ParseFontSize(s string) (FontSize, error) {
	v := FontSize(strings.ToLower(strings.TrimSpace(s)))
	if !ValidFontSize(v) {
		return "", fmt.Errorf("invalid font size: %q (expected small|medium|large)", s)
	}
	return v, nil
}

// Stats is the append-only completion statistics block. CompletedLeafIDs
// is the dedup set: a leaf id appears at most once, so repeated toggles
// and process restarts cannot double-count.
type Stats struct {
	CompletedLeafCount   int      `json:"completed_leaf_count"`
	CompletedLeafMinutes int      `json:"completed_leaf_minutes"`
	CompletedLeafIDs     []string `json:"completed_leaf_ids"`
}

// Settings is the settings/statistics document. Decoding merges the file
// against defaults so newly introduced fields are filled in, and stashes
// unrecognized keys so a save never discards fields written by other
// versions of the tool.
type Settings struct {
	FirstLaunchPrompted bool     `json:"first_launch_prompted"`
	StartupEnabled      bool     `json:"startup_enabled"`
	FontSize            FontSize `json:"font_size"`
	Stats               Stats    `json:"stats"`

	extra map[string]json.RawMessage
}

func DefaultSettings() Settings {
	return Settings{
		FirstLaunchPrompted: false,
		StartupEnabled:      false,
		FontSize:            DefaultFontSize,
		Stats: Stats{
			CompletedLeafCount:   0,
			CompletedLeafMinutes: 0,
			CompletedLeafIDs:     []string{},
		},
	}
}

var settingsKnownKeys = []string{
	"first_launch_prompted",
	"startup_enabled",
	"font_size",
	"stats",
}

func (s *Settings) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	// Start from defaults and overlay whatever decodes cleanly; a field
	// that doesn't is left at its default (best-effort merge, the document
	// is user-editable).
	*s = DefaultSettings()
	if v, ok := raw["first_launch_prompted"]; ok {
		_ = json.Unmarshal(v, &s.FirstLaunchPrompted)
	}
	if v, ok := raw["startup_enabled"]; ok {
		_ = json.Unmarshal(v, &s.StartupEnabled)
	}
	if v, ok := raw["font_size"]; ok {
		var fs FontSize
		if err := json.Unmarshal(v, &fs); err == nil && ValidFontSize(fs) {
			s.FontSize = fs
		}
	}
	if v, ok := raw["stats"]; ok {
		var st Stats
		if err := json.Unmarshal(v, &st); err == nil {
			if st.CompletedLeafIDs == nil {
				st.CompletedLeafIDs = []string{}
			}
			s.Stats = st
		}
	}

	for _, k := range settingsKnownKeys {
		delete(raw, k)
	}
	if len(raw) > 0 {
		s.extra = raw
	}
	return nil
}

func (s Settings) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(s.extra)+len(settingsKnownKeys))
	for k, v := range s.extra {
		out[k] = v
	}
	st := s.Stats
	if st.CompletedLeafIDs == nil {
		st.CompletedLeafIDs = []string{}
	}
	out["first_launch_prompted"] = s.FirstLaunchPrompted
	out["startup_enabled"] = s.StartupEnabled
	out["font_size"] = s.FontSize
	out["stats"] = st
	return json.Marshal(out)
}
