package jsontime

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// SettingsFile is the on-disk form of Settings, authored as YAML or JSONC:
//
//	context_zone: Europe/Berlin
//	features:
//	  enable: [WRITE_DATES_AS_TIMESTAMPS]
//	  disable: [WRITE_DATES_WITH_ZONE_ID]
//	types:
//	  instant:
//	    pattern: "yyyy-MM-dd'T'HH:mm:ss.SSSXXX"
//	    zone: Asia/Singapore
//	  zoned_date_time:
//	    zone_modifier: UTC
//
// Type keys are kind names as accepted by ParseKind.
type SettingsFile struct {
	ContextZone string                    `yaml:"context_zone" json:"context_zone"`
	Features    FeatureToggles            `yaml:"features" json:"features"`
	Types       map[string]TypeFileConfig `yaml:"types" json:"types"`
}

// FeatureToggles are applied on top of DefaultFeatures.
type FeatureToggles struct {
	Enable  []string `yaml:"enable" json:"enable"`
	Disable []string `yaml:"disable" json:"disable"`
}

type TypeFileConfig struct {
	// Pattern is the global pattern for the kind.
	Pattern string `yaml:"pattern" json:"pattern"`
	// Zone is embedded into Pattern; ignored without a pattern.
	Zone string `yaml:"zone" json:"zone"`
	// ZoneModifier names a zone every value of the kind is moved to.
	ZoneModifier string `yaml:"zone_modifier" json:"zone_modifier"`
}

// ParseSettingsYAML decodes YAML settings.
func ParseSettingsYAML(data []byte) (*Settings, error) {
	var f SettingsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("jsontime: parsing settings: %w", err)
	}
	return f.Settings()
}

// ParseSettingsJSONC strips comments and trailing commas, then decodes JSON
// settings.
func ParseSettingsJSONC(data []byte) (*Settings, error) {
	var f SettingsFile
	if err := json.Unmarshal(jsonc.ToJSON(data), &f); err != nil {
		return nil, fmt.Errorf("jsontime: parsing settings: %w", err)
	}
	return f.Settings()
}

// LoadSettingsYAML reads a YAML settings file.
func LoadSettingsYAML(path string) (*Settings, error) {
	return loadSettings(path, ParseSettingsYAML)
}

// LoadSettingsJSONC reads a JSONC (or plain JSON) settings file.
func LoadSettingsJSONC(path string) (*Settings, error) {
	return loadSettings(path, ParseSettingsJSONC)
}

// LoadSettings picks the format from the file extension: .yaml/.yml, or
// .json/.jsonc.
func LoadSettings(path string) (*Settings, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadSettingsYAML(path)
	case ".json", ".jsonc":
		return LoadSettingsJSONC(path)
	}
	return nil, fmt.Errorf("jsontime: unsupported settings file extension %q", filepath.Ext(path))
}

func loadSettings(path string, parse func([]byte) (*Settings, error)) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("jsontime: reading %s: %w", path, err)
	}
	s, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Settings validates f and builds Settings. All problems are reported
// together.
func (f SettingsFile) Settings() (*Settings, error) {
	var errs []error
	opts := SettingsOptions{
		Patterns:      map[Kind]*Pattern{},
		ZoneModifiers: map[Kind]ZoneModifier{},
	}

	if f.ContextZone != "" {
		loc, err := LoadZone(f.ContextZone)
		if err != nil {
			errs = append(errs, fmt.Errorf("context_zone: %w", err))
		}
		opts.ContextZone = loc
	}

	feats := DefaultFeatures
	for _, n := range f.Features.Enable {
		ft, err := ParseFeature(n)
		if err != nil {
			errs = append(errs, fmt.Errorf("features.enable: %w", err))
			continue
		}
		feats = feats.With(ft)
	}
	for _, n := range f.Features.Disable {
		ft, err := ParseFeature(n)
		if err != nil {
			errs = append(errs, fmt.Errorf("features.disable: %w", err))
			continue
		}
		feats = feats.Without(ft)
	}
	opts.Features = feats
	if feats == 0 {
		opts.Features = NoFeatures
	}

	for name, tc := range f.Types {
		k, err := ParseKind(name)
		if err != nil {
			errs = append(errs, fmt.Errorf("types: %w", err))
			continue
		}
		if tc.Pattern != "" {
			var zone *time.Location
			if tc.Zone != "" {
				if zone, err = LoadZone(tc.Zone); err != nil {
					errs = append(errs, fmt.Errorf("types.%s.zone: %w", name, err))
					continue
				}
			}
			p, err := NewPattern(tc.Pattern, zone)
			if err != nil {
				errs = append(errs, fmt.Errorf("types.%s.pattern: %w", name, err))
				continue
			}
			opts.Patterns[k] = p
		}
		if tc.ZoneModifier != "" {
			loc, err := LoadZone(tc.ZoneModifier)
			if err != nil {
				errs = append(errs, fmt.Errorf("types.%s.zone_modifier: %w", name, err))
				continue
			}
			opts.ZoneModifiers[k] = FixedZoneModifier(loc)
		}
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return NewSettings(opts)
}
