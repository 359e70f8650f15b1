package jsontime

import (
	"fmt"
	"strings"
	"time"
)

// FieldFormat is the per-field override discovered when a field's codec is
// bound. The zero value overrides nothing.
type FieldFormat struct {
	// Name identifies the field in errors, logs and hooks.
	Name string
	// Pattern replaces the global pattern for this field.
	Pattern string
	// Zone is embedded into whichever pattern wins, canonical form included.
	Zone  *time.Location
	Shape Shape
	// With and Without override global features for this field. Without
	// wins when a feature is in both.
	With    Features
	Without Features
}

func (f FieldFormat) apply(global Features) Features {
	return (global | f.With) &^ f.Without
}

// descriptor renders f stably for the engine's binding cache. The zone
// appears by name only; the cache also keys it by identity.
func (f FieldFormat) descriptor() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "name=%s;pattern=%s;shape=%d;with=%d;without=%d;zone=", f.Name, f.Pattern, f.Shape, f.With, f.Without)
	if f.Zone != nil {
		sb.WriteString(f.Zone.String())
	}
	return sb.String()
}
