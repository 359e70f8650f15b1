package pattern

import (
	"fmt"
	"sync"
	"time"
	_ "time/tzdata" // region ids must resolve on hosts without a zoneinfo database
)

var offsetZones sync.Map // int -> *time.Location

// OffsetZone returns the shared fixed zone for off seconds east of UTC,
// named by its offset id ("Z", "+03:00").
func OffsetZone(off int) *time.Location {
	if loc, ok := offsetZones.Load(off); ok {
		return loc.(*time.Location)
	}
	loc, _ := offsetZones.LoadOrStore(off, time.FixedZone(OffsetID(off), off))
	return loc.(*time.Location)
}

// LoadZone resolves a zone id: "Z", an offset id ("+03:00", "-0430") or a
// region id ("Europe/Moscow", "UTC").
func LoadZone(id string) (*time.Location, error) {
	if id == "" {
		return nil, fmt.Errorf("empty zone id")
	}
	if id == "Z" {
		return OffsetZone(0), nil
	}
	if id[0] == '+' || id[0] == '-' {
		p := &parser{l: &Layout{src: "XXXXX"}, text: id}
		off, err := p.offset(offHHcMMss, false)
		if err != nil || p.pos != len(id) {
			p2 := &parser{l: &Layout{src: "xxxx"}, text: id}
			off, err = p2.offset(offHHMMss, false)
			if err != nil || p2.pos != len(id) {
				return nil, fmt.Errorf("invalid offset id %q", id)
			}
		}
		return OffsetZone(off), nil
	}
	loc, err := time.LoadLocation(id)
	if err != nil {
		return nil, fmt.Errorf("unknown zone id %q", id)
	}
	return loc, nil
}
