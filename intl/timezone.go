package intl

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"
)

// FallbackTimezone is used when a requested timezone cannot be resolved.
const FallbackTimezone = "UTC"

var offsetZone = regexp.MustCompile(`^(?:GMT|UTC)([+-])(\d{1,2})(?::?(\d{2}))?$`)

// ResolveTimezone resolves an IANA zone name or a GMT offset identifier
// ("GMT+3", "UTC-05:30"). The empty string resolves the default timezone.
// ok is false when id was not recognized and FallbackTimezone was chosen.
func ResolveTimezone(id string) (loc *time.Location, resolvedID string, ok bool) {
	id = strings.TrimSpace(id)
	if id == "" {
		id = DefaultTimezone()
	}

	if m := offsetZone.FindStringSubmatch(id); m != nil {
		hours, _ := strconv.Atoi(m[2])
		minutes := 0
		if m[3] != "" {
			minutes, _ = strconv.Atoi(m[3])
		}
		if hours <= 23 && minutes <= 59 {
			offset := hours*3600 + minutes*60
			if m[1] == "-" {
				offset = -offset
			}
			name := fmt.Sprintf("GMT%s%02d:%02d", m[1], hours, minutes)
			return time.FixedZone(name, offset), name, true
		}
	}

	loc, err := time.LoadLocation(id)
	if err != nil {
		return time.UTC, FallbackTimezone, false
	}
	return loc, loc.String(), true
}

// localtimePath is the system zone link consulted when $TZ is unset.
var localtimePath = "/etc/localtime"

// DefaultTimezone returns the process-wide default timezone: the value set
// with SetDefaultTimezone, else $TZ, else the zone /etc/localtime links to,
// else FallbackTimezone. It never returns "Local", which names no zone.
func DefaultTimezone() string {
	defaults.mu.RLock()
	tz := defaults.timezone
	defaults.mu.RUnlock()
	if tz != "" {
		return tz
	}

	if v := strings.TrimPrefix(os.Getenv("TZ"), ":"); v != "" {
		if strings.HasPrefix(v, "/") {
			if name, ok := zoneFromPath(v); ok {
				return name
			}
		} else {
			return v
		}
	}
	if target, err := os.Readlink(localtimePath); err == nil {
		if name, ok := zoneFromPath(target); ok {
			return name
		}
	}
	return FallbackTimezone
}

// zoneFromPath extracts the IANA name from a zoneinfo file path such as
// /usr/share/zoneinfo/Europe/Berlin.
func zoneFromPath(path string) (string, bool) {
	i := strings.LastIndex(path, "zoneinfo/")
	if i < 0 {
		return "", false
	}
	name := path[i+len("zoneinfo/"):]
	if name == "" || name == "Local" {
		return "", false
	}
	if _, err := time.LoadLocation(name); err != nil {
		return "", false
	}
	return name, true
}

// SetDefaultTimezone overrides the process-wide default timezone. An empty id
// restores the environment-derived default.
func SetDefaultTimezone(id string) {
	defaults.mu.Lock()
	defaults.timezone = strings.TrimSpace(id)
	defaults.mu.Unlock()
}
