package util

import (
	"os"
	"sort"
	"strings"
	"time"

	uuid "github.com/nu7hatch/gouuid"

	"github.com/8cH9azbsFifZ/gaiagpsclient/apiclient"
)

// Timestamp layouts the API is known to emit.
var stampLayouts = []string{
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
}

// DateParse parses an API timestamp into local time.
// API stamps are UTC even when they carry no zone designator.
func DateParse(stamp string) (time.Time, bool) {
	if stamp == "" {
		return time.Time{}, false
	}
	for _, layout := range stampLayouts {
		if t, err := time.ParseInLocation(layout, stamp, time.UTC); err == nil {
			return t.Local(), true
		}
	}
	return time.Time{}, false
}

// DateFmt formats an API timestamp for display, or "?" if it is
// absent or unparseable.
func DateFmt(stamp string) string {
	t, ok := DateParse(stamp)
	if !ok {
		return "?"
	}
	return t.Format("02 Jan 2006 15:04:05")
}

// MakeWaypoint returns a waypoint document suitable for sending to the API.
// Coordinates are decimal degrees, altitude is meters.
func MakeWaypoint(name string, lat, lon float64, alt int, notes, icon string) apiclient.Document {
	return apiclient.Document{
		"type": "Feature",
		"properties": map[string]interface{}{
			"title": name,
			"notes": notes,
			"icon":  icon,
		},
		"geometry": map[string]interface{}{
			"type":        "Point",
			"coordinates": []interface{}{lon, lat, alt},
		},
	}
}

// MakeFolder returns a folder document suitable for sending to the API.
func MakeFolder(name string) apiclient.Document {
	return apiclient.Document{"title": name}
}

// SortByTitle returns the items in title order.
func SortByTitle(objs []apiclient.Object) []apiclient.Object {
	sorted := make([]apiclient.Object, len(objs))
	copy(sorted, objs)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Title < sorted[j].Title })
	return sorted
}

// IsID reports whether a string looks like an API object identifier
// rather than a title. Identifiers are UUIDs, with or without dashes.
func IsID(s string) bool {
	switch len(s) {
	case 36:
		_, err := uuid.ParseHex(s)
		return err == nil
	case 32:
		dashed := strings.Join([]string{
			s[0:8], s[8:12], s[12:16], s[16:20], s[20:32],
		}, "-")
		_, err := uuid.ParseHex(dashed)
		return err == nil
	}
	return false
}

// GetEditor returns a path to an editor command, or "" if none is usable.
func GetEditor() string {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "/usr/bin/editor"
	}
	if info, err := os.Stat(editor); err == nil && info.Mode()&0111 != 0 {
		return editor
	}
	return ""
}
