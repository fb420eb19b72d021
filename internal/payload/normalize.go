// Package payload shapes loosely typed JSON submissions into domain records.
package payload

import (
	"math"
	"strconv"
	"strings"

	"eventboard/internal/domain"
)

// NormalizeEvent converts a raw create-event submission into a domain.Event.
// Blank strings become nil, coordinates become numbers, and sub_images becomes a list or nil.
// It does not check that event_name is present; callers do that afterwards.
func NormalizeEvent(raw map[string]any) domain.Event {
	str := func(key string) *string { return blankToNil(raw[key]) }

	e := domain.Event{
		EventNameKana: str("event_name_kana"),
		Genre:         str("genre"),
		Label:         str("label"),
		StartDate:     str("start_date"),
		EndDate:       str("end_date"),
		StartTime:     str("start_time"),
		EndTime:       str("end_time"),
		ApplyStart:    str("apply_start"),
		ApplyEnd:      str("apply_end"),
		Lead:          str("lead"),
		Description:   str("description"),
		Supplement:    str("supplement"),
		MainImage:     str("main_image"),
		SubImages:     StringList(raw["sub_images"]),
		VenueName:     str("venue_name"),
		VenueAddress:  str("venue_address"),
		Lat:           Coordinate(raw["lat"]),
		Lon:           Coordinate(raw["lon"]),
		Organizer:     str("organizer"),
		ContactName:   str("contact_name"),
		ContactPhone:  str("contact_phone"),
		ContactEmail:  str("contact_email"),
		Price:         str("price"),
		TicketRelease: str("ticket_release"),
		TicketPlace:   str("ticket_place"),
	}
	if name := str("event_name"); name != nil {
		e.EventName = *name
	}
	return e
}

// blankToNil returns nil for absent, null, blank or non-scalar values.
// Non-blank strings are returned untrimmed; numbers and booleans in their text form.
func blankToNil(v any) *string {
	var s string
	switch t := v.(type) {
	case string:
		s = t
	case float64:
		s = strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		s = strconv.FormatBool(t)
	default:
		return nil
	}
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

// Coordinate converts a latitude/longitude input to a number.
// Absent, null and blank inputs yield nil, and so does anything that is not a finite number.
func Coordinate(v any) *float64 {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return nil
		}
		f = parsed
	default:
		return nil
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// StringList folds a list or a comma-separated string into a list of non-empty entries.
// List items that are numbers or booleans are kept in their text form; nulls and nested values are dropped.
// An empty result, or any other input type, yields nil.
func StringList(v any) []string {
	var out []string
	switch t := v.(type) {
	case []any:
		for _, item := range t {
			switch it := item.(type) {
			case string:
				out = append(out, it)
			case float64:
				out = append(out, strconv.FormatFloat(it, 'f', -1, 64))
			case bool:
				out = append(out, strconv.FormatBool(it))
			}
		}
	case []string:
		out = append(out, t...)
	case string:
		for _, part := range strings.Split(t, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// OptionalString passes a nullable text field through: nil stays nil, strings are kept as sent.
func OptionalString(v any) *string {
	switch t := v.(type) {
	case string:
		return &t
	case float64:
		s := strconv.FormatFloat(t, 'f', -1, 64)
		return &s
	case bool:
		s := strconv.FormatBool(t)
		return &s
	}
	return nil
}

// PositiveID coerces a JSON number or decimal string to a positive integer ID.
// Unlike a lenient prefix parse, "5abc", "1e3" and 5.7 are rejected rather than read as 5, 1 and 5.
func PositiveID(v any) (int64, bool) {
	switch t := v.(type) {
	case float64:
		if t <= 0 || t != math.Trunc(t) || t >= math.MaxInt64 {
			return 0, false
		}
		return int64(t), true
	case string:
		id, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		if err != nil || id <= 0 {
			return 0, false
		}
		return id, true
	}
	return 0, false
}
