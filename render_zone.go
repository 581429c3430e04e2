package dtformat

import (
	"strings"
	"time"
)

func (r renderer) zone(f Field, t time.Time) string {
	_, offset := t.Zone()
	id := t.Location().String()

	switch f.Letter {
	case 'z':
		if name := r.zoneName(id, t.IsDST(), f.Count >= 4); name != "" {
			return name
		}
		return r.gmt(offset, f.Count >= 4)
	case 'v':
		if name := r.zoneName(id, false, f.Count >= 4); name != "" {
			return name
		}
		return r.gmt(offset, f.Count >= 4)
	case 'O':
		return r.gmt(offset, f.Count >= 4)
	case 'V':
		switch f.Count {
		case 1:
			return "unk"
		case 2:
			return id
		case 3:
			return exemplarCity(id)
		}
		return r.gmt(offset, true)
	case 'Z':
		switch {
		case f.Count <= 3:
			return isoOffset(offset, false, false, false)
		case f.Count == 4:
			return r.gmt(offset, true)
		}
		return isoOffset(offset, true, true, false)
	case 'X', 'x':
		utc := f.Letter == 'X'
		switch f.Count {
		case 1:
			return isoOffsetShort(offset, utc)
		case 2, 4:
			return isoOffset(offset, false, utc, f.Count == 4)
		}
		return isoOffset(offset, true, utc, f.Count == 5)
	}
	return r.gmt(offset, true)
}

func (r renderer) zoneName(id string, dst, long bool) string {
	names, ok := r.data.TimeZoneNames[id]
	if !ok {
		return ""
	}
	switch {
	case long && dst:
		return names.LongDaylight
	case long:
		return names.LongStandard
	case dst:
		return names.ShortDaylight
	}
	return names.ShortStandard
}

// gmt renders the localized GMT format, e.g. "GMT-5" (short) or "GMT-05:00" (long).
func (r renderer) gmt(offset int, long bool) string {
	if offset == 0 {
		if r.data.GMTZeroFormat != "" {
			return r.data.GMTZeroFormat
		}
		return "GMT"
	}

	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	hours, minutes := offset/3600, (offset%3600)/60

	var value string
	if long {
		value = sign + r.digits.format(hours, 2) + ":" + r.digits.format(minutes, 2)
	} else {
		value = sign + r.digits.format(hours, 1)
		if minutes != 0 {
			value += ":" + r.digits.format(minutes, 2)
		}
	}

	format := r.data.GMTFormat
	if format == "" {
		format = "GMT{0}"
	}
	return strings.Replace(format, "{0}", value, 1)
}

// isoOffset renders ±HHmm or ±HH:mm, with optional seconds and "Z" for UTC.
func isoOffset(offset int, extended, utc, withSeconds bool) string {
	if offset == 0 && utc {
		return "Z"
	}
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	separator := ""
	if extended {
		separator = ":"
	}
	out := sign + padLatin(offset/3600, 2) + separator + padLatin((offset%3600)/60, 2)
	if withSeconds && offset%60 != 0 {
		out += separator + padLatin(offset%60, 2)
	}
	return out
}

// isoOffsetShort renders ±HH, adding minutes only when they are non-zero.
func isoOffsetShort(offset int, utc bool) string {
	if offset == 0 && utc {
		return "Z"
	}
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	out := sign + padLatin(offset/3600, 2)
	if minutes := (offset % 3600) / 60; minutes != 0 {
		out += padLatin(minutes, 2)
	}
	return out
}

func exemplarCity(id string) string {
	if idx := strings.LastIndex(id, "/"); idx >= 0 {
		id = id[idx+1:]
	}
	return strings.ReplaceAll(id, "_", " ")
}
