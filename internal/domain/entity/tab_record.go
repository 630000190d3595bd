package entity

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// FieldSeparator joins the fields of one persisted tab.
	FieldSeparator = "||"
	// RecordSeparator joins persisted tabs.
	RecordSeparator = "|||"
)

// emptyField stands in for "" so no field is empty and runs of pipes are
// always exactly a field or record separator. The escaper never emits it.
const emptyField = "%00"

var (
	fieldEscaper   = strings.NewReplacer("%", "%25", "|", "%7C")
	fieldUnescaper = strings.NewReplacer("%7C", "|", "%25", "%")
)

// TabRecord is the persisted form of a tab.
type TabRecord struct {
	URL         string
	Title       string
	LastVisitAt time.Time
}

// RecordFromTab captures the persisted fields of tab.
func RecordFromTab(tab *Tab) TabRecord {
	return TabRecord{URL: tab.URL, Title: tab.Title, LastVisitAt: tab.LastVisitAt}
}

// EncodeTabRecords serializes records as url||title||visitedAtMillis joined
// by "|||". Fields are escaped so titles may contain any character. The
// trailing timestamp makes the field count self-describing.
func EncodeTabRecords(records []TabRecord) string {
	parts := make([]string, 0, len(records))
	for _, rec := range records {
		parts = append(parts, strings.Join([]string{
			escapeField(rec.URL),
			escapeField(rec.Title),
			strconv.FormatInt(rec.LastVisitAt.UnixMilli(), 10),
		}, FieldSeparator))
	}
	return strings.Join(parts, RecordSeparator)
}

// DecodeTabRecords parses an encoded tab list. Records with fewer than two
// fields are skipped and reported in the returned error slice; fields beyond
// the known ones are ignored.
func DecodeTabRecords(data string) ([]TabRecord, []error) {
	if strings.TrimSpace(data) == "" {
		return nil, nil
	}

	var (
		records []TabRecord
		skipped []error
	)
	for i, raw := range strings.Split(data, RecordSeparator) {
		fields := strings.Split(raw, FieldSeparator)
		if len(fields) < 2 {
			skipped = append(skipped, fmt.Errorf("record %d: %w", i, ErrMalformedRecord))
			continue
		}
		rec := TabRecord{
			URL:   unescapeField(fields[0]),
			Title: unescapeField(fields[1]),
		}
		if len(fields) > 2 {
			if ms, err := strconv.ParseInt(fields[2], 10, 64); err == nil && ms > 0 {
				rec.LastVisitAt = time.UnixMilli(ms)
			}
		}
		records = append(records, rec)
	}
	return records, skipped
}

func escapeField(s string) string {
	if s == "" {
		return emptyField
	}
	return fieldEscaper.Replace(s)
}

func unescapeField(s string) string {
	if s == emptyField {
		return ""
	}
	return fieldUnescaper.Replace(s)
}
