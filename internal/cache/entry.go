package cache

import (
	"encoding/json"
	"fmt"
	"time"

	"stockpulse/internal/model"
)

// The backing file maps stock name -> [value, isoTimestamp]. The value is
// either the full SummaryRecord object or, in files written by older
// versions, a bare summary string. Bare strings are upgraded to a full
// record with empty URLs and sources at the read boundary, so nothing
// downstream ever sees the legacy shape and the next save rewrites it in
// the current format.

type storedEntry struct {
	Record   model.SummaryRecord
	StoredAt time.Time
}

func (e storedEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]interface{}{e.Record, e.StoredAt.Format(time.RFC3339Nano)})
}

func (e *storedEntry) UnmarshalJSON(data []byte) error {
	var pair [2]json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("entry is not a [value, timestamp] pair: %w", err)
	}

	record, err := normalizeValue(pair[0])
	if err != nil {
		return err
	}

	var ts string
	if err := json.Unmarshal(pair[1], &ts); err != nil {
		return fmt.Errorf("entry timestamp is not a string: %w", err)
	}
	storedAt, err := parseTimestamp(ts)
	if err != nil {
		return err
	}

	e.Record = record
	e.StoredAt = storedAt
	return nil
}

func normalizeValue(raw json.RawMessage) (model.SummaryRecord, error) {
	var legacy string
	if err := json.Unmarshal(raw, &legacy); err == nil {
		return model.SummaryRecord{Summary: legacy, Sources: []model.Headline{}}, nil
	}

	var record model.SummaryRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return model.SummaryRecord{}, fmt.Errorf("entry value is neither string nor record: %w", err)
	}
	if record.Sources == nil {
		record.Sources = []model.Headline{}
	}
	return record, nil
}

// Timestamps are written as RFC 3339. Files written by earlier versions
// carry naive ISO 8601 stamps without a zone; those parse as local time.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
}

func parseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable timestamp %q", s)
}
