package models

import (
	"strconv"
	"strings"
	"time"
)

//Layouts accepted for the timestamp fields the distribution api returns.
//The api is not consistent about sub-second precision or zone suffixes,
//so decoding tries from the most to the least specific shape.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

//Timestamp decodes the ISO-8601 strings carried by createdAt/updatedAt
//fields. A null keeps the surrounding pointer nil, an empty or malformed
//string decodes to the zero time instead of failing the whole payload, and
//callers must check IsZero before trusting the value.
type Timestamp struct {
	time.Time
}

//NewTimestamp builds a Timestamp from an already parsed time.
func NewTimestamp(t time.Time) *Timestamp {
	return &Timestamp{Time: t}
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	t.Time = time.Time{}

	raw := strings.TrimSpace(string(data))
	if raw == "null" || raw == `""` {
		return nil
	}

	if len(raw) < 2 || raw[0] != '"' || raw[len(raw)-1] != '"' {
		return nil
	}

	value := raw[1 : len(raw)-1]
	for _, layout := range timestampLayouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			t.Time = parsed
			return nil
		}
	}

	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.Time.IsZero() {
		return []byte("null"), nil
	}
	return []byte(strconv.Quote(t.Time.Format(time.RFC3339Nano))), nil
}
