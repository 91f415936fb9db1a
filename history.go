package pcmi

import "time"

// historyBaseDate is the epoch history timestamps are stored as minute
// offsets from (spec.md's original commit-log era controllers; grounded
// on the reference client's BASE_YEAR_FOR_DATES).
var historyBaseDate = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

// HistoryGroup identifies what a history record's samples measure.
type HistoryGroup byte

const (
	HistoryGroupTemperature  HistoryGroup = 1
	HistoryGroupHumidity     HistoryGroup = 2
	HistoryGroupSetpoint     HistoryGroup = 3
	HistoryGroupOutsideTemp  HistoryGroup = 4
	HistoryGroupStaticPress  HistoryGroup = 5
	HistoryGroupWaterUsage   HistoryGroup = 6
	HistoryGroupFeedUsage    HistoryGroup = 7
	HistoryGroupMortality    HistoryGroup = 8
	HistoryGroupWeight       HistoryGroup = 9
)

// HistorySample is one timestamped reading within a HistoryRecord.
type HistorySample struct {
	Timestamp time.Time
	Value     float64
	RawValue  int16
}

// IsValid reports whether the sample carries a real reading rather than
// the sensor-error sentinel.
func (s HistorySample) IsValid() bool { return s.RawValue != temperatureNaN }

// HistoryRecord is a sequence of samples for one zone/group pair,
// logged at a fixed interval (spec.md §3, "history records").
type HistoryRecord struct {
	ZoneNumber      byte
	Group           HistoryGroup
	IntervalMinutes uint16
	SampleCount     uint16
	StartTimestamp  time.Time
	Samples         []HistorySample
	RawData         string
}

// EndTimestamp returns the timestamp of the last sample, or
// StartTimestamp if there are none.
func (h HistoryRecord) EndTimestamp() time.Time {
	if len(h.Samples) == 0 {
		return h.StartTimestamp
	}
	return h.Samples[len(h.Samples)-1].Timestamp
}

const historyHeaderBytes = 10

// ParseHistoryRecord decodes a history record from its hex-ASCII
// payload, using strategy to interpret multi-byte fields. Unlike zone
// and device records, the wire endianness here is selected directly by
// which command carried the frame (PCMI_HA_STRING vs
// PCMI_HA_NONSWAP_STRING), not by a record_format byte inside the
// payload (spec.md §4.5, §6).
func ParseHistoryRecord(payloadHex string, strategy EndianStrategy) (*HistoryRecord, error) {
	if len(payloadHex) < historyHeaderBytes*2 {
		return nil, newParseError("HistoryRecord", 0, "payload too short: %d chars, need at least %d", len(payloadHex), historyHeaderBytes*2)
	}

	cur := NewHexCursor(payloadHex, strategy)

	zoneNumber, err := cur.ReadByte()
	if err != nil {
		return nil, err
	}
	group, err := cur.ReadByte()
	if err != nil {
		return nil, err
	}
	intervalMinutes, err := cur.ReadUint16()
	if err != nil {
		return nil, err
	}
	sampleCount, err := cur.ReadUint16()
	if err != nil {
		return nil, err
	}
	startMinutes, err := cur.ReadUint32()
	if err != nil {
		return nil, err
	}

	startTimestamp := historyBaseDate.Add(time.Duration(startMinutes) * time.Minute)

	samples := make([]HistorySample, 0, sampleCount)
	for i := 0; i < int(sampleCount); i++ {
		if cur.Remaining() < 4 {
			break
		}
		raw, err := cur.ReadInt16()
		if err != nil {
			return nil, err
		}
		sampleTime := startTimestamp.Add(time.Duration(i) * time.Duration(intervalMinutes) * time.Minute)
		samples = append(samples, HistorySample{
			Timestamp: sampleTime,
			Value:     historySampleValue(HistoryGroup(group), raw),
			RawValue:  raw,
		})
	}

	return &HistoryRecord{
		ZoneNumber:      zoneNumber,
		Group:           HistoryGroup(group),
		IntervalMinutes: intervalMinutes,
		SampleCount:     sampleCount,
		StartTimestamp:  startTimestamp,
		Samples:         samples,
		RawData:         payloadHex,
	}, nil
}

func historySampleValue(group HistoryGroup, raw int16) float64 {
	switch group {
	case HistoryGroupTemperature, HistoryGroupSetpoint, HistoryGroupOutsideTemp:
		return float64(raw) / 10.0
	case HistoryGroupStaticPress:
		return float64(raw) / 100.0
	default:
		return float64(raw)
	}
}
