package pcmi

import "time"

// AlarmType identifies the condition that raised an alarm.
type AlarmType byte

const (
	AlarmTypeNone           AlarmType = 0
	AlarmTypeHighTemp       AlarmType = 1
	AlarmTypeLowTemp        AlarmType = 2
	AlarmTypeFixedHighTemp  AlarmType = 3
	AlarmTypeFixedLowTemp   AlarmType = 4
	AlarmTypeHighHumidity   AlarmType = 5
	AlarmTypeLowHumidity    AlarmType = 6
	AlarmTypePowerFailure   AlarmType = 7
	AlarmTypePowerRestored  AlarmType = 8
	AlarmTypeSensorFailure  AlarmType = 9
	AlarmTypeDeviceFault    AlarmType = 10
	AlarmTypeHighStatic     AlarmType = 11
	AlarmTypeLowStatic      AlarmType = 12
	AlarmTypeHighGas        AlarmType = 13
	AlarmTypeWaterFlow      AlarmType = 14
	AlarmTypeFeedLevel      AlarmType = 15
	AlarmTypeDoorOpen       AlarmType = 16
	AlarmTypeGeneral        AlarmType = 99
)

// IsTemperature reports whether t's Value/Threshold should be
// interpreted as a Temperature rather than a raw count.
func (t AlarmType) IsTemperature() bool {
	switch t {
	case AlarmTypeHighTemp, AlarmTypeLowTemp, AlarmTypeFixedHighTemp, AlarmTypeFixedLowTemp:
		return true
	default:
		return false
	}
}

// AlarmState is an alarm's lifecycle position.
type AlarmState byte

const (
	AlarmStateInactive     AlarmState = 0
	AlarmStateActive       AlarmState = 1
	AlarmStateAcknowledged AlarmState = 2
	AlarmStateCleared      AlarmState = 3
)

// AlarmEntry is one alarm occurrence in an AlarmList.
type AlarmEntry struct {
	AlarmID     uint16
	Type        AlarmType
	ZoneNumber  byte
	DeviceIndex uint16
	State       AlarmState
	TriggeredAt time.Time
	ClearedAt   *time.Time
	Value       int16
	Threshold   int16
}

// IsActive reports whether the alarm is currently active.
func (a AlarmEntry) IsActive() bool { return a.State == AlarmStateActive }

// TemperatureValue returns Value as a Temperature when Type is a
// temperature alarm, along with whether the conversion applies.
func (a AlarmEntry) TemperatureValue() (Temperature, bool) {
	if !a.Type.IsTemperature() {
		return Temperature{}, false
	}
	return TemperatureFromRaw(a.Value), true
}

// TemperatureThreshold returns Threshold as a Temperature when Type is
// a temperature alarm.
func (a AlarmEntry) TemperatureThreshold() (Temperature, bool) {
	if !a.Type.IsTemperature() {
		return Temperature{}, false
	}
	return TemperatureFromRaw(a.Threshold), true
}

// AlarmList is the controller's response to PCMI_SEND_ALARM: a zone's
// (or the whole controller's, when ZoneNumber is 0) alarm log.
type AlarmList struct {
	ZoneNumber byte
	TotalCount uint16
	Alarms     []AlarmEntry
	RawData    string
}

// ActiveAlarms returns the subset of Alarms currently active.
func (l AlarmList) ActiveAlarms() []AlarmEntry {
	var active []AlarmEntry
	for _, a := range l.Alarms {
		if a.IsActive() {
			active = append(active, a)
		}
	}
	return active
}

// ByZone returns the subset of Alarms for the given zone.
func (l AlarmList) ByZone(zone byte) []AlarmEntry {
	var matched []AlarmEntry
	for _, a := range l.Alarms {
		if a.ZoneNumber == zone {
			matched = append(matched, a)
		}
	}
	return matched
}

const (
	alarmListHeaderBytes = 4
	alarmEntryBytes       = 20
)

// ParseAlarmList decodes an alarm list from its hex-ASCII payload,
// using strategy to interpret multi-byte fields (selected directly by
// the response command, as with history records).
func ParseAlarmList(payloadHex string, strategy EndianStrategy) (*AlarmList, error) {
	if len(payloadHex) < alarmListHeaderBytes*2 {
		return nil, newParseError("AlarmList", 0, "payload too short: %d chars, need at least %d", len(payloadHex), alarmListHeaderBytes*2)
	}

	cur := NewHexCursor(payloadHex, strategy)

	zoneNumber, err := cur.ReadByte()
	if err != nil {
		return nil, err
	}
	if err := cur.SkipBytes(1); err != nil { // reserved
		return nil, err
	}
	totalCount, err := cur.ReadUint16()
	if err != nil {
		return nil, err
	}

	var alarms []AlarmEntry
	for cur.Remaining() >= alarmEntryBytes*2 {
		entry, err := parseAlarmEntry(cur)
		if err != nil {
			return nil, err
		}
		alarms = append(alarms, entry)
	}

	return &AlarmList{
		ZoneNumber: zoneNumber,
		TotalCount: totalCount,
		Alarms:     alarms,
		RawData:    payloadHex,
	}, nil
}

// ParseAlarmEntry decodes a single 20-byte alarm entry, for callers
// that receive one alarm at a time rather than a full list.
func ParseAlarmEntry(payloadHex string, strategy EndianStrategy) (*AlarmEntry, error) {
	if len(payloadHex) < alarmEntryBytes*2 {
		return nil, newParseError("AlarmEntry", 0, "payload too short: %d chars, need at least %d", len(payloadHex), alarmEntryBytes*2)
	}
	cur := NewHexCursor(payloadHex, strategy)
	entry, err := parseAlarmEntry(cur)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func parseAlarmEntry(cur *HexCursor) (AlarmEntry, error) {
	alarmID, err := cur.ReadUint16()
	if err != nil {
		return AlarmEntry{}, err
	}
	alarmType, err := cur.ReadByte()
	if err != nil {
		return AlarmEntry{}, err
	}
	zoneNumber, err := cur.ReadByte()
	if err != nil {
		return AlarmEntry{}, err
	}
	deviceIndex, err := cur.ReadUint16()
	if err != nil {
		return AlarmEntry{}, err
	}
	state, err := cur.ReadByte()
	if err != nil {
		return AlarmEntry{}, err
	}
	if err := cur.SkipBytes(1); err != nil { // reserved
		return AlarmEntry{}, err
	}
	triggeredMinutes, err := cur.ReadUint32()
	if err != nil {
		return AlarmEntry{}, err
	}
	clearedMinutes, err := cur.ReadUint32()
	if err != nil {
		return AlarmEntry{}, err
	}
	value, err := cur.ReadInt16()
	if err != nil {
		return AlarmEntry{}, err
	}
	threshold, err := cur.ReadInt16()
	if err != nil {
		return AlarmEntry{}, err
	}

	var clearedAt *time.Time
	if clearedMinutes > 0 {
		t := historyBaseDate.Add(time.Duration(clearedMinutes) * time.Minute)
		clearedAt = &t
	}

	return AlarmEntry{
		AlarmID:     alarmID,
		Type:        AlarmType(alarmType),
		ZoneNumber:  zoneNumber,
		DeviceIndex: deviceIndex,
		State:       AlarmState(state),
		TriggeredAt: historyBaseDate.Add(time.Duration(triggeredMinutes) * time.Minute),
		ClearedAt:   clearedAt,
		Value:       value,
		Threshold:   threshold,
	}, nil
}
