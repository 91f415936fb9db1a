package pcmi

import "testing"

func buildAlarmEntryBytes(alarmID uint16, typ AlarmType, zone byte, state AlarmState, value, threshold int16) []byte {
	b := make([]byte, alarmEntryBytes)
	b[0], b[1] = byte(alarmID>>8), byte(alarmID)
	b[2] = byte(typ)
	b[3] = zone
	// deviceIndex left 0
	b[6] = byte(state)
	// reserved byte 7
	// triggeredMinutes left 0 (1980-01-01)
	// clearedMinutes left 0 (no ClearedAt)
	b[16], b[17] = byte(uint16(value)>>8), byte(uint16(value))
	b[18], b[19] = byte(uint16(threshold)>>8), byte(uint16(threshold))
	return b
}

func TestParseAlarmList(t *testing.T) {
	entry1 := buildAlarmEntryBytes(1, AlarmTypeHighTemp, 2, AlarmStateActive, 850, 800)
	entry2 := buildAlarmEntryBytes(2, AlarmTypeDoorOpen, 2, AlarmStateCleared, 0, 0)

	header := []byte{2, 0, 0, 2} // zone=2, reserved, totalCount=2 (big-endian)
	payload := encodeHex(header) + encodeHex(entry1) + encodeHex(entry2)

	list, err := ParseAlarmList(payload, Swap)
	if err != nil {
		t.Fatalf("ParseAlarmList: %v", err)
	}
	if list.ZoneNumber != 2 {
		t.Errorf("ZoneNumber = %d, want 2", list.ZoneNumber)
	}
	if list.TotalCount != 2 {
		t.Errorf("TotalCount = %d, want 2", list.TotalCount)
	}
	if len(list.Alarms) != 2 {
		t.Fatalf("len(Alarms) = %d, want 2", len(list.Alarms))
	}
	if len(list.ActiveAlarms()) != 1 {
		t.Errorf("len(ActiveAlarms()) = %d, want 1", len(list.ActiveAlarms()))
	}
	if len(list.ByZone(2)) != 2 {
		t.Errorf("len(ByZone(2)) = %d, want 2", len(list.ByZone(2)))
	}

	temp, ok := list.Alarms[0].TemperatureValue()
	if !ok {
		t.Fatal("TemperatureValue should apply to a high-temp alarm")
	}
	if f, _ := temp.Fahrenheit(); f != 85.0 {
		t.Errorf("TemperatureValue().Fahrenheit() = %v, want 85.0", f)
	}

	if _, ok := list.Alarms[1].TemperatureValue(); ok {
		t.Error("TemperatureValue should not apply to a door-open alarm")
	}
}

func TestParseAlarmListTooShort(t *testing.T) {
	if _, err := ParseAlarmList("00", Swap); err == nil {
		t.Error("ParseAlarmList should reject a too-short payload")
	}
}

func TestParseAlarmEntryClearedAt(t *testing.T) {
	b := buildAlarmEntryBytes(5, AlarmTypeLowTemp, 1, AlarmStateCleared, 600, 650)
	b[12], b[13], b[14], b[15] = 0, 0, 0, 10 // clearedMinutes = 10
	entry, err := ParseAlarmEntry(encodeHex(b), Swap)
	if err != nil {
		t.Fatalf("ParseAlarmEntry: %v", err)
	}
	if entry.ClearedAt == nil {
		t.Fatal("ClearedAt should be set when clearedMinutes > 0")
	}
	if !entry.ClearedAt.After(entry.TriggeredAt) {
		t.Error("ClearedAt should be after TriggeredAt")
	}
}

func TestParseAlarmEntryNoClearedAt(t *testing.T) {
	b := buildAlarmEntryBytes(5, AlarmTypeLowTemp, 1, AlarmStateActive, 600, 650)
	entry, err := ParseAlarmEntry(encodeHex(b), Swap)
	if err != nil {
		t.Fatalf("ParseAlarmEntry: %v", err)
	}
	if entry.ClearedAt != nil {
		t.Error("ClearedAt should be nil when the alarm has not cleared")
	}
	if !entry.IsActive() {
		t.Error("IsActive() should be true for an AlarmStateActive entry")
	}
}

func TestParseAlarmEntryTooShort(t *testing.T) {
	if _, err := ParseAlarmEntry("0000", Swap); err == nil {
		t.Error("ParseAlarmEntry should reject a too-short payload")
	}
}
