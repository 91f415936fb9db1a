package pcmi

// ZoneParameters is a zone's configuration record: temperature and
// humidity setpoints, control bits, and production data (spec.md §3).
// Zone number is validated to the 1..9 range at parse time.
type ZoneParameters struct {
	RecordSizeWords int
	ZoneNumber      byte
	RecordType      byte
	RecordFormat    byte

	TempSetpoint            Temperature
	HighTempAlarmOffset     Temperature
	LowTempAlarmOffset      Temperature
	HighTempInhibitOffset   Temperature
	LowTempInhibitOffset    Temperature
	FixedHighTempAlarm      Temperature
	FixedLowTempAlarm       Temperature

	InterlockBits      uint16
	ZoneBits           uint16
	TemperatureControl byte

	HumiditySetpoint    byte
	HumidityOffTime     uint16
	HumidityPurgeTime   uint16

	AnimalAge      uint16
	ProjectedAge   uint16
	Weight         uint16
	BeginHeadCount uint16
	MortalityCount uint16
	SoldCount      uint16

	UsesLongHeadCounts bool
	BeginHeadCountLong uint32
	MortalityCountLong uint32
	SoldCountLong      uint32

	RawData string
}

// zoneParametersMinBytes is the record's fixed-length prefix, in bytes,
// before the optional long-head-count tail (spec.md §3, "long head
// counts exist only when record_format >= 3").
const zoneParametersMinBytes = 42

// zoneLongHeadCountBytes is the size of the optional 32-bit head-count
// tail.
const zoneLongHeadCountBytes = 12

// ParseZoneParameters decodes a zone parameter record from its
// hex-ASCII payload (spec.md §4.5).
func ParseZoneParameters(payloadHex string) (*ZoneParameters, error) {
	if len(payloadHex) < zoneParametersMinBytes*2 {
		return nil, newParseError("ZoneParameters", 0, "payload too short: %d chars, need at least %d", len(payloadHex), zoneParametersMinBytes*2)
	}

	cur := NewHexCursor(payloadHex, Swap)
	hdr, err := readRecordHeader(cur)
	if err != nil {
		return nil, err
	}
	if err := validateRecordSize("ZoneParameters", hdr.RecordSizeWords, payloadHex); err != nil {
		return nil, err
	}
	if hdr.ID < 1 || hdr.ID > 9 {
		return nil, newParseError("ZoneParameters", cur.Position(), "zone number %d out of range 1..9", hdr.ID)
	}
	temperatureControl, err := cur.ReadByte() // temperature_control byte, right after record_format
	if err != nil {
		return nil, err
	}

	readTemp := func() (Temperature, error) {
		v, err := cur.ReadInt16()
		return TemperatureFromRaw(v), err
	}

	tempSetpoint, err := readTemp()
	if err != nil {
		return nil, err
	}
	highTempAlarmOffset, err := readTemp()
	if err != nil {
		return nil, err
	}
	lowTempAlarmOffset, err := readTemp()
	if err != nil {
		return nil, err
	}
	highTempInhibitOffset, err := readTemp()
	if err != nil {
		return nil, err
	}
	lowTempInhibitOffset, err := readTemp()
	if err != nil {
		return nil, err
	}
	fixedHighTempAlarm, err := readTemp()
	if err != nil {
		return nil, err
	}
	fixedLowTempAlarm, err := readTemp()
	if err != nil {
		return nil, err
	}

	interlockBits, err := cur.ReadUint16()
	if err != nil {
		return nil, err
	}
	zoneBits, err := cur.ReadUint16()
	if err != nil {
		return nil, err
	}

	humiditySetpoint, err := cur.ReadByte()
	if err != nil {
		return nil, err
	}
	if err := cur.SkipBytes(1); err != nil { // padding
		return nil, err
	}
	humidityOffTime, err := cur.ReadUint16()
	if err != nil {
		return nil, err
	}
	humidityPurgeTime, err := cur.ReadUint16()
	if err != nil {
		return nil, err
	}

	animalAge, err := cur.ReadUint16()
	if err != nil {
		return nil, err
	}
	projectedAge, err := cur.ReadUint16()
	if err != nil {
		return nil, err
	}
	weight, err := cur.ReadUint16()
	if err != nil {
		return nil, err
	}
	beginHeadCount, err := cur.ReadUint16()
	if err != nil {
		return nil, err
	}
	mortalityCount, err := cur.ReadUint16()
	if err != nil {
		return nil, err
	}
	soldCount, err := cur.ReadUint16()
	if err != nil {
		return nil, err
	}

	zp := &ZoneParameters{
		RecordSizeWords:         hdr.RecordSizeWords,
		ZoneNumber:              hdr.ID,
		RecordType:              hdr.RecordType,
		RecordFormat:            hdr.RecordFormat,
		TempSetpoint:            tempSetpoint,
		HighTempAlarmOffset:     highTempAlarmOffset,
		LowTempAlarmOffset:      lowTempAlarmOffset,
		HighTempInhibitOffset:   highTempInhibitOffset,
		LowTempInhibitOffset:    lowTempInhibitOffset,
		FixedHighTempAlarm:      fixedHighTempAlarm,
		FixedLowTempAlarm:       fixedLowTempAlarm,
		InterlockBits:           interlockBits,
		ZoneBits:                zoneBits,
		TemperatureControl:      temperatureControl,
		HumiditySetpoint:        humiditySetpoint,
		HumidityOffTime:         humidityOffTime,
		HumidityPurgeTime:       humidityPurgeTime,
		AnimalAge:               animalAge,
		ProjectedAge:            projectedAge,
		Weight:                  weight,
		BeginHeadCount:          beginHeadCount,
		MortalityCount:          mortalityCount,
		SoldCount:               soldCount,
		RawData:                 payloadHex,
	}

	if hdr.RecordFormat >= 3 && cur.Remaining() >= zoneLongHeadCountBytes*2 {
		zp.UsesLongHeadCounts = true
		if zp.BeginHeadCountLong, err = cur.ReadUint32(); err != nil {
			return nil, err
		}
		if zp.MortalityCountLong, err = cur.ReadUint32(); err != nil {
			return nil, err
		}
		if zp.SoldCountLong, err = cur.ReadUint32(); err != nil {
			return nil, err
		}
	}

	return zp, nil
}

// ZoneVariables is a zone's real-time runtime state (spec.md §3).
type ZoneVariables struct {
	RecordSizeWords int
	ZoneNumber      byte
	RecordType      byte
	RecordFormat    byte

	ActualTemperature   Temperature
	SetpointTemperature Temperature
	OutsideTemperature  Temperature
	ActualHumidity      byte

	CurrentAgeDays    uint16
	LightsOnMinutes   uint16
	LightsOffMinutes  uint16

	AlarmStatus uint16
	ZoneStatus  uint16

	RawData string
}

const zoneVariablesMinBytes = 24

// ParseZoneVariables decodes a zone variable record from its hex-ASCII
// payload.
func ParseZoneVariables(payloadHex string) (*ZoneVariables, error) {
	if len(payloadHex) < zoneVariablesMinBytes*2 {
		return nil, newParseError("ZoneVariables", 0, "payload too short: %d chars, need at least %d", len(payloadHex), zoneVariablesMinBytes*2)
	}

	cur := NewHexCursor(payloadHex, Swap)
	hdr, err := readRecordHeader(cur)
	if err != nil {
		return nil, err
	}
	if err := validateRecordSize("ZoneVariables", hdr.RecordSizeWords, payloadHex); err != nil {
		return nil, err
	}
	if hdr.ID < 1 || hdr.ID > 9 {
		return nil, newParseError("ZoneVariables", cur.Position(), "zone number %d out of range 1..9", hdr.ID)
	}
	if err := cur.SkipBytes(1); err != nil { // padding after record_format
		return nil, err
	}

	actualTemp, err := cur.ReadInt16()
	if err != nil {
		return nil, err
	}
	setpointTemp, err := cur.ReadInt16()
	if err != nil {
		return nil, err
	}
	outsideTemp, err := cur.ReadInt16()
	if err != nil {
		return nil, err
	}
	actualHumidity, err := cur.ReadByte()
	if err != nil {
		return nil, err
	}
	if err := cur.SkipBytes(1); err != nil { // padding
		return nil, err
	}
	currentAgeDays, err := cur.ReadUint16()
	if err != nil {
		return nil, err
	}
	lightsOnMinutes, err := cur.ReadUint16()
	if err != nil {
		return nil, err
	}
	lightsOffMinutes, err := cur.ReadUint16()
	if err != nil {
		return nil, err
	}
	alarmStatus, err := cur.ReadUint16()
	if err != nil {
		return nil, err
	}
	zoneStatus, err := cur.ReadUint16()
	if err != nil {
		return nil, err
	}

	return &ZoneVariables{
		RecordSizeWords:     hdr.RecordSizeWords,
		ZoneNumber:          hdr.ID,
		RecordType:          hdr.RecordType,
		RecordFormat:        hdr.RecordFormat,
		ActualTemperature:   TemperatureFromRaw(actualTemp),
		SetpointTemperature: TemperatureFromRaw(setpointTemp),
		OutsideTemperature:  TemperatureFromRaw(outsideTemp),
		ActualHumidity:      actualHumidity,
		CurrentAgeDays:      currentAgeDays,
		LightsOnMinutes:     lightsOnMinutes,
		LightsOffMinutes:    lightsOffMinutes,
		AlarmStatus:         alarmStatus,
		ZoneStatus:          zoneStatus,
		RawData:             payloadHex,
	}, nil
}
