package pcmi

// This file registers the built-in decoders for the closed set of
// device types known to current controller firmware (spec.md §4.6).
// Three reusable field layouts cover all of them, grounded on the
// reference client's per-device parsers: a simple sensor shape (air
// sensor, humidity sensor, feed/water/static/digital/position sensors,
// gas sensor), a staged-actuator shape shared by fans, heaters, vents
// and similar climate equipment, and a plain on/off shape for timers,
// switches and lighting.

// SensorParameters is the parameter layout shared by every simple
// sensor device type (grounded on the reference air-sensor strategy).
type SensorParameters struct {
	Header            DeviceRecordHeader
	NameIndex         uint16
	CalibrationOffset Temperature
	SensorType        byte
	RawData           string
}

// SensorVariables is the variable layout shared by every simple sensor
// device type.
type SensorVariables struct {
	Header  DeviceRecordHeader
	Reading Temperature
	Status  uint16
	RawData string
}

func parseSensorParameters(cur *HexCursor, header DeviceRecordHeader, rawData string) (any, error) {
	nameIndex, err := cur.ReadUint16()
	if err != nil {
		return nil, err
	}
	calibration, err := cur.ReadInt16()
	if err != nil {
		return nil, err
	}
	sensorType, err := cur.ReadByte()
	if err != nil {
		return nil, err
	}
	return &SensorParameters{
		Header:            header,
		NameIndex:         nameIndex,
		CalibrationOffset: TemperatureFromRaw(calibration),
		SensorType:        sensorType,
		RawData:           rawData,
	}, nil
}

func parseSensorVariables(cur *HexCursor, header DeviceRecordHeader, rawData string) (any, error) {
	reading, err := cur.ReadInt16()
	if err != nil {
		return nil, err
	}
	status, err := cur.ReadUint16()
	if err != nil {
		return nil, err
	}
	return &SensorVariables{
		Header:  header,
		Reading: TemperatureFromRaw(reading),
		Status:  status,
		RawData: rawData,
	}, nil
}

// ActuatorMode is a staged actuator's operating mode (grounded on the
// reference fan strategy's FanMode).
type ActuatorMode byte

const (
	ActuatorModeOff     ActuatorMode = 0
	ActuatorModeAuto    ActuatorMode = 1
	ActuatorModeOn      ActuatorMode = 2
	ActuatorModeTimer   ActuatorMode = 3
	ActuatorModeMinimum ActuatorMode = 4
)

// ActuatorParameters is the parameter layout shared by staged climate
// equipment: fans, heaters, vents, curtains and similar devices.
type ActuatorParameters struct {
	Header         DeviceRecordHeader
	NameIndex      uint16
	StageNumber    byte
	OnTempOffset   Temperature
	OffTempOffset  Temperature
	MinOnTime      uint16
	MinOffTime     uint16
	StagingDelay   uint16
	Mode           ActuatorMode
	OutputRating   uint16
	ControlBits    uint16
	RawData        string
}

// ActuatorVariables is the variable layout shared by staged climate
// equipment.
type ActuatorVariables struct {
	Header         DeviceRecordHeader
	Status         uint16
	RuntimeToday   uint16
	RuntimeTotal   uint16
	CyclesToday    uint16
	CurrentStage   byte
	RemainingDelay uint16
	RawData        string
}

func parseActuatorParameters(cur *HexCursor, header DeviceRecordHeader, rawData string) (any, error) {
	nameIndex, err := cur.ReadUint16()
	if err != nil {
		return nil, err
	}
	stageNumber, err := cur.ReadByte()
	if err != nil {
		return nil, err
	}
	if err := cur.SkipBytes(1); err != nil { // reserved
		return nil, err
	}
	onOffset, err := cur.ReadInt16()
	if err != nil {
		return nil, err
	}
	offOffset, err := cur.ReadInt16()
	if err != nil {
		return nil, err
	}
	minOnTime, err := cur.ReadUint16()
	if err != nil {
		return nil, err
	}
	minOffTime, err := cur.ReadUint16()
	if err != nil {
		return nil, err
	}
	stagingDelay, err := cur.ReadUint16()
	if err != nil {
		return nil, err
	}
	mode, err := cur.ReadByte()
	if err != nil {
		return nil, err
	}
	if err := cur.SkipBytes(1); err != nil { // reserved
		return nil, err
	}
	outputRating, err := cur.ReadUint16()
	if err != nil {
		return nil, err
	}
	controlBits, err := cur.ReadUint16()
	if err != nil {
		return nil, err
	}

	return &ActuatorParameters{
		Header:        header,
		NameIndex:     nameIndex,
		StageNumber:   stageNumber,
		OnTempOffset:  TemperatureFromRaw(onOffset),
		OffTempOffset: TemperatureFromRaw(offOffset),
		MinOnTime:     minOnTime,
		MinOffTime:    minOffTime,
		StagingDelay:  stagingDelay,
		Mode:          ActuatorMode(mode),
		OutputRating:  outputRating,
		ControlBits:   controlBits,
		RawData:       rawData,
	}, nil
}

func parseActuatorVariables(cur *HexCursor, header DeviceRecordHeader, rawData string) (any, error) {
	status, err := cur.ReadUint16()
	if err != nil {
		return nil, err
	}
	runtimeToday, err := cur.ReadUint16()
	if err != nil {
		return nil, err
	}
	runtimeTotal, err := cur.ReadUint16()
	if err != nil {
		return nil, err
	}
	cyclesToday, err := cur.ReadUint16()
	if err != nil {
		return nil, err
	}
	currentStage, err := cur.ReadByte()
	if err != nil {
		return nil, err
	}
	if err := cur.SkipBytes(1); err != nil { // reserved
		return nil, err
	}
	remainingDelay, err := cur.ReadUint16()
	if err != nil {
		return nil, err
	}

	return &ActuatorVariables{
		Header:         header,
		Status:         status,
		RuntimeToday:   runtimeToday,
		RuntimeTotal:   runtimeTotal,
		CyclesToday:    cyclesToday,
		CurrentStage:   currentStage,
		RemainingDelay: remainingDelay,
		RawData:        rawData,
	}, nil
}

// OnOffParameters is the parameter layout shared by simple on/off
// devices: timers, switches, and lighting controls.
type OnOffParameters struct {
	Header      DeviceRecordHeader
	NameIndex   uint16
	OnDelay     uint16
	OffDelay    uint16
	ControlBits uint16
	RawData     string
}

// OnOffVariables is the variable layout shared by simple on/off
// devices.
type OnOffVariables struct {
	Header       DeviceRecordHeader
	Status       byte
	RuntimeToday uint16
	CyclesToday  uint16
	RawData      string
}

func parseOnOffParameters(cur *HexCursor, header DeviceRecordHeader, rawData string) (any, error) {
	nameIndex, err := cur.ReadUint16()
	if err != nil {
		return nil, err
	}
	onDelay, err := cur.ReadUint16()
	if err != nil {
		return nil, err
	}
	offDelay, err := cur.ReadUint16()
	if err != nil {
		return nil, err
	}
	controlBits, err := cur.ReadUint16()
	if err != nil {
		return nil, err
	}
	return &OnOffParameters{
		Header:      header,
		NameIndex:   nameIndex,
		OnDelay:     onDelay,
		OffDelay:    offDelay,
		ControlBits: controlBits,
		RawData:     rawData,
	}, nil
}

func parseOnOffVariables(cur *HexCursor, header DeviceRecordHeader, rawData string) (any, error) {
	status, err := cur.ReadByte()
	if err != nil {
		return nil, err
	}
	if err := cur.SkipBytes(1); err != nil { // reserved
		return nil, err
	}
	runtimeToday, err := cur.ReadUint16()
	if err != nil {
		return nil, err
	}
	cyclesToday, err := cur.ReadUint16()
	if err != nil {
		return nil, err
	}
	return &OnOffVariables{
		Header:       header,
		Status:       status,
		RuntimeToday: runtimeToday,
		CyclesToday:  cyclesToday,
		RawData:      rawData,
	}, nil
}

var sensorDeviceTypes = []DeviceType{
	DeviceTypeAirSensor,
	DeviceTypeHumiditySensor,
	DeviceTypeFeedSensor,
	DeviceTypeWaterSensor,
	DeviceTypeStaticSensor,
	DeviceTypeDigitalSensor,
	DeviceTypePositionSensor,
	DeviceTypeGasSensor,
}

var actuatorDeviceTypes = []DeviceType{
	DeviceTypeInlet,
	DeviceTypeCurtain,
	DeviceTypeRidgeVent,
	DeviceTypeHeater,
	DeviceTypeCoolpad,
	DeviceTypeFan,
	DeviceTypeChimney,
	DeviceTypeVariableHeater,
	DeviceTypeVFDFan,
}

var onOffDeviceTypes = []DeviceType{
	DeviceTypeTimed,
	DeviceTypeSwitch,
	DeviceTypeV10Lights,
}

func registerBuiltinDeviceStrategies(r *DeviceParserRegistry) {
	for _, t := range sensorDeviceTypes {
		r.RegisterParameterStrategy(t, parseSensorParameters)
		r.RegisterVariableStrategy(t, parseSensorVariables)
	}
	for _, t := range actuatorDeviceTypes {
		r.RegisterParameterStrategy(t, parseActuatorParameters)
		r.RegisterVariableStrategy(t, parseActuatorVariables)
	}
	for _, t := range onOffDeviceTypes {
		r.RegisterParameterStrategy(t, parseOnOffParameters)
		r.RegisterVariableStrategy(t, parseOnOffVariables)
	}
}
