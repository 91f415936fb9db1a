package pcmi

// DeviceType identifies the kind of equipment a device record describes
// (spec.md §4.6). Values above 16 skip a reserved range left unused by
// current controller firmware.
type DeviceType byte

const (
	DeviceTypeUnknown DeviceType = 0

	DeviceTypeAirSensor      DeviceType = 1
	DeviceTypeHumiditySensor DeviceType = 2
	DeviceTypeInlet          DeviceType = 3
	DeviceTypeCurtain        DeviceType = 4
	DeviceTypeRidgeVent      DeviceType = 5
	DeviceTypeHeater         DeviceType = 6
	DeviceTypeCoolpad        DeviceType = 7
	DeviceTypeFan            DeviceType = 8
	DeviceTypeTimed          DeviceType = 9
	DeviceTypeFeedSensor     DeviceType = 10
	DeviceTypeWaterSensor    DeviceType = 11
	DeviceTypeStaticSensor   DeviceType = 12
	DeviceTypeDigitalSensor  DeviceType = 13
	DeviceTypePositionSensor DeviceType = 14
	DeviceTypeChimney        DeviceType = 15
	DeviceTypeSwitch         DeviceType = 16

	// 17..24 reserved, unused by current firmware.

	DeviceTypeVariableHeater DeviceType = 25
	DeviceTypeVFDFan         DeviceType = 26
	DeviceTypeV10Lights      DeviceType = 27
	DeviceTypeGasSensor      DeviceType = 28
)

var deviceTypeNames = map[DeviceType]string{
	DeviceTypeUnknown:        "Unknown",
	DeviceTypeAirSensor:      "AirSensor",
	DeviceTypeHumiditySensor: "HumiditySensor",
	DeviceTypeInlet:          "Inlet",
	DeviceTypeCurtain:        "Curtain",
	DeviceTypeRidgeVent:      "RidgeVent",
	DeviceTypeHeater:         "Heater",
	DeviceTypeCoolpad:        "Coolpad",
	DeviceTypeFan:            "Fan",
	DeviceTypeTimed:          "Timed",
	DeviceTypeFeedSensor:     "FeedSensor",
	DeviceTypeWaterSensor:    "WaterSensor",
	DeviceTypeStaticSensor:   "StaticSensor",
	DeviceTypeDigitalSensor:  "DigitalSensor",
	DeviceTypePositionSensor: "PositionSensor",
	DeviceTypeChimney:        "Chimney",
	DeviceTypeSwitch:         "Switch",
	DeviceTypeVariableHeater: "VariableHeater",
	DeviceTypeVFDFan:         "VFDFan",
	DeviceTypeV10Lights:      "V10Lights",
	DeviceTypeGasSensor:      "GasSensor",
}

func (d DeviceType) String() string {
	if name, ok := deviceTypeNames[d]; ok {
		return name
	}
	return "Unknown"
}

// Known reports whether d is one of the registered device types, as
// opposed to an unrecognized byte the controller sent.
func (d DeviceType) Known() bool {
	_, ok := deviceTypeNames[d]
	return ok && d != DeviceTypeUnknown
}

// DeviceRecordHeader is the 8-byte prefix shared by every device
// parameter and variable record (spec.md §4.5 item "Device records
// additionally..."). The cursor is already rebound to the record's
// endian strategy by the time this returns.
type DeviceRecordHeader struct {
	RecordSizeWords int
	ZoneNumber      byte
	RecordType      byte
	RecordFormat    byte
	DeviceType      DeviceType
	ModuleAddress   byte
	ChannelNumber   byte
}

func readDeviceRecordHeader(cur *HexCursor) (*DeviceRecordHeader, error) {
	hdr, err := readRecordHeader(cur)
	if err != nil {
		return nil, err
	}
	deviceTypeByte, err := cur.ReadByte()
	if err != nil {
		return nil, err
	}
	moduleAddress, err := cur.ReadByte()
	if err != nil {
		return nil, err
	}
	channelNumber, err := cur.ReadByte()
	if err != nil {
		return nil, err
	}

	return &DeviceRecordHeader{
		RecordSizeWords: hdr.RecordSizeWords,
		ZoneNumber:      hdr.ID,
		RecordType:      hdr.RecordType,
		RecordFormat:    hdr.RecordFormat,
		DeviceType:      DeviceType(deviceTypeByte),
		ModuleAddress:   moduleAddress,
		ChannelNumber:   channelNumber,
	}, nil
}

// GenericDeviceParameters is the fallback parameter record for a device
// type with no registered strategy: the raw sub-payload is preserved so
// callers can still inspect it (spec.md §4.5 item 4).
type GenericDeviceParameters struct {
	Header  DeviceRecordHeader
	RawData string
}

// GenericDeviceVariables is the fallback variable record, mirroring
// GenericDeviceParameters.
type GenericDeviceVariables struct {
	Header  DeviceRecordHeader
	RawData string
}

// ParseDeviceParameters decodes a device parameter record, consulting
// registry for a device-type-specific strategy and falling back to
// GenericDeviceParameters when none is registered.
func ParseDeviceParameters(payloadHex string, strategy EndianStrategy, registry *DeviceParserRegistry) (any, error) {
	cur := NewHexCursor(payloadHex, strategy)
	header, err := readDeviceRecordHeader(cur)
	if err != nil {
		return nil, err
	}
	if err := validateRecordSize("DeviceParameters", header.RecordSizeWords, payloadHex); err != nil {
		return nil, err
	}

	if s, ok := registry.ParameterStrategy(header.DeviceType); ok {
		return s(cur, *header, payloadHex)
	}
	return &GenericDeviceParameters{Header: *header, RawData: payloadHex}, nil
}

// ParseDeviceVariables decodes a device variable record, analogous to
// ParseDeviceParameters.
func ParseDeviceVariables(payloadHex string, strategy EndianStrategy, registry *DeviceParserRegistry) (any, error) {
	cur := NewHexCursor(payloadHex, strategy)
	header, err := readDeviceRecordHeader(cur)
	if err != nil {
		return nil, err
	}
	if err := validateRecordSize("DeviceVariables", header.RecordSizeWords, payloadHex); err != nil {
		return nil, err
	}

	if s, ok := registry.VariableStrategy(header.DeviceType); ok {
		return s(cur, *header, payloadHex)
	}
	return &GenericDeviceVariables{Header: *header, RawData: payloadHex}, nil
}
