package testutil

// Canonical XML metadata documents shared by tests across packages.
const (
	ContentsXML = `<?xml version="1.0" encoding="utf-8"?>
<Contents>
  <Version>2</Version>
  <AcquiredTime>2020-01-24T11:02:10.5-05:00</AcquiredTime>
  <AcqStatus>End</AcqStatus>
  <InstrumentName>Instrument 1</InstrumentName>
  <LockedMode>false</LockedMode>
  <AcqSoftwareVersion>B.08.00</AcqSoftwareVersion>
</Contents>`

	SampleInfoXML = `<?xml version="1.0" encoding="utf-8"?>
<SampleInfo>
  <Version>1</Version>
  <Field>
    <Name>Sample Name</Name>
    <DisplayName>Sample Name</DisplayName>
    <Value>Propellant Std 1ug</Value>
    <DataType>8</DataType>
    <Units></Units>
    <FieldType>Sample</FieldType>
    <Overridden>false</Overridden>
  </Field>
  <Field>
    <Name>Dilution</Name>
    <DisplayName>Dilution</DisplayName>
    <Value>1</Value>
    <DataType>6</DataType>
    <Units></Units>
    <FieldType>Sample</FieldType>
    <Overridden>false</Overridden>
  </Field>
</SampleInfo>`

	DevicesXML = `<?xml version="1.0" encoding="utf-8"?>
<Devices>
  <Version>1</Version>
  <Device>
    <DeviceID>1</DeviceID>
    <DisplayName>QTOF</DisplayName>
    <ModelNumber>G6530B</ModelNumber>
    <OrdinalNumber>1</OrdinalNumber>
    <SerialNumber>SG1234567</SerialNumber>
    <Type>14</Type>
    <StoredDataType>12</StoredDataType>
    <Delay>0</Delay>
    <Vendor>1</Vendor>
  </Device>
  <Device>
    <DeviceID>2</DeviceID>
    <DisplayName>HiP-ALS</DisplayName>
    <ModelNumber>G1367E</ModelNumber>
    <OrdinalNumber>1</OrdinalNumber>
    <SerialNumber>DEBAR01234</SerialNumber>
    <Type>11</Type>
    <StoredDataType>0</StoredDataType>
    <Delay>0</Delay>
    <Vendor>1</Vendor>
  </Device>
</Devices>`

	DeviceConfigInfoXML = `<?xml version="1.0" encoding="utf-8"?>
<DeviceConfigInfo>
  <Device>
    <DeviceID>1</DeviceID>
    <DisplayName>QTOF</DisplayName>
  </Device>
  <Parameter>
    <DeviceID>1</DeviceID>
    <ResourceName>DrivePressure</ResourceName>
    <ResourceID>7</ResourceID>
    <Value>2.1e-05</Value>
    <Units>Torr</Units>
  </Parameter>
  <Parameter>
    <DeviceID>1</DeviceID>
    <ResourceName>RoughPressure</ResourceName>
    <ResourceID>8</ResourceID>
    <Value>2.03</Value>
    <Units>Torr</Units>
  </Parameter>
</DeviceConfigInfo>`

	DefaultMassCalXML = `<?xml version="1.0" encoding="utf-8"?>
<DefaultMassCal>
  <Version>1</Version>
  <Calibration>
    <CalibrationID>1</CalibrationID>
    <DeviceID>1</DeviceID>
    <Step>
      <Number>1</Number>
      <Formula>Traditional</Formula>
      <Coefficients>
        <Coefficient>0.00034</Coefficient>
        <Coefficient>1006.4</Coefficient>
      </Coefficients>
    </Step>
    <Step>
      <Number>2</Number>
      <Formula>Polynomial</Formula>
      <Coefficients>
        <Coefficient>-0.0012</Coefficient>
        <Coefficient>1.0001</Coefficient>
        <Coefficient>3.4e-09</Coefficient>
      </Coefficients>
    </Step>
  </Calibration>
</DefaultMassCal>`

	MSTSXML = `<?xml version="1.0" encoding="utf-8"?>
<TimeSegments>
  <Version>1</Version>
  <IRMStatus>0</IRMStatus>
  <TimeSegment>
    <TimeSegmentID>1</TimeSegmentID>
    <StartTime>0.047</StartTime>
    <EndTime>14.998</EndTime>
    <NumOfScans>1333</NumOfScans>
    <FixedCycleLength>true</FixedCycleLength>
  </TimeSegment>
</TimeSegments>`

	MSActualDefsXML = `<?xml version="1.0" encoding="utf-8"?>
<Actuals>
  <Version>2</Version>
  <Actual>
    <ActualID>660</ActualID>
    <DisplayName>Fragmentor</DisplayName>
    <DataType>6</DataType>
    <DisplayFormat>0</DisplayFormat>
    <DisplayEffects>0</DisplayEffects>
    <DisplayDigits>1</DisplayDigits>
    <Unit>V</Unit>
    <Category>Source</Category>
  </Actual>
  <Actual>
    <ActualID>661</ActualID>
    <DisplayName>Collision Energy</DisplayName>
    <DataType>6</DataType>
    <DisplayFormat>0</DisplayFormat>
    <DisplayEffects>0</DisplayEffects>
    <DisplayDigits>1</DisplayDigits>
    <Unit>V</Unit>
    <Category>Collision Cell</Category>
  </Actual>
</Actuals>`

	AcqMethodXML = `<?xml version="1.0" encoding="utf-8"?>
<AcqMethod>
  <Version>1</Version>
  <Name>propellant_1ug.m</Name>
  <Filename>propellant_1ug.m</Filename>
  <Device>
    <Name>QTOF</Name>
    <DeviceID>1</DeviceID>
    <Parameter>
      <ID>1</ID>
      <DisplayName>Gas Temp</DisplayName>
      <Value>325</Value>
      <Units>C</Units>
    </Parameter>
    <Parameter>
      <ID>2</ID>
      <DisplayName>Drying Gas</DisplayName>
      <Value>10</Value>
      <Units>l/min</Units>
    </Parameter>
  </Device>
</AcqMethod>`
)

// AllMetadataDocs maps every well-known XML document name to its canonical
// fixture content.
func AllMetadataDocs() map[string]string {
	return map[string]string{
		"Contents.xml":         ContentsXML,
		"sample_info.xml":      SampleInfoXML,
		"Devices.xml":          DevicesXML,
		"DeviceConfigInfo.xml": DeviceConfigInfoXML,
		"DefaultMassCal.xml":   DefaultMassCalXML,
		"MSTS.xml":             MSTSXML,
		"MSActualDefs.xml":     MSActualDefsXML,
		"AcqMethod.xml":        AcqMethodXML,
	}
}
