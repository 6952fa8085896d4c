package profile

import "github.com/aldas/go-fit-decoder/internal/semicircle"

// Global message numbers for the subset of the FIT profile this module
// understands. Names follow the upstream Garmin SDK's MesgNum table.
const (
	MesgNumFileId           uint16 = 0
	MesgNumLap              uint16 = 19
	MesgNumRecord           uint16 = 20
	MesgNumEvent            uint16 = 21
	MesgNumDeviceInfo       uint16 = 23
	MesgNumWorkout          uint16 = 26
	MesgNumWorkoutStep      uint16 = 27
	MesgNumCourse           uint16 = 31
	MesgNumActivity         uint16 = 34
	MesgNumSession          uint16 = 18
	MesgNumFieldDescription uint16 = 206
	MesgNumDeveloperDataId  uint16 = 207
)

// Universal field number shared by every message that carries one: the
// FIT profile reserves 253 for Timestamp across all message types, which
// is what lets a decoder recognise a compressed-timestamp header's
// target field without per-message special-casing.
const FieldNumTimestamp uint8 = 253

// fieldScaleSemicircles converts between the wire's signed 32-bit
// semicircle units and degrees: degrees = raw / (2^31 / 180). Expressed
// as a profile scale so the generic numeric post-processing path handles
// position fields without a special case, reusing the same conversion
// factor semicircle.ToDegrees/FromDegrees use.
const fieldScaleSemicircles = semicircle.PerDegree

var defaultMessages = []MesgDef{
	{
		Num:  MesgNumFileId,
		Name: "FileId",
		Fields: []FieldDef{
			{Num: 0, Name: "Type", Enum: "file_type"},
			{Num: 1, Name: "Manufacturer", Enum: "manufacturer"},
			{Num: 2, Name: "Number"},
			// Field numbers 3 and 7 are independent, non-colliding entries.
			{Num: 3, Name: "Product"},
			{Num: 4, Name: "TimeCreated"},
			{Num: 5, Name: "SerialNumber"},
			{Num: 7, Name: "ProductName"},
		},
	},
	{
		Num:  MesgNumRecord,
		Name: "Record",
		Fields: []FieldDef{
			{Num: FieldNumTimestamp, Name: "Timestamp"},
			{Num: 0, Name: "PositionLat", Scale: fieldScaleSemicircles},
			{Num: 1, Name: "PositionLong", Scale: fieldScaleSemicircles},
			{Num: 2, Name: "Altitude", Scale: 5, Offset: 500},
			{Num: 3, Name: "HeartRate"},
			{Num: 4, Name: "Cadence"},
			{Num: 5, Name: "Distance", Scale: 100},
			{Num: 6, Name: "Speed", Scale: 1000},
			{Num: 7, Name: "Power"},
			{Num: 13, Name: "Temperature"},
			{Num: 31, Name: "GpsAccuracy"},
			{Num: 73, Name: "EnhancedSpeed", Scale: 1000},
			{Num: 78, Name: "EnhancedAltitude", Scale: 5, Offset: 500},
		},
	},
	{
		Num:  MesgNumEvent,
		Name: "Event",
		Fields: []FieldDef{
			{Num: FieldNumTimestamp, Name: "Timestamp"},
			{Num: 0, Name: "Event", Enum: "event"},
			{Num: 1, Name: "EventType", Enum: "event_type"},
			{Num: 2, Name: "EventGroup"},
			{
				Num:  3,
				Name: "Data",
				Subfields: []SubfieldDef{
					{Name: "FrontGearChangeData", References: []SubfieldRef{{FieldName: "Event", Value: 42}}},
					{Name: "RearGearChangeData", References: []SubfieldRef{{FieldName: "Event", Value: 74}}},
				},
			},
		},
	},
	{
		Num:  MesgNumDeviceInfo,
		Name: "DeviceInfo",
		Fields: []FieldDef{
			{Num: FieldNumTimestamp, Name: "Timestamp"},
			{Num: 0, Name: "DeviceIndex"},
			{Num: 1, Name: "DeviceType"},
			{Num: 2, Name: "Manufacturer", Enum: "manufacturer"},
			{Num: 3, Name: "SerialNumber"},
			{Num: 4, Name: "Product"},
			{Num: 5, Name: "SoftwareVersion", Scale: 100},
			{Num: 10, Name: "BatteryVoltage", Scale: 256},
			{Num: 25, Name: "BatteryStatus", Enum: "battery_status"},
		},
	},
	{
		Num:  MesgNumLap,
		Name: "Lap",
		Fields: []FieldDef{
			{Num: FieldNumTimestamp, Name: "Timestamp"},
			{Num: 2, Name: "StartTime"},
			{Num: 7, Name: "TotalElapsedTime", Scale: 1000},
			{Num: 8, Name: "TotalTimerTime", Scale: 1000},
			{Num: 9, Name: "TotalDistance", Scale: 100},
			{Num: 11, Name: "TotalCalories"},
			{Num: 15, Name: "AvgHeartRate"},
			{Num: 16, Name: "MaxHeartRate"},
			{Num: 19, Name: "AvgCadence"},
			{Num: 20, Name: "MaxCadence"},
		},
	},
	{
		Num:  MesgNumSession,
		Name: "Session",
		Fields: []FieldDef{
			{Num: FieldNumTimestamp, Name: "Timestamp"},
			{Num: 2, Name: "StartTime"},
			{Num: 5, Name: "Sport", Enum: "sport"},
			{Num: 6, Name: "SubSport", Enum: "sub_sport"},
			{Num: 7, Name: "TotalElapsedTime", Scale: 1000},
			{Num: 8, Name: "TotalTimerTime", Scale: 1000},
			{Num: 9, Name: "TotalDistance", Scale: 100},
			{Num: 11, Name: "TotalCalories"},
			{Num: 14, Name: "AvgSpeed", Scale: 1000},
			{Num: 15, Name: "MaxSpeed", Scale: 1000},
			{Num: 16, Name: "AvgHeartRate"},
			{Num: 17, Name: "MaxHeartRate"},
			{Num: 20, Name: "AvgCadence"},
			{Num: 21, Name: "MaxCadence"},
			{Num: 41, Name: "AvgPower"},
			{Num: 42, Name: "MaxPower"},
		},
	},
	{
		Num:  MesgNumActivity,
		Name: "Activity",
		Fields: []FieldDef{
			{Num: FieldNumTimestamp, Name: "Timestamp"},
			{Num: 0, Name: "TotalTimerTime", Scale: 1000},
			{Num: 1, Name: "NumSessions"},
			{Num: 2, Name: "Type", Enum: "activity"},
			{Num: 3, Name: "Event", Enum: "event"},
			{Num: 4, Name: "EventType", Enum: "event_type"},
			{Num: 5, Name: "LocalTimestamp"},
			{Num: 6, Name: "EventGroup"},
		},
	},
	{
		Num:  MesgNumCourse,
		Name: "Course",
		Fields: []FieldDef{
			{Num: 4, Name: "Name"},
			{Num: 5, Name: "Capabilities"},
			{Num: 6, Name: "Sport", Enum: "sport"},
		},
	},
	{
		Num:  MesgNumWorkout,
		Name: "Workout",
		Fields: []FieldDef{
			{Num: 4, Name: "Sport", Enum: "sport"},
			{Num: 5, Name: "Capabilities"},
			{Num: 6, Name: "NumValidSteps"},
			{Num: 8, Name: "WorkoutName"},
		},
	},
	{
		Num:  MesgNumWorkoutStep,
		Name: "WorkoutStep",
		Fields: []FieldDef{
			{Num: 254, Name: "MessageIndex"},
			{Num: 0, Name: "WktStepName"},
			{Num: 1, Name: "DurationType"},
			{Num: 2, Name: "DurationValue"},
			{Num: 3, Name: "TargetType"},
			{Num: 4, Name: "TargetValue"},
			{Num: 5, Name: "CustomTargetValueLow"},
			{Num: 6, Name: "CustomTargetValueHigh"},
			{Num: 8, Name: "Intensity"},
		},
	},
	{
		Num:  MesgNumFieldDescription,
		Name: "FieldDescription",
		Fields: []FieldDef{
			{Num: 0, Name: "DeveloperDataIndex"},
			{Num: 1, Name: "FieldDefinitionNumber"},
			{Num: 2, Name: "FitBaseTypeId"},
			{Num: 3, Name: "FieldName"},
			{Num: 4, Name: "Array"},
			{Num: 5, Name: "Components"},
			{Num: 6, Name: "Scale"},
			{Num: 7, Name: "Offset"},
			{Num: 8, Name: "Units"},
			{Num: 9, Name: "Bits"},
			{Num: 10, Name: "Accumulate"},
			{Num: 13, Name: "NativeMesgNum"},
			{Num: 14, Name: "NativeFieldNum"},
		},
	},
	{
		Num:  MesgNumDeveloperDataId,
		Name: "DeveloperDataId",
		Fields: []FieldDef{
			{Num: 0, Name: "DeveloperId"},
			{Num: 1, Name: "ApplicationId"},
			{Num: 3, Name: "ManufacturerId"},
			{Num: 4, Name: "DeveloperDataIndex"},
			{Num: 5, Name: "ApplicationVersion"},
		},
	},
}
