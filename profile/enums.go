package profile

// defaultEnums is the compiled-in enum value-to-name table, keyed by
// enum name.
var defaultEnums = map[string]map[uint32]string{
	"file_type": {
		1:  "device",
		2:  "settings",
		4:  "activity",
		6:  "workout",
		14: "course",
		31: "weight",
	},
	"manufacturer": {
		1:   "garmin",
		23:  "wahoo_fitness",
		32:  "quarq",
		89:  "stages_cycling",
		255: "dynastream",
		263: "zwift",
	},
	"sport": {
		0:  "generic",
		1:  "running",
		2:  "cycling",
		5:  "swimming",
		15: "rowing",
	},
	"sub_sport": {
		0:  "generic",
		6:  "indoor_cycling",
		7:  "road",
		14: "virtual_activity",
	},
	"event": {
		0:  "timer",
		3:  "workout",
		4:  "workout_step",
		7:  "lap",
		8:  "course_point",
		9:  "battery",
		10: "virtual_partner_pace",
		42: "front_gear_change",
		74: "rear_gear_change",
	},
	"event_type": {
		0: "start",
		1: "stop",
		2: "consecutive_depreciated",
		3: "marker",
	},
	"activity": {
		0: "manual",
		1: "auto_multi_sport",
	},
	"battery_status": {
		1: "new",
		2: "good",
		3: "ok",
		4: "low",
		5: "critical",
		7: "unknown",
	},
}
