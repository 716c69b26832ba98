package home

// DefaultInventory is the built-in device set jarvis manages. The tool
// catalogue has no operation for adding devices, so this seed is the
// entire home: every supported type is represented across the rooms.
func DefaultInventory() []Device {
	return []Device{
		{
			Name: "Living Room Light", Type: TypeLight, Status: StatusOff, Room: "Living Room",
			Settings: Settings{"brightness": Number(80), "color": Text("warm white")},
		},
		{
			Name: "Bedroom Light", Type: TypeLight, Status: StatusOff, Room: "Bedroom",
			Settings: Settings{"brightness": Number(60), "color": Text("soft white")},
		},
		{
			Name: "Hallway Thermostat", Type: TypeThermostat, Status: StatusOn, Room: "Hallway",
			Settings: Settings{"temperature": Number(21.5), "mode": Text("auto")},
		},
		{
			Name: "Front Door Lock", Type: TypeLock, Status: StatusOn, Room: "Entrance",
			Settings: Settings{"locked": Flag(true)},
		},
		{
			Name: "Back Door Lock", Type: TypeLock, Status: StatusOn, Room: "Kitchen",
			Settings: Settings{"locked": Flag(true)},
		},
		{
			Name: "Front Door Camera", Type: TypeCamera, Status: StatusOn, Room: "Entrance",
			Settings: Settings{"recording": Flag(true), "motion_detection": Flag(true)},
		},
		{
			Name: "Living Room Speaker", Type: TypeSpeaker, Status: StatusOff, Room: "Living Room",
			Settings: Settings{"volume": Number(35)},
		},
		{
			Name: "Bedroom Blinds", Type: TypeBlinds, Status: StatusOff, Room: "Bedroom",
			Settings: Settings{"position": Number(100)},
		},
	}
}
