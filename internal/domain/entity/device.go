package entity

// DeviceState is what a device remembers between sessions.
type DeviceState struct {
	Permission PermissionState `json:"permission"`
	Admin      bool            `json:"admin"`
}
