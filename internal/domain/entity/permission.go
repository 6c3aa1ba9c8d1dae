package entity

// PermissionState is the consent state for system notifications.
type PermissionState string

const (
	PermissionDefault     PermissionState = "default" // Undecided; a prompt is still possible.
	PermissionGranted     PermissionState = "granted"
	PermissionDenied      PermissionState = "denied"
	PermissionUnsupported PermissionState = "unsupported"
)

// ParsePermissionState maps a reported permission string to a state.
func ParsePermissionState(raw string) PermissionState {
	switch state := PermissionState(raw); state {
	case PermissionGranted, PermissionDenied, PermissionUnsupported:
		return state
	default:
		return PermissionDefault
	}
}

// Decided reports whether the user has already answered the prompt.
func (s PermissionState) Decided() bool {
	return s == PermissionGranted || s == PermissionDenied
}
