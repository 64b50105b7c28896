package shell

// Status is the closed set of outcomes returned by every public operation in
// this package (§4.1). There is no exceptional control flow here: a Status is
// the sole failure channel.
type Status int

// The closed Status taxonomy. Unknown values (outside this set) map to
// "Unknown error" via String.
const (
	StatusOK Status = iota
	StatusGeneric
	StatusInvalidParam
	StatusNotInit
	StatusAlreadyInit
	StatusNoMemory
	StatusNotFound
	StatusAlreadyExists
	StatusNoBackend
	StatusBufferFull

	statusCount // sentinel, not a valid Status value
)

var statusMessages = [statusCount]string{
	StatusOK:            "Success",
	StatusGeneric:       "Generic error",
	StatusInvalidParam:  "Invalid parameter",
	StatusNotInit:       "Shell not initialized",
	StatusAlreadyInit:   "Shell already initialized",
	StatusNoMemory:      "Memory allocation failed",
	StatusNotFound:      "Item not found",
	StatusAlreadyExists: "Item already exists",
	StatusNoBackend:     "No backend configured",
	StatusBufferFull:    "Buffer is full",
}

// String returns a stable, human-readable message for the status. Unknown
// codes return "Unknown error" rather than panicking.
func (s Status) String() string {
	if s < 0 || int(s) >= len(statusMessages) {
		return "Unknown error"
	}
	return statusMessages[s]
}

// OK reports whether the status represents success.
func (s Status) OK() bool {
	return s == StatusOK
}
