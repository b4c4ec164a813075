package usefulerror

// Error codes shared across the project. These are human friendly identifiers
// and intentionally do not follow posix error codes. Reuse before adding.
const (
	ErrCodeInvalidArgument  = "InvalidArgument"
	ErrCodePermissionDenied = "PermissionDenied"
	ErrCodeNotFound         = "NotFound"
	ErrCodeTimeout          = "Timeout"
	ErrCodeCanceled         = "Canceled"
	ErrCodeUnexpectedEOF    = "UnexpectedEOF"
	ErrCodeUnknown          = "Unknown"
	ErrCodeNetwork          = "Network"
	ErrCodeManifestInvalid  = "ManifestInvalid"
	ErrCodeConfigInvalid    = "ConfigInvalid"
)
