package errorx

var Unknown = Error{Code: 100000, Message: "Request failed"}

const (
	// Common codes
	BadRequest       Code = 100001
	NotFound         Code = 100002
	Unauthenticated  Code = 100003
	PermissionDenied Code = 100004
	AlreadyExists    Code = 100005
	Internal         Code = 100006
	NotImplemented   Code = 100007

	// RemoteFailure carries a gateway error message verbatim.
	RemoteFailure Code = 200001
)
