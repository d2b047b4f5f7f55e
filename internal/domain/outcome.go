package domain

// Status tags every operation result. The set mirrors the wire protocol:
// flows never return errors to their callers, only an Outcome.
type Status string

const (
	StatusSuccess  Status = "SUCCESS"
	StatusFailed   Status = "FAILED"
	StatusPending  Status = "PENDING"
	StatusVerified Status = "VERIFIED"
)

// Outcome is the structured result of every account and verification
// operation: a status tag plus a human-readable message, optionally with
// a data payload. Internal errors are converted to a FAILED Outcome at
// the operation boundary; nothing propagates uncaught past a flow.
type Outcome struct {
	Status  Status `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func Success(message string, data any) Outcome {
	return Outcome{Status: StatusSuccess, Message: message, Data: data}
}

func Failed(message string) Outcome {
	return Outcome{Status: StatusFailed, Message: message}
}

func Pending(message string, data any) Outcome {
	return Outcome{Status: StatusPending, Message: message, Data: data}
}

func Verified(message string) Outcome {
	return Outcome{Status: StatusVerified, Message: message}
}
