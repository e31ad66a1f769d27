package monitor

// Result tells how far a single cycle got.
type Result string

const (
	ResultReadFailed    Result = "read_failed"
	ResultRejected      Result = "rejected"
	ResultLocked        Result = "locked"
	ResultPersistFailed Result = "persist_failed"
	ResultPersisted     Result = "persisted"
	ResultAlerted       Result = "alerted"
	ResultAlertFailed   Result = "alert_failed"
	ResultPanicked      Result = "panicked"
)
