package types

// MetricsCollector defines methods for recording operational metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
// Methods may be called concurrently and must be thread-safe.
//
// This interface composes smaller, domain-focused interfaces for better modularity.
type MetricsCollector interface {
	ServiceMetrics
	EngineMetrics
	StoreMetrics
}

// ServiceMetrics defines metrics for Service operations.
type ServiceMetrics interface {
	// RecordOperation records the outcome of a Service operation.
	//
	// Parameters:
	//   - op: Operation name ("assign", "clear", "reset_history", "reset_all", "add_student", ...)
	//   - success: true if the new state was saved
	//   - duration: Time taken in seconds
	RecordOperation(op string, success bool, duration float64)
}

// EngineMetrics defines metrics for assignment runs.
type EngineMetrics interface {
	// RecordNotice records a notice raised by an assignment run.
	//
	// Parameters:
	//   - kind: NoticeKind label (e.g., "fallback_repeat")
	RecordNotice(kind string)

	// RecordAssignments records the number of assignments made by a run.
	RecordAssignments(count int)

	// RecordCycleRemaining sets the number of students still owed an assignment
	// in the current cycle after a run (gauge metric).
	RecordCycleRemaining(count int)
}

// StoreMetrics defines metrics for persistence operations.
type StoreMetrics interface {
	// RecordStoreOperationDuration records state store latency.
	//
	// Parameters:
	//   - operation: Operation type ("load", "save")
	//   - duration: Time taken in seconds
	RecordStoreOperationDuration(operation string, duration float64)

	// RecordSaveConflict records a save rejected because of a revision conflict.
	RecordSaveConflict()
}
