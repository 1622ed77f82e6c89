package models

// TaskEntry is one ad-hoc task. IDs are unix-millisecond timestamps taken at
// creation, kept unique within a store; list order is append order.
type TaskEntry struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
}
