package constants

type EventType string

const (
	EventCreated         EventType = "CREATED"
	EventStatusChanged   EventType = "STATUS_CHANGED"
	EventPriorityChanged EventType = "PRIORITY_CHANGED"
	EventAssigned        EventType = "ASSIGNED"
	EventFieldsUpdated   EventType = "FIELDS_UPDATED"
)
