package event

// ActivityRecordedDestination is the subject activity facts are published to.
const ActivityRecordedDestination string = "chrono.activity.recorded"

// ActivityRecordedConsumerAudit is the queue group the audit module consumes with.
const ActivityRecordedConsumerAudit string = "activity_recorded_audit"

// ActivityRecordedMessage is the wire form of an activity fact.
//
// OccurredAt is RFC 3339. Details is free-form text describing the action's
// subject, e.g. the name of a created credential.
type ActivityRecordedMessage struct {
	Username   string `json:"username"`
	Action     string `json:"action"`
	Details    string `json:"details"`
	OccurredAt string `json:"occurred_at"`
}
