package constants

// NSQ topics
const (
	TopicEmergencyDispatch = "emergency.dispatch"
	TopicAppointmentEvents = "appointment.events"
)
