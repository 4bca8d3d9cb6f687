package constant

const (
	ModeResume    = "resume"
	ModeInterview = "interview"
	ModeJobs      = "jobs"

	MessageRoleSystem    = "system"
	MessageRoleUser      = "user"
	MessageRoleAssistant = "assistant"

	SessionStatusActive = "active"

	// SeedMessageFormat is the content of the system message written right
	// after a session. The single argument is the session mode.
	SeedMessageFormat = "CoPilot session created for %s mode."
)
