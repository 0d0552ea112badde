package constant

const (
	FETCH_STORIES_FAILED     = "Failed to fetch stories"
	CREATE_STORY_FAILED      = "Failed to create story"
	FETCH_JOURNALS_FAILED    = "Failed to fetch journals"
	CREATE_JOURNAL_FAILED    = "Failed to create journal"
	CREATE_USER_FAILED       = "Failed to create user"
	FETCH_USER_FAILED        = "Failed to fetch user"
	FETCH_REPUTATION_FAILED  = "Failed to fetch reputation"
	UPDATE_REPUTATION_FAILED = "Failed to update reputation"
	REGISTER_MENTOR_FAILED   = "Failed to register mentor"
	UPDATE_MENTOR_FAILED     = "Failed to update mentor"
	FIND_MENTORS_FAILED      = "Failed to find mentors"
	GENERATE_IMAGE_FAILED    = "Failed to generate image"
	GENERATE_VIDEO_FAILED    = "Failed to generate video"
)
