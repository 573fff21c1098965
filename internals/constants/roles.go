package constants

// Claim / locals keys shared by middleware and controllers.
const (
	LocalsUserID   = "user_id"
	LocalsUserName = "user_name"
	LocalsIsStaff  = "is_staff"
)

// Media folders, one per resource type.
const (
	FolderBanners  = "banners"
	FolderAbout    = "about"
	FolderPrograms = "programs"
	FolderStories  = "stories"
	FolderNews     = "news"
	FolderEvents   = "events"
)
