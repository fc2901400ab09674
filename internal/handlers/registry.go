package handlers

// AppHandlers holds all HTTP handlers.
type AppHandlers struct {
	AuthHandler           *AuthHandler
	UserHandler           *UserHandler
	ProjectHandler        *ProjectHandler
	MembershipHandler     *MembershipHandler
	RecommendationHandler *RecommendationHandler
	NotificationHandler   *NotificationHandler
	VocabularyHandler     *VocabularyHandler
}
