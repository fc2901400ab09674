package services

// ServiceContainer holds all application services.
type ServiceContainer struct {
	AuthService           AuthService
	UserService           UserService
	ProjectService        ProjectService
	MembershipService     MembershipService
	RecommendationService RecommendationService
	NotificationService   NotificationService
	VocabularyService     VocabularyService
}
