package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	PublisherRepo  PublisherRepositoryFacade
	SongwriterRepo SongwriterRepositoryFacade
	WorkRepo       WorkRepositoryFacade
	RecordingRepo  RecordingRepositoryFacade
	UserRepo       UserRepositoryFacade
}
