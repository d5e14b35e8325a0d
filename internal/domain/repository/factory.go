package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Users() UserRepository
	Credentials() CredentialRepository
	Sessions() SessionRepository
	Orders() OrderRepository
	Vegetables() VegetableRepository
	PriceDrafts() PriceDraftRepository
}
