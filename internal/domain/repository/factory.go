package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Clients() ClientRepository
	Products() ProductRepository
	Orders() OrderRepository
}
