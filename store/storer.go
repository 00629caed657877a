package store

// Storer is the lifecycle shared by every store
type Storer interface {
	Init() error
	Close() error
}
