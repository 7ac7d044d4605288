package model

// Entity is implemented by every record kept in a collection.
type Entity interface {
	EntityID() string
}
