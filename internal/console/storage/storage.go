// Package storage abstracts the durable key-value store the session layer
// persists itself into, mirroring browser local storage semantics.
package storage

// Storage is a small synchronous string store. Implementations must make Set
// and Delete durable before returning.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
}
