package models

// NewElementID marks an entity that exists only on the client and has not been
// stored yet. The server replaces it with a permanent id on the first upsert.
const NewElementID = "f568748e-c57e-412e-9ef9-443e035386da"

// IsNewElementID reports whether id denotes a not yet stored entity.
// An empty id is treated the same way.
func IsNewElementID(id string) bool {
	return id == "" || id == NewElementID
}
