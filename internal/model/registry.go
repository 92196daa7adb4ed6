package model

// EntityInfo describes one entity type exposed for schema introspection.
type EntityInfo struct {
	Name       string `json:"name"`
	Collection string `json:"collection"`
}

// Registry is the statically declared list of entity types this service
// persists. The /schema endpoint serves it directly; no runtime type scanning
// is involved.
var Registry = []EntityInfo{
	{Name: "Pet", Collection: CollectionPets},
	{Name: "AdoptionRequest", Collection: CollectionAdoptionRequests},
}

// Collection names used across the repository layer.
const (
	CollectionPets             = "pet"
	CollectionAdoptionRequests = "adoptionrequest"
)

// EntityNames returns the registered entity type names in declaration order.
func EntityNames() []string {
	names := make([]string, 0, len(Registry))
	for _, e := range Registry {
		names = append(names, e.Name)
	}
	return names
}
