package resource

import "strings"

// NameFromPath derives a resource name from a URL path on a best effort
// basis, for operations that declare no tags. The name is the first
// non-empty path segment:
//
//	/pet                ->  pet
//	/pet/findByStatus   ->  pet
//	/pet/{petId}        ->  pet
//
// The root path and the empty string carry no usable segment and return a
// *MappingError.
func NameFromPath(path string) (string, error) {
	name, _, _ := strings.Cut(strings.TrimPrefix(path, "/"), "/")
	if name == "" {
		return "", &MappingError{Path: path}
	}
	return name, nil
}
