package lookup

// NestedKey is the fixed key NestedProperty descends through.
const NestedKey = "nested"

// ValueOrDefault returns defaultValue when value is nil and value otherwise.
// The check is "is nil", never truthiness: 0, "", and false are present
// values and pass through unchanged. Note that a typed nil pointer stored in
// an interface is not the nil sentinel and also passes through.
func ValueOrDefault(value, defaultValue interface{}) interface{} {
	if value == nil {
		return defaultValue
	}
	return value
}

// NestedProperty returns the value stored under property inside the
// map held at container's "nested" key. It returns nil when container is
// nil, when container has no "nested" entry, when that entry is not a
// map[string]interface{}, or when the property is missing. The traversal
// short-circuits at the first missing link and never panics.
func NestedProperty(container map[string]interface{}, property string) interface{} {
	value, _ := NestedPropertyOK(container, property)
	return value
}

// NestedPropertyOK is the comma-ok form of NestedProperty. The boolean lets
// callers distinguish an explicitly stored nil from an absent entry.
func NestedPropertyOK(container map[string]interface{}, property string) (interface{}, bool) {
	if container == nil {
		return nil, false
	}

	raw, ok := container[NestedKey]
	if !ok {
		return nil, false
	}

	nested, ok := raw.(map[string]interface{})
	if !ok {
		return nil, false
	}

	value, ok := nested[property]
	if !ok {
		return nil, false
	}

	return value, true
}
