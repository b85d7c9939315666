package config

// Set stores value under key and reports whether the key already existed.
func Set(values map[string]string, key, value string) bool {
	_, existed := values[key]
	values[key] = value
	return existed
}

// Unset removes key and reports whether it was present.
func Unset(values map[string]string, key string) bool {
	_, existed := values[key]
	delete(values, key)
	return existed
}
