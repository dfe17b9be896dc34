package keypath

import "reflect"

// Split breaks a keypath into its component keys, honoring `\.` and `\\`
// escapes. A trailing bare backslash is kept literally.
func Split(path string) []string {
	var keys []string
	var key []byte

	for i := 0; i < len(path); i++ {
		switch c := path[i]; c {
		case '\\':
			if i+1 < len(path) && (path[i+1] == '.' || path[i+1] == '\\') {
				key = append(key, path[i+1])
				i++
			} else {
				key = append(key, c)
			}
		case '.':
			keys = append(keys, string(key))
			key = key[:0]
		default:
			key = append(key, c)
		}
	}

	return append(keys, string(key))
}

// Get resolves path against attributes, reporting whether every key on the
// way existed. Intermediate values must be string-keyed maps; anything else
// terminates the walk as not-found.
func Get(attributes map[string]any, path string) (any, bool) {
	keys := Split(path)

	var current any = attributes
	for _, key := range keys {
		m, ok := asStringMap(current)
		if !ok {
			return nil, false
		}
		current, ok = m[key]
		if !ok {
			return nil, false
		}
	}

	return current, true
}

// Has reports whether path resolves against attributes.
func Has(attributes map[string]any, path string) bool {
	_, ok := Get(attributes, path)
	return ok
}

// Set writes value at path, creating intermediate maps as needed. An
// existing non-map intermediate is replaced by a map.
func Set(attributes map[string]any, path string, value any) {
	keys := Split(path)

	current := attributes
	for _, key := range keys[:len(keys)-1] {
		next, ok := current[key].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[key] = next
		}
		current = next
	}
	current[keys[len(keys)-1]] = value
}

// asStringMap widens v to map[string]any, converting other string-keyed map
// types through reflection so attributes built as map[string]string still
// resolve.
func asStringMap(v any) (map[string]any, bool) {
	if m, ok := v.(map[string]any); ok {
		return m, true
	}

	rv := reflect.ValueOf(v)
	if !rv.IsValid() || rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}

	m := make(map[string]any, rv.Len())
	for _, k := range rv.MapKeys() {
		m[k.String()] = rv.MapIndex(k).Interface()
	}
	return m, true
}
