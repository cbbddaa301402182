package normalize

// shape extracts candidate elements from a payload, or reports no match.
type shape func(v any) ([]any, bool)

var (
	postWrapperKeys    = []string{"posts", "items", "data", "results", "blogs"}
	projectWrapperKeys = []string{"projects", "items", "data", "results"}
)

func postShapes() []shape {
	return []shape{arrayShape, wrappedShape(postWrapperKeys), singleShape, nestedShape("post")}
}

func projectShapes() []shape {
	return []shape{arrayShape, wrappedShape(projectWrapperKeys), singleShape, nestedShape("project")}
}

// match runs the chain and returns the elements of the first shape that fits.
func match(v any, chain []shape) []any {
	for _, s := range chain {
		if elems, ok := s(v); ok {
			return elems
		}
	}
	return nil
}

func arrayShape(v any) ([]any, bool) {
	arr, ok := v.([]any)
	return arr, ok
}

func wrappedShape(keys []string) shape {
	return func(v any) ([]any, bool) {
		obj, ok := asObject(v)
		if !ok {
			return nil, false
		}
		for _, k := range keys {
			inner := obj.get(k)
			if arr, ok := inner.([]any); ok {
				return arr, true
			}
			if o, ok := asObject(inner); ok {
				return []any{o}, true
			}
		}
		return nil, false
	}
}

func singleShape(v any) ([]any, bool) {
	obj, ok := asObject(v)
	if !ok {
		return nil, false
	}
	if obj.has("title") || obj.has("slug") {
		return []any{obj}, true
	}
	return nil, false
}

// nestedShape keeps the outer object; field lookup falls back to the nested
// one so top-level values still win.
func nestedShape(key string) shape {
	return func(v any) ([]any, bool) {
		obj, ok := asObject(v)
		if !ok {
			return nil, false
		}
		if _, ok := asObject(obj.get(key)); ok {
			return []any{obj}, true
		}
		return nil, false
	}
}
