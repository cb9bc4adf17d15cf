package sanitizer

// Transform rewrites a string. Every helper in this package is a Transform
// or returns one.
type Transform = func(string) string

// Compose chains transforms left to right into a single Transform, so a
// pipeline run on every keystroke is built once.
func Compose(transforms ...Transform) Transform {
	return func(s string) string {
		for _, t := range transforms {
			s = t(s)
		}
		return s
	}
}

// Apply runs s through transforms once.
func Apply(s string, transforms ...Transform) string {
	return Compose(transforms...)(s)
}
