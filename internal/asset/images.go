package asset

// Asteroid sprite variants. Index order matters to consumers.
const (
	Asteroid1 = "asteroid1"
	Asteroid2 = "asteroid2"
)

// Bundle-relative image paths.
const (
	asteroid1Path = "assets/images/asteroid1.png"
	asteroid2Path = "assets/images/asteroid2.png"
)

// AsteroidVariants returns the asteroid sprite names in index order.
func AsteroidVariants() []string {
	return []string{Asteroid1, Asteroid2}
}

// Default returns a new registry holding the built-in board sprites.
func Default() *Registry {
	r, err := NewRegistry(
		Reference{Name: Asteroid1, Path: asteroid1Path},
		Reference{Name: Asteroid2, Path: asteroid2Path},
	)
	if err != nil {
		// Literals above are unique and non-empty.
		panic(err)
	}
	return r
}
