package domain

// Dependency is a single entry from a manifest's "dependencies" section.
type Dependency struct {
	// Name is the dependency name as declared (e.g., "@angular/core").
	Name string

	// Version is the declared version specifier, compared as opaque text.
	Version string
}

// String returns the name@version form of the dependency.
func (d Dependency) String() string {
	return d.Name + "@" + d.Version
}

// Manifest is the projection of a dependency-declaration file that conform
// inspects. Only the top-level "dependencies" section is represented;
// devDependencies and other sections are deliberately not read.
//
// Dependencies preserves the document order of the parsed file so that
// check results are deterministic for a given input.
type Manifest struct {
	Dependencies []Dependency
}
