package resolver

// projectFile mirrors the stash.yaml schema. Only the fields the cache cares
// about are listed; unknown keys are ignored.
type projectFile struct {
	// Project is the human-readable project name.
	Project string `yaml:"project"`
	// Packages lists dependency package directories relative to the root.
	Packages []string `yaml:"packages"`
}
