package types

// ConfigurationItem associates a prototype resource with the destination
// folder and naming pattern used when creating new elements of its type.
// Items are created once during configuration parsing and never mutated.
type ConfigurationItem struct {
	// Source is the repository path of the prototype resource.
	Source string
	// Folder is the destination folder for newly created elements.
	Folder string
	// Pattern is the naming pattern for new elements, containing the
	// %(number) macro (e.g. "/site/articles/article_%(number).html").
	Pattern string
}
