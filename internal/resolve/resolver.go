// Package resolve turns a localized content document into the type
// configuration used for creating new page elements.
package resolve

import (
	"fmt"
	"sort"

	"newelem/internal/content"
	"newelem/internal/errors"
	"newelem/internal/log"
	"newelem/pkg/types"
)

// Element and attribute names of the configuration document.
const (
	// RootName is the expected root element of a configuration document.
	RootName = "NewElements"
	// TypeTag is the tag of one type entry under a locale variant.
	TypeTag = "Type"
	// SourceField holds the prototype resource path.
	SourceField = "Source"
	// FolderField holds the destination folder, relative to the entry.
	FolderField = "Destination/Folder"
	// PatternField holds the naming pattern, relative to the entry.
	PatternField = "Destination/Pattern"
)

// Store is the resource access the resolver needs.
type Store interface {
	Read(path string) (types.Resource, error)
}

// Registry supplies type names and the explorer permission checks.
type Registry interface {
	TypeName(res types.Resource) (string, error)
	IsEditable(res types.Resource) bool
	RequiresControlPermission(res types.Resource) bool
}

// Resolver reads new-element type configurations from content documents.
type Resolver struct {
	store    Store
	registry Registry
}

// New creates a resolver with the given collaborators
func New(store Store, registry Registry) *Resolver {
	return &Resolver{
		store:    store,
		registry: registry,
	}
}

// Resolve parses the type configuration from a content document.
//
// The locale variant is chosen in order: the requested locale if the
// document has it, else the fallback locale, else the first locale the
// document declares. A document without any locale fails with a
// NoLocalesDefined error.
//
// On any error the returned configuration is nil; no partial state is
// handed out.
func (r *Resolver) Resolve(doc *content.Document, requested, fallback string) (*TypeConfiguration, error) {
	if doc.Root() != RootName {
		return nil, errors.NewConfigError(
			"wrong configuration document type", doc.Root(), errors.WrongDocumentType, nil)
	}

	locale, err := chooseLocale(doc, requested, fallback)
	if err != nil {
		return nil, err
	}
	log.Debugf("resolving type configuration for locale %s", locale)

	items := make(map[string]types.ConfigurationItem)
	var eligible []types.Resource

	for i, entry := range doc.Values(TypeTag, locale) {
		source, ok := entry.Value(SourceField)
		if !ok {
			return nil, missingField(i, SourceField, locale)
		}
		folder, ok := entry.Value(FolderField)
		if !ok {
			return nil, missingField(i, FolderField, locale)
		}
		pattern, ok := entry.Value(PatternField)
		if !ok {
			return nil, missingField(i, PatternField, locale)
		}

		res, err := r.store.Read(source)
		if err != nil {
			return nil, err
		}
		typeName, err := r.registry.TypeName(res)
		if err != nil {
			return nil, err
		}
		res.Type = typeName

		// Duplicate type names keep the last entry, silently.
		items[typeName] = types.ConfigurationItem{
			Source:  source,
			Folder:  folder,
			Pattern: pattern,
		}

		folderRes, err := r.store.Read(folder)
		if err != nil {
			return nil, err
		}
		if r.registry.IsEditable(folderRes) && r.registry.RequiresControlPermission(folderRes) {
			eligible = append(eligible, res)
		}
	}

	return &TypeConfiguration{items: items, eligible: eligible}, nil
}

// chooseLocale implements the requested -> fallback -> first-declared
// selection order.
func chooseLocale(doc *content.Document, requested, fallback string) (string, error) {
	if doc.HasLocale(requested) {
		return requested, nil
	}
	if doc.HasLocale(fallback) {
		return fallback, nil
	}
	locales := doc.Locales()
	if len(locales) == 0 {
		return "", errors.NewConfigError(
			"no locale variants defined", "", errors.NoLocalesDefined, nil)
	}
	return locales[0], nil
}

func missingField(entry int, field, locale string) error {
	return errors.NewConfigError(
		"missing configuration field",
		fmt.Sprintf("%s[%d]/%s (locale %s)", TypeTag, entry+1, field, locale),
		errors.MissingField, nil)
}

// TypeConfiguration maps type names to their configuration items and
// carries the eligible new-element resources in document order. It is
// immutable after construction and safe for concurrent reads.
type TypeConfiguration struct {
	items    map[string]types.ConfigurationItem
	eligible []types.Resource
}

// Item returns the configuration item for a type name
func (c *TypeConfiguration) Item(typeName string) (types.ConfigurationItem, bool) {
	item, ok := c.items[typeName]
	return item, ok
}

// TypeNames returns the configured type names, sorted
func (c *TypeConfiguration) TypeNames() []string {
	names := make([]string, 0, len(c.items))
	for name := range c.items {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// EligibleNewElements returns the prototype resources whose destination
// folder passed the permission checks, in document order.
func (c *TypeConfiguration) EligibleNewElements() []types.Resource {
	out := make([]types.Resource, len(c.eligible))
	copy(out, c.eligible)
	return out
}

// Len returns the number of configured types
func (c *TypeConfiguration) Len() int {
	return len(c.items)
}
