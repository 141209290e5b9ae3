// Package registry maps resources to type names and answers the explorer
// permission checks used while resolving new-element configurations.
// The mappings are declared in a YAML file; a built-in default set is used
// when no file is present.
package registry

import (
	"os"
	"path"
	"strings"

	"newelem/internal/errors"
	"newelem/pkg/types"

	"gopkg.in/yaml.v3"
)

// DefaultTypeName is assigned to resources no rule matches.
const DefaultTypeName = "binary"

// FolderTypeName is assigned to folder resources.
const FolderTypeName = "folder"

// file is the YAML schema of a registry declaration
type file struct {
	Types []struct {
		Name       string   `yaml:"name"`
		Extensions []string `yaml:"extensions"`
		Settings   struct {
			Editable                  bool `yaml:"editable"`
			RequiresControlPermission bool `yaml:"requires_control_permission"`
		} `yaml:"settings"`
	} `yaml:"types"`
	Folders []struct {
		Path                      string `yaml:"path"`
		Editable                  bool   `yaml:"editable"`
		RequiresControlPermission bool   `yaml:"requires_control_permission"`
	} `yaml:"folders"`
}

// folderSettings is the per-folder permission override
type folderSettings struct {
	editable          bool
	controlPermission bool
}

// Registry resolves type names and permission predicates. It is immutable
// after construction and safe for concurrent use.
type Registry struct {
	byExtension map[string]string
	settings    map[string]types.TypeSettings
	folders     map[string]folderSettings
}

// Load reads a registry declaration from a YAML file. A missing file
// yields the default registry.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}
	return parse(data)
}

// Default returns a registry with the built-in type set: common authoring
// types editable, folders requiring the control permission.
func Default() *Registry {
	return mustParse([]byte(defaultRegistryYAML))
}

func parse(data []byte) (*Registry, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.NewConfigError("invalid registry file", "", errors.InvalidConfig, err)
	}

	r := &Registry{
		byExtension: make(map[string]string),
		settings:    make(map[string]types.TypeSettings),
		folders:     make(map[string]folderSettings),
	}
	for _, t := range f.Types {
		if t.Name == "" {
			return nil, errors.NewConfigError("registry type without a name", "", errors.InvalidConfig, nil)
		}
		r.settings[t.Name] = types.TypeSettings{
			Name:                      t.Name,
			Editable:                  t.Settings.Editable,
			RequiresControlPermission: t.Settings.RequiresControlPermission,
		}
		for _, ext := range t.Extensions {
			r.byExtension[strings.ToLower(strings.TrimPrefix(ext, "."))] = t.Name
		}
	}
	for _, fo := range f.Folders {
		r.folders[strings.TrimSuffix(fo.Path, "/")] = folderSettings{
			editable:          fo.Editable,
			controlPermission: fo.RequiresControlPermission,
		}
	}
	return r, nil
}

func mustParse(data []byte) *Registry {
	r, err := parse(data)
	if err != nil {
		panic(err)
	}
	return r
}

// TypeName derives the type name of a resource from its path.
func (r *Registry) TypeName(res types.Resource) (string, error) {
	if res.IsFolder {
		return FolderTypeName, nil
	}
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(res.Path), "."))
	if name, ok := r.byExtension[ext]; ok {
		return name, nil
	}
	return DefaultTypeName, nil
}

// Settings returns the explorer settings of a type name.
func (r *Registry) Settings(typeName string) (types.TypeSettings, bool) {
	s, ok := r.settings[typeName]
	return s, ok
}

// IsEditable reports whether resources may be edited in the given folder
// resource. Per-folder overrides take precedence over the folder's type
// settings.
func (r *Registry) IsEditable(res types.Resource) bool {
	if fs, ok := r.folders[strings.TrimSuffix(res.Path, "/")]; ok {
		return fs.editable
	}
	name, err := r.TypeName(res)
	if err != nil {
		return false
	}
	if s, ok := r.settings[name]; ok {
		return s.Editable
	}
	return false
}

// RequiresControlPermission reports whether creating elements in the given
// folder resource needs the control permission.
func (r *Registry) RequiresControlPermission(res types.Resource) bool {
	if fs, ok := r.folders[strings.TrimSuffix(res.Path, "/")]; ok {
		return fs.controlPermission
	}
	name, err := r.TypeName(res)
	if err != nil {
		return false
	}
	if s, ok := r.settings[name]; ok {
		return s.RequiresControlPermission
	}
	return false
}

const defaultRegistryYAML = `
types:
  - name: page
    extensions: [html, htm]
    settings:
      editable: true
      requires_control_permission: true
  - name: plain
    extensions: [txt, css, js]
    settings:
      editable: true
      requires_control_permission: false
  - name: image
    extensions: [png, jpg, jpeg, gif]
    settings:
      editable: false
      requires_control_permission: false
  - name: folder
    settings:
      editable: true
      requires_control_permission: true
`
