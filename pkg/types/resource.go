package types

import (
	"fmt"
	"path"
	"strings"
)

// Resource is a handle to a stored repository resource.
type Resource struct {
	Path     string `json:"path"`
	Type     string `json:"type,omitempty"`
	IsFolder bool   `json:"is_folder,omitempty"`
	Size     int64  `json:"size,omitempty"`
}

// Name returns the base name of the resource
func (r Resource) Name() string {
	return path.Base(r.Path)
}

// FolderPath returns the parent folder of the resource path, with a
// trailing separator, mirroring how naming patterns are split.
func (r Resource) FolderPath() string {
	return FolderPath(r.Path)
}

// String returns a human-readable representation
func (r Resource) String() string {
	if r.Type != "" {
		return fmt.Sprintf("%s (%s)", r.Path, r.Type)
	}
	return r.Path
}

// FolderPath returns the longest prefix of p ending at the last path
// separator. A path without a separator yields "".
func FolderPath(p string) string {
	idx := strings.LastIndex(p, "/")
	if idx < 0 {
		return ""
	}
	return p[:idx+1]
}

// TypeSettings describes the explorer settings of a resource type: whether
// resources of the type may be edited and whether creating new elements in
// a folder of this type needs the control permission.
type TypeSettings struct {
	Name                      string `yaml:"name"`
	Editable                  bool   `yaml:"editable"`
	RequiresControlPermission bool   `yaml:"requires_control_permission"`
}
