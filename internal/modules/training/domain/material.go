package domain

import (
	"path"
	"sort"
	"strings"

	"capacita/internal/platform/listing"
)

const (
	TypeDocument = "document"
	TypeVideo    = "video"

	QueryMinLength = listing.QueryMinLength
	QueryMaxLength = listing.QueryMaxLength
)

// SupportedFormats lists the file extensions accepted per material type.
var SupportedFormats = map[string][]string{
	TypeDocument: {"pdf", "docx", "pptx"},
	TypeVideo:    {"mp4"},
}

type Asset struct {
	URL      string
	FileName string
}

type Material struct {
	ID          string
	Title       string
	Description string
	Section     string
	Module      string
	Submodule   string
	Roles       []string
	Document    *Asset
	Video       *Asset
}

func (m Material) HasDocument() bool { return m.Document != nil && m.Document.URL != "" }
func (m Material) HasVideo() bool    { return m.Video != nil && m.Video.URL != "" }

type Module struct {
	Name      string
	Materials []Material
}

type Section struct {
	Name    string
	Modules []Module
}

// Catalog is the section → module → materials tree in a stable order.
type Catalog struct {
	Sections []Section
}

// NewCatalog orders the backend's grouping by section and module name.
func NewCatalog(grouped map[string]map[string][]Material) Catalog {
	sections := make([]string, 0, len(grouped))
	for name := range grouped {
		sections = append(sections, name)
	}
	sort.Strings(sections)
	out := Catalog{}
	for _, sectionName := range sections {
		modules := grouped[sectionName]
		names := make([]string, 0, len(modules))
		for name := range modules {
			names = append(names, name)
		}
		sort.Strings(names)
		section := Section{Name: sectionName}
		for _, name := range names {
			section.Modules = append(section.Modules, Module{Name: name, Materials: modules[name]})
		}
		out.Sections = append(out.Sections, section)
	}
	return out
}

func (c Catalog) Empty() bool {
	return len(c.Materials()) == 0
}

func (c Catalog) Materials() []Material {
	var out []Material
	for _, s := range c.Sections {
		for _, m := range s.Modules {
			out = append(out, m.Materials...)
		}
	}
	return out
}

func (c Catalog) Find(id string) (Material, bool) {
	for _, m := range c.Materials() {
		if m.ID == id {
			return m, true
		}
	}
	return Material{}, false
}

// Filter keeps materials whose searchable fields contain query, dropping
// modules and sections left empty. An empty query keeps everything.
func (c Catalog) Filter(query string) Catalog {
	if query == "" {
		return c
	}
	needle := strings.ToLower(query)
	out := Catalog{}
	for _, s := range c.Sections {
		section := Section{Name: s.Name}
		for _, m := range s.Modules {
			module := Module{Name: m.Name}
			for _, mat := range m.Materials {
				if matches(mat, needle) {
					module.Materials = append(module.Materials, mat)
				}
			}
			if len(module.Materials) > 0 {
				section.Modules = append(section.Modules, module)
			}
		}
		if len(section.Modules) > 0 {
			out.Sections = append(out.Sections, section)
		}
	}
	return out
}

func matches(m Material, needle string) bool {
	for _, field := range []string{m.Title, m.Description, strings.Join(m.Roles, ", "), m.Submodule, m.Section, m.Module} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// NormalizeQuery applies the shared search rules of the admin tables.
func NormalizeQuery(raw string) (string, error) {
	return listing.NormalizeQuery(raw)
}

// FormatOf returns the lowercased extension of a file name or URL.
func FormatOf(name string) string {
	if i := strings.IndexAny(name, "?#"); i >= 0 {
		name = name[:i]
	}
	return strings.TrimPrefix(strings.ToLower(path.Ext(name)), ".")
}

// Supports reports whether a file with the given name fits materialType.
func Supports(materialType, name string) bool {
	format := FormatOf(name)
	for _, f := range SupportedFormats[materialType] {
		if f == format {
			return true
		}
	}
	return false
}
