// Package catalog models the subset of OSCAL catalog documents this tool
// reads and writes: metadata, nested groups, and controls with prose parts.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// OSCALVersion is the OSCAL schema version stamped into generated catalogs.
const OSCALVersion = "1.1.2"

// Document is the top-level OSCAL catalog envelope.
type Document struct {
	Catalog Catalog `json:"catalog"`
}

// Catalog is an OSCAL catalog.
type Catalog struct {
	UUID     string   `json:"uuid"`
	Metadata Metadata `json:"metadata"`
	Groups   []*Group `json:"groups,omitempty"`
	Controls []*Control `json:"controls,omitempty"`
}

// Metadata is the OSCAL catalog metadata block.
type Metadata struct {
	Title        string `json:"title"`
	LastModified string `json:"last-modified"`
	Version      string `json:"version"`
	OSCALVersion string `json:"oscal-version"`
}

// Group is a catalog group; CSF functions and categories both map here.
type Group struct {
	ID       string     `json:"id"`
	Class    string     `json:"class,omitempty"`
	Title    string     `json:"title"`
	Groups   []*Group   `json:"groups,omitempty"`
	Controls []*Control `json:"controls,omitempty"`
}

// Control is a single catalog control.
type Control struct {
	ID    string  `json:"id"`
	Title string  `json:"title"`
	Parts []*Part `json:"parts,omitempty"`
}

// Part is a prose part of a control (statement, example).
type Part struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Prose string `json:"prose"`
}

// Load reads an OSCAL catalog JSON document.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
	}
	return &doc, nil
}

// Save writes the catalog as indented JSON, creating parent directories.
func (d *Document) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create catalog directory: %w", err)
		}
	}
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write catalog %s: %w", path, err)
	}
	return nil
}

// ControlIDs returns the set of control IDs in the catalog, walking groups
// at any nesting depth.
func (d *Document) ControlIDs() map[string]bool {
	ids := make(map[string]bool)
	collectControls(d.Catalog.Controls, ids)
	collectGroups(d.Catalog.Groups, ids)
	return ids
}

// ControlIDList returns control IDs in document order (depth-first through
// groups). Used where deterministic iteration matters, e.g. gap-row
// emission.
func (d *Document) ControlIDList() []string {
	var ids []string
	var walkGroups func(groups []*Group)
	appendControls := func(controls []*Control) {
		for _, c := range controls {
			if c.ID != "" {
				ids = append(ids, c.ID)
			}
		}
	}
	walkGroups = func(groups []*Group) {
		for _, g := range groups {
			appendControls(g.Controls)
			walkGroups(g.Groups)
		}
	}
	appendControls(d.Catalog.Controls)
	walkGroups(d.Catalog.Groups)
	return ids
}

func collectGroups(groups []*Group, ids map[string]bool) {
	for _, g := range groups {
		collectControls(g.Controls, ids)
		collectGroups(g.Groups, ids)
	}
}

func collectControls(controls []*Control, ids map[string]bool) {
	for _, c := range controls {
		if c.ID != "" {
			ids[c.ID] = true
		}
	}
}
