package codec

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/symex"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

// Workspace is a collection of named trees in document form.
type Workspace map[string]Doc

// NewWorkspace encodes a map of named trees.
func NewWorkspace(exprs map[string]*symex.Expr) Workspace {
	ws := make(Workspace, len(exprs))
	for name, e := range exprs {
		ws[name] = Encode(e)
	}
	return ws
}

// Names returns the names of the trees in ws, sorted.
func (ws Workspace) Names() []string {
	names := maps.Keys(ws)
	slices.Sort(names)
	return names
}

// Decode decodes every tree of ws. The first malformed tree aborts decoding.
func (ws Workspace) Decode() (map[string]*symex.Expr, error) {
	exprs := make(map[string]*symex.Expr, len(ws))
	for _, name := range ws.Names() {
		doc := ws[name]
		e, err := decode(&doc, name)
		if err != nil {
			return nil, err
		}
		exprs[name] = e
	}
	return exprs, nil
}

// Format is a file format for documents.
type Format int

// Supported formats.
const (
	JSON Format = iota
	YAML
)

// FormatOf selects a format from the extension of path: .json, .yaml or .yml.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return JSON, fmt.Errorf("cannot tell format of file %q; use extension .json, .yaml or .yml", path)
}

func (f Format) unmarshal(data []byte, v interface{}) error {
	if f == YAML {
		return yaml.Unmarshal(data, v)
	}
	return json.Unmarshal(data, v)
}

func (f Format) marshal(v interface{}) ([]byte, error) {
	if f == YAML {
		return yaml.Marshal(v)
	}
	return json.MarshalIndent(v, "", "  ")
}

// ReadFile reads trees from a JSON or YAML file. If the file holds a single
// tree, the workspace returned contains it under the base name of the file,
// without extension. Otherwise the file must hold a map of named trees.
//
// A workspace containing a tree named "lit", "var" or "op" is mistaken for a
// single tree.
func ReadFile(path string) (Workspace, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("read %d bytes from %s", len(data), path)
	var doc Doc
	docErr := format.unmarshal(data, &doc)
	if docErr == nil && !doc.isEmpty() {
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		return Workspace{name: doc}, nil
	}
	var ws Workspace
	if err := format.unmarshal(data, &ws); err != nil {
		if docErr != nil { // report why the file is no single tree
			err = docErr
		}
		return nil, fmt.Errorf("%s: %w", path, wrapSyntax(err))
	}
	return ws, nil
}

// WriteFile writes ws to a JSON or YAML file, depending on the extension of
// path.
func WriteFile(path string, ws Workspace) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	data, err := format.marshal(ws)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// WriteExpr writes a single tree to a JSON or YAML file.
func WriteExpr(path string, e *symex.Expr) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	data, err := format.marshal(Encode(e))
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
