// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// readRows decodes a YAML sequence of sequences of scalars.
// Empty input yields no rows.
func readRows(r io.Reader) ([][]string, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("yaml decode: %w", err)
	}
	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil, nil
		}
		root = root.Content[0]
	}
	if root.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("line %d: expected a sequence of sequences", root.Line)
	}

	rows := make([][]string, 0, len(root.Content))
	for _, item := range root.Content {
		if item.Kind != yaml.SequenceNode {
			return nil, fmt.Errorf("line %d: expected a sequence", item.Line)
		}
		row := make([]string, 0, len(item.Content))
		for _, v := range item.Content {
			if v.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: expected a scalar", v.Line)
			}
			row = append(row, v.Value)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
