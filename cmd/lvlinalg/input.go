// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/katalvlaran/lvlinalg/vector"
	"gopkg.in/yaml.v3"
)

// readDocument decodes a YAML (or JSON) file into a generic value tree.
func readDocument(path string) (any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// isRowList reports whether doc looks like a list of rows: a list whose
// elements include at least one list. The empty list counts as a matrix.
func isRowList(doc any) bool {
	seq, ok := doc.([]any)
	if !ok {
		return false
	}
	if len(seq) == 0 {
		return true
	}
	for _, e := range seq {
		if _, ok := e.([]any); ok {
			return true
		}
	}

	return false
}

func loadMatrix(path string) (*matrix.Matrix, error) {
	doc, err := readDocument(path)
	if err != nil {
		return nil, err
	}
	m, err := matrix.FromValues(doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

func loadVector(path string) (*vector.Vector, error) {
	doc, err := readDocument(path)
	if err != nil {
		return nil, err
	}
	seq, ok := doc.([]any)
	if !ok {
		return nil, fmt.Errorf("%s: expected a list of numbers: %w", path, vector.ErrNonNumeric)
	}
	v, err := vector.FromValues(seq...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return v, nil
}

// loadOperand returns a *matrix.Matrix for a list of rows and a
// *vector.Vector for a flat list of numbers.
func loadOperand(path string) (any, error) {
	doc, err := readDocument(path)
	if err != nil {
		return nil, err
	}
	if isRowList(doc) {
		m, err := matrix.FromValues(doc)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return m, nil
	}

	seq, ok := doc.([]any)
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, matrix.ErrNotRows)
	}
	v, err := vector.FromValues(seq...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return v, nil
}
