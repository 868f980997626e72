package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadQuestions reads a YAML questions file and returns the question
// strings in document order.
//
// The file may nest questions arbitrarily: plain strings, lists, and
// maps of named sections are all accepted and flattened. For example:
//
//	company:
//	  - What does the company do?
//	  - Who are the founders?
//	contact:
//	  - What is the contact email?
//
// yields four questions. If the file does not exist,
// ErrQuestionsNotFound is returned.
func LoadQuestions(path string) ([]string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided questions path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrQuestionsNotFound
		}
		return nil, err
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}

	questions := make([]string, 0)
	flattenQuestions(&root, &questions)
	return questions, nil
}

// flattenQuestions walks the YAML node tree collecting scalar strings.
// Mapping keys are treated as section names, not questions.
func flattenQuestions(n *yaml.Node, out *[]string) {
	switch n.Kind {
	case yaml.DocumentNode, yaml.SequenceNode:
		for _, child := range n.Content {
			flattenQuestions(child, out)
		}
	case yaml.MappingNode:
		// Content alternates key, value; only values hold questions.
		for i := 1; i < len(n.Content); i += 2 {
			flattenQuestions(n.Content[i], out)
		}
	case yaml.ScalarNode:
		if n.Value != "" {
			*out = append(*out, n.Value)
		}
	}
}

// FindQuestionsFile locates the questions file to use:
//  1. the explicit path, if given
//  2. questions.yaml in the current directory
//  3. the XDG config location (see DefaultQuestionsPath)
//
// Returns an empty string when nothing is found, which callers treat as
// dump-only mode.
func FindQuestionsFile(explicit string) string {
	if explicit != "" {
		if _, err := os.Stat(explicit); err == nil {
			return explicit
		}
		return ""
	}

	if cwd, err := os.Getwd(); err == nil {
		local := filepath.Join(cwd, QuestionsFileName)
		if _, err := os.Stat(local); err == nil {
			return local
		}
	}

	xdgPath := DefaultQuestionsPath()
	if _, err := os.Stat(xdgPath); err == nil {
		return xdgPath
	}

	return ""
}
