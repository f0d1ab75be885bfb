package templates

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrTemplateNotFound is returned when none of the candidate template
// files exists.
var ErrTemplateNotFound = errors.New("template not found")

// DefaultDir is the template folder used when none is configured.
const DefaultDir = "templates"

// Render loads the first existing candidate from dir and substitutes
// {{ key }} and {{key}} markers with the stringified context values.
func Render(dir string, nameOrList any, context map[string]any) (string, error) {
	var candidates []string
	switch n := nameOrList.(type) {
	case string:
		candidates = []string{n}
	case []string:
		candidates = n
	default:
		return "", fmt.Errorf("%w: unsupported name type %T", ErrTemplateNotFound, nameOrList)
	}
	if dir == "" {
		dir = DefaultDir
	}

	var content string
	found := false
	for _, name := range candidates {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		content = string(data)
		found = true
		break
	}
	if !found {
		return "", fmt.Errorf("%w: %v", ErrTemplateNotFound, candidates)
	}

	for key, value := range context {
		s := fmt.Sprint(value)
		content = strings.ReplaceAll(content, "{{ "+key+" }}", s)
		content = strings.ReplaceAll(content, "{{"+key+"}}", s)
	}
	return content, nil
}
