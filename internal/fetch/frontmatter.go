package fetch

import (
	"bytes"
	"os"

	"gopkg.in/yaml.v3"
)

var frontMatterFence = []byte("---\n")

// StripFrontMatter removes a leading YAML front-matter block from the
// content and returns the remainder. The block must start at the first
// byte with a "---" fence line, close with another fence, and parse as a
// YAML mapping; content without such a block is returned unchanged.
func StripFrontMatter(content []byte) []byte {
	if !bytes.HasPrefix(content, frontMatterFence) {
		return content
	}

	rest := content[len(frontMatterFence):]
	end := bytes.Index(rest, frontMatterFence)
	if end == -1 {
		return content
	}

	block := rest[:end]
	var meta map[string]interface{}
	if err := yaml.Unmarshal(block, &meta); err != nil {
		return content
	}

	body := rest[end+len(frontMatterFence):]
	// Drop the blank line conventionally separating front matter from
	// the body.
	return bytes.TrimPrefix(body, []byte("\n"))
}

// WriteWithStrippedFrontMatter writes the content to path with any
// leading front matter removed. When stripping changes the content, the
// unstripped text is kept next to the file with a .bak suffix.
func WriteWithStrippedFrontMatter(path string, content []byte) error {
	stripped := StripFrontMatter(content)
	if len(stripped) != len(content) {
		if err := os.WriteFile(path+".bak", content, 0644); err != nil {
			return err
		}
	}
	return os.WriteFile(path, stripped, 0644)
}

// AppendString appends literal text to the file at path, creating it if
// needed.
func AppendString(path, text string) error {
	return appendToFile(path, []byte(text))
}
