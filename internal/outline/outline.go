// Package outline builds an indented header outline of a single
// markdown page.
package outline

import (
	"regexp"
	"strings"
)

// Node is one markdown header with its nested subsections.
type Node struct {
	Title    string
	Level    int
	Line     int
	Children []*Node
}

var headerPattern = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)

const codeFence = "```"

// Parse scans markdown content line by line and builds a header tree.
// Headers inside fenced code blocks are skipped.
func Parse(content string) []*Node {
	lines := strings.Split(content, "\n")

	type stackEntry struct {
		node  *Node
		level int
	}
	var stack []stackEntry
	var roots []*Node
	inCodeBlock := false

	for lineNum, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, codeFence) {
			inCodeBlock = !inCodeBlock
			continue
		}
		if inCodeBlock || trimmed == "" {
			continue
		}

		matches := headerPattern.FindStringSubmatch(trimmed)
		if matches == nil {
			continue
		}

		node := &Node{
			Title: strings.TrimSpace(matches[2]),
			Level: len(matches[1]),
			Line:  lineNum + 1,
		}

		// Pop the stack until the top can be this node's parent.
		for len(stack) > 0 && stack[len(stack)-1].level >= node.Level {
			stack = stack[:len(stack)-1]
		}

		if len(stack) == 0 {
			roots = append(roots, node)
		} else {
			parent := stack[len(stack)-1].node
			parent.Children = append(parent.Children, node)
		}
		stack = append(stack, stackEntry{node: node, level: node.Level})
	}

	return roots
}

// Render returns the tree as an indented table of contents.
func Render(nodes []*Node, indent int) string {
	var sb strings.Builder
	for _, node := range nodes {
		sb.WriteString(strings.Repeat("  ", indent))
		sb.WriteString(node.Title)
		sb.WriteString("\n")
		if len(node.Children) > 0 {
			sb.WriteString(Render(node.Children, indent+1))
		}
	}
	return sb.String()
}
