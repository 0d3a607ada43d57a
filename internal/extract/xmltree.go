// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"bytes"
	"encoding/xml"
	"strings"
)

// Node is one element in a parsed XML document part. Element tags are
// compared by local name only; Office formats vary the namespace prefix
// (w:t, a:t) but not the local name of a text run.
type Node struct {
	Tag      string
	Attrs    []xml.Attr
	Children []Node
	Text     string
}

// ParseTree parses an XML document into a Node tree rooted at the first
// top-level element
func ParseTree(data []byte) (*Node, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := decoder.Token()
		if err != nil {
			return nil, err
		}
		if start, ok := tok.(xml.StartElement); ok {
			root := &Node{}
			if err := root.parse(decoder, start); err != nil {
				return nil, err
			}
			return root, nil
		}
	}
}

func (n *Node) parse(decoder *xml.Decoder, start xml.StartElement) error {
	n.Tag = start.Name.Local
	n.Attrs = start.Attr

	for {
		tok, err := decoder.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			var child Node
			if err := child.parse(decoder, t); err != nil {
				return err
			}
			n.Children = append(n.Children, child)
		case xml.CharData:
			n.Text += string(t)
		case xml.EndElement:
			return nil
		}
	}
}

// CollectTextRuns walks the tree depth-first, left to right, and returns the
// text of every node whose tag matches runTag, in document order. A matching
// node with no character data contributes an empty string.
func CollectTextRuns(root *Node, runTag string) []string {
	var runs []string
	var walk func(n *Node)
	walk = func(n *Node) {
		if n.Tag == runTag {
			runs = append(runs, n.Text)
			return
		}
		for i := range n.Children {
			walk(&n.Children[i])
		}
	}
	walk(root)
	return runs
}

// JoinRuns normalizes collected runs into display text: internal whitespace
// collapses to single spaces, blank runs are dropped, and the remainder joins
// with single newlines.
func JoinRuns(runs []string) string {
	lines := make([]string, 0, len(runs))
	for _, run := range runs {
		line := strings.Join(strings.Fields(run), " ")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
