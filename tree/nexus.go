// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
)

var (
	translateLineRe = regexp.MustCompile(`^(\d+)\s+['"]?([^'",;]+)['"]?`)
	treeLineRe      = regexp.MustCompile(`(?i)^TREE\s*\*?\s+(\S+)\s*=\s*(.+)$`)
)

// ReadNexus reads the TREES block of a NEXUS stream and returns its
// trees keyed by name. An optional TRANSLATE block preceding the tree
// list is resolved into taxon names before parsing.
func ReadNexus(r io.Reader) (map[string]*Node, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		if strings.EqualFold(strings.TrimSpace(sc.Text()), "begin trees;") {
			return parseTreesBlock(sc)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("tree: reading nexus: %v", err)
	}
	return nil, fmt.Errorf("tree: no TREES block found in the nexus file")
}

func parseTreesBlock(sc *bufio.Scanner) (map[string]*Node, error) {
	trees := make(map[string]*Node)
	var translations map[string]string
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "":
			continue
		case strings.EqualFold(line, "translate"):
			t, err := parseTranslateBlock(sc)
			if err != nil {
				return nil, fmt.Errorf("tree: %v", err)
			}
			translations = t
		case strings.EqualFold(line, "end;"):
			return trees, nil
		default:
			m := treeLineRe.FindStringSubmatch(line)
			if m == nil {
				return nil, fmt.Errorf("tree: invalid tree line %q: expected 'TREE <name> = <newick>'", line)
			}
			name := m[1]
			if _, ok := trees[name]; ok {
				return nil, fmt.Errorf("tree: duplicate tree name %q", name)
			}
			root, err := ParseNewick(m[2], translations)
			if err != nil {
				return nil, err
			}
			trees[name] = root
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("tree: reading nexus: %v", err)
	}
	return nil, fmt.Errorf("tree: unterminated TREES block")
}

func parseTranslateBlock(sc *bufio.Scanner) (map[string]string, error) {
	translations := make(map[string]string)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		m := translateLineRe.FindStringSubmatch(line)
		if m == nil {
			if strings.Contains(line, ";") {
				return translations, nil
			}
			return nil, fmt.Errorf("invalid translate line %q: expected '<num> <name>'", line)
		}
		translations[m[1]] = m[2]
	}
	return nil, fmt.Errorf("translate block not terminated with ';'")
}
