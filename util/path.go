package util

import (
	"strings"
)

// NormalizePath collapses `//`, `/./` and `segment/../` in `p` until none of them can be
// reduced any further. A `../` that would climb above the first segment of the path
// (`/../x`, `../x`, `./../x`) is left untouched.
func NormalizePath(p string) string {
	for {
		next := collapseParents(collapseCurrent(collapseSeparators(p)))
		if next == p {
			return p
		}
		p = next
	}
}

func collapseSeparators(p string) string {
	for strings.Contains(p, "//") {
		p = strings.ReplaceAll(p, "//", "/")
	}
	return p
}

func collapseCurrent(p string) string {
	for strings.Contains(p, "/./") {
		p = strings.ReplaceAll(p, "/./", "/")
	}
	return p
}

func collapseParents(p string) string {
	// Everything before `from` is a run of parent references that cannot be collapsed.
	from := 0
	for {
		idx := strings.Index(p[from:], "/../")
		if idx < 0 {
			return p
		}
		idx += from

		head := p[:idx]
		sep := strings.LastIndex(head, "/")
		segment := head[sep+1:]
		switch {
		case segment == "" || segment == "." || segment == "..":
			from = idx + 1
		case sep < 0:
			p = p[idx+len("/../"):]
		default:
			p = head[:sep] + p[idx+len("/.."):]
		}
	}
}

// InstallPrefix derives the installation root from the path of an executable living in
// `<prefix>/bin/`. The result keeps its trailing separator. It reports false if the path
// has fewer than two components to strip.
func InstallPrefix(executable string) (string, bool) {
	p := NormalizePath(executable)
	idx := strings.LastIndex(p, "/")
	if idx < 0 {
		return "", false
	}
	p = p[:idx]
	idx = strings.LastIndex(p, "/")
	if idx < 0 {
		return "", false
	}
	return p[:idx+1], true
}
