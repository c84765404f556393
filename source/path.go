package source

import (
	"path"
	"strings"
)

// IncludePath resolves an include written in includer to an absolute,
// cleaned path with '/' separators. Backslashes are treated as separators
// and a leading drive letter makes a path absolute, whatever the host OS.
func IncludePath(includer, p string) string {
	p = toSlash(p)
	if !IsAbs(p) {
		p = path.Join(path.Dir(toSlash(includer)), p)
	}
	return CleanPath(p)
}

// CleanPath normalises a file name the way include paths are normalised.
func CleanPath(p string) string {
	return path.Clean(toSlash(p))
}

func IsAbs(p string) bool {
	return strings.HasPrefix(p, "/") || hasDrive(p)
}

// Rel returns target relative to the directory dir, using "./" and "../"
// prefixes.
func Rel(dir, target string) string {
	dir, target = CleanPath(dir), CleanPath(target)
	ds := splitSlash(dir)
	ts := splitSlash(target)
	i := 0
	for i < len(ds) && i < len(ts)-1 && ds[i] == ts[i] {
		i++
	}
	if i == 0 && len(ds) > 0 && len(ts) > 0 && ds[0] != ts[0] && (hasDrive(dir) || hasDrive(target)) {
		// different volumes
		return target
	}
	up := len(ds) - i
	rest := strings.Join(ts[i:], "/")
	if up == 0 {
		return "./" + rest
	}
	return strings.Repeat("../", up) + rest
}

func splitSlash(p string) []string {
	var res []string
	for _, s := range strings.Split(p, "/") {
		if s != "" && s != "." {
			res = append(res, s)
		}
	}
	return res
}

func toSlash(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}

func hasDrive(p string) bool {
	if len(p) < 2 || p[1] != ':' {
		return false
	}
	c := p[0]
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
