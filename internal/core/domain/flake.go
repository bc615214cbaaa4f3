package domain

import (
	"net/url"
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

// FlakeURL is a flake reference as accepted by the nix CLI, optionally
// followed by "#" and a dotted attribute path.
type FlakeURL string

// ParseFlakeURL validates s and returns it as a FlakeURL. An empty string
// refers to the flake in the current directory.
func ParseFlakeURL(s string) (FlakeURL, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ".", nil
	}
	if strings.ContainsAny(s, " \t\n") || strings.Count(s, "#") > 1 || strings.HasPrefix(s, "#") {
		return "", zerr.Wrap(ErrInvalidFlakeURL, "cannot parse flake reference")
	}
	return FlakeURL(s), nil
}

func (u FlakeURL) String() string {
	return string(u)
}

// SplitAttr separates the attribute path from the flake reference.
func (u FlakeURL) SplitAttr() (FlakeURL, []string) {
	base, attr, found := strings.Cut(string(u), "#")
	if !found || attr == "" {
		return FlakeURL(base), nil
	}
	return FlakeURL(base), strings.Split(attr, ".")
}

// WithAttr returns the reference pointing at the given flake output attribute.
func (u FlakeURL) WithAttr(attr string) FlakeURL {
	base, _ := u.SplitAttr()
	if attr == "" {
		return base
	}
	return FlakeURL(string(base) + "#" + attr)
}

// LocalPath reports the filesystem path of a local path flake.
func (u FlakeURL) LocalPath() (string, bool) {
	base, _ := u.SplitAttr()
	s := string(base)
	if strings.Contains(s, "?") {
		return "", false
	}
	s = strings.TrimPrefix(s, "path:")
	if s == "." || s == ".." || strings.HasPrefix(s, "/") ||
		strings.HasPrefix(s, "./") || strings.HasPrefix(s, "../") {
		return s, true
	}
	return "", false
}

// SubFlake returns the reference of the flake living in dir relative to u.
func (u FlakeURL) SubFlake(dir string) FlakeURL {
	base, _ := u.SplitAttr()
	if dir == "" || dir == "." {
		return base
	}

	if p, ok := base.LocalPath(); ok {
		joined := filepath.Join(p, dir)
		if !filepath.IsAbs(joined) && !strings.HasPrefix(joined, ".") {
			joined = "./" + joined
		}
		if strings.HasPrefix(string(base), "path:") {
			return FlakeURL("path:" + joined)
		}
		return FlakeURL(joined)
	}

	sep := "?"
	if strings.Contains(string(base), "?") {
		sep = "&"
	}
	return FlakeURL(string(base) + sep + "dir=" + dir)
}

// Dir returns the subdirectory named by the "dir" query parameter, if any.
func (u FlakeURL) Dir() string {
	base, _ := u.SplitAttr()
	_, query, found := strings.Cut(string(base), "?")
	if !found {
		return ""
	}
	values, err := url.ParseQuery(query)
	if err != nil {
		return ""
	}
	return values.Get("dir")
}

// StoreFlake returns the reference of a flake whose source tree was copied
// to the store at p, rooted at dir inside that tree.
func StoreFlake(p StorePath, dir string) FlakeURL {
	if dir == "" || dir == "." {
		return FlakeURL(p)
	}
	return FlakeURL("path:" + p.String() + "?dir=" + dir)
}
