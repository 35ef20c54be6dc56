package todo

import "path/filepath"

// HomeNotice is reported when the home directory cannot be determined.
const HomeNotice = "could not find home directory, using current location"

// Resolution is the outcome of locating the list file. Notice is non-empty
// when resolution fell back to the current directory; emitting it is up to
// the caller.
type Resolution struct {
	Path   string
	Notice string
}

// Fallback reports whether the home directory lookup failed.
func (r Resolution) Fallback() bool {
	return r.Notice != ""
}

// ResolveStoragePath joins the home directory returned by lookup with
// fileName. If lookup fails or returns an empty directory, the path is
// relative to the current working directory and Notice is set.
func ResolveStoragePath(lookup func() (string, error), fileName string) Resolution {
	if fileName == "" {
		fileName = DefaultFileName
	}

	home, err := lookup()
	if err != nil || home == "" {
		return Resolution{Path: fileName, Notice: HomeNotice}
	}

	return Resolution{Path: filepath.Join(home, fileName)}
}
