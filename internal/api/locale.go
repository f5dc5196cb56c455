package api

import "strings"

// ResolveLocale picks the active locale for a request: the leading
// path segment of the current route wins, then the stored preference,
// then the configured default. Only known locales are honored from the
// route path.
func ResolveLocale(routePath, stored, fallback string) string {
	if seg := firstSegment(routePath); seg == LocaleArabic || seg == LocaleEnglish {
		return seg
	}
	if stored != "" {
		return stored
	}
	if fallback != "" {
		return fallback
	}
	return LocaleEnglish
}

func firstSegment(path string) string {
	path = strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(path, '/'); i >= 0 {
		return path[:i]
	}
	return path
}
