// Package assets embeds the static file tree and the icon set shipped with
// the binary, so a deployment is the executable plus the content directory
// and nothing else.
package assets

import (
	"embed"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed static
var staticFiles embed.FS

//go:embed icons/*.svg
var iconFiles embed.FS

// Static is the file tree served under /static/.
var Static fs.FS

// iconsByName maps icon identifiers to inline SVG markup. Resolved once
// here; components look icons up by name only.
var iconsByName map[string]string

func init() {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	Static = sub

	entries, err := iconFiles.ReadDir("icons")
	if err != nil {
		panic(err)
	}

	iconsByName = make(map[string]string, len(entries))
	for _, entry := range entries {
		data, err := iconFiles.ReadFile(path.Join("icons", entry.Name()))
		if err != nil {
			panic(err)
		}
		name := strings.TrimSuffix(entry.Name(), ".svg")
		iconsByName[name] = string(data)
	}
}

// Icon returns the inline SVG markup for a named icon. Unknown names return
// false; callers decide how to degrade.
func Icon(name string) (string, bool) {
	svg, ok := iconsByName[name]
	return svg, ok
}

// IconNames lists the registered icon identifiers in sorted order.
func IconNames() []string {
	names := make([]string, 0, len(iconsByName))
	for name := range iconsByName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
