// Package offline keeps the web bundle available without a network.
// A versioned copy of every manifest asset is installed into the asset
// cache up front; requests are then answered cache-first, falling back to
// the origin and finally to the cached entry page.
package offline

import (
	"embed"
	"io/fs"
)

// CacheVersion names the current asset cache. Activating a worker purges
// every other version.
const CacheVersion = "oceanrun-v3"

//go:embed web
var bundle embed.FS

// Bundle returns the embedded web assets rooted at the bundle directory.
func Bundle() fs.FS {
	sub, err := fs.Sub(bundle, "web")
	if err != nil {
		panic(err) // the directory is embedded at build time
	}
	return sub
}

// Manifest lists the assets to cache under one version.
type Manifest struct {
	Version   string
	EntryPage string
	Assets    []string
}

// DefaultManifest returns the manifest of the embedded bundle.
func DefaultManifest() Manifest {
	return Manifest{
		Version:   CacheVersion,
		EntryPage: "/index.html",
		Assets: []string{
			"/",
			"/index.html",
			"/manifest.json",
			"/icon.svg",
		},
	}
}
