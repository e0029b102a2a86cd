package render

import "path"

// Env selects development or production page output.
type Env string

const (
	EnvDev  Env = "dev"
	EnvProd Env = "prod"
)

// Options are the render settings shared by every page, loaded once from
// the project configuration.
type Options struct {
	// OutputName is the base name of the client bundle (<name>.wasm).
	OutputName string

	// SiteRoot is the directory static assets are served from.
	SiteRoot string

	// SitePkgDir is the directory under SiteRoot holding the client bundle.
	SitePkgDir string

	// SiteAddr is the address the server listens on.
	SiteAddr string

	Env Env

	// ReloadPath is the live-reload websocket path, used in dev only.
	ReloadPath string

	// ServerURL is written to the page for clients that call server
	// functions on another origin. Empty means same origin.
	ServerURL string
}

// IsDev reports whether the options describe a development build.
func (o Options) IsDev() bool {
	return o.Env != EnvProd
}

// WasmURL is the URL path of the client bundle.
func (o Options) WasmURL() string {
	return path.Join("/", o.SitePkgDir, o.OutputName+".wasm")
}

// LoaderURL is the URL path of the Go wasm_exec.js support script.
func (o Options) LoaderURL() string {
	return path.Join("/", o.SitePkgDir, "wasm_exec.js")
}

// StyleURL is the URL path of the generated stylesheet.
func (o Options) StyleURL() string {
	return path.Join("/", o.SitePkgDir, o.OutputName+".css")
}
