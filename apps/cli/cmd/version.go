package cmd

var (
	version   = "dev"
	buildTime = "unknown"
)

func versionTemplate() string {
	return "h2curl version {{.Version}}\nBuilt: " + buildTime + "\n"
}
