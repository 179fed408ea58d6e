package main

import (
	. "github.com/saylorsolutions/modmake"
)

const (
	cryptopalsVersion = "0.1.0"
)

func main() {
	b := NewBuild()
	b.Generate().DependsOnRunner("tidy", "", Go().ModTidy())

	app := NewAppBuild("cryptopals", "cmd/cryptopals", cryptopalsVersion)
	app.Build(func(gb *GoBuild) {
		gb.
			StripDebugSymbols().
			SetVariable("main", "version", cryptopalsVersion).
			CgoEnabled(false)
	})
	for _, platform := range [][2]string{
		{"windows", "amd64"},
		{"linux", "amd64"},
		{"linux", "arm64"},
		{"darwin", "amd64"},
		{"darwin", "arm64"},
	} {
		app.Variant(platform[0], platform[1])
	}
	b.ImportApp(app)

	b.Execute()
}
