package main

import (
	. "github.com/saylorsolutions/modmake"
)

const (
	pixlockVersion = "0.1.0"
)

func main() {
	b := NewBuild()
	b.Generate().DependsOnRunner("tidy", "", Go().ModTidy())

	pixlock := NewAppBuild("pixlock", "cmd/pixlock", pixlockVersion)
	pixlock.Build(func(gb *GoBuild) {
		gb.
			StripDebugSymbols().
			SetVariable("main", "version", pixlockVersion).
			CgoEnabled(false)
	})
	pixlock.Variant("windows", "amd64")
	pixlock.Variant("linux", "amd64")
	pixlock.Variant("linux", "arm64")
	pixlock.Variant("darwin", "amd64")
	pixlock.Variant("darwin", "arm64")
	b.ImportApp(pixlock)

	b.Execute()
}
