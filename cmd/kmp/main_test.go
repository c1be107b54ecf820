package main_test

import (
	"os"
	"testing"

	"fortio.org/testscript"
	main "github.com/katalvlaran/editorials/cmd/kmp"
)

func TestMain(m *testing.M) {
	os.Exit(testscript.RunMain(m, map[string]func() int{
		"kmp": main.Main,
	}))
}

func TestKmpCli(t *testing.T) {
	testscript.Run(t, testscript.Params{Dir: "testdata"})
}
