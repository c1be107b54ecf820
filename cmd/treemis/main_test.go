package main_test

import (
	"os"
	"testing"

	"fortio.org/testscript"
	main "github.com/katalvlaran/editorials/cmd/treemis"
)

func TestMain(m *testing.M) {
	os.Exit(testscript.RunMain(m, map[string]func() int{
		"treemis": main.Main,
	}))
}

func TestTreemisCli(t *testing.T) {
	testscript.Run(t, testscript.Params{Dir: "testdata"})
}
