package cli

import (
	"os"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

func TestMain(m *testing.M) {
	os.Exit(testscript.RunMain(m, map[string]func() int{
		"aliuplugrn-cli": func() int {
			return Run(os.Args[1:], "v1.2.0", "abc1234", "2024-05-01")
		},
	}))
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata/script",
		Setup: func(env *testscript.Env) error {
			env.Setenv("NO_COLOR", "1")
			env.Setenv("npm_config_user_agent", "npm/10.2.0 node/v20.10.0 linux x64")
			return nil
		},
	})
}
