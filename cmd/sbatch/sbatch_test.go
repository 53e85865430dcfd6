package sbatch

import (
	"testing"

	"github.com/ohsu-comp-bio/snakesub/cmd/util"
	"github.com/ohsu-comp-bio/snakesub/config"
	"github.com/ohsu-comp-bio/snakesub/logger"
)

func TestPreRunConfigMerge(t *testing.T) {
	fileConf := config.DefaultConfig()
	fileConf.Sbatch.WrapperScript = "/cluster/bin/jobwrapper.sh"
	fileConf.Sbatch.Account = "examplelab"
	tmp, cleanup := util.TempConfigFile(fileConf, "testconfig.yaml")
	defer cleanup()

	c, h := newCommandHooks()
	h.Run = func(conf config.Config, deps []string, script string, log *logger.Logger) (int, error) {
		if conf.Sbatch.WrapperScript != "/cluster/bin/jobwrapper.sh" {
			t.Fatal("unexpected wrapper script:", conf.Sbatch.WrapperScript)
		}
		if conf.Sbatch.Account != "examplelab" {
			t.Fatal("unexpected account:", conf.Sbatch.Account)
		}
		if len(deps) != 1 || deps[0] != "42" {
			t.Fatal("unexpected deps:", deps)
		}
		if script != "snakejob.bwa_mem.5.sh" {
			t.Fatal("unexpected script:", script)
		}
		return 1, nil
	}

	c.SetArgs([]string{"--config", tmp, "42", "snakejob.bwa_mem.5.sh"})
	if err := c.Execute(); err != nil {
		t.Fatal(err)
	}
}

func TestAccountFlagOverridesConfigFile(t *testing.T) {
	fileConf := config.DefaultConfig()
	fileConf.Sbatch.Account = "filelab"
	tmp, cleanup := util.TempConfigFile(fileConf, "testconfig.yaml")
	defer cleanup()

	c, h := newCommandHooks()
	h.Run = func(conf config.Config, deps []string, script string, log *logger.Logger) (int, error) {
		if conf.Sbatch.Account != "flaglab" {
			t.Fatal("unexpected account:", conf.Sbatch.Account)
		}
		return 1, nil
	}

	c.SetArgs([]string{"--config", tmp, "--Sbatch.Account", "flaglab", "snakejob.sh"})
	if err := c.Execute(); err != nil {
		t.Fatal(err)
	}
}

func TestMissingScriptArgument(t *testing.T) {
	c, h := newCommandHooks()
	h.Run = func(conf config.Config, deps []string, script string, log *logger.Logger) (int, error) {
		t.Fatal("Run should not be called")
		return 0, nil
	}

	c.SetArgs([]string{})
	if err := c.Execute(); err == nil {
		t.Fatal("expected an error when no job script is given")
	}
}
