package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/antithesishq/floateq/tools/floateq-gen/common"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/mod/modfile"
)

const (
	FlagVerbose = "verbose"
	FlagLogfile = "logfile"
	FlagOutput  = "output"
	FlagDryRun  = "dry-run"
	FlagVersion = "version"
)

// AddFlags registers the command line flags read by ParseArgs.
func AddFlags(flags *pflag.FlagSet) {
	flags.CountP(FlagVerbose, "v", "verbosity level, repeat for more detail")
	flags.String(FlagLogfile, "", "file path to log into (default=stderr)")
	flags.StringP(FlagOutput, "o", "", "file to write the generated methods to (default=<package>_floateq.go)")
	flags.Bool(FlagDryRun, false, "print the generated methods instead of writing them")
	flags.Bool(FlagVersion, false, "the current version of this application")
}

// Capitalized struct items are accessed outside this file
type CommandArgs struct {
	logWriter   *common.LogWriter
	inputDir    string
	outputFile  string
	VersionText string
	ShowVersion bool
	DryRun      bool
}

// ParseArgs reads the settings bound in cfg. args holds the optional package
// directory, which defaults to the current directory (the one go generate
// runs in).
func ParseArgs(cfg *viper.Viper, args []string, versionText string) *CommandArgs {
	cmdArgs := CommandArgs{
		VersionText: strings.TrimSpace(versionText),
		ShowVersion: cfg.GetBool(FlagVersion),
	}
	if cmdArgs.ShowVersion {
		return &cmdArgs
	}

	cmdArgs.logWriter = common.NewLogWriter(cfg.GetString(FlagLogfile), cfg.GetInt(FlagVerbose))
	cmdArgs.outputFile = strings.TrimSpace(cfg.GetString(FlagOutput))
	cmdArgs.DryRun = cfg.GetBool(FlagDryRun)
	cmdArgs.inputDir = "."
	if len(args) > 0 {
		cmdArgs.inputDir = args[0]
	}
	return &cmdArgs
}

func (ca *CommandArgs) LogWriter() *common.LogWriter {
	return ca.logWriter
}

func (ca *CommandArgs) ShowArguments() {
	ca.logWriter.Printf("inputDir: %q", ca.inputDir)
	if ca.outputFile != "" {
		ca.logWriter.Printf("outputFile: %q", ca.outputFile)
	}

	// Intentional: no need to show anything if not a dry run
	if ca.DryRun {
		ca.logWriter.Printf("dryRun: %t", ca.DryRun)
	}
}

// InputDirectory is the absolute path of the package directory.
func (ca *CommandArgs) InputDirectory() (string, error) {
	return common.GetAbsoluteDirectory(ca.inputDir)
}

// OutputPath is where the generated file for packageName is written: the
// -output flag if given, otherwise <package>_floateq.go in inputDirectory.
func (ca *CommandArgs) OutputPath(inputDirectory, packageName string) string {
	if ca.outputFile == "" {
		return filepath.Join(inputDirectory, common.GeneratedFileName(packageName))
	}
	if filepath.IsAbs(ca.outputFile) {
		return ca.outputFile
	}
	return filepath.Join(inputDirectory, ca.outputFile)
}

// FindModuleRoot walks up from dir to the nearest directory holding a go.mod.
func FindModuleRoot(dir string) (string, error) {
	for current := dir; ; {
		if _, err := os.Stat(filepath.Join(current, "go.mod")); err == nil {
			return current, nil
		}
		parent := filepath.Dir(current)
		if parent == current {
			return "", errors.Errorf("no go.mod found in %s or any parent directory", dir)
		}
		current = parent
	}
}

func GetModuleName(inputDir string) (moduleName string, err error) {
	var moduleData []byte
	var f *modfile.File = nil
	moduleFilenamePath := filepath.Join(inputDir, "go.mod")
	if moduleData, err = os.ReadFile(moduleFilenamePath); err != nil {
		return "", errors.WithStack(err)
	}

	if f, err = modfile.ParseLax("go.mod", moduleData, nil); err != nil {
		return "", errors.Wrapf(err, "unable to parse %s", moduleFilenamePath)
	}
	if f.Module == nil {
		return "", errors.Errorf("%s has no module directive", moduleFilenamePath)
	}
	return f.Module.Mod.Path, nil
}
