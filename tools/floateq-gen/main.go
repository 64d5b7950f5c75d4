package main

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/antithesishq/floateq/tools/floateq-gen/cmd"
	"github.com/antithesishq/floateq/tools/floateq-gen/common"
	"github.com/antithesishq/floateq/tools/floateq-gen/derive"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

//go:embed version.txt
var versionString string

func newRootCommand() *cobra.Command {
	cfg := viper.New()
	rootCmd := &cobra.Command{
		Use:   "floateq-gen [flags] [package_dir]",
		Short: "Derive floateq comparison methods for structs",
		Long: strings.TrimSpace(versionString) + `

Generates the floateq comparison and debug methods for every struct in a
package whose declaration carries a directive such as:

  //floateq:derive ulps_epsilon=PointUlps debug_ulps_diff=PointDebugUlpsDiff all_epsilon=float64

The methods are written to <package>_floateq.go in the package directory.
Run it from a go:generate line, or pass the package directory explicitly.

Every flag can also be set from the environment, e.g. FLOATEQ_GEN_DRY_RUN=true.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(c *cobra.Command, _ []string) error {
			cfg.SetEnvPrefix(common.ENV_PREFIX)
			cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
			cfg.AutomaticEnv()
			return cfg.BindPFlags(c.Flags())
		},
		RunE: func(c *cobra.Command, args []string) error {
			cmdArgs := cmd.ParseArgs(cfg, args, versionString)
			if cmdArgs.ShowVersion {
				fmt.Fprintln(c.OutOrStdout(), cmdArgs.VersionText)
				return nil
			}
			return run(cmdArgs, c.OutOrStdout())
		},
	}

	cmd.AddFlags(rootCmd.Flags())
	return rootCmd
}

func run(cmdArgs *cmd.CommandArgs, stdout io.Writer) error {
	logWriter := cmdArgs.LogWriter()
	if logWriter.IsVerbose() {
		cmdArgs.ShowArguments()
	}

	inputDirectory, err := cmdArgs.InputDirectory()
	if err != nil {
		return err
	}
	moduleRoot, err := cmd.FindModuleRoot(inputDirectory)
	if err != nil {
		return err
	}
	moduleName, err := cmd.GetModuleName(moduleRoot)
	if err != nil {
		return errors.Wrapf(err, "unable to obtain go module name from %q", moduleRoot)
	}
	logWriter.Printf("Module: %q", moduleName)

	pkgFiles, err := derive.LoadPackage(inputDirectory, logWriter)
	if err != nil {
		return err
	}

	scanner := derive.NewScanner(logWriter)
	for _, fileName := range pkgFiles.GoFiles {
		if err = scanner.ScanFile(fileName); err != nil {
			return err
		}
	}
	structs, err := scanner.Resolve()
	if err != nil {
		return err
	}
	if len(structs) == 0 {
		logWriter.Warnf("No `%s` directives found in %s", common.DIRECTIVE, pkgFiles.PkgPath)
		return nil
	}

	src, err := derive.Generate(derive.NewGenInfo(pkgFiles.Name, cmdArgs.VersionText, structs))
	if err != nil {
		return err
	}

	if cmdArgs.DryRun {
		if _, err = stdout.Write(src); err != nil {
			return errors.WithStack(err)
		}
	} else {
		outputPath := cmdArgs.OutputPath(inputDirectory, pkgFiles.Name)
		if err = common.WriteTextFile(string(src), outputPath); err != nil {
			return err
		}
		logWriter.Printf("Derived methods: %q", outputPath)
	}

	logWriter.Printf("Derived %d %s from %d %s",
		len(structs), common.Pluralize(len(structs), "struct"),
		scanner.FilesScanned, common.Pluralize(scanner.FilesScanned, "file"))
	return nil
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		common.GetLogWriter().Errorf(err, "floateq-gen failed")
		os.Exit(1)
	}
}
