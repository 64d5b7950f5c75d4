package derive

import (
	"github.com/antithesishq/floateq/tools/floateq-gen/common"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"golang.org/x/tools/go/packages"
)

// PackageFiles are the non-test Go files of the package in one directory.
type PackageFiles struct {
	Name    string
	PkgPath string
	GoFiles []string
}

// LoadPackage lists the files of the package in dir, leaving out any
// previously generated output.
func LoadPackage(dir string, logWriter *common.LogWriter) (*PackageFiles, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles,
		Dir:  dir,
	}
	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return nil, errors.Wrapf(err, "unable to load package in %s", dir)
	}
	if len(pkgs) != 1 {
		return nil, errors.Errorf("expected one package in %s, found %d", dir, len(pkgs))
	}
	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		// Type errors are expected while derived methods are missing.
		listErrors := lo.Filter(pkg.Errors, func(e packages.Error, _ int) bool {
			return e.Kind == packages.ListError
		})
		if len(listErrors) > 0 {
			return nil, errors.Errorf("unable to load package in %s: %s", dir, listErrors[0].Msg)
		}
	}

	files := &PackageFiles{
		Name:    pkg.Name,
		PkgPath: pkg.PkgPath,
		GoFiles: lo.Reject(pkg.GoFiles, func(f string, _ int) bool {
			return common.IsGeneratedFile(f)
		}),
	}
	if logWriter.VerboseLevel(2) {
		logWriter.Debugf("Loaded %s with %d %s", pkg.PkgPath, len(files.GoFiles), common.Pluralize(len(files.GoFiles), "file"))
	}
	return files, nil
}
