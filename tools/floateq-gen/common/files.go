package common

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

func IsGeneratedFile(fileName string) bool {
	baseName := filepath.Base(fileName)
	return strings.HasSuffix(baseName, GENERATED_SUFFIX)
}

// GetAbsoluteDirectory resolves path and checks that it names a directory.
func GetAbsoluteDirectory(path string) (string, error) {
	absolute, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrapf(err, "could not evaluate %s as an absolute path", path)
	}
	s, err := os.Stat(absolute)
	if err != nil {
		return "", errors.WithStack(err)
	}
	if !s.IsDir() {
		return "", errors.Errorf("%s is not a directory", absolute)
	}
	return absolute, nil
}

func WriteTextFile(text, fileName string) error {
	if err := os.WriteFile(fileName, []byte(text), 0644); err != nil {
		return errors.Wrapf(err, "unable to write %s", fileName)
	}
	return nil
}
