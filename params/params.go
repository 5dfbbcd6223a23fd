// Package params persists small values as individual files, written
// atomically under a directory lock so concurrent writers (the daemon and
// the cli) never observe partial data.
package params

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"

	"github.com/gofrs/flock"
)

var (
	ParamsPath string = defaultParamsPath()
)

// Params
var (
	JOGD_SETTINGS = ParamPath("JogdSettings")
)

func defaultParamsPath() string {
	if dir := os.Getenv("JOGD_PARAMS_PATH"); dir != "" {
		return dir
	}
	return "/var/lib/jogd/params/d"
}

// Exists returns whether the given file or directory exists
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Wrap(err, "could not check param file stats")
}

func EnsureParamDirectories() {
	err := os.MkdirAll(ParamsPath, 0o775)
	if err != nil {
		slog.Warn("could not make params directory", "error", err, "directory", ParamsPath)
	}
}

func ParamPath(name string) string {
	return filepath.Join(ParamsPath, name)
}

func GetParam(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func lockParams(lockDir string) (*flock.Flock, error) {
	fileLock := flock.New(filepath.Join(lockDir, ".lock"))

	retries := 0
	for {
		locked, err := fileLock.TryLock()
		if err != nil {
			return nil, errors.Wrap(err, "could not try locking param directory")
		}
		if locked {
			return fileLock, nil
		}
		retries += 1
		if retries > 30 {
			// try to force the lock to be removed
			if err := os.Remove(filepath.Join(lockDir, ".lock")); err != nil {
				slog.Debug("failed to force delete params lock", "error", err)
			}
		}
		if retries > 50 {
			return nil, errors.New("could not obtain lock")
		}
		// if we didn't obtain the lock let's try again after a short delay
		time.Sleep(1 * time.Millisecond)
	}
}

func unlockParams(fileLock *flock.Flock, lockDir string) {
	if err := fileLock.Unlock(); err != nil {
		slog.Error("could not unlock params directory", "error", err)
	}
	if err := os.Remove(filepath.Join(lockDir, ".lock")); err != nil {
		slog.Error("could not remove params lock file", "error", err)
	}
}

func PutParam(path string, data []byte) error {
	dir := filepath.Dir(path)
	lockDir := filepath.Dir(dir)
	file, err := os.CreateTemp(dir, ".tmp_value_"+filepath.Base(path))
	if err != nil {
		return errors.Wrap(err, "could not create temp param file")
	}
	tmpName := file.Name()
	defer os.Remove(tmpName)

	_, err = file.Write(data)
	if err != nil {
		return errors.Wrap(err, "could not write data to temp param file")
	}

	err = file.Sync()
	if err != nil {
		return errors.Wrap(err, "could not fsync temp param file")
	}

	fileLock, err := lockParams(lockDir)
	if err != nil {
		return err
	}
	defer unlockParams(fileLock, lockDir)

	err = os.Rename(tmpName, path)
	if err != nil {
		return errors.Wrap(err, "could not move temp param file to persistent location")
	}

	return syncDir(dir)
}

func RemoveParam(path string) error {
	dir := filepath.Dir(path)
	lockDir := filepath.Dir(dir)

	fileLock, err := lockParams(lockDir)
	if err != nil {
		return err
	}
	defer unlockParams(fileLock, lockDir)

	os.Remove(path)

	return syncDir(dir)
}

func syncDir(dir string) error {
	directory, err := os.Open(dir)
	if err != nil {
		return errors.Wrap(err, "could not open params directory")
	}
	defer directory.Close()

	err = directory.Sync()
	if err != nil {
		return errors.Wrap(err, "could not fsync params directory")
	}

	return nil
}
