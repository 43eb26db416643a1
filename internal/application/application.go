package application

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
)

const (
	// AppName is the application name used for directories and identification
	AppName = "studyplan"

	// AppVersion is reported by `studyplan --version`
	AppVersion = "0.3.0"

	// ConfigFileName is the INI file looked up inside the application directory
	ConfigFileName = "studyplan.ini"
)

var (
	once   sync.Once
	appDir string
	errDir error
)

// GetApplicationDirectory returns the studyplan configuration directory path.
// Linux: ~/.config/studyplan (via os.UserConfigDir)
// Windows: C:\Users\{username}\AppData\Local\studyplan (via os.UserCacheDir)
func GetApplicationDirectory() (string, error) {
	once.Do(lazyLoad)

	if errDir != nil {
		return "", errDir
	}

	return appDir, nil
}

// EnsureDirectory creates dir (and parents) with owner-only permissions.
func EnsureDirectory(dir string) error {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	return nil
}

func lazyLoad() {
	var (
		baseDir string
		err     error
	)

	switch runtime.GOOS {
	case "windows":
		// Windows: use AppData\Local (via UserCacheDir)
		baseDir, err = os.UserCacheDir()
	default:
		// Linux/others: use ~/.config (via UserConfigDir)
		baseDir, err = os.UserConfigDir()
	}

	if err != nil {
		errDir = fmt.Errorf("failed to get config directory: %w", err)

		return
	}

	appDir = filepath.Join(baseDir, AppName)
}
