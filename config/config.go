package config

import (
	"os"
	"os/user"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

var Opts *Options

// GetConfig builds the process options from defaults, then applies the
// environment overrides used by container deployments.
func GetConfig() (*Options, error) {
	GetDefaultOptions()
	applyEnvOverrides(Opts)

	dataDir, err := checkDataDir(Opts.Data)
	if err != nil {
		return nil, errors.Wrap(err, "check data directory")
	}

	Opts.Data = dataDir
	Opts.DSN = filepath.Join(Opts.Data, "bookscan.db")

	return Opts, nil
}

// applyEnvOverrides maps the environment variables used by container
// platforms onto the options. Values from a config file win over defaults,
// env wins over both.
func applyEnvOverrides(opts *Options) {
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			opts.Port = port
		}
	}
	if v := os.Getenv("GOOGLE_BOOKS_API_KEY"); v != "" {
		opts.CatalogAPIKey = v
	}
	if v := os.Getenv("NOTION_TOKEN"); v != "" {
		opts.NotionToken = v
	}
	if v := os.Getenv("NOTION_DATABASE_ID"); v != "" {
		opts.NotionDatabaseID = v
	}
	if v := os.Getenv("BOOKSCAN_DATA"); v != "" {
		opts.Data = v
	}
}

func checkDataDir(dataDir string) (string, error) {
	// Convert to absolute path if relative path is supplied.
	if !filepath.IsAbs(dataDir) {
		relativeDir := filepath.Join(filepath.Dir(os.Args[0]), dataDir)
		absDir, err := filepath.Abs(relativeDir)
		if err != nil {
			return "", err
		}
		dataDir = absDir
	}

	// Trim trailing \ or / in case user supplies
	dataDir = strings.TrimRight(dataDir, "\\/")
	if _, err := os.Stat(dataDir); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return "", errors.Wrapf(err, "unable to access data folder %s", dataDir)
		}
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			if !errors.Is(err, os.ErrPermission) {
				return "", errors.Wrapf(err, "unable to create data folder %s", dataDir)
			}
			// Permission denied, fall back to the user's home directory
			currentUser, err := user.Current()
			if err != nil {
				return "", errors.Wrap(err, "unable to get current user")
			}
			homeDir := currentUser.HomeDir
			if homeDir == "" {
				return "", errors.New("unable to get home directory")
			}
			fallbackDir := filepath.Join(homeDir, ".bookscan")
			if _, err := os.Stat(fallbackDir); err == nil {
				return fallbackDir, nil
			}
			if err := os.MkdirAll(fallbackDir, 0755); err != nil {
				return "", errors.Wrapf(err, "unable to create fallback data folder %s", fallbackDir)
			}
			return fallbackDir, nil
		}
	}
	return dataDir, nil
}

// ParseFile loads options from a config file, on top of the defaults.
func ParseFile(file string) (*Options, error) {
	// Check if file exists
	if _, err := os.Stat(file); err != nil {
		return nil, errors.Wrapf(err, "unable to access config file %s", file)
	}

	if Opts == nil {
		GetDefaultOptions()
	}

	viper.SetConfigFile(file)
	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}
	if err := viper.Unmarshal(Opts); err != nil {
		return nil, err
	}
	applyEnvOverrides(Opts)
	return Opts, nil
}
