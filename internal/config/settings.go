package config

import (
	"encoding/json"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/shibukawa/configdir"
)

const (
	vendorName   = "OpenTraceLab"
	appName      = "ejtag"
	settingsFile = "settings.json"
)

// Settings are the defaults remembered between runs.
type Settings struct {
	Cable     string `json:"cable,omitempty"`
	Port      string `json:"port,omitempty"`
	Delay     int    `json:"delay,omitempty"`
	PollLimit int    `json:"poll_limit,omitempty"`
	Wiggler   bool   `json:"wiggler,omitempty"`
}

// Apply copies the set fields onto o.
func (s Settings) Apply(o *Options) {
	if s.Cable != "" {
		o.Cable = s.Cable
	}
	if s.Port != "" {
		o.Port = s.Port
	}
	if s.Delay != 0 {
		o.Delay = s.Delay
	}
	if s.PollLimit != 0 {
		o.PollLimit = s.PollLimit
	}
	if s.Wiggler {
		o.Wiggler = true
	}
}

// Store reads and writes settings in the user's configuration folders.
type Store struct {
	dirs configdir.ConfigDir
}

// NewStore returns the store for this tool. A non-empty local path is
// searched before the global folder and is where Save writes.
func NewStore(local string) *Store {
	dirs := configdir.New(vendorName, appName)
	dirs.LocalPath = local
	return &Store{dirs: dirs}
}

// Load returns the first settings file found, or zero settings when there
// is none.
func (s *Store) Load() (Settings, error) {
	var st Settings
	folder := s.dirs.QueryFolderContainsFile(settingsFile)
	if folder == nil {
		return st, nil
	}
	data, err := folder.ReadFile(settingsFile)
	if err != nil {
		return st, errors.Wrapf(err, "read %s", settingsFile)
	}
	if err := json.Unmarshal(data, &st); err != nil {
		return st, errors.Wrapf(err, "parse %s", settingsFile)
	}
	return st, nil
}

// Save writes st to the local folder when one was given, else to the
// user's global folder, and returns the path written.
func (s *Store) Save(st Settings) (string, error) {
	kind := configdir.Global
	if s.dirs.LocalPath != "" {
		kind = configdir.Local
	}
	folders := s.dirs.QueryFolders(kind)
	if len(folders) == 0 {
		return "", errors.New("no configuration folder")
	}
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "encode settings")
	}
	folder := folders[0]
	if err := folder.MkdirAll(); err != nil {
		return "", errors.Wrapf(err, "create %s", folder.Path)
	}
	if err := folder.WriteFile(settingsFile, data); err != nil {
		return "", errors.Wrapf(err, "write %s", settingsFile)
	}
	return filepath.Join(folder.Path, settingsFile), nil
}
