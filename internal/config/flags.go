package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-d database file path
//	-c/-config json file path with configs
//	-log log file path
//	-webdav-url WebDAV base URL for registry sync
//	-webdav-user WebDAV basic-auth username
//	-webdav-password WebDAV basic-auth password
//	-remote-dir WebDAV collection holding the replicated registry
//	-sync-interval background sync period (e.g., "10m", "1h")
//	-device-id identifier sent with sync requests
func ParseFlags() *StructuredConfig {
	var databasePath string
	var jsonConfigPath string
	var logPath string
	var webdavURL string
	var webdavUser string
	var webdavPassword string
	var remoteDir string
	var syncInterval time.Duration
	var deviceID string

	flag.StringVar(&databasePath, "d", "", "Registry database file path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&logPath, "log", "", "Log file path")
	flag.StringVar(&webdavURL, "webdav-url", "", "WebDAV base URL")
	flag.StringVar(&webdavUser, "webdav-user", "", "WebDAV username")
	flag.StringVar(&webdavPassword, "webdav-password", "", "WebDAV password")
	flag.StringVar(&remoteDir, "remote-dir", "", "WebDAV collection for the registry")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Sync period (e.g., 10m, 1h)")
	flag.StringVar(&deviceID, "device-id", "", "Device identifier for sync requests")

	flag.Parse()

	return &StructuredConfig{
		Storage: Storage{
			DB: DB{
				DSN: databasePath,
			},
		},
		Sync: Sync{
			URL:       webdavURL,
			Username:  webdavUser,
			Password:  webdavPassword,
			RemoteDir: remoteDir,
			Interval:  syncInterval,
			DeviceID:  deviceID,
		},
		Logs: Logs{
			Path: logPath,
		},
		JSONFilePath: jsonConfigPath,
	}
}
