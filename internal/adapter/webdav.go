package adapter

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/claude-switch/internal/config"
	"github.com/MKhiriev/claude-switch/internal/logger"
)

// remoteDBName is the filename of the replicated registry inside the remote
// collection.
const remoteDBName = "claude-switch.db"

type webdavAdapter struct {
	client    *resty.Client
	remoteDir string
	logger    *logger.Logger
}

// NewWebDAVAdapter builds a RemoteStorage speaking plain WebDAV (PUT/GET plus
// MKCOL for the collection). Basic auth is attached when a username is
// configured; every request carries the device id so server logs can tell
// installations apart.
func NewWebDAVAdapter(cfg config.Sync, log *logger.Logger) (RemoteStorage, error) {
	if cfg.URL == "" {
		return nil, ErrSyncDisabled
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.URL, "/")).
		SetTimeout(15 * time.Second).
		SetHeader("X-Device-ID", cfg.DeviceID)

	if cfg.Username != "" {
		cli.SetBasicAuth(cfg.Username, cfg.Password)
	}

	return &webdavAdapter{
		client:    cli,
		remoteDir: strings.Trim(cfg.RemoteDir, "/"),
		logger:    log,
	}, nil
}

func (w *webdavAdapter) remotePath() string {
	if w.remoteDir == "" {
		return "/" + remoteDBName
	}
	return "/" + w.remoteDir + "/" + remoteDBName
}

// Check issues an OPTIONS request against the configured base URL.
func (w *webdavAdapter) Check(ctx context.Context) error {
	resp, err := w.client.R().SetContext(ctx).Options("/")
	if err != nil {
		return fmt.Errorf("webdav check request: %w", err)
	}
	if err = mapWebDAVError(resp); err != nil {
		return fmt.Errorf("webdav check: %w", err)
	}

	return nil
}

// Upload PUTs the local registry file into the remote collection, creating
// the collection first when necessary.
func (w *webdavAdapter) Upload(ctx context.Context, localPath string) error {
	data, err := os.ReadFile(localPath)
	if err != nil {
		return fmt.Errorf("read local registry %s: %w", localPath, err)
	}

	if err = w.ensureCollection(ctx); err != nil {
		return err
	}

	resp, err := w.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/octet-stream").
		SetBody(data).
		Put(w.remotePath())
	if err != nil {
		return fmt.Errorf("webdav upload request: %w", err)
	}
	if err = mapWebDAVError(resp); err != nil {
		return fmt.Errorf("webdav upload: %w", err)
	}

	w.logger.Debug().
		Str("remote", w.remotePath()).
		Int("bytes", len(data)).
		Msg("registry uploaded")

	return nil
}

// Download GETs the remote registry copy and writes it over localPath.
func (w *webdavAdapter) Download(ctx context.Context, localPath string) error {
	resp, err := w.client.R().SetContext(ctx).Get(w.remotePath())
	if err != nil {
		return fmt.Errorf("webdav download request: %w", err)
	}
	if err = mapWebDAVError(resp); err != nil {
		return fmt.Errorf("webdav download: %w", err)
	}

	if err = os.WriteFile(localPath, resp.Body(), 0o600); err != nil {
		return fmt.Errorf("write local registry %s: %w", localPath, err)
	}

	w.logger.Debug().
		Str("remote", w.remotePath()).
		Int("bytes", len(resp.Body())).
		Msg("registry downloaded")

	return nil
}

// ensureCollection issues MKCOL for the remote directory. 405 means the
// collection already exists and is not an error.
func (w *webdavAdapter) ensureCollection(ctx context.Context) error {
	if w.remoteDir == "" {
		return nil
	}

	resp, err := w.client.R().SetContext(ctx).Execute("MKCOL", "/"+w.remoteDir)
	if err != nil {
		return fmt.Errorf("webdav mkcol request: %w", err)
	}
	if resp.StatusCode() == http.StatusMethodNotAllowed {
		return nil
	}
	if err = mapWebDAVError(resp); err != nil {
		return fmt.Errorf("webdav mkcol: %w", err)
	}

	return nil
}

func mapWebDAVError(resp *resty.Response) error {
	switch {
	case resp.StatusCode() == http.StatusUnauthorized || resp.StatusCode() == http.StatusForbidden:
		return ErrUnauthorized
	case resp.StatusCode() == http.StatusNotFound:
		return ErrRemoteNotFound
	case resp.StatusCode() >= http.StatusBadRequest:
		return fmt.Errorf("unexpected status %d", resp.StatusCode())
	default:
		return nil
	}
}
