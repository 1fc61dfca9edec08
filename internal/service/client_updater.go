package service

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	apperrors "github.com/go-meet/roomadmin/internal/pkg/errors"
	"go.uber.org/zap"
)

// ClientUpdater downloads the meeting client bundle and installs it into
// the configured client directory, replacing any previous install.
type ClientUpdater struct {
	downloadURL string
	clientDir   string
	httpClient  *http.Client
	logger      *zap.Logger
}

func NewClientUpdater(downloadURL, clientDir string, logger *zap.Logger) *ClientUpdater {
	return &ClientUpdater{
		downloadURL: downloadURL,
		clientDir:   clientDir,
		httpClient:  &http.Client{},
		logger:      logger,
	}
}

// Update fetches the client zip, extracts it beside the install dir and
// swaps it in. The previous install is removed only after a successful
// extraction, so a failed download never leaves an empty client dir.
func (u *ClientUpdater) Update(ctx context.Context) error {
	if u.downloadURL == "" {
		return apperrors.ErrInvalidArgument.WithMessage("client download url is not configured")
	}

	archivePath, err := u.download(ctx)
	if err != nil {
		return err
	}
	defer os.Remove(archivePath)

	stagingDir := u.clientDir + ".new"
	if err := os.RemoveAll(stagingDir); err != nil {
		return apperrors.Wrap(err, http.StatusInternalServerError, "failed to clear staging dir")
	}

	if err := extractZip(archivePath, stagingDir); err != nil {
		os.RemoveAll(stagingDir)
		u.logger.Error("Client bundle extraction failed", zap.Error(err))
		return apperrors.Wrap(err, http.StatusInternalServerError, "failed to extract client bundle")
	}

	if err := os.RemoveAll(u.clientDir); err != nil {
		os.RemoveAll(stagingDir)
		return apperrors.Wrap(err, http.StatusInternalServerError, "failed to remove old client")
	}
	if err := os.Rename(stagingDir, u.clientDir); err != nil {
		return apperrors.Wrap(err, http.StatusInternalServerError, "failed to install client")
	}

	u.logger.Info("Meeting client updated",
		zap.String("url", u.downloadURL),
		zap.String("dir", u.clientDir),
	)

	return nil
}

func (u *ClientUpdater) download(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.downloadURL, nil)
	if err != nil {
		return "", apperrors.Wrap(err, http.StatusInternalServerError, "failed to build download request")
	}

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return "", apperrors.Wrap(err, http.StatusBadGateway, "failed to download client bundle")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", apperrors.Wrap(
			fmt.Errorf("download returned %d", resp.StatusCode),
			http.StatusBadGateway,
			"failed to download client bundle",
		)
	}

	tmp, err := os.CreateTemp("", "client-*.zip")
	if err != nil {
		return "", apperrors.Wrap(err, http.StatusInternalServerError, "failed to create temp file")
	}
	defer tmp.Close()

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		os.Remove(tmp.Name())
		return "", apperrors.Wrap(err, http.StatusBadGateway, "failed to download client bundle")
	}

	return tmp.Name(), nil
}

// extractZip unpacks an archive into dest. Entries that would escape dest
// are rejected.
func extractZip(archivePath, dest string) error {
	reader, err := zip.OpenReader(archivePath)
	if err != nil {
		return err
	}
	defer reader.Close()

	if err := os.MkdirAll(dest, 0o755); err != nil {
		return err
	}

	for _, file := range reader.File {
		target := filepath.Join(dest, file.Name)
		if !strings.HasPrefix(target, filepath.Clean(dest)+string(os.PathSeparator)) {
			return fmt.Errorf("archive entry escapes destination: %s", file.Name)
		}

		if file.FileInfo().IsDir() {
			if err := os.MkdirAll(target, file.Mode()); err != nil {
				return err
			}
			continue
		}

		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return err
		}

		if err := extractFile(file, target); err != nil {
			return err
		}
	}

	return nil
}

func extractFile(file *zip.File, target string) error {
	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, file.Mode())
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)
	return err
}
