// Package nextcloud implements the upload stage of the document
// attachment pipeline: files are written to a Nextcloud instance over
// WebDAV and published through the OCS sharing API as permanent,
// read-only public links.
package nextcloud

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/livro-caixa/backend/internal/documents"
	"github.com/studio-b12/gowebdav"
)

var (
	// ErrNotConfigured is returned when the connection settings are
	// incomplete. It is checked before any network call is made.
	ErrNotConfigured = errors.New("NEXTCLOUD_URL, NEXTCLOUD_USER and NEXTCLOUD_APP_PASSWORD must be set")

	// ErrUpload is returned when the WebDAV write did not succeed.
	ErrUpload = errors.New("could not upload the file to Nextcloud")

	// ErrShare is returned when the sharing API did not issue a public
	// link for the uploaded file.
	ErrShare = errors.New("could not create a Nextcloud share link")

	// ErrShareNoURL is returned when the sharing API reports success but
	// the response does not contain a share URL.
	ErrShareNoURL = errors.New("the Nextcloud share response does not contain a URL")
)

// Config holds the connection settings for the Nextcloud instance.
type Config struct {
	// URL is the base address of the Nextcloud server, without a
	// trailing slash.
	URL string

	// User is the account the files are stored under.
	User string

	// AppPassword is the app password used for WebDAV and OCS
	// authentication.
	AppPassword string
}

// Client talks to a single Nextcloud instance. It holds no per-request
// state and is safe for concurrent use.
type Client struct {
	dav  *gowebdav.Client
	http *http.Client

	shareEndpoint string
	user          string
	appPassword   string
}

// New validates the configuration and returns a client. Missing
// connection settings fail here, before any network activity.
func New(config Config) (*Client, error) {
	if config.URL == "" || config.User == "" || config.AppPassword == "" {
		return nil, ErrNotConfigured
	}

	base := strings.TrimSuffix(config.URL, "/")
	davURL := fmt.Sprintf("%s/remote.php/dav/files/%s", base, url.PathEscape(config.User))

	dav := gowebdav.NewClient(davURL, config.User, config.AppPassword)
	dav.SetTimeout(30 * time.Second)

	return &Client{
		dav:           dav,
		http:          &http.Client{Timeout: 30 * time.Second},
		shareEndpoint: fmt.Sprintf("%s/ocs/v2.php/apps/files_sharing/api/v1/shares?format=json", base),
		user:          config.User,
		appPassword:   config.AppPassword,
	}, nil
}

// UploadOptions are the optional parameters for Upload.
type UploadOptions struct {
	// DespesaID groups the file below a per-despesa directory on the
	// remote store. It is only used for path organization.
	DespesaID string
}

// Upload writes the file to its deterministic remote path and returns the
// public share URL for it.
//
// Intermediate directories are created as needed and an existing file at
// the same path is overwritten. The whole operation is stateless and can
// be retried from the start, with the caveat that a retry after a
// successful share creation registers a second share for the same file.
func (c *Client) Upload(ctx context.Context, content []byte, filename string, options UploadOptions) (string, error) {
	remotePath := documents.RemotePath(filename, options.DespesaID)

	if dir := path.Dir(remotePath); dir != "/" {
		err := c.dav.MkdirAll(dir, 0o755)
		if err != nil {
			return "", fmt.Errorf("%w: %s", ErrUpload, err.Error())
		}
	}

	err := c.dav.Write(remotePath, content, 0o644)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrUpload, err.Error())
	}

	return c.createShare(ctx, remotePath)
}

// ocsEnvelope is the response wrapper of the OCS API. Success is signaled
// by the embedded status code, not only by the transport status.
type ocsEnvelope struct {
	OCS struct {
		Meta struct {
			StatusCode int    `json:"statuscode"`
			Message    string `json:"message"`
		} `json:"meta"`
		Data struct {
			URL string `json:"url"`
		} `json:"data"`
	} `json:"ocs"`
}

// createShare registers a public, read-only share for the remote path and
// returns its URL.
func (c *Client) createShare(ctx context.Context, remotePath string) (string, error) {
	form := url.Values{
		"path":        {remotePath},
		"shareType":   {"3"}, // public link
		"permissions": {"1"}, // read only
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.shareEndpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrShare, err.Error())
	}

	req.SetBasicAuth(c.user, c.appPassword)
	req.Header.Set("OCS-APIRequest", "true")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrShare, err.Error())
	}
	defer res.Body.Close()

	var envelope ocsEnvelope
	err = json.NewDecoder(res.Body).Decode(&envelope)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrShare, err.Error())
	}

	if envelope.OCS.Meta.StatusCode != http.StatusOK && envelope.OCS.Meta.StatusCode != 100 {
		if message := envelope.OCS.Meta.Message; message != "" {
			return "", fmt.Errorf("%w: %s", ErrShare, message)
		}
		return "", ErrShare
	}

	if envelope.OCS.Data.URL == "" {
		return "", ErrShareNoURL
	}

	return envelope.OCS.Data.URL, nil
}
