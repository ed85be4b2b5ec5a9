package infrastructures

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// StorageClient talks to the hosted blob storage service. Objects are
// addressed by bucket-relative path; uploads return a public URL.
type StorageClient struct {
	HTTPClient *http.Client
	BaseURL    string
	APIKey     string
	Bucket     string
}

func NewStorageClient() *StorageClient {
	return &StorageClient{
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		BaseURL: Config.STORAGE_BASE_URL,
		APIKey:  Config.STORAGE_API_KEY,
		Bucket:  Config.STORAGE_BUCKET,
	}
}

type storageUploadResponse struct {
	Path      string `json:"path"`
	PublicURL string `json:"public_url"`
}

// Upload stores content under the given path and returns the object path
// and its public URL.
func (c *StorageClient) Upload(path string, content []byte, contentType string) (string, string, error) {
	endpoint := fmt.Sprintf("%s/objects/%s/%s", c.BaseURL, c.Bucket, url.PathEscape(path))

	req, err := http.NewRequest(http.MethodPut, endpoint, bytes.NewReader(content))
	if err != nil {
		return "", "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Content-Type", contentType)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		return "", "", fmt.Errorf("storage upload failed with status %d: %s", resp.StatusCode, string(body))
	}

	var uploadResp storageUploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&uploadResp); err != nil {
		return "", "", err
	}

	return uploadResp.Path, uploadResp.PublicURL, nil
}

// Delete removes the object at the given path.
func (c *StorageClient) Delete(path string) error {
	endpoint := fmt.Sprintf("%s/objects/%s/%s", c.BaseURL, c.Bucket, url.PathEscape(path))

	req, err := http.NewRequest(http.MethodDelete, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("storage delete failed with status %d", resp.StatusCode)
	}

	return nil
}
