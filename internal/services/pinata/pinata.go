package pinata

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/just-one-coder/flux-prism/env"
)

const (
	pinFileURL = "https://api.pinata.cloud/pinning/pinFileToIPFS"

	uploadTimeout = time.Minute * 5
)

// Uploader pushes raw artwork bytes to the content-addressed storage
// network and returns a locator for them. Retried uploads may pin the
// same bytes twice; the registry key is the content hash, not the
// locator, so duplicate blobs are harmless.
type Uploader interface {
	Upload(ctx context.Context, name string, reader io.Reader) (string, error)
}

// UploadError carries the transport status of a failed upload.
type UploadError struct {
	Status int
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("upload failed with status %d", e.Status)
}

type client struct {
	jwt      string
	gateway  string
	endpoint string
	http     *http.Client
}

// New builds a Pinata uploader. It fails before any network use when
// the access token is not configured.
func New() (Uploader, error) {
	jwt, err := env.Get(env.PinataJWT)
	if err != nil {
		return nil, err
	}

	return &client{
		jwt:      jwt,
		gateway:  env.GetOptional(env.IPFSGateway, env.DefaultIPFSGateway),
		endpoint: pinFileURL,
		http:     &http.Client{Timeout: uploadTimeout},
	}, nil
}

type pinResponse struct {
	IpfsHash string `json:"IpfsHash"`
}

func (c *client) Upload(ctx context.Context, name string, reader io.Reader) (string, error) {
	var buffer bytes.Buffer
	body := multipart.NewWriter(&buffer)

	writer, err := body.CreateFormFile("file", name)
	if err != nil {
		return "", err
	}

	if _, err = io.Copy(writer, reader); err != nil {
		return "", err
	}

	metadata, _ := json.Marshal(map[string]string{"name": name})
	if err = body.WriteField("pinataMetadata", string(metadata)); err != nil {
		return "", err
	}

	options, _ := json.Marshal(map[string]int{"cidVersion": 0})
	if err = body.WriteField("pinataOptions", string(options)); err != nil {
		return "", err
	}
	_ = body.Close()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, &buffer)
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", body.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+c.jwt)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "upload request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &UploadError{Status: resp.StatusCode}
	}

	var pinResp pinResponse
	if err = json.NewDecoder(resp.Body).Decode(&pinResp); err != nil {
		return "", err
	}

	return c.gateway + pinResp.IpfsHash, nil
}

// GatewayURL templates a CID into the configured public gateway path.
func GatewayURL(cid string) string {
	return env.GetOptional(env.IPFSGateway, env.DefaultIPFSGateway) + cid
}

// ExtractCID normalizes a stored locator to a bare CID. Older records
// hold a full gateway URL, newer ones a bare hash.
func ExtractCID(ref string) string {
	if ref == "" {
		return ""
	}

	if strings.HasPrefix(ref, "Qm") {
		return ref
	}

	if idx := strings.Index(ref, "/ipfs/"); idx >= 0 {
		return ref[idx+len("/ipfs/"):]
	}

	if strings.Contains(ref, "gateway.pinata.cloud") {
		parts := strings.Split(ref, "/")
		return parts[len(parts)-1]
	}

	return ref
}
