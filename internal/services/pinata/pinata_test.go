package pinata

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/just-one-coder/flux-prism/env"
)

func TestNewWithoutToken(t *testing.T) {
	_ = os.Unsetenv(env.PinataJWT)

	_, err := New()
	require.Error(t, err)
}

func TestUpload(t *testing.T) {
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer test-jwt", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseMultipartForm(1<<20))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		require.Equal(t, "art.png", header.Filename)

		require.Equal(t, `{"name":"art.png"}`, r.FormValue("pinataMetadata"))
		require.Equal(t, `{"cidVersion":0}`, r.FormValue("pinataOptions"))

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"IpfsHash":"Qm123"}`))
	}))
	defer server.Close()

	c := &client{
		jwt:      "test-jwt",
		gateway:  "ipfs://",
		endpoint: server.URL,
		http:     server.Client(),
	}

	ref, err := c.Upload(ctx, "art.png", bytes.NewReader([]byte{0x01, 0x02, 0x03}))
	require.NoError(t, err)
	require.Equal(t, "ipfs://Qm123", ref)
}

func TestUploadFailure(t *testing.T) {
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	c := &client{
		jwt:      "test-jwt",
		gateway:  "ipfs://",
		endpoint: server.URL,
		http:     server.Client(),
	}

	_, err := c.Upload(ctx, "art.png", bytes.NewReader([]byte{0x01}))
	require.Error(t, err)

	var uploadErr *UploadError
	require.ErrorAs(t, err, &uploadErr)
	require.Equal(t, http.StatusForbidden, uploadErr.Status)
}

func TestExtractCID(t *testing.T) {
	require.Equal(t, "Qm123", ExtractCID("Qm123"))
	require.Equal(t, "Qm123", ExtractCID("https://gateway.pinata.cloud/ipfs/Qm123"))
	require.Equal(t, "Qm123", ExtractCID("https://other.host/ipfs/Qm123"))
	require.Equal(t, "", ExtractCID(""))
	require.Equal(t, "bafybeigdyr", ExtractCID("bafybeigdyr"))
}
