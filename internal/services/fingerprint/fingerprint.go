package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"

	"github.com/pkg/errors"
)

var (
	ErrRead = errors.New("failed to read content")
)

// Fingerprint is the SHA-256 digest of an artwork's byte content.
// It is the primary key in the on-chain registry.
type Fingerprint [32]byte

// Hex returns the 0x-prefixed lowercase hex encoding, 66 characters.
func (f Fingerprint) Hex() string {
	return "0x" + hex.EncodeToString(f[:])
}

func (f Fingerprint) Bytes32() [32]byte {
	return f
}

// Reader hashes the reader to exhaustion. A short or failed read
// returns ErrRead, never a digest of a partial stream.
func Reader(r io.Reader) (Fingerprint, error) {
	h := sha256.New()
	if _, err := io.Copy(h, r); err != nil {
		return Fingerprint{}, errors.Wrap(ErrRead, err.Error())
	}

	var f Fingerprint
	copy(f[:], h.Sum(nil))
	return f, nil
}

func File(path string) (Fingerprint, error) {
	file, err := os.Open(path)
	if err != nil {
		return Fingerprint{}, errors.Wrap(ErrRead, err.Error())
	}
	defer file.Close()

	return Reader(file)
}

// Parse decodes a 66-character 0x-prefixed hex fingerprint.
func Parse(s string) (Fingerprint, error) {
	if len(s) != 66 || s[0] != '0' || s[1] != 'x' {
		return Fingerprint{}, errors.Errorf("invalid fingerprint %q", s)
	}

	raw, err := hex.DecodeString(s[2:])
	if err != nil {
		return Fingerprint{}, errors.Errorf("invalid fingerprint %q", s)
	}

	var f Fingerprint
	copy(f[:], raw)
	return f, nil
}
