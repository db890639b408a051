package githubapp

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// rejectedPEMTypes maps a PEM header type to a human-readable description,
// so a rejected key's error message names exactly what was found.
var rejectedPEMTypes = map[string]string{
	"EC PRIVATE KEY":        "ECDSA",
	"OPENSSH PRIVATE KEY":   "OpenSSH",
	"PUBLIC KEY":            "public key",
	"RSA PUBLIC KEY":        "public key",
	"CERTIFICATE":           "certificate",
	"ENCRYPTED PRIVATE KEY": "encrypted private key",
	"DSA PRIVATE KEY":       "DSA",
}

// LoadPrivateKey reads and parses the RSA private key at path. The parent
// directory is opened through os.OpenRoot, confining the read to within it
// and rejecting any traversal baked into a malformed path.
func LoadPrivateKey(path string) (*rsa.PrivateKey, error) {
	dir := filepath.Dir(path)
	name := filepath.Base(path)

	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, &PrivateKeyLoadError{Path: path, Message: err.Error(), Err: err}
	}
	defer root.Close()

	f, err := root.Open(name)
	if err != nil {
		return nil, &PrivateKeyLoadError{Path: path, Message: err.Error(), Err: err}
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		return nil, &PrivateKeyLoadError{Path: path, Message: err.Error(), Err: err}
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return nil, &PrivateKeyLoadError{Path: path, Message: "file is empty"}
	}

	return parseRSAPrivateKey(path, raw)
}

func parseRSAPrivateKey(path string, raw []byte) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(raw)
	if block == nil {
		return nil, &PrivateKeyLoadError{Path: path, Message: "invalid RSA private key: no PEM block found"}
	}

	if desc, rejected := rejectedPEMTypes[block.Type]; rejected {
		return nil, &PrivateKeyLoadError{Path: path, Message: fmt.Sprintf("key is a %s key, not RSA", desc)}
	}

	switch block.Type {
	case "RSA PRIVATE KEY":
		key, err := x509.ParsePKCS1PrivateKey(block.Bytes)
		if err != nil {
			return nil, &PrivateKeyLoadError{Path: path, Message: fmt.Sprintf("invalid RSA private key: %s", err), Err: err}
		}
		return key, nil
	case "PRIVATE KEY":
		parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
		if err != nil {
			return nil, &PrivateKeyLoadError{Path: path, Message: fmt.Sprintf("invalid RSA private key: %s", err), Err: err}
		}
		key, ok := parsed.(*rsa.PrivateKey)
		if !ok {
			return nil, &PrivateKeyLoadError{Path: path, Message: fmt.Sprintf("key is a %T key, not RSA", parsed)}
		}
		return key, nil
	default:
		return nil, &PrivateKeyLoadError{
			Path:    path,
			Message: fmt.Sprintf("invalid RSA private key: unsupported PEM block type %q", block.Type),
		}
	}
}
