package tickets

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
)

const (
	codePrefix    = "T-"
	codeByteCount = 6
)

// NewCode returns a proof of purchase code such as T-9F3A0B12CD45.
func NewCode() (string, error) {
	return newCodeFrom(rand.Reader)
}

func newCodeFrom(src io.Reader) (string, error) {
	buf := make([]byte, codeByteCount)
	if _, err := io.ReadFull(src, buf); err != nil {
		return "", fmt.Errorf("generate ticket code: %w", err)
	}
	return codePrefix + strings.ToUpper(hex.EncodeToString(buf)), nil
}
