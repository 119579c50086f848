package service

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/gowebpki/jcs"
	"github.com/skeptikoss/legalflow-ai-assistant/model"
)

// Fingerprint returns a sha256 hex digest of the given key material. The
// fields are serialized to JSON and canonicalized per RFC 8785 before
// hashing, so attribute order can never influence the digest.
func Fingerprint(fields map[string]string) (string, error) {
	raw, err := json.Marshal(fields)
	if err != nil {
		return "", fmt.Errorf("failed to marshal fingerprint fields: %w", err)
	}

	canonical, err := jcs.Transform(raw)
	if err != nil {
		return "", fmt.Errorf("failed to canonicalize fingerprint fields: %w", err)
	}

	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}

// LetterFingerprint keys the generated-letter cache on the attribute subset
// that determines letter content: client, transaction type and value bucket.
func LetterFingerprint(req *model.LetterRequest) (string, error) {
	return Fingerprint(map[string]string{
		"clientName":       req.ClientName,
		"transactionType":  req.TransactionType,
		"transactionValue": req.TransactionValue,
	})
}

// DocumentFingerprint keys the rendered-document cache. Rendering depends on
// the letter text itself, so the content is part of the key.
func DocumentFingerprint(content, clientName string, isDraft bool) (string, error) {
	return Fingerprint(map[string]string{
		"content":    content,
		"clientName": clientName,
		"isDraft":    strconv.FormatBool(isDraft),
	})
}
