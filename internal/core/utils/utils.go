package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// HashJSON fingerprints a value by hashing its JSON encoding. The snapshot
// store uses it to detect corrupted or hand-edited data files.
func HashJSON(jsonData any) string {
	data, _ := json.Marshal(jsonData)
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}
