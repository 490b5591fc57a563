package auth

import (
	"testing"

	"github.com/agrosphere/backend/pkg/utils"
)

func TestDummyHashIsValidBcrypt(t *testing.T) {
	// The throwaway hash compared on missing accounts must be a real
	// bcrypt digest, or the comparison short-circuits and the timing
	// equalization is lost. It happens to hash "password".
	const dummyHash = "$2a$10$.IIxpSc3OElWXLV2Wj517eUGmZ64IQgBNQ4OcFbanW85CTrgrIDQy"

	if !utils.CheckPasswordHash("password", dummyHash) {
		t.Error("dummy hash does not parse as a bcrypt digest of 'password'")
	}
	if utils.CheckPasswordHash("wrongpassword", dummyHash) {
		t.Error("expected mismatch for a different password")
	}
}
