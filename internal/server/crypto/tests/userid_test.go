package tests

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"

	crypt "github.com/IvanChernomyrdin/video-playlists/internal/server/crypto"
)

var userIDRe = regexp.MustCompile(`^[0-9A-Z]{8}$`)

func TestNewUserID_Format(t *testing.T) {
	for i := 0; i < 1000; i++ {
		id := crypt.NewUserID()
		require.Len(t, id, crypt.UserIDLength)
		require.Regexp(t, userIDRe, id)
	}
}

func TestNewUserID_Random(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		seen[crypt.NewUserID()] = struct{}{}
	}
	// 36^8 вариантов, совпадения на 1000 штук практически невозможны
	require.Greater(t, len(seen), 990)
}
