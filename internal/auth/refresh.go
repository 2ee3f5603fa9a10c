package auth

import (
	"encoding/json"
	"log"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
)

const refreshTokenFile = "refresh_tokens.json"

const refreshTokenTTL = 7 * 24 * time.Hour

type refreshEntry struct {
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expires_at"`
}

var (
	refreshTokenStore = map[string]refreshEntry{}
	loaded            bool
	mu                sync.Mutex
)

// IssueRefreshToken creates an opaque refresh token for the user and
// persists the store to disk.
func IssueRefreshToken(username string) (string, error) {
	mu.Lock()
	defer mu.Unlock()
	ensureLoaded()

	token := uuid.NewString()
	refreshTokenStore[token] = refreshEntry{
		Username:  username,
		ExpiresAt: time.Now().Add(refreshTokenTTL),
	}
	if err := saveRefreshTokens(); err != nil {
		return "", err
	}
	return token, nil
}

// RedeemRefreshToken resolves a refresh token to its username and rotates
// it: the old token is invalidated and a fresh one returned.
func RedeemRefreshToken(token string) (username, newToken string, ok bool) {
	mu.Lock()
	defer mu.Unlock()
	ensureLoaded()

	entry, found := refreshTokenStore[token]
	if !found || time.Now().After(entry.ExpiresAt) {
		return "", "", false
	}
	delete(refreshTokenStore, token)

	newToken = uuid.NewString()
	refreshTokenStore[newToken] = refreshEntry{
		Username:  entry.Username,
		ExpiresAt: time.Now().Add(refreshTokenTTL),
	}
	if err := saveRefreshTokens(); err != nil {
		log.Printf("failed to persist refresh tokens: %v", err)
	}
	return entry.Username, newToken, true
}

// StartRefreshTokenCleaner drops expired tokens on the given interval.
func StartRefreshTokenCleaner(interval time.Duration) {
	for {
		time.Sleep(interval)
		mu.Lock()
		ensureLoaded()
		changed := false
		for token, entry := range refreshTokenStore {
			if time.Now().After(entry.ExpiresAt) {
				delete(refreshTokenStore, token)
				changed = true
			}
		}
		if changed {
			if err := saveRefreshTokens(); err != nil {
				log.Printf("failed to persist refresh tokens: %v", err)
			}
		}
		mu.Unlock()
	}
}

func ensureLoaded() {
	if loaded {
		return
	}
	loaded = true
	data, err := os.ReadFile(refreshTokenFile)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("failed to load refresh token file: %v", err)
		}
		return
	}
	if err := json.Unmarshal(data, &refreshTokenStore); err != nil {
		log.Printf("failed to parse refresh token file: %v", err)
		refreshTokenStore = map[string]refreshEntry{}
	}
}

func saveRefreshTokens() error {
	data, err := json.MarshalIndent(refreshTokenStore, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(refreshTokenFile, data, 0600)
}
