package user

import (
	"os"
	"os/user"
)

// fallback is recorded when no account name can be determined.
const fallback = "unknown"

// Name returns the account name of the person running tablero, used as the
// actor of journaled status changes. It falls back to $USER, then "unknown".
func Name() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return fallback
}
