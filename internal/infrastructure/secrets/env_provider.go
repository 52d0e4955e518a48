package secrets

import (
	"crypto/rand"
	"encoding/hex"
	"os"
	"sync"

	"rentalquotes/internal/usecase/interfaces"
)

// EnvProvider reads the quick-send signing secret from QUICK_SEND_SECRET.
// When the variable is unset it generates a process-local random secret so
// links still work within one deployment, but do not survive a restart.
type EnvProvider struct {
	once   sync.Once
	secret string
}

var _ interfaces.ISecretProvider = (*EnvProvider)(nil)

func NewEnvProvider() *EnvProvider {
	return &EnvProvider{}
}

func (p *EnvProvider) QuickSendSecret() string {
	p.once.Do(func() {
		p.secret = os.Getenv("QUICK_SEND_SECRET")
		if p.secret == "" {
			buf := make([]byte, 32)
			if _, err := rand.Read(buf); err == nil {
				p.secret = hex.EncodeToString(buf)
			}
		}
	})
	return p.secret
}
