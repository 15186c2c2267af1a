package blobstore

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/vfg2006/adhub-delivery-api/internal/config"
)

// SignedURLTTL é o TTL padrão de links regenerados de provas de veiculação.
const SignedURLTTL = 24 * time.Hour

// Store é o colaborador opaco de arquivos. O upload em si acontece fora deste
// núcleo; aqui apenas geramos links expiráveis para os paths já armazenados.
type Store interface {
	SignedURL(path string, ttl time.Duration) (string, error)
}

// HMACStore assina URLs com HMAC-SHA256 sobre path+expiração. O serviço de
// arquivos valida a assinatura na entrega.
type HMACStore struct {
	baseURL string
	secret  []byte
	now     func() time.Time
}

func NewHMACStore(cfg config.Blob) *HMACStore {
	return &HMACStore{
		baseURL: cfg.BaseURL,
		secret:  []byte(cfg.SigningSecret),
		now:     time.Now,
	}
}

func (s *HMACStore) SignedURL(path string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = SignedURLTTL
	}

	expires := s.now().Add(ttl).Unix()
	signature := s.sign(path, expires)

	u, err := url.Parse(s.baseURL)
	if err != nil {
		return "", fmt.Errorf("base URL inválida: %w", err)
	}
	u = u.JoinPath(path)

	query := u.Query()
	query.Set("expires", strconv.FormatInt(expires, 10))
	query.Set("signature", signature)
	u.RawQuery = query.Encode()

	return u.String(), nil
}

func (s *HMACStore) sign(path string, expires int64) string {
	mac := hmac.New(sha256.New, s.secret)
	fmt.Fprintf(mac, "%s:%d", path, expires)
	return hex.EncodeToString(mac.Sum(nil))
}
