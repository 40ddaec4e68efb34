package middleware

import (
	"net/http"
	"strings"

	"github.com/nexlev/sales-ledger-api/internal/config"
	"github.com/nexlev/sales-ledger-api/pkg/apiErrors"
	"github.com/nexlev/sales-ledger-api/pkg/log"
	"golang.org/x/crypto/bcrypt"
)

// UploadKeyRequired protege uma rota com a chave compartilhada de upload.
// A chave chega no header X-Upload-Key ou como Bearer token.
func UploadKeyRequired(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Upload.Key == "" && cfg.Upload.KeyHash == "" {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Chave de upload não configurada no servidor", nil)
				return
			}

			key := extractUploadKey(r)
			if key == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidUploadKey, "Chave de upload ausente", nil)
				return
			}

			if !validUploadKey(cfg, key) {
				log.ForContext(r.Context()).WithField("path", r.URL.Path).Warn("Tentativa de acesso com chave de upload inválida")
				apiErrors.WriteError(w, apiErrors.ErrInvalidUploadKey, "Chave de upload inválida", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// extractUploadKey busca a chave no header dedicado, no Authorization Bearer
// ou, por último, no próprio formulário de upload.
func extractUploadKey(r *http.Request) string {
	if key := r.Header.Get("X-Upload-Key"); key != "" {
		return key
	}

	authHeader := r.Header.Get("Authorization")
	if token := strings.TrimPrefix(authHeader, "Bearer "); token != authHeader {
		return token
	}

	return strings.TrimSpace(r.FormValue("upload_key"))
}

// validUploadKey compara a chave recebida com a configuração. Quando um hash
// bcrypt está configurado ele tem precedência sobre a chave em texto puro.
func validUploadKey(cfg *config.Config, key string) bool {
	if cfg.Upload.KeyHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(cfg.Upload.KeyHash), []byte(key)) == nil
	}
	return cfg.Upload.Key != "" && cfg.Upload.Key == key
}
