// Package planstore localiza a planilha de planejamento mensal no diretório
// configurado. A convenção de nome do arquivo pertence a quem publica o
// planejamento; aqui ela é apenas dados de configuração.
package planstore

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/nexlev/sales-ledger-api/internal/config"
)

// Sheets esperadas dentro da planilha de planejamento.
const (
	MainSheet     = "Main"
	CategorySheet = "Category"
)

// Store resolve (mês, ano) para a localização carregável da planilha.
type Store interface {
	WorkbookPath(ref time.Time) string
}

type fileStore struct {
	folder  string
	pattern string
}

// NewFileStore cria um Store sobre o diretório de planejamento configurado.
func NewFileStore(cfg config.Planning) Store {
	return &fileStore{
		folder:  cfg.Folder,
		pattern: cfg.FilePattern,
	}
}

// WorkbookPath monta o caminho do arquivo do mês de referência, por padrão
// "ASIN Planning file - Jan 2006.xlsx".
func (s *fileStore) WorkbookPath(ref time.Time) string {
	filename := fmt.Sprintf(s.pattern, ref.Format("Jan"), ref.Format("2006"))
	return filepath.Join(s.folder, filename)
}
