// Package tabular carrega exports tabulares (CSV/XLSX) em tabelas com
// cabeçalhos normalizados. A origem do arquivo é uma variante explícita:
// stream de upload nomeado ou caminho no filesystem.
package tabular

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Source é uma origem de arquivo tabular. Implementações fechadas:
// UploadSource e FileSource.
type Source interface {
	// Open retorna o conteúdo e o nome usado para detectar o formato.
	Open() (io.ReadCloser, string, error)
}

// UploadSource é um arquivo enviado via formulário multipart.
type UploadSource struct {
	Filename string
	Reader   io.Reader
}

func (s UploadSource) Open() (io.ReadCloser, string, error) {
	if s.Reader == nil {
		return nil, s.Filename, errors.New("upload sem conteúdo")
	}

	if rc, ok := s.Reader.(io.ReadCloser); ok {
		return rc, s.Filename, nil
	}

	return io.NopCloser(s.Reader), s.Filename, nil
}

// FileSource é um arquivo no filesystem local (ex: planilha de planejamento).
type FileSource struct {
	Path string
}

func (s FileSource) Open() (io.ReadCloser, string, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, s.Path, errors.Wrap(err, "erro ao abrir arquivo")
	}

	return f, s.Path, nil
}

// formatOf detecta o formato pela extensão do nome.
func formatOf(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv", ".txt":
		return "csv"
	case ".xlsx", ".xls":
		return "xlsx"
	default:
		return ""
	}
}

// readAll materializa a origem em memória. Os exports diários têm algumas
// centenas de linhas; o custo é irrelevante.
func readAll(src Source) ([]byte, string, error) {
	rc, name, err := src.Open()
	if err != nil {
		return nil, name, err
	}
	defer rc.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, rc); err != nil {
		return nil, name, errors.Wrap(err, "erro ao ler origem")
	}

	return buf.Bytes(), name, nil
}
