package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateBatchID gera o identificador curto de um lote de upload.
func GenerateBatchID() (string, error) {
	return gonanoid.Generate(characters, 8)
}
