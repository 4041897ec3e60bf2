package utils

import (
	"regexp"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const characters = "abcdefghijklmnopqrstuvwxyz0123456789"

// filenameUnsafe remove pontuação que quebra nomes de arquivo no Drive,
// preservando hangul, letras e dígitos.
var filenameUnsafe = regexp.MustCompile(`[^\p{L}\p{N}\s\-_]`)

// CleanFilename limpa uma string para uso em nome de arquivo
func CleanFilename(s string) string {
	return strings.TrimSpace(filenameUnsafe.ReplaceAllString(s, ""))
}

// TempSuffix gera um sufixo curto para nomes de arquivos temporários,
// evitando colisão entre requisições simultâneas.
func TempSuffix() string {
	id, err := gonanoid.Generate(characters, 6)
	if err != nil {
		return "tmp"
	}
	return id
}
