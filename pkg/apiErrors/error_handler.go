package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro da API
const (
	// Configuração (fatal para a requisição inteira)
	ErrConfigurationMissing = "CFG_001" // Nenhuma credencial disponível

	// Mapeamento (não fatal, campo ignorado)
	ErrMappingMiss = "MAP_001" // Campo lógico sem coordenada de destino

	// Serviços externos (local ao estágio, aciona fallback ou é reportado)
	ErrExternalCallFailed = "EXT_001" // Chamada a colaborador externo falhou

	// Validação
	ErrInvalidRequest = "VAL_001" // Corpo da requisição inválido

	// Servidor
	ErrInternalServer = "SRV_001" // Erro interno
)

// Mapeamento de códigos para status HTTP. Erros de negócio dos endpoints do
// formulário respondem 200 com status:"error" no corpo (contrato do
// formulário legado); este mapa cobre apenas falhas de protocolo.
var httpStatusMap = map[string]int{
	ErrInvalidRequest:       http.StatusBadRequest,
	ErrConfigurationMissing: http.StatusOK,
	ErrMappingMiss:          http.StatusOK,
	ErrExternalCallFailed:   http.StatusOK,
	ErrInternalServer:       http.StatusInternalServerError,
}

// APIError representa um erro padronizado retornado ao cliente
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// WriteError escreve o erro padronizado na resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}
