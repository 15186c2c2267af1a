package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro da API
const (
	// Erros de acesso (ACL_xxx)
	ErrInvalidToken          = "ACL_001" // Token ausente ou inválido
	ErrInsufficientPrivilege = "ACL_002" // Sem permissão para o recurso
	ErrPublicationForbidden  = "ACL_003" // Publicação fora do escopo do usuário
	ErrHubForbidden          = "ACL_004" // Hub fora do escopo do usuário

	// Erros de recurso (RES_xxx)
	ErrOrderNotFound       = "RES_001" // Pedido de inserção não encontrado
	ErrCampaignNotFound    = "RES_002" // Campanha não encontrada
	ErrEntryNotFound       = "RES_003" // Entrada de performance não encontrada
	ErrProofNotFound       = "RES_004" // Prova de veiculação não encontrada
	ErrPublicationNotFound = "RES_005" // Publicação não encontrada

	// Erros de validação (VAL_xxx)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidStatus       = "VAL_003" // Status fora do conjunto aceito
	ErrInvalidTransition   = "VAL_004" // Transição de estado não permitida
	ErrInvalidDateRange    = "VAL_005" // Intervalo de datas inválido
	ErrOrderConflict       = "VAL_006" // Já existe um pedido ativo para o par campanha/publicação

	// Erros do servidor (SRV_xxx)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrExternalService   = "SRV_003" // Erro em colaborador externo
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrPublicationForbidden:  http.StatusForbidden,
	ErrHubForbidden:          http.StatusForbidden,
	ErrOrderNotFound:         http.StatusNotFound,
	ErrCampaignNotFound:      http.StatusNotFound,
	ErrEntryNotFound:         http.StatusNotFound,
	ErrProofNotFound:         http.StatusNotFound,
	ErrPublicationNotFound:   http.StatusNotFound,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidStatus:         http.StatusBadRequest,
	ErrInvalidTransition:     http.StatusBadRequest,
	ErrInvalidDateRange:      http.StatusBadRequest,
	ErrOrderConflict:         http.StatusConflict,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrExternalService:       http.StatusBadGateway,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// WriteError escreve o erro padronizado para a resposta HTTP
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

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
