package domain

import "time"

// VerificationStatus é o estado de revisão de uma prova de veiculação.
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
	VerificationRejected VerificationStatus = "rejected"
)

// ValidVerificationStatus valida o valor recebido na borda da API.
func ValidVerificationStatus(s VerificationStatus) bool {
	return s == VerificationPending || s == VerificationVerified || s == VerificationRejected
}

// ProofOfPerformance é a evidência enviada para um placement offline
// (tear sheet, air-check). O conteúdo do arquivo é imutável; apenas o
// status de verificação transiciona.
type ProofOfPerformance struct {
	ID                 string             `json:"id"`
	OrderID            string             `json:"order_id"`
	FileName           string             `json:"file_name"`
	FileURL            string             `json:"file_url"`
	FileType           string             `json:"file_type"`
	FileSize           int64              `json:"file_size"`
	RunDate            *time.Time         `json:"run_date,omitempty"`
	VerificationStatus VerificationStatus `json:"verification_status"`
	UploadedAt         time.Time          `json:"uploaded_at"`
}
