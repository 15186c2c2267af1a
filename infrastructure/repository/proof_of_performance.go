package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/adhub-delivery-api/infrastructure/database/postgres"
	"github.com/vfg2006/adhub-delivery-api/internal/domain"
)

const (
	proofsTable = "proof_of_performance pop"

	proofColumns = `pop.id, pop.order_id, pop.file_name, pop.file_url, pop.file_type,
		pop.file_size, pop.run_date, pop.verification_status, pop.uploaded_at`
)

type ProofOfPerformanceRepository interface {
	Insert(proof *domain.ProofOfPerformance) error
	GetByID(id string) (*domain.ProofOfPerformance, error)
	ListByOrderID(orderID string) ([]*domain.ProofOfPerformance, error)
	UpdateVerificationStatus(id string, status domain.VerificationStatus) error
}

type proofOfPerformanceRepository struct {
	conn *postgres.Connection
}

func NewProofOfPerformanceRepository(conn *postgres.Connection) ProofOfPerformanceRepository {
	return &proofOfPerformanceRepository{
		conn: conn,
	}
}

func (r *proofOfPerformanceRepository) Insert(proof *domain.ProofOfPerformance) error {
	query, args, err := squirrel.
		Insert("proof_of_performance").
		Columns(
			"id", "order_id", "file_name", "file_url", "file_type",
			"file_size", "run_date", "verification_status",
		).
		Values(
			proof.ID,
			proof.OrderID,
			proof.FileName,
			proof.FileURL,
			proof.FileType,
			proof.FileSize,
			proof.RunDate,
			proof.VerificationStatus,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *proofOfPerformanceRepository) GetByID(id string) (*domain.ProofOfPerformance, error) {
	query, args, err := squirrel.
		Select(proofColumns).
		From(proofsTable).
		Where(squirrel.Eq{"pop.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	proof, err := scanProof(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear proof of performance: %w", err)
	}

	return proof, nil
}

func (r *proofOfPerformanceRepository) ListByOrderID(orderID string) ([]*domain.ProofOfPerformance, error) {
	query, args, err := squirrel.
		Select(proofColumns).
		From(proofsTable).
		Where(squirrel.Eq{"pop.order_id": orderID}).
		OrderBy("pop.uploaded_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	proofs := make([]*domain.ProofOfPerformance, 0)
	for rows.Next() {
		proof, err := scanProof(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear proofs of performance: %w", err)
		}
		proofs = append(proofs, proof)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return proofs, nil
}

func (r *proofOfPerformanceRepository) UpdateVerificationStatus(id string, status domain.VerificationStatus) error {
	query, args, err := squirrel.
		Update("proof_of_performance").
		Set("verification_status", status).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func scanProof(row rowScanner) (*domain.ProofOfPerformance, error) {
	proof := &domain.ProofOfPerformance{}

	err := row.Scan(
		&proof.ID,
		&proof.OrderID,
		&proof.FileName,
		&proof.FileURL,
		&proof.FileType,
		&proof.FileSize,
		&proof.RunDate,
		&proof.VerificationStatus,
		&proof.UploadedAt,
	)
	if err != nil {
		return nil, err
	}

	return proof, nil
}
