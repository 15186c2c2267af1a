package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/adhub-delivery-api/infrastructure/database/postgres"
)

// UserScopeRepository resolve o escopo de acesso (publicações e hubs) de um
// usuário. A gestão dos vínculos é feita pelo serviço de contas, externo a
// este núcleo.
type UserScopeRepository interface {
	GetUserPublications(userID string) ([]string, error)
	GetUserHubs(userID string) ([]string, error)
}

type userScopeRepository struct {
	conn *postgres.Connection
}

func NewUserScopeRepository(conn *postgres.Connection) UserScopeRepository {
	return &userScopeRepository{
		conn: conn,
	}
}

func (r *userScopeRepository) GetUserPublications(userID string) ([]string, error) {
	return r.listIDs("user_publications", "publication_id", userID)
}

func (r *userScopeRepository) GetUserHubs(userID string) ([]string, error) {
	return r.listIDs("user_hubs", "hub_id", userID)
}

func (r *userScopeRepository) listIDs(table, column, userID string) ([]string, error) {
	query, args, err := squirrel.
		Select(column).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("erro ao escanear %s: %w", column, err)
		}
		ids = append(ids, id)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return ids, nil
}
