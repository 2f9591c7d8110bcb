package db

import "context"

// EnsureAccount resolves an account name to its id, creating the account on
// first use. The no-op DO UPDATE makes RETURNING yield a row on conflict.
func (s *Store) EnsureAccount(ctx context.Context, name string) (int64, error) {
	query := `
		INSERT INTO accounts (name)
		VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`
	var id int64
	if err := s.q.QueryRow(ctx, query, name).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}
