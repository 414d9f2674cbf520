package pgstore

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smmpanel/backend/internal/store"
)

func NewMock(t *testing.T) (*Store, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return New(mockDB), mockDB
}

func TestStore_Get(t *testing.T) {
	st, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr error
		expectDoc store.Document
	}{
		{
			name: "Document found",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"doc"}).
					AddRow([]byte(`{"email":"user@example.com","balance":"100"}`))
				mock.ExpectQuery("SELECT doc").
					WithArgs("users", "u1").
					WillReturnRows(rows)
			},
			expectDoc: store.Document{"email": "user@example.com", "balance": "100"},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery("SELECT doc").
					WithArgs("users", "u1").
					WillReturnError(errors.New("connection refused"))
			},
			expectErr: store.ErrUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			doc, err := st.Get(context.Background(), store.UsersCollection, "u1")
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectDoc, doc)
			}
		})
	}
}

func TestStore_GetNotFound(t *testing.T) {
	st, mock := NewMock(t)

	mock.ExpectQuery("SELECT doc").
		WithArgs("users", "missing").
		WillReturnRows(pgxmock.NewRows([]string{"doc"}))

	_, err := st.Get(context.Background(), store.UsersCollection, "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestStore_GetKeepsDriverErrorInChain(t *testing.T) {
	st, mock := NewMock(t)

	mock.ExpectQuery("SELECT doc").
		WithArgs("users", "u1").
		WillReturnError(&pgconn.PgError{Code: "40001"})

	_, err := st.Get(context.Background(), store.UsersCollection, "u1")
	assert.ErrorIs(t, err, store.ErrUnavailable)
	var pgErr *pgconn.PgError
	require.ErrorAs(t, err, &pgErr, "wrapping must not hide the driver error")
	assert.Equal(t, "40001", pgErr.Code)
}

func TestStore_Put(t *testing.T) {
	st, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr error
	}{
		{
			name: "Upsert successfully",
			mockSetup: func() {
				mock.ExpectExec("INSERT INTO documents").
					WithArgs("users", "u1", []byte(`{"email":"user@example.com"}`)).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec("INSERT INTO documents").
					WithArgs("users", "u1", []byte(`{"email":"user@example.com"}`)).
					WillReturnError(errors.New("connection refused"))
			},
			expectErr: store.ErrUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := st.Put(context.Background(), store.UsersCollection, "u1", store.Document{"email": "user@example.com"})
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestStore_Insert(t *testing.T) {
	st, mock := NewMock(t)

	mock.ExpectExec("INSERT INTO documents").
		WithArgs("orders", pgxmock.AnyArg(), []byte(`{"status":"pending"}`)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	id, err := st.Insert(context.Background(), store.OrdersCollection, store.Document{"status": "pending"})
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Update(t *testing.T) {
	st, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr error
	}{
		{
			name: "Update successfully",
			mockSetup: func() {
				mock.ExpectExec("UPDATE documents").
					WithArgs("users", "u1", []byte(`{"username":"panda42"}`)).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name: "Document not found",
			mockSetup: func() {
				mock.ExpectExec("UPDATE documents").
					WithArgs("users", "u1", []byte(`{"username":"panda42"}`)).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expectErr: store.ErrNotFound,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec("UPDATE documents").
					WithArgs("users", "u1", []byte(`{"username":"panda42"}`)).
					WillReturnError(errors.New("connection refused"))
			},
			expectErr: store.ErrUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := st.Update(context.Background(), store.UsersCollection, "u1", store.Document{"username": "panda42"})
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestStore_Query(t *testing.T) {
	st, mock := NewMock(t)

	query := `SELECT id, doc FROM documents WHERE collection = $1 AND doc->>'status' = $2 ORDER BY (doc->>'created_at')::timestamptz DESC`
	rows := pgxmock.NewRows([]string{"id", "doc"}).
		AddRow("o2", []byte(`{"status":"pending","amount":"120"}`)).
		AddRow("o1", []byte(`{"status":"pending","amount":"80"}`))
	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs("orders", "pending").
		WillReturnRows(rows)

	entries, err := st.Query(context.Background(), store.OrdersCollection, store.Query{
		Filters: []store.Filter{{Field: "status", Value: "pending"}},
		OrderBy: "created_at",
		Desc:    true,
	})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "o2", entries[0].ID)
	assert.Equal(t, "pending", entries[0].Doc["status"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_QueryError(t *testing.T) {
	st, mock := NewMock(t)

	mock.ExpectQuery("SELECT id, doc FROM documents").
		WithArgs("orders").
		WillReturnError(errors.New("connection refused"))

	_, err := st.Query(context.Background(), store.OrdersCollection, store.Query{})
	assert.ErrorIs(t, err, store.ErrUnavailable)
}

func TestStore_QueryRejectsBadField(t *testing.T) {
	st, _ := NewMock(t)

	tests := []struct {
		name string
		q    store.Query
	}{
		{
			name: "Filter field with SQL in it",
			q: store.Query{
				Filters: []store.Filter{{Field: "status' = '' OR '1'='1", Value: "pending"}},
			},
		},
		{
			name: "Order by with quote",
			q:    store.Query{OrderBy: "created_at'"},
		},
		{
			name: "Uppercase field",
			q: store.Query{
				Filters: []store.Filter{{Field: "Status", Value: "pending"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := st.Query(context.Background(), store.OrdersCollection, tt.q)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid query field")
		})
	}
}

func TestStore_Delete(t *testing.T) {
	st, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr error
	}{
		{
			name: "Delete successfully",
			mockSetup: func() {
				mock.ExpectExec("DELETE FROM documents").
					WithArgs("users", "u1").
					WillReturnResult(pgxmock.NewResult("DELETE", 1))
			},
		},
		{
			name: "Document not found",
			mockSetup: func() {
				mock.ExpectExec("DELETE FROM documents").
					WithArgs("users", "u1").
					WillReturnResult(pgxmock.NewResult("DELETE", 0))
			},
			expectErr: store.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := st.Delete(context.Background(), store.UsersCollection, "u1")
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
