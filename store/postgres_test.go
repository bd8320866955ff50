package store

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"

	"github.com/FARiDHAMiD/shop-ecommerce/model"
)

func TestPostgresLoad_NoRowsMeansEmptyCart(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	s := &PostgresStorage{DB: db}

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT data FROM cart_state WHERE key = $1`)).
		WithArgs("cart").
		WillReturnRows(sqlmock.NewRows([]string{"data"}))

	items, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty cart, got %+v", items)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPostgresLoad_DecodesStoredItems(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()
	s := &PostgresStorage{DB: db}

	raw := `[{"id":3,"title":"Mens Cotton Jacket","price":"55.99","category":"men's clothing","description":"","image":"http://example.com/3.jpg","rating":{"rate":4.7,"count":500},"quantity":2}]`
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT data FROM cart_state WHERE key = $1`)).
		WithArgs("cart").
		WillReturnRows(sqlmock.NewRows([]string{"data"}).AddRow([]byte(raw)))

	items, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].ID != 3 || items[0].Quantity != 2 {
		t.Fatalf("unexpected item: %+v", items[0])
	}
	if !items[0].Price.Equal(decimal.RequireFromString("55.99")) {
		t.Fatalf("unexpected price: %s", items[0].Price)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPostgresLoad_MalformedDataIsAnError(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()
	s := &PostgresStorage{DB: db}

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT data FROM cart_state WHERE key = $1`)).
		WithArgs("cart").
		WillReturnRows(sqlmock.NewRows([]string{"data"}).AddRow([]byte(`{not json`)))

	if _, err := s.Load(); err == nil {
		t.Fatalf("expected decode error for malformed data")
	}
}

func TestPostgresSave_UpsertsUnderFixedKey(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()
	s := &PostgresStorage{DB: db}

	items := []model.CartItem{
		{
			Product: model.Product{
				ID:       1,
				Title:    "Backpack",
				Price:    decimal.RequireFromString("109.95"),
				Category: "men's clothing",
			},
			Quantity: 1,
		},
	}

	mock.ExpectExec(regexp.QuoteMeta(`
		INSERT INTO cart_state (key, data)
		VALUES ($1, $2)
		ON CONFLICT (key)
		DO UPDATE SET data = EXCLUDED.data
	`)).
		WithArgs("cart", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := s.Save(items); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPostgresSave_NilBecomesEmptyArray(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()
	s := &PostgresStorage{DB: db}

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO cart_state`)).
		WithArgs("cart", []byte(`[]`)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := s.Save(nil); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
