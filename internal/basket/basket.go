// Package basket is the storefront write path the fault injector
// targets. Every basket-item insert is rendered as literal command
// text and dispatched through sqlexec, so the interception hook sees
// exactly what the database will execute.
package basket

import (
	"context"
	"fmt"

	"github.com/CSroseX/Storefront-Fault-Injection-Harness/internal/sqlexec"
)

// Command texts as rendered for the engine. The insert is the target
// statement; everything else in this package must pass through the
// hook untouched.
const (
	insertItemCommand = "INSERT INTO [BasketItems] ([BasketId], [ProductId], [Quantity], [UnitPrice]) VALUES (@p1, @p2, @p3, @p4)"

	selectItemsCommand = "SELECT [ProductId], [Quantity], [UnitPrice] FROM [BasketItems] WHERE [BasketId] = @p1"

	clearBasketCommand = "DELETE FROM [BasketItems] WHERE [BasketId] = @p1"

	createTableCommand = `IF OBJECT_ID('BasketItems', 'U') IS NULL
CREATE TABLE [BasketItems] (
	[Id] INT IDENTITY PRIMARY KEY,
	[BasketId] NVARCHAR(64) NOT NULL,
	[ProductId] INT NOT NULL,
	[Quantity] INT NOT NULL,
	[UnitPrice] DECIMAL(18,2) NOT NULL
)`
)

// Item is one basket line.
type Item struct {
	ProductID int     `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// Repository issues basket commands through the intercepted executor.
type Repository struct {
	db *sqlexec.DB
}

func NewRepository(db *sqlexec.DB) *Repository {
	return &Repository{db: db}
}

// EnsureSchema creates the basket table if missing. Runs through the
// same hook as everything else; it is not the target shape.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createTableCommand); err != nil {
		return fmt.Errorf("ensure basket schema: %w", err)
	}
	return nil
}

// AddItem inserts one line into the basket. This is the statement the
// injector degrades.
func (r *Repository) AddItem(ctx context.Context, basketID string, item Item) error {
	_, err := r.db.ExecContext(ctx, insertItemCommand,
		basketID, item.ProductID, item.Quantity, item.UnitPrice)
	if err != nil {
		return fmt.Errorf("add basket item: %w", err)
	}
	return nil
}

// Items returns the basket's lines.
func (r *Repository) Items(ctx context.Context, basketID string) ([]Item, error) {
	rows, err := r.db.QueryContext(ctx, selectItemsCommand, basketID)
	if err != nil {
		return nil, fmt.Errorf("load basket: %w", err)
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ProductID, &it.Quantity, &it.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan basket item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// Clear empties the basket after checkout.
func (r *Repository) Clear(ctx context.Context, basketID string) error {
	if _, err := r.db.ExecContext(ctx, clearBasketCommand, basketID); err != nil {
		return fmt.Errorf("clear basket: %w", err)
	}
	return nil
}
